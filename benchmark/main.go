// Package main provides a performance benchmarking tool for the Armory CLI.
// It measures end-to-end execution times of common commands, running each
// one several times, treating the first successful run as cold and averaging
// the rest as warm, and writes a CSV for performance tracking.
//
// Prerequisites:
// - armory binary installed and available in PATH
//
// Usage: go run benchmark/main.go [runs]
//
//	runs: Number of runs per command (default 5, minimum 2)
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"time"
)

// BenchmarkResult holds the result of a benchmark run (cold run and average of warm runs).
type BenchmarkResult struct {
	Name     string
	Command  string
	ColdTime string
	WarmTime string
}

// BenchmarkCase is one command line to time.
type BenchmarkCase struct {
	Name string
	Args []string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	Timeout time.Duration
	Runs    int
	WorkDir string
	Cases   []BenchmarkCase
}

func main() {
	runs := 5
	if len(os.Args) == 2 {
		n, err := strconv.Atoi(os.Args[1])
		if err != nil || n < 2 {
			fmt.Printf("Usage: %s [runs >= 2]\n", os.Args[0])
			os.Exit(1)
		}
		runs = n
	}

	workDir, err := os.MkdirTemp("", "armory-benchmark-*")
	if err != nil {
		fmt.Printf("Failed to create work dir: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = os.RemoveAll(workDir) }()

	config := BenchmarkConfig{
		Timeout: time.Minute,
		Runs:    runs,
		WorkDir: workDir,
		Cases: []BenchmarkCase{
			{"chart-pair", []string{"chart", "-w", "Longsword", "-w", "Messer"}},
			{"chart-all-text", []string{"chart", "--all"}},
			{"chart-all-json", []string{"chart", "--all", "--output", "json"}},
			{"chart-all-xlsx", []string{"chart", "--all", "--output", "xlsx", "--output-file", filepath.Join(workDir, "all.xlsx")}},
			{"chart-all-parquet", []string{"chart", "--all", "--output", "parquet", "--output-file", filepath.Join(workDir, "all.parquet")}},
			{"search", []string{"search", "sword"}},
			{"share", []string{"share", "--all"}},
			{"link-save-sqlite", []string{"link", "save", "bench", "--all", "--link-db-connect", filepath.Join(workDir, "links.db")}},
			{"link-list-sqlite", []string{"link", "list", "--link-db-connect", filepath.Join(workDir, "links.db")}},
		},
	}

	if _, err := exec.LookPath("armory"); err != nil {
		fmt.Printf("Prerequisites check failed: armory binary not found in PATH\n")
		os.Exit(1)
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// runBenchmarks executes every configured case.
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	fmt.Printf("Starting benchmark: %d cases, %d runs each, %v timeout\n", len(config.Cases), config.Runs, config.Timeout)

	results := make([]BenchmarkResult, 0, len(config.Cases))
	for _, bc := range config.Cases {
		fmt.Printf("Running %s\n", bc.Name)
		cold, warm := runBenchmark(config, bc.Args)

		coldStr, warmStr := "TIMEOUT", "TIMEOUT"
		if cold > 0 {
			coldStr = fmt.Sprintf("%.3fs", cold)
		}
		if len(warm) > 0 {
			var sum float64
			for _, t := range warm {
				sum += t
			}
			warmStr = fmt.Sprintf("%.3fs", sum/float64(len(warm)))
		}
		fmt.Printf("  Cold time: %s, Warm average: %s\n", coldStr, warmStr)

		results = append(results, BenchmarkResult{
			Name:     bc.Name,
			Command:  bc.Args[0],
			ColdTime: coldStr,
			WarmTime: warmStr,
		})
	}
	return results
}

// runBenchmark executes an armory command multiple times and returns cold time and warm times
func runBenchmark(config BenchmarkConfig, args []string) (coldTime float64, warmTimes []float64) {
	var times []float64
	for run := 1; run <= config.Runs; run++ {
		start := time.Now()

		cmd := exec.Command("armory", args...)
		cmd.Dir = config.WorkDir
		cmd.Env = append(os.Environ(), "HOME="+config.WorkDir)

		done := make(chan error, 1)
		go func() {
			_, err := cmd.Output()
			done <- err
		}()

		select {
		case err := <-done:
			if err == nil {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			_ = cmd.Process.Kill()
		}
	}

	if len(times) > 0 {
		coldTime = times[0]
		warmTimes = times[1:]
	}
	return
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/armory_benchmark_%s.csv", timestamp)

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	// Write header
	if err := writer.Write([]string{"case", "cmd", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	// Write results
	for _, result := range results {
		if err := writer.Write([]string{result.Name, result.Command, result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")
	for _, result := range results {
		fmt.Printf("  %-18s: Cold: %s, Warm: %s\n", result.Name, result.ColdTime, result.WarmTime)
	}
}
