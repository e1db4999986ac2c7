package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/huangsam/armory/core/algo"
	"github.com/huangsam/armory/internal/contract"
	"github.com/huangsam/armory/internal/parquet"
	"github.com/huangsam/armory/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// ViewReport is the JSON shape of a rendered selection.
type ViewReport struct {
	Query      string                `json:"query"`
	Link       string                `json:"link,omitempty"`
	Target     schema.Target         `json:"target"`
	Weapons    []string              `json:"weapons"`
	Categories []schema.Category     `json:"categories"`
	Ranking    []schema.RankedWeapon `json:"ranking"`
	Charts     []schema.Dataset      `json:"charts"`
}

// PrintView outputs the charts of a view, dispatching based on the output format configured.
func PrintView(view schema.View, cfg *contract.Config) error {
	charts := SelectCharts(view, cfg.Chart)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeViewJSON(w, view, charts)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeViewCSV(w, view.Target, charts, createFormatter(cfg.Precision))
		}, "Wrote CSV")
	case schema.ParquetOut:
		rows := parquet.FlattenView(schema.View{Target: view.Target, Radar: firstRadar(charts), Bars: barsOf(charts)})
		if err := parquet.WriteDatasetParquet(rows, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
		reportWritten("Wrote Parquet", cfg.OutputFile)
		return nil
	case schema.XLSXOut:
		if err := writeViewXLSX(cfg.OutputFile, view, charts, cfg.Precision); err != nil {
			return fmt.Errorf("error writing XLSX output: %w", err)
		}
		reportWritten("Wrote XLSX", cfg.OutputFile)
		return nil
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeViewText(w, view, charts, cfg)
		}, "Wrote table")
	}
}

// SelectCharts returns the charts of the view kept by the chart filter.
func SelectCharts(view schema.View, chart string) []schema.Dataset {
	switch chart {
	case contract.ChartRadar:
		return []schema.Dataset{view.Radar}
	case contract.ChartBar:
		return view.Bars
	default:
		return view.Charts()
	}
}

func firstRadar(charts []schema.Dataset) schema.Dataset {
	for _, ds := range charts {
		if ds.Kind == schema.RadarChart {
			return ds
		}
	}
	return schema.Dataset{}
}

func barsOf(charts []schema.Dataset) []schema.Dataset {
	var bars []schema.Dataset
	for _, ds := range charts {
		if ds.Kind == schema.BarChart {
			bars = append(bars, ds)
		}
	}
	return bars
}

// NewViewReport pairs a view with its radar ranking and the given charts.
func NewViewReport(view schema.View, charts []schema.Dataset) ViewReport {
	return ViewReport{
		Query:      view.Query,
		Link:       view.Link,
		Target:     view.Target,
		Weapons:    view.Weapons,
		Categories: view.Categories,
		Ranking:    algo.RankSeries(view.Radar, 0),
		Charts:     charts,
	}
}

// writeViewJSON writes the view with the radar ranking.
func writeViewJSON(w io.Writer, view schema.View, charts []schema.Dataset) error {
	return writeJSON(w, NewViewReport(view, charts))
}

// writeViewCSV writes one row per chart value.
func writeViewCSV(w io.Writer, target schema.Target, charts []schema.Dataset, fmtFloat func(float64) string) error {
	header := []string{"chart", "kind", "target", "weapon", "label", "value"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, ds := range charts {
			for _, s := range ds.Series {
				for i, v := range s.Values {
					rec := []string{ds.Title, string(ds.Kind), target.String(), s.Label, ds.Labels[i], fmtFloat(v)}
					if err := cw.Write(rec); err != nil {
						return fmt.Errorf("failed to write CSV record: %w", err)
					}
				}
			}
		}
		return nil
	})
}

// writeViewText writes one table per chart followed by the share link.
func writeViewText(w io.Writer, view schema.View, charts []schema.Dataset, cfg *contract.Config) error {
	fmtFloat := createFormatter(cfg.Precision)

	if _, err := fmt.Fprintf(w, "⚔️  Target: %s | Weapons: %d | Categories: %d\n",
		view.Target, len(view.Weapons), len(view.Categories)); err != nil {
		return err
	}
	for _, ds := range charts {
		if _, err := fmt.Fprintf(w, "\n%s\n", ds.Title); err != nil {
			return err
		}
		var err error
		if ds.Kind == schema.RadarChart {
			err = writeRadarTable(w, ds, cfg, fmtFloat)
		} else {
			err = writeBarTable(w, ds, cfg, fmtFloat)
		}
		if err != nil {
			return err
		}
	}

	share := view.Link
	if share == "" {
		share = "?" + view.Query
	}
	_, err := fmt.Fprintf(w, "\n🔗 %s\n", share)
	return err
}

// writeRadarTable ranks weapons by their mean normalized value.
func writeRadarTable(w io.Writer, ds schema.Dataset, cfg *contract.Config, fmtFloat func(float64) string) error {
	table := tablewriter.NewWriter(w)
	headers := []string{"Rank", "Weapon"}
	headers = append(headers, ds.Labels...)
	headers = append(headers, "Score", "Label")
	table.Header(headers)
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	values := make(map[string][]float64, len(ds.Series))
	for _, s := range ds.Series {
		values[s.Label] = s.Values
	}
	nameWidth := GetMaxTableTextWidth(cfg, len(ds.Labels)+3)

	var data [][]string
	for _, r := range algo.RankSeries(ds, 0) {
		row := []string{strconv.Itoa(r.Rank), contract.TruncateText(r.Weapon, nameWidth)}
		for _, v := range values[r.Weapon] {
			row = append(row, fmtFloat(v))
		}
		row = append(row, fmtFloat(r.Score), labelFor(r.Score, cfg))
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeBarTable keeps the selection order of the weapons.
func writeBarTable(w io.Writer, ds schema.Dataset, cfg *contract.Config, fmtFloat func(float64) string) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Weapon", "Value"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	nameWidth := GetMaxTableTextWidth(cfg, 1)
	var data [][]string
	for _, s := range ds.Series {
		value := ""
		if len(s.Values) > 0 {
			value = fmtFloat(s.Values[0])
		}
		data = append(data, []string{contract.TruncateText(s.Label, nameWidth), value})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
