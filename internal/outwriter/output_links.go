package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/huangsam/armory/internal/contract"
	"github.com/huangsam/armory/internal/parquet"
	"github.com/huangsam/armory/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

const linkTimeLayout = "2006-01-02 15:04:05"

// PrintLinks outputs saved links, dispatching based on the output format configured.
func PrintLinks(links []schema.Link, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			if links == nil {
				links = []schema.Link{}
			}
			return writeJSON(w, links)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, []string{"id", "name", "saved_at", "query"}, func(cw *csv.Writer) error {
				for _, l := range links {
					rec := []string{l.ID, l.Name, l.SavedAt.UTC().Format(time.RFC3339), l.Query}
					if err := cw.Write(rec); err != nil {
						return fmt.Errorf("failed to write CSV record: %w", err)
					}
				}
				return nil
			})
		}, "Wrote CSV")
	case schema.ParquetOut:
		records := parquet.ConvertLinks(links, shareLinkFor(cfg.BaseURL))
		if err := parquet.WriteLinksParquet(records, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
		reportWritten("Wrote Parquet", cfg.OutputFile)
		return nil
	case schema.TextOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeLinkTable(w, links, cfg)
		}, "Wrote table")
	default:
		return unsupported("link listing", cfg.Output)
	}
}

func writeLinkTable(w io.Writer, links []schema.Link, cfg *contract.Config) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Name", "Saved", "Query"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignLeft
	})

	queryWidth := GetMaxTableTextWidth(cfg, 3)
	var data [][]string
	for _, l := range links {
		data = append(data, []string{l.Name, l.SavedAt.Format(linkTimeLayout), contract.TruncateText(l.Query, queryWidth)})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Showing %d saved links\n", len(links))
	return err
}

// shareLinkFor returns a builder of absolute links for stored queries.
func shareLinkFor(baseURL string) func(string) (string, error) {
	return func(query string) (string, error) {
		u, err := url.Parse(baseURL)
		if err != nil {
			return "", err
		}
		u.RawQuery = query
		u.Fragment = ""
		return u.String(), nil
	}
}
