// Package parquet exports chart datasets and saved links to Parquet files
// using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/huangsam/armory/schema"
	"github.com/parquet-go/parquet-go"
)

// DatasetRow is one value of one chart, flattened for columnar analysis.
type DatasetRow struct {
	// Chart is the dataset title
	Chart string `parquet:"chart,snappy,dict"`

	// Kind is the chart shape (radar or bar)
	Kind string `parquet:"kind,snappy,dict"`

	// Target is the armor class the values were computed for
	Target string `parquet:"target,snappy,dict"`

	// Weapon is the series label
	Weapon string `parquet:"weapon,snappy,dict"`

	// Label is the axis label of the value within its chart
	Label string `parquet:"label,snappy,dict"`

	// Position is the index of Label within the chart labels
	Position int32 `parquet:"position,snappy"`

	Value float64 `parquet:"value,snappy"`
}

// LinkRecord is a saved share link.
type LinkRecord struct {
	LinkID  string    `parquet:"link_id,snappy"`
	Name    string    `parquet:"link_name,snappy"`
	Query   string    `parquet:"share_query,snappy"`
	SavedAt time.Time `parquet:"saved_at,snappy"`

	// Link is the absolute share link, empty when it could not be built
	Link *string `parquet:"share_link,optional,snappy"`
}

// FlattenView turns every chart of the view into rows, radar first.
func FlattenView(view schema.View) []DatasetRow {
	var rows []DatasetRow
	for _, ds := range view.Charts() {
		for _, series := range ds.Series {
			for i, v := range series.Values {
				rows = append(rows, DatasetRow{
					Chart:    ds.Title,
					Kind:     string(ds.Kind),
					Target:   view.Target.String(),
					Weapon:   series.Label,
					Label:    ds.Labels[i],
					Position: int32(i),
					Value:    v,
				})
			}
		}
	}
	return rows
}

// ConvertLinks converts stored links to LinkRecord for Parquet export.
// shareLink builds the absolute link for a query and may be nil.
func ConvertLinks(links []schema.Link, shareLink func(query string) (string, error)) []LinkRecord {
	result := make([]LinkRecord, len(links))
	for i, link := range links {
		result[i] = LinkRecord{
			LinkID:  link.ID,
			Name:    link.Name,
			Query:   link.Query,
			SavedAt: link.SavedAt,
		}
		if shareLink == nil {
			continue
		}
		if full, err := shareLink(link.Query); err == nil {
			result[i].Link = &full
		}
	}
	return result
}

// WriteRows writes records to w using a schema inferred from the struct tags.
func WriteRows[T any](w io.Writer, data []T) error {
	writer := parquet.NewGenericWriter[T](w)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finish parquet file: %w", err)
	}
	return nil
}

// WriteDatasetParquet writes dataset rows to a Parquet file.
func WriteDatasetParquet(data []DatasetRow, outputPath string) error {
	return writeFile(outputPath, func(w io.Writer) error { return WriteRows(w, data) })
}

// WriteLinksParquet writes link records to a Parquet file.
func WriteLinksParquet(data []LinkRecord, outputPath string) error {
	return writeFile(outputPath, func(w io.Writer) error { return WriteRows(w, data) })
}

func writeFile(outputPath string, write func(io.Writer) error) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := write(file); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}
