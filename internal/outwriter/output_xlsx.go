package outwriter

import (
	"fmt"
	"math"

	"github.com/huangsam/armory/schema"
	"github.com/xuri/excelize/v2"
)

// maxSheetName is the Excel limit on sheet name length.
const maxSheetName = 31

// writeViewXLSX writes a Summary sheet plus one sheet per chart.
func writeViewXLSX(outputFile string, view schema.View, charts []schema.Dataset, precision int) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const summary = "Summary"
	if err := f.SetSheetName("Sheet1", summary); err != nil {
		return err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}

	summaryRows := [][2]string{
		{"Target", view.Target.String()},
		{"Weapons", fmt.Sprint(len(view.Weapons))},
		{"Categories", fmt.Sprint(len(view.Categories))},
		{"Query", view.Query},
		{"Link", view.Link},
	}
	for i, kv := range summaryRows {
		row := i + 1
		if err := f.SetCellValue(summary, fmt.Sprintf("A%d", row), kv[0]); err != nil {
			return err
		}
		if err := f.SetCellValue(summary, fmt.Sprintf("B%d", row), kv[1]); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(summary, "A1", fmt.Sprintf("A%d", len(summaryRows)), headerStyle); err != nil {
		return err
	}

	used := map[string]int{summary: 1}
	for _, ds := range charts {
		sheet := uniqueSheetName(ds.Title, used)
		if _, err := f.NewSheet(sheet); err != nil {
			return err
		}
		if err := writeDatasetSheet(f, sheet, ds, precision, headerStyle); err != nil {
			return fmt.Errorf("sheet %s: %w", sheet, err)
		}
	}

	return f.SaveAs(outputFile)
}

// writeDatasetSheet lays out a dataset with weapons as rows and labels as columns.
func writeDatasetSheet(f *excelize.File, sheet string, ds schema.Dataset, precision int, headerStyle int) error {
	if err := f.SetCellValue(sheet, "A1", "Weapon"); err != nil {
		return err
	}
	for i, label := range ds.Labels {
		cell, err := excelize.CoordinatesToCellName(i+2, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, label); err != nil {
			return err
		}
	}
	lastHeader, err := excelize.CoordinatesToCellName(len(ds.Labels)+1, 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", lastHeader, headerStyle); err != nil {
		return err
	}

	scale := math.Pow(10, float64(precision))
	for r, s := range ds.Series {
		row := r + 2
		if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", row), s.Label); err != nil {
			return err
		}
		for i, v := range s.Values {
			cell, err := excelize.CoordinatesToCellName(i+2, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, math.Round(v*scale)/scale); err != nil {
				return err
			}
		}
	}
	return f.SetColWidth(sheet, "A", "A", 18)
}

// uniqueSheetName turns a chart title into a valid, unused sheet name.
func uniqueSheetName(title string, used map[string]int) string {
	clean := make([]rune, 0, len(title))
	for _, r := range title {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			continue
		}
		clean = append(clean, r)
	}
	if len(clean) > maxSheetName {
		clean = clean[:maxSheetName]
	}
	name := string(clean)
	if name == "" {
		name = "Chart"
	}
	used[name]++
	if n := used[name]; n > 1 {
		suffix := fmt.Sprintf(" %d", n)
		base := []rune(name)
		if len(base)+len(suffix) > maxSheetName {
			base = base[:maxSheetName-len(suffix)]
		}
		name = string(base) + suffix
		used[name]++
	}
	return name
}
