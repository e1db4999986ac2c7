package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/huangsam/armory/internal/contract"
	"github.com/huangsam/armory/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// weaponEntry is the listing shape of a weapon.
type weaponEntry struct {
	Name       string            `json:"name"`
	DamageType schema.DamageType `json:"damage_type"`
}

// categoryEntry is the listing shape of a category.
type categoryEntry struct {
	Category schema.Category `json:"category"`
	Group    string          `json:"group"`
	Unit     schema.Unit     `json:"unit"`
	Suffix   string          `json:"suffix"`
	Bonus    bool            `json:"bonus"`
	Default  bool            `json:"default"`
}

// PrintWeapons outputs a weapon listing in catalog order.
func PrintWeapons(weapons []schema.Weapon, cfg *contract.Config) error {
	entries := make([]weaponEntry, len(weapons))
	for i, w := range weapons {
		entries[i] = weaponEntry{Name: w.Name, DamageType: w.DamageType}
	}

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, entries)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, []string{"name", "damage_type"}, func(cw *csv.Writer) error {
				for _, e := range entries {
					if err := cw.Write([]string{e.Name, e.DamageType.String()}); err != nil {
						return fmt.Errorf("failed to write CSV record: %w", err)
					}
				}
				return nil
			})
		}, "Wrote CSV")
	case schema.TextOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeWeaponTable(w, entries, cfg)
		}, "Wrote table")
	default:
		return unsupported("weapon listing", cfg.Output)
	}
}

func writeWeaponTable(w io.Writer, entries []weaponEntry, cfg *contract.Config) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"#", "Weapon", "Damage Type"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignLeft
	})

	nameWidth := GetMaxTableTextWidth(cfg, 2)
	var data [][]string
	for i, e := range entries {
		data = append(data, []string{strconv.Itoa(i + 1), contract.TruncateText(e.Name, nameWidth), e.DamageType.String()})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Showing %d weapons\n", len(entries))
	return err
}

// PrintCategories outputs every category with its group and unit.
func PrintCategories(cfg *contract.Config) error {
	entries := make([]categoryEntry, len(schema.AllCategories))
	for i, c := range schema.AllCategories {
		entries[i] = categoryEntry{
			Category: c,
			Group:    c.Group().String(),
			Unit:     c.Unit(),
			Suffix:   c.Unit().Suffix(),
			Bonus:    c.HasBonus(),
			Default:  slices.Contains(schema.DefaultCategories, c),
		}
	}

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, entries)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			header := []string{"category", "group", "unit", "suffix", "bonus", "default"}
			return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
				for _, e := range entries {
					rec := []string{
						e.Category.String(), e.Group, e.Unit.String(), e.Suffix,
						strconv.FormatBool(e.Bonus), strconv.FormatBool(e.Default),
					}
					if err := cw.Write(rec); err != nil {
						return fmt.Errorf("failed to write CSV record: %w", err)
					}
				}
				return nil
			})
		}, "Wrote CSV")
	case schema.TextOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCategoryTable(w, entries)
		}, "Wrote table")
	default:
		return unsupported("category listing", cfg.Output)
	}
}

func writeCategoryTable(w io.Writer, entries []categoryEntry) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Category", "Unit", "Bonus", "Default"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignLeft
	})

	var data [][]string
	for _, e := range entries {
		data = append(data, []string{e.Category.String(), e.Suffix, yesNo(e.Bonus), yesNo(e.Default)})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, "Bonus categories are scaled by the target armor multiplier for the weapon damage type.")
	return err
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
