package outwriter

import (
	"github.com/huangsam/armory/internal/contract"
	"github.com/huangsam/armory/schema"
)

// testConfig returns a plain text config writing to stdout.
func testConfig() *contract.Config {
	return &contract.Config{
		Precision: 2,
		Output:    schema.TextOut,
		Width:     120,
		BaseURL:   "https://armory.local/",
		Chart:     contract.ChartAll,
	}
}

func testView() schema.View {
	return schema.View{
		Query:      "target=Heavy&weapon=Mace&weapon=Spear&category=Speed+-+Average&category=Range+-+Average",
		Link:       "https://armory.local/?target=Heavy&weapon=Mace&weapon=Spear&category=Speed+-+Average&category=Range+-+Average",
		Target:     schema.TargetHeavy,
		Weapons:    []string{"Mace", "Spear"},
		Categories: []schema.Category{schema.SpeedAverage, schema.RangeAverage},
		Radar: schema.Dataset{
			Title:  "Overview (Heavy)",
			Kind:   schema.RadarChart,
			Labels: []string{"Speed - Average", "Range - Average"},
			Series: []schema.Series{
				{Label: "Mace", Values: []float64{0.2, 0.1}},
				{Label: "Spear", Values: []float64{0.9, 1}},
			},
		},
		Bars: []schema.Dataset{
			{
				Title:  "Speed - Average",
				Kind:   schema.BarChart,
				Labels: []string{"Speed - Average"},
				Series: []schema.Series{
					{Label: "Mace", Values: []float64{0.2}},
					{Label: "Spear", Values: []float64{0.9}},
				},
			},
			{
				Title:  "Range - Average (cm)",
				Kind:   schema.BarChart,
				Labels: []string{"Range - Average"},
				Series: []schema.Series{
					{Label: "Mace", Values: []float64{90}},
					{Label: "Spear", Values: []float64{240}},
				},
			},
		},
	}
}
