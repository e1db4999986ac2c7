package schema

// Pair is one ordered key/value entry of a serialized selection.
type Pair struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Series is the row of values for one weapon, aligned to the dataset labels.
type Series struct {
	Label  string    `json:"label"`
	Values []float64 `json:"values"`
}

// Dataset is the chart-ready output for one chart.
type Dataset struct {
	Title  string    `json:"title"`
	Kind   ChartKind `json:"kind"`
	Labels []string  `json:"labels"`
	Series []Series  `json:"series"`
}

// View is a rendered snapshot of a selection: its share query and every chart.
type View struct {
	Query      string     `json:"query"`
	Link       string     `json:"link,omitempty"`
	Target     Target     `json:"target"`
	Weapons    []string   `json:"weapons"`
	Categories []Category `json:"categories"`
	Radar      Dataset    `json:"radar"`
	Bars       []Dataset  `json:"bars"`
}

// Charts returns the radar followed by every bar chart.
func (v View) Charts() []Dataset {
	out := make([]Dataset, 0, len(v.Bars)+1)
	out = append(out, v.Radar)
	return append(out, v.Bars...)
}
