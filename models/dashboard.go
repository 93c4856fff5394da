package models

// MetricCard is one formatted cell of the key-metrics grid.
type MetricCard struct {
	Label  string `json:"label"`
	Value  string `json:"value"`
	Delta  string `json:"delta"`
	Row    int    `json:"row"`
	Column int    `json:"column"`
}

// MetricsGrid lays metric cards out in a fixed number of columns, wrapping
// row-wise in insertion order.
type MetricsGrid struct {
	Columns int          `json:"columns"`
	Rows    int          `json:"rows"`
	Cards   []MetricCard `json:"cards"`
}

// Dashboard is the full single-page payload: every panel the page renders,
// built fresh per request from the static dataset.
type Dashboard struct {
	Title          string      `json:"title"`
	Caption        string      `json:"caption"`
	LastUpdated    string      `json:"last_updated"`
	Period         string      `json:"period,omitempty"`
	Metrics        MetricsGrid `json:"metrics"`
	TrendChart     *LineChart  `json:"trend_chart,omitempty"`
	TrendWarning   string      `json:"trend_warning,omitempty"`
	EquipmentChart BarChart    `json:"equipment_chart"`
	PmiChart       BarChart    `json:"pmi_chart"`
	PmiTable       Table       `json:"pmi_table"`
	ForecastTable  Table       `json:"forecast_table"`
}
