package models

// ForecastRow holds the current change for an indicator and the two
// forward-quarter forecasts. Trend is free-form text, not a closed enum;
// rendering must never assume a fixed set of labels.
type ForecastRow struct {
	Indicator  string  `json:"indicator"`
	Current    float64 `json:"current"`
	NextQ      float64 `json:"next_quarter_forecast"`
	FollowingQ float64 `json:"following_quarter_forecast"`
	Trend      string  `json:"trend"`
}
