package models

// PmiRow holds one country's manufacturing PMI reading together with the
// input-prices sub-index the dashboard charts. Values above 50 indicate
// expansion.
type PmiRow struct {
	Country          string  `json:"country"`
	ManufacturingPMI float64 `json:"manufacturing_pmi"`
	InputPricesIndex float64 `json:"input_prices_index"`
}
