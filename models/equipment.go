package models

// EquipmentRow holds one equipment brand index with its year-over-year change.
type EquipmentRow struct {
	Brand        string  `json:"brand"`
	CurrentValue float64 `json:"current_value"`
	YoYChange    float64 `json:"yoy_change"`
}
