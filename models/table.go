package models

// Table is a verbatim tabular rendering: column headers plus rows of
// already-formatted cell text.
type Table struct {
	Title   string     `json:"title"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}
