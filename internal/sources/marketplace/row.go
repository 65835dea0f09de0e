// Package marketplace reads marketplace CSV exports and converts their rows
// into canonical catalog items.
//
// Exports vary between sellers: every recognized column is individually
// optional, and unrecognized columns are ignored. Column header names are
// matched exactly ("Quantity Left", not "quantity_left") per the exporting
// system's convention.
package marketplace

// Row is one parsed marketplace export row. Absent columns are empty
// strings; defaults are applied at adapter time.
type Row struct {
	Title        string
	Description  string
	Category     string
	Price        string
	SKU          string
	Status       string
	Images       string
	QuantityLeft string
}

// ParseStats reports rows seen vs rows successfully parsed for one read of
// an export file. Malformed rows are skipped, never fatal, so the two
// counts can differ.
type ParseStats struct {
	RowsSeen   int `json:"rows_seen"`
	RowsParsed int `json:"rows_parsed"`
}
