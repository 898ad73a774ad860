package store

// ItemRow is one inventory row as delivered by an ingestion source (CSV export
// or the Homebox items API) before any parsing. Every field is kept in the raw
// string form so both sources produce the exact same shape: booleans are the
// literal "true"/"false", dates are date-only strings (or the "0001-01-01"
// sentinel for unset), prices are numeric strings.
type ItemRow struct {
	Name          string
	Location      string
	Labels        string // comma-joined label names
	AssetID       string
	Quantity      string
	Description   string
	Notes         string
	Archived      string
	Insured       string
	PurchasePrice string
	PurchaseFrom  string
	PurchaseTime  string
	SoldTo        string
	SoldPrice     string
	SoldTime      string
}
