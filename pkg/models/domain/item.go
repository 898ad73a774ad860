package domain

import "time"

// Item is a parsed inventory record. Optional dates are nil when the source
// value was missing, unparseable, or the "0001-01-01" sentinel. Monetary
// fields default to 0 rather than failing.
type Item struct {
	Name          string
	Location      string
	Labels        string
	Archived      bool
	Insured       bool
	PurchasePrice float64
	PurchaseTime  *time.Time
	SoldPrice     float64
	SoldTime      *time.Time
}
