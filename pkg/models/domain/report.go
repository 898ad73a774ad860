package domain

import "time"

// TimePeriod represents a time range for the report
type TimePeriod struct {
	Start    time.Time
	End      time.Time
	Duration int // in days
}

// StaleItem pairs an active inventory item with its computed holding time.
// It is an annotated copy; the analyzer never writes into caller-owned items.
type StaleItem struct {
	Item     Item
	DaysHeld int
}

// LocationSummary aggregates count and cost basis for one raw location bucket.
type LocationSummary struct {
	Count int
	Value float64
}

// Report is a complete financial analysis snapshot for one period. It is
// value-only: rebuilt from scratch on every analysis run, immutable once
// returned, and shares no mutable state with the source items.
type Report struct {
	Period TimePeriod

	// Revenue & profit
	ProductRevenue float64
	ServiceRevenue float64
	TotalRevenue   float64
	COGS           float64
	NetProfit      float64
	ServiceProfit  float64 // service income carries no cost
	TotalProfit    float64

	// Sale ratios
	AvgROI           float64 // percentage, 50 means 50%
	ItemsSold        int
	AvgSalePrice     float64
	AvgProfitPerItem float64

	// Expenses
	BusinessExpenses float64
	TotalExpenses    float64

	// Standing buckets, range-independent by design
	BusinessAssetsValue float64
	BusinessAssetsCount int
	BusinessAssets      []Item
	JunkagieCount       int
	JunkagiePotential   float64
	MarketplaceValue    float64
	MarketplaceCount    int

	// Realized losses (disposal date in range)
	LossValue float64
	LossCount int

	// Inventory
	TotalActiveValue    float64
	TotalActiveCount    int
	StaleInventory      []StaleItem
	StaleCount          int
	InventoryByLocation map[string]LocationSummary

	// Sales velocity
	AvgDaysToSell float64
	QuickFlips    int
	FastestSale   int
	SlowestSale   int

	// Classified sale lists
	ProductSales     []Item
	ItemsWithCost    []Item
	FreeItems        []Item
	OtherIncomeItems []Item
}
