package api

// TimePeriod is the wire form of an analysis period, dates as ISO day strings.
type TimePeriod struct {
	Start    string `json:"start"`
	End      string `json:"end"`
	Duration int    `json:"duration_days"`
}

type Item struct {
	Name          string  `json:"name"`
	Location      string  `json:"location"`
	Labels        string  `json:"labels,omitempty"`
	Archived      bool    `json:"archived"`
	Insured       bool    `json:"insured"`
	PurchasePrice float64 `json:"purchase_price"`
	PurchaseTime  string  `json:"purchase_time,omitempty"`
	SoldPrice     float64 `json:"sold_price"`
	SoldTime      string  `json:"sold_time,omitempty"`
}

type StaleItem struct {
	Item
	DaysHeld int `json:"days_held"`
}

type LocationSummary struct {
	Count int     `json:"count"`
	Value float64 `json:"value"`
}

// Report is the full-fidelity structured dump of one analysis run.
type Report struct {
	Period TimePeriod `json:"period"`

	ProductRevenue float64 `json:"product_revenue"`
	ServiceRevenue float64 `json:"service_revenue"`
	TotalRevenue   float64 `json:"total_revenue"`
	COGS           float64 `json:"cogs"`
	NetProfit      float64 `json:"net_profit"`
	ServiceProfit  float64 `json:"service_profit"`
	TotalProfit    float64 `json:"total_profit"`

	AvgROI           float64 `json:"avg_roi"`
	ItemsSold        int     `json:"items_sold"`
	AvgSalePrice     float64 `json:"avg_sale_price"`
	AvgProfitPerItem float64 `json:"avg_profit_per_item"`

	BusinessExpenses float64 `json:"business_expenses"`
	TotalExpenses    float64 `json:"total_expenses"`

	BusinessAssetsValue float64 `json:"business_assets_value"`
	BusinessAssetsCount int     `json:"business_assets_count"`
	BusinessAssets      []Item  `json:"business_assets"`
	JunkagieCount       int     `json:"junkagie_count"`
	JunkagiePotential   float64 `json:"junkagie_potential"`
	MarketplaceValue    float64 `json:"marketplace_value"`
	MarketplaceCount    int     `json:"marketplace_count"`

	LossValue float64 `json:"loss_value"`
	LossCount int     `json:"loss_count"`

	TotalActiveValue    float64                    `json:"total_active_value"`
	TotalActiveCount    int                        `json:"total_active_count"`
	StaleInventory      []StaleItem                `json:"stale_inventory"`
	StaleCount          int                        `json:"stale_count"`
	InventoryByLocation map[string]LocationSummary `json:"inventory_by_location"`

	AvgDaysToSell float64 `json:"avg_days_to_sell"`
	QuickFlips    int     `json:"quick_flips"`
	FastestSale   int     `json:"fastest_sale"`
	SlowestSale   int     `json:"slowest_sale"`

	ProductSales     []Item `json:"month_sales"`
	ItemsWithCost    []Item `json:"items_with_cost"`
	FreeItems        []Item `json:"free_items"`
	OtherIncomeItems []Item `json:"other_income_items"`
}
