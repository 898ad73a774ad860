package adapters

import (
	"time"

	"github.com/fuegovic/homebox-analytics/pkg/models/api"
	"github.com/fuegovic/homebox-analytics/pkg/models/domain"
)

func MapReportDomainToApi(report domain.Report) api.Report {
	out := api.Report{
		Period: api.TimePeriod{
			Start:    report.Period.Start.Format(dayFormat),
			End:      report.Period.End.Format(dayFormat),
			Duration: report.Period.Duration,
		},
		ProductRevenue:      report.ProductRevenue,
		ServiceRevenue:      report.ServiceRevenue,
		TotalRevenue:        report.TotalRevenue,
		COGS:                report.COGS,
		NetProfit:           report.NetProfit,
		ServiceProfit:       report.ServiceProfit,
		TotalProfit:         report.TotalProfit,
		AvgROI:              report.AvgROI,
		ItemsSold:           report.ItemsSold,
		AvgSalePrice:        report.AvgSalePrice,
		AvgProfitPerItem:    report.AvgProfitPerItem,
		BusinessExpenses:    report.BusinessExpenses,
		TotalExpenses:       report.TotalExpenses,
		BusinessAssetsValue: report.BusinessAssetsValue,
		BusinessAssetsCount: report.BusinessAssetsCount,
		BusinessAssets:      mapItems(report.BusinessAssets),
		JunkagieCount:       report.JunkagieCount,
		JunkagiePotential:   report.JunkagiePotential,
		MarketplaceValue:    report.MarketplaceValue,
		MarketplaceCount:    report.MarketplaceCount,
		LossValue:           report.LossValue,
		LossCount:           report.LossCount,
		TotalActiveValue:    report.TotalActiveValue,
		TotalActiveCount:    report.TotalActiveCount,
		StaleCount:          report.StaleCount,
		AvgDaysToSell:       report.AvgDaysToSell,
		QuickFlips:          report.QuickFlips,
		FastestSale:         report.FastestSale,
		SlowestSale:         report.SlowestSale,
		ProductSales:        mapItems(report.ProductSales),
		ItemsWithCost:       mapItems(report.ItemsWithCost),
		FreeItems:           mapItems(report.FreeItems),
		OtherIncomeItems:    mapItems(report.OtherIncomeItems),
	}

	out.StaleInventory = make([]api.StaleItem, 0, len(report.StaleInventory))
	for _, stale := range report.StaleInventory {
		out.StaleInventory = append(out.StaleInventory, api.StaleItem{
			Item:     MapItemDomainToApi(stale.Item),
			DaysHeld: stale.DaysHeld,
		})
	}

	out.InventoryByLocation = make(map[string]api.LocationSummary, len(report.InventoryByLocation))
	for loc, summary := range report.InventoryByLocation {
		out.InventoryByLocation[loc] = api.LocationSummary{
			Count: summary.Count,
			Value: summary.Value,
		}
	}

	return out
}

func MapItemDomainToApi(item domain.Item) api.Item {
	return api.Item{
		Name:          item.Name,
		Location:      item.Location,
		Labels:        item.Labels,
		Archived:      item.Archived,
		Insured:       item.Insured,
		PurchasePrice: item.PurchasePrice,
		PurchaseTime:  formatDay(item.PurchaseTime),
		SoldPrice:     item.SoldPrice,
		SoldTime:      formatDay(item.SoldTime),
	}
}

func mapItems(items []domain.Item) []api.Item {
	out := make([]api.Item, 0, len(items))
	for _, item := range items {
		out = append(out, MapItemDomainToApi(item))
	}
	return out
}

func formatDay(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dayFormat)
}
