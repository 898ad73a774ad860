package analysis

import (
	"sort"
	"time"

	"github.com/fuegovic/homebox-analytics/pkg/models/domain"
)

const unknownLocation = "Unknown"

// ComputeReport classifies every item against the category rules and
// aggregates them into a financial report for the inclusive day range
// [start, end]. The function is total and pure: it never errors, never reads
// the clock (staleness is computed against the injected now), and never
// mutates the caller's items. A reversed range matches nothing and simply
// yields zero period aggregates.
func ComputeReport(
	items []domain.Item,
	start, end time.Time,
	now time.Time,
	settings Settings,
) domain.Report {
	startDay, endDay := day(start), day(end)
	nowDay := day(now)

	report := domain.Report{
		Period: domain.TimePeriod{
			Start:    startDay,
			End:      endDay,
			Duration: daysBetween(startDay, endDay),
		},
		BusinessAssets:      []domain.Item{},
		StaleInventory:      []domain.StaleItem{},
		InventoryByLocation: map[string]domain.LocationSummary{},
		ProductSales:        []domain.Item{},
		ItemsWithCost:       []domain.Item{},
		FreeItems:           []domain.Item{},
		OtherIncomeItems:    []domain.Item{},
	}

	inRange := func(d *time.Time) bool {
		if d == nil {
			return false
		}
		t := day(*d)
		return !t.Before(startDay) && !t.After(endDay)
	}

	// Sales in period: service vs product, with loss write-offs kept out of
	// product metrics entirely.
	for _, item := range items {
		if !inRange(item.SoldTime) {
			continue
		}
		if isService(item) {
			report.OtherIncomeItems = append(report.OtherIncomeItems, item)
		} else if !isLoss(item) {
			report.ProductSales = append(report.ProductSales, item)
		}
	}

	var roiValues []float64
	for _, sale := range report.ProductSales {
		report.ProductRevenue += sale.SoldPrice
		if sale.PurchasePrice > 0 {
			report.ItemsWithCost = append(report.ItemsWithCost, sale)
			report.COGS += sale.PurchasePrice
			roiValues = append(roiValues, (sale.SoldPrice-sale.PurchasePrice)/sale.PurchasePrice*100)
		} else {
			report.FreeItems = append(report.FreeItems, sale)
		}
	}
	report.NetProfit = report.ProductRevenue - report.COGS
	report.AvgROI = mean(roiValues)

	for _, sale := range report.OtherIncomeItems {
		report.ServiceRevenue += sale.SoldPrice
	}
	report.ServiceProfit = report.ServiceRevenue
	report.TotalRevenue = report.ProductRevenue + report.ServiceRevenue
	report.TotalProfit = report.NetProfit + report.ServiceRevenue

	report.ItemsSold = len(report.ProductSales)
	if report.ItemsSold > 0 {
		report.AvgSalePrice = report.ProductRevenue / float64(report.ItemsSold)
		report.AvgProfitPerItem = report.NetProfit / float64(report.ItemsSold)
	}

	// Period expenses keyed on purchase date: the business view excludes the
	// special buckets, the total view does not.
	for _, item := range items {
		if !inRange(item.PurchaseTime) {
			continue
		}
		report.TotalExpenses += item.PurchasePrice
		if isBusinessExpense(item) {
			report.BusinessExpenses += item.PurchasePrice
		}
	}

	// Standing buckets reflect current catalog state, not period activity.
	for _, item := range items {
		if isBusinessAsset(item) {
			report.BusinessAssets = append(report.BusinessAssets, item)
			report.BusinessAssetsValue += item.PurchasePrice
		}
		if isJunkagie(item) {
			report.JunkagieCount++
		}
		if isMarketplace(item) {
			report.MarketplaceCount++
			report.MarketplaceValue += item.PurchasePrice
		}
	}
	report.BusinessAssetsCount = len(report.BusinessAssets)
	report.JunkagiePotential = float64(report.JunkagieCount) * settings.JunkagieUnitEstimate

	// A loss is realized when the item leaves inventory, so it is gated on the
	// disposal date rather than the purchase date.
	for _, item := range items {
		if isLoss(item) && inRange(item.SoldTime) {
			report.LossCount++
			report.LossValue += item.PurchasePrice
		}
	}

	// Active and stale inventory. Stale entries carry an attached holding time
	// on a copy of the item, computed against the injected reference time.
	for _, item := range items {
		if !isActiveInventory(item) {
			continue
		}
		report.TotalActiveCount++
		report.TotalActiveValue += item.PurchasePrice

		if item.PurchaseTime == nil {
			continue
		}
		daysHeld := daysBetween(day(*item.PurchaseTime), nowDay)
		if daysHeld > settings.StaleDays {
			report.StaleInventory = append(report.StaleInventory, domain.StaleItem{
				Item:     item,
				DaysHeld: daysHeld,
			})
		}
	}
	sort.SliceStable(report.StaleInventory, func(i, j int) bool {
		return report.StaleInventory[i].DaysHeld > report.StaleInventory[j].DaysHeld
	})
	report.StaleCount = len(report.StaleInventory)

	// Sales velocity over product sales with both dates known.
	var saleDays []int
	for _, sale := range report.ProductSales {
		if sale.PurchaseTime == nil || sale.SoldTime == nil {
			continue
		}
		daysToSell := daysBetween(day(*sale.PurchaseTime), day(*sale.SoldTime))
		saleDays = append(saleDays, daysToSell)
		if daysToSell <= settings.QuickFlipDays {
			report.QuickFlips++
		}
	}
	if len(saleDays) > 0 {
		sum := 0
		fastest, slowest := saleDays[0], saleDays[0]
		for _, d := range saleDays {
			sum += d
			if d < fastest {
				fastest = d
			}
			if d > slowest {
				slowest = d
			}
		}
		report.AvgDaysToSell = float64(sum) / float64(len(saleDays))
		report.FastestSale = fastest
		report.SlowestSale = slowest
	}

	// Location breakdown covers every non-archived item, special buckets
	// included, grouped by the raw location string.
	for _, item := range items {
		if item.Archived {
			continue
		}
		loc := item.Location
		if loc == "" {
			loc = unknownLocation
		}
		summary := report.InventoryByLocation[loc]
		summary.Count++
		summary.Value += item.PurchasePrice
		report.InventoryByLocation[loc] = summary
	}

	return report
}

// day truncates a timestamp to its calendar day at midnight UTC. All range
// comparisons happen at this granularity.
func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
