package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/fuegovic/homebox-analytics/pkg/models/domain"
)

const chartWidth = 40

// SummaryReporter writes the condensed accountant summary: revenue, expense,
// ratio and inventory sections plus a bar chart of the four headline figures.
type SummaryReporter struct {
	writer io.Writer
}

func NewSummaryReporter(writer io.Writer) *SummaryReporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &SummaryReporter{writer: writer}
}

type chartRow struct {
	Label  string
	Amount float64
	Bar    string
}

type summaryView struct {
	Report domain.Report
	Chart  []chartRow

	ServiceItemCount int
	ProjectedRevenue float64
}

func (c *SummaryReporter) Handle(report domain.Report) error {
	funcMap := template.FuncMap{
		"currency": func(v float64) string { return fmt.Sprintf("$%.2f", v) },
		"percent":  func(v float64) string { return fmt.Sprintf("%.1f%%", v) },
	}

	tmpl := `Homebox Financial Summary
Accounting Period: {{.Report.Period.Start.Format "2006-01-02"}} to {{.Report.Period.End.Format "2006-01-02"}} ({{.Report.Period.Duration}} days)

=== Revenue & Profit ===
Product Revenue: {{currency .Report.ProductRevenue}}
Service Revenue: {{currency .Report.ServiceRevenue}}
Total Revenue: {{currency .Report.TotalRevenue}}
Cost of Goods Sold: {{currency .Report.COGS}}
Total Profit: {{currency .Report.TotalProfit}}

=== Expense Overview ===
Business Operating Expenses: {{currency .Report.BusinessExpenses}}
Total Expenses: {{currency .Report.TotalExpenses}}
Loss / Giveaways: {{currency .Report.LossValue}}

=== Key Ratios & Velocity ===
Average ROI: {{percent .Report.AvgROI}}
Avg Profit per Item: {{currency .Report.AvgProfitPerItem}}
Avg Sale Price: {{currency .Report.AvgSalePrice}}
Items Sold: {{.Report.ItemsSold}}
Service Revenue Items: {{.ServiceItemCount}}
Quick Flips: {{.Report.QuickFlips}}
Avg Days to Sell: {{printf "%.1f" .Report.AvgDaysToSell}}

=== Inventory & Assets ===
Total Active Inventory: {{currency .Report.TotalActiveValue}} ({{.Report.TotalActiveCount}} items)
Stale Items: {{.Report.StaleCount}}
Projected Revenue (Avg ROI): {{currency .ProjectedRevenue}}
Business Assets: {{currency .Report.BusinessAssetsValue}}
Marketplace Cost Basis: {{currency .Report.MarketplaceValue}}

=== Financial Mix Snapshot ===
{{range .Chart}}{{printf "%-16s" .Label}} {{printf "%-*s" $.ChartWidth .Bar}} {{currency .Amount}}
{{end}}
Notes: Service revenue counts as pure profit.
`

	view := struct {
		summaryView
		ChartWidth int
	}{
		summaryView: buildSummaryView(report),
		ChartWidth:  chartWidth,
	}

	t, err := template.New("summary").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, view)
}

func buildSummaryView(report domain.Report) summaryView {
	roi := report.AvgROI
	if roi < 0 {
		roi = 0
	}

	measures := []struct {
		label  string
		amount float64
	}{
		{"Product Revenue", report.ProductRevenue},
		{"Service Revenue", report.ServiceRevenue},
		{"COGS", report.COGS},
		{"Total Profit", report.TotalProfit},
	}

	max := 0.0
	for _, m := range measures {
		if m.amount > max {
			max = m.amount
		}
	}

	chart := make([]chartRow, 0, len(measures))
	for _, m := range measures {
		chart = append(chart, chartRow{
			Label:  m.label,
			Amount: m.amount,
			Bar:    bar(m.amount, max),
		})
	}

	return summaryView{
		Report:           report,
		Chart:            chart,
		ServiceItemCount: len(report.OtherIncomeItems),
		ProjectedRevenue: report.TotalActiveValue * (1 + roi/100),
	}
}

// bar renders an amount as a chart bar scaled against the largest measure.
// Negative amounts render empty rather than with a reversed bar.
func bar(amount, max float64) string {
	if max <= 0 || amount <= 0 {
		return ""
	}
	n := int(amount / max * chartWidth)
	if n == 0 {
		n = 1
	}
	return strings.Repeat("█", n)
}
