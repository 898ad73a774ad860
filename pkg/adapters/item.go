package adapters

import (
	"strconv"
	"strings"
	"time"

	"github.com/fuegovic/homebox-analytics/pkg/models/domain"
	"github.com/fuegovic/homebox-analytics/pkg/models/store"
)

const dayFormat = "2006-01-02"

// MapStoreItemToDomain parses one raw ingestion row into a domain item.
// Parsing is deliberately tolerant: bad dates become nil, bad numbers become 0.
// A syntactically sparse row never fails the mapping.
func MapStoreItemToDomain(row store.ItemRow) domain.Item {
	return domain.Item{
		Name:          row.Name,
		Location:      row.Location,
		Labels:        row.Labels,
		Archived:      row.Archived == "true",
		Insured:       row.Insured == "true",
		PurchasePrice: parsePrice(row.PurchasePrice),
		PurchaseTime:  parseDay(row.PurchaseTime),
		SoldPrice:     parsePrice(row.SoldPrice),
		SoldTime:      parseDay(row.SoldTime),
	}
}

// MapStoreItemsToDomain maps a full ingestion batch.
func MapStoreItemsToDomain(rows []store.ItemRow) []domain.Item {
	items := make([]domain.Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, MapStoreItemToDomain(row))
	}
	return items
}

// parseDay interprets a date string at day granularity. The zero-year sentinel
// Homebox writes for unset dates ("0001-01-01...") means absent, never epoch.
// Full timestamps are truncated to their date part.
func parseDay(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "0001") {
		return nil
	}
	if i := strings.IndexByte(s, 'T'); i >= 0 {
		s = s[:i]
	}
	t, err := time.ParseInLocation(dayFormat, s, time.UTC)
	if err != nil {
		return nil
	}
	return &t
}

func parsePrice(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
