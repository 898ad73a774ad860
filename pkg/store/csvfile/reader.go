// Package csvfile reads Homebox CSV exports into raw item rows.
package csvfile

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/fuegovic/homebox-analytics/pkg/models/store"
)

// ReadItems parses a Homebox CSV export. Columns are located by header name;
// the "HB." prefix Homebox puts on export columns is optional. Columns missing
// from the file yield empty strings, extra columns are ignored.
func ReadItems(r io.Reader) ([]store.ItemRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty csv input")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		key := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), "HB."))
		index[key] = i
	}

	field := func(record []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}

	var rows []store.ItemRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv record: %w", err)
		}

		rows = append(rows, store.ItemRow{
			Name:          field(record, "name"),
			Location:      field(record, "location"),
			Labels:        field(record, "labels"),
			AssetID:       field(record, "asset_id"),
			Quantity:      field(record, "quantity"),
			Description:   field(record, "description"),
			Notes:         field(record, "notes"),
			Archived:      field(record, "archived"),
			Insured:       field(record, "insured"),
			PurchasePrice: field(record, "purchase_price"),
			PurchaseFrom:  field(record, "purchase_from"),
			PurchaseTime:  field(record, "purchase_time"),
			SoldTo:        field(record, "sold_to"),
			SoldPrice:     field(record, "sold_price"),
			SoldTime:      field(record, "sold_time"),
		})
	}

	return rows, nil
}
