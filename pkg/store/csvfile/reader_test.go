package csvfile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadItems(t *testing.T) {
	input := strings.Join([]string{
		"HB.name,HB.location,HB.labels,HB.archived,HB.insured,HB.purchase_price,HB.purchase_time,HB.sold_price,HB.sold_time",
		"camera,📦 Storage/ShelfA,\"electronics,vintage\",true,false,100.50,2025-10-01,150,2025-11-10",
		"lamp,NFS,,false,false,20,0001-01-01,0,0001-01-01",
	}, "\n")

	rows, err := ReadItems(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "camera", rows[0].Name)
	assert.Equal(t, "📦 Storage/ShelfA", rows[0].Location)
	assert.Equal(t, "electronics,vintage", rows[0].Labels)
	assert.Equal(t, "true", rows[0].Archived)
	assert.Equal(t, "100.50", rows[0].PurchasePrice)
	assert.Equal(t, "2025-11-10", rows[0].SoldTime)

	assert.Equal(t, "lamp", rows[1].Name)
	assert.Equal(t, "0001-01-01", rows[1].PurchaseTime)
}

func TestReadItems_UnprefixedHeader(t *testing.T) {
	input := "name,location,purchase_price\nwidget,Shelf,12\n"

	rows, err := ReadItems(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "widget", rows[0].Name)
	assert.Equal(t, "12", rows[0].PurchasePrice)
	// column absent from the file reads as empty
	assert.Equal(t, "", rows[0].SoldPrice)
}

func TestReadItems_ShortRecord(t *testing.T) {
	input := "HB.name,HB.location,HB.purchase_price\nwidget,Shelf\n"

	rows, err := ReadItems(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "widget", rows[0].Name)
	assert.Equal(t, "", rows[0].PurchasePrice)
}

func TestReadItems_EmptyInput(t *testing.T) {
	_, err := ReadItems(strings.NewReader(""))
	assert.Error(t, err)
}

func TestReadItems_HeaderOnly(t *testing.T) {
	rows, err := ReadItems(strings.NewReader("HB.name,HB.location\n"))
	require.NoError(t, err)
	assert.Empty(t, rows)
}
