package homebox

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fuegovic/homebox-analytics/pkg/models/domain"
)

func newTestClient(serverURL string) *Client {
	c := NewClient(domain.ConnectionProfile{Name: "test", Host: serverURL + "/", Token: "secret"})
	c.pageSize = 2
	return c
}

func TestFetchItems(t *testing.T) {
	details := map[string]string{
		"a1": `{
			"id": "a1", "name": "camera", "archived": true, "insured": false,
			"purchasePrice": 100.5, "purchaseTime": "2025-10-01T00:00:00Z",
			"soldPrice": 150, "soldTime": "2025-11-10T14:30:00Z",
			"location": {"name": "📦 Sold"},
			"labels": [{"name": "electronics"}, {"name": "vintage"}]
		}`,
		"b2": `{
			"id": "b2", "name": "lamp", "archived": false, "insured": true,
			"purchasePrice": 20, "purchaseTime": "0001-01-01T00:00:00Z",
			"soldPrice": 0, "soldTime": "0001-01-01T00:00:00Z"
		}`,
		"c3": `{"id": "c3", "name": "chair"}`,
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		if r.URL.Path == "/api/v1/items" {
			assert.Equal(t, "true", r.URL.Query().Get("includeArchived"))
			page, _ := strconv.Atoi(r.URL.Query().Get("page"))
			pages := [][]string{{"a1", "b2"}, {"c3"}}
			items := []map[string]string{}
			if page >= 1 && page <= len(pages) {
				for _, id := range pages[page-1] {
					items = append(items, map[string]string{"id": id})
				}
			}
			_ = json.NewEncoder(w).Encode(map[string]any{"items": items, "total": 3})
			return
		}

		id := r.URL.Path[len("/api/v1/items/"):]
		body, ok := details[id]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		fmt.Fprint(w, body)
	}))
	defer server.Close()

	rows, err := newTestClient(server.URL).FetchItems(context.Background())

	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "camera", rows[0].Name)
	assert.Equal(t, "📦 Sold", rows[0].Location)
	assert.Equal(t, "electronics,vintage", rows[0].Labels)
	assert.Equal(t, "true", rows[0].Archived)
	assert.Equal(t, "100.5", rows[0].PurchasePrice)
	assert.Equal(t, "2025-10-01", rows[0].PurchaseTime)
	assert.Equal(t, "2025-11-10", rows[0].SoldTime)
	assert.Equal(t, "150", rows[0].SoldPrice)

	// zero-year sentinel dates flatten to empty, matching the CSV shape
	assert.Equal(t, "lamp", rows[1].Name)
	assert.Equal(t, "", rows[1].PurchaseTime)
	assert.Equal(t, "", rows[1].SoldTime)
	assert.Equal(t, "true", rows[1].Insured)

	// absent numeric fields default like the export does
	assert.Equal(t, "chair", rows[2].Name)
	assert.Equal(t, "0", rows[2].PurchasePrice)
	assert.Equal(t, "1", rows[2].Quantity)
	assert.Equal(t, "", rows[2].Location)
}

func TestFetchItems_SkipsFailedDetails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/v1/items" {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"items": []map[string]string{{"id": "ok"}, {"id": "broken"}},
				"total": 2,
			})
			return
		}
		if r.URL.Path == "/api/v1/items/ok" {
			fmt.Fprint(w, `{"id": "ok", "name": "widget"}`)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	rows, err := newTestClient(server.URL).FetchItems(context.Background())

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "widget", rows[0].Name)
}

func TestFetchItems_ListFailureIsFatal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).FetchItems(context.Background())
	assert.Error(t, err)
}

func TestFetchItems_EmptyInstance(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"items": []any{}, "total": 0})
	}))
	defer server.Close()

	rows, err := newTestClient(server.URL).FetchItems(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
}
