// Package homebox pulls inventory items from a Homebox instance over its
// REST API and flattens them into the same raw row shape the CSV importer
// produces, so downstream analysis never branches on the source.
package homebox

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/fuegovic/homebox-analytics/pkg/models/domain"
	"github.com/fuegovic/homebox-analytics/pkg/models/store"
)

const (
	defaultPageSize = 100
	requestTimeout  = 10 * time.Second
)

type Client struct {
	baseURL  string
	token    string
	http     *http.Client
	pageSize int
}

func NewClient(profile domain.ConnectionProfile) *Client {
	return &Client{
		baseURL:  strings.TrimRight(profile.Host, "/"),
		token:    profile.Token,
		http:     &http.Client{Timeout: requestTimeout},
		pageSize: defaultPageSize,
	}
}

type itemsPage struct {
	Items []struct {
		ID string `json:"id"`
	} `json:"items"`
	Total int `json:"total"`
}

type itemDetail struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Description   string      `json:"description"`
	Notes         string      `json:"notes"`
	AssetID       string      `json:"assetId"`
	Quantity      json.Number `json:"quantity"`
	Archived      bool        `json:"archived"`
	Insured       bool        `json:"insured"`
	PurchasePrice json.Number `json:"purchasePrice"`
	PurchaseFrom  string      `json:"purchaseFrom"`
	PurchaseTime  string      `json:"purchaseTime"`
	SoldTo        string      `json:"soldTo"`
	SoldPrice     json.Number `json:"soldPrice"`
	SoldTime      string      `json:"soldTime"`
	Location      *struct {
		Name string `json:"name"`
	} `json:"location"`
	Labels []struct {
		Name string `json:"name"`
	} `json:"labels"`
}

// FetchItems downloads the full item catalog: the paginated listing only
// carries summaries, so every item is fetched individually for its sold
// fields. Items whose detail request fails are skipped with a warning rather
// than failing the whole import.
func (c *Client) FetchItems(ctx context.Context) ([]store.ItemRow, error) {
	logger := zerolog.Ctx(ctx)

	ids, err := c.listItemIDs(ctx)
	if err != nil {
		return nil, err
	}
	logger.Info().Int("count", len(ids)).Msg("fetching item details")

	rows := make([]store.ItemRow, 0, len(ids))
	for _, id := range ids {
		detail, err := c.getItem(ctx, id)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			logger.Warn().Err(err).Str("item_id", id).Msg("skipping item")
			continue
		}
		rows = append(rows, mapItemDetailToRow(*detail))
	}
	return rows, nil
}

func (c *Client) listItemIDs(ctx context.Context) ([]string, error) {
	var ids []string
	for page := 1; ; page++ {
		result, err := c.listPage(ctx, page)
		if err != nil {
			return nil, err
		}
		if len(result.Items) == 0 {
			break
		}
		for _, item := range result.Items {
			ids = append(ids, item.ID)
		}
		if len(ids) >= result.Total {
			break
		}
	}
	return ids, nil
}

func (c *Client) listPage(ctx context.Context, page int) (*itemsPage, error) {
	query := url.Values{}
	query.Set("page", fmt.Sprintf("%d", page))
	query.Set("pageSize", fmt.Sprintf("%d", c.pageSize))
	query.Set("includeArchived", "true")

	var result itemsPage
	err := c.get(ctx, "/api/v1/items?"+query.Encode(), &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list items page %d: %w", page, err)
	}
	return &result, nil
}

func (c *Client) getItem(ctx context.Context, id string) (*itemDetail, error) {
	var detail itemDetail
	err := c.get(ctx, "/api/v1/items/"+url.PathEscape(id), &detail)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch item %s: %w", id, err)
	}
	return &detail, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func mapItemDetailToRow(detail itemDetail) store.ItemRow {
	location := ""
	if detail.Location != nil {
		location = detail.Location.Name
	}

	labels := make([]string, 0, len(detail.Labels))
	for _, label := range detail.Labels {
		labels = append(labels, label.Name)
	}

	return store.ItemRow{
		Name:          detail.Name,
		Location:      location,
		Labels:        strings.Join(labels, ","),
		AssetID:       detail.AssetID,
		Quantity:      numberOr(detail.Quantity, "1"),
		Description:   detail.Description,
		Notes:         detail.Notes,
		Archived:      formatBool(detail.Archived),
		Insured:       formatBool(detail.Insured),
		PurchasePrice: numberOr(detail.PurchasePrice, "0"),
		PurchaseFrom:  detail.PurchaseFrom,
		PurchaseTime:  extractDate(detail.PurchaseTime),
		SoldTo:        detail.SoldTo,
		SoldPrice:     numberOr(detail.SoldPrice, "0"),
		SoldTime:      extractDate(detail.SoldTime),
	}
}

// extractDate truncates an API timestamp to its date part. The zero-year
// sentinel Homebox uses for unset dates maps to empty.
func extractDate(s string) string {
	if s == "" || strings.HasPrefix(s, "0001") {
		return ""
	}
	if i := strings.IndexByte(s, 'T'); i >= 0 {
		return s[:i]
	}
	return s
}

func formatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func numberOr(n json.Number, fallback string) string {
	if n.String() == "" {
		return fallback
	}
	return n.String()
}
