package report

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/fuegovic/homebox-analytics/pkg/adapters"
	"github.com/fuegovic/homebox-analytics/pkg/models/store"
	"github.com/fuegovic/homebox-analytics/pkg/services/analysis"
	"github.com/fuegovic/homebox-analytics/pkg/services/period"
)

const dayFormat = "2006-01-02"

// ItemSource supplies raw inventory rows, regardless of where they come from.
type ItemSource interface {
	FetchItems(ctx context.Context) ([]store.ItemRow, error)
}

type Handler struct {
	source   ItemSource
	settings analysis.Settings
	now      func() time.Time
}

func NewHandler(source ItemSource, settings analysis.Settings) *Handler {
	return &Handler{
		source:   source,
		settings: settings,
		now:      time.Now,
	}
}

// GetReport computes the financial report for the requested period. Bounds
// default to the current calendar month when absent.
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	now := h.now()
	thisMonth := period.Month(now.Year(), now.Month())

	from, err := parseDateParam(r, "from", thisMonth.Start)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	to, err := parseDateParam(r, "to", thisMonth.End)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rows, err := h.source.FetchItems(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to fetch items")
		http.Error(w, "failed to fetch items", http.StatusBadGateway)
		return
	}

	items := adapters.MapStoreItemsToDomain(rows)
	result := analysis.ComputeReport(items, from, to, now, h.settings)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(adapters.MapReportDomainToApi(result)); err != nil {
		logger.Error().Err(err).Msg("failed to encode report")
	}
}

// GetItems reports how many items the source currently serves. Diagnostic
// endpoint for checking a connection before running reports.
func (h *Handler) GetItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	rows, err := h.source.FetchItems(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to fetch items")
		http.Error(w, "failed to fetch items", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(map[string]int{"count": len(rows)})
	if err != nil {
		logger.Error().Err(err).Msg("failed to encode item count")
	}
}

func parseDateParam(r *http.Request, name string, defaultDate time.Time) (time.Time, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return defaultDate, nil
	}
	return time.ParseInLocation(dayFormat, value, time.UTC)
}
