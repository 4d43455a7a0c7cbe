// ABOUTME: Health and source list handlers for the Huma API
// ABOUTME: Exposes the loaded source snapshot and an explicit reload command

package handlers

import (
	"context"
	"net/http"

	"feedfilter-api/api/dto/responses"
	"feedfilter-api/core/sources"

	"github.com/danielgtaylor/huma/v2"
)

// SourceCatalog is the source list as seen by the API
type SourceCatalog interface {
	Snapshot() *sources.Snapshot
	Reload(ctx context.Context) (int, error)
	Path() string
}

// SourcesHandler serves health and source list routes
type SourcesHandler struct {
	catalog SourceCatalog
}

// NewSourcesHandler creates a new sources handler
func NewSourcesHandler(catalog SourceCatalog) *SourcesHandler {
	return &SourcesHandler{catalog: catalog}
}

// RegisterRoutes registers health and source routes
func (h *SourcesHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Service health",
		Tags:        []string{"Health"},
	}, h.Health)

	huma.Register(api, huma.Operation{
		OperationID: "listSources",
		Method:      http.MethodGet,
		Path:        "/sources",
		Summary:     "List configured feeds",
		Tags:        []string{"Sources"},
	}, h.List)

	huma.Register(api, huma.Operation{
		OperationID: "reloadSources",
		Method:      http.MethodPost,
		Path:        "/sources/reload",
		Summary:     "Reload the source list file",
		Description: "Re-reads the source list. A failed load leaves the service with no sources until the next successful reload.",
		Tags:        []string{"Sources"},
	}, h.Reload)
}

// HealthOutput defines the output for the Health operation
type HealthOutput struct {
	Body responses.HealthResponse
}

// Health handles GET /health
func (h *SourcesHandler) Health(ctx context.Context, input *struct{}) (*HealthOutput, error) {
	snap := h.catalog.Snapshot()
	return &HealthOutput{
		Body: responses.HealthResponse{
			Status:   "ok",
			Sources:  len(snap.Sources),
			LoadedAt: snap.LoadedAt,
		},
	}, nil
}

// SourcesOutput defines the output for the List operation
type SourcesOutput struct {
	Body responses.SourcesResponse
}

// List handles GET /sources
func (h *SourcesHandler) List(ctx context.Context, input *struct{}) (*SourcesOutput, error) {
	snap := h.catalog.Snapshot()
	list := make([]string, len(snap.Sources))
	copy(list, snap.Sources)

	return &SourcesOutput{
		Body: responses.SourcesResponse{
			Path:     h.catalog.Path(),
			Sources:  list,
			LoadedAt: snap.LoadedAt,
		},
	}, nil
}

// ReloadOutput defines the output for the Reload operation
type ReloadOutput struct {
	Body responses.ReloadResponse
}

// Reload handles POST /sources/reload. A failed load leaves the list empty
// and answers 503 until the next successful reload.
func (h *SourcesHandler) Reload(ctx context.Context, input *struct{}) (*ReloadOutput, error) {
	n, err := h.catalog.Reload(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &ReloadOutput{Body: responses.ReloadResponse{Sources: n}}, nil
}
