// ABOUTME: Response DTOs for health and source list endpoints
// ABOUTME: Reports the loaded source snapshot and its load time

package responses

import "time"

// HealthResponse is the body returned by GET /health
type HealthResponse struct {
	Status   string    `json:"status" example:"ok"`
	Sources  int       `json:"sources" doc:"Number of configured source endpoints"`
	LoadedAt time.Time `json:"loaded_at" doc:"When the source list was last loaded"`
}

// SourcesResponse is the body returned by GET /sources
type SourcesResponse struct {
	Path     string    `json:"path" doc:"Source list file"`
	Sources  []string  `json:"sources"`
	LoadedAt time.Time `json:"loaded_at"`
}

// ReloadResponse is the body returned by POST /sources/reload
type ReloadResponse struct {
	Sources int `json:"sources" doc:"Number of source endpoints after the reload"`
}
