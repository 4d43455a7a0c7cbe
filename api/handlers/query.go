// ABOUTME: Query handler for the Huma API
// ABOUTME: Runs a budgeted keyword search across all configured sources

package handlers

import (
	"context"
	"net/http"
	"time"

	"feedfilter-api/api/dto/mappers"
	"feedfilter-api/api/dto/requests"
	"feedfilter-api/api/dto/responses"
	"feedfilter-api/core/domain"
	"feedfilter-api/core/interfaces"

	"github.com/danielgtaylor/huma/v2"
)

// Searcher runs a query over the current source list
type Searcher interface {
	Search(ctx context.Context, query domain.Query) (domain.ResultSet, domain.SearchStats)
}

// QueryHandler handles search requests
type QueryHandler struct {
	searcher       Searcher
	defaultTimeout time.Duration
	logger         interfaces.Logger
}

// NewQueryHandler creates a new query handler. A non-positive defaultTimeout
// falls back to domain.DefaultTimeout.
func NewQueryHandler(searcher Searcher, defaultTimeout time.Duration, logger interfaces.Logger) *QueryHandler {
	if defaultTimeout <= 0 {
		defaultTimeout = domain.DefaultTimeout
	}
	return &QueryHandler{
		searcher:       searcher,
		defaultTimeout: defaultTimeout,
		logger:         interfaces.LoggerOrNop(logger),
	}
}

// RegisterRoutes registers the query route
func (h *QueryHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "query",
		Method:      http.MethodPost,
		Path:        "/query",
		Summary:     "Search configured feeds",
		Description: "Fetches every configured feed within the timeout and returns items whose title, link or description contain the search term",
		Tags:        []string{"Query"},
	}, h.Query)
}

// QueryInput defines the input for the Query operation
type QueryInput struct {
	Body requests.QueryRequest
}

// QueryOutput defines the output for the Query operation
type QueryOutput struct {
	Body responses.QueryResponse
}

// Query handles POST /query. Source failures and budget exhaustion still
// produce 200 with whatever matched; only a malformed timeout is an error.
func (h *QueryHandler) Query(ctx context.Context, input *QueryInput) (*QueryOutput, error) {
	query, err := mappers.ToQuery(&input.Body, h.defaultTimeout)
	if err != nil {
		fields := map[string]interface{}{"error": err.Error()}
		if input.Body.Timeout != nil {
			fields["timeout"] = *input.Body.Timeout
		}
		h.logger.Warn("Rejected query", fields)
		return nil, toHumaError(err)
	}

	results, _ := h.searcher.Search(ctx, query)

	return &QueryOutput{Body: mappers.ToQueryResponse(results)}, nil
}
