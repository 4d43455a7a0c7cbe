// ABOUTME: Mappers between query DTOs and domain values
// ABOUTME: Keeps the wire shape out of the core packages

package mappers

import (
	"time"

	"feedfilter-api/api/dto/requests"
	"feedfilter-api/api/dto/responses"
	"feedfilter-api/core/domain"
)

// ToQuery converts a request into a domain Query
func ToQuery(req *requests.QueryRequest, fallback time.Duration) (domain.Query, error) {
	budget, err := req.Budget(fallback)
	if err != nil {
		return domain.Query{}, err
	}
	return domain.NewQuery(req.Value, &budget), nil
}

// ToQueryResponse wraps matches in the embryo list shape. An empty result
// serializes as an empty array.
func ToQueryResponse(results domain.ResultSet) responses.QueryResponse {
	list := make([]responses.Embryo, 0, len(results))
	for _, rec := range results {
		list = append(list, responses.Embryo{
			Properties: responses.MatchProperties{
				URL:    rec.URL,
				Resume: rec.Resume,
			},
		})
	}
	return responses.QueryResponse{EmbryoList: list}
}
