// ABOUTME: Response DTOs for the query endpoint
// ABOUTME: Wraps match records in the embryo_list/properties wire shape

package responses

// MatchProperties is the payload of one match
type MatchProperties struct {
	URL    string `json:"url" doc:"Link of the matching item"`
	Resume string `json:"resume" doc:"Description of the matching item"`
}

// Embryo wraps one match record
type Embryo struct {
	Properties MatchProperties `json:"properties"`
}

// QueryResponse is the body returned by POST /query
type QueryResponse struct {
	EmbryoList []Embryo `json:"embryo_list" doc:"Matches in source order, then document order"`
}
