// Package api provides the HTTP layer of the feed filter service.
// It uses the Huma framework on a chi router for OpenAPI generation and
// request decoding.
//
// # Architecture
//
// - server.go: Huma API configuration, CORS and middleware chain
// - handlers/: query, health and source list handlers
// - dto/: request/response shapes and mappers to the core domain
// - middleware/: request logging and per-IP rate limiting
//
// # Endpoints
//
//	POST /query            {"value": "golang", "timeout": "5"}
//	GET  /health
//	GET  /sources
//	POST /sources/reload
//
// The OpenAPI document is served at /openapi.json and the docs UI at /docs.
//
// # Query responses
//
// A query always answers 200 with the matches found inside its budget,
// even when sources fail or the budget runs out:
//
//	{"embryo_list": [{"properties": {"url": "...", "resume": "..."}}]}
//
// A timeout that is present but not an unsigned integer is rejected with
// 400 in the RFC 7807 error format.
package api
