// ABOUTME: Feed parser decodes RSS, Atom and JSON feeds into domain items
// ABOUTME: Pure function of its input; missing fields normalize to empty strings

package parse

import (
	"bytes"
	"errors"

	coreerrors "feedfilter-api/core/errors"
	"feedfilter-api/core/domain"
	"github.com/mmcdole/gofeed"
)

// FeedParser implements interfaces.Parser using gofeed
type FeedParser struct{}

// NewFeedParser creates a new feed parser
func NewFeedParser() *FeedParser {
	return &FeedParser{}
}

// Parse decodes content into items in document order.
// A document that is not a recognizable feed yields *errors.ParseError.
func (p *FeedParser) Parse(content []byte) ([]domain.FeedItem, error) {
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, &coreerrors.ParseError{Err: errors.New("empty feed content")}
	}

	// gofeed parsers keep per-document state, so one per call
	parsed, err := gofeed.NewParser().Parse(bytes.NewReader(content))
	if err != nil {
		return nil, &coreerrors.ParseError{Err: err}
	}

	items := make([]domain.FeedItem, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		if item == nil {
			continue
		}
		items = append(items, convertItem(item))
	}

	return items, nil
}

// convertItem projects a gofeed item onto the fields used for matching.
// Body content is not part of the item: only the published description is kept.
func convertItem(item *gofeed.Item) domain.FeedItem {
	link := item.Link
	if link == "" && len(item.Links) > 0 {
		link = item.Links[0]
	}

	return domain.FeedItem{
		Title:       item.Title,
		Link:        link,
		Description: item.Description,
	}
}
