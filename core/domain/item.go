// ABOUTME: FeedItem and MatchRecord domain models for a single syndicated entry
// ABOUTME: A MatchRecord is the externally visible projection of a matching item

package domain

// FeedItem represents one entry within a parsed feed.
// Fields missing from the source document are normalized to "".
type FeedItem struct {
	// Title is the item's headline; used for matching only
	Title string

	// Link is the URL of the full article
	Link string

	// Description is the item's summary as published by the source
	Description string
}

// MatchRecord is the projection of a matching FeedItem returned to callers
type MatchRecord struct {
	// URL is the matching item's link
	URL string `json:"url"`

	// Resume is the matching item's description
	Resume string `json:"resume"`
}

// ToMatchRecord projects the item's link and description into a MatchRecord
func (fi FeedItem) ToMatchRecord() MatchRecord {
	return MatchRecord{
		URL:    fi.Link,
		Resume: fi.Description,
	}
}
