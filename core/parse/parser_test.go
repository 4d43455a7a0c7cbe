package parse

import (
	"testing"

	coreerrors "feedfilter-api/core/errors"
	"feedfilter-api/core/match"
)

const rssTwoItems = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Test Feed</title>
    <link>https://example.com</link>
    <description>Test Description</description>
    <item>
      <title>Rust 2.0 released</title>
      <link>http://x/1</link>
      <description>...</description>
    </item>
    <item>
      <title>Go 1.30 is out</title>
      <link>http://x/2</link>
      <description>Generics everywhere</description>
    </item>
  </channel>
</rss>`

func TestParse_RSSDocumentOrder(t *testing.T) {
	items, err := NewFeedParser().Parse([]byte(rssTwoItems))

	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(items))
	}
	if items[0].Title != "Rust 2.0 released" || items[0].Link != "http://x/1" || items[0].Description != "..." {
		t.Errorf("items[0] = %+v", items[0])
	}
	if items[1].Link != "http://x/2" {
		t.Errorf("items[1].Link = %q, want http://x/2", items[1].Link)
	}
}

func TestParse_MissingFieldsNormalizeToEmpty(t *testing.T) {
	content := `<?xml version="1.0"?>
<rss version="2.0"><channel><title>t</title>
  <item><title>Only a title</title></item>
  <item><link>http://x/only-link</link></item>
</channel></rss>`

	items, err := NewFeedParser().Parse([]byte(content))

	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(items))
	}
	if items[0].Link != "" || items[0].Description != "" {
		t.Errorf("items[0] = %+v, want empty link and description", items[0])
	}
	if items[1].Title != "" || items[1].Description != "" {
		t.Errorf("items[1] = %+v, want empty title and description", items[1])
	}
}

func TestParse_ContentIsNotDescription(t *testing.T) {
	content := `<?xml version="1.0"?>
<rss version="2.0" xmlns:content="http://purl.org/rss/1.0/modules/content/">
  <channel><title>t</title>
    <item>
      <title>Weekly notes</title>
      <link>http://x/notes</link>
      <content:encoded>secret body about kubernetes</content:encoded>
    </item>
  </channel>
</rss>`

	items, err := NewFeedParser().Parse([]byte(content))

	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("len(items) = %d, want 1", len(items))
	}
	if items[0].Description != "" {
		t.Errorf("Description = %q, want empty", items[0].Description)
	}
	if match.Matches(items[0], match.Normalize("kubernetes")) {
		t.Error("a term found only in the body content should not match")
	}
}

func TestParse_Atom(t *testing.T) {
	content := `<?xml version="1.0" encoding="utf-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>Atom Feed</title>
  <id>urn:uuid:feed</id>
  <updated>2024-01-01T00:00:00Z</updated>
  <entry>
    <title>Atom entry</title>
    <link href="http://x/atom/1"/>
    <id>urn:uuid:1</id>
    <updated>2024-01-01T00:00:00Z</updated>
    <summary>An atom summary</summary>
  </entry>
</feed>`

	items, err := NewFeedParser().Parse([]byte(content))

	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("len(items) = %d, want 1", len(items))
	}
	if items[0].Link != "http://x/atom/1" {
		t.Errorf("Link = %q, want http://x/atom/1", items[0].Link)
	}
	if items[0].Description != "An atom summary" {
		t.Errorf("Description = %q, want %q", items[0].Description, "An atom summary")
	}
}

func TestParse_NoItems(t *testing.T) {
	content := `<?xml version="1.0"?><rss version="2.0"><channel><title>empty</title></channel></rss>`

	items, err := NewFeedParser().Parse([]byte(content))

	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("len(items) = %d, want 0", len(items))
	}
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty", ""},
		{"whitespace", "   \n\t"},
		{"html page", "<html><body>not a feed</body></html>"},
		{"plain text", "definitely not xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := NewFeedParser().Parse([]byte(tt.content))

			if err == nil {
				t.Fatal("Parse should fail for malformed content")
			}
			if !coreerrors.IsParse(err) {
				t.Errorf("error should be a ParseError, got %T", err)
			}
			if items != nil {
				t.Error("items should be nil on failure")
			}
		})
	}
}

func TestParse_Deterministic(t *testing.T) {
	parser := NewFeedParser()

	first, err1 := parser.Parse([]byte(rssTwoItems))
	second, err2 := parser.Parse([]byte(rssTwoItems))

	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}
	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("item %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}
