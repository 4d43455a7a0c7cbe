// ABOUTME: Decoders for source list files in JSON, TOML, YAML and OPML
// ABOUTME: Every format yields the ordered rss_feeds endpoint list

package sources

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// sourceList is the document shape shared by the JSON, TOML and YAML formats
type sourceList struct {
	RSSFeeds *[]string `json:"rss_feeds" toml:"rss_feeds" yaml:"rss_feeds"`
}

// opmlDocument is the subset of OPML 2.0 needed to collect feed URLs
type opmlDocument struct {
	XMLName xml.Name      `xml:"opml"`
	Body    []opmlOutline `xml:"body>outline"`
}

type opmlOutline struct {
	XMLURL   string        `xml:"xmlUrl,attr"`
	Outlines []opmlOutline `xml:"outline"`
}

// decodeSourceList picks a decoder by file extension; unknown extensions are JSON.
// found is false when the document has no rss_feeds entry.
func decodeSourceList(path string, data []byte) (feeds []string, found bool, err error) {
	var doc sourceList

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		_, err = toml.Decode(string(data), &doc)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &doc)
	case ".opml":
		return decodeOPML(data)
	default:
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, false, err
	}

	if doc.RSSFeeds == nil {
		return nil, false, nil
	}
	return cleanEndpoints(*doc.RSSFeeds), true, nil
}

func decodeOPML(data []byte) ([]string, bool, error) {
	var doc opmlDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, false, fmt.Errorf("failed to parse OPML: %w", err)
	}

	var feeds []string
	collectOutlines(&feeds, doc.Body)
	return cleanEndpoints(feeds), len(feeds) > 0, nil
}

// collectOutlines walks nested outlines depth-first, keeping document order
func collectOutlines(result *[]string, outlines []opmlOutline) {
	for _, outline := range outlines {
		if outline.XMLURL != "" {
			*result = append(*result, outline.XMLURL)
		}
		if len(outline.Outlines) > 0 {
			collectOutlines(result, outline.Outlines)
		}
	}
}

// cleanEndpoints trims entries and drops blanks; duplicates are kept
func cleanEndpoints(in []string) []string {
	out := make([]string, 0, len(in))
	for _, e := range in {
		if e = strings.TrimSpace(e); e != "" {
			out = append(out, e)
		}
	}
	return out
}
