// Package feeds renders machine-readable site documents (RSS, sitemap)
// from loaded collections.
package feeds

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/seralys/inkwell/internal/loader"
	"github.com/seralys/inkwell/internal/source"
)

// Site describes the published site the feeds point at.
type Site struct {
	Title       string
	Description string
	BaseURL     string
}

// rss is the RSS 2.0 document root.
type rss struct {
	XMLName xml.Name `xml:"rss"`
	Version string   `xml:"version,attr"`
	Channel channel  `xml:"channel"`
}

type channel struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	Items       []item `xml:"item"`
}

type item struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	GUID        string `xml:"guid"`
	Description string `xml:"description"`
	Category    string `xml:"category"`
	PubDate     string `xml:"pubDate"`
}

// RSSFeedSize caps the number of items in the feed.
const RSSFeedSize = 20

// RenderRSS builds the RSS 2.0 feed of the newest posts.
func RenderRSS(site Site, src source.Source) ([]byte, error) {
	base := strings.TrimRight(site.BaseURL, "/")
	posts := loader.RecentPosts(src.Posts(), RSSFeedSize)

	items := make([]item, len(posts))
	for i, p := range posts {
		link := fmt.Sprintf("%s/blog/%s", base, p.Slug)
		items[i] = item{
			Title:       p.Title,
			Link:        link,
			GUID:        link,
			Description: strings.TrimSpace(p.Excerpt),
			Category:    p.Category,
			PubDate:     p.Date.Format(time.RFC1123Z),
		}
	}

	doc := rss{
		Version: "2.0",
		Channel: channel{
			Title:       site.Title,
			Link:        base,
			Description: site.Description,
			Items:       items,
		},
	}
	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("feeds: rss: %w", err)
	}
	return append([]byte(xml.Header), out...), nil
}

// RSSHandler serves the feed at request time, always from current content.
func RSSHandler(site Site, src source.Source) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		out, err := RenderRSS(site, src)
		if err != nil {
			http.Error(w, "feed unavailable", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
		_, _ = w.Write(out)
	}
}
