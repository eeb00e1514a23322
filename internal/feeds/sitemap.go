package feeds

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/seralys/inkwell/internal/source"
)

// urlSet is the sitemap document root.
type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// RenderSitemap builds the XML sitemap covering the landing pages, every
// post, and the thoughts page.
func RenderSitemap(site Site, src source.Source) ([]byte, error) {
	base := strings.TrimRight(site.BaseURL, "/")

	urls := []sitemapURL{
		{Loc: base},
		{Loc: base + "/blog"},
		{Loc: base + "/thoughts"},
	}
	for _, p := range src.Posts() {
		urls = append(urls, sitemapURL{
			Loc:     fmt.Sprintf("%s/blog/%s", base, p.Slug),
			LastMod: p.Date.Format(time.DateOnly),
		})
	}

	doc := urlSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("feeds: sitemap: %w", err)
	}
	return append([]byte(xml.Header), out...), nil
}

// SitemapHandler serves the sitemap at request time.
func SitemapHandler(site Site, src source.Source) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		out, err := RenderSitemap(site, src)
		if err != nil {
			http.Error(w, "sitemap unavailable", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/xml; charset=utf-8")
		_, _ = w.Write(out)
	}
}
