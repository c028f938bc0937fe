package homepage

import (
	"encoding/xml"
	"net/http"
	"slices"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/eringen/homepage/views"
)

const (
	mimeRSS      = "application/rss+xml; charset=utf-8"
	mimeXML      = "application/xml; charset=utf-8"
	sitemapXMLNS = "http://www.sitemaps.org/schemas/sitemap/0.9"
)

// sitemapPages are the fixed pages listed after the home page.
var sitemapPages = []string{"about", "resume", "contact", "blog"}

type feed struct {
	XMLName xml.Name    `xml:"rss"`
	Version string      `xml:"version,attr"`
	Channel feedChannel `xml:"channel"`
}

type feedChannel struct {
	Title         string     `xml:"title"`
	Link          string     `xml:"link"`
	Description   string     `xml:"description"`
	LastBuildDate string     `xml:"lastBuildDate,omitempty"`
	Items         []feedItem `xml:"item"`
}

type feedItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description,omitempty"`
	Author      string `xml:"author,omitempty"`
	Category    string `xml:"category,omitempty"`
	PubDate     string `xml:"pubDate"`
	GUID        string `xml:"guid"`
}

type urlSet struct {
	XMLName xml.Name   `xml:"urlset"`
	XMLNS   string     `xml:"xmlns,attr"`
	URLs    []urlEntry `xml:"url"`
}

type urlEntry struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// buildFeed returns an RSS 2.0 document of posts, newest first. Posts sharing
// a date keep their store order.
func buildFeed(site SiteConfig, posts []Post) feed {
	sorted := slices.Clone(posts)
	slices.SortStableFunc(sorted, func(x, y Post) int {
		return y.Published.Compare(x.Published)
	})

	ch := feedChannel{
		Title:       site.Name,
		Link:        views.SiteURL(site.URL),
		Description: site.Description,
		Items:       make([]feedItem, 0, len(sorted)),
	}
	if len(sorted) > 0 {
		ch.LastBuildDate = sorted[0].Published.Format(time.RFC1123Z)
	}
	for _, p := range sorted {
		link := views.SiteURL(site.URL, "blog", p.ID)
		ch.Items = append(ch.Items, feedItem{
			Title:       p.Title,
			Link:        link,
			Description: p.Description,
			Author:      p.Author,
			Category:    p.Category,
			PubDate:     p.Published.Format(time.RFC1123Z),
			GUID:        link,
		})
	}
	return feed{Version: "2.0", Channel: ch}
}

// buildSitemap lists the home page, the fixed pages and every post.
func buildSitemap(base string, posts []Post) urlSet {
	set := urlSet{XMLNS: sitemapXMLNS}
	set.URLs = append(set.URLs, urlEntry{Loc: views.SiteURL(base)})
	for _, page := range sitemapPages {
		set.URLs = append(set.URLs, urlEntry{Loc: views.SiteURL(base, page)})
	}
	for _, p := range posts {
		set.URLs = append(set.URLs, urlEntry{
			Loc:     views.SiteURL(base, "blog", p.ID),
			LastMod: p.Date(),
		})
	}
	return set
}

func writeXML(c echo.Context, contentType string, doc any) error {
	out, err := xml.Marshal(doc)
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, contentType, append([]byte(xml.Header), out...))
}
