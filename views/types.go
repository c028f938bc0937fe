package views

import "html/template"

// SiteConfig holds the site-wide settings every page needs.
type SiteConfig struct {
	Name        string
	URL         string
	Description string
	Author      string
	Email       string
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
}

// PostSummary is one post as shown in a list, with its navigation targets.
type PostSummary struct {
	ID          string
	Title       string
	Author      string
	Date        string
	Category    string
	Series      string
	Part        int
	Description string

	Href         string
	AuthorHref   string
	CategoryHref string
	SeriesHref   string
}

// PostPage is a full post with its rendered body.
type PostPage struct {
	PostSummary
	Body   template.HTML
	JSONLD template.JS
}

// Facet is a clickable filter value on the search page.
type Facet struct {
	Label  string
	Href   string
	Active bool
}

// SearchPage is the filtered list view.
type SearchPage struct {
	Join       bool
	Criteria   []string
	Posts      []PostSummary
	Authors    []Facet
	Categories []Facet
	Series     []Facet
	ModeHref   string
}
