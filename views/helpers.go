package views

import (
	"encoding/json"
	"html/template"
	"net/url"
	"path"
	"strings"
)

// SiteURL resolves path segments against the site base URL. A URL with
// segments always ends in a slash, matching the routes.
func SiteURL(base string, segments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	if len(segments) == 0 {
		return u.String()
	}
	u.Path = path.Join(u.Path, path.Join(segments...))
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

const facetBase = "inline-block rounded px-2 py-1 mr-2 mb-2 text-sm bg-gray-300 dark:bg-gray-700 text-blue-400 dark:text-orange-600"

// FacetClass returns the classes of a search facet link.
func FacetClass(active bool) string {
	if active {
		return facetBase + " font-bold underline"
	}
	return facetBase
}

type ldThing struct {
	Type string `json:"@type"`
	Name string `json:"name,omitempty"`
	ID   string `json:"@id,omitempty"`
}

type ldWebsite struct {
	Context     string   `json:"@context"`
	Type        string   `json:"@type"`
	Name        string   `json:"name"`
	URL         string   `json:"url"`
	Description string   `json:"description,omitempty"`
	Author      *ldThing `json:"author,omitempty"`
}

type ldBlogPosting struct {
	Context          string  `json:"@context"`
	Type             string  `json:"@type"`
	Headline         string  `json:"headline"`
	Description      string  `json:"description,omitempty"`
	DatePublished    string  `json:"datePublished"`
	URL              string  `json:"url"`
	ArticleSection   string  `json:"articleSection,omitempty"`
	Author           ldThing `json:"author"`
	Publisher        ldThing `json:"publisher"`
	MainEntityOfPage ldThing `json:"mainEntityOfPage"`
}

// WebsiteJsonLD is the Schema.org WebSite block placed on every site page.
func WebsiteJsonLD(cfg SiteConfig) template.JS {
	doc := ldWebsite{
		Context:     "https://schema.org",
		Type:        "WebSite",
		Name:        cfg.Name,
		URL:         SiteURL(cfg.URL),
		Description: cfg.Description,
	}
	if cfg.Author != "" {
		doc.Author = &ldThing{Type: "Person", Name: cfg.Author}
	}
	return marshalJS(doc)
}

// BlogPostingJsonLD is the Schema.org BlogPosting block of a single post.
func BlogPostingJsonLD(cfg SiteConfig, post PostSummary) template.JS {
	u := SiteURL(cfg.URL, "blog", post.ID)
	return marshalJS(ldBlogPosting{
		Context:          "https://schema.org",
		Type:             "BlogPosting",
		Headline:         post.Title,
		Description:      post.Description,
		DatePublished:    post.Date,
		URL:              u,
		ArticleSection:   post.Category,
		Author:           ldThing{Type: "Person", Name: post.Author},
		Publisher:        ldThing{Type: "Organization", Name: cfg.Name},
		MainEntityOfPage: ldThing{Type: "WebPage", ID: u},
	})
}

func marshalJS(v any) template.JS {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return template.JS(b)
}
