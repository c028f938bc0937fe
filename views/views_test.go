package views

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
)

var testSite = SiteConfig{Name: "Test Site", URL: "https://example.com", Author: "Me", Email: "me@example.com"}

func renderString(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func TestBlogEmpty(t *testing.T) {
	got := renderString(t, Blog(testSite, nil))
	if !strings.Contains(got, "No posts here yet :p") {
		t.Errorf("empty blog should say so: %q", got)
	}
}

func TestBlogSummary(t *testing.T) {
	got := renderString(t, Blog(testSite, []PostSummary{{
		ID:           "p",
		Title:        "A <Title>",
		Author:       "Me",
		Date:         "2024-01-02",
		Category:     "Go",
		Series:       "Basics",
		Part:         3,
		Description:  "Teaser",
		Href:         "/blog/p/",
		AuthorHref:   "/search/?join=true&author=Me",
		CategoryHref: "/search/?join=true&category=Go",
		SeriesHref:   "/search/?join=true&series=Basics",
	}}))
	for _, want := range []string{
		"A &lt;Title&gt;",
		`href="/blog/p/"`,
		"2024-01-02",
		">Go</a>",
		">Basics</a>, part 3",
		"Teaser",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("blog output missing %q", want)
		}
	}
}

func TestPostBodyIsNotEscaped(t *testing.T) {
	got := renderString(t, Post(testSite, PostPage{
		PostSummary: PostSummary{ID: "p", Title: "T", Author: "Me", Date: "2024-01-02"},
		Body:        `<p class="mb-4 dark:text-white">hi</p>`,
		JSONLD:      BlogPostingJsonLD(testSite, PostSummary{ID: "p", Title: "T", Author: "Me"}),
	}))
	if !strings.Contains(got, `<p class="mb-4 dark:text-white">hi</p>`) {
		t.Errorf("post body should be inserted as HTML: %q", got)
	}
	if !strings.Contains(got, `"@type":"BlogPosting"`) {
		t.Errorf("post should carry JSON-LD: %q", got)
	}
	if !strings.Contains(got, "Back to Blog") {
		t.Errorf("post should link back to the blog")
	}
}

func TestPostNotFound(t *testing.T) {
	got := renderString(t, PostNotFound(testSite))
	if !strings.Contains(got, "Post not found") {
		t.Errorf("not found page = %q", got)
	}
}

func TestSearchEmpty(t *testing.T) {
	got := renderString(t, Search(testSite, SearchPage{ModeHref: "/search/?join=true"}))
	if !strings.Contains(got, "No posts found. Try broadening your search.") {
		t.Errorf("empty search should say so: %q", got)
	}
	if !strings.Contains(got, "No filters selected.") {
		t.Errorf("empty search should mention missing filters")
	}
}

func TestSearchCriteria(t *testing.T) {
	got := renderString(t, Search(testSite, SearchPage{
		Join:     true,
		Criteria: []string{"category Go", "author Me"},
		Authors:  []Facet{{Label: "Me", Href: "/search/?join=true&author=Me", Active: true}},
	}))
	if !strings.Contains(got, "Posts matching all of: category Go, author Me") {
		t.Errorf("criteria line missing: %q", got)
	}
	if !strings.Contains(got, "match any instead") {
		t.Errorf("mode toggle missing")
	}
	if !strings.Contains(got, "font-bold underline") {
		t.Errorf("active facet should be highlighted")
	}
}

func TestContactEmail(t *testing.T) {
	got := renderString(t, Contact(testSite))
	if !strings.Contains(got, "mailto:me@example.com") {
		t.Errorf("contact page should link the email: %q", got)
	}
}

func TestWebsiteJsonLD(t *testing.T) {
	got := string(WebsiteJsonLD(testSite))
	if !strings.Contains(got, `"url":"https://example.com"`) {
		t.Errorf("WebsiteJsonLD = %s", got)
	}
}

func TestSiteURL(t *testing.T) {
	tests := []struct {
		base     string
		segments []string
		want     string
	}{
		{"https://example.com", nil, "https://example.com"},
		{"https://example.com", []string{"blog", "post-1"}, "https://example.com/blog/post-1/"},
		{"https://example.com/sub", []string{"about"}, "https://example.com/sub/about/"},
	}
	for _, tt := range tests {
		if got := SiteURL(tt.base, tt.segments...); got != tt.want {
			t.Errorf("SiteURL(%q, %v) = %q, want %q", tt.base, tt.segments, got, tt.want)
		}
	}
}
