package homepage

import (
	"html/template"

	"github.com/eringen/homepage/views"
)

// Summarize builds the list view of p. Author, category and series links
// take base and replace the matching field, so on the blog page (base
// {join:true}) they show everything by that author or in that category, and
// on the search page they narrow or widen the current query.
func Summarize(p Post, base FilterSpec) views.PostSummary {
	s := views.PostSummary{
		ID:          p.ID,
		Title:       p.Title,
		Author:      p.Author,
		Date:        p.Date(),
		Category:    p.Category,
		Series:      p.Series,
		Part:        p.Part,
		Description: p.Description,
		Href:        p.Link(),
		AuthorHref:  base.WithAuthor(p.Author).Href(),
	}
	if p.Category != "" {
		s.CategoryHref = base.WithCategory(p.Category).Href()
	}
	if p.Series != "" {
		s.SeriesHref = base.WithSeries(p.Series).Href()
	}
	return s
}

// SummarizeAll summarizes posts in order.
func SummarizeAll(posts []Post, base FilterSpec) []views.PostSummary {
	out := make([]views.PostSummary, 0, len(posts))
	for _, p := range posts {
		out = append(out, Summarize(p, base))
	}
	return out
}

// BuildPostPage assembles the single-post view for id, or returns ErrNotFound.
func BuildPostPage(s *Store, bodies *BodyCache, site views.SiteConfig, id string) (views.PostPage, error) {
	p, err := s.FindByID(id)
	if err != nil {
		return views.PostPage{}, err
	}
	summary := Summarize(p, FilterSpec{Join: true})
	return views.PostPage{
		PostSummary: summary,
		Body:        bodies.Get(p),
		JSONLD:      views.BlogPostingJsonLD(site, summary),
	}, nil
}

// BuildSearchPage applies spec to every post and assembles the search view.
func BuildSearchPage(s *Store, spec FilterSpec) views.SearchPage {
	page := views.SearchPage{
		Join:     spec.Join,
		Posts:    SummarizeAll(Apply(spec, s.ListAll()), spec),
		ModeHref: FilterSpec{Join: !spec.Join, Category: spec.Category, Series: spec.Series, Author: spec.Author}.Href(),
	}
	if spec.Category != nil {
		page.Criteria = append(page.Criteria, "category "+*spec.Category)
	}
	if spec.Series != nil {
		page.Criteria = append(page.Criteria, "series "+*spec.Series)
	}
	if spec.Author != nil {
		page.Criteria = append(page.Criteria, "author "+*spec.Author)
	}
	page.Authors = facets(s.Authors(), spec.Author, spec.WithAuthor)
	page.Categories = facets(s.Categories(), spec.Category, spec.WithCategory)
	page.Series = facets(s.Series(), spec.Series, spec.WithSeries)
	return page
}

func facets(values []string, current *string, with func(string) FilterSpec) []views.Facet {
	out := make([]views.Facet, 0, len(values))
	for _, v := range values {
		out = append(out, views.Facet{
			Label:  v,
			Href:   with(v).Href(),
			Active: current != nil && *current == v,
		})
	}
	return out
}

// renderedHTML marks trusted renderer output as safe for templates.
func renderedHTML(s string) template.HTML {
	return template.HTML(s)
}
