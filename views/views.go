package views

import (
	"context"
	"embed"
	"html/template"
	"io"

	"github.com/a-h/templ"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(
	template.New("pages").
		Funcs(template.FuncMap{"facetClass": FacetClass}).
		ParseFS(templateFS, "templates/*.html"),
)

// page is the data every template receives.
type page struct {
	Site   SiteConfig
	Meta   PageMeta
	JSONLD template.JS
	Data   interface{}
}

func component(name string, p page) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return pages.ExecuteTemplate(w, name, p)
	})
}

func websitePage(cfg SiteConfig, title, urlPath string) page {
	return page{
		Site: cfg,
		Meta: PageMeta{
			Title:       title,
			Description: cfg.Description,
			URL:         SiteURL(cfg.URL, urlPath),
			OGType:      "website",
		},
		JSONLD: WebsiteJsonLD(cfg),
	}
}

func Home(cfg SiteConfig) templ.Component {
	return component("home", websitePage(cfg, "", ""))
}

func About(cfg SiteConfig) templ.Component {
	return component("about", websitePage(cfg, "About", "about"))
}

func Resume(cfg SiteConfig) templ.Component {
	return component("resume", websitePage(cfg, "Resume", "resume"))
}

func Contact(cfg SiteConfig) templ.Component {
	return component("contact", websitePage(cfg, "Contact", "contact"))
}

// Blog lists every post.
func Blog(cfg SiteConfig, posts []PostSummary) templ.Component {
	p := websitePage(cfg, "Blog", "blog")
	p.Data = posts
	return component("blog", p)
}

// Post renders a single post with its body.
func Post(cfg SiteConfig, post PostPage) templ.Component {
	desc := post.Description
	if desc == "" {
		desc = cfg.Description
	}
	return component("post", page{
		Site: cfg,
		Meta: PageMeta{
			Title:       post.Title,
			Description: desc,
			URL:         SiteURL(cfg.URL, "blog", post.ID),
			OGType:      "article",
		},
		JSONLD: post.JSONLD,
		Data:   post,
	})
}

// PostNotFound is shown when no post has the requested id.
func PostNotFound(cfg SiteConfig) templ.Component {
	return component("post-not-found", websitePage(cfg, "Post not found", "blog"))
}

// Search renders the filtered list view.
func Search(cfg SiteConfig, s SearchPage) templ.Component {
	p := websitePage(cfg, "Search", "search")
	p.Data = s
	return component("search", p)
}

func NotFound(cfg SiteConfig) templ.Component {
	return component("not-found", websitePage(cfg, "Not found", ""))
}

func ServerError(cfg SiteConfig) templ.Component {
	return component("server-error", websitePage(cfg, "Server error", ""))
}
