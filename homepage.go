// Package homepage serves a small personal website: a few static pages and a
// blog whose posts are compiled-in markdown documents, with filtering by
// category, series and author.
//
// Page markup comes from the ViewFuncs struct so a site can swap templates,
// while homepage owns routing, middleware, the post store and the query logic.
package homepage

import (
	"fmt"
	"io/fs"
	"net/http"
	"os"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/eringen/homepage/markdown"
	"github.com/eringen/homepage/views"
)

// ViewFuncs holds the components the framework calls when rendering pages.
type ViewFuncs struct {
	Home         func(cfg views.SiteConfig) templ.Component
	About        func(cfg views.SiteConfig) templ.Component
	Resume       func(cfg views.SiteConfig) templ.Component
	Contact      func(cfg views.SiteConfig) templ.Component
	Blog         func(cfg views.SiteConfig, posts []views.PostSummary) templ.Component
	Post         func(cfg views.SiteConfig, post views.PostPage) templ.Component
	PostNotFound func(cfg views.SiteConfig) templ.Component
	Search       func(cfg views.SiteConfig, page views.SearchPage) templ.Component
	NotFound     func(cfg views.SiteConfig) templ.Component
	ServerError  func(cfg views.SiteConfig) templ.Component
}

// DefaultViews returns the built-in page components.
func DefaultViews() ViewFuncs {
	return ViewFuncs{
		Home:         views.Home,
		About:        views.About,
		Resume:       views.Resume,
		Contact:      views.Contact,
		Blog:         views.Blog,
		Post:         views.Post,
		PostNotFound: views.PostNotFound,
		Search:       views.Search,
		NotFound:     views.NotFound,
		ServerError:  views.ServerError,
	}
}

// App wires together the post store, rendered bodies, handlers, middleware
// and templates.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Store  *Store
	Bodies *BodyCache
	Views  ViewFuncs

	content      fs.FS
	customRoutes []func(*App)
}

// New creates an App with the given configuration and view functions.
func New(cfg SiteConfig, views ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
		Views:  views,
	}
	if cfg.ContentDir != "" {
		a.content = os.DirFS(cfg.ContentDir)
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Init validates the configuration, loads every post, renders their bodies and
// registers middleware and routes. It fails on any invalid or duplicate post.
func (a *App) Init() error {
	if err := a.Config.Validate(); err != nil {
		return fmt.Errorf("homepage: config: %w", err)
	}
	a.Echo.HideBanner = true
	a.Echo.Logger.SetLevel(a.Config.logLevel())

	store, err := OpenStore(a.content)
	if err != nil {
		return err
	}
	a.Store = store
	a.Bodies = NewBodyCache(store, markdown.New())
	a.Echo.Logger.Infof("loaded %d posts", store.Len())

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}
	return nil
}

// Start initializes the app and runs the server until it stops.
func (a *App) Start() error {
	if err := a.Init(); err != nil {
		return err
	}
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)

	e.GET("/", a.handleHome)
	e.GET("/about/", a.handleAbout)
	e.GET("/resume/", a.handleResume)
	e.GET("/contact/", a.handleContact)

	e.GET("/blog/", a.handleBlog)
	e.GET("/blog/:id/", a.handlePost)
	e.GET("/search/", a.handleSearch)
}

// OpenStore loads the posts under content's posts directory into a Store.
// A nil content uses the embedded posts.
func OpenStore(content fs.FS) (*Store, error) {
	if content == nil {
		sub, err := fs.Sub(EmbeddedContent, "content")
		if err != nil {
			return nil, fmt.Errorf("homepage: embedded content: %w", err)
		}
		content = sub
	}
	posts, err := LoadPosts(content, postsDir)
	if err != nil {
		return nil, err
	}
	store, err := NewStore(posts)
	if err != nil {
		return nil, fmt.Errorf("homepage: init store: %w", err)
	}
	return store, nil
}

// siteView is the subset of SiteConfig the templates see.
func (a *App) siteView() views.SiteConfig {
	return views.SiteConfig{
		Name:        a.Config.Name,
		URL:         a.Config.URL,
		Description: a.Config.Description,
		Author:      a.Config.Author,
		Email:       a.Config.Email,
	}
}
