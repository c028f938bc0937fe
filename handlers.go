package homepage

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

func (a *App) handleHome(c echo.Context) error {
	return Render(c, a.Views.Home(a.siteView()))
}

func (a *App) handleAbout(c echo.Context) error {
	return Render(c, a.Views.About(a.siteView()))
}

func (a *App) handleResume(c echo.Context) error {
	return Render(c, a.Views.Resume(a.siteView()))
}

func (a *App) handleContact(c echo.Context) error {
	return Render(c, a.Views.Contact(a.siteView()))
}

func (a *App) handleBlog(c echo.Context) error {
	posts := SummarizeAll(a.Store.ListAll(), FilterSpec{Join: true})
	return Render(c, a.Views.Blog(a.siteView(), posts))
}

func (a *App) handlePost(c echo.Context) error {
	page, err := BuildPostPage(a.Store, a.Bodies, a.siteView(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return RenderStatus(c, http.StatusNotFound, a.Views.PostNotFound(a.siteView()))
		}
		return err
	}
	return Render(c, a.Views.Post(a.siteView(), page))
}

func (a *App) handleSearch(c echo.Context) error {
	spec := ParseFilter(c.QueryString())
	return Render(c, a.Views.Search(a.siteView(), BuildSearchPage(a.Store, spec)))
}

func (a *App) handleSitemap(c echo.Context) error {
	return writeXML(c, mimeXML, buildSitemap(a.Config.URL, a.Store.ListAll()))
}

func (a *App) handleFeed(c echo.Context) error {
	return writeXML(c, mimeRSS, buildFeed(a.Config, a.Store.ListAll()))
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	c.Response().Header().Set("Cache-Control", noStore)
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound(a.siteView()))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, a.Views.ServerError(a.siteView()))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
