package homepage

import (
	"bytes"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// Render writes a templ component as an HTTP 200 HTML response.
func Render(c echo.Context, cmp templ.Component) error {
	return RenderStatus(c, http.StatusOK, cmp)
}

// RenderStatus writes a templ component with a specific HTTP status code.
// The component is rendered to a buffer first, so a template error still
// reaches the error handler with nothing committed. Error pages are never
// cached.
func RenderStatus(c echo.Context, code int, cmp templ.Component) error {
	var buf bytes.Buffer
	if err := cmp.Render(c.Request().Context(), &buf); err != nil {
		return err
	}
	if code >= http.StatusBadRequest {
		c.Response().Header().Set("Cache-Control", noStore)
	}
	return c.HTMLBlob(code, buf.Bytes())
}
