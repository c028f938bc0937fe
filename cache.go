package homepage

import (
	"html/template"

	"github.com/eringen/homepage/markdown"
)

// BodyCache holds every post body rendered to HTML. It is filled once when
// built and only read afterwards, so lookups need no locking.
type BodyCache struct {
	bodies   map[string]template.HTML
	renderer *markdown.Renderer
}

// NewBodyCache renders the body of every post in s.
func NewBodyCache(s *Store, r *markdown.Renderer) *BodyCache {
	c := &BodyCache{
		bodies:   make(map[string]template.HTML, s.Len()),
		renderer: r,
	}
	for _, p := range s.posts {
		c.bodies[p.ID] = renderedHTML(r.Render(p.Content))
	}
	return c
}

// Get returns the rendered body of p. Posts that were not in the store the
// cache was built from are rendered on the fly.
func (c *BodyCache) Get(p Post) template.HTML {
	if body, ok := c.bodies[p.ID]; ok {
		return body
	}
	return renderedHTML(c.renderer.Render(p.Content))
}

// Len reports the number of cached bodies.
func (c *BodyCache) Len() int {
	return len(c.bodies)
}
