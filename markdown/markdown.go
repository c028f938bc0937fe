// Package markdown renders post bodies to HTML carrying the site's
// presentation classes, and exposes the result as a templ component.
package markdown

import (
	"bytes"
	"context"
	"html"
	"io"
	"regexp"
	"strings"

	"github.com/a-h/templ"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	xhtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Classes maps an element to the class attribute every occurrence of it
// receives. Existing class attributes are replaced.
var Classes = map[atom.Atom]string{
	atom.P:     "mb-4 dark:text-white",
	atom.Table: "mb-4 gray-400 dark:text-white dark:gray-800",
	atom.H1:    "text-4xl font-bold mb-2 dark:text-white",
	atom.H2:    "text-3xl font-bold mb-2 dark:text-white",
	atom.H3:    "text-2xl font-bold mb-2 dark:text-white",
	atom.H4:    "text-xl font-bold mb-2 dark:text-white",
	atom.H5:    "text-lg font-bold mb-2 dark:text-white",
	atom.H6:    "text-base font-bold mb-2 dark:text-white",
	atom.Pre:   "mb-4 bg-gray-200 dark:text-white dark:bg-gray-900",
	atom.Th:    "bg-gray-300 dark:bg-gray-900",
	atom.Td:    "bg-gray-100 dark:bg-gray-700",
	atom.A:     "text-blue-400 dark:text-orange-600",
}

// Renderer converts markdown to styled HTML. It is safe for concurrent use.
type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// New returns a Renderer with strikethrough, tables, footnotes and task
// lists enabled. Raw HTML in the source is passed through to the sanitizer
// policy, which decides what survives.
func New() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.Strikethrough,
				extension.Table,
				extension.Footnote,
				extension.TaskList,
			),
			goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
		),
		policy: newPolicy(),
	}
}

func newPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").Matching(regexp.MustCompile(`^language-[\w+#-]+$`)).OnElements("code")
	p.AllowElements("input")
	p.AllowAttrs("type").Matching(regexp.MustCompile(`^checkbox$`)).OnElements("input")
	p.AllowAttrs("checked", "disabled").OnElements("input")
	return p
}

var defaultRenderer = New()

// Render converts md with the default Renderer.
func Render(md string) string {
	return defaultRenderer.Render(md)
}

// Render converts md to HTML. It never fails: goldmark accepts any input, and
// if conversion still errors the source is returned escaped in a paragraph.
func (r *Renderer) Render(md string) string {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(md), &buf); err != nil {
		buf.Reset()
		buf.WriteString("<p>" + html.EscapeString(md) + "</p>")
	}
	return InjectClasses(r.policy.SanitizeReader(&buf).String())
}

// InjectClasses sets the class attribute from Classes on every matching
// element of the HTML fragment s, at any depth.
func InjectClasses(s string) string {
	body := &xhtml.Node{Type: xhtml.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := xhtml.ParseFragment(strings.NewReader(s), body)
	if err != nil {
		return s
	}
	var out strings.Builder
	for _, n := range nodes {
		walk(n)
		if err := xhtml.Render(&out, n); err != nil {
			return s
		}
	}
	return out.String()
}

func walk(n *xhtml.Node) {
	if n.Type == xhtml.ElementNode {
		if class, ok := Classes[n.DataAtom]; ok {
			setClass(n, class)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}
}

func setClass(n *xhtml.Node, class string) {
	attrs := make([]xhtml.Attribute, 0, len(n.Attr)+1)
	attrs = append(attrs, xhtml.Attribute{Key: "class", Val: class})
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == "class" {
			continue
		}
		attrs = append(attrs, a)
	}
	n.Attr = attrs
}

// Markdown returns a templ.Component that renders content as HTML.
func Markdown(content string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, Render(content))
		return err
	})
}
