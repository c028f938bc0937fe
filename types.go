package homepage

import (
	"net/url"
	"strings"
	"time"
)

// Post is a single blog entry. Posts are loaded once at startup and never
// mutated afterwards. Empty Category, Series and Description, and a zero Part,
// mean the field is absent.
type Post struct {
	ID          string
	Title       string
	Author      string
	Published   time.Time
	Category    string
	Series      string
	Part        int
	Description string
	Content     string
}

// Link returns the path of the post's page.
func (p Post) Link() string {
	return "/blog/" + url.PathEscape(p.ID) + "/"
}

// Date formats the publication date as YYYY-MM-DD.
func (p Post) Date() string {
	return p.Published.Format(dateLayout)
}

const dateLayout = "2006-01-02"

// Slugify derives a post id from a title: lower-case ASCII letters and digits,
// with every other run of characters collapsed to a single hyphen.
func Slugify(title string) string {
	words := strings.FieldsFunc(strings.ToLower(title), func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9')
	})
	return strings.Join(words, "-")
}
