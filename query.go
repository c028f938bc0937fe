package homepage

import (
	"net/url"
	"strconv"
	"strings"
)

// FilterSpec selects posts by category, series and author. Join picks the
// matching mode: true intersects the set fields, false takes their union.
// A nil field is not part of the filter.
type FilterSpec struct {
	Join     bool
	Category *string
	Series   *string
	Author   *string
}

// Query keys, in encoding order.
const (
	keyJoin     = "join"
	keyCategory = "category"
	keySeries   = "series"
	keyAuthor   = "author"
)

// Encode serializes f as join=<bool>[&category=v][&series=v][&author=v].
func (f FilterSpec) Encode() string {
	var b strings.Builder
	b.WriteString(keyJoin + "=" + strconv.FormatBool(f.Join))
	for _, kv := range []struct {
		key string
		val *string
	}{
		{keyCategory, f.Category},
		{keySeries, f.Series},
		{keyAuthor, f.Author},
	} {
		if kv.val == nil {
			continue
		}
		b.WriteByte('&')
		b.WriteString(kv.key)
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(*kv.val))
	}
	return b.String()
}

// String implements fmt.Stringer.
func (f FilterSpec) String() string {
	return f.Encode()
}

// Href returns the search page URL for f.
func (f FilterSpec) Href() string {
	return "/search/?" + f.Encode()
}

// IsEmpty reports whether no filter field is set.
func (f FilterSpec) IsEmpty() bool {
	return f.Category == nil && f.Series == nil && f.Author == nil
}

// WithAuthor returns a copy of f filtering on author.
func (f FilterSpec) WithAuthor(author string) FilterSpec {
	f.Author = &author
	return f
}

// WithCategory returns a copy of f filtering on category.
func (f FilterSpec) WithCategory(category string) FilterSpec {
	f.Category = &category
	return f
}

// WithSeries returns a copy of f filtering on series.
func (f FilterSpec) WithSeries(series string) FilterSpec {
	f.Series = &series
	return f
}

// ParseFilter decodes a raw query string. It never fails: malformed pairs
// are skipped, unknown keys are ignored, and the last value of a repeated key
// wins. Join is true only for the literal value "true".
func ParseFilter(rawQuery string) FilterSpec {
	values, _ := url.ParseQuery(rawQuery)
	last := func(key string) *string {
		vs, ok := values[key]
		if !ok || len(vs) == 0 {
			return nil
		}
		v := vs[len(vs)-1]
		return &v
	}

	var f FilterSpec
	if j := last(keyJoin); j != nil && *j == "true" {
		f.Join = true
	}
	f.Category = last(keyCategory)
	f.Series = last(keySeries)
	f.Author = last(keyAuthor)
	return f
}
