package homepage

// Apply returns the posts matching spec, keeping their relative order.
func Apply(spec FilterSpec, posts []Post) []Post {
	out := make([]Post, 0, len(posts))
	for _, p := range posts {
		if spec.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}

// Matches reports whether p satisfies f.
//
// In join mode every set field must equal the post's field, so a spec with no
// fields matches everything. Otherwise at least one set field must match, so a
// spec with no fields matches nothing. An absent category or series on the
// post never matches.
func (f FilterSpec) Matches(p Post) bool {
	var set, hit int
	check := func(want *string, have string) {
		if want == nil {
			return
		}
		set++
		if have != "" && have == *want {
			hit++
		}
	}
	check(f.Category, p.Category)
	check(f.Series, p.Series)
	check(f.Author, p.Author)

	if f.Join {
		return hit == set
	}
	return hit > 0
}
