package homepage

import "embed"

// EmbeddedContent holds the posts compiled into the binary, one markdown
// file with YAML frontmatter per post under content/posts.
//
//go:embed content/posts/*.md
var EmbeddedContent embed.FS

// postsDir is the directory, relative to the content root, holding post files.
const postsDir = "posts"
