// Package scaffold provides the embedded template the CLI uses to start a
// new post.
package scaffold

import "embed"

// Templates contains the scaffold template files.
// Files use Go text/template syntax and have a .tmpl suffix.
//
//go:embed all:templates
var Templates embed.FS

// PostTemplate is the path of the new-post template inside Templates.
const PostTemplate = "templates/post.md.tmpl"
