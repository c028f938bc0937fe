package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/template"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/eringen/homepage"
	"github.com/eringen/homepage/scaffold"
)

// postData holds the template variables passed to the post scaffold.
type postData struct {
	Title       string
	Author      string
	Published   string
	Category    string
	Series      string
	Part        int
	Description string
}

var newFlags struct {
	id   string
	dir  string
	date string
	post postData
}

var newCmd = &cobra.Command{
	Use:   "new <title>",
	Short: "Create a new post file with frontmatter",
	Long: `Create content/posts/<id>.md from the post scaffold. The id defaults to
the slugified title. Posts are compiled in, so rebuild to publish it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := runNew(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
		return nil
	},
}

func init() {
	f := newCmd.Flags()
	f.StringVar(&newFlags.id, "id", "", "post id (default: slugified title)")
	f.StringVar(&newFlags.dir, "dir", filepath.Join("content", "posts"), "directory to write the post into")
	f.StringVar(&newFlags.date, "date", "", "publication date YYYY-MM-DD (default: today)")
	f.StringVar(&newFlags.post.Author, "author", "", "post author (default: config author)")
	f.StringVar(&newFlags.post.Category, "category", "", "post category")
	f.StringVar(&newFlags.post.Series, "series", "", "series the post belongs to")
	f.IntVar(&newFlags.post.Part, "part", 0, "part number within the series")
	f.StringVar(&newFlags.post.Description, "description", "", "short teaser shown in the post list")
}

func runNew(title string) (string, error) {
	data := newFlags.post
	data.Title = toTitle(title)

	if data.Author == "" {
		cfg, err := loadConfig()
		if err != nil {
			return "", err
		}
		data.Author = cfg.Author
	}
	if data.Author == "" {
		return "", fmt.Errorf("an author is required: pass --author or set author in the config")
	}
	if data.Part < 0 {
		return "", fmt.Errorf("part must be positive, got %d", data.Part)
	}

	data.Published = newFlags.date
	if data.Published == "" {
		data.Published = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", data.Published); err != nil {
		return "", fmt.Errorf("invalid date %q: %w", data.Published, err)
	}

	id := newFlags.id
	if id == "" {
		id = homepage.Slugify(title)
	}
	if id == "" {
		return "", fmt.Errorf("cannot derive a post id from %q", title)
	}

	outPath := filepath.Join(newFlags.dir, id+".md")
	if err := writePost(outPath, data); err != nil {
		return "", err
	}
	return outPath, nil
}

func writePost(outPath string, data postData) error {
	if _, err := os.Stat(outPath); err == nil {
		return fmt.Errorf("post %q already exists", outPath)
	}
	tmpl, err := template.ParseFS(scaffold.Templates, scaffold.PostTemplate)
	if err != nil {
		return fmt.Errorf("parse scaffold: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(outPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	if err := tmpl.Execute(f, data); err != nil {
		f.Close()
		return fmt.Errorf("render scaffold: %w", err)
	}
	return f.Close()
}

// toTitle title-cases s, leaving already capitalized words alone.
func toTitle(s string) string {
	return cases.Title(language.English, cases.NoLower).String(s)
}
