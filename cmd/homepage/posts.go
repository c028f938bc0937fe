package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/eringen/homepage"
	"github.com/eringen/homepage/markdown"
)

var postsFlags struct {
	query    string
	join     bool
	category string
	series   string
	author   string
}

var postsCmd = &cobra.Command{
	Use:   "posts",
	Short: "List posts, optionally filtered",
	Long: `List posts in declaration order. With no filter flags every post is
listed; otherwise the flags build the same filter the /search/ page uses.`,
	Example: `  homepage posts
  homepage posts --join --category Garbage --author "Author 2"
  homepage posts --query "join=false&series=Test+Series"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		store, err := openStore(cfg)
		if err != nil {
			return err
		}
		posts := store.ListAll()
		if spec, ok := postsFilter(cmd); ok {
			posts = homepage.Apply(spec, posts)
		}
		return writePosts(cmd.OutOrStdout(), posts)
	},
}

var renderCmd = &cobra.Command{
	Use:   "render <id>",
	Short: "Print the rendered HTML body of a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		store, err := openStore(cfg)
		if err != nil {
			return err
		}
		post, err := store.FindByID(args[0])
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		_, err = io.WriteString(cmd.OutOrStdout(), markdown.Render(post.Content)+"\n")
		return err
	},
}

func init() {
	addPostsFlags(postsCmd)
}

func addPostsFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&postsFlags.query, "query", "", "raw search query string, e.g. join=true&author=Me")
	f.BoolVar(&postsFlags.join, "join", false, "require every given field to match instead of any")
	f.StringVar(&postsFlags.category, "category", "", "filter by category")
	f.StringVar(&postsFlags.series, "series", "", "filter by series")
	f.StringVar(&postsFlags.author, "author", "", "filter by author")
}

// postsFilter builds a filter from the command flags. It reports false when
// no filter was requested.
func postsFilter(cmd *cobra.Command) (homepage.FilterSpec, bool) {
	flags := cmd.Flags()
	if flags.Changed("query") {
		return homepage.ParseFilter(postsFlags.query), true
	}
	spec := homepage.FilterSpec{Join: postsFlags.join}
	if flags.Changed("category") {
		spec = spec.WithCategory(postsFlags.category)
	}
	if flags.Changed("series") {
		spec = spec.WithSeries(postsFlags.series)
	}
	if flags.Changed("author") {
		spec = spec.WithAuthor(postsFlags.author)
	}
	if spec.IsEmpty() && !flags.Changed("join") {
		return spec, false
	}
	return spec, true
}

func writePosts(w io.Writer, posts []homepage.Post) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDATE\tAUTHOR\tCATEGORY\tSERIES\tTITLE")
	for _, p := range posts {
		series := p.Series
		if series != "" && p.Part > 0 {
			series += " #" + strconv.Itoa(p.Part)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", p.ID, p.Date(), p.Author, dash(p.Category), dash(series), p.Title)
	}
	return tw.Flush()
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
