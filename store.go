package homepage

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	// ErrNotFound is returned when a requested post does not exist.
	ErrNotFound = errors.New("post not found")
	// ErrDuplicateID is returned when two posts share an id.
	ErrDuplicateID = errors.New("duplicate post id")
)

// Store is the immutable, in-memory list of posts. It is built once before
// any request is served and is safe for concurrent reads.
type Store struct {
	posts []Post
	byID  map[string]int
}

// NewStore builds a Store from posts, keeping their order. Two posts with the
// same id make the whole store invalid.
func NewStore(posts []Post) (*Store, error) {
	s := &Store{
		posts: slices.Clone(posts),
		byID:  make(map[string]int, len(posts)),
	}
	for i, p := range s.posts {
		if p.ID == "" {
			return nil, fmt.Errorf("homepage: post %d has an empty id", i)
		}
		if _, dup := s.byID[p.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, p.ID)
		}
		s.byID[p.ID] = i
	}
	return s, nil
}

// ListAll returns every post in declaration order.
func (s *Store) ListAll() []Post {
	return slices.Clone(s.posts)
}

// FindByID returns the post with the given id or ErrNotFound.
func (s *Store) FindByID(id string) (Post, error) {
	i, ok := s.byID[id]
	if !ok {
		return Post{}, ErrNotFound
	}
	return s.posts[i], nil
}

// Len reports the number of posts.
func (s *Store) Len() int {
	return len(s.posts)
}

// Authors returns the distinct authors in first-seen order.
func (s *Store) Authors() []string {
	return s.distinct(func(p Post) string { return p.Author })
}

// Categories returns the distinct categories in first-seen order.
func (s *Store) Categories() []string {
	return s.distinct(func(p Post) string { return p.Category })
}

// Series returns the distinct series names in first-seen order.
func (s *Store) Series() []string {
	return s.distinct(func(p Post) string { return p.Series })
}

func (s *Store) distinct(field func(Post) string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range s.posts {
		v := field(p)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// postMeta is the YAML frontmatter at the top of every post file.
type postMeta struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Author      string `yaml:"author"`
	Published   string `yaml:"published"`
	Category    string `yaml:"category"`
	Series      string `yaml:"series"`
	Part        int    `yaml:"part"`
	Description string `yaml:"description"`
}

// postIDPattern matches an id usable as one path segment of /blog/:id/.
var postIDPattern = regexp.MustCompile(`^[^/\\?#%\s]+$`)

func (m *postMeta) Validate() error {
	return validation.ValidateStruct(m,
		validation.Field(&m.ID,
			validation.Match(postIDPattern).Error("must be a single path segment"),
			validation.NotIn(".", "..").Error("must be a single path segment"),
		),
		validation.Field(&m.Title, validation.Required),
		validation.Field(&m.Author, validation.Required),
		validation.Field(&m.Published, validation.Required, validation.Date(dateLayout)),
		validation.Field(&m.Part, validation.Min(1)),
	)
}

// LoadPosts reads every *.md file in dir, in lexical file order. The post id
// is the frontmatter id, or the file name without its extension.
func LoadPosts(fsys fs.FS, dir string) ([]Post, error) {
	names, err := fs.Glob(fsys, path.Join(dir, "*.md"))
	if err != nil {
		return nil, fmt.Errorf("homepage: list posts: %w", err)
	}
	slices.Sort(names)

	posts := make([]Post, 0, len(names))
	for _, name := range names {
		p, err := loadPost(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("homepage: load %s: %w", name, err)
		}
		posts = append(posts, p)
	}
	return posts, nil
}

func loadPost(fsys fs.FS, name string) (Post, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return Post{}, err
	}
	defer f.Close()

	var meta postMeta
	body, err := frontmatter.Parse(f, &meta)
	if err != nil {
		return Post{}, err
	}
	if err := meta.Validate(); err != nil {
		return Post{}, err
	}
	published, err := time.Parse(dateLayout, meta.Published)
	if err != nil {
		return Post{}, err
	}

	id := strings.TrimSpace(meta.ID)
	if id == "" {
		id = strings.TrimSuffix(path.Base(name), path.Ext(name))
	}
	return Post{
		ID:          id,
		Title:       strings.TrimSpace(meta.Title),
		Author:      strings.TrimSpace(meta.Author),
		Published:   published,
		Category:    strings.TrimSpace(meta.Category),
		Series:      strings.TrimSpace(meta.Series),
		Part:        meta.Part,
		Description: strings.TrimSpace(meta.Description),
		Content:     string(body),
	}, nil
}
