package blog

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/cybershieldpro/backend/models"
	"github.com/cybershieldpro/backend/utils"
)

// ErrPostNotFound reports a slug with no readable source file. Every failure
// during single-post lookup collapses into it; the underlying cause only
// goes to the log.
var ErrPostNotFound = errors.New("post not found")

// engine is the shared markdown renderer. Goldmark is stateless after
// construction, so one instance serves all requests, and conversion is
// deterministic: the same source bytes always yield byte-identical HTML.
var engine = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// fileMeta mirrors the optional front matter fields. Anything absent keeps
// its zero value, which is exactly the documented default.
type fileMeta struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Date        string   `yaml:"date"`
	Author      string   `yaml:"author"`
	Tags        []string `yaml:"tags"`
	Image       string   `yaml:"image"`
	ReadingTime string   `yaml:"readingTime"`
	Featured    bool     `yaml:"featured"`
}

// Loader exposes the blog content directory as parsed posts. It holds no
// state between calls; every operation re-reads from disk so file changes
// are visible immediately.
type Loader struct {
	dir string
}

// NewLoader returns a loader rooted at the given content directory. The
// directory does not need to exist; listing then simply yields no posts.
func NewLoader(dir string) *Loader {
	return &Loader{dir: dir}
}

func (l *Loader) loadFile(name string) (*models.BlogPost, error) {
	data, err := os.ReadFile(filepath.Join(l.dir, name))
	if err != nil {
		return nil, err
	}

	var meta fileMeta
	body, err := frontmatter.Parse(bytes.NewReader(data), &meta)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := engine.Convert(body, &buf); err != nil {
		return nil, err
	}

	tags := meta.Tags
	if tags == nil {
		tags = []string{}
	}

	return &models.BlogPost{
		Slug:        strings.TrimSuffix(name, ".md"),
		Title:       meta.Title,
		Description: meta.Description,
		Date:        meta.Date,
		Author:      meta.Author,
		Tags:        tags,
		Image:       meta.Image,
		ReadingTime: meta.ReadingTime,
		Featured:    meta.Featured,
		Content:     string(body),
		ContentHTML: buf.String(),
	}, nil
}

// ListPosts returns every post in the content directory, most recent first.
// Posts sharing a date keep their directory iteration order. A missing
// directory is an empty blog, not an error, and unreadable files are skipped
// so one bad source cannot take the listing down.
func (l *Loader) ListPosts() ([]models.BlogPost, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []models.BlogPost{}, nil
		}
		return nil, err
	}

	posts := make([]models.BlogPost, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		post, err := l.loadFile(entry.Name())
		if err != nil {
			utils.Sugar.Warnf("skipping blog source %s: %v", entry.Name(), err)
			continue
		}
		posts = append(posts, *post)
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Date > posts[j].Date
	})
	return posts, nil
}

// GetPost returns the post whose source file is slug + ".md". Any read or
// parse failure is reported as ErrPostNotFound; the cause is logged. A slug
// is a bare filename, so anything carrying path separators or a parent
// reference is rejected before touching the filesystem.
func (l *Loader) GetPost(slug string) (*models.BlogPost, error) {
	if strings.Contains(slug, "..") || strings.ContainsAny(slug, `/\`) {
		return nil, ErrPostNotFound
	}
	post, err := l.loadFile(slug + ".md")
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			utils.Sugar.Warnf("blog lookup %s: %v", slug, err)
		}
		return nil, ErrPostNotFound
	}
	return post, nil
}

// ListFeatured returns the posts flagged as featured, in ListPosts order.
func (l *Loader) ListFeatured() ([]models.BlogPost, error) {
	posts, err := l.ListPosts()
	if err != nil {
		return nil, err
	}
	featured := make([]models.BlogPost, 0, len(posts))
	for _, p := range posts {
		if p.Featured {
			featured = append(featured, p)
		}
	}
	return featured, nil
}

// ListByTag returns the posts carrying the exact tag, in ListPosts order.
func (l *Loader) ListByTag(tag string) ([]models.BlogPost, error) {
	posts, err := l.ListPosts()
	if err != nil {
		return nil, err
	}
	matched := make([]models.BlogPost, 0, len(posts))
	for _, p := range posts {
		for _, t := range p.Tags {
			if t == tag {
				matched = append(matched, p)
				break
			}
		}
	}
	return matched, nil
}
