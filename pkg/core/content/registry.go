package content

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Registry holds loaded articles keyed by slug.
type Registry struct {
	articles map[string]*Article
	mu       sync.RWMutex
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{articles: make(map[string]*Article)}
}

// Register adds an article; slugs must be unique and already normalized.
func (r *Registry) Register(a *Article) error {
	if a.Slug == "" {
		return fmt.Errorf("article slug cannot be empty")
	}
	if normalizeSlug(a.Slug) != a.Slug {
		return fmt.Errorf("article slug %q must be lowercase letters, digits and dashes", a.Slug)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, exists := r.articles[a.Slug]; exists {
		return fmt.Errorf("article %s already registered from %s", a.Slug, prev.SourcePath)
	}
	r.articles[a.Slug] = a
	return nil
}

// Get retrieves an article by slug.
func (r *Registry) Get(slug string) (*Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if a, ok := r.articles[slug]; ok {
		return a, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrArticleNotFound, slug)
}

// All returns every article, newest first, then by title.
func (r *Registry) All() []*Article {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Article, 0, len(r.articles))
	for _, a := range r.articles {
		out = append(out, a)
	}
	sortArticles(out)
	return out
}

// ByCategory returns the articles in category (case-insensitive).
func (r *Registry) ByCategory(category string) []*Article {
	var out []*Article
	for _, a := range r.All() {
		if strings.EqualFold(a.Category, category) {
			out = append(out, a)
		}
	}
	return out
}

// ForTool returns the articles that list the calculator slug as related.
func (r *Registry) ForTool(slug string) []*Article {
	var out []*Article
	for _, a := range r.All() {
		if a.HasTool(slug) {
			out = append(out, a)
		}
	}
	return out
}

// Categories returns the distinct categories in sorted order. Categories that
// differ only in case are reported once, matching ByCategory.
func (r *Registry) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, a := range r.All() {
		key := strings.ToLower(a.Category)
		if !seen[key] {
			seen[key] = true
			out = append(out, a.Category)
		}
	}
	sort.Strings(out)
	return out
}

// Count returns the number of articles
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.articles)
}

func sortArticles(as []*Article) {
	sort.Slice(as, func(i, j int) bool {
		if !as[i].Published.Equal(as[j].Published) {
			return as[i].Published.After(as[j].Published)
		}
		return as[i].Title < as[j].Title
	})
}

// LoadFromDirectory loads every .md file under dir. Expected structure:
//
//	dir/
//	  articles/
//	    growth/
//	      ltv-cac-ratio.md
//	    fundraising/
//	      safe-notes.md
//
// Slugs default to the file name and categories to the first folder under
// articles/. Drafts are skipped.
func LoadFromDirectory(dir string, logger *zap.Logger) (*Registry, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	reg := NewRegistry()

	articleDir := filepath.Join(dir, "articles")
	if _, err := os.Stat(articleDir); os.IsNotExist(err) {
		logger.Warn("no articles directory", zap.String("dir", articleDir))
		return reg, nil
	}

	err := filepath.WalkDir(articleDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".md" {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		a, err := Parse(data)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
		a.SourcePath = path

		if a.Draft {
			logger.Debug("skipping draft", zap.String("path", path))
			return nil
		}

		// Auto-generate slug from file name if not specified
		if a.Slug == "" {
			a.Slug = slugFromPath(path)
		} else {
			a.Slug = normalizeSlug(a.Slug)
		}

		// Auto-detect category from folder name if not specified
		if a.Category == "" {
			a.Category = detectCategory(path, articleDir)
		}

		if err := reg.Register(a); err != nil {
			return err
		}
		logger.Debug("loaded article",
			zap.String("slug", a.Slug),
			zap.String("category", a.Category),
			zap.Int("words", a.WordCount))
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("articles loaded", zap.Int("count", reg.Count()), zap.String("dir", articleDir))
	return reg, nil
}

// slugFromPath: "articles/growth/LTV CAC.md" -> "ltv-cac"
func slugFromPath(path string) string {
	return normalizeSlug(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
}

// normalizeSlug keeps ASCII letters and digits, lowercased, joined by single
// dashes: "../Safe_Notes 101" -> "safe-notes-101".
func normalizeSlug(s string) string {
	mapped := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		}
		return ' '
	}, s)
	return strings.Join(strings.Fields(mapped), "-")
}

// detectCategory extracts the category from the folder structure
func detectCategory(path string, baseDir string) string {
	relPath, _ := filepath.Rel(baseDir, path)
	parts := strings.Split(relPath, string(filepath.Separator))
	if len(parts) > 1 {
		return parts[0]
	}
	return "general"
}
