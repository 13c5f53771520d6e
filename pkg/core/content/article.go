// Package content loads Markdown articles with Hjson front matter and renders
// them to HTML for the static site.
package content

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"founder_calculators/pkg/core/utils"
)

// ErrNoFrontMatter is returned when a file does not open with a --- block.
var ErrNoFrontMatter = errors.New("missing front matter")

// ErrArticleNotFound is returned by Registry.Get for an unknown slug.
var ErrArticleNotFound = errors.New("article not found")

const (
	frontMatterDelim = "---"
	publishedLayout  = "2006-01-02"
	wordsPerMinute   = 200
)

// FrontMatter is the Hjson header of an article file.
type FrontMatter struct {
	Slug         string   `json:"slug"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	Tags         []string `json:"tags"`
	RelatedTools []string `json:"related_tools"` // calculator slugs
	Published    string   `json:"published"`     // YYYY-MM-DD
	Draft        bool     `json:"draft"`
}

// Heading is one table-of-contents entry.
type Heading struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Level int    `json:"level"`
}

// Article is a rendered article.
type Article struct {
	Slug           string    `json:"slug"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Category       string    `json:"category"`
	Tags           []string  `json:"tags,omitempty"`
	RelatedTools   []string  `json:"relatedTools,omitempty"`
	Published      time.Time `json:"published"`
	Draft          bool      `json:"draft,omitempty"`
	HTML           string    `json:"html"`
	TOC            []Heading `json:"toc,omitempty"`
	WordCount      int       `json:"wordCount"`
	ReadingMinutes int       `json:"readingMinutes"`
	SourcePath     string    `json:"-"`
}

// SplitFrontMatter separates the Hjson header from the Markdown body. The
// header sits between two lines containing only ---.
func SplitFrontMatter(src []byte) (header string, body []byte, err error) {
	text := strings.TrimPrefix(string(src), "\ufeff")
	text = strings.ReplaceAll(text, "\r\n", "\n")

	lines := strings.Split(text, "\n")
	if strings.TrimSpace(lines[0]) != frontMatterDelim {
		return "", nil, ErrNoFrontMatter
	}

	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) != frontMatterDelim {
			continue
		}
		header = strings.Join(lines[1:i], "\n")
		body = []byte(strings.TrimLeft(strings.Join(lines[i+1:], "\n"), "\n"))
		return header, body, nil
	}
	return "", nil, fmt.Errorf("%w: unterminated block", ErrNoFrontMatter)
}

// Parse builds an Article from a file's raw bytes.
func Parse(src []byte) (*Article, error) {
	header, body, err := SplitFrontMatter(src)
	if err != nil {
		return nil, err
	}

	var fm FrontMatter
	if strings.TrimSpace(header) != "" {
		if err := utils.DecodeHJSON(header, &fm); err != nil {
			return nil, fmt.Errorf("front matter: %w", err)
		}
	}

	a := &Article{
		Slug:         fm.Slug,
		Title:        fm.Title,
		Description:  fm.Description,
		Category:     fm.Category,
		Tags:         fm.Tags,
		RelatedTools: fm.RelatedTools,
		Draft:        fm.Draft,
	}

	if fm.Published != "" {
		t, err := time.Parse(publishedLayout, fm.Published)
		if err != nil {
			return nil, fmt.Errorf("front matter published: %w", err)
		}
		a.Published = t
	}

	if a.Title == "" {
		a.Title = utils.ExtractTitle(string(body))
	}

	if err := a.render(body); err != nil {
		return nil, err
	}
	return a, nil
}

// HasTool reports whether the article links to the calculator slug.
func (a *Article) HasTool(slug string) bool {
	for _, s := range a.RelatedTools {
		if s == slug {
			return true
		}
	}
	return false
}
