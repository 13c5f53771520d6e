package content

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
)

// RenderMarkdown converts Markdown to HTML.
func RenderMarkdown(src []byte) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return buf.String(), nil
}

// render fills HTML and the fields derived from it.
func (a *Article) render(body []byte) error {
	html, err := RenderMarkdown(body)
	if err != nil {
		return err
	}
	a.HTML = html

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return fmt.Errorf("parse rendered html: %w", err)
	}

	a.TOC = extractTOC(doc)
	a.WordCount = len(strings.Fields(doc.Text()))
	a.ReadingMinutes = ReadingMinutes(a.WordCount)

	if a.Description == "" {
		a.Description = firstParagraph(doc)
	}
	return nil
}

// extractTOC collects h2 and h3 headings that carry an id.
func extractTOC(doc *goquery.Document) []Heading {
	var toc []Heading
	doc.Find("h2, h3").Each(func(_ int, s *goquery.Selection) {
		id, ok := s.Attr("id")
		if !ok || id == "" {
			return
		}
		level := 2
		if goquery.NodeName(s) == "h3" {
			level = 3
		}
		toc = append(toc, Heading{
			ID:    id,
			Text:  strings.TrimSpace(s.Text()),
			Level: level,
		})
	})
	return toc
}

// firstParagraph returns the text of the first non-empty paragraph,
// collapsed to single spaces.
func firstParagraph(doc *goquery.Document) string {
	desc := ""
	doc.Find("p").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := strings.Join(strings.Fields(s.Text()), " ")
		if text == "" {
			return true
		}
		desc = text
		return false
	})
	return desc
}

// ReadingMinutes estimates reading time at 200 words per minute, minimum 1.
func ReadingMinutes(words int) int {
	m := int(math.Ceil(float64(words) / wordsPerMinute))
	if m < 1 {
		return 1
	}
	return m
}
