// Package site renders the calculator catalog and the article library into a
// static website and serves it for local preview.
package site

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"founder_calculators/pkg/config"
	"founder_calculators/pkg/core/catalog"
	"founder_calculators/pkg/core/content"
	"founder_calculators/pkg/core/export"
)

//go:embed templates/*.html
var templateFS embed.FS

// pageTemplates are rendered inside layout.html.
var pageTemplates = []string{"index.html", "tool.html", "article.html", "articles.html"}

const recentArticles = 5

// Generator builds the static site.
type Generator struct {
	site     config.SiteConfig
	calcs    *catalog.Registry
	articles *content.Registry
	logger   *zap.Logger
	pages    map[string]*template.Template
	now      func() time.Time
}

// BuildReport summarizes one build.
type BuildReport struct {
	ID          string    `json:"buildId"`
	GeneratedAt time.Time `json:"generatedAt"`
	Tools       []string  `json:"tools"`
	Articles    []string  `json:"articles"`
	Pages       []string  `json:"pages"`
}

// NewGenerator parses the embedded templates. articles may be nil.
func NewGenerator(site config.SiteConfig, calcs *catalog.Registry, articles *content.Registry, logger *zap.Logger) (*Generator, error) {
	if calcs == nil {
		return nil, errors.New("site: calculator registry is required")
	}
	if articles == nil {
		articles = content.NewRegistry()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	funcs := template.FuncMap{
		"date": func(t time.Time) string { return t.Format("2006-01-02") },
	}
	base, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, "templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	pages := make(map[string]*template.Template, len(pageTemplates))
	for _, name := range pageTemplates {
		clone, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layout: %w", err)
		}
		t, err := clone.ParseFS(templateFS, "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		pages[name] = t
	}

	return &Generator{
		site:     site,
		calcs:    calcs,
		articles: articles,
		logger:   logger,
		pages:    pages,
		now:      time.Now,
	}, nil
}

// Meta is the SEO block of a page.
type Meta struct {
	Title       string
	Description string
	Canonical   string
	OGType      string
}

type navGroup struct {
	Category catalog.Category
	Tools    []*catalog.Entry
}

// pageData is what layout.html sees.
type pageData struct {
	Site    config.SiteConfig
	Lang    string
	Meta    Meta
	Nav     []navGroup
	BuildID string
	Year    int
	Body    any
}

type indexBody struct {
	Groups []navGroup
	Recent []*content.Article
}

type toolBody struct {
	Entry         *catalog.Entry
	ExampleInput  string
	ExampleOutput string
	ExampleTable  *export.Table
	ExampleError  string
	Related       []*catalog.Entry
	Articles      []*content.Article
}

type articleBody struct {
	Article *content.Article
	HTML    template.HTML
	Tools   []*catalog.Entry
}

type articlesBody struct {
	Groups []articleGroup
}

type articleGroup struct {
	Category string
	Articles []*content.Article
}

// Build writes the whole site into the configured output directory.
func (g *Generator) Build(ctx context.Context) (BuildReport, error) {
	report := BuildReport{
		ID:          uuid.NewString(),
		GeneratedAt: g.now().UTC(),
	}
	out := g.site.OutputDir
	if err := os.MkdirAll(out, 0o755); err != nil {
		return report, fmt.Errorf("create output dir: %w", err)
	}

	nav := g.navGroups()
	base := pageData{
		Site:    g.site,
		Lang:    langFromLocale(g.site.Locale),
		Nav:     nav,
		BuildID: report.ID,
		Year:    report.GeneratedAt.Year(),
	}

	// 1. Home
	all := g.articles.All()
	recent := all
	if len(recent) > recentArticles {
		recent = recent[:recentArticles]
	}
	home := base
	home.Meta = Meta{
		Title:       g.site.Name + " | " + g.site.Tagline,
		Description: fmt.Sprintf("%s: %d free calculators for unit economics, market sizing, runway, valuation and fundraising.", g.site.Tagline, g.calcs.Count()),
		Canonical:   g.site.CanonicalURL("/"),
		OGType:      "website",
	}
	home.Body = indexBody{Groups: nav, Recent: recent}
	if err := g.render(&report, "index.html", "index.html", home); err != nil {
		return report, err
	}

	// 2. Calculators
	for _, e := range g.calcs.All() {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		page := base
		page.Meta = Meta{
			Title:       e.Title + " | " + g.site.Name,
			Description: e.Description,
			Canonical:   g.site.CanonicalURL("/tools/" + e.Slug + "/"),
			OGType:      "website",
		}
		page.Body = g.toolBody(e)
		if err := g.render(&report, "tool.html", filepath.Join("tools", e.Slug, "index.html"), page); err != nil {
			return report, err
		}
		report.Tools = append(report.Tools, e.Slug)
	}

	// 3. Articles
	listing := base
	listing.Meta = Meta{
		Title:       "Guides | " + g.site.Name,
		Description: "Plain-language guides to the numbers behind a startup.",
		Canonical:   g.site.CanonicalURL("/articles/"),
		OGType:      "website",
	}
	var body articlesBody
	for _, c := range g.articles.Categories() {
		body.Groups = append(body.Groups, articleGroup{Category: c, Articles: g.articles.ByCategory(c)})
	}
	listing.Body = body
	if err := g.render(&report, "articles.html", filepath.Join("articles", "index.html"), listing); err != nil {
		return report, err
	}

	for _, a := range all {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		page := base
		page.Meta = Meta{
			Title:       a.Title + " | " + g.site.Name,
			Description: a.Description,
			Canonical:   g.site.CanonicalURL("/articles/" + a.Slug + "/"),
			OGType:      "article",
		}
		page.Body = articleBody{
			Article: a,
			HTML:    template.HTML(a.HTML), // rendered by goldmark without raw HTML passthrough
			Tools:   g.toolsFor(a),
		}
		if err := g.render(&report, "article.html", filepath.Join("articles", a.Slug, "index.html"), page); err != nil {
			return report, err
		}
		report.Articles = append(report.Articles, a.Slug)
	}

	// 4. Crawl files
	if err := g.writeSitemap(&report); err != nil {
		return report, err
	}
	if err := g.writeFile(&report, "robots.txt", []byte(robotsTxt(g.site))); err != nil {
		return report, err
	}
	manifest, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return report, fmt.Errorf("marshal manifest: %w", err)
	}
	if err := g.writeFile(&report, "manifest.json", manifest); err != nil {
		return report, err
	}

	g.logger.Info("site built",
		zap.String("build_id", report.ID),
		zap.String("output", out),
		zap.Int("tools", len(report.Tools)),
		zap.Int("articles", len(report.Articles)),
		zap.Int("pages", len(report.Pages)))
	return report, nil
}

func (g *Generator) navGroups() []navGroup {
	var groups []navGroup
	for _, e := range g.calcs.All() {
		if n := len(groups); n == 0 || groups[n-1].Category != e.Category {
			groups = append(groups, navGroup{Category: e.Category})
		}
		last := &groups[len(groups)-1]
		last.Tools = append(last.Tools, e)
	}
	return groups
}

func (g *Generator) toolBody(e *catalog.Entry) toolBody {
	body := toolBody{
		Entry:        e,
		ExampleInput: strings.TrimSpace(e.Example),
		Related:      g.calcs.Related(e.Slug),
		Articles:     g.articles.ForTool(e.Slug),
	}

	result, err := e.RunExample()
	if err != nil {
		g.logger.Warn("worked example failed", zap.String("slug", e.Slug), zap.Error(err))
		body.ExampleError = err.Error()
		return body
	}

	if tbl, err := export.TableFor(result); err == nil {
		body.ExampleTable = &tbl
		return body
	}
	pretty, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		body.ExampleError = err.Error()
		return body
	}
	body.ExampleOutput = string(pretty)
	return body
}

func (g *Generator) toolsFor(a *content.Article) []*catalog.Entry {
	var tools []*catalog.Entry
	for _, slug := range a.RelatedTools {
		e, err := g.calcs.Lookup(slug)
		if err != nil {
			g.logger.Warn("article links unknown calculator",
				zap.String("article", a.Slug), zap.String("slug", slug))
			continue
		}
		tools = append(tools, e)
	}
	return tools
}

func (g *Generator) render(report *BuildReport, tmpl, rel string, data pageData) error {
	t, ok := g.pages[tmpl]
	if !ok {
		return fmt.Errorf("unknown template %s", tmpl)
	}
	var buf strings.Builder
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("render %s: %w", rel, err)
	}
	return g.writeFile(report, rel, []byte(buf.String()))
}

func (g *Generator) writeFile(report *BuildReport, rel string, data []byte) error {
	path := filepath.Join(g.site.OutputDir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(rel), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", rel, err)
	}
	report.Pages = append(report.Pages, filepath.ToSlash(rel))
	g.logger.Debug("wrote page", zap.String("path", rel), zap.Int("bytes", len(data)))
	return nil
}

func langFromLocale(locale string) string {
	if locale == "" {
		return "en"
	}
	lang, _, _ := strings.Cut(locale, "_")
	return lang
}
