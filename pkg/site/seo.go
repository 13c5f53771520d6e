package site

import (
	"encoding/xml"
	"fmt"
	"strings"

	"founder_calculators/pkg/config"
)

const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod,omitempty"`
	ChangeFreq string  `xml:"changefreq,omitempty"`
	Priority   float64 `xml:"priority,omitempty"`
}

// writeSitemap lists every HTML page written so far.
func (g *Generator) writeSitemap(report *BuildReport) error {
	set := urlSet{XMLNS: sitemapNS}
	lastMod := report.GeneratedAt.Format("2006-01-02")

	for _, rel := range report.Pages {
		if !strings.HasSuffix(rel, "index.html") {
			continue
		}
		path := "/" + strings.TrimSuffix(rel, "index.html")
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        g.site.CanonicalURL(path),
			LastMod:    lastMod,
			ChangeFreq: changeFreq(path),
			Priority:   priority(path),
		})
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal sitemap: %w", err)
	}
	return g.writeFile(report, "sitemap.xml", append([]byte(xml.Header), body...))
}

func priority(path string) float64 {
	switch {
	case path == "/":
		return 1.0
	case strings.HasPrefix(path, "/tools/"):
		return 0.9
	}
	return 0.7
}

func changeFreq(path string) string {
	if strings.HasPrefix(path, "/articles/") && path != "/articles/" {
		return "monthly"
	}
	return "weekly"
}

func robotsTxt(site config.SiteConfig) string {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n\n")
	b.WriteString("Sitemap: " + site.CanonicalURL("/sitemap.xml") + "\n")
	return b.String()
}
