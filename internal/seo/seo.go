package seo

import "strings"

type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
	URL         string
}

type Twitter struct {
	Card  string
	Image string
}

type Meta struct {
	Title       string
	Description string
	Canonical   string
	OG          OpenGraph
	Twitter     Twitter
}

// DefaultDescription is used by pages without their own description.
const DefaultDescription = "We develop conversion-focused websites for startups and SMEs that turn clarity, structure, and strategy into consistent leads."

// New builds page meta. title is suffixed with the site name unless it is
// the site name; canonical is siteURL joined with pagePath.
func New(siteName, siteURL, pagePath, title, description string) Meta {
	full := siteName
	if title != "" && title != siteName {
		full = title + " | " + siteName
	}
	if description == "" {
		description = DefaultDescription
	}
	canonical := Canonical(siteURL, pagePath)
	return Meta{
		Title:       full,
		Description: description,
		Canonical:   canonical,
		OG: OpenGraph{
			Title:       full,
			Description: description,
			Type:        "website",
			URL:         canonical,
		},
		Twitter: Twitter{Card: "summary_large_image"},
	}
}

// WithImage sets the share image.
func (m Meta) WithImage(url string) Meta {
	m.OG.Image = url
	m.Twitter.Image = url
	return m
}

// AsArticle marks the page as an article for Open Graph.
func (m Meta) AsArticle() Meta {
	m.OG.Type = "article"
	return m
}

// Canonical joins the site URL and a path.
func Canonical(siteURL, pagePath string) string {
	siteURL = strings.TrimRight(siteURL, "/")
	if pagePath == "" || pagePath == "/" {
		return siteURL + "/"
	}
	return siteURL + "/" + strings.TrimLeft(pagePath, "/")
}
