package nav

import (
	"path"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Item represents a navigation link.
type Item struct {
	Path  string // e.g. "/pricing"
	Label string
}

// RenderedItem is a view model for templates.
type RenderedItem struct {
	Href   string
	Label  string
	Active bool
}

// Crumb represents a breadcrumb entry.
type Crumb struct {
	Href   string
	Label  string
	Active bool
}

// Contact is the call-to-action link at the end of the bar.
var Contact = Item{Path: "/contact", Label: "Contact"}

// Main is the primary navigation definition.
var Main = []Item{
	{Path: "/pricing", Label: "Pricing"},
	{Path: "/work", Label: "Work"},
	{Path: "/blog", Label: "Blog"},
	{Path: "/company", Label: "Company"},
}

// ServicesRoot is the parent of the services dropdown.
var ServicesRoot = Item{Path: "/services", Label: "Services"}

// Services lists the dropdown entries.
var Services = []Item{
	{Path: "/services/e-commerce", Label: "E-commerce"},
	{Path: "/services/business-web-design", Label: "Business Web Design"},
	{Path: "/services/custom-web-development", Label: "Custom Web Development"},
	{Path: "/services/website-management", Label: "Website Management"},
	{Path: "/services/seo", Label: "SEO"},
}

// FooterPages is the "Pages" column of the footer.
var FooterPages = []Item{
	{Path: "/", Label: "Home"},
	{Path: "/services", Label: "Services"},
	{Path: "/work", Label: "Work"},
	{Path: "/pricing", Label: "Pricing"},
	{Path: "/blog", Label: "Blog"},
	{Path: "/company", Label: "Company"},
	{Path: "/contact", Label: "Contact"},
}

// FooterServices is the "What We Do" column of the footer.
var FooterServices = []string{
	"Website development",
	"Conversion-focused builds",
	"Design-ready implementation",
	"Scalable production builds",
}

// Build renders items with active state given the current path.
func Build(items []Item, currentPath string) []RenderedItem {
	if currentPath == "" {
		currentPath = "/"
	}
	out := make([]RenderedItem, 0, len(items))
	for _, it := range items {
		out = append(out, RenderedItem{
			Href:   it.Path,
			Label:  it.Label,
			Active: isActive(it.Path, currentPath),
		})
	}
	return out
}

// IsActive reports whether currentPath is item or below it.
func IsActive(item Item, currentPath string) bool {
	return isActive(item.Path, currentPath)
}

func isActive(itemPath, currentPath string) bool {
	if itemPath == "/" {
		return currentPath == "/"
	}
	// match exact or prefix boundary: "/work" or "/work/..."
	return currentPath == itemPath || strings.HasPrefix(currentPath, itemPath+"/")
}

// Breadcrumbs builds breadcrumb entries from the current path. The last crumb
// uses title when given, e.g. a post title instead of its slug.
func Breadcrumbs(currentPath, title string) []Crumb {
	if currentPath == "" {
		currentPath = "/"
	}
	crumbs := []Crumb{{Href: "/", Label: "Home", Active: currentPath == "/"}}
	if currentPath == "/" {
		return crumbs
	}

	clean := path.Clean(currentPath)
	parts := strings.Split(strings.TrimPrefix(clean, "/"), "/")
	href := ""
	for i, part := range parts {
		if part == "" {
			continue
		}
		href += "/" + part
		label := labelFor(href, part)
		last := i == len(parts)-1
		if last && title != "" {
			label = title
		}
		crumbs = append(crumbs, Crumb{Href: href, Label: label, Active: last})
	}
	return crumbs
}

func labelFor(href, segment string) string {
	for _, group := range [][]Item{Main, Services, {ServicesRoot, Contact}} {
		for _, it := range group {
			if it.Path == href {
				return it.Label
			}
		}
	}
	return titleFromSegment(segment)
}

func titleFromSegment(seg string) string {
	seg = strings.NewReplacer("-", " ", "_", " ").Replace(seg)
	return cases.Title(language.English).String(seg)
}
