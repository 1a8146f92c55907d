package handlers

import (
	"html/template"
	"strconv"
	"time"

	"sgwebsitebuilder.com/web/internal/nav"
	"sgwebsitebuilder.com/web/internal/seo"
	"sgwebsitebuilder.com/web/internal/widgets"
)

// Link is a labelled href.
type Link struct {
	Href  string
	Label string
}

// Site carries the values shared by every page.
type Site struct {
	Name     string
	URL      string
	Email    string
	WhatsApp Link
	Location string
	Tagline  string
	Collab   Link
}

// DefaultSite returns the agency details with the given public name and URL.
func DefaultSite(name, url string) Site {
	if name == "" {
		name = "SGWebsiteBuilder"
	}
	return Site{
		Name:     name,
		URL:      url,
		Email:    "hello@sgwebsitebuilder.com",
		WhatsApp: Link{Href: "https://wa.me/6512345678", Label: "WhatsApp"},
		Location: "Singapore",
		Tagline:  "High-converting websites built for SMEs, founders, and startups.",
		Collab:   Link{Href: "https://www.retroxpect.org/", Label: "retroXpect"},
	}
}

// NavbarView is the navbar as first rendered. The compact palette travels in
// data attributes so the browser can switch without a round trip.
type NavbarView struct {
	Items          []nav.RenderedItem
	Services       []nav.RenderedItem
	ServicesHref   string
	ServicesLabel  string
	ServicesActive bool
	Contact        nav.RenderedItem
	Palette        widgets.Palette
	Compact        widgets.Palette
	Height         string
	CompactHeight  string
	CloseDelayMS   int64
}

// NewNavbarView builds the navbar for the page at path.
func NewNavbarView(path string, scheme widgets.Scheme) NavbarView {
	contact := nav.Build([]nav.Item{nav.Contact}, path)[0]
	return NavbarView{
		Items:          nav.Build(nav.Main, path),
		Services:       nav.Build(nav.Services, path),
		ServicesHref:   nav.ServicesRoot.Path,
		ServicesLabel:  nav.ServicesRoot.Label,
		ServicesActive: nav.IsActive(nav.ServicesRoot, path),
		Contact:        contact,
		Palette:        scheme.Colors(false),
		Compact:        scheme.Colors(true),
		Height:         widgets.HeightClass(false),
		CompactHeight:  widgets.HeightClass(true),
		CloseDelayMS:   widgets.ServicesCloseDelay.Milliseconds(),
	}
}

// FooterView is the site footer.
type FooterView struct {
	Brand     string
	Tagline   string
	Pages     []nav.RenderedItem
	Services  []string
	Email     string
	Location  string
	Copyright string
}

// NewFooterView builds the footer for the page at path.
func NewFooterView(site Site, path string, year int) FooterView {
	return FooterView{
		Brand:     site.Name,
		Tagline:   site.Tagline,
		Pages:     nav.Build(nav.FooterPages, path),
		Services:  nav.FooterServices,
		Email:     site.Email,
		Location:  site.Location,
		Copyright: "© " + strconv.Itoa(year) + " " + site.Name,
	}
}

// PageData is the view model passed to the base layout. Page names the
// template that renders Body.
type PageData struct {
	Page        string
	Path        string
	Site        Site
	Meta        seo.Meta
	JSONLD      []template.JS
	Navbar      NavbarView
	Footer      FooterView
	Breadcrumbs []nav.Crumb
	CSRFToken   string
	Body        any
}

// PageOptions describes one page for NewPage.
type PageOptions struct {
	Page        string
	Path        string
	Title       string
	Crumb       string
	Description string
	Scheme      *widgets.Scheme
	Now         time.Time
}

// NewPage assembles the shared layout fields for a page.
func NewPage(site Site, opt PageOptions, body any) PageData {
	scheme := widgets.DefaultScheme
	if opt.Scheme != nil {
		scheme = *opt.Scheme
	}
	now := opt.Now
	if now.IsZero() {
		now = time.Now()
	}
	data := PageData{
		Page:        opt.Page,
		Path:        opt.Path,
		Site:        site,
		Meta:        seo.New(site.Name, site.URL, opt.Path, opt.Title, opt.Description),
		Navbar:      NewNavbarView(opt.Path, scheme),
		Footer:      NewFooterView(site, opt.Path, now.Year()),
		Breadcrumbs: nav.Breadcrumbs(opt.Path, opt.Crumb),
		Body:        body,
	}
	if opt.Path == "/" {
		data.JSONLD = append(data.JSONLD, seo.Script(seo.Organization(site.Name, site.URL, site.Email)))
	} else {
		data.JSONLD = append(data.JSONLD, seo.Script(seo.BreadcrumbList(breadcrumbItems(site.URL, data.Breadcrumbs))))
	}
	return data
}

// AddJSONLD appends a structured-data payload.
func (p *PageData) AddJSONLD(v any) {
	p.JSONLD = append(p.JSONLD, seo.Script(v))
}

func breadcrumbItems(siteURL string, crumbs []nav.Crumb) []seo.BreadcrumbItem {
	items := make([]seo.BreadcrumbItem, 0, len(crumbs))
	for _, c := range crumbs {
		items = append(items, seo.BreadcrumbItem{Name: c.Label, Item: seo.Canonical(siteURL, c.Href)})
	}
	return items
}
