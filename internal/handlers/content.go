package handlers

import (
	"html/template"
	"strconv"
	"strings"

	"sgwebsitebuilder.com/web/internal/cms"
	"sgwebsitebuilder.com/web/internal/format"
	"sgwebsitebuilder.com/web/internal/imageurl"
	"sgwebsitebuilder.com/web/internal/richtext"
	"sgwebsitebuilder.com/web/internal/seo"
	"sgwebsitebuilder.com/web/internal/widgets"
)

// Fragment endpoints that redraw the content grids.
const (
	BlogGridFragment = "/fragments/blog-grid"
	WorkGridFragment = "/fragments/work-grid"
)

const (
	cardWidth      = 600
	cardHeight     = 400
	featuredWidth  = 800
	featuredHeight = 600
	coverWidth     = 1200
	coverHeight    = 675

	workCardFeatures = 3
)

// Media resolves images and renders rich content for content views.
type Media struct {
	Images *imageurl.Builder
	Rich   *richtext.Renderer
}

// BlogCard is a post in a grid or the featured slot.
type BlogCard struct {
	Href      string
	Title     string
	Excerpt   string
	TypeLabel string
	Date      string
	DateISO   string
	Image     string
	ImageAlt  string
}

// FilterChip toggles one category in the blog filter.
type FilterChip struct {
	Label  string
	Active bool
	Href   string
	HXGet  string
}

// GridControl is the load-more / show-less button.
type GridControl struct {
	Visible bool
	Label   string
	Href    string
	HXGet   string
}

// BlogGridView is the filterable post grid.
type BlogGridView struct {
	Cards       []BlogCard
	Filters     []FilterChip
	Filtering   bool
	ClearHref   string
	ClearHXGet  string
	More        GridControl
	EmptyFilter bool
}

// BlogListView is the body of /blog.
type BlogListView struct {
	ListingContent
	Unavailable bool
	Featured    *BlogCard
	Grid        BlogGridView
}

// BuildBlogList lays out posts, newest first, as a featured card followed by
// the grid of the remaining posts.
func BuildBlogList(posts []cms.BlogPost, state widgets.GridState, media Media) BlogListView {
	view := BlogListView{ListingContent: BlogListing}
	if len(posts) == 0 {
		return view
	}
	featured := blogCard(posts[0], media, richtext.FeaturedExcerptLength, featuredWidth, featuredHeight)
	view.Featured = &featured
	view.Grid = BuildBlogGrid(posts[1:], state, media)
	return view
}

// BuildBlogGrid renders posts under state. The featured post is not part of posts.
func BuildBlogGrid(posts []cms.BlogPost, state widgets.GridState, media Media) BlogGridView {
	grid := widgets.NewGrid(posts, func(p cms.BlogPost) string { return string(p.Type) }).Apply(state)
	state = grid.State()

	view := BlogGridView{Filtering: len(state.Tags) > 0}
	for _, p := range grid.Visible() {
		view.Cards = append(view.Cards, blogCard(p, media, richtext.GridExcerptLength, cardWidth, cardHeight))
	}
	view.EmptyFilter = view.Filtering && len(view.Cards) == 0
	for _, t := range cms.BlogTypes {
		next := state.WithTagToggled(string(t))
		view.Filters = append(view.Filters, FilterChip{
			Label:  t.Label(),
			Active: state.HasTag(string(t)),
			Href:   stateURL("/blog", next),
			HXGet:  stateURL(BlogGridFragment, next),
		})
	}
	cleared := state.WithoutTags()
	view.ClearHref = stateURL("/blog", cleared)
	view.ClearHXGet = stateURL(BlogGridFragment, cleared)
	view.More = gridControl("/blog", BlogGridFragment, grid.HasMore(), state, grid.Remaining())
	return view
}

// AllowBlogType accepts known blog categories as filter tags.
func AllowBlogType(tag string) bool {
	return cms.BlogType(tag).Valid()
}

// WorkCard is a project in the work grid.
type WorkCard struct {
	Href      string
	Title     string
	TypeLabel string
	Image     string
	ImageAlt  string
	Features  []string
}

// WorkGridView is the paginated project grid.
type WorkGridView struct {
	Cards []WorkCard
	More  GridControl
}

// WorkListView is the body of /work.
type WorkListView struct {
	ListingContent
	Unavailable bool
	Grid        WorkGridView
}

// BuildWorkList lays out projects in the order given.
func BuildWorkList(projects []cms.WorkProject, state widgets.GridState, media Media) WorkListView {
	view := WorkListView{ListingContent: WorkListing}
	if len(projects) > 0 {
		view.Grid = BuildWorkGrid(projects, state, media)
	}
	return view
}

// BuildWorkGrid renders projects under state. Tags are ignored.
func BuildWorkGrid(projects []cms.WorkProject, state widgets.GridState, media Media) WorkGridView {
	state = state.WithoutTags()
	grid := widgets.NewGrid(projects, nil).Apply(state)

	var view WorkGridView
	for _, p := range grid.Visible() {
		view.Cards = append(view.Cards, WorkCard{
			Href:      "/work/" + p.Slug.Current,
			Title:     p.Title,
			TypeLabel: p.Type.Label(),
			Image:     media.Images.URLOrEmpty(p.Image, cardWidth, cardHeight),
			ImageAlt:  altText(p.Image, p.Title),
			Features:  p.KeyFeatures(workCardFeatures),
		})
	}
	view.More = gridControl("/work", WorkGridFragment, grid.HasMore(), state, grid.Remaining())
	return view
}

// BlogDetailView is the body of /blog/{slug}.
type BlogDetailView struct {
	Title     string
	TypeLabel string
	Author    string
	Date      string
	DateISO   string
	Image     string
	ImageAlt  string
	Content   template.HTML
	Back      Link
	More      Link
	CTA       CTA
}

// BuildBlogDetail renders a single post.
func BuildBlogDetail(p cms.BlogPost, media Media) BlogDetailView {
	return BlogDetailView{
		Title:     p.Title,
		TypeLabel: p.Type.Label(),
		Author:    p.Author,
		Date:      format.FmtDate(p.PublishedAt),
		DateISO:   format.ISODate(p.PublishedAt),
		Image:     media.Images.URLOrEmpty(p.Image, coverWidth, coverHeight),
		ImageAlt:  altText(p.Image, p.Title),
		Content:   media.Rich.HTML(p.Content),
		Back:      Link{Href: "/blog", Label: "Back to Blog"},
		More:      Link{Href: "/blog", Label: "Read More Posts"},
		CTA: CTA{
			Title:  "Want to Work With Us?",
			Body:   "Let's discuss your project and create something exceptional together.",
			Button: contactLink("Get in Touch"),
		},
	}
}

// BlogArticleLD is the Article structured data for a post.
func BlogArticleLD(siteURL string, p cms.BlogPost, image string) map[string]any {
	return seo.Article(p.Title, seo.Canonical(siteURL, "/blog/"+p.Slug.Current),
		AbsoluteURL(siteURL, image), p.Author, format.ISODate(p.PublishedAt))
}

// WorkDetailView is the body of /work/{slug}.
type WorkDetailView struct {
	Title        string
	TypeLabel    string
	Description  template.HTML
	Image        string
	ImageAlt     string
	Features     []string
	Technologies []string
	Back         Link
	More         Link
	CTA          CTA
}

// BuildWorkDetail renders a single project.
func BuildWorkDetail(p cms.WorkProject, media Media) WorkDetailView {
	view := WorkDetailView{
		Title:        p.Title,
		TypeLabel:    p.Type.Label(),
		Image:        media.Images.URLOrEmpty(p.Image, coverWidth, coverHeight),
		ImageAlt:     altText(p.Image, p.Title),
		Features:     p.Features,
		Technologies: p.Technologies,
		Back:         Link{Href: "/work", Label: "Back to Projects"},
		More:         Link{Href: "/work", Label: "View More Projects"},
		CTA: CTA{
			Eyebrow: "Interested in a Similar Project?",
			Title:   "Let's create something exceptional",
			Body:    "Discuss how we can help bring your vision to life with a similar approach.",
			Button:  contactLink("Get in Touch"),
		},
	}
	if strings.TrimSpace(p.Description) != "" {
		view.Description = media.Rich.Markdown(p.Description)
	}
	return view
}

// WorkCreativeLD is the CreativeWork structured data for a project.
func WorkCreativeLD(siteURL string, p cms.WorkProject, image string) map[string]any {
	return seo.CreativeWork(p.Title, seo.Canonical(siteURL, "/work/"+p.Slug.Current),
		AbsoluteURL(siteURL, image), p.Description, p.Technologies)
}

// NotFoundView is shown when a page or document does not exist.
type NotFoundView struct {
	Title   string
	Message string
	Back    Link
}

// Not-found views per section.
var (
	PostNotFound    = NotFoundView{Title: "Post Not Found", Message: "The blog post you're looking for doesn't exist.", Back: Link{Href: "/blog", Label: "Back to Blog"}}
	ProjectNotFound = NotFoundView{Title: "Project Not Found", Message: "The project you're looking for doesn't exist.", Back: Link{Href: "/work", Label: "Back to Projects"}}
	PageNotFound    = NotFoundView{Title: "Page Not Found", Message: "The page you're looking for doesn't exist.", Back: Link{Href: "/", Label: "Back to Home"}}
)

// UnavailableView replaces content that could not be fetched.
type UnavailableView struct {
	Title   string
	Message string
	Back    Link
}

// Unavailable returns the fetch-fault view linking back to back.
func Unavailable(back Link) UnavailableView {
	return UnavailableView{
		Title:   "We couldn't load this content right now",
		Message: "Please try again in a moment.",
		Back:    back,
	}
}

// AbsoluteURL resolves a site-relative URL against siteURL. Absolute and
// empty URLs are returned unchanged.
func AbsoluteURL(siteURL, u string) string {
	if strings.HasPrefix(u, "/") && !strings.HasPrefix(u, "//") {
		return seo.Canonical(siteURL, u)
	}
	return u
}

func blogCard(p cms.BlogPost, media Media, excerpt, w, h int) BlogCard {
	return BlogCard{
		Href:      "/blog/" + p.Slug.Current,
		Title:     p.Title,
		Excerpt:   p.Preview(excerpt),
		TypeLabel: p.Type.Label(),
		Date:      format.FmtDate(p.PublishedAt),
		DateISO:   format.ISODate(p.PublishedAt),
		Image:     media.Images.URLOrEmpty(p.Image, w, h),
		ImageAlt:  altText(p.Image, p.Title),
	}
}

func altText(src imageurl.Source, title string) string {
	if src.Alt != "" {
		return src.Alt
	}
	return title
}

func gridControl(page, fragment string, hasMore bool, state widgets.GridState, remaining int) GridControl {
	if !hasMore {
		return GridControl{}
	}
	next := state.WithShowAllToggled()
	label := "Load More (" + strconv.Itoa(remaining) + " more)"
	if state.ShowAll {
		label = "Show Less"
	}
	return GridControl{
		Visible: true,
		Label:   label,
		Href:    stateURL(page, next),
		HXGet:   stateURL(fragment, next),
	}
}

func stateURL(base string, state widgets.GridState) string {
	if q := state.Encode(); q != "" {
		return base + "?" + q
	}
	return base
}
