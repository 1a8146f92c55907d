package handlers

import (
	"net/url"
	"strconv"
	"strings"

	"sgwebsitebuilder.com/web/internal/widgets"
)

// Query parameters and fragment paths of the small widgets.
const (
	FAQParam             = "faq"
	SlideParam           = "slide"
	FAQFragment          = "/fragments/faq"
	TestimonialsFragment = "/fragments/testimonials"
)

// Carousel actions accepted by the testimonials fragment.
const (
	ActionNext = "next"
	ActionPrev = "prev"
	ActionGoTo = "goto"
)

// FAQItem is one accordion panel. Href is the no-script fallback link.
type FAQItem struct {
	Index    string
	Question string
	Answer   string
	Open     bool
	Href     string
	HXGet    string
}

// FAQView is the rendered accordion.
type FAQView struct {
	Heading string
	Intro   string
	Items   []FAQItem
}

// BuildFAQ renders items with panel open expanded. pagePath anchors the
// fallback links.
func BuildFAQ(items []QA, open int, pagePath string) FAQView {
	pagePath = localPath(pagePath)
	acc := widgets.NewAccordion(len(items))
	acc.Set(open)

	view := FAQView{Heading: FAQHeading, Intro: FAQIntro, Items: make([]FAQItem, 0, len(items))}
	for i, qa := range items {
		hx := url.Values{}
		hx.Set("open", strconv.Itoa(acc.Open()))
		hx.Set("toggle", strconv.Itoa(i))
		hx.Set("page", pagePath)
		view.Items = append(view.Items, FAQItem{
			Index:    strconv.Itoa(i),
			Question: qa.Question,
			Answer:   qa.Answer,
			Open:     acc.IsOpen(i),
			Href:     withIndex(pagePath, FAQParam, acc.After(i)) + "#faq",
			HXGet:    FAQFragment + "?" + hx.Encode(),
		})
	}
	return view
}

// ToggleFAQ returns the open panel after toggling panel toggle from state open.
func ToggleFAQ(n, open, toggle int) int {
	acc := widgets.NewAccordion(n)
	acc.Set(open)
	acc.Toggle(toggle)
	return acc.Open()
}

// CarouselDot jumps straight to one slide.
type CarouselDot struct {
	Label  string
	Active bool
	Href   string
	HXGet  string
}

// TestimonialsView is the rendered carousel at one slide.
type TestimonialsView struct {
	Current      Testimonial
	Counter      string
	Autoplay     bool
	AutoHXGet    string
	PrevHref     string
	PrevHXGet    string
	NextHref     string
	NextHXGet    string
	Dots         []CarouselDot
	IntervalSecs int
	TransitionMS int64
}

// BuildTestimonials renders items showing slide index. Out-of-range indices
// show the first slide.
func BuildTestimonials(items []Testimonial, index int, pagePath string) TestimonialsView {
	pagePath = localPath(pagePath)
	n := len(items)
	c := widgets.NewCarousel(n)
	c.GoTo(index)
	index = c.Index()

	view := TestimonialsView{
		Autoplay:     n > 1,
		IntervalSecs: int(widgets.AutoplayInterval.Seconds()),
		TransitionMS: widgets.TransitionDuration.Milliseconds(),
	}
	if n == 0 {
		return view
	}
	view.Current = items[index]
	view.Counter = strconv.Itoa(index+1) + "/" + strconv.Itoa(n)
	view.AutoHXGet = carouselURL(pagePath, index, ActionNext, 0)
	view.PrevHXGet = carouselURL(pagePath, index, ActionPrev, 0)
	view.NextHXGet = view.AutoHXGet
	view.PrevHref = withIndex(pagePath, SlideParam, widgets.Wrap(index, -1, n)) + "#testimonials"
	view.NextHref = withIndex(pagePath, SlideParam, widgets.Wrap(index, 1, n)) + "#testimonials"
	for i := range items {
		view.Dots = append(view.Dots, CarouselDot{
			Label:  "Go to testimonial " + strconv.Itoa(i+1),
			Active: i == index,
			Href:   withIndex(pagePath, SlideParam, i) + "#testimonials",
			HXGet:  carouselURL(pagePath, index, ActionGoTo, i),
		})
	}
	return view
}

// StepCarousel applies action to a carousel of n slides at index and returns
// the slide shown once the transition settles. Unknown actions keep index.
func StepCarousel(n, index int, action string, to int) int {
	c := widgets.NewCarousel(n)
	c.GoTo(index)
	switch action {
	case ActionNext:
		c.Next()
	case ActionPrev:
		c.Prev()
	case ActionGoTo:
		c.GoTo(to)
	}
	return c.Settle()
}

func carouselURL(pagePath string, index int, action string, to int) string {
	q := url.Values{}
	q.Set("index", strconv.Itoa(index))
	q.Set("action", action)
	if action == ActionGoTo {
		q.Set("to", strconv.Itoa(to))
	}
	q.Set("page", pagePath)
	return TestimonialsFragment + "?" + q.Encode()
}

// withIndex links pagePath with param set to i, or without it for None.
func withIndex(pagePath, param string, i int) string {
	if i == widgets.None {
		return pagePath
	}
	return pagePath + "?" + url.Values{param: {strconv.Itoa(i)}}.Encode()
}

// localPath keeps fallback links on this site.
func localPath(p string) string {
	if !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") || strings.ContainsAny(p, "?#\\") {
		return "/"
	}
	return p
}
