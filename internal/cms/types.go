package cms

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"sgwebsitebuilder.com/web/internal/imageurl"
	"sgwebsitebuilder.com/web/internal/richtext"
)

// Slug is the URL-safe identifier of a document.
type Slug struct {
	Current string `json:"current"`
}

// BlogType is the category tag of a blog post.
type BlogType string

const (
	BlogAnnouncement BlogType = "announcement"
	BlogTutorial     BlogType = "tutorial"
	BlogCaseStudy    BlogType = "case-study"
	BlogNews         BlogType = "news"
	BlogUpdate       BlogType = "update"
)

// BlogTypes lists the blog categories in display order.
var BlogTypes = []BlogType{BlogAnnouncement, BlogTutorial, BlogCaseStudy, BlogNews, BlogUpdate}

var blogTypeLabels = map[BlogType]string{
	BlogAnnouncement: "Announcement",
	BlogTutorial:     "Tutorial",
	BlogCaseStudy:    "Case Study",
	BlogNews:         "News",
	BlogUpdate:       "Update",
}

// Valid reports whether t is a known category.
func (t BlogType) Valid() bool {
	_, ok := blogTypeLabels[t]
	return ok
}

// Label returns the display name. Unknown values are title-cased from the slug.
func (t BlogType) Label() string {
	if label, ok := blogTypeLabels[t]; ok {
		return label
	}
	return labelFromSlug(string(t))
}

// WorkType is the category tag of a portfolio project.
type WorkType string

const (
	WorkEcommerce WorkType = "ecommerce"
	WorkBusiness  WorkType = "business"
	WorkCustom    WorkType = "custom"
	WorkSaaS      WorkType = "saas"
	WorkPortfolio WorkType = "portfolio"
)

// WorkTypes lists the project categories in display order.
var WorkTypes = []WorkType{WorkEcommerce, WorkBusiness, WorkCustom, WorkSaaS, WorkPortfolio}

var workTypeLabels = map[WorkType]string{
	WorkEcommerce: "E-commerce",
	WorkBusiness:  "Business Website",
	WorkCustom:    "Custom Web App",
	WorkSaaS:      "SaaS Platform",
	WorkPortfolio: "Portfolio",
}

// Valid reports whether t is a known category.
func (t WorkType) Valid() bool {
	_, ok := workTypeLabels[t]
	return ok
}

// Label returns the display name. Unknown values are title-cased from the slug.
func (t WorkType) Label() string {
	if label, ok := workTypeLabels[t]; ok {
		return label
	}
	return labelFromSlug(string(t))
}

func labelFromSlug(slug string) string {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return ""
	}
	// Casers keep state, so one is built per call.
	return cases.Title(language.English).String(strings.NewReplacer("-", " ", "_", " ").Replace(slug))
}

// BlogPost is a blog article document.
type BlogPost struct {
	ID          string          `json:"_id"`
	Title       string          `json:"title"`
	Slug        Slug            `json:"slug"`
	Image       imageurl.Source `json:"image"`
	Content     richtext.Blocks `json:"content"`
	Excerpt     string          `json:"excerpt"`
	Author      string          `json:"author"`
	Type        BlogType        `json:"type"`
	PublishedAt time.Time       `json:"publishedAt"`
}

// Preview returns the card excerpt for the post at the given length.
func (p BlogPost) Preview(limit int) string {
	return richtext.Excerpt(p.Excerpt, p.Content, limit)
}

// WorkProject is a portfolio entry document.
type WorkProject struct {
	ID           string          `json:"_id"`
	Title        string          `json:"title"`
	Slug         Slug            `json:"slug"`
	Image        imageurl.Source `json:"image"`
	Type         WorkType        `json:"type"`
	Features     []string        `json:"features"`
	Description  string          `json:"description"`
	Technologies []string        `json:"technologies"`
	PublishedAt  time.Time       `json:"publishedAt"`
}

// KeyFeatures returns at most n leading features.
func (p WorkProject) KeyFeatures(n int) []string {
	if n < 0 || len(p.Features) <= n {
		return p.Features
	}
	return p.Features[:n]
}
