package cms

import (
	"encoding/json"
	"sort"
	"strings"
)

const (
	blogProjection = `{_id, title, slug, image, content, excerpt, author, type, publishedAt}`
	workProjection = `{_id, title, slug, image, type, features, description, technologies}`
)

// Query is a named document query. GROQ is sent to the hosted API; local
// evaluates the same selection against the embedded dataset.
type Query struct {
	Name  string
	GROQ  string
	local func(d *Dataset, params Params) any
}

// Params are query parameters. Values are encoded as JSON strings.
type Params map[string]string

var (
	// BlogListQuery selects every blog post, newest first.
	BlogListQuery = Query{
		Name:  "blogPosts",
		GROQ:  `*[_type == "blogPost"] | order(publishedAt desc) ` + blogProjection,
		local: func(d *Dataset, _ Params) any { return d.list("blogPost") },
	}
	// BlogDetailQuery selects one blog post by $slug.
	BlogDetailQuery = Query{
		Name:  "blogPost",
		GROQ:  `*[_type == "blogPost" && slug.current == $slug][0] ` + blogProjection,
		local: func(d *Dataset, p Params) any { return d.bySlug("blogPost", p["slug"]) },
	}
	// WorkListQuery selects every work project, newest first.
	WorkListQuery = Query{
		Name:  "workProjects",
		GROQ:  `*[_type == "work"] | order(publishedAt desc) ` + workProjection,
		local: func(d *Dataset, _ Params) any { return d.list("work") },
	}
	// WorkDetailQuery selects one work project by $slug.
	WorkDetailQuery = Query{
		Name:  "workProject",
		GROQ:  `*[_type == "work" && slug.current == $slug][0] ` + workProjection,
		local: func(d *Dataset, p Params) any { return d.bySlug("work", p["slug"]) },
	}
)

// CacheKey identifies a query and its parameters in the revalidation cache.
func (q Query) CacheKey(params Params) string {
	if len(params) == 0 {
		return q.Name
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	b.WriteString(q.Name)
	for _, k := range keys {
		b.WriteString("|")
		b.WriteString(k)
		b.WriteString("=")
		b.WriteString(params[k])
	}
	return b.String()
}

func encodeParam(v string) string {
	b, _ := json.Marshal(v)
	return string(b)
}
