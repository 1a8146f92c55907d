package cms

import (
	_ "embed"
	"fmt"
	"sort"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed fallback.yaml
var fallbackYAML []byte

// Dataset is an in-memory document set used when no hosted project is
// configured. Documents keep the hosted wire shape so they decode through the
// same path as API results.
type Dataset struct {
	docs []map[string]any
}

// DefaultDataset parses the embedded dataset.
func DefaultDataset() (*Dataset, error) {
	return LoadDataset(fallbackYAML)
}

// LoadDataset parses a YAML list of documents. Each document needs _id and _type.
func LoadDataset(data []byte) (*Dataset, error) {
	var docs []map[string]any
	if err := yaml.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("cms: parse dataset: %w", err)
	}
	for i, doc := range docs {
		if _, ok := doc["_id"].(string); !ok {
			return nil, fmt.Errorf("cms: dataset document %d: missing _id", i)
		}
		if _, ok := doc["_type"].(string); !ok {
			return nil, fmt.Errorf("cms: dataset document %d: missing _type", i)
		}
	}
	return &Dataset{docs: docs}, nil
}

// Len returns the number of documents.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.docs)
}

func (d *Dataset) list(docType string) []map[string]any {
	out := make([]map[string]any, 0)
	if d == nil {
		return out
	}
	for _, doc := range d.docs {
		if doc["_type"] == docType {
			out = append(out, doc)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return publishedAt(out[i]).After(publishedAt(out[j]))
	})
	return out
}

func (d *Dataset) bySlug(docType, slug string) any {
	if d == nil {
		return nil
	}
	for _, doc := range d.docs {
		if doc["_type"] != docType {
			continue
		}
		if s, ok := doc["slug"].(map[string]any); ok && s["current"] == slug {
			return doc
		}
	}
	return nil
}

func publishedAt(doc map[string]any) time.Time {
	switch v := doc["publishedAt"].(type) {
	case time.Time:
		return v
	case string:
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return t
		}
	}
	return time.Time{}
}
