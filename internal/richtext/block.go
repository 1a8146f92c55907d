// Package richtext models structured rich content as a closed set of block
// variants and renders it to plain text and sanitized HTML.
package richtext

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"sgwebsitebuilder.com/web/internal/imageurl"
)

// Block is one top-level content block. The variant set is closed: Paragraph,
// Heading, ListItem, Quote, Image, Code and Unknown.
type Block interface {
	blockKey() string
}

// ListKind distinguishes bulleted from numbered list items.
type ListKind string

const (
	ListBullet ListKind = "bullet"
	ListNumber ListKind = "number"
)

// Span is a run of text sharing the same marks.
type Span struct {
	Text  string   `json:"text"`
	Marks []string `json:"marks,omitempty"`
}

// MarkDef defines an annotation referenced by key from Span.Marks.
type MarkDef struct {
	Key  string `json:"_key"`
	Type string `json:"_type"`
	Href string `json:"href,omitempty"`
}

// Text carries the inline content shared by text-bearing blocks.
type Text struct {
	Spans    []Span
	MarkDefs []MarkDef
}

// Paragraph is a normal text block.
type Paragraph struct {
	Key string
	Text
}

// Heading is a text block rendered as h1..h6.
type Heading struct {
	Key   string
	Level int
	Text
}

// ListItem is a text block that belongs to a list at the given nesting level (1-based).
type ListItem struct {
	Key   string
	Kind  ListKind
	Level int
	Text
}

// Quote is a block quotation.
type Quote struct {
	Key string
	Text
}

// Image is an inline image block.
type Image struct {
	Key     string
	Source  imageurl.Source
	Caption string
}

// Code is a fenced code sample.
type Code struct {
	Key      string
	Language string
	Code     string
	Filename string
}

// Unknown preserves a block type this package does not understand.
type Unknown struct {
	Key  string
	Type string
	Raw  json.RawMessage
}

func (b Paragraph) blockKey() string { return b.Key }
func (b Heading) blockKey() string   { return b.Key }
func (b ListItem) blockKey() string  { return b.Key }
func (b Quote) blockKey() string     { return b.Key }
func (b Image) blockKey() string     { return b.Key }
func (b Code) blockKey() string      { return b.Key }
func (b Unknown) blockKey() string   { return b.Key }

// Blocks is an ordered list of content blocks.
type Blocks []Block

type rawBlock struct {
	Type     string            `json:"_type"`
	Key      string            `json:"_key"`
	Style    string            `json:"style"`
	ListItem string            `json:"listItem"`
	Level    int               `json:"level"`
	Children []rawChild        `json:"children"`
	MarkDefs []MarkDef         `json:"markDefs"`
	Language string            `json:"language"`
	Code     string            `json:"code"`
	Filename string            `json:"filename"`
	Caption  string            `json:"caption"`
	Alt      string            `json:"alt"`
	Asset    *imageurl.Asset   `json:"asset"`
	Crop     *imageurl.Crop    `json:"crop"`
	Hotspot  *imageurl.Hotspot `json:"hotspot"`
}

type rawChild struct {
	Type  string   `json:"_type"`
	Text  string   `json:"text"`
	Marks []string `json:"marks"`
}

// UnmarshalJSON decodes an array of typed block documents.
func (bs *Blocks) UnmarshalJSON(data []byte) error {
	if strings.TrimSpace(string(data)) == "null" {
		*bs = nil
		return nil
	}
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return fmt.Errorf("richtext: decode blocks: %w", err)
	}
	out := make(Blocks, 0, len(raws))
	for i, raw := range raws {
		var rb rawBlock
		if err := json.Unmarshal(raw, &rb); err != nil {
			return fmt.Errorf("richtext: decode block %d: %w", i, err)
		}
		out = append(out, rb.toBlock(raw))
	}
	*bs = out
	return nil
}

func (rb rawBlock) toBlock(raw json.RawMessage) Block {
	switch rb.Type {
	case "block":
		text := Text{Spans: rb.spans(), MarkDefs: rb.MarkDefs}
		if rb.ListItem != "" {
			level := rb.Level
			if level < 1 {
				level = 1
			}
			kind := ListBullet
			if rb.ListItem == string(ListNumber) {
				kind = ListNumber
			}
			return ListItem{Key: rb.Key, Kind: kind, Level: level, Text: text}
		}
		if level, ok := headingLevel(rb.Style); ok {
			return Heading{Key: rb.Key, Level: level, Text: text}
		}
		if rb.Style == "blockquote" {
			return Quote{Key: rb.Key, Text: text}
		}
		return Paragraph{Key: rb.Key, Text: text}
	case "image":
		src := imageurl.Source{Crop: rb.Crop, Hotspot: rb.Hotspot, Alt: rb.Alt}
		if rb.Asset != nil {
			src.Asset = *rb.Asset
		}
		return Image{Key: rb.Key, Source: src, Caption: rb.Caption}
	case "code":
		return Code{Key: rb.Key, Language: rb.Language, Code: rb.Code, Filename: rb.Filename}
	default:
		cp := make(json.RawMessage, len(raw))
		copy(cp, raw)
		return Unknown{Key: rb.Key, Type: rb.Type, Raw: cp}
	}
}

func (rb rawBlock) spans() []Span {
	spans := make([]Span, 0, len(rb.Children))
	for _, c := range rb.Children {
		if c.Type != "" && c.Type != "span" && c.Text == "" {
			continue
		}
		spans = append(spans, Span{Text: c.Text, Marks: c.Marks})
	}
	return spans
}

func headingLevel(style string) (int, bool) {
	if len(style) != 2 || style[0] != 'h' {
		return 0, false
	}
	n, err := strconv.Atoi(style[1:])
	if err != nil || n < 1 || n > 6 {
		return 0, false
	}
	return n, true
}
