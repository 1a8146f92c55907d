// Package imageurl turns hosted image references into sized CDN URLs.
package imageurl

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
)

const defaultBaseURL = "https://cdn.sanity.io"

var (
	// ErrNoAsset is returned for an image value that carries neither a reference nor a URL.
	ErrNoAsset = errors.New("imageurl: image has no asset")
	// ErrInvalidRef is returned when an asset reference does not have the
	// image-<id>-<w>x<h>-<format> shape.
	ErrInvalidRef = errors.New("imageurl: invalid asset reference")
	// ErrNotConfigured is returned when a reference must be resolved but no project is set.
	ErrNotConfigured = errors.New("imageurl: project not configured")
)

// Source is an image value as stored on a document.
type Source struct {
	Asset   Asset    `json:"asset" yaml:"asset"`
	Crop    *Crop    `json:"crop,omitempty" yaml:"crop,omitempty"`
	Hotspot *Hotspot `json:"hotspot,omitempty" yaml:"hotspot,omitempty"`
	Alt     string   `json:"alt,omitempty" yaml:"alt,omitempty"`
}

// Asset points at the stored file either by reference or by direct URL.
type Asset struct {
	Ref string `json:"_ref,omitempty" yaml:"_ref,omitempty"`
	URL string `json:"url,omitempty" yaml:"url,omitempty"`
}

// Crop trims the source image. Each side is a fraction of the full dimension.
type Crop struct {
	Top    float64 `json:"top" yaml:"top"`
	Bottom float64 `json:"bottom" yaml:"bottom"`
	Left   float64 `json:"left" yaml:"left"`
	Right  float64 `json:"right" yaml:"right"`
}

// Hotspot marks the focal area, as fractions of the full dimension.
type Hotspot struct {
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// IsZero reports whether the source has nothing to resolve.
func (s Source) IsZero() bool {
	return strings.TrimSpace(s.Asset.Ref) == "" && strings.TrimSpace(s.Asset.URL) == ""
}

// Options sizes the resolved URL. Zero values are omitted.
type Options struct {
	Width  int
	Height int
	Fit    string
}

// Ref is a parsed asset reference.
type Ref struct {
	ID     string
	Width  int
	Height int
	Format string
}

// ParseRef splits image-<id>-<w>x<h>-<format>.
func ParseRef(ref string) (Ref, error) {
	ref = strings.TrimSpace(ref)
	if !strings.HasPrefix(ref, "image-") {
		return Ref{}, fmt.Errorf("%w: %q", ErrInvalidRef, ref)
	}
	parts := strings.Split(strings.TrimPrefix(ref, "image-"), "-")
	if len(parts) < 3 {
		return Ref{}, fmt.Errorf("%w: %q", ErrInvalidRef, ref)
	}
	format := parts[len(parts)-1]
	dims := parts[len(parts)-2]
	id := strings.Join(parts[:len(parts)-2], "-")
	w, h, ok := parseDimensions(dims)
	if !ok || id == "" || format == "" {
		return Ref{}, fmt.Errorf("%w: %q", ErrInvalidRef, ref)
	}
	return Ref{ID: id, Width: w, Height: h, Format: format}, nil
}

func parseDimensions(s string) (int, int, bool) {
	ws, hs, found := strings.Cut(s, "x")
	if !found {
		return 0, 0, false
	}
	w, err := strconv.Atoi(ws)
	if err != nil || w <= 0 {
		return 0, 0, false
	}
	h, err := strconv.Atoi(hs)
	if err != nil || h <= 0 {
		return 0, 0, false
	}
	return w, h, true
}

// Builder resolves sources for one project and dataset.
type Builder struct {
	projectID string
	dataset   string
	baseURL   string
}

// NewBuilder constructs a Builder. An empty project id still resolves direct URLs.
func NewBuilder(projectID, dataset string) *Builder {
	return &Builder{
		projectID: strings.TrimSpace(projectID),
		dataset:   strings.TrimSpace(dataset),
		baseURL:   defaultBaseURL,
	}
}

// URL resolves src to a sized URL.
func (b *Builder) URL(src Source, opt Options) (string, error) {
	if src.IsZero() {
		return "", ErrNoAsset
	}
	if strings.TrimSpace(src.Asset.Ref) == "" {
		return directURL(strings.TrimSpace(src.Asset.URL), opt)
	}
	if b == nil || b.projectID == "" || b.dataset == "" {
		return "", ErrNotConfigured
	}
	ref, err := ParseRef(src.Asset.Ref)
	if err != nil {
		return "", err
	}

	u := fmt.Sprintf("%s/images/%s/%s/%s-%dx%d.%s", b.baseURL, b.projectID, b.dataset, ref.ID, ref.Width, ref.Height, ref.Format)
	q := url.Values{}
	if src.Crop != nil {
		if rect, ok := cropRect(*src.Crop, ref.Width, ref.Height); ok {
			q.Set("rect", rect)
		}
	}
	if src.Hotspot != nil && opt.Width > 0 && opt.Height > 0 {
		q.Set("crop", "focalpoint")
		q.Set("fp-x", formatFraction(src.Hotspot.X))
		q.Set("fp-y", formatFraction(src.Hotspot.Y))
	}
	applySize(q, opt)
	return u + "?" + q.Encode(), nil
}

// URLOrEmpty resolves src and returns "" on failure, for template use.
func (b *Builder) URLOrEmpty(src Source, width, height int) string {
	u, err := b.URL(src, Options{Width: width, Height: height})
	if err != nil {
		return ""
	}
	return u
}

func directURL(raw string, opt Options) (string, error) {
	if strings.HasPrefix(raw, "/") {
		// Local static asset, served as-is.
		return raw, nil
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidRef, raw)
	}
	q := u.Query()
	applySize(q, opt)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func applySize(q url.Values, opt Options) {
	if opt.Width > 0 {
		q.Set("w", strconv.Itoa(opt.Width))
	}
	if opt.Height > 0 {
		q.Set("h", strconv.Itoa(opt.Height))
	}
	if opt.Width > 0 || opt.Height > 0 {
		fit := opt.Fit
		if fit == "" {
			fit = "crop"
		}
		q.Set("fit", fit)
	}
	q.Set("auto", "format")
}

func cropRect(c Crop, width, height int) (string, bool) {
	if c.Top <= 0 && c.Bottom <= 0 && c.Left <= 0 && c.Right <= 0 {
		return "", false
	}
	left := int(math.Round(c.Left * float64(width)))
	top := int(math.Round(c.Top * float64(height)))
	w := int(math.Round(float64(width) - (c.Left+c.Right)*float64(width)))
	h := int(math.Round(float64(height) - (c.Top+c.Bottom)*float64(height)))
	if w <= 0 || h <= 0 {
		return "", false
	}
	return fmt.Sprintf("%d,%d,%d,%d", left, top, w, h), true
}

func formatFraction(v float64) string {
	return strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64)
}
