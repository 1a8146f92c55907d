package cms

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ErrNotFound is returned when a single-document query matches nothing.
var ErrNotFound = errors.New("cms: not found")

const (
	defaultTimeout       = 5 * time.Second
	defaultRevalidate    = 30 * time.Second
	maxErrorBodyBytes    = 4 << 10
	apiHostSuffix        = ".api.sanity.io"
	cdnHostSuffix        = ".apicdn.sanity.io"
	outcomeHit           = "hit"
	outcomeMiss          = "miss"
	outcomeError         = "error"
	outcomeNotFound      = "not_found"
	outcomeCacheBypassed = "cache_error"
)

// HTTPClient is the subset of *http.Client used to call the query API.
type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

// Recorder observes lookup outcomes.
type Recorder interface {
	ContentFetch(query, outcome string)
}

// Config identifies the hosted dataset.
type Config struct {
	ProjectID  string
	Dataset    string
	APIVersion string
	UseCDN     bool
	Token      string
	Revalidate time.Duration
	Timeout    time.Duration
}

// APIError is returned for non-2xx responses from the query API.
type APIError struct {
	Status      int
	Description string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Description == "" {
		return fmt.Sprintf("cms: query api status %d", e.Status)
	}
	return fmt.Sprintf("cms: query api status %d: %s", e.Status, e.Description)
}

// Client provides read-only access to blog and work documents. Results are
// cached for the revalidation window and concurrent identical lookups share
// one fetch.
type Client struct {
	cfg      Config
	baseURL  string
	http     HTTPClient
	cache    Cache
	dataset  *Dataset
	logger   *zap.Logger
	recorder Recorder
	group    singleflight.Group
	now      func() time.Time
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(c HTTPClient) Option {
	return func(cl *Client) {
		if c != nil {
			cl.http = c
		}
	}
}

// WithBaseURL points the client at a different query host, e.g. a test server.
func WithBaseURL(u string) Option {
	return func(cl *Client) {
		cl.baseURL = strings.TrimRight(strings.TrimSpace(u), "/")
	}
}

// WithCache overrides the revalidation cache.
func WithCache(c Cache) Option {
	return func(cl *Client) {
		if c != nil {
			cl.cache = c
		}
	}
}

// WithDataset serves lookups from d whenever no project id is configured.
func WithDataset(d *Dataset) Option {
	return func(cl *Client) {
		cl.dataset = d
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(cl *Client) {
		if l != nil {
			cl.logger = l
		}
	}
}

// WithRecorder sets the outcome recorder.
func WithRecorder(r Recorder) Option {
	return func(cl *Client) {
		cl.recorder = r
	}
}

// NewClient constructs a Client. Without a project id lookups are answered
// from the dataset given by WithDataset.
func NewClient(cfg Config, opts ...Option) *Client {
	cfg.ProjectID = strings.TrimSpace(cfg.ProjectID)
	cfg.APIVersion = strings.TrimPrefix(strings.TrimSpace(cfg.APIVersion), "v")
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.Revalidate < 0 {
		cfg.Revalidate = defaultRevalidate
	}
	c := &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		cache:  NewMemoryCache(nil),
		logger: zap.NewNop(),
		now:    time.Now,
	}
	if cfg.ProjectID != "" {
		host := apiHostSuffix
		if cfg.UseCDN && cfg.Token == "" {
			host = cdnHostSuffix
		}
		c.baseURL = "https://" + cfg.ProjectID + host
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Remote reports whether lookups go to the hosted API.
func (c *Client) Remote() bool {
	return c.cfg.ProjectID != ""
}

// ListBlogPosts returns all posts ordered by publication time, newest first.
func (c *Client) ListBlogPosts(ctx context.Context) ([]BlogPost, error) {
	var posts []BlogPost
	if err := c.Fetch(ctx, BlogListQuery, nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// GetBlogPost returns the post with the given slug or ErrNotFound.
func (c *Client) GetBlogPost(ctx context.Context, slug string) (BlogPost, error) {
	slug = sanitizeSlug(slug)
	if slug == "" {
		return BlogPost{}, ErrNotFound
	}
	var post BlogPost
	if err := c.Fetch(ctx, BlogDetailQuery, Params{"slug": slug}, &post); err != nil {
		return BlogPost{}, err
	}
	return post, nil
}

// ListWorkProjects returns all projects ordered by publication time, newest first.
func (c *Client) ListWorkProjects(ctx context.Context) ([]WorkProject, error) {
	var projects []WorkProject
	if err := c.Fetch(ctx, WorkListQuery, nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// GetWorkProject returns the project with the given slug or ErrNotFound.
func (c *Client) GetWorkProject(ctx context.Context, slug string) (WorkProject, error) {
	slug = sanitizeSlug(slug)
	if slug == "" {
		return WorkProject{}, ErrNotFound
	}
	var project WorkProject
	if err := c.Fetch(ctx, WorkDetailQuery, Params{"slug": slug}, &project); err != nil {
		return WorkProject{}, err
	}
	return project, nil
}

// Fetch runs q and decodes its result into out. A null result yields ErrNotFound.
func (c *Client) Fetch(ctx context.Context, q Query, params Params, out any) error {
	key := q.CacheKey(params)
	raw, err := c.lookup(ctx, q, params, key)
	if err != nil {
		c.record(q.Name, outcomeError)
		return err
	}
	if isNull(raw) {
		c.record(q.Name, outcomeNotFound)
		return ErrNotFound
	}
	if err := json.Unmarshal(raw, out); err != nil {
		c.record(q.Name, outcomeError)
		return fmt.Errorf("cms: decode %s: %w", q.Name, err)
	}
	return nil
}

func (c *Client) lookup(ctx context.Context, q Query, params Params, key string) (json.RawMessage, error) {
	if c.cfg.Revalidate > 0 {
		cached, ok, err := c.cache.Get(ctx, key)
		switch {
		case err != nil:
			c.logger.Warn("cms: cache get failed", zap.String("query", q.Name), zap.Error(err))
			c.record(q.Name, outcomeCacheBypassed)
		case ok:
			c.record(q.Name, outcomeHit)
			return cached, nil
		}
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		// The shared fetch must not die with whichever caller started it.
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.cfg.Timeout)
		defer cancel()

		start := c.now()
		raw, err := c.execute(fetchCtx, q, params)
		if err != nil {
			return nil, err
		}
		c.record(q.Name, outcomeMiss)
		c.logger.Debug("cms: fetched",
			zap.String("query", q.Name),
			zap.Bool("remote", c.Remote()),
			zap.Duration("latency", c.now().Sub(start)),
		)
		if c.cfg.Revalidate > 0 {
			if err := c.cache.Set(fetchCtx, key, raw, c.cfg.Revalidate); err != nil {
				c.logger.Warn("cms: cache set failed", zap.String("query", q.Name), zap.Error(err))
			}
		}
		return raw, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(json.RawMessage), nil
}

func (c *Client) execute(ctx context.Context, q Query, params Params) (json.RawMessage, error) {
	if !c.Remote() {
		if c.dataset == nil || q.local == nil {
			return nil, fmt.Errorf("cms: %s: no content source configured", q.Name)
		}
		b, err := json.Marshal(q.local(c.dataset, params))
		if err != nil {
			return nil, fmt.Errorf("cms: encode local %s: %w", q.Name, err)
		}
		return b, nil
	}
	return c.executeRemote(ctx, q, params)
}

func (c *Client) executeRemote(ctx context.Context, q Query, params Params) (json.RawMessage, error) {
	endpoint, err := url.JoinPath(c.baseURL, "v"+c.cfg.APIVersion, "data", "query", c.cfg.Dataset)
	if err != nil {
		return nil, fmt.Errorf("cms: build endpoint: %w", err)
	}
	values := url.Values{}
	values.Set("query", q.GROQ)
	for k, v := range params {
		values.Set("$"+k, encodeParam(v))
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+values.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("cms: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cms: %s request: %w", q.Name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return nil, &APIError{Status: resp.StatusCode, Description: errorDescription(body)}
	}

	var payload struct {
		Result json.RawMessage `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("cms: decode %s response: %w", q.Name, err)
	}
	if len(payload.Result) == 0 {
		return json.RawMessage("null"), nil
	}
	return payload.Result, nil
}

func (c *Client) record(query, outcome string) {
	if c.recorder != nil {
		c.recorder.ContentFetch(query, outcome)
	}
}

func errorDescription(body []byte) string {
	var payload struct {
		Error   json.RawMessage `json:"error"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return strings.TrimSpace(string(body))
	}
	var detail struct {
		Description string `json:"description"`
	}
	if err := json.Unmarshal(payload.Error, &detail); err == nil && detail.Description != "" {
		return detail.Description
	}
	var plain string
	if err := json.Unmarshal(payload.Error, &plain); err == nil && plain != "" {
		if payload.Message != "" {
			return plain + ": " + payload.Message
		}
		return plain
	}
	return payload.Message
}

func isNull(raw json.RawMessage) bool {
	s := strings.TrimSpace(string(raw))
	return s == "" || s == "null"
}

func sanitizeSlug(slug string) string {
	slug = strings.TrimSpace(strings.ToLower(slug))
	slug = strings.Trim(slug, "/")
	if slug == "" || strings.Contains(slug, "..") || strings.ContainsAny(slug, "/\\") {
		return ""
	}
	return slug
}
