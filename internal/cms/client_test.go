package cms

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"sgwebsitebuilder.com/web/internal/richtext"
)

type outcomeRecorder struct {
	mu       sync.Mutex
	outcomes []string
}

func (r *outcomeRecorder) ContentFetch(query, outcome string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes = append(r.outcomes, query+":"+outcome)
}

func (r *outcomeRecorder) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.outcomes...)
}

func newLocalClient(t *testing.T, opts ...Option) *Client {
	t.Helper()
	ds, err := DefaultDataset()
	require.NoError(t, err)
	opts = append([]Option{WithDataset(ds)}, opts...)
	return NewClient(Config{Revalidate: time.Minute}, opts...)
}

func newRemoteClient(t *testing.T, srv *httptest.Server, cfg Config, opts ...Option) *Client {
	t.Helper()
	if cfg.ProjectID == "" {
		cfg.ProjectID = "proj123"
	}
	if cfg.Dataset == "" {
		cfg.Dataset = "production"
	}
	if cfg.APIVersion == "" {
		cfg.APIVersion = "2026-02-13"
	}
	opts = append([]Option{WithBaseURL(srv.URL), WithHTTPClient(srv.Client())}, opts...)
	return NewClient(cfg, opts...)
}

func TestLocalListsAreNewestFirst(t *testing.T) {
	t.Parallel()

	client := newLocalClient(t)
	require.False(t, client.Remote())

	posts, err := client.ListBlogPosts(context.Background())
	require.NoError(t, err)
	require.Greater(t, len(posts), 12)
	require.Equal(t, "launching-sgwebsitebuilder-2026", posts[0].Slug.Current)
	for i := 1; i < len(posts); i++ {
		require.False(t, posts[i].PublishedAt.After(posts[i-1].PublishedAt), "posts out of order at %d", i)
	}

	projects, err := client.ListWorkProjects(context.Background())
	require.NoError(t, err)
	require.Greater(t, len(projects), 12)
	require.Equal(t, "harbour-supply-co", projects[0].Slug.Current)
	require.Equal(t, WorkEcommerce, projects[0].Type)
	require.Len(t, projects[0].KeyFeatures(3), 3)
}

func TestLocalDetailLookups(t *testing.T) {
	t.Parallel()

	client := newLocalClient(t)
	ctx := context.Background()

	post, err := client.GetBlogPost(ctx, "paynow-for-small-shops")
	require.NoError(t, err)
	require.Equal(t, "PayNow for Small Online Shops", post.Title)
	require.Equal(t, BlogTutorial, post.Type)
	require.Equal(t, post.Excerpt, post.Preview(richtext.GridExcerptLength))
	require.NotEmpty(t, post.Content)

	other, err := client.GetBlogPost(ctx, "/core-web-vitals-2026/")
	require.NoError(t, err)
	require.Empty(t, other.Excerpt)
	require.LessOrEqual(t, len([]rune(other.Preview(richtext.GridExcerptLength))), richtext.GridExcerptLength+3)

	_, err = client.GetBlogPost(ctx, "does-not-exist")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = client.GetBlogPost(ctx, "../secrets")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = client.GetWorkProject(ctx, "")
	require.ErrorIs(t, err, ErrNotFound)

	project, err := client.GetWorkProject(ctx, "ledgerlite")
	require.NoError(t, err)
	require.Equal(t, WorkSaaS, project.Type)
	require.Contains(t, project.Technologies, "Go")
}

func TestRemoteQueryRequest(t *testing.T) {
	t.Parallel()

	var gotPath, gotQuery, gotSlug, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("query")
		gotSlug = r.URL.Query().Get("$slug")
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ms":3,"result":{"_id":"b1","title":"Hello","slug":{"current":"hello"},"type":"news",
			"publishedAt":"2026-03-01T10:00:00Z","content":[{"_type":"block","_key":"a","style":"normal","children":[{"_type":"span","text":"Body"}]}]}}`))
	}))
	t.Cleanup(srv.Close)

	client := newRemoteClient(t, srv, Config{APIVersion: "v2026-02-13", Token: "secret"})
	require.True(t, client.Remote())

	post, err := client.GetBlogPost(context.Background(), "hello")
	require.NoError(t, err)
	require.Equal(t, "Hello", post.Title)
	require.Equal(t, BlogNews, post.Type)
	require.Equal(t, "Body", post.Preview(richtext.GridExcerptLength))

	require.Equal(t, "/v2026-02-13/data/query/production", gotPath)
	require.Equal(t, BlogDetailQuery.GROQ, gotQuery)
	require.Equal(t, `"hello"`, gotSlug)
	require.Equal(t, "Bearer secret", gotAuth)
}

func TestRemoteNullResultIsNotFound(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"result":null}`))
	}))
	t.Cleanup(srv.Close)

	rec := &outcomeRecorder{}
	client := newRemoteClient(t, srv, Config{}, WithRecorder(rec))

	_, err := client.GetWorkProject(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
	require.Contains(t, rec.all(), "workProject:not_found")
}

func TestRemoteAPIError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"description":"expected '}' following object body","type":"queryParseError"}}`))
	}))
	t.Cleanup(srv.Close)

	client := newRemoteClient(t, srv, Config{})
	_, err := client.ListBlogPosts(context.Background())

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusBadRequest, apiErr.Status)
	require.Equal(t, "expected '}' following object body", apiErr.Description)
	require.False(t, errors.Is(err, ErrNotFound))
}

func TestErrorDescriptionShapes(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Unauthorized: Session not found", errorDescription([]byte(`{"error":"Unauthorized","message":"Session not found"}`)))
	require.Equal(t, "bad", errorDescription([]byte(`{"error":{"description":"bad"}}`)))
	require.Equal(t, "gateway timeout", errorDescription([]byte("gateway timeout\n")))
}

func TestResultsAreCachedForRevalidateWindow(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(`{"result":[]}`))
	}))
	t.Cleanup(srv.Close)

	var mu sync.Mutex
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}

	rec := &outcomeRecorder{}
	client := newRemoteClient(t, srv, Config{Revalidate: 30 * time.Second},
		WithCache(NewMemoryCache(clock)), WithRecorder(rec))
	ctx := context.Background()

	posts, err := client.ListBlogPosts(ctx)
	require.NoError(t, err)
	require.Empty(t, posts)
	_, err = client.ListBlogPosts(ctx)
	require.NoError(t, err)
	require.Equal(t, int32(1), hits.Load())
	require.Equal(t, []string{"blogPosts:miss", "blogPosts:hit"}, rec.all())

	mu.Lock()
	now = now.Add(31 * time.Second)
	mu.Unlock()

	_, err = client.ListBlogPosts(ctx)
	require.NoError(t, err)
	require.Equal(t, int32(2), hits.Load())
}

type countingCache struct {
	Cache
	gets chan struct{}
}

func (c *countingCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, ok, err := c.Cache.Get(ctx, key)
	c.gets <- struct{}{}
	return value, ok, err
}

func TestConcurrentLookupsShareOneFetch(t *testing.T) {
	t.Parallel()

	const callers = 8
	var hits atomic.Int32
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		<-release
		_, _ = w.Write([]byte(`{"result":[{"_id":"w1","title":"One","slug":{"current":"one"},"type":"saas"}]}`))
	}))
	t.Cleanup(srv.Close)

	cache := &countingCache{Cache: NewMemoryCache(nil), gets: make(chan struct{}, callers)}
	client := newRemoteClient(t, srv, Config{Revalidate: time.Minute}, WithCache(cache))

	var wg sync.WaitGroup
	results := make([][]WorkProject, callers)
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = client.ListWorkProjects(context.Background())
		}(i)
	}
	for i := 0; i < callers; i++ {
		<-cache.gets
	}
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	require.Equal(t, int32(1), hits.Load())
	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		require.Len(t, results[i], 1)
		require.Equal(t, "One", results[i][0].Title)
	}
}

type brokenCache struct{}

func (brokenCache) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("connection refused")
}

func (brokenCache) Set(context.Context, string, []byte, time.Duration) error {
	return errors.New("connection refused")
}

func TestCacheFailureFallsThroughToSource(t *testing.T) {
	t.Parallel()

	rec := &outcomeRecorder{}
	client := newLocalClient(t, WithCache(brokenCache{}), WithRecorder(rec))

	posts, err := client.ListBlogPosts(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, posts)
	require.Equal(t, []string{"blogPosts:cache_error", "blogPosts:miss"}, rec.all())
}

func TestCallerCancellationDoesNotAbortSharedFetch(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"result":[]}`))
	}))
	t.Cleanup(srv.Close)

	client := newRemoteClient(t, srv, Config{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.ListWorkProjects(ctx)
	require.NoError(t, err)
}

func TestNoSourceConfigured(t *testing.T) {
	t.Parallel()

	client := NewClient(Config{})
	_, err := client.ListBlogPosts(context.Background())
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrNotFound))
}

func TestNewClientHosts(t *testing.T) {
	t.Parallel()

	require.Equal(t, "https://abc.apicdn.sanity.io", NewClient(Config{ProjectID: "abc", UseCDN: true}).baseURL)
	require.Equal(t, "https://abc.api.sanity.io", NewClient(Config{ProjectID: "abc", UseCDN: true, Token: "t"}).baseURL)
	require.Equal(t, "https://abc.api.sanity.io", NewClient(Config{ProjectID: "abc"}).baseURL)
}

func TestCacheKey(t *testing.T) {
	t.Parallel()

	require.Equal(t, "blogPosts", BlogListQuery.CacheKey(nil))
	require.Equal(t, "blogPost|slug=hello", BlogDetailQuery.CacheKey(Params{"slug": "hello"}))
	require.Equal(t, "q|a=1|b=2", Query{Name: "q"}.CacheKey(Params{"b": "2", "a": "1"}))
}

func TestTypeLabels(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Case Study", BlogCaseStudy.Label())
	require.True(t, BlogCaseStudy.Valid())
	require.False(t, BlogType("behind-the-scenes").Valid())
	require.Equal(t, "Behind The Scenes", BlogType("behind-the-scenes").Label())
	require.Equal(t, "E-commerce", WorkEcommerce.Label())
	require.Equal(t, "SaaS Platform", WorkSaaS.Label())
	require.Equal(t, "", WorkType("").Label())
	require.Len(t, BlogTypes, 5)
	require.Len(t, WorkTypes, 5)
}

func TestLoadDatasetValidation(t *testing.T) {
	t.Parallel()

	_, err := LoadDataset([]byte("- _type: blogPost\n  title: Orphan\n"))
	require.ErrorContains(t, err, "missing _id")

	_, err = LoadDataset([]byte("- _id: x\n"))
	require.ErrorContains(t, err, "missing _type")

	ds, err := LoadDataset([]byte("- _id: a\n  _type: work\n  publishedAt: '2025-01-01T00:00:00Z'\n- _id: b\n  _type: work\n  publishedAt: '2026-01-01T00:00:00Z'\n"))
	require.NoError(t, err)
	require.Equal(t, 2, ds.Len())
	list := ds.list("work")
	require.Equal(t, "b", list[0]["_id"])
	require.Empty(t, ds.list("blogPost"))
	require.NotNil(t, ds.list("blogPost"))
}
