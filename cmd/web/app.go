package main

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"sgwebsitebuilder.com/web/internal/cms"
	"sgwebsitebuilder.com/web/internal/config"
	"sgwebsitebuilder.com/web/internal/contact"
	"sgwebsitebuilder.com/web/internal/handlers"
	"sgwebsitebuilder.com/web/internal/imageurl"
	mw "sgwebsitebuilder.com/web/internal/middleware"
	"sgwebsitebuilder.com/web/internal/observability"
	"sgwebsitebuilder.com/web/internal/richtext"
)

// contentSource is the part of *cms.Client the pages read from.
type contentSource interface {
	ListBlogPosts(ctx context.Context) ([]cms.BlogPost, error)
	GetBlogPost(ctx context.Context, slug string) (cms.BlogPost, error)
	ListWorkProjects(ctx context.Context) ([]cms.WorkProject, error)
	GetWorkProject(ctx context.Context, slug string) (cms.WorkProject, error)
}

// app holds the collaborators shared by every handler.
type app struct {
	cfg      config.Config
	logger   *zap.Logger
	site     handlers.Site
	content  contentSource
	contact  *contact.Service
	sessions *mw.SessionManager
	metrics  *observability.Metrics
	media    handlers.Media
	render   *renderer
	now      func() time.Time
}

// appOption overrides a collaborator, mostly for tests.
type appOption func(*app)

func withContent(c contentSource) appOption {
	return func(a *app) { a.content = c }
}

func withSender(s contact.Sender) appOption {
	return func(a *app) {
		a.contact = contact.NewService(s,
			contact.WithLogger(a.logger.Named("contact")),
			contact.WithRecorder(a.metrics),
		)
	}
}

func withClock(now func() time.Time) appOption {
	return func(a *app) { a.now = now }
}

// newApp wires the service from cfg. The returned cleanup releases external
// connections and is safe to call when newApp fails.
func newApp(ctx context.Context, cfg config.Config, logger *zap.Logger, opts ...appOption) (*app, func(), error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	a := &app{
		cfg:     cfg,
		logger:  logger,
		site:    handlers.DefaultSite(cfg.Site.Name, cfg.Site.URL),
		metrics: observability.NewMetrics(prometheus.NewRegistry()),
		now:     time.Now,
	}

	images := imageurl.NewBuilder(cfg.Content.ProjectID, cfg.Content.Dataset)
	a.media = handlers.Media{Images: images, Rich: richtext.NewRenderer(images)}

	client, closeContent, err := newContentClient(ctx, cfg, logger.Named("cms"), a.metrics)
	if err != nil {
		return nil, cleanup, err
	}
	closers = append(closers, closeContent)
	a.content = client

	var sender contact.Sender
	if cfg.Email.Configured() {
		sender = contact.NewEmailJS(contact.EmailJSConfig{
			ServiceID:  cfg.Email.ServiceID,
			TemplateID: cfg.Email.TemplateID,
			PublicKey:  cfg.Email.PublicKey,
			PrivateKey: cfg.Email.PrivateKey,
			Endpoint:   cfg.Email.Endpoint,
			Timeout:    cfg.Email.Timeout,
		}, nil)
	} else {
		logger.Warn("email delivery not configured; contact submissions will show the not-configured banner")
	}
	withSender(sender)(a)

	a.sessions, err = mw.NewSessionManager(mw.SessionConfig{
		CookieName: cfg.Session.CookieName,
		HashKey:    cfg.Session.HashKey,
		BlockKey:   cfg.Session.BlockKey,
		Lifetime:   cfg.Session.Lifetime,
		Secure:     cfg.Session.Secure,
	})
	if err != nil {
		return nil, cleanup, err
	}

	a.render, err = newRenderer(cfg.Server.DevMode, cfg.Server.TemplatesDir)
	if err != nil {
		return nil, cleanup, fmt.Errorf("templates: %w", err)
	}

	for _, opt := range opts {
		opt(a)
	}
	return a, cleanup, nil
}

func newContentClient(ctx context.Context, cfg config.Config, logger *zap.Logger, rec cms.Recorder) (*cms.Client, func(), error) {
	opts := []cms.Option{cms.WithLogger(logger), cms.WithRecorder(rec)}
	closeFn := func() {}

	if !cfg.Content.Remote() {
		ds, err := cms.DefaultDataset()
		if err != nil {
			return nil, closeFn, fmt.Errorf("load fallback content: %w", err)
		}
		logger.Info("no content project configured; serving the bundled dataset", zap.Int("documents", ds.Len()))
		opts = append(opts, cms.WithDataset(ds))
	}
	if cfg.Cache.RedisURL != "" {
		rc, err := cms.NewRedisClient(ctx, cfg.Cache.RedisURL)
		if err != nil {
			return nil, closeFn, err
		}
		closeFn = func() { _ = rc.Close() }
		opts = append(opts, cms.WithCache(cms.NewRedisCache(rc, cfg.Cache.KeyPrefix)))
	}

	client := cms.NewClient(cms.Config{
		ProjectID:  cfg.Content.ProjectID,
		Dataset:    cfg.Content.Dataset,
		APIVersion: cfg.Content.APIVersion,
		UseCDN:     cfg.Content.UseCDN,
		Token:      cfg.Content.Token,
		Revalidate: cfg.Content.Revalidate,
		Timeout:    cfg.Content.Timeout,
	}, opts...)
	return client, closeFn, nil
}
