package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultEnvFile          = ".env"
	defaultPort             = "8080"
	defaultEnvironment      = "local"
	defaultTemplatesDir     = "templates"
	defaultReadTimeout      = 15 * time.Second
	defaultWriteTimeout     = 15 * time.Second
	defaultIdleTimeout      = 60 * time.Second
	defaultRequestTimeout   = 30 * time.Second
	defaultShutdownTimeout  = 10 * time.Second
	defaultSiteURL          = "http://localhost:8080"
	defaultSiteName         = "SGWebsiteBuilder"
	defaultSanityDataset    = "production"
	defaultSanityAPIVersion = "2026-02-13"
	defaultRevalidate       = 30 * time.Second
	defaultContentTimeout   = 5 * time.Second
	defaultCacheKeyPrefix   = "sgwb:content:"
	defaultEmailEndpoint    = "https://api.emailjs.com/api/v1.0/email/send"
	defaultEmailTimeout     = 10 * time.Second
	defaultSessionCookie    = "sgwb_session"
	defaultSessionLifetime  = 24 * time.Hour
)

// Config captures all runtime configuration organised by concern.
type Config struct {
	Server  ServerConfig
	Site    SiteConfig
	Content ContentConfig
	Cache   CacheConfig
	Email   EmailConfig
	Session SessionConfig
}

// ServerConfig configures HTTP server parameters.
type ServerConfig struct {
	Port            string
	Environment     string
	DevMode         bool
	TemplatesDir    string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

// SiteConfig holds values surfaced to page metadata.
type SiteConfig struct {
	URL  string
	Name string
}

// ContentConfig points at the hosted content dataset.
type ContentConfig struct {
	ProjectID  string
	Dataset    string
	APIVersion string
	UseCDN     bool
	Token      string
	Revalidate time.Duration
	Timeout    time.Duration
}

// CacheConfig selects the revalidation cache backend. An empty RedisURL keeps
// results in process memory.
type CacheConfig struct {
	RedisURL  string
	KeyPrefix string
}

// EmailConfig carries the transactional email credentials used by the contact form.
type EmailConfig struct {
	ServiceID  string
	TemplateID string
	PublicKey  string
	PrivateKey string
	Endpoint   string
	Timeout    time.Duration
}

// SessionConfig controls the signed session cookie.
type SessionConfig struct {
	CookieName string
	HashKey    []byte
	BlockKey   []byte
	Lifetime   time.Duration
	Secure     bool
}

// Production reports whether the service runs with production hardening.
func (c Config) Production() bool {
	switch c.Server.Environment {
	case "prod", "production":
		return true
	default:
		return false
	}
}

// Configured reports whether all values required to send email are present.
func (e EmailConfig) Configured() bool {
	return strings.TrimSpace(e.ServiceID) != "" &&
		strings.TrimSpace(e.TemplateID) != "" &&
		strings.TrimSpace(e.PublicKey) != ""
}

// Remote reports whether content should be fetched from the hosted API.
func (c ContentConfig) Remote() bool {
	return strings.TrimSpace(c.ProjectID) != ""
}

// ValidationError is returned when required configuration fields are missing or invalid.
type ValidationError struct {
	fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: missing or invalid fields [%s]", strings.Join(e.fields, ", "))
}

// Fields returns a copy of the missing/invalid field list.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

// Option customises Load.
type Option func(*loaderOptions)

type loaderOptions struct {
	envFile      string
	envMap       map[string]string
	useSystemEnv bool
}

// WithEnvFile overrides the .env file path used for local overrides. An empty
// path disables .env loading.
func WithEnvFile(path string) Option {
	return func(o *loaderOptions) {
		o.envFile = path
	}
}

// WithEnvMap injects an explicit key/value map for environment lookups. Values in the map
// take precedence over system environment variables.
func WithEnvMap(values map[string]string) Option {
	return func(o *loaderOptions) {
		o.envMap = values
	}
}

// WithoutSystemEnv disables reading from os.LookupEnv, relying only on provided maps and .env files.
func WithoutSystemEnv() Option {
	return func(o *loaderOptions) {
		o.useSystemEnv = false
	}
}

// Load assembles the configuration from defaults, .env overrides, environment
// variables and explicit maps, in increasing order of precedence.
func Load(opts ...Option) (Config, error) {
	options := loaderOptions{
		envFile:      defaultEnvFile,
		useSystemEnv: true,
	}
	for _, opt := range opts {
		opt(&options)
	}

	dotEnvValues, err := loadDotEnv(options.envFile)
	if err != nil {
		return Config{}, err
	}

	lookup := func(key string) (string, bool) {
		if options.envMap != nil {
			if value, ok := options.envMap[key]; ok {
				return value, true
			}
		}
		if options.useSystemEnv {
			if value, ok := os.LookupEnv(key); ok {
				return value, true
			}
		}
		if dotEnvValues != nil {
			if value, ok := dotEnvValues[key]; ok {
				return value, true
			}
		}
		return "", false
	}

	port := stringWithDefault(lookup, "SGWB_PORT", "")
	if port == "" {
		// Cloud Run style platforms inject PORT.
		port = stringWithDefault(lookup, "PORT", defaultPort)
	}

	cfg := Config{
		Server: ServerConfig{
			Port:            port,
			Environment:     strings.ToLower(stringWithDefault(lookup, "SGWB_ENV", defaultEnvironment)),
			DevMode:         boolWithDefault(lookup, "SGWB_DEV", false),
			TemplatesDir:    stringWithDefault(lookup, "SGWB_TEMPLATES_DIR", defaultTemplatesDir),
			ReadTimeout:     durationWithDefault(lookup, "SGWB_SERVER_READ_TIMEOUT", defaultReadTimeout),
			WriteTimeout:    durationWithDefault(lookup, "SGWB_SERVER_WRITE_TIMEOUT", defaultWriteTimeout),
			IdleTimeout:     durationWithDefault(lookup, "SGWB_SERVER_IDLE_TIMEOUT", defaultIdleTimeout),
			RequestTimeout:  durationWithDefault(lookup, "SGWB_SERVER_REQUEST_TIMEOUT", defaultRequestTimeout),
			ShutdownTimeout: durationWithDefault(lookup, "SGWB_SERVER_SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		},
		Site: SiteConfig{
			URL:  strings.TrimRight(stringWithDefault(lookup, "SGWB_SITE_URL", defaultSiteURL), "/"),
			Name: stringWithDefault(lookup, "SGWB_SITE_NAME", defaultSiteName),
		},
		Content: ContentConfig{
			ProjectID:  strings.TrimSpace(stringWithDefault(lookup, "SGWB_SANITY_PROJECT_ID", "")),
			Dataset:    stringWithDefault(lookup, "SGWB_SANITY_DATASET", defaultSanityDataset),
			APIVersion: strings.TrimPrefix(stringWithDefault(lookup, "SGWB_SANITY_API_VERSION", defaultSanityAPIVersion), "v"),
			UseCDN:     boolWithDefault(lookup, "SGWB_SANITY_USE_CDN", true),
			Token:      stringWithDefault(lookup, "SGWB_SANITY_TOKEN", ""),
			Revalidate: durationWithDefault(lookup, "SGWB_CONTENT_REVALIDATE", defaultRevalidate),
			Timeout:    durationWithDefault(lookup, "SGWB_CONTENT_TIMEOUT", defaultContentTimeout),
		},
		Cache: CacheConfig{
			RedisURL:  stringWithDefault(lookup, "SGWB_REDIS_URL", ""),
			KeyPrefix: stringWithDefault(lookup, "SGWB_CACHE_KEY_PREFIX", defaultCacheKeyPrefix),
		},
		Email: EmailConfig{
			ServiceID:  stringWithDefault(lookup, "SGWB_EMAILJS_SERVICE_ID", ""),
			TemplateID: stringWithDefault(lookup, "SGWB_EMAILJS_TEMPLATE_ID", ""),
			PublicKey:  stringWithDefault(lookup, "SGWB_EMAILJS_PUBLIC_KEY", ""),
			PrivateKey: stringWithDefault(lookup, "SGWB_EMAILJS_PRIVATE_KEY", ""),
			Endpoint:   stringWithDefault(lookup, "SGWB_EMAILJS_ENDPOINT", defaultEmailEndpoint),
			Timeout:    durationWithDefault(lookup, "SGWB_EMAILJS_TIMEOUT", defaultEmailTimeout),
		},
		Session: SessionConfig{
			CookieName: stringWithDefault(lookup, "SGWB_SESSION_COOKIE", defaultSessionCookie),
			HashKey:    keyBytes(lookup, "SGWB_SESSION_HASH_KEY"),
			BlockKey:   keyBytes(lookup, "SGWB_SESSION_BLOCK_KEY"),
			Lifetime:   durationWithDefault(lookup, "SGWB_SESSION_LIFETIME", defaultSessionLifetime),
		},
	}
	cfg.Session.Secure = boolWithDefault(lookup, "SGWB_SESSION_SECURE", cfg.Production())

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validateConfig(cfg Config) error {
	var missing []string

	if _, err := strconv.Atoi(cfg.Server.Port); err != nil {
		missing = append(missing, "Server.Port")
	}
	if cfg.Server.DevMode && strings.TrimSpace(cfg.Server.TemplatesDir) == "" {
		missing = append(missing, "Server.TemplatesDir")
	}
	if u, err := url.Parse(cfg.Site.URL); err != nil || u.Scheme == "" || u.Host == "" {
		missing = append(missing, "Site.URL")
	}
	if cfg.Content.Remote() {
		if strings.TrimSpace(cfg.Content.Dataset) == "" {
			missing = append(missing, "Content.Dataset")
		}
		if _, err := time.Parse("2006-01-02", cfg.Content.APIVersion); err != nil {
			missing = append(missing, "Content.APIVersion")
		}
	}
	if cfg.Content.Revalidate < 0 {
		missing = append(missing, "Content.Revalidate")
	}
	if cfg.Content.Timeout <= 0 {
		missing = append(missing, "Content.Timeout")
	}
	if cfg.Cache.RedisURL != "" {
		if u, err := url.Parse(cfg.Cache.RedisURL); err != nil || (u.Scheme != "redis" && u.Scheme != "rediss") {
			missing = append(missing, "Cache.RedisURL")
		}
	}
	if u, err := url.Parse(cfg.Email.Endpoint); err != nil || u.Scheme == "" || u.Host == "" {
		missing = append(missing, "Email.Endpoint")
	}
	if cfg.Production() {
		if l := len(cfg.Session.HashKey); l < 32 {
			missing = append(missing, "Session.HashKey")
		}
		switch len(cfg.Session.BlockKey) {
		case 0, 16, 24, 32:
		default:
			missing = append(missing, "Session.BlockKey")
		}
	}

	if len(missing) > 0 {
		return &ValidationError{fields: missing}
	}
	return nil
}

func loadDotEnv(path string) (map[string]string, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return values, nil
}

func stringWithDefault(lookup func(string) (string, bool), key, fallback string) string {
	if value, ok := lookup(key); ok && value != "" {
		return value
	}
	return fallback
}

// keyBytes returns nil for an unset key. securecookie treats any non-nil block
// key as an AES key.
func keyBytes(lookup func(string) (string, bool), key string) []byte {
	if value := stringWithDefault(lookup, key, ""); value != "" {
		return []byte(value)
	}
	return nil
}

func durationWithDefault(lookup func(string) (string, bool), key string, fallback time.Duration) time.Duration {
	if value, ok := lookup(key); ok && value != "" {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}

func boolWithDefault(lookup func(string) (string, bool), key string, fallback bool) bool {
	if value, ok := lookup(key); ok && value != "" {
		switch strings.ToLower(value) {
		case "true", "1", "yes", "on":
			return true
		case "false", "0", "no", "off":
			return false
		}
	}
	return fallback
}
