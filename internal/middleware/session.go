package middleware

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
)

const (
	defaultSessionCookie   = "sgwb_session"
	defaultSessionLifetime = 24 * time.Hour
)

// SessionData is the payload stored in the signed session cookie. It only
// identifies the visitor; no page state is kept here.
type SessionData struct {
	ID        string    `json:"id"`
	CSRFToken string    `json:"csrf"`
	CreatedAt time.Time `json:"createdAt"`
}

// SessionConfig controls cookie encoding.
type SessionConfig struct {
	CookieName string
	HashKey    []byte
	BlockKey   []byte
	Lifetime   time.Duration
	Secure     bool
	Now        func() time.Time
}

// SessionManager encodes sessions into signed, optionally encrypted cookies.
type SessionManager struct {
	cfg   SessionConfig
	codec *securecookie.SecureCookie
	now   func() time.Time
}

// NewSessionManager builds a manager. Without a hash key an ephemeral one is
// generated, so sessions do not survive a restart.
func NewSessionManager(cfg SessionConfig) (*SessionManager, error) {
	if cfg.CookieName == "" {
		cfg.CookieName = defaultSessionCookie
	}
	if cfg.Lifetime <= 0 {
		cfg.Lifetime = defaultSessionLifetime
	}
	if len(cfg.HashKey) == 0 {
		cfg.HashKey = securecookie.GenerateRandomKey(32)
		if cfg.HashKey == nil {
			return nil, fmt.Errorf("session: generate hash key")
		}
	}
	if len(cfg.BlockKey) == 0 {
		// Signed only; an empty non-nil key would fail every encode.
		cfg.BlockKey = nil
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	codec := securecookie.New(cfg.HashKey, cfg.BlockKey)
	codec.SetSerializer(securecookie.JSONEncoder{})
	codec.MaxAge(int(cfg.Lifetime.Seconds()))

	return &SessionManager{cfg: cfg, codec: codec, now: now}, nil
}

// Load decodes the session cookie. ok is false when the request carried no
// valid, unexpired session.
func (m *SessionManager) Load(r *http.Request) (*SessionData, bool) {
	c, err := r.Cookie(m.cfg.CookieName)
	if err != nil || c.Value == "" {
		return nil, false
	}
	var sd SessionData
	if err := m.codec.Decode(m.cfg.CookieName, c.Value, &sd); err != nil {
		return nil, false
	}
	if sd.ID == "" || !m.now().Before(sd.CreatedAt.Add(m.cfg.Lifetime)) {
		return nil, false
	}
	return &sd, true
}

// Save writes sd as the session cookie.
func (m *SessionManager) Save(w http.ResponseWriter, sd *SessionData) error {
	encoded, err := m.codec.Encode(m.cfg.CookieName, sd)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	expires := sd.CreatedAt.Add(m.cfg.Lifetime)
	http.SetCookie(w, &http.Cookie{
		Name:     m.cfg.CookieName,
		Value:    encoded,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.cfg.Secure,
		SameSite: http.SameSiteLaxMode,
		Expires:  expires.UTC(),
		MaxAge:   int(expires.Sub(m.now()).Round(time.Second).Seconds()),
	})
	return nil
}

// New returns a fresh session.
func (m *SessionManager) New() (*SessionData, error) {
	id, err := randomToken(16)
	if err != nil {
		return nil, err
	}
	csrf, err := randomToken(32)
	if err != nil {
		return nil, err
	}
	return &SessionData{ID: id, CSRFToken: csrf, CreatedAt: m.now().UTC()}, nil
}

// Middleware loads the session or starts one and stores it in the context.
func (m *SessionManager) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sd, ok := m.Load(r)
			if !ok {
				var err error
				sd, err = m.New()
				if err != nil {
					writeError(w, r, http.StatusInternalServerError, "session unavailable")
					return
				}
				// Set before the handler writes any body.
				if err := m.Save(w, sd); err != nil {
					writeError(w, r, http.StatusInternalServerError, "session unavailable")
					return
				}
			}
			next.ServeHTTP(w, r.WithContext(withSession(r.Context(), sd)))
		})
	}
}

func randomToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return "", fmt.Errorf("session: random token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
