package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultEndpoint is the EmailJS send API.
const DefaultEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

const (
	defaultSendTimeout = 10 * time.Second
	maxResponseBytes   = 4 << 10
	successBody        = "OK"
)

// ErrNotConfigured is returned when delivery credentials are missing.
var ErrNotConfigured = errors.New("contact: email delivery not configured")

// DeliveryError is a rejection from the email provider.
type DeliveryError struct {
	Status int
	Detail string
}

// Error implements the error interface.
func (e *DeliveryError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("contact: delivery failed with status %d", e.Status)
	}
	return fmt.Sprintf("contact: delivery failed with status %d: %s", e.Status, e.Detail)
}

// Sender delivers one contact submission.
type Sender interface {
	Send(ctx context.Context, fields Fields) error
}

// HTTPClient is the subset of *http.Client used by EmailJS.
type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

// EmailJSConfig holds the provider credentials.
type EmailJSConfig struct {
	ServiceID  string
	TemplateID string
	PublicKey  string
	PrivateKey string
	Endpoint   string
	Timeout    time.Duration
}

// Configured reports whether the three required values are present.
func (c EmailJSConfig) Configured() bool {
	return strings.TrimSpace(c.ServiceID) != "" &&
		strings.TrimSpace(c.TemplateID) != "" &&
		strings.TrimSpace(c.PublicKey) != ""
}

// EmailJS sends submissions through the EmailJS REST API.
type EmailJS struct {
	cfg  EmailJSConfig
	http HTTPClient
}

// NewEmailJS constructs a sender. A nil client uses an *http.Client with the
// configured timeout.
func NewEmailJS(cfg EmailJSConfig, client HTTPClient) *EmailJS {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultSendTimeout
	}
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	return &EmailJS{cfg: cfg, http: client}
}

type sendRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	AccessToken    string            `json:"accessToken,omitempty"`
	TemplateParams map[string]string `json:"template_params"`
}

// Send implements Sender.
func (e *EmailJS) Send(ctx context.Context, fields Fields) error {
	if !e.cfg.Configured() {
		return ErrNotConfigured
	}
	body, err := json.Marshal(sendRequest{
		ServiceID:      e.cfg.ServiceID,
		TemplateID:     e.cfg.TemplateID,
		UserID:         e.cfg.PublicKey,
		AccessToken:    e.cfg.PrivateKey,
		TemplateParams: fields.TemplateParams(),
	})
	if err != nil {
		return fmt.Errorf("contact: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("contact: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.http.Do(req)
	if err != nil {
		return fmt.Errorf("contact: send: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	text := strings.TrimSpace(string(raw))
	if resp.StatusCode == http.StatusOK && text == successBody {
		return nil
	}
	return &DeliveryError{Status: resp.StatusCode, Detail: text}
}
