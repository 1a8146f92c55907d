package contact

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
)

var (
	// ErrSubmissionInFlight is returned when the session already has a send
	// in progress.
	ErrSubmissionInFlight = errors.New("contact: submission already in flight")
	// ErrMissingFields is returned when a required field is empty.
	ErrMissingFields = errors.New("contact: required fields missing")
)

// Submission outcomes reported to the recorder.
const (
	OutcomeSuccess       = "success"
	OutcomeInvalid       = "invalid"
	OutcomeInFlight      = "in_flight"
	OutcomeNotConfigured = "not_configured"
	OutcomeRejected      = "rejected"
	OutcomeError         = "error"
)

// Recorder observes submission outcomes.
type Recorder interface {
	ContactSubmission(outcome string)
}

// Service runs the submit flow and allows one send per session at a time.
type Service struct {
	sender   Sender
	logger   *zap.Logger
	recorder Recorder

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// ServiceOption customises a Service.
type ServiceOption func(*Service)

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRecorder sets the outcome recorder.
func WithRecorder(r Recorder) ServiceOption {
	return func(s *Service) { s.recorder = r }
}

// NewService returns a Service delivering through sender.
func NewService(sender Sender, opts ...ServiceOption) *Service {
	s := &Service{
		sender:   sender,
		logger:   zap.NewNop(),
		inFlight: map[string]struct{}{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submitting reports whether session has a send in progress.
func (s *Service) Submitting(session string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.inFlight[session]
	return ok
}

// Submit validates and delivers fields. The returned Form is always ready to
// render: fields are cleared on success and kept otherwise. The error
// classifies a failure.
func (s *Service) Submit(ctx context.Context, session string, fields Fields) (Form, error) {
	if missing := fields.Missing(); len(missing) > 0 {
		s.record(OutcomeInvalid)
		return errorForm(fields, GenericErrorMessage), fmt.Errorf("%w: %s", ErrMissingFields, strings.Join(missing, ", "))
	}
	if !s.acquire(session) {
		s.record(OutcomeInFlight)
		return Form{Fields: fields, Banner: &Banner{Kind: BannerNotice, Message: InFlightMessage}}, ErrSubmissionInFlight
	}
	defer s.release(session)

	err := s.send(ctx, fields)
	switch {
	case err == nil:
		s.record(OutcomeSuccess)
		s.logger.Info("contact: submission delivered")
		return Form{Banner: &Banner{Kind: BannerSuccess, Message: SuccessMessage}}, nil
	case errors.Is(err, ErrNotConfigured):
		s.record(OutcomeNotConfigured)
		s.logger.Warn("contact: email delivery not configured")
		return errorForm(fields, NotConfiguredMessage), err
	}

	var delivery *DeliveryError
	if errors.As(err, &delivery) {
		s.record(OutcomeRejected)
		s.logger.Warn("contact: provider rejected submission",
			zap.Int("status", delivery.Status),
			zap.String("detail", delivery.Detail),
		)
		message := GenericErrorMessage
		if delivery.Detail != "" {
			message = delivery.Detail
		}
		return errorForm(fields, message), err
	}

	s.record(OutcomeError)
	s.logger.Error("contact: submission failed", zap.Error(err))
	return errorForm(fields, GenericErrorMessage), err
}

func (s *Service) send(ctx context.Context, fields Fields) error {
	if s.sender == nil {
		return ErrNotConfigured
	}
	return s.sender.Send(ctx, fields)
}

func (s *Service) acquire(session string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[session]; busy {
		return false
	}
	s.inFlight[session] = struct{}{}
	return true
}

func (s *Service) release(session string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, session)
}

func (s *Service) record(outcome string) {
	if s.recorder != nil {
		s.recorder.ContactSubmission(outcome)
	}
}

func errorForm(fields Fields, message string) Form {
	return Form{Fields: fields, Banner: &Banner{Kind: BannerError, Message: message}}
}
