package contact

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/softsell/site/backend/internal/model/contact"
)

const instrumentationName = "github.com/softsell/site/backend/internal/service/contact"

// ErrInvalidForm is returned by Submit when any field fails validation.
var ErrInvalidForm = errors.New("contact form is invalid")

// Service accepts contact form submissions.
type Service struct {
	store  contact.Store
	now    func() time.Time
	logger *zap.Logger

	tracer      trace.Tracer
	submissions metric.Int64Counter
}

// NewService wires the submission store. A nil logger discards logs.
func NewService(store contact.Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{
		store:  store,
		now:    time.Now,
		logger: logger,
		tracer: otel.Tracer(instrumentationName),
	}

	counter, err := otel.Meter(instrumentationName).Int64Counter(
		"softsell.contact.submissions",
		metric.WithDescription("Contact form submissions by outcome"),
	)
	if err != nil {
		logger.Warn("create submission counter", zap.Error(err))
	}
	s.submissions = counter
	return s
}

// Validate runs the field rules without storing anything.
func (s *Service) Validate(form contact.Form) contact.Errors {
	return contact.Validate(form)
}

// Submit validates form and, only when every field passes, stores a trimmed
// copy. Invalid forms return their field errors with ErrInvalidForm.
func (s *Service) Submit(ctx context.Context, form contact.Form) (contact.Submission, contact.Errors, error) {
	ctx, span := s.tracer.Start(ctx, "contact.Submit")
	defer span.End()

	errs := contact.Validate(form)
	if !errs.Valid() {
		s.record(ctx, "rejected")
		span.SetStatus(codes.Error, ErrInvalidForm.Error())
		return contact.Submission{}, errs, ErrInvalidForm
	}

	sub := contact.Submission{
		ID:        uuid.NewString(),
		Form:      form.Trimmed(),
		Status:    contact.StatusNew,
		CreatedAt: s.now().UTC(),
	}
	if err := s.store.Save(ctx, sub); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "store failed")
		return contact.Submission{}, errs, fmt.Errorf("save submission: %w", err)
	}

	s.record(ctx, "accepted")
	span.SetAttributes(attribute.String("submission.id", sub.ID))
	s.logger.Info("contact submission accepted",
		zap.String("id", sub.ID),
		zap.String("company", sub.Form.Company),
		zap.String("licenseType", sub.Form.LicenseType))
	return sub, errs, nil
}

// Get loads an accepted submission.
func (s *Service) Get(ctx context.Context, id string) (contact.Submission, error) {
	return s.store.Get(ctx, id)
}

// List returns all accepted submissions.
func (s *Service) List(ctx context.Context) ([]contact.Submission, error) {
	return s.store.List(ctx)
}

func (s *Service) record(ctx context.Context, outcome string) {
	if s.submissions != nil {
		s.submissions.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
	}
}
