// Package service registers applicants for the training programme.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"museum/internal/platform/mailer"
	"museum/internal/training/metrics"
	"museum/internal/training/models"
	dErrors "museum/pkg/domain-errors"
	"museum/pkg/platform/sentinel"
	"museum/pkg/requestcontext"
)

const (
	minAge            = 16
	maxAge            = 100
	minGraduationYear = 1950
	// graduationYearSlack admits students who will graduate soon.
	graduationYearSlack = 5

	duplicateMessage = "A registration with this email already exists"
)

type Store interface {
	Create(ctx context.Context, reg *models.Registration) (*models.Registration, error)
	List(ctx context.Context) ([]*models.Registration, error)
	Get(ctx context.Context, id int64) (*models.Registration, error)
	FindByEmail(ctx context.Context, email string) (*models.Registration, error)
	Update(ctx context.Context, id int64, reg *models.Registration) (*models.Registration, error)
	Delete(ctx context.Context, id int64) (*models.Registration, error)
	Stats(ctx context.Context) (*models.Stats, error)
	TrackCounts(ctx context.Context) ([]models.TrackCount, error)
}

type Mailer interface {
	SendTrainingConfirmation(ctx context.Context, c mailer.TrainingConfirmation) error
}

type Service struct {
	store   Store
	mailer  Mailer
	logger  *slog.Logger
	metrics *metrics.Metrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func New(store Store, mailer Mailer, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, errors.New("training store is required")
	}
	if mailer == nil {
		return nil, errors.New("mailer is required")
	}
	s := &Service{store: store, mailer: mailer, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Register stores a new application and sends the confirmation email. The
// email is best-effort: a delivery failure is logged and the registration
// still succeeds.
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.Registration, error) {
	if err := checkDates(req, requestcontext.Now(ctx)); err != nil {
		return nil, err
	}
	if _, err := s.store.FindByEmail(ctx, req.Email); err == nil {
		return nil, dErrors.New(dErrors.CodeConflict, duplicateMessage)
	} else if !errors.Is(err, sentinel.ErrNotFound) {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to check existing registration")
	}

	reg, err := s.store.Create(ctx, req.Registration())
	if err != nil {
		return nil, writeError(err, "failed to create training registration")
	}
	if s.metrics != nil {
		s.metrics.IncrementRegistration(reg.TrainingMode)
	}
	s.logger.InfoContext(ctx, "training registration created",
		"registration_id", reg.ID,
		"training_track", reg.PreferredTrainingTrack,
		"request_id", requestcontext.RequestID(ctx),
	)
	s.sendConfirmation(ctx, reg)
	return reg, nil
}

func (s *Service) sendConfirmation(ctx context.Context, reg *models.Registration) {
	err := s.mailer.SendTrainingConfirmation(ctx, mailer.TrainingConfirmation{
		RegistrationID:   reg.ID,
		Name:             reg.FullName(),
		Email:            reg.Email,
		TrainingTrack:    reg.PreferredTrainingTrack,
		TrainingMode:     reg.TrainingMode,
		RegistrationDate: reg.CreatedAt,
	})
	result := "sent"
	if err != nil {
		result = "failed"
		s.logger.WarnContext(ctx, "training confirmation email not sent",
			"registration_id", reg.ID,
			"error", err,
		)
	}
	if s.metrics != nil {
		s.metrics.IncrementConfirmationEmail(result)
	}
}

// Check reports whether email already has a registration.
func (s *Service) Check(ctx context.Context, email string) (*models.Existing, error) {
	reg, err := s.store.FindByEmail(ctx, email)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "Failed to check user existence")
	}
	return &models.Existing{Name: reg.FullName(), Email: reg.Email, RegistrationDate: reg.CreatedAt}, nil
}

func (s *Service) Stats(ctx context.Context) (*models.Stats, []models.TrackCount, error) {
	st, err := s.store.Stats(ctx)
	if err != nil {
		return nil, nil, dErrors.Wrap(err, dErrors.CodeInternal, "Failed to fetch registration statistics")
	}
	tracks, err := s.store.TrackCounts(ctx)
	if err != nil {
		return nil, nil, dErrors.Wrap(err, dErrors.CodeInternal, "Failed to fetch registration statistics")
	}
	return st, tracks, nil
}

func (s *Service) List(ctx context.Context) ([]*models.Registration, error) {
	regs, err := s.store.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list training registrations")
	}
	return regs, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*models.Registration, error) {
	if id <= 0 {
		return nil, InvalidID()
	}
	reg, err := s.store.Get(ctx, id)
	return reg, lookupError(err, "failed to load training registration")
}

// Update replaces every field of the registration. Changing the email to
// one already registered is a conflict.
func (s *Service) Update(ctx context.Context, id int64, req *models.RegisterRequest) (*models.Registration, error) {
	if id <= 0 {
		return nil, InvalidID()
	}
	if err := checkDates(req, requestcontext.Now(ctx)); err != nil {
		return nil, err
	}
	reg, err := s.store.Update(ctx, id, req.Registration())
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, notFound()
		}
		return nil, writeError(err, "failed to update training registration")
	}
	return reg, nil
}

func (s *Service) Delete(ctx context.Context, id int64) (*models.Registration, error) {
	if id <= 0 {
		return nil, InvalidID()
	}
	reg, err := s.store.Delete(ctx, id)
	return reg, lookupError(err, "failed to delete training registration")
}

// checkDates applies the rules that depend on today's date.
func checkDates(req *models.RegisterRequest, now time.Time) error {
	if !req.DateOfBirth.IsZero() {
		if age := req.DateOfBirth.AgeOn(now); age < minAge || age > maxAge {
			return dErrors.New(dErrors.CodeValidation,
				fmt.Sprintf("Age must be between %d and %d years", minAge, maxAge))
		}
	}
	if req.GraduationYear != 0 {
		if req.GraduationYear < minGraduationYear || req.GraduationYear > now.Year()+graduationYearSlack {
			return dErrors.New(dErrors.CodeValidation, "Please provide a valid graduation year")
		}
	}
	return nil
}

// InvalidID is returned for ids that are missing, non-numeric or not positive.
func InvalidID() error {
	return dErrors.New(dErrors.CodeValidation, "Invalid or missing registration ID")
}

func notFound() error {
	return dErrors.New(dErrors.CodeNotFound, "Registration not found")
}

func lookupError(err error, msg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sentinel.ErrNotFound) {
		return notFound()
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, msg)
}

// writeError maps insert and update failures. The unique index on email
// backs up the pre-check when two submissions race.
func writeError(err error, msg string) error {
	switch {
	case errors.Is(err, sentinel.ErrConflict):
		return dErrors.New(dErrors.CodeConflict, duplicateMessage)
	case errors.Is(err, sentinel.ErrInvalidInput):
		return dErrors.New(dErrors.CodeValidation, "Invalid date format provided")
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, msg)
	}
}
