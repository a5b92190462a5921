package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aabb-jequie/app-inscricao/internal/config"
	"github.com/aabb-jequie/app-inscricao/internal/logging"
	"github.com/aabb-jequie/app-inscricao/internal/models"
	"github.com/aabb-jequie/app-inscricao/internal/observability"
	"github.com/aabb-jequie/app-inscricao/internal/receipt"
	"github.com/aabb-jequie/app-inscricao/internal/schemas"
	"github.com/aabb-jequie/app-inscricao/internal/utils"
	"go.uber.org/zap"
)

// ApplicationService runs the submission pipeline and the admin operations.
type ApplicationService struct {
	store     ApplicationStore
	validator *schemas.Validator
	receipts  *receipt.Generator
	notifier  *NotificationService
	now       func() time.Time
	logger    *logging.SafeLogger
}

// NewApplicationService wires the pipeline. notifier may be nil, in which
// case submissions are stored without sending email.
func NewApplicationService(store ApplicationStore, validator *schemas.Validator, receipts *receipt.Generator, notifier *NotificationService, logger *logging.SafeLogger) *ApplicationService {
	return &ApplicationService{
		store:     store,
		validator: validator,
		receipts:  receipts,
		notifier:  notifier,
		now:       time.Now,
		logger:    logger,
	}
}

// SetClock replaces the wall clock.
func (s *ApplicationService) SetClock(now func() time.Time) {
	s.now = now
}

// Global application service instance
var ApplicationServiceInstance *ApplicationService

// Submit re-validates the payload, stores it, renders the receipt and
// notifies the applicant and staff. It returns a *schemas.ValidationError
// listing every violation or an error wrapping models.ErrPersistence.
func (s *ApplicationService) Submit(ctx context.Context, data *models.FormData) (*models.ApplicationRecord, error) {
	ctx, span := utils.TraceBusinessLogic(ctx, "submit_application")
	defer span.End()

	// Normalize a copy so the caller's data is untouched
	f := data.Clone()
	s.validator.Normalize(f)
	now := s.now()

	// Validate the full application with tracing
	_, validationSpan := utils.TraceInputValidation(ctx, "application_schema", "payload")
	result := s.validator.Application(f, now)
	validationSpan.End()
	if !result.Valid() {
		observability.ApplicationsSubmitted.WithLabelValues("invalid").Inc()
		for _, v := range result.Violations {
			observability.ValidationFailures.WithLabelValues("application", metricField(v.Field)).Inc()
		}
		s.logger.Info("application rejected",
			zap.String("cpf", observability.MaskCPF(f.CPF)),
			zap.Strings("violations", result.Details()))
		return nil, result.Err()
	}

	// Insert into database
	rec := f.ToRecord(utils.GenerateUUID(), now.UTC())
	if err := s.store.Insert(ctx, rec); err != nil {
		observability.ApplicationsSubmitted.WithLabelValues("error").Inc()
		utils.RecordErrorInSpan(span, err, map[string]interface{}{"application_id": rec.ID})
		if !errors.Is(err, models.ErrPersistence) {
			err = fmt.Errorf("%w: %v", models.ErrPersistence, err)
		}
		return nil, err
	}
	// Update metrics
	observability.ApplicationsSubmitted.WithLabelValues("success").Inc()
	utils.AddSpanAttribute(span, "application_id", rec.ID)
	s.logger.Info("application stored",
		zap.String("application_id", rec.ID),
		zap.String("cpf", observability.MaskCPF(rec.CPF)),
		zap.Int("dependents", len(rec.Dependents)))

	// Email failures are logged by the notifier and never fail the insert
	if s.notifier != nil {
		s.notifier.NotifySubmission(ctx, rec, s.attachment(rec, now))
	}
	return rec, nil
}

// attachment renders the PDF sent with the notifications. A rendering
// failure leaves the emails without attachment.
func (s *ApplicationService) attachment(rec *models.ApplicationRecord, now time.Time) *models.EmailAttachment {
	pdf, err := s.render(rec, now, receipt.FormatPDF, receipt.LayoutDouble)
	if err != nil {
		s.logger.Error("failed to render receipt for notification",
			zap.String("application_id", rec.ID), zap.Error(err))
		return nil
	}
	return &models.EmailAttachment{Filename: receipt.Filename(rec, receipt.FormatPDF), Content: pdf}
}

func (s *ApplicationService) render(rec *models.ApplicationRecord, now time.Time, format receipt.Format, layout receipt.Layout) ([]byte, error) {
	out, err := s.receipts.Render(rec, now, format, layout)
	status := "success"
	if err != nil {
		status = "error"
	}
	observability.ReceiptsGenerated.WithLabelValues(string(format), status).Inc()
	return out, err
}

// ValidateStep normalises a copy of data and runs a single step schema.
func (s *ApplicationService) ValidateStep(ctx context.Context, step schemas.Step, data *models.FormData) *schemas.Result {
	_, span := utils.TraceInputValidation(ctx, "step_schema", string(step))
	defer span.End()

	f := data.Clone()
	s.validator.Normalize(f)
	result := s.validator.Step(step, f, s.now())
	for _, v := range result.Violations {
		observability.ValidationFailures.WithLabelValues(string(step), metricField(v.Field)).Inc()
	}
	return result
}

// Get returns one application.
func (s *ApplicationService) Get(ctx context.Context, id string) (*models.ApplicationRecord, error) {
	return s.store.Get(ctx, id)
}

// List returns the applications inside the filter range, newest first.
func (s *ApplicationService) List(ctx context.Context, filter models.ListFilter) ([]models.ApplicationRecord, error) {
	return s.store.List(ctx, filter)
}

// Update applies an administrative edit. The edited record must still pass
// the full schema.
func (s *ApplicationService) Update(ctx context.Context, id string, upd *models.ApplicationUpdate) (*models.ApplicationRecord, error) {
	if upd == nil || upd.IsEmpty() {
		return nil, models.ErrEmptyUpdate
	}

	// Get current data for the edit
	rec, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	// Apply the edit and normalize it the same way a submission is
	upd.Apply(rec)
	s.validator.NormalizeRecord(rec)
	now := s.now()

	// The edited record must still pass the full schema
	if result := s.validator.Record(rec, now); !result.Valid() {
		for _, v := range result.Violations {
			observability.ValidationFailures.WithLabelValues("admin_edit", metricField(v.Field)).Inc()
		}
		return nil, result.Err()
	}

	// Update database
	updatedAt := now.UTC()
	rec.UpdatedAt = &updatedAt
	if err := s.store.Update(ctx, rec); err != nil {
		return nil, err
	}
	s.logger.Info("application updated", zap.String("application_id", id))
	return rec, nil
}

// Delete removes an application.
func (s *ApplicationService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("application deleted", zap.String("application_id", id))
	return nil
}

// Receipt reprints the receipt of a stored application.
func (s *ApplicationService) Receipt(ctx context.Context, id string, format receipt.Format, layout receipt.Layout) ([]byte, string, error) {
	ctx, span, end := utils.TraceOperation(ctx, "render_receipt", map[string]interface{}{
		"application.id": id,
		"receipt.format": string(format),
		"receipt.layout": string(layout),
	})
	defer end()

	// Get the stored record
	rec, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, "", err
	}
	out, err := s.render(rec, s.now(), format, layout)
	if err != nil {
		utils.RecordErrorInSpan(span, err, map[string]interface{}{"application.id": id})
		return nil, "", err
	}
	utils.AddSpanAttribute(span, "receipt.bytes", len(out))
	return out, receipt.Filename(rec, format), nil
}

// metricField drops list indexes so label cardinality stays bounded.
func metricField(field string) string {
	var b strings.Builder
	skip := false
	for _, r := range field {
		switch {
		case r == '[':
			skip = true
		case r == ']':
			skip = false
		case !skip:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// InitApplicationService builds the global application service from the
// loaded configuration.
func InitApplicationService(store ApplicationStore, mailer Mailer, logger *logging.SafeLogger) {
	cfg := config.AppConfig
	validator := schemas.NewValidator(nil, cfg.StrictCPFCheck)
	receipts := receipt.NewGenerator(nil, cfg.ClubName, cfg.Location)
	notifier := NewNotificationService(mailer, cfg.StaffEmails, cfg.ClubName, cfg.NotificationTimeout, cfg.Location, logger.Named("notification"))

	ApplicationServiceInstance = NewApplicationService(store, validator, receipts, notifier, logger.Named("application_service"))
	logger.Info("application service initialized",
		zap.Int("staff_recipients", len(cfg.StaffEmails)),
		zap.Bool("strict_cpf_check", cfg.StrictCPFCheck))
}
