package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aabb-jequie/app-inscricao/internal/config"
	"github.com/aabb-jequie/app-inscricao/internal/logging"
	"github.com/aabb-jequie/app-inscricao/internal/models"
	"github.com/aabb-jequie/app-inscricao/internal/observability"
	"github.com/aabb-jequie/app-inscricao/internal/schemas"
	"github.com/aabb-jequie/app-inscricao/internal/utils"
	"github.com/aabb-jequie/app-inscricao/internal/wizard"
	"go.uber.org/zap"
)

const (
	wizardSessionPrefix = "wizard:session:"
	wizardLockSuffix    = ":lock"
)

// WizardSession is a stored wizard with its id.
type WizardSession struct {
	ID    string       `json:"id"`
	State wizard.State `json:"state"`
}

// WizardSessionService keeps wizard state in Redis so any replica can serve
// the next transition.
type WizardSessionService struct {
	store             KeyValueStore
	validator         *schemas.Validator
	submitter         wizard.Submitter
	ttl               time.Duration
	lockTTL           time.Duration
	includeDependents bool
	now               func() time.Time
	logger            *logging.SafeLogger
}

// NewWizardSessionService creates the service. lockTTL bounds how long a
// crashed confirm can block the session.
func NewWizardSessionService(store KeyValueStore, validator *schemas.Validator, submitter wizard.Submitter, ttl, lockTTL time.Duration, includeDependents bool, logger *logging.SafeLogger) *WizardSessionService {
	return &WizardSessionService{
		store:             store,
		validator:         validator,
		submitter:         submitter,
		ttl:               ttl,
		lockTTL:           lockTTL,
		includeDependents: includeDependents,
		now:               time.Now,
		logger:            logger,
	}
}

// SetClock replaces the wall clock used by step validation.
func (s *WizardSessionService) SetClock(now func() time.Time) {
	s.now = now
}

// Global wizard session service instance
var WizardSessionServiceInstance *WizardSessionService

func sessionKey(id string) string {
	return wizardSessionPrefix + id
}

// Create starts a new session on step 1.
func (s *WizardSessionService) Create(ctx context.Context) (*WizardSession, error) {
	session := &WizardSession{ID: utils.GenerateUUID(), State: wizard.NewState(s.includeDependents)}
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	s.logger.Debug("wizard session created", zap.String("session_id", session.ID))
	return session, nil
}

// Get loads a session.
func (s *WizardSessionService) Get(ctx context.Context, id string) (*WizardSession, error) {
	if !utils.IsUUID(id) {
		return nil, models.ErrSessionNotFound
	}
	raw, err := s.store.Get(ctx, sessionKey(id))
	if errors.Is(err, models.ErrCacheMiss) {
		return nil, models.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load wizard session: %w", err)
	}

	session := &WizardSession{ID: id}
	if err := json.Unmarshal([]byte(raw), &session.State); err != nil {
		return nil, fmt.Errorf("failed to decode wizard session: %w", err)
	}
	return session, nil
}

func (s *WizardSessionService) save(ctx context.Context, session *WizardSession) error {
	raw, err := json.Marshal(session.State)
	if err != nil {
		return fmt.Errorf("failed to encode wizard session: %w", err)
	}
	if err := s.store.Set(ctx, sessionKey(session.ID), string(raw), s.ttl); err != nil {
		return fmt.Errorf("failed to save wizard session: %w", err)
	}
	return nil
}

// lock takes the per-session lock that every write to the session goes
// through. A held lock means a confirm (or another write) is running and the
// caller gets models.ErrSubmissionInFlight.
func (s *WizardSessionService) lock(ctx context.Context, id string) (func(), error) {
	if !utils.IsUUID(id) {
		return nil, models.ErrSessionNotFound
	}

	lockKey := sessionKey(id) + wizardLockSuffix
	acquired, err := s.store.SetNX(ctx, lockKey, "1", s.lockTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire session lock: %w", err)
	}
	if !acquired {
		return nil, models.ErrSubmissionInFlight
	}
	return func() {
		if err := s.store.Del(context.WithoutCancel(ctx), lockKey); err != nil {
			s.logger.Warn("failed to release session lock", zap.String("session_id", id), zap.Error(err))
		}
	}, nil
}

// transition loads a session under its lock, runs fn on a controller
// restored from it and saves the outcome. A step error from fn is returned
// with the saved session.
func (s *WizardSessionService) transition(ctx context.Context, id string, fn func(*wizard.Controller) error) (*WizardSession, error) {
	release, err := s.lock(ctx, id)
	if err != nil {
		return nil, err
	}
	defer release()

	session, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	c := wizard.Restore(s.validator, session.State, wizard.WithClock(s.now))
	stepErr := fn(c)
	session.State = c.State()

	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	return session, stepErr
}

// UpdateData merges a camelCase JSON patch into the session's form data.
// Raw card or bank keys are rejected.
func (s *WizardSessionService) UpdateData(ctx context.Context, id string, patch []byte) (*WizardSession, error) {
	if err := schemas.CheckPaymentKeys(patch); err != nil {
		return nil, err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(patch, &fields); err != nil {
		return nil, fmt.Errorf("invalid form data: %w", err)
	}
	s.logger.Debug("applying wizard patch",
		zap.String("session_id", id),
		zap.Any("fields", observability.MaskSensitiveData(patchValues(fields))),
	)

	return s.transition(ctx, id, func(c *wizard.Controller) error {
		data := c.State().Data
		// A dependents array replaces the list instead of merging into it.
		if _, ok := fields["dependents"]; ok {
			data.Dependents = nil
		}
		if err := json.Unmarshal(patch, data); err != nil {
			return fmt.Errorf("invalid form data: %w", err)
		}
		maskPatchedFields(data, fields)
		return c.SetData(data)
	})
}

// maskPatchedFields applies the input masks to the fields present in the
// patch, the same way the form masks them as they are typed.
func maskPatchedFields(data *models.FormData, fields map[string]json.RawMessage) {
	if _, ok := fields["cpf"]; ok && data.CPF != "" {
		data.CPF = utils.FormatCPF(data.CPF)
	}
	if _, ok := fields["residentialCep"]; ok && data.ResidentialCEP != "" {
		data.ResidentialCEP = utils.FormatCEP(data.ResidentialCEP)
	}
	if _, ok := fields["commercialCep"]; ok && data.CommercialCEP != "" {
		data.CommercialCEP = utils.FormatCEP(data.CommercialCEP)
	}
}

func patchValues(fields map[string]json.RawMessage) map[string]interface{} {
	values := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		values[k] = string(v)
	}
	return values
}

// Next validates the current page and advances.
func (s *WizardSessionService) Next(ctx context.Context, id string) (*WizardSession, error) {
	return s.transition(ctx, id, (*wizard.Controller).Next)
}

// Back returns to the previous page.
func (s *WizardSessionService) Back(ctx context.Context, id string) (*WizardSession, error) {
	return s.transition(ctx, id, (*wizard.Controller).Back)
}

// SubmitIntent opens the terms prompt from the last page.
func (s *WizardSessionService) SubmitIntent(ctx context.Context, id string) (*WizardSession, error) {
	return s.transition(ctx, id, (*wizard.Controller).SubmitIntent)
}

// CancelTerms closes the terms prompt.
func (s *WizardSessionService) CancelTerms(ctx context.Context, id string) (*WizardSession, error) {
	return s.transition(ctx, id, (*wizard.Controller).CancelTerms)
}

// Confirm submits the session. The session lock is held for the whole
// submission, so a concurrent confirm or edit on any replica gets
// models.ErrSubmissionInFlight.
func (s *WizardSessionService) Confirm(ctx context.Context, id string, consent wizard.Consent) (*WizardSession, error) {
	return s.transition(ctx, id, func(c *wizard.Controller) error {
		submitter := wizard.SubmitterFunc(func(ctx context.Context, data *models.FormData) (string, error) {
			// Readers see the submission as pending while it runs.
			if err := s.save(ctx, &WizardSession{ID: id, State: c.State()}); err != nil {
				return "", err
			}
			return s.submitter.Submit(ctx, data)
		})
		_, err := c.ConfirmSubmit(ctx, consent, submitter)
		return err
	})
}

// InitWizardSessionService builds the global session service. It requires
// the application service to be initialised first.
func InitWizardSessionService(store KeyValueStore, logger *logging.SafeLogger) {
	cfg := config.AppConfig
	app := ApplicationServiceInstance
	submitter := wizard.SubmitterFunc(func(ctx context.Context, data *models.FormData) (string, error) {
		rec, err := app.Submit(ctx, data)
		if err != nil {
			return "", err
		}
		return rec.ID, nil
	})

	WizardSessionServiceInstance = NewWizardSessionService(
		store,
		schemas.NewValidator(nil, cfg.StrictCPFCheck),
		submitter,
		cfg.WizardSessionTTL,
		2*cfg.NotificationTimeout+time.Minute,
		cfg.WizardIncludeDependents,
		logger.Named("wizard_session"),
	)
	logger.Info("wizard session service initialized",
		zap.Duration("ttl", cfg.WizardSessionTTL),
		zap.Bool("include_dependents", cfg.WizardIncludeDependents))
}
