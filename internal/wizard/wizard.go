// Package wizard drives the multi-step application form. Each step is gated
// on its schema and the final confirmation hands the aggregate data to a
// Submitter.
package wizard

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/aabb-jequie/app-inscricao/internal/models"
	"github.com/aabb-jequie/app-inscricao/internal/schemas"
)

var (
	ErrSubmitted          = errors.New("wizard already submitted")
	ErrLastStep           = errors.New("already on the last step")
	ErrNotLastStep        = errors.New("submission is only available from the last step")
	ErrTermsClosed        = errors.New("terms prompt is not open")
	ErrSubmissionInFlight = models.ErrSubmissionInFlight
)

// Submitter persists a confirmed application and returns its id.
type Submitter interface {
	Submit(ctx context.Context, data *models.FormData) (string, error)
}

// SubmitterFunc adapts a function to the Submitter interface.
type SubmitterFunc func(ctx context.Context, data *models.FormData) (string, error)

func (fn SubmitterFunc) Submit(ctx context.Context, data *models.FormData) (string, error) {
	return fn(ctx, data)
}

// Consent is the pair of checkboxes shown in the terms prompt.
type Consent struct {
	AcceptStatute    bool `json:"acceptStatute"`
	AcceptImageUsage bool `json:"acceptImageUsage"`
}

// State is the serialisable wizard snapshot.
type State struct {
	Current           int                `json:"current"`
	Total             int                `json:"total"`
	IncludeDependents bool               `json:"includeDependents"`
	Data              *models.FormData   `json:"data"`
	TermsOpen         bool               `json:"termsOpen"`
	Submitting        bool               `json:"submitting"`
	Submitted         bool               `json:"submitted"`
	ApplicationID     string             `json:"applicationId,omitempty"`
	ScrollTop         int                `json:"scrollTop"`
	LastError         *schemas.Violation `json:"lastError,omitempty"`
}

// Steps returns the page sequence for the given layout.
func Steps(includeDependents bool) []schemas.Step {
	if includeDependents {
		return []schemas.Step{schemas.StepPersonal, schemas.StepResidential, schemas.StepCommercial, schemas.StepDependents, schemas.StepPayment}
	}
	return []schemas.Step{schemas.StepPersonal, schemas.StepResidential, schemas.StepCommercial, schemas.StepPayment}
}

// NewState returns the state of a fresh wizard on step 1.
func NewState(includeDependents bool) State {
	return State{
		Current:           1,
		Total:             len(Steps(includeDependents)),
		IncludeDependents: includeDependents,
		Data:              &models.FormData{},
	}
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock replaces the wall clock used by date checks.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// Controller is safe for concurrent use.
type Controller struct {
	mu        sync.Mutex
	state     State
	validator *schemas.Validator
	now       func() time.Time
}

// New starts a wizard on step 1.
func New(v *schemas.Validator, includeDependents bool, opts ...Option) *Controller {
	return Restore(v, NewState(includeDependents), opts...)
}

// Restore resumes a wizard from a saved snapshot. An in-flight flag from the
// snapshot is dropped; only the live controller can own a submission.
func Restore(v *schemas.Validator, s State, opts ...Option) *Controller {
	if v == nil {
		v = schemas.NewValidator(nil, false)
	}
	if s.Data == nil {
		s.Data = &models.FormData{}
	} else {
		s.Data = s.Data.Clone()
	}
	s.Total = len(Steps(s.IncludeDependents))
	s.Current = clamp(s.Current, 1, s.Total)
	s.Submitting = false

	c := &Controller{state: s, validator: v, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns a copy of the current snapshot.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

func (c *Controller) snapshot() State {
	s := c.state
	s.Data = c.state.Data.Clone()
	if c.state.LastError != nil {
		v := *c.state.LastError
		s.LastError = &v
	}
	return s
}

// CurrentStep returns the schema gating the current page.
func (c *Controller) CurrentStep() schemas.Step {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Steps(c.state.IncludeDependents)[c.state.Current-1]
}

// SetData replaces the aggregate form data.
func (c *Controller) SetData(data *models.FormData) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.checkEditable(); err != nil {
		return err
	}
	c.state.Data = data.Clone()
	if c.state.Data == nil {
		c.state.Data = &models.FormData{}
	}
	return nil
}

// Next validates the current page and advances on success. On failure the
// first violation is kept in LastError and a *schemas.ValidationError is
// returned.
func (c *Controller) Next() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.checkEditable(); err != nil {
		return err
	}
	if c.state.Current >= c.state.Total {
		return ErrLastStep
	}

	// Validate the current page
	step := Steps(c.state.IncludeDependents)[c.state.Current-1]
	r := c.validator.Step(step, c.state.Data, c.now())
	if !r.Valid() {
		c.state.LastError = r.First()
		return r.Err()
	}

	c.state.Current++
	c.state.ScrollTop = 0
	c.state.LastError = nil
	return nil
}

// Back returns to the previous page without validation.
func (c *Controller) Back() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.checkEditable(); err != nil {
		return err
	}
	c.state.Current = clamp(c.state.Current-1, 1, c.state.Total)
	c.state.ScrollTop = 0
	c.state.TermsOpen = false
	c.state.LastError = nil
	return nil
}

// SubmitIntent runs the payment schema from the last page and opens the
// terms prompt on success.
func (c *Controller) SubmitIntent() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.checkEditable(); err != nil {
		return err
	}
	if c.state.Current != c.state.Total {
		return ErrNotLastStep
	}

	r := c.validator.Payment(c.state.Data)
	if !r.Valid() {
		c.state.LastError = r.First()
		return r.Err()
	}

	c.state.TermsOpen = true
	c.state.LastError = nil
	return nil
}

// CancelTerms closes the terms prompt.
func (c *Controller) CancelTerms() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.checkEditable(); err != nil {
		return err
	}
	c.state.TermsOpen = false
	return nil
}

// ConfirmSubmit records the consents and hands the data to s. Only one
// submission runs at a time; a concurrent call gets ErrSubmissionInFlight.
// On success the data is cleared and the wizard becomes Submitted. On
// failure the prompt stays open with the error in LastError.
func (c *Controller) ConfirmSubmit(ctx context.Context, consent Consent, s Submitter) (string, error) {
	c.mu.Lock()
	if c.state.Submitted {
		c.mu.Unlock()
		return "", ErrSubmitted
	}
	if c.state.Submitting {
		c.mu.Unlock()
		return "", ErrSubmissionInFlight
	}
	if !c.state.TermsOpen {
		c.mu.Unlock()
		return "", ErrTermsClosed
	}
	if r := c.validator.Terms(consent.AcceptStatute, consent.AcceptImageUsage); !r.Valid() {
		c.state.LastError = r.First()
		c.mu.Unlock()
		return "", r.Err()
	}

	// Record consents and mark the submission in flight
	c.state.Data.AcceptStatute = consent.AcceptStatute
	c.state.Data.AcceptImageUsage = consent.AcceptImageUsage
	c.state.Submitting = true
	c.state.LastError = nil
	data := c.state.Data.Clone()
	c.mu.Unlock()

	// Submit without holding the lock
	id, err := s.Submit(ctx, data)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Submitting = false
	if err != nil {
		c.state.LastError = errorViolation(err)
		return "", err
	}

	// Clear the form for the next application
	c.state.Submitted = true
	c.state.TermsOpen = false
	c.state.ApplicationID = id
	c.state.Data = &models.FormData{}
	c.state.ScrollTop = 0
	return id, nil
}

func (c *Controller) checkEditable() error {
	switch {
	case c.state.Submitted:
		return ErrSubmitted
	case c.state.Submitting:
		return ErrSubmissionInFlight
	}
	return nil
}

// errorViolation turns a submission error into the message shown in the
// prompt. Validation errors surface their first violation.
func errorViolation(err error) *schemas.Violation {
	var verr *schemas.ValidationError
	if errors.As(err, &verr) && len(verr.Violations) > 0 {
		v := verr.Violations[0]
		return &v
	}
	return &schemas.Violation{Message: err.Error()}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
