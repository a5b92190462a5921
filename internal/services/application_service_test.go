package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aabb-jequie/app-inscricao/internal/fixtures"
	"github.com/aabb-jequie/app-inscricao/internal/logging"
	"github.com/aabb-jequie/app-inscricao/internal/models"
	"github.com/aabb-jequie/app-inscricao/internal/receipt"
	"github.com/aabb-jequie/app-inscricao/internal/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type applicationHarness struct {
	service *ApplicationService
	store   *fixtures.MemoryStore
	mailer  *fixtures.RecordingMailer
}

func newApplicationHarness(t *testing.T, staff ...string) *applicationHarness {
	t.Helper()
	store := fixtures.NewMemoryStore()
	mailer := &fixtures.RecordingMailer{}
	notifier := NewNotificationService(mailer, staff, "AABB Jequié", time.Second, time.UTC, logging.Nop())
	service := NewApplicationService(
		store,
		schemas.NewValidator(nil, false),
		receipt.NewGenerator(nil, "AABB Jequié", time.UTC),
		notifier,
		logging.Nop(),
	)
	service.SetClock(func() time.Time { return fixtures.Now })
	return &applicationHarness{service: service, store: store, mailer: mailer}
}

func TestApplicationService_SubmitStoresAndNotifies(t *testing.T) {
	h := newApplicationHarness(t, "secretaria@aabbjequie.com.br")

	rec, err := h.service.Submit(context.Background(), fixtures.MariaForm())
	require.NoError(t, err)
	require.NotNil(t, rec)

	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, fixtures.Now, rec.CreatedAt)
	assert.Equal(t, "Maria Silva Santos", rec.FullName)
	require.Len(t, rec.Dependents, 1)
	assert.Equal(t, 1, h.store.Len())

	stored, err := h.store.Get(context.Background(), rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.CPF, stored.CPF)

	messages := h.mailer.Messages()
	require.Len(t, messages, 2)

	applicant := messages[0]
	assert.Equal(t, []string{"maria@email.com"}, applicant.To)
	assert.Equal(t, "Inscrição recebida - AABB Jequié", applicant.Subject)
	assert.Contains(t, applicant.HTML, "Maria")
	require.Len(t, applicant.Attachments, 1)
	assert.Equal(t, "recibo-12345678900.pdf", applicant.Attachments[0].Filename)
	assert.True(t, strings.HasPrefix(string(applicant.Attachments[0].Content), "%PDF"))

	staff := messages[1]
	assert.Equal(t, []string{"secretaria@aabbjequie.com.br"}, staff.To)
	assert.Equal(t, "Nova inscrição: Maria Silva Santos", staff.Subject)
	assert.Contains(t, staff.HTML, "(73) 99999-9999")
	require.Len(t, staff.Attachments, 1)
}

func TestApplicationService_SubmitDoesNotMutateInput(t *testing.T) {
	h := newApplicationHarness(t)

	form := fixtures.MariaForm()
	form.CivilStatus = "Casado(a)"
	form.ResidentialCEP = "45200000"

	rec, err := h.service.Submit(context.Background(), form)
	require.NoError(t, err)

	assert.Equal(t, "casado", rec.CivilStatus)
	assert.Equal(t, "45200-000", rec.Residential.CEP)
	assert.Equal(t, "Casado(a)", form.CivilStatus)
	assert.Equal(t, "45200000", form.ResidentialCEP)
}

func TestApplicationService_SubmitRejectsInvalidPayload(t *testing.T) {
	h := newApplicationHarness(t, "secretaria@aabbjequie.com.br")

	form := fixtures.MariaForm()
	form.AcceptImageUsage = false
	form.Email = "maria"

	rec, err := h.service.Submit(context.Background(), form)
	assert.Nil(t, rec)

	var verr *schemas.ValidationError
	require.True(t, errors.As(err, &verr))
	fields := make([]string, len(verr.Violations))
	for i, v := range verr.Violations {
		fields[i] = v.Field
	}
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "acceptImageUsage")

	assert.Equal(t, 0, h.store.Len())
	assert.Empty(t, h.mailer.Messages())
}

func TestApplicationService_SubmitPersistenceFailure(t *testing.T) {
	h := newApplicationHarness(t, "secretaria@aabbjequie.com.br")
	h.store.Err = errors.New("connection reset")

	rec, err := h.service.Submit(context.Background(), fixtures.MariaForm())
	assert.Nil(t, rec)
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrPersistence))
	assert.Contains(t, err.Error(), "connection reset")
	assert.Empty(t, h.mailer.Messages(), "nothing is sent for an application that was not stored")
}

func TestApplicationService_SubmitSurvivesMailerFailure(t *testing.T) {
	h := newApplicationHarness(t, "secretaria@aabbjequie.com.br")
	h.mailer.Err = errors.New("smtp down")

	rec, err := h.service.Submit(context.Background(), fixtures.MariaForm())
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, 1, h.store.Len())
	assert.Len(t, h.mailer.Messages(), 2, "both recipients are still attempted")
}

func TestApplicationService_SubmitWithoutNotifier(t *testing.T) {
	store := fixtures.NewMemoryStore()
	service := NewApplicationService(store, schemas.NewValidator(nil, false),
		receipt.NewGenerator(nil, "AABB Jequié", time.UTC), nil, logging.Nop())

	rec, err := service.Submit(context.Background(), fixtures.MariaForm())
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, 1, store.Len())
}

func TestApplicationService_GetListDelete(t *testing.T) {
	h := newApplicationHarness(t)
	ctx := context.Background()

	older := fixtures.MariaRecord("older")
	older.CreatedAt = fixtures.Now.Add(-48 * time.Hour)
	newer := fixtures.MariaRecord("newer")
	require.NoError(t, h.store.Insert(ctx, older))
	require.NoError(t, h.store.Insert(ctx, newer))

	got, err := h.service.Get(ctx, "newer")
	require.NoError(t, err)
	assert.Equal(t, "newer", got.ID)

	all, err := h.service.List(ctx, models.ListFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "newer", all[0].ID)
	assert.Equal(t, "older", all[1].ID)

	filter, err := models.NewListFilter("2025-01-15", "2025-01-15", time.UTC)
	require.NoError(t, err)
	recent, err := h.service.List(ctx, filter)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "newer", recent[0].ID)

	require.NoError(t, h.service.Delete(ctx, "older"))
	_, err = h.service.Get(ctx, "older")
	assert.True(t, errors.Is(err, models.ErrApplicationNotFound))
	assert.True(t, errors.Is(h.service.Delete(ctx, "older"), models.ErrApplicationNotFound))
}

func TestApplicationService_Update(t *testing.T) {
	ctx := context.Background()
	name := "Maria Silva Souza"
	badEmail := "not-an-email"

	t.Run("applies a valid edit", func(t *testing.T) {
		h := newApplicationHarness(t)
		require.NoError(t, h.store.Insert(ctx, fixtures.MariaRecord("app-1")))
		h.service.SetClock(func() time.Time { return fixtures.Now.Add(time.Hour) })

		rec, err := h.service.Update(ctx, "app-1", &models.ApplicationUpdate{FullName: &name})
		require.NoError(t, err)
		assert.Equal(t, name, rec.FullName)
		require.NotNil(t, rec.UpdatedAt)
		assert.Equal(t, fixtures.Now.Add(time.Hour), *rec.UpdatedAt)
		assert.Equal(t, fixtures.Now, rec.CreatedAt)

		stored, err := h.store.Get(ctx, "app-1")
		require.NoError(t, err)
		assert.Equal(t, name, stored.FullName)
	})

	t.Run("rejects an edit that breaks the schema", func(t *testing.T) {
		h := newApplicationHarness(t)
		require.NoError(t, h.store.Insert(ctx, fixtures.MariaRecord("app-1")))

		_, err := h.service.Update(ctx, "app-1", &models.ApplicationUpdate{Email: &badEmail})
		var verr *schemas.ValidationError
		require.True(t, errors.As(err, &verr))

		stored, err := h.store.Get(ctx, "app-1")
		require.NoError(t, err)
		assert.Equal(t, "maria@email.com", stored.Email, "a rejected edit leaves the record untouched")
		assert.Nil(t, stored.UpdatedAt)
	})

	t.Run("copied commercial address follows residential edits", func(t *testing.T) {
		h := newApplicationHarness(t)
		form := fixtures.MariaForm()
		form.CommercialMode = models.CommercialModeSameAsResidential
		require.NoError(t, h.store.Insert(ctx, form.ToRecord("app-1", fixtures.Now)))

		street := "Rua Nova Endereco"
		rec, err := h.service.Update(ctx, "app-1", &models.ApplicationUpdate{ResidentialStreet: &street})
		require.NoError(t, err)
		assert.Equal(t, models.CommercialModeSameAsResidential, rec.CommercialMode)
		require.NotNil(t, rec.Commercial)
		assert.Equal(t, rec.Residential, *rec.Commercial)

		stored, err := h.store.Get(ctx, "app-1")
		require.NoError(t, err)
		require.NotNil(t, stored.Commercial)
		assert.Equal(t, street, stored.Commercial.Street)
	})

	t.Run("normalizes edited values", func(t *testing.T) {
		h := newApplicationHarness(t)
		require.NoError(t, h.store.Insert(ctx, fixtures.MariaRecord("app-1")))

		paddedName := "  Maria Silva Souza "
		rawCEP := "45203000"
		uf := "ba"
		rec, err := h.service.Update(ctx, "app-1", &models.ApplicationUpdate{
			FullName:       &paddedName,
			ResidentialCEP: &rawCEP,
			CommercialCEP:  &rawCEP,
			UF:             &uf,
		})
		require.NoError(t, err)
		assert.Equal(t, "Maria Silva Souza", rec.FullName)
		assert.Equal(t, "45203-000", rec.Residential.CEP)
		assert.Equal(t, "45203-000", rec.Commercial.CEP)
		assert.Equal(t, "BA", rec.UF)

		stored, err := h.store.Get(ctx, "app-1")
		require.NoError(t, err)
		assert.Equal(t, "45203-000", stored.Residential.CEP)
	})

	t.Run("rejects an empty edit", func(t *testing.T) {
		h := newApplicationHarness(t)
		_, err := h.service.Update(ctx, "app-1", &models.ApplicationUpdate{})
		assert.True(t, errors.Is(err, models.ErrEmptyUpdate))
		_, err = h.service.Update(ctx, "app-1", nil)
		assert.True(t, errors.Is(err, models.ErrEmptyUpdate))
	})

	t.Run("unknown id", func(t *testing.T) {
		h := newApplicationHarness(t)
		_, err := h.service.Update(ctx, "missing", &models.ApplicationUpdate{FullName: &name})
		assert.True(t, errors.Is(err, models.ErrApplicationNotFound))
	})
}

func TestApplicationService_Receipt(t *testing.T) {
	h := newApplicationHarness(t)
	ctx := context.Background()
	require.NoError(t, h.store.Insert(ctx, fixtures.MariaRecord("app-1")))

	out, filename, err := h.service.Receipt(ctx, "app-1", receipt.FormatHTML, receipt.LayoutSingle)
	require.NoError(t, err)
	assert.Equal(t, "recibo-12345678900.html", filename)
	assert.Contains(t, string(out), "Maria Silva Santos")

	pdf, filename, err := h.service.Receipt(ctx, "app-1", receipt.FormatPDF, receipt.LayoutDouble)
	require.NoError(t, err)
	assert.Equal(t, "recibo-12345678900.pdf", filename)
	assert.True(t, strings.HasPrefix(string(pdf), "%PDF"))

	_, _, err = h.service.Receipt(ctx, "missing", receipt.FormatPDF, receipt.LayoutDouble)
	assert.True(t, errors.Is(err, models.ErrApplicationNotFound))
}

func TestMetricField(t *testing.T) {
	assert.Equal(t, "email", metricField("email"))
	assert.Equal(t, "dependents.name", metricField("dependents[0].name"))
	assert.Equal(t, "dependents.birthDate", metricField("dependents[12].birthDate"))
}
