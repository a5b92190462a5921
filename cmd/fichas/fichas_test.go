package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aabb-jequie/app-inscricao/internal/config"
	"github.com/aabb-jequie/app-inscricao/internal/fixtures"
	"github.com/aabb-jequie/app-inscricao/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	config.AppConfig = &config.Config{ClubName: "AABB Jequié", Location: time.UTC}
	os.Exit(m.Run())
}

func writePayload(t *testing.T, v interface{}) string {
	t.Helper()
	raw, ok := v.(string)
	if !ok {
		b, err := json.Marshal(v)
		require.NoError(t, err)
		raw = string(b)
	}
	path := filepath.Join(t.TempDir(), "ficha.json")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))
	return path
}

func TestRunValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		var out bytes.Buffer
		path := writePayload(t, fixtures.MariaForm())

		require.NoError(t, runValidate(&out, path, fixtures.Now))
		assert.Contains(t, out.String(), "ficha válida")
	})

	t.Run("violations are listed", func(t *testing.T) {
		form := fixtures.MariaForm()
		form.Email = "maria"
		form.AcceptImageUsage = false
		var out bytes.Buffer

		err := runValidate(&out, writePayload(t, form), fixtures.Now)
		assert.ErrorIs(t, err, errInvalidPayload)
		assert.Contains(t, out.String(), "2 problema(s)")
		assert.Contains(t, out.String(), "  - email: ")
		assert.Contains(t, out.String(), "  - acceptImageUsage: ")
	})

	t.Run("raw card data", func(t *testing.T) {
		err := runValidate(&bytes.Buffer{}, writePayload(t, `{"fullName":"Maria","cardNumber":"4111111111111111"}`), fixtures.Now)
		assert.ErrorIs(t, err, models.ErrForbiddenPaymentKey)
	})

	t.Run("missing file", func(t *testing.T) {
		err := runValidate(&bytes.Buffer{}, filepath.Join(t.TempDir(), "nope.json"), fixtures.Now)
		assert.Error(t, err)
	})
}

func TestRunReceipt(t *testing.T) {
	path := writePayload(t, fixtures.MariaForm())

	t.Run("pdf", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "recibo.pdf")
		var out bytes.Buffer

		err := runReceipt(&out, path, &receiptOptions{output: target, format: "pdf", layout: "double", date: "2025-01-10"}, fixtures.Now)
		require.NoError(t, err)
		assert.Contains(t, out.String(), target)

		doc, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
	})

	t.Run("html", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "recibo.html")

		err := runReceipt(&bytes.Buffer{}, path, &receiptOptions{output: target, format: "html", layout: "single", date: "2025-01-10"}, fixtures.Now)
		require.NoError(t, err)

		doc, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Contains(t, string(doc), "Maria Silva Santos")
		assert.Contains(t, string(doc), "10/01/2025")
	})

	tests := []struct {
		name string
		opts receiptOptions
	}{
		{name: "bad format", opts: receiptOptions{format: "docx", layout: "double"}},
		{name: "bad layout", opts: receiptOptions{format: "pdf", layout: "triple"}},
		{name: "bad date", opts: receiptOptions{format: "pdf", layout: "double", date: "10/01/2025"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tt.opts
			opts.output = filepath.Join(t.TempDir(), "out")
			assert.Error(t, runReceipt(&bytes.Buffer{}, path, &opts, fixtures.Now))
			assert.NoFileExists(t, opts.output)
		})
	}

	t.Run("invalid payload is not printed", func(t *testing.T) {
		form := fixtures.MariaForm()
		form.CPF = "123"
		opts := receiptOptions{output: filepath.Join(t.TempDir(), "out.pdf"), format: "pdf", layout: "double"}

		assert.Error(t, runReceipt(&bytes.Buffer{}, writePayload(t, form), &opts, fixtures.Now))
		assert.NoFileExists(t, opts.output)
	})
}

func TestPrintRecords(t *testing.T) {
	records := []models.ApplicationRecord{*fixtures.MariaRecord("app-1")}

	t.Run("table", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, printRecords(&out, records, false, time.UTC))

		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		require.Len(t, lines, 3)
		assert.True(t, strings.HasPrefix(lines[0], "ENVIADA EM"))
		assert.Contains(t, lines[1], "15/01/2025 14:30")
		assert.Contains(t, lines[1], "Maria Silva Santos")
		assert.Equal(t, "1 ficha(s)", lines[2])
	})

	t.Run("json", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, printRecords(&out, records, true, time.UTC))

		var decoded []models.ApplicationRecord
		require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
		require.Len(t, decoded, 1)
		assert.Equal(t, "app-1", decoded[0].ID)
	})
}

func TestRootCommand_Validate(t *testing.T) {
	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("ENVIRONMENT", "development")
	path := writePayload(t, fixtures.MariaForm())

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"validate", path})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "ficha válida")

	cmd = newRootCmd()
	cmd.SetArgs([]string{"validate"})
	assert.Error(t, cmd.Execute())
}
