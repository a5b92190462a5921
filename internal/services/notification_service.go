package services

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/aabb-jequie/app-inscricao/internal/logging"
	"github.com/aabb-jequie/app-inscricao/internal/models"
	"github.com/aabb-jequie/app-inscricao/internal/observability"
	"github.com/aabb-jequie/app-inscricao/internal/utils"
	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

// Mailer delivers transactional email.
type Mailer interface {
	Send(ctx context.Context, msg *models.EmailMessage) error
}

// ResendMailer sends through the Resend API.
type ResendMailer struct {
	client *resend.Client
	from   string
}

// NewResendMailer creates a mailer authenticated with apiKey.
func NewResendMailer(apiKey, from string, httpClient *http.Client) *ResendMailer {
	return &ResendMailer{
		client: resend.NewCustomClient(httpClient, apiKey),
		from:   from,
	}
}

func (m *ResendMailer) Send(ctx context.Context, msg *models.EmailMessage) error {
	req := &resend.SendEmailRequest{
		From:    m.from,
		To:      msg.To,
		Subject: msg.Subject,
		Html:    msg.HTML,
	}
	for _, a := range msg.Attachments {
		req.Attachments = append(req.Attachments, &resend.Attachment{
			Content:  a.Content,
			Filename: a.Filename,
		})
	}

	if _, err := m.client.Emails.SendWithContext(ctx, req); err != nil {
		return fmt.Errorf("resend: %w", err)
	}
	return nil
}

// LogMailer only logs messages. It is used when no email API key is set.
type LogMailer struct {
	logger *logging.SafeLogger
}

// NewLogMailer creates a mailer that drops every message.
func NewLogMailer(logger *logging.SafeLogger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) Send(_ context.Context, msg *models.EmailMessage) error {
	m.logger.Info("email delivery disabled, message not sent",
		zap.Int("recipients", len(msg.To)),
		zap.String("subject", msg.Subject),
		zap.Int("attachments", len(msg.Attachments)))
	return nil
}

//go:embed templates/*_email.html.tmpl
var emailTemplateFS embed.FS

var emailTemplates = template.Must(template.ParseFS(emailTemplateFS, "templates/*_email.html.tmpl"))

// NotificationService sends the applicant confirmation and the staff notice.
type NotificationService struct {
	mailer   Mailer
	staff    []string
	clubName string
	timeout  time.Duration
	location *time.Location
	logger   *logging.SafeLogger
}

// NewNotificationService creates the service. staff may be empty, in which
// case only the applicant is notified.
func NewNotificationService(mailer Mailer, staff []string, clubName string, timeout time.Duration, loc *time.Location, logger *logging.SafeLogger) *NotificationService {
	if loc == nil {
		loc = time.UTC
	}
	return &NotificationService{
		mailer:   mailer,
		staff:    staff,
		clubName: clubName,
		timeout:  timeout,
		location: loc,
		logger:   logger,
	}
}

// NotifySubmission emails the applicant and the staff. Failures are logged
// and counted, never returned: the application is already stored.
func (s *NotificationService) NotifySubmission(ctx context.Context, rec *models.ApplicationRecord, attachment *models.EmailAttachment) {
	ctx, span := utils.TraceBusinessLogic(ctx, "notify_submission")
	defer span.End()

	// Delivery outlives a cancelled request.
	ctx = context.WithoutCancel(ctx)

	var attachments []models.EmailAttachment
	if attachment != nil {
		attachments = []models.EmailAttachment{*attachment}
	}
	date := rec.CreatedAt.In(s.location).Format("02/01/2006 15:04")

	// Send confirmation to the applicant
	applicant, err := renderEmail("applicant_email.html.tmpl", map[string]string{
		"FirstName":     firstName(rec.FullName),
		"ClubName":      s.clubName,
		"Date":          date,
		"ApplicationID": rec.ID,
	})
	if err == nil {
		s.send(ctx, "applicant", &models.EmailMessage{
			To:          []string{rec.Email},
			Subject:     fmt.Sprintf("Inscrição recebida - %s", s.clubName),
			HTML:        applicant,
			Attachments: attachments,
		}, rec)
	} else {
		s.fail("applicant", rec, err)
	}

	if len(s.staff) == 0 {
		observability.EmailsSent.WithLabelValues("staff", "skipped").Inc()
		s.logger.Warn("no staff recipients configured, skipping staff notification",
			zap.String("application_id", rec.ID))
		return
	}

	// Send the new application to the secretariat
	staff, err := renderEmail("staff_email.html.tmpl", map[string]interface{}{
		"FullName":      rec.FullName,
		"CPF":           rec.CPF,
		"Email":         rec.Email,
		"Whatsapp":      rec.Residential.Whatsapp,
		"WhatsAppLink":  utils.WhatsAppLink(rec.Residential.Whatsapp),
		"Dependents":    len(rec.Dependents),
		"Date":          date,
		"ApplicationID": rec.ID,
	})
	if err != nil {
		s.fail("staff", rec, err)
		return
	}
	s.send(ctx, "staff", &models.EmailMessage{
		To:          s.staff,
		Subject:     fmt.Sprintf("Nova inscrição: %s", rec.FullName),
		HTML:        staff,
		Attachments: attachments,
	}, rec)
}

func (s *NotificationService) send(ctx context.Context, recipient string, msg *models.EmailMessage, rec *models.ApplicationRecord) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	ctx, span := utils.TraceExternalService(ctx, "email", recipient)
	defer span.End()

	if err := s.mailer.Send(ctx, msg); err != nil {
		utils.RecordErrorInSpan(span, err, map[string]interface{}{"recipient": recipient})
		s.fail(recipient, rec, err)
		return
	}
	// Update metrics
	observability.EmailsSent.WithLabelValues(recipient, "success").Inc()
	s.logger.Info("notification sent",
		zap.String("recipient", recipient),
		zap.String("application_id", rec.ID))
}

func (s *NotificationService) fail(recipient string, rec *models.ApplicationRecord, err error) {
	observability.EmailsSent.WithLabelValues(recipient, "error").Inc()
	s.logger.Error("failed to send notification",
		zap.String("recipient", recipient),
		zap.String("application_id", rec.ID),
		zap.String("email", observability.MaskEmail(rec.Email)),
		zap.Error(err))
}

func renderEmail(name string, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := emailTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", name, err)
	}
	return buf.String(), nil
}

func firstName(fullName string) string {
	if fields := strings.Fields(fullName); len(fields) > 0 {
		return fields[0]
	}
	return fullName
}
