package observability

import (
	"strings"

	"github.com/aabb-jequie/app-inscricao/internal/logging"
)

// Logger returns the global safe logger instance
func Logger() *logging.SafeLogger {
	return logging.Logger
}

// MaskCPF masks a CPF for logging. Formatted and bare CPFs are both accepted.
func MaskCPF(cpf string) string {
	digits := digitsOnly(cpf)
	if len(digits) != 11 {
		return "***.***.***-**"
	}
	return digits[:3] + ".***." + digits[6:9] + "-**"
}

// MaskEmail keeps the first character of the local part and the domain.
func MaskEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at <= 0 {
		return "***"
	}
	return email[:1] + "***" + email[at:]
}

// MaskSensitiveData masks sensitive data in a map
func MaskSensitiveData(data map[string]interface{}) map[string]interface{} {
	masked := make(map[string]interface{}, len(data))
	for k, v := range data {
		if isSensitiveField(k) {
			masked[k] = "********"
		} else {
			masked[k] = v
		}
	}
	return masked
}

func isSensitiveField(name string) bool {
	switch name {
	case "cpf", "rg", "email",
		"residentialWhatsapp", "residentialPhone",
		"commercialWhatsapp", "commercialPhone",
		"paymentToken", "paymentLastFourDigits":
		return true
	}
	return false
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
