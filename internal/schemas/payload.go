package schemas

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/aabb-jequie/app-inscricao/internal/models"
)

// Raw card and bank keys. Payment data travels only as a processor token.
var forbiddenPaymentKeys = map[string]bool{
	"cardNumber":   true,
	"cardValidity": true,
	"cardCvv":      true,
	"bankAgency":   true,
	"bankAccount":  true,
	"bankDv":       true,
}

// CheckPaymentKeys rejects a JSON object carrying raw card or bank fields.
// The returned error wraps models.ErrForbiddenPaymentKey and is a
// *ValidationError listing each offending key.
func CheckPaymentKeys(raw []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return fmt.Errorf("invalid JSON object: %w", err)
	}

	var found []string
	for key := range fields {
		if forbiddenPaymentKeys[key] {
			found = append(found, key)
		}
	}
	if len(found) == 0 {
		return nil
	}
	sort.Strings(found)

	r := &Result{}
	for _, key := range found {
		r.Add(key, "Dados de cartão ou conta bancária não são aceitos")
	}
	return &forbiddenKeyError{ValidationError: ValidationError{Violations: r.Violations}}
}

type forbiddenKeyError struct {
	ValidationError
}

func (e *forbiddenKeyError) Unwrap() []error {
	return []error{models.ErrForbiddenPaymentKey, &e.ValidationError}
}
