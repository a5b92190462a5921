package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/aabb-jequie/app-inscricao/internal/config"
	"github.com/aabb-jequie/app-inscricao/internal/models"
	"github.com/aabb-jequie/app-inscricao/internal/schemas"
)

// readPayload loads a submission file the same way the API reads a request
// body, rejecting raw card or bank fields.
func readPayload(path string) (*models.FormData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := schemas.CheckPaymentKeys(raw); err != nil {
		return nil, err
	}
	var data models.FormData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("invalid JSON in %s: %w", path, err)
	}
	return &data, nil
}

func newValidator() *schemas.Validator {
	return schemas.NewValidator(nil, config.AppConfig.StrictCPFCheck)
}
