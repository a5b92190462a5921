package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
)

// errInvalidPayload makes the command exit non-zero after printing the
// violations.
var errInvalidPayload = errors.New("ficha inválida")

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <payload.json>",
		Short: "Valida uma ficha com as mesmas regras da API",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.OutOrStdout(), args[0], time.Now())
		},
	}
}

func runValidate(out io.Writer, path string, now time.Time) error {
	data, err := readPayload(path)
	if err != nil {
		return err
	}

	v := newValidator()
	v.Normalize(data)
	result := v.Application(data, now)
	if result.Valid() {
		fmt.Fprintf(out, "%s: ficha válida\n", path)
		return nil
	}

	fmt.Fprintf(out, "%s: %d problema(s)\n", path, len(result.Violations))
	for _, d := range result.Details() {
		fmt.Fprintf(out, "  - %s\n", d)
	}
	return errInvalidPayload
}
