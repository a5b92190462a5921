package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/aabb-jequie/app-inscricao/internal/config"
	"github.com/aabb-jequie/app-inscricao/internal/receipt"
	"github.com/aabb-jequie/app-inscricao/internal/utils"
	"github.com/spf13/cobra"
)

type receiptOptions struct {
	output string
	format string
	layout string
	date   string
}

func newReceiptCmd() *cobra.Command {
	opts := &receiptOptions{}
	cmd := &cobra.Command{
		Use:   "receipt <payload.json>",
		Short: "Gera o recibo de uma ficha sem gravá-la",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReceipt(cmd.OutOrStdout(), args[0], opts, time.Now())
		},
	}
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "arquivo de saída (padrão recibo-<cpf>.<formato>)")
	cmd.Flags().StringVar(&opts.format, "format", "pdf", "pdf ou html")
	cmd.Flags().StringVar(&opts.layout, "layout", "double", "single ou double")
	cmd.Flags().StringVar(&opts.date, "date", "", "data de envio impressa no recibo (YYYY-MM-DD)")
	return cmd
}

func runReceipt(out io.Writer, path string, opts *receiptOptions, now time.Time) error {
	format, err := receipt.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	layout, err := receipt.ParseLayout(opts.layout)
	if err != nil {
		return err
	}

	cfg := config.AppConfig
	submitted := now
	if opts.date != "" {
		submitted, err = time.ParseInLocation("2006-01-02", opts.date, cfg.Location)
		if err != nil {
			return fmt.Errorf("invalid --date %q: %w", opts.date, err)
		}
	}

	data, err := readPayload(path)
	if err != nil {
		return err
	}
	v := newValidator()
	v.Normalize(data)
	if err := v.Application(data, now).Err(); err != nil {
		return err
	}

	rec := data.ToRecord(utils.GenerateUUID(), submitted.UTC())
	doc, err := receipt.NewGenerator(nil, cfg.ClubName, cfg.Location).Render(rec, submitted, format, layout)
	if err != nil {
		return err
	}

	target := opts.output
	if target == "" {
		target = receipt.Filename(rec, format)
	}
	if err := os.WriteFile(target, doc, 0o644); err != nil {
		return err
	}
	fmt.Fprintf(out, "recibo gravado em %s\n", target)
	return nil
}
