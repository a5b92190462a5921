package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/aabb-jequie/app-inscricao/internal/config"
	"github.com/aabb-jequie/app-inscricao/internal/logging"
	"github.com/aabb-jequie/app-inscricao/internal/models"
	"github.com/aabb-jequie/app-inscricao/internal/services"
	"github.com/spf13/cobra"
)

type listOptions struct {
	start  string
	end    string
	asJSON bool
}

func newListCmd() *cobra.Command {
	opts := &listOptions{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Lista as fichas gravadas no MongoDB",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := models.NewListFilter(opts.start, opts.end, config.AppConfig.Location)
			if err != nil {
				return err
			}
			if err := config.InitMongoDB(); err != nil {
				return err
			}
			defer config.MongoDB.Client().Disconnect(context.Background())

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()
			store := services.NewMongoApplicationStore(config.MongoDB, config.AppConfig.ApplicationCollection, logging.Logger)
			records, err := store.List(ctx, filter)
			if err != nil {
				return err
			}
			return printRecords(cmd.OutOrStdout(), records, opts.asJSON, config.AppConfig.Location)
		},
	}
	cmd.Flags().StringVar(&opts.start, "start", "", "data inicial (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.end, "end", "", "data final (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "imprime os registros completos em JSON")
	return cmd
}

func printRecords(out io.Writer, records []models.ApplicationRecord, asJSON bool, loc *time.Location) error {
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ENVIADA EM\tNOME\tCPF\tEMAIL\tDEPENDENTES")
	for _, rec := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n",
			rec.CreatedAt.In(loc).Format("02/01/2006 15:04"),
			rec.FullName, rec.CPF, rec.Email, len(rec.Dependents))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "%d ficha(s)\n", len(records))
	return nil
}
