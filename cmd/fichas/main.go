// Command fichas is the secretary's offline toolbox: it checks payload files,
// prints receipts and exports the stored applications.
package main

import (
	"fmt"
	"os"

	"github.com/aabb-jequie/app-inscricao/internal/config"
	"github.com/aabb-jequie/app-inscricao/internal/logging"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var verbose bool

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "fichas",
		Short:         "Ferramentas da secretaria para fichas de inscrição",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()
			if verbose {
				if err := logging.InitLogger(); err != nil {
					return fmt.Errorf("failed to initialize logger: %w", err)
				}
			}
			return config.LoadConfig()
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log to stderr")

	root.AddCommand(newValidateCmd(), newReceiptCmd(), newListCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "erro:", err)
		os.Exit(1)
	}
}
