package commands

import (
	"context"
	"fmt"
	"os"

	"debateservice/lib/telemetry"

	"github.com/spf13/cobra"
)

var (
	asJson  *bool
	verbose *bool
)

var rootCmd = &cobra.Command{
	Use:   "opinions-cli",
	Short: "opinions-cli scrapes debate.org opinion pages from the command line.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if *verbose {
			telemetry.InitSlog(true)
		}
	},
}

func init() {
	asJson = rootCmd.PersistentFlags().Bool("json", false, "Print the opinion as JSON instead of tables.")
	verbose = rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging.")
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
