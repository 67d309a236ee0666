package commands

import (
	"io"
	"os"

	devenv "debateservice/dev/env"
	"debateservice/lib/scrapers/debateorg"
	"debateservice/lib/serviceutil"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(extractCmd)
}

var extractCmd = &cobra.Command{
	Use:   "extract <path/to/page.html | -> [--json]",
	Short: "Extracts an opinion from a saved page, reading stdin when the path is -.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var markup []byte
		var err error
		if args[0] == "-" {
			markup, err = io.ReadAll(os.Stdin)
		} else {
			var path string
			path, err = devenv.ResolvePath(args[0])
			if err == nil {
				markup, err = os.ReadFile(path)
			}
		}
		if err != nil {
			serviceutil.Fatal("read page", err)
		}

		opinion, err := debateorg.Extract(cmd.Context(), markup)
		if err != nil {
			serviceutil.Fatal("extract opinion", err)
		}

		err = printOpinion(os.Stdout, opinion, *asJson)
		if err != nil {
			serviceutil.Fatal("print opinion", err)
		}
	},
}
