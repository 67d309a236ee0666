package commands

import (
	"fmt"
	"net/url"
	"os"
	"time"

	devenv "debateservice/dev/env"
	"debateservice/lib/restyutil"
	"debateservice/lib/scrapers/debateorg"
	"debateservice/lib/serviceutil"

	"github.com/spf13/cobra"
)

var (
	scrapeTimeout *time.Duration
	scrapeDump    *string
)

func init() {
	scrapeTimeout = scrapeCmd.Flags().Duration("timeout", debateorg.DefaultTimeout, "How long to wait for debate.org.")
	scrapeDump = scrapeCmd.Flags().String("dump", "", "A directory to dump raw HTTP exchanges to (needs -v), e.g. <dev_state>/resty.")
	rootCmd.AddCommand(scrapeCmd)
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape <url> [--json] [--timeout <duration>]",
	Short: "Fetches a debate.org opinion page and prints what was extracted from it.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		target, err := url.Parse(args[0])
		if err != nil || !debateorg.IsHttpScheme(target) || !debateorg.InDomain(target.Hostname(), debateorg.Domain) {
			fmt.Fprintln(os.Stderr, "Only debate.org URLs are supported.")
			os.Exit(1)
		}

		if *scrapeDump != "" {
			dir, err := devenv.ResolvePath(*scrapeDump)
			if err != nil {
				serviceutil.Fatal("resolve dump directory", err)
			}
			out, err := restyutil.NewFilesystemOutput(dir)
			if err != nil {
				serviceutil.Fatal("create dump directory", err)
			}
			debateorg.SetRestyInstrumentOutput(out)
		}

		client := debateorg.NewClient(debateorg.ClientOptions{
			Timeout:          *scrapeTimeout,
			BypassCloudflare: true,
		})
		markup, err := client.Fetch(cmd.Context(), args[0])
		if err != nil {
			serviceutil.Fatal("fetch opinion", err)
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
