package domains

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"dario.lol/cdns/internal/cloudns"
	"dario.lol/cdns/internal/executor"
	"dario.lol/cdns/internal/flags"
	"dario.lol/cdns/internal/pagination"
	"dario.lol/cdns/internal/ui"
	"github.com/spf13/cobra"
)

var listOutputFile string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all domains in the account",
	Args:  cobra.NoArgs,
	Run: executor.NewBuilder[*cloudns.Client, []string]().
		Setup("Loading configuration", cloudns.NewClient).
		Fetch("Fetching domains", fetchDomains).
		Display(printDomainList).
		Build().
		CobraRun(),
}

func init() {
	flags.RegisterOutputFile(listCmd, &listOutputFile)
	pagination.RegisterFlags(listCmd)
	DomainsCmd.AddCommand(listCmd)
}

func fetchDomains(client *cloudns.Client, _ *cobra.Command, _ []string, progress chan<- string) ([]string, error) {
	progress <- "Checking credentials"
	if err := client.Login(context.Background()); err != nil {
		return nil, err
	}
	return client.ListDomains(context.Background(), progress)
}

func printDomainList(domains []string, fetchDuration time.Duration, err error) {
	if err != nil {
		fmt.Println(ui.ErrorMessage("Error listing domains", err))
		return
	}

	fmt.Println(ui.Title("Account Domains"))
	fmt.Println()

	if len(domains) == 0 {
		fmt.Println(ui.Warning("No domains found"))
		return
	}

	summaryContent := fmt.Sprintf("%-12s %d", "Total:", len(domains))
	fmt.Println(ui.Box(summaryContent, "Summary"))
	fmt.Println()

	if listOutputFile != "" {
		if writeErr := writeDomainList(listOutputFile, domains); writeErr != nil {
			fmt.Println(ui.ErrorMessage("Error writing domain list", writeErr))
			os.Exit(1)
		}
		fmt.Println(ui.Text(fmt.Sprintf("Domain list saved to %s", listOutputFile)))
		fmt.Println()
		fmt.Println(ui.Success(fmt.Sprintf("Found %d domain(s) in %v", len(domains), fetchDuration)))
		return
	}

	shown, info := pagination.Paginate(domains, pagination.GetOptions(listCmd))
	fmt.Println(ui.BulletList(shown))
	fmt.Println()

	footer := info.FooterMessage("domain(s)")
	footer += " " + ui.Muted(fmt.Sprintf("(took %v)", fetchDuration))
	fmt.Println(ui.Success(footer))
}

// writeDomainList saves the full domain list, one name per line.
func writeDomainList(path string, domains []string) error {
	var b strings.Builder
	for _, domain := range domains {
		b.WriteString(domain)
		b.WriteString("\n")
	}
	return os.WriteFile(path, []byte(b.String()), 0o644)
}
