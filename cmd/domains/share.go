package domains

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"dario.lol/cdns/internal/cloudns"
	"dario.lol/cdns/internal/config"
	"dario.lol/cdns/internal/executor"
	"dario.lol/cdns/internal/flags"
	"dario.lol/cdns/internal/ui"
	"dario.lol/cdns/internal/ui/response"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	shareEmail string
	shareFile  string
)

var shareCmd = &cobra.Command{
	Use:   "share [domains...]",
	Short: "Share domains with another ClouDNS account",
	Long:  "Grants an account, identified by email, access to the given domains. Domains are passed as arguments (comma-separated values work too) or read from a file with --file.",
	Args:  cobra.ArbitraryArgs,
	Run: executor.NewBuilder[*cloudns.Client, cloudns.ShareSummary]().
		Setup("Loading configuration", cloudns.NewClient).
		Fetch("Sharing domains", runShareBatch).
		Display(printShareSummary).
		Build().
		CobraRun(),
}

func init() {
	flags.RegisterEmail(shareCmd, &shareEmail, "Email of the account to share the domains with")
	_ = shareCmd.MarkFlagRequired(flags.EmailFlag)
	flags.RegisterDomainsFile(shareCmd, &shareFile)
	DomainsCmd.AddCommand(shareCmd)
}

func runShareBatch(client *cloudns.Client, _ *cobra.Command, args []string, progress chan<- string) (cloudns.ShareSummary, error) {
	domains, err := resolveDomainSet(args, shareFile)
	if err != nil {
		return cloudns.ShareSummary{}, err
	}
	if !isValidEmail(strings.TrimSpace(shareEmail)) {
		return cloudns.ShareSummary{}, fmt.Errorf("invalid email address %q", shareEmail)
	}
	if len(domains) == 0 {
		return cloudns.ShareSummary{}, nil
	}

	progress <- "Checking credentials"
	if err := client.Login(context.Background()); err != nil {
		return cloudns.ShareSummary{}, err
	}

	results := make([]cloudns.ShareResult, 0, len(domains))
	for i, domain := range domains {
		progress <- fmt.Sprintf("Sharing %s with %s (%d/%d)", domain, shareEmail, i+1, len(domains))
		result, err := client.ShareDomain(context.Background(), domain, shareEmail)
		if err != nil {
			return cloudns.ShareSummary{}, err
		}
		results = append(results, result)
	}
	return cloudns.Summarize(results), nil
}

func printShareSummary(summary cloudns.ShareSummary, fetchDuration time.Duration, err error) {
	rb := response.New().Title("Domain Sharing")

	if err != nil {
		rb.Error("Error sharing domains", err).Display()
		return
	}

	if summary.Total == 0 {
		fmt.Println(ui.Warning("No domains to share"))
		return
	}

	rb.Summary("Processed:", summary.Total).
		Summary("Shared:", summary.Shared).
		Summary("Already shared:", summary.AlreadyShared).
		Summary("Failed:", summary.Failed)

	if config.Cfg.Verbose {
		caser := cases.Title(language.English)
		for i, result := range summary.FailedResults {
			content := response.NewItemContent().
				Add("Domain:", ui.Text(result.Domain)).
				Add("Outcome:", ui.Error(caser.String(result.Outcome.String())))
			if result.Detail != "" {
				content.Add("Reason:", ui.Muted(result.Detail))
			}
			rb.AddItem(fmt.Sprintf("Failed %d: %s", i+1, result.Domain), content.String())
		}
	}

	if summary.Failed == 0 {
		rb.FooterSuccess("Shared %d domain(s) with %s in %v", summary.Succeeded(), shareEmail, fetchDuration)
	} else {
		if !config.Cfg.Verbose {
			var failed []string
			for _, result := range summary.FailedResults {
				failed = append(failed, fmt.Sprintf("%s %s", result.Domain, ui.Muted(result.Detail)))
			}
			rb.AddItem("Failed domains", ui.BulletList(failed))
		}
		rb.FooterError("%d of %d domain(s) could not be shared with %s", summary.Failed, summary.Total, shareEmail)
	}

	rb.Display()
}

// resolveDomainSet collects the target domains from arguments or --file.
// Exactly one source must be used.
func resolveDomainSet(args []string, file string) ([]string, error) {
	if len(args) > 0 && file != "" {
		return nil, fmt.Errorf("pass domains as arguments or use --file, not both")
	}
	if file != "" {
		return readDomainsFile(file)
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("no domains given: pass domains as arguments or use --file")
	}
	return parseDomainArgs(args), nil
}

// readDomainsFile loads one domain per line, skipping blank lines.
func readDomainsFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read domains file: %w", err)
	}

	var domains []string
	for _, line := range strings.Split(string(data), "\n") {
		if domain := strings.TrimSpace(line); domain != "" {
			domains = append(domains, domain)
		}
	}
	return domains, nil
}

func isValidEmail(email string) bool {
	if len(email) < 3 {
		return false
	}

	atIndex := -1
	dotIndex := -1

	for i, char := range email {
		if char == '@' {
			if atIndex != -1 {
				return false
			}
			atIndex = i
		} else if char == '.' && atIndex != -1 {
			dotIndex = i
		}
	}

	return atIndex > 0 && dotIndex > atIndex+1 && dotIndex < len(email)-1
}
