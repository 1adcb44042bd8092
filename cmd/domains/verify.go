package domains

import (
	"context"
	"fmt"
	"strings"
	"time"

	"dario.lol/cdns/internal/cloudns"
	"dario.lol/cdns/internal/config"
	"dario.lol/cdns/internal/executor"
	"dario.lol/cdns/internal/flags"
	"dario.lol/cdns/internal/ui"
	"dario.lol/cdns/internal/ui/response"
	"github.com/spf13/cobra"
)

var verifyEmail string

var verifyCmd = &cobra.Command{
	Use:   "verify <domains...>",
	Short: "Verify domains are shared with an account",
	Long:  "Checks which accounts each domain is shared with. With --email only that account counts; without it, any existing share does.",
	Args:  cobra.MinimumNArgs(1),
	Run: executor.NewBuilder[*cloudns.Client, []cloudns.VerifyResult]().
		Setup("Loading configuration", cloudns.NewClient).
		Fetch("Verifying sharing", runVerifyBatch).
		Display(printVerifyResults).
		Build().
		CobraRun(),
}

func init() {
	flags.RegisterEmail(verifyCmd, &verifyEmail, "Email of the account to check for")
	DomainsCmd.AddCommand(verifyCmd)
}

func runVerifyBatch(client *cloudns.Client, _ *cobra.Command, args []string, progress chan<- string) ([]cloudns.VerifyResult, error) {
	domains := parseDomainArgs(args)
	if len(domains) == 0 {
		return nil, nil
	}

	progress <- "Checking credentials"
	if err := client.Login(context.Background()); err != nil {
		return nil, err
	}

	results := make([]cloudns.VerifyResult, 0, len(domains))
	for i, domain := range domains {
		progress <- fmt.Sprintf("Verifying %s (%d/%d)", domain, i+1, len(domains))
		result, err := client.VerifySharing(context.Background(), domain, verifyEmail)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

func printVerifyResults(results []cloudns.VerifyResult, fetchDuration time.Duration, err error) {
	rb := response.New().Title("Sharing Verification")

	if err != nil {
		rb.Error("Error verifying domains", err).Display()
		return
	}

	if len(results) == 0 {
		fmt.Println(ui.Warning("No domains to verify"))
		return
	}

	shared := 0
	var notShared []cloudns.VerifyResult
	for _, result := range results {
		if result.Shared {
			shared++
		} else {
			notShared = append(notShared, result)
		}
	}

	rb.Summary("Checked:", len(results)).
		Summary("Shared:", shared).
		Summary("Not shared:", len(notShared))

	subject := "shared"
	if target := strings.TrimSpace(verifyEmail); target != "" {
		subject = "shared with " + target
		rb.Summary("Account:", target)
	}

	if config.Cfg.Verbose {
		for i, result := range results {
			content := response.NewItemContent()
			if result.Shared {
				content.Add("Status:", ui.Success("Shared"))
			} else {
				content.Add("Status:", ui.Error("Not shared"))
			}
			if len(result.Emails) > 0 {
				content.Add("Accounts:", ui.Small(strings.Join(result.Emails, ", ")))
			} else if result.Detail != "" {
				content.Add("Detail:", ui.Muted(result.Detail))
			}
			rb.AddItem(fmt.Sprintf("Domain %d: %s", i+1, result.Domain), content.String())
		}
	} else if len(notShared) > 0 {
		var entries []string
		for _, result := range notShared {
			entry := result.Domain
			if result.Detail != "" {
				entry += " " + ui.Muted(result.Detail)
			}
			entries = append(entries, entry)
		}
		rb.AddItem("Not shared", ui.BulletList(entries))
	}

	if len(notShared) == 0 {
		rb.FooterSuccess("All %d domain(s) are %s in %v", len(results), subject, fetchDuration)
	} else {
		rb.FooterError("%d of %d domain(s) are not %s", len(notShared), len(results), subject)
	}

	rb.Display()
}
