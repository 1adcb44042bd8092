package domains

import (
	"strings"

	"github.com/spf13/cobra"
)

var DomainsCmd = &cobra.Command{
	Use:   "domains",
	Short: "List, share and verify ClouDNS domains",
}

// parseDomainArgs flattens positional arguments into domain names. Each
// argument may hold several comma-separated domains; blanks are dropped.
func parseDomainArgs(args []string) []string {
	var domains []string
	for _, arg := range args {
		for _, part := range strings.Split(arg, ",") {
			if domain := strings.TrimSpace(part); domain != "" {
				domains = append(domains, domain)
			}
		}
	}
	return domains
}
