package cmd

import "dario.lol/cdns/cmd/domains"

func init() {
	rootCmd.AddCommand(domains.DomainsCmd)
}
