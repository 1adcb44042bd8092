package cmd

import (
	"context"
	"os"

	"dario.lol/cdns/internal/cloudns"
	"dario.lol/cdns/internal/ui"
	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Check the configured ClouDNS credentials",
	Long:  "Resolves credentials from flags or CLOUDNS_* environment variables and validates them against the API. Nothing is written to disk.",
	Run:   executeLogin,
}

func init() {
	rootCmd.AddCommand(loginCmd)
}

func executeLogin(cmd *cobra.Command, args []string) {
	client, err := cloudns.NewClient()
	if err != nil {
		println(ui.ErrorBox("Could not resolve credentials.", err))
		os.Exit(1)
	}

	if err := client.Login(context.Background()); err != nil {
		println(ui.ErrorBox("Invalid credentials, could not log in.", err))
		os.Exit(1)
	}

	println(ui.Success("Credentials are valid."))
}
