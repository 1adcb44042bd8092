package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"dario.lol/cdns/internal/constants"
	"dario.lol/cdns/internal/flags"
	"dario.lol/cdns/internal/ui"
	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:     "cdns",
	Short:   fmt.Sprintf("CLI to share ClouDNS domains version %s", constants.Version),
	Long:    ``,
	Version: constants.Version,
}

func init() {
	rootCmd.PersistentFlags().String(flags.AuthIDFlag, "", "ClouDNS API auth ID (or CLOUDNS_AUTH_ID)")
	rootCmd.PersistentFlags().String(flags.AuthPasswordFlag, "", "ClouDNS API auth password (or CLOUDNS_AUTH_PASSWORD)")
	rootCmd.PersistentFlags().BoolP(flags.VerboseFlag, "v", false, "Show per-domain details and debug logging")

	_ = viper.BindPFlag("auth_id", rootCmd.PersistentFlags().Lookup(flags.AuthIDFlag))
	_ = viper.BindPFlag("auth_password", rootCmd.PersistentFlags().Lookup(flags.AuthPasswordFlag))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup(flags.VerboseFlag))
}

func configureColorScheme(_ lipgloss.LightDarkFunc) fang.ColorScheme {
	return ui.FangTheme()
}

func Execute() {
	if err := fang.Execute(context.Background(), rootCmd, fang.WithErrorHandler(func(w io.Writer, styles fang.Styles, err error) {}), fang.WithColorSchemeFunc(configureColorScheme), fang.WithVersion(constants.Version)); err != nil {
		println(ui.ErrorBox("Error executing command", err))
		os.Exit(1)
	}
}
