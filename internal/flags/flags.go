package flags

import "github.com/spf13/cobra"

const (
	AuthIDFlag       = "auth-id"
	AuthPasswordFlag = "auth-password"
	EmailFlag        = "email"
	FileFlag         = "file"
	OutputFileFlag   = "output-file"
	VerboseFlag      = "verbose"
)

func RegisterEmail(cmd *cobra.Command, target *string, usage string) {
	cmd.Flags().StringVarP(target, EmailFlag, "e", "", usage)
}

func RegisterDomainsFile(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, FileFlag, "f", "", "Read domains from a file, one per line")
}

func RegisterOutputFile(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, OutputFileFlag, "o", "", "Write the domain list to a file, one domain per line")
}
