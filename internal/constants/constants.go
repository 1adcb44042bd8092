package constants

// Version is overridden at build time via -ldflags.
var Version = "dev"

const (
	AppName    = "cdns"
	ProjectURL = "https://github.com/dajooo/cloudns-cli"
)
