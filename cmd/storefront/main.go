package main

import (
	"os"

	"goflare.io/storefront/cmd/storefront/commands"
)

// Version information - set during build
var (
	version = "dev"
	commit  = "none"
)

func main() {
	commands.SetVersionInfo(version, commit)

	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
