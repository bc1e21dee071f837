package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var versionString = "dev"

// NewRootCmd builds the storefront command tree.
func NewRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "storefront",
		Short: "AB Dentaire storefront server and terminal client",
		Long: `storefront serves the dental catalog as read-only JSON and browses it
from the terminal, with a cart kept on this device.`,
		Version: versionString,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", os.Getenv("STOREFRONT_CONFIG"), "path to storefront.yml")

	opts := &rootOptions{configPath: &configPath}
	root.AddCommand(
		newServeCmd(opts),
		newItemsCmd(opts),
		newItemCmd(opts),
		newCartCmd(opts),
		newCurrencyCmd(opts),
	)
	return root
}

type rootOptions struct {
	configPath *string
}

// Execute runs the command tree and prints failures in red.
func Execute() error {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		printError(root.ErrOrStderr(), err)
		return err
	}
	return nil
}

func SetVersionInfo(version, commit string) {
	versionString = fmt.Sprintf("%s (commit: %s)", version, commit)
}
