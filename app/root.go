// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "unofitmx",
	Short: "unofitmx is the status and permissions dashboard for the gym management tool",
	Long: `unofitmx is the status and permissions dashboard for the gym management
tool. It serves a role-gated JSON API over a relational store together with
a single page client with role-switchable views.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
