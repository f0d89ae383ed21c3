package main

import (
	"os"

	"github.com/spf13/cobra"

	"campusdesk/internal/interfaces/cli/migrate"
	"campusdesk/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "campusdesk",
		Short: "CampusDesk - university issue tracking service",
		Long:  `CampusDesk is a university issue tracking service with built-in server and migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
