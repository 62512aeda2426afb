package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bulletin/internal/interfaces/cli/migrate"
	"bulletin/internal/interfaces/cli/seed"
	"bulletin/internal/interfaces/cli/server"
	"bulletin/internal/interfaces/cli/token"
	"bulletin/internal/shared/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bulletin",
		Short: "Bulletin - announcements with per-user read tracking",
		Long:  `Bulletin serves announcements to authenticated users and records which ones each user has read.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
		token.NewCommand(),
		newVersionCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Run: func(cmd *cobra.Command, args []string) {
			info := version.Get()
			fmt.Fprintf(cmd.OutOrStdout(), "bulletin %s (%s)\n", info.Version, info.Commit)
		},
	}
}
