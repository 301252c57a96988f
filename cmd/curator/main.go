package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"curator/internal/interfaces/cli/createsuperadmin"
	"curator/internal/interfaces/cli/migrate"
	"curator/internal/interfaces/cli/server"
)

func main() {
	root := &cobra.Command{
		Use:   "curator",
		Short: "Credential authority and knowledge approval service",
	}

	root.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		createsuperadmin.NewCommand(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
