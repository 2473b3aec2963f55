// Package main is the entry point for tezcatlipoca-auth.
// Without a sub-command it serves the ForwardAuth endpoint; the check and bans
// sub-commands inspect and manage the ban list.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tezcatlipoca/tezcatlipoca-auth/cmd/tezcatlipoca-auth/internal/commands"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "tezcatlipoca-auth",
		Short: "IP ban gate for Traefik ForwardAuth",
		Long: `tezcatlipoca-auth answers Traefik ForwardAuth requests.
Requests from banned client addresses get 403 Forbidden, everything else 200 OK.

The ban list is read from a file, a database or a redis set, selected by BAN_SOURCE.
Configuration comes from the environment and an optional .env file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	if err := commands.InitCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, commands.ErrBannedAddress) {
			return err
		}
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}
