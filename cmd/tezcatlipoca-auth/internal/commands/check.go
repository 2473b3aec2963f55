package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/tezcatlipoca/tezcatlipoca-auth/internal/domain/bans"
)

// ErrBannedAddress is returned by check when at least one address is banned.
var ErrBannedAddress = errors.New("one or more addresses are banned")

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <ip>...",
		Short: "Check addresses against the configured ban list",
		Long: `check loads the configured ban source once and prints "<ip> banned" or
"<ip> allowed" for every argument. The exit status is non-zero if any address is banned.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			log, err := setupCLILogger(cfg.Logger)
			if err != nil {
				return err
			}

			source, closeSource, err := buildBanSource(cfg, log)
			if err != nil {
				return err
			}
			defer func() { _ = closeSource() }()

			entries, err := source.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to load bans from %s: %w", source.Name(), err)
			}

			list := bans.NewBanList(entries, time.Now())
			banned := false
			for _, ip := range args {
				verdict := "allowed"
				if list.Contains(ip) {
					verdict = "banned"
					banned = true
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ip, verdict)
			}

			if banned {
				return ErrBannedAddress
			}
			return nil
		},
	}
}
