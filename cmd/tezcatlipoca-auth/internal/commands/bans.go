package commands

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/tezcatlipoca/tezcatlipoca-auth/internal/app"
	"github.com/tezcatlipoca/tezcatlipoca-auth/internal/domain/bans"
	"github.com/tezcatlipoca/tezcatlipoca-auth/internal/pkg/logger"
)

// BanCommandHandler manages the database ban source from the CLI.
type BanCommandHandler struct {
	banAdminService bans.BanAdminService
	closeDB         func() error
	logger          logger.Logger
}

// NewBanCommandHandler opens the configured database and wraps it in a BanAdminService.
func NewBanCommandHandler(cmd *cobra.Command) (*BanCommandHandler, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	if err := cfg.Database.Validate(); err != nil {
		return nil, err
	}

	log, err := setupCLILogger(cfg.Logger)
	if err != nil {
		return nil, err
	}

	repo, closeDB, err := openBanRepository(cfg.Database, log)
	if err != nil {
		return nil, err
	}

	banAdminService, err := app.NewBanAdminService(repo, log)
	if err != nil {
		_ = closeDB()
		return nil, fmt.Errorf("failed to create ban admin service: %w", err)
	}

	return &BanCommandHandler{
		banAdminService: banAdminService,
		closeDB:         closeDB,
		logger:          log,
	}, nil
}

// Close releases the database connection
func (h *BanCommandHandler) Close() error {
	return h.closeDB()
}

// AddBanCmd validates and stores a ban
func (h *BanCommandHandler) AddBanCmd(cmd *cobra.Command, args []string) error {
	reason, err := cmd.Flags().GetString("reason")
	if err != nil {
		return fmt.Errorf("invalid reason flag: %w", err)
	}

	entry, err := h.banAdminService.Add(cmd.Context(), args[0], reason)
	if err != nil {
		return err
	}

	h.logger.Info("Banned ", entry.Address)
	fmt.Fprintln(cmd.OutOrStdout(), entry.Address)
	return nil
}

// RemoveBanCmd deletes a ban
func (h *BanCommandHandler) RemoveBanCmd(cmd *cobra.Command, args []string) error {
	if err := h.banAdminService.Remove(cmd.Context(), args[0]); err != nil {
		return err
	}

	h.logger.Info("Unbanned ", args[0])
	return nil
}

// ListBansCmd prints every stored ban as a table
func (h *BanCommandHandler) ListBansCmd(cmd *cobra.Command, _ []string) error {
	entries, err := h.banAdminService.List(cmd.Context())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ADDRESS\tCREATED\tREASON")
	for _, entry := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\n", entry.Address, entry.DateTimeCreated.Format(time.RFC3339), entry.Reason)
	}
	return w.Flush()
}

func withBanHandler(run func(*BanCommandHandler, *cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		handler, err := NewBanCommandHandler(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = handler.Close() }()

		return run(handler, cmd, args)
	}
}

func newBansCommand() *cobra.Command {
	bansCmd := &cobra.Command{
		Use:   "bans",
		Short: "Manage bans stored in the database source",
	}

	addCmd := &cobra.Command{
		Use:   "add <ip|cidr>",
		Short: "Ban an address or prefix",
		Args:  cobra.ExactArgs(1),
		RunE:  withBanHandler((*BanCommandHandler).AddBanCmd),
	}
	addCmd.Flags().String("reason", "", "Why the address is banned")

	removeCmd := &cobra.Command{
		Use:   "remove <ip|cidr>",
		Short: "Lift a ban",
		Args:  cobra.ExactArgs(1),
		RunE:  withBanHandler((*BanCommandHandler).RemoveBanCmd),
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List stored bans",
		Args:  cobra.NoArgs,
		RunE:  withBanHandler((*BanCommandHandler).ListBansCmd),
	}

	bansCmd.AddCommand(addCmd, removeCmd, listCmd)
	return bansCmd
}
