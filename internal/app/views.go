package app

import (
	"fmt"

	"github.com/Klea008/bookctl/internal/tui"
	"github.com/spf13/cobra"
)

func newListsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lists",
		Short: "Browse the catalog by genre",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !tui.ShouldUseTUI(cmd) {
				return printBooks(cmd.Context(), "", "", "", 0, 0)
			}
			return tui.RunBrowser(client, cfg, listsOptions())
		},
	}
}

func newManageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "manage",
		Short: "Manage books: add, edit, select and delete",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLogin(cmd, false); err != nil {
				return err
			}
			return tui.RunBrowser(client, cfg, manageOptions())
		},
	}
}

func newPagedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "paged",
		Short: "Manage the catalog page by page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLogin(cmd, true); err != nil {
				return err
			}
			return tui.RunBrowser(client, cfg, pagedOptions())
		},
	}
}

// requireLogin resolves the session and enforces the route gate.
func requireLogin(cmd *cobra.Command, admin bool) error {
	store.CheckAuth(cmd.Context())
	if !store.Authenticated() {
		return fmt.Errorf("not logged in, run 'bookctl login' first")
	}
	if admin && !store.IsAdmin() {
		return fmt.Errorf("this view requires an admin account")
	}
	return nil
}
