package app

import (
	"fmt"

	"github.com/Klea008/bookctl/internal/util"
	"github.com/spf13/cobra"
)

func newDeleteCmd() *cobra.Command {
	var skipConfirm bool

	cmd := &cobra.Command{
		Use:   "delete <id> [<id>...]",
		Short: "Delete one or more books",
		Long: `Delete books from the catalog.

A single id uses the single-delete endpoint; several ids go through one
batch call.

Examples:
  bookctl delete 66f1a2b3
  bookctl delete 66f1a2b3 66f1a2b4 66f1a2b5 --yes`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !skipConfirm && util.IsTTY() {
				fmt.Printf("Delete %d book(s)? (y/N): ", len(args))
				var response string
				_, _ = fmt.Scanln(&response)
				if response != "y" && response != "Y" && response != "yes" {
					fmt.Println("Cancelled.")
					return nil
				}
			}

			var (
				msg string
				err error
			)
			if len(args) == 1 {
				msg, err = client.DeleteBook(cmd.Context(), args[0])
			} else {
				msg, err = client.DeleteBooks(cmd.Context(), args)
			}
			if err != nil {
				return fmt.Errorf("deleting: %w", err)
			}
			ok("%s", msg)
			return nil
		},
	}

	cmd.Flags().BoolVar(&skipConfirm, "yes", false, "Skip the confirmation prompt")
	return cmd
}
