package app

import (
	"fmt"

	"github.com/Klea008/bookctl/internal/catalog"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <id>",
		Short: "Show one book's record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := client.GetBook(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("fetching book %s: %w", args[0], err)
			}

			header("Book: %s", book.ID)
			printField("title", book.Title)
			printField("author", book.Author)
			printField("genre", book.Genre)
			if book.PublicationYear != 0 {
				printField("year", fmt.Sprintf("%d", book.PublicationYear))
			}
			printField("isbn", book.ISBN)
			if book.Availability == catalog.InStock {
				printField("stock", color.GreenString(string(book.Availability)))
			} else {
				printField("stock", color.RedString(string(book.Availability)))
			}
			printField("cover", book.CoverImage)
			printField("description", book.Description)
			return nil
		},
	}
}

func newGenresCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "genres",
		Short: "List the catalog's genres",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			genres, err := client.ListGenres(cmd.Context())
			if err != nil {
				return err
			}
			if len(genres) == 0 {
				fmt.Println("No genres")
				return nil
			}
			header("── Genres  (%d)", len(genres))
			for _, g := range genres {
				fmt.Printf("  %s\n", g)
			}
			return nil
		},
	}
}
