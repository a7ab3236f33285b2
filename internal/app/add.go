package app

import (
	"fmt"

	"github.com/Klea008/bookctl/internal/catalog"
	"github.com/spf13/cobra"
)

func newAddCmd() *cobra.Command {
	var (
		title       string
		author      string
		genre       string
		year        int
		cover       string
		isbn        string
		description string
		outOfStock  bool
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a book to the catalog",
		Long: `Add a book to the catalog.

All fields are required; the service assigns the identifier.

Example:
  bookctl add --title "Dune" --author "Frank Herbert" --genre Sci-Fi \
    --year 1965 --cover https://example.com/dune.jpg --isbn 9780441172719 \
    --description "Melange and machinations on Arrakis"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			availability := catalog.InStock
			if outOfStock {
				availability = catalog.OutOfStock
			}
			draft := catalog.Draft{
				Title:           title,
				Author:          author,
				Genre:           genre,
				PublicationYear: year,
				CoverImage:      cover,
				Description:     description,
				Availability:    availability,
				ISBN:            isbn,
			}
			if err := catalog.ValidateDraft(draft); err != nil {
				return err
			}

			book, msg, err := client.CreateBook(cmd.Context(), draft)
			if err != nil {
				return fmt.Errorf("adding book: %w", err)
			}
			ok("%s", msg)
			printField("id", book.ID)
			printField("title", book.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Book title")
	cmd.Flags().StringVar(&author, "author", "", "Author name")
	cmd.Flags().StringVar(&genre, "genre", "", "Genre")
	cmd.Flags().IntVar(&year, "year", 0, "Publication year")
	cmd.Flags().StringVar(&cover, "cover", "", "Cover image URL")
	cmd.Flags().StringVar(&isbn, "isbn", "", "ISBN")
	cmd.Flags().StringVar(&description, "description", "", "Description")
	cmd.Flags().BoolVar(&outOfStock, "out-of-stock", false, "Mark the book out of stock")
	return cmd
}
