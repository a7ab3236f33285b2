package app

import (
	"fmt"

	"github.com/Klea008/bookctl/internal/catalog"
	"github.com/spf13/cobra"
)

func newEditCmd() *cobra.Command {
	var (
		title       string
		author      string
		genre       string
		year        int
		cover       string
		isbn        string
		description string
		stock       string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Update a book's fields",
		Long: `Update a book. Only the flags you pass change; the rest of the
record is fetched and kept as is.

Example:
  bookctl edit 66f1a2b3 --genre "Science Fiction" --stock out`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := client.GetBook(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("fetching book %s: %w", args[0], err)
			}

			if cmd.Flags().Changed("title") {
				book.Title = title
			}
			if cmd.Flags().Changed("author") {
				book.Author = author
			}
			if cmd.Flags().Changed("genre") {
				book.Genre = genre
			}
			if cmd.Flags().Changed("year") {
				book.PublicationYear = year
			}
			if cmd.Flags().Changed("cover") {
				book.CoverImage = cover
			}
			if cmd.Flags().Changed("isbn") {
				book.ISBN = isbn
			}
			if cmd.Flags().Changed("description") {
				book.Description = description
			}
			if cmd.Flags().Changed("stock") {
				switch stock {
				case "in":
					book.Availability = catalog.InStock
				case "out":
					book.Availability = catalog.OutOfStock
				default:
					return fmt.Errorf("--stock must be 'in' or 'out'")
				}
			}

			if err := catalog.ValidateDraft(catalog.DraftOf(book)); err != nil {
				return err
			}

			updated, msg, err := client.UpdateBook(cmd.Context(), book)
			if err != nil {
				return fmt.Errorf("updating book: %w", err)
			}
			ok("%s", msg)
			printField("id", updated.ID)
			printField("title", updated.Title)
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
	cmd.Flags().StringVar(&stock, "stock", "", "Availability: in or out")
	return cmd
}
