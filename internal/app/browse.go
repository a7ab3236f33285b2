package app

import (
	"context"
	"fmt"

	"github.com/Klea008/bookctl/internal/catalog"
	"github.com/Klea008/bookctl/internal/tui"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newBrowseCmd() *cobra.Command {
	var (
		genre  string
		search string
		sortBy string
		page   int
		limit  int
	)

	cmd := &cobra.Command{
		Use:     "browse",
		Aliases: []string{"ls"},
		Short:   "Browse the catalog (interactive TUI or text output)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if tui.ShouldUseTUI(cmd) && genre == "" && search == "" && sortBy == "" && page == 0 {
				return tui.RunBrowser(client, cfg, browseOptions())
			}
			return printBooks(cmd.Context(), genre, search, sortBy, page, limit)
		},
	}

	cmd.Flags().StringVar(&genre, "genre", "", "Filter by genre")
	cmd.Flags().StringVar(&search, "search", "", "Full-text search (server-side)")
	cmd.Flags().StringVar(&sortBy, "sort", "", "Sort key (title or date)")
	cmd.Flags().IntVar(&page, "page", 0, "Page number (enables pagination)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Page size (default from config)")
	return cmd
}

// printBooks fetches one listing per the flags and writes it as text.
// Flag combinations pick the same endpoints the views use.
func printBooks(ctx context.Context, genre, search, sortBy string, page, limit int) error {
	if limit <= 0 {
		limit = cfg.Defaults.PageSize
	}

	var (
		books      []catalog.Book
		totalPages int
		err        error
	)

	switch {
	case page > 0 && sortBy != "":
		books, totalPages, err = client.PagedSorted(ctx, genre, sortBy, "desc", page, limit)
	case page > 0 && genre != "":
		books, totalPages, err = client.PagedByGenre(ctx, genre, page, limit)
	case page > 0:
		books, totalPages, err = client.Paged(ctx, page, limit)
	case search != "":
		books, err = client.Search(ctx, search)
	case sortBy != "":
		books, err = client.Sorted(ctx, genre, sortBy, "desc")
	case genre != "":
		books, err = client.ListByGenre(ctx, genre)
	default:
		books, err = client.ListBooks(ctx)
	}
	if err != nil {
		return err
	}

	if len(books) == 0 {
		fmt.Println("No books available")
		return nil
	}

	header("── Books  (%d)", len(books))
	for _, b := range books {
		stockMark := ""
		if b.Availability == catalog.InStock {
			stockMark = color.GreenString(" ✓")
		}
		genreTag := ""
		if b.Genre != "" {
			genreTag = " " + color.CyanString("["+b.Genre+"]")
		}
		fmt.Printf("  %-26s  %-36s %s%s%s\n",
			color.HiBlackString(b.ID),
			b.Title,
			b.Author,
			genreTag,
			stockMark,
		)
	}
	if page > 0 {
		fmt.Printf("\n  page %d of %d\n", page, totalPages)
	}
	return nil
}
