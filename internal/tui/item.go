package tui

import (
	"fmt"
	"io"

	"github.com/Klea008/bookctl/internal/catalog"
	"github.com/Klea008/bookctl/internal/view"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// bookItem adapts a catalog record to the list component.
type bookItem struct {
	book catalog.Book
}

func (b bookItem) FilterValue() string {
	return fmt.Sprintf("%s %s %s", b.book.Title, b.book.Author, b.book.Genre)
}

// bookDelegate renders one book row. Selection state lives on the
// controller, not the items, so toggles never touch the item slice.
type bookDelegate struct {
	ctrl    *view.Controller
	canEdit bool
}

func (d bookDelegate) Height() int  { return 1 }
func (d bookDelegate) Spacing() int { return 0 }
func (d bookDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd {
	return nil
}

func (d bookDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	bi, ok := item.(bookItem)
	if !ok {
		return
	}
	b := bi.book

	checkbox := ""
	if d.canEdit {
		if d.ctrl.IsSelected(b.ID) {
			checkbox = StyleStock.Render("[✓]") + " "
		} else {
			checkbox = StyleHelp.Render("[ ]") + " "
		}
	}

	title := fmt.Sprintf("%-36.36s", b.Title)
	author := StyleHelp.Render(fmt.Sprintf("%-20.20s", b.Author))
	genreTag := ""
	if b.Genre != "" {
		genreTag = " " + StyleGenre.Render("["+b.Genre+"]")
	}
	stockMark := ""
	if b.Availability == catalog.InStock {
		stockMark = " " + StyleStock.Render("✓")
	}

	row := checkbox + title + " " + author + genreTag + stockMark
	if index == m.Index() {
		_, _ = fmt.Fprint(w, StyleHighlight.Render("› "+row))
	} else {
		_, _ = fmt.Fprint(w, "  "+StyleNormal.Render(row))
	}
}
