package tui

import (
	"fmt"
	"strings"

	"github.com/Klea008/bookctl/internal/view"
)

func (m browserModel) View() string {
	if m.quitting {
		return ""
	}
	if m.form != nil {
		return m.form.View()
	}
	if m.detail != nil {
		return m.detailView()
	}

	var b strings.Builder

	// Mode line: active filter, sort, search, page.
	var parts []string
	parts = append(parts, StyleGenre.Render("genre: "+m.ctrl.Genre()))
	if m.ctrl.Mode() == view.ModeSorted {
		parts = append(parts, StyleGenre.Render("sort: "+m.ctrl.SortKey()+" desc"))
	}
	if m.ctrl.Mode() == view.ModeSearch {
		parts = append(parts, StyleGenre.Render("search: "+m.ctrl.Query()))
	}
	if m.opts.View.Pagination {
		parts = append(parts, fmt.Sprintf("page %d of %d", m.ctrl.Page(), m.ctrl.TotalPages()))
	}
	if m.opts.CanEdit && m.ctrl.SelectionCount() > 0 {
		parts = append(parts, StyleHighlight.Render(fmt.Sprintf("%d selected", m.ctrl.SelectionCount())))
	}
	b.WriteString(StyleHeader.Render(m.opts.Title))
	b.WriteString("  ")
	b.WriteString(StyleHelp.Render(strings.Join(parts, "  ·  ")))
	b.WriteString("\n")

	if m.searching {
		b.WriteString(m.search.View())
		b.WriteString("\n")
	}

	if m.ctrl.Loading() {
		b.WriteString(m.spin.View())
		b.WriteString(StyleHelp.Render(" loading..."))
		b.WriteString("\n")
	} else if len(m.ctrl.Books()) == 0 {
		b.WriteString(StyleHelp.Render("No books available"))
		b.WriteString("\n")
	}

	b.WriteString(m.list.View())
	b.WriteString("\n")

	if m.confirming {
		b.WriteString(StyleHighlight.Render(fmt.Sprintf("  Delete %d selected book(s)? ", m.ctrl.SelectionCount())))
		b.WriteString(StyleHelp.Render("Y/n"))
	} else if m.status != "" {
		if m.statErr {
			b.WriteString(StyleError.Render(m.status))
		} else {
			b.WriteString(StyleStock.Render("✓ " + m.status))
		}
	} else {
		b.WriteString(m.footerBar())
	}
	b.WriteString("\n")

	return StyleBorder.Render(b.String())
}

func (m browserModel) footerBar() string {
	shortcuts := []ShortcutEntry{
		{Key: "/", Label: "/ search"},
		{Key: "g", Label: "g genre"},
	}
	if m.opts.View.Sorting {
		shortcuts = append(shortcuts, ShortcutEntry{Key: "s", Label: "s sort"})
	}
	if m.opts.View.Pagination {
		shortcuts = append(shortcuts, ShortcutEntry{Key: "", Label: "←/→ page"})
	}
	if m.opts.CanEdit {
		shortcuts = append(shortcuts,
			ShortcutEntry{Key: " ", Label: "space select"},
			ShortcutEntry{Key: "a", Label: "a add"},
			ShortcutEntry{Key: "e", Label: "e edit"},
			ShortcutEntry{Key: "d", Label: "d delete"},
		)
	}
	shortcuts = append(shortcuts,
		ShortcutEntry{Key: "t", Label: "t theme"},
		ShortcutEntry{Key: "q", Label: "q quit"},
	)
	return RenderFooterBar(shortcuts, "")
}

func (m browserModel) detailView() string {
	b := m.detail
	var s strings.Builder
	s.WriteString(StyleHeader.Render(b.Title))
	s.WriteString("\n\n")
	field := func(name, value string) {
		if value == "" {
			return
		}
		s.WriteString(StyleHelp.Render(fmt.Sprintf("%12s  ", name)))
		s.WriteString(StyleNormal.Render(value))
		s.WriteString("\n")
	}
	field("author", b.Author)
	field("genre", b.Genre)
	if b.PublicationYear != 0 {
		field("year", fmt.Sprintf("%d", b.PublicationYear))
	}
	field("isbn", b.ISBN)
	field("availability", string(b.Availability))
	field("cover", b.CoverImage)
	field("description", b.Description)
	s.WriteString("\n")
	s.WriteString(StyleHelp.Render("esc close"))
	return StyleBorder.Render(s.String())
}
