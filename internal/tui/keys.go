package tui

import "github.com/charmbracelet/bubbles/key"

// browserKeys defines the keyboard shortcuts of the book browser.
type browserKeys struct {
	quit    key.Binding
	details key.Binding
	search  key.Binding
	genre   key.Binding
	sort    key.Binding
	toggle  key.Binding
	add     key.Binding
	edit    key.Binding
	del     key.Binding
	nextPg  key.Binding
	prevPg  key.Binding
	reload  key.Binding
	theme   key.Binding
}

var keys = browserKeys{
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	details: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "details"),
	),
	search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	genre: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "genre"),
	),
	sort: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "sort"),
	),
	toggle: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "select"),
	),
	add: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add"),
	),
	edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit"),
	),
	del: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete selected"),
	),
	nextPg: key.NewBinding(
		key.WithKeys("right", "n"),
		key.WithHelp("→", "next page"),
	),
	prevPg: key.NewBinding(
		key.WithKeys("left", "p"),
		key.WithHelp("←", "prev page"),
	),
	reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	theme: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "dark/light"),
	),
}
