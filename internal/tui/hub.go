package tui

import (
	"fmt"
	"io"

	"github.com/Klea008/bookctl/internal/api"
	"github.com/Klea008/bookctl/internal/session"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MenuItem represents a destination in the hub menu.
type MenuItem struct {
	Key         string
	Label       string
	Description string
}

// FilterValue implements list.Item
func (m MenuItem) FilterValue() string {
	return m.Label + " " + m.Description
}

// HubContext carries the session state the menu is gated on.
type HubContext struct {
	User   *api.User
	Notice string
}

// menuFor builds the destination list for the current session state:
// anonymous users get login/signup, customers the read views, admins
// the management views on top.
func menuFor(user *api.User) []MenuItem {
	items := []MenuItem{
		{Key: "browse", Label: "Explore Books", Description: "Browse, filter and sort the catalog"},
		{Key: "lists", Label: "Genres", Description: "Browse by genre"},
	}

	switch {
	case user == nil:
		items = append(items,
			MenuItem{Key: "login", Label: "Login", Description: "Sign in to your account"},
			MenuItem{Key: "signup", Label: "Sign Up", Description: "Create an account"},
		)
	case user.Role == session.RoleAdmin:
		items = append(items,
			MenuItem{Key: "manage", Label: "Manage Books", Description: "Add, edit and delete books"},
			MenuItem{Key: "paged", Label: "Paged Management", Description: "Manage the catalog page by page"},
			MenuItem{Key: "logout", Label: "Logout", Description: "End your session"},
		)
	default:
		items = append(items,
			MenuItem{Key: "logout", Label: "Logout", Description: "End your session"},
		)
	}

	items = append(items, MenuItem{Key: "quit", Label: "Quit", Description: "Exit bookctl"})
	return items
}

func renderMenuItem(w io.Writer, m list.Model, index int, item list.Item) {
	menuItem, ok := item.(MenuItem)
	if !ok {
		return
	}

	display := fmt.Sprintf("%-20s %s", menuItem.Label, StyleHelp.Render(menuItem.Description))
	if index == m.Index() {
		_, _ = fmt.Fprint(w, StyleHighlight.Render("› "+display))
	} else {
		_, _ = fmt.Fprint(w, "  "+StyleNormal.Render(display))
	}
}

type menuDelegate struct{}

func (d menuDelegate) Height() int  { return 1 }
func (d menuDelegate) Spacing() int { return 0 }
func (d menuDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd {
	return nil
}
func (d menuDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	renderMenuItem(w, m, index, item)
}

type hubKeys struct {
	quit       key.Binding
	selectItem key.Binding
}

var hubKeyMap = hubKeys{
	quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	selectItem: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
}

type hubModel struct {
	list     list.Model
	ctx      HubContext
	action   string
	quitting bool
}

func (m hubModel) Init() tea.Cmd {
	return nil
}

func (m hubModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, hubKeyMap.quit):
			m.quitting = true
			m.action = "quit"
			return m, tea.Quit
		case key.Matches(msg, hubKeyMap.selectItem):
			if item, ok := m.list.SelectedItem().(MenuItem); ok {
				m.action = item.Key
				m.quitting = true
				return m, tea.Quit
			}
		}
	case tea.WindowSizeMsg:
		h, v := StyleBorder.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v-4)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m hubModel) View() string {
	if m.quitting {
		return ""
	}

	header := StyleHeader.Render("bookctl")
	sub := StyleHelp.Render("Anonymous")
	if m.ctx.User != nil {
		sub = StyleHelp.Render(fmt.Sprintf("%s (%s)", m.ctx.User.Email, m.ctx.User.Role))
	}
	notice := ""
	if m.ctx.Notice != "" {
		notice = "\n" + StyleStock.Render("✓ "+m.ctx.Notice)
	}

	body := lipgloss.JoinVertical(lipgloss.Left, header+"  "+sub+notice, "", m.list.View())
	return StyleBorder.Render(body)
}

// RunHub shows the destination menu and returns the chosen action key.
func RunHub(ctx HubContext) (string, error) {
	items := menuFor(ctx.User)
	listItems := make([]list.Item, len(items))
	for i, it := range items {
		listItems[i] = it
	}

	l := list.New(listItems, menuDelegate{}, 0, 0)
	l.Title = "What would you like to do?"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = StyleHeader

	m := hubModel{list: l, ctx: ctx}
	p := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("running hub: %w", err)
	}
	if fm, ok := finalModel.(hubModel); ok && fm.action != "" {
		return fm.action, nil
	}
	return "quit", nil
}
