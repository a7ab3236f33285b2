package tui

import (
	"context"
	"fmt"

	"github.com/Klea008/bookctl/internal/catalog"
	"github.com/Klea008/bookctl/internal/config"
	"github.com/Klea008/bookctl/internal/view"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Service is everything the browser needs from the API client.
type Service interface {
	view.Service
	ListGenres(ctx context.Context) ([]string, error)
	CreateBook(ctx context.Context, draft catalog.Draft) (catalog.Book, string, error)
	UpdateBook(ctx context.Context, book catalog.Book) (catalog.Book, string, error)
	DeleteBooks(ctx context.Context, ids []string) (string, error)
}

// BrowserOptions configures one browser instance. The original's three
// list pages are this browser with different options.
type BrowserOptions struct {
	Title   string
	View    view.Options
	CanEdit bool // enables add/edit/select/delete
}

// Messages.

type booksMsg view.Result

type genresMsg struct {
	genres []string
	err    error
}

type savedMsg struct {
	book    catalog.Book
	message string
	created bool
	err     error
}

type deletedMsg struct {
	ids     []string
	message string
	err     error
}

type browserModel struct {
	svc  Service
	cfg  *config.Config
	ctrl *view.Controller
	opts BrowserOptions

	list    list.Model
	search  textinput.Model
	spin    spinner.Model
	form    *bookForm
	detail  *catalog.Book
	status  string
	statErr bool

	searching  bool
	confirming bool
	sortIdx    int
	genreIdx   int

	width    int
	height   int
	quitting bool
}

func newBrowser(svc Service, cfg *config.Config, opts BrowserOptions) browserModel {
	if opts.View.PageSize <= 0 {
		opts.View.PageSize = cfg.Defaults.PageSize
	}
	ctrl := view.New(opts.View)

	delegate := bookDelegate{ctrl: ctrl, canEdit: opts.CanEdit}
	l := list.New(nil, delegate, 0, 0)
	l.Title = opts.Title
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	// Filtering is server-side through the search endpoint.
	l.SetFilteringEnabled(false)
	l.Styles.Title = StyleHeader

	search := textinput.New()
	search.Placeholder = "Search books..."
	search.Prompt = "/ "
	search.CharLimit = 100
	search.Width = 40

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return browserModel{
		svc:    svc,
		cfg:    cfg,
		ctrl:   ctrl,
		opts:   opts,
		list:   l,
		search: search,
		spin:   sp,
	}
}

func (m browserModel) Init() tea.Cmd {
	return tea.Batch(
		m.fetchCmd(m.ctrl.Reload()),
		m.genresCmd(),
		m.spin.Tick,
		textinput.Blink,
	)
}

// fetchCmd runs a controller fetch off the event loop. Nothing cancels
// a superseded fetch; the controller's sequence guard drops its result.
func (m browserModel) fetchCmd(f view.Fetch) tea.Cmd {
	if f.Zero() {
		return nil
	}
	svc := m.svc
	return func() tea.Msg {
		return booksMsg(f.Do(context.Background(), svc))
	}
}

func (m browserModel) genresCmd() tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		genres, err := svc.ListGenres(context.Background())
		return genresMsg{genres: genres, err: err}
	}
}

func (m browserModel) saveCmd(id string, draft catalog.Draft) tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		if id == "" {
			book, msg, err := svc.CreateBook(context.Background(), draft)
			return savedMsg{book: book, message: msg, created: true, err: err}
		}
		book := catalog.Book{
			ID:              id,
			Title:           draft.Title,
			Author:          draft.Author,
			Genre:           draft.Genre,
			PublicationYear: draft.PublicationYear,
			CoverImage:      draft.CoverImage,
			Description:     draft.Description,
			Availability:    draft.Availability,
			ISBN:            draft.ISBN,
		}
		updated, msg, err := svc.UpdateBook(context.Background(), book)
		return savedMsg{book: updated, message: msg, err: err}
	}
}

func (m browserModel) deleteCmd(ids []string) tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		msg, err := svc.DeleteBooks(context.Background(), ids)
		return deletedMsg{ids: ids, message: msg, err: err}
	}
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h, v := StyleBorder.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v-6)
		return m, nil

	case booksMsg:
		if m.ctrl.Resolve(view.Result(msg)) {
			m.syncItems()
		}
		return m, nil

	case genresMsg:
		// Fail soft: an error just leaves the genre cycle with "All".
		m.ctrl.SetGenres(msg.genres)
		return m, nil

	case savedMsg:
		return m.handleSaved(msg)

	case deletedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("delete failed: %v", msg.err)
			m.statErr = true
			return m, StatusCmd()
		}
		m.ctrl.ApplyDelete(msg.ids)
		m.syncItems()
		m.status = msg.message
		m.statErr = false
		return m, tea.Batch(m.fetchCmd(m.ctrl.Reload()), StatusCmd())

	case ClearStatusMsg:
		m.status = ""
		m.statErr = false
		return m, nil

	case spinner.TickMsg:
		if !m.ctrl.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.form != nil {
		var cmd tea.Cmd
		*m.form, cmd = m.form.Update(msg)
		return m, cmd
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m browserModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Modal form captures everything while open.
	if m.form != nil {
		return m.updateForm(msg)
	}

	// Detail overlay: any dismiss key closes it.
	if m.detail != nil {
		switch msg.String() {
		case "esc", "enter", "q":
			m.detail = nil
		}
		return m, nil
	}

	// Delete confirmation.
	if m.confirming {
		switch msg.String() {
		case "y", "Y", "enter":
			m.confirming = false
			return m, m.deleteCmd(m.ctrl.Selected())
		case "n", "N", "esc":
			m.confirming = false
		}
		return m, nil
	}

	// Search input captures keys while focused.
	if m.searching {
		switch msg.String() {
		case "esc":
			m.searching = false
			m.search.Blur()
			return m, nil
		case "enter":
			m.searching = false
			m.search.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		before := m.search.Value()
		m.search, cmd = m.search.Update(msg)
		if v := m.search.Value(); v != before {
			// Every keystroke re-resolves, empty falls back to all books.
			return m, tea.Batch(cmd, m.fetchCmd(m.ctrl.SetSearch(v)), m.spin.Tick)
		}
		return m, cmd
	}

	switch {
	case key.Matches(msg, keys.quit):
		m.quitting = true
		return m, tea.Quit

	case msg.String() == "esc":
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, keys.search):
		m.searching = true
		return m, m.search.Focus()

	case key.Matches(msg, keys.genre):
		return m, tea.Batch(m.cycleGenre(), m.spin.Tick)

	case key.Matches(msg, keys.sort):
		if !m.opts.View.Sorting {
			return m, nil
		}
		return m, tea.Batch(m.cycleSort(), m.spin.Tick)

	case key.Matches(msg, keys.toggle):
		if m.opts.CanEdit {
			if bi, ok := m.list.SelectedItem().(bookItem); ok {
				m.ctrl.ToggleSelect(bi.book.ID)
			}
		}
		return m, nil

	case key.Matches(msg, keys.del):
		if m.opts.CanEdit && m.ctrl.SelectionCount() > 0 {
			m.confirming = true
		}
		return m, nil

	case key.Matches(msg, keys.add):
		if m.opts.CanEdit {
			f := newBookForm("", catalog.Draft{Availability: catalog.InStock})
			m.form = &f
			return m, textinput.Blink
		}
		return m, nil

	case key.Matches(msg, keys.edit):
		if m.opts.CanEdit {
			if bi, ok := m.list.SelectedItem().(bookItem); ok {
				f := newBookForm(bi.book.ID, catalog.DraftOf(bi.book))
				m.form = &f
				return m, textinput.Blink
			}
		}
		return m, nil

	case key.Matches(msg, keys.details):
		if bi, ok := m.list.SelectedItem().(bookItem); ok {
			book := bi.book
			m.detail = &book
		}
		return m, nil

	case key.Matches(msg, keys.nextPg):
		if f, ok := m.ctrl.ChangePage(m.ctrl.Page() + 1); ok {
			return m, tea.Batch(m.fetchCmd(f), m.spin.Tick)
		}
		return m, nil

	case key.Matches(msg, keys.prevPg):
		if f, ok := m.ctrl.ChangePage(m.ctrl.Page() - 1); ok {
			return m, tea.Batch(m.fetchCmd(f), m.spin.Tick)
		}
		return m, nil

	case key.Matches(msg, keys.reload):
		return m, tea.Batch(m.fetchCmd(m.ctrl.Reload()), m.genresCmd(), m.spin.Tick)

	case key.Matches(msg, keys.theme):
		m.cfg.Display.Dark = !m.cfg.Display.Dark
		SetDarkMode(m.cfg.Display.Dark)
		_ = config.Save(m.cfg)
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// cycleGenre advances through All plus the fetched genres, issuing one
// fetch for the new filter.
func (m *browserModel) cycleGenre() tea.Cmd {
	genres := m.ctrl.Genres()
	if len(genres) == 0 {
		return m.fetchCmd(m.ctrl.SelectGenre(view.AllGenres))
	}
	cycle := append([]string{view.AllGenres}, genres...)
	m.genreIdx = (m.genreIdx + 1) % len(cycle)
	return m.fetchCmd(m.ctrl.SelectGenre(cycle[m.genreIdx]))
}

// cycleSort alternates title and date ordering within the active genre.
func (m *browserModel) cycleSort() tea.Cmd {
	sortKeys := []string{view.SortByTitle, view.SortByDate}
	f, ok := m.ctrl.SelectSort(sortKeys[m.sortIdx%len(sortKeys)])
	m.sortIdx++
	if !ok {
		return nil
	}
	return m.fetchCmd(f)
}

func (m browserModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	*m.form, cmd = m.form.Update(msg)

	if m.form.canceled {
		m.form = nil
		return m, nil
	}
	if draft := m.form.takeSubmission(); draft != nil {
		return m, m.saveCmd(m.form.bookID, *draft)
	}
	return m, cmd
}

func (m browserModel) handleSaved(msg savedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		// The modal stays open with the failure; list state untouched.
		if m.form != nil {
			m.form.err = msg.err
			m.form.busy = false
		}
		return m, nil
	}
	if msg.created {
		m.ctrl.ApplyAdd(msg.book)
	} else {
		m.ctrl.ApplyUpdate(msg.book)
	}
	m.syncItems()
	m.form = nil
	m.status = msg.message
	m.statErr = false
	// Re-resolve so the new record lands consistent with the active filter.
	return m, tea.Batch(m.fetchCmd(m.ctrl.Reload()), StatusCmd())
}

// syncItems replaces the list contents with the controller's collection.
func (m *browserModel) syncItems() {
	books := m.ctrl.Books()
	items := make([]list.Item, len(books))
	for i, b := range books {
		items[i] = bookItem{book: b}
	}
	m.list.SetItems(items)
}

// RunBrowser launches one interactive list view and blocks until it exits.
func RunBrowser(svc Service, cfg *config.Config, opts BrowserOptions) error {
	SetDarkMode(cfg.Display.Dark)
	m := newBrowser(svc, cfg, opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running browser: %w", err)
	}
	return nil
}
