package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Klea008/bookctl/internal/catalog"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	fieldTitle = iota
	fieldAuthor
	fieldGenre
	fieldYear
	fieldCover
	fieldISBN
	fieldDescription
	fieldAvailability
	fieldCount
)

var formLabels = []string{
	"Title", "Author", "Genre", "Year", "Cover URL", "ISBN", "Description", "Stock",
}

// bookForm is the add/update modal. bookID is empty in add mode and the
// target identifier in update mode.
type bookForm struct {
	bookID  string
	inputs  []textinput.Model
	inStock bool
	focused int

	confirming bool
	busy       bool
	canceled   bool
	submission *catalog.Draft
	err        error
}

func newBookForm(bookID string, defaults catalog.Draft) bookForm {
	f := bookForm{
		bookID:  bookID,
		inputs:  make([]textinput.Model, fieldCount-1),
		inStock: defaults.Availability != catalog.OutOfStock,
	}

	const fieldWidth = 42

	mk := func(idx int, placeholder, value string, limit int) {
		in := textinput.New()
		in.Placeholder = placeholder
		in.SetValue(value)
		in.CharLimit = limit
		in.Width = fieldWidth
		in.Prompt = "│ "
		f.inputs[idx] = in
	}

	mk(fieldTitle, "Book title", defaults.Title, 200)
	mk(fieldAuthor, "Author name", defaults.Author, 100)
	mk(fieldGenre, "Genre", defaults.Genre, 60)
	year := ""
	if defaults.PublicationYear > 0 {
		year = strconv.Itoa(defaults.PublicationYear)
	}
	mk(fieldYear, "2024", year, 4)
	f.inputs[fieldYear].Width = 8
	mk(fieldCover, "https://...", defaults.CoverImage, 300)
	mk(fieldISBN, "ISBN", defaults.ISBN, 20)
	mk(fieldDescription, "Short description", defaults.Description, 500)

	f.inputs[fieldTitle].Focus()
	return f
}

// takeSubmission returns the validated draft once, after a confirmed
// submit, and marks the form busy while the request is in flight.
func (f *bookForm) takeSubmission() *catalog.Draft {
	d := f.submission
	if d != nil {
		f.submission = nil
		f.busy = true
	}
	return d
}

func (f bookForm) draft() (catalog.Draft, error) {
	year := 0
	if s := f.inputs[fieldYear].Value(); s != "" {
		y, err := strconv.Atoi(s)
		if err != nil || y < 0 || y > 9999 {
			return catalog.Draft{}, fmt.Errorf("invalid year (must be 0-9999)")
		}
		year = y
	}
	avail := catalog.InStock
	if !f.inStock {
		avail = catalog.OutOfStock
	}
	d := catalog.Draft{
		Title:           f.inputs[fieldTitle].Value(),
		Author:          f.inputs[fieldAuthor].Value(),
		Genre:           f.inputs[fieldGenre].Value(),
		PublicationYear: year,
		CoverImage:      f.inputs[fieldCover].Value(),
		Description:     f.inputs[fieldDescription].Value(),
		Availability:    avail,
		ISBN:            f.inputs[fieldISBN].Value(),
	}
	if err := catalog.ValidateDraft(d); err != nil {
		return catalog.Draft{}, err
	}
	return d, nil
}

func (f bookForm) Update(msg tea.Msg) (bookForm, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return f.updateInputs(msg)
	}
	if f.busy {
		// A request is in flight; only cancel is allowed.
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			f.canceled = true
		}
		return f, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "esc":
		f.canceled = true
		return f, nil

	case "enter":
		if f.confirming {
			return f.submit()
		}
		if _, err := f.draft(); err != nil {
			f.err = err
			return f, nil
		}
		f.err = nil
		f.confirming = true
		return f, nil

	case "y", "Y":
		if f.confirming {
			return f.submit()
		}

	case "n", "N":
		if f.confirming {
			f.confirming = false
			return f, nil
		}

	case " ", "left", "right":
		if !f.confirming && f.focused == fieldAvailability {
			f.inStock = !f.inStock
			return f, nil
		}

	case "tab", "shift+tab", "up", "down":
		if f.confirming {
			return f, nil
		}
		if keyMsg.String() == "up" || keyMsg.String() == "shift+tab" {
			f.focused--
		} else {
			f.focused++
		}
		if f.focused < 0 {
			f.focused = fieldCount - 1
		} else if f.focused >= fieldCount {
			f.focused = 0
		}
		cmds := make([]tea.Cmd, 0, len(f.inputs))
		for i := range f.inputs {
			if i == f.focused {
				cmds = append(cmds, f.inputs[i].Focus())
			} else {
				f.inputs[i].Blur()
			}
		}
		return f, tea.Batch(cmds...)
	}

	return f.updateInputs(msg)
}

func (f bookForm) submit() (bookForm, tea.Cmd) {
	d, err := f.draft()
	if err != nil {
		f.err = err
		f.confirming = false
		return f, nil
	}
	f.confirming = false
	f.submission = &d
	return f, nil
}

func (f bookForm) updateInputs(msg tea.Msg) (bookForm, tea.Cmd) {
	cmds := make([]tea.Cmd, len(f.inputs))
	for i := range f.inputs {
		f.inputs[i], cmds[i] = f.inputs[i].Update(msg)
	}
	return f, tea.Batch(cmds...)
}

func (f bookForm) View() string {
	outerStyle := lipgloss.NewStyle().Padding(2, 4)
	sepStyle := lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#D0D0D0", Dark: "#444444"})
	formLabel := lipgloss.NewStyle().
		Foreground(ColorGray).
		Width(13).
		Align(lipgloss.Right).
		PaddingRight(1)
	formLabelActive := lipgloss.NewStyle().
		Foreground(ColorYellow).
		Bold(true).
		Width(13).
		Align(lipgloss.Right).
		PaddingRight(1)

	const w = 60
	sep := sepStyle.Render(strings.Repeat("─", w))

	var b strings.Builder

	if f.bookID == "" {
		b.WriteString(StyleHeader.Render("Add Book"))
	} else {
		b.WriteString(StyleHeader.Render("Update Book"))
		b.WriteString("\n")
		b.WriteString(StyleHelp.Render(f.bookID))
	}
	b.WriteString("\n\n")
	b.WriteString(sep)
	b.WriteString("\n\n")

	if f.err != nil {
		b.WriteString(StyleError.Render(fmt.Sprintf("Error: %v", f.err)))
		b.WriteString("\n\n")
	}

	for i, label := range formLabels {
		if i == f.focused && !f.confirming {
			b.WriteString(formLabelActive.Render("› " + label))
		} else {
			b.WriteString(formLabel.Render(label))
		}
		if i == fieldAvailability {
			if f.inStock {
				b.WriteString(StyleStock.Render("● In Stock"))
				b.WriteString(StyleHelp.Render("  ○ Out of Stock"))
			} else {
				b.WriteString(StyleHelp.Render("○ In Stock  "))
				b.WriteString(StyleHighlight.Render("● Out of Stock"))
			}
		} else {
			b.WriteString(f.inputs[i].View())
		}
		b.WriteString("\n\n")
	}

	b.WriteString(sep)
	b.WriteString("\n")

	switch {
	case f.busy:
		b.WriteString(StyleHelp.Render("  Saving..."))
	case f.confirming:
		b.WriteString(StyleHighlight.Render("  Save this book? "))
		b.WriteString(StyleHelp.Render("Y/n"))
	default:
		b.WriteString(RenderFooterBar([]ShortcutEntry{
			{Key: "", Label: "Tab/↑↓ navigate"},
			{Key: "", Label: "enter submit"},
			{Key: "", Label: "esc cancel"},
		}, ""))
	}
	b.WriteString("\n")

	innerPadding := lipgloss.NewStyle().Padding(0, 2, 0, 1)
	return outerStyle.Render(StyleBorder.Render(innerPadding.Render(b.String())))
}
