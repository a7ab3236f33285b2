package tui

import (
	"testing"

	"github.com/Klea008/bookctl/internal/catalog"
	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(t tea.KeyType, runes ...rune) tea.KeyMsg {
	return tea.KeyMsg(tea.Key{Type: t, Runes: runes})
}

func filledDraft() catalog.Draft {
	return catalog.Draft{
		Title:           "Dune",
		Author:          "Frank Herbert",
		Genre:           "Sci-Fi",
		PublicationYear: 1965,
		CoverImage:      "https://example.com/dune.jpg",
		Description:     "Desert planet.",
		Availability:    catalog.InStock,
		ISBN:            "9780441013593",
	}
}

func TestBookForm_DraftRoundTrip(t *testing.T) {
	want := filledDraft()
	f := newBookForm("abc123", want)

	got, err := f.draft()
	if err != nil {
		t.Fatalf("draft: %v", err)
	}
	if got != want {
		t.Errorf("draft = %+v, want %+v", got, want)
	}
}

func TestBookForm_SubmitFlow(t *testing.T) {
	f := newBookForm("", filledDraft())

	f, _ = f.Update(keyMsg(tea.KeyEnter))
	if !f.confirming {
		t.Fatal("enter on a valid form should ask for confirmation")
	}

	f, _ = f.Update(keyMsg(tea.KeyRunes, 'y'))
	if f.confirming {
		t.Error("still confirming after y")
	}

	d := f.takeSubmission()
	if d == nil {
		t.Fatal("takeSubmission = nil after confirmed submit")
	}
	if d.Title != "Dune" {
		t.Errorf("submission.Title = %q, want %q", d.Title, "Dune")
	}
	if !f.busy {
		t.Error("form not busy after taking the submission")
	}
	if f.takeSubmission() != nil {
		t.Error("takeSubmission returned the draft twice")
	}
}

func TestBookForm_ConfirmDeclined(t *testing.T) {
	f := newBookForm("", filledDraft())

	f, _ = f.Update(keyMsg(tea.KeyEnter))
	f, _ = f.Update(keyMsg(tea.KeyRunes, 'n'))
	if f.confirming {
		t.Error("still confirming after n")
	}
	if f.takeSubmission() != nil {
		t.Error("declined confirm still produced a submission")
	}
}

func TestBookForm_InvalidDraftBlocksSubmit(t *testing.T) {
	d := filledDraft()
	d.Title = ""
	f := newBookForm("", d)

	f, _ = f.Update(keyMsg(tea.KeyEnter))
	if f.confirming {
		t.Error("invalid form reached the confirm step")
	}
	if f.err == nil {
		t.Error("no validation error surfaced")
	}
}

func TestBookForm_AvailabilityToggle(t *testing.T) {
	f := newBookForm("", filledDraft())
	f.focused = fieldAvailability

	f, _ = f.Update(keyMsg(tea.KeySpace))
	if f.inStock {
		t.Error("space did not toggle to out of stock")
	}
	f, _ = f.Update(keyMsg(tea.KeySpace))
	if !f.inStock {
		t.Error("space did not toggle back to in stock")
	}
}

func TestBookForm_EscCancelsWhileBusy(t *testing.T) {
	f := newBookForm("", filledDraft())
	f.busy = true

	f, _ = f.Update(keyMsg(tea.KeyRunes, 'x'))
	if f.canceled {
		t.Error("plain key canceled a busy form")
	}
	f, _ = f.Update(keyMsg(tea.KeyEsc))
	if !f.canceled {
		t.Error("esc did not cancel a busy form")
	}
}
