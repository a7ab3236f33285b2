package view_test

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/Klea008/bookctl/internal/catalog"
	"github.com/Klea008/bookctl/internal/view"
)

// fakeService records every call and serves canned collections.
type fakeService struct {
	calls []string

	all     []catalog.Book
	byGenre map[string][]catalog.Book
	matches []catalog.Book
	sorted  []catalog.Book

	pages      map[int][]catalog.Book
	totalPages int

	err error
}

func (f *fakeService) ListBooks(ctx context.Context) ([]catalog.Book, error) {
	f.calls = append(f.calls, "all")
	return f.all, f.err
}

func (f *fakeService) ListByGenre(ctx context.Context, genre string) ([]catalog.Book, error) {
	f.calls = append(f.calls, "genre:"+genre)
	return f.byGenre[genre], f.err
}

func (f *fakeService) Search(ctx context.Context, query string) ([]catalog.Book, error) {
	f.calls = append(f.calls, "search:"+query)
	return f.matches, f.err
}

func (f *fakeService) Sorted(ctx context.Context, genre, sortBy, order string) ([]catalog.Book, error) {
	f.calls = append(f.calls, fmt.Sprintf("sort:%s:%s:%s", genre, sortBy, order))
	return f.sorted, f.err
}

func (f *fakeService) Paged(ctx context.Context, page, limit int) ([]catalog.Book, int, error) {
	f.calls = append(f.calls, fmt.Sprintf("paged:%d:%d", page, limit))
	return f.pages[page], f.totalPages, f.err
}

func (f *fakeService) PagedByGenre(ctx context.Context, genre string, page, limit int) ([]catalog.Book, int, error) {
	f.calls = append(f.calls, fmt.Sprintf("pagedGenre:%s:%d:%d", genre, page, limit))
	return f.pages[page], f.totalPages, f.err
}

func (f *fakeService) PagedSorted(ctx context.Context, genre, sortBy, order string, page, limit int) ([]catalog.Book, int, error) {
	f.calls = append(f.calls, fmt.Sprintf("pagedSort:%s:%s:%s:%d:%d", genre, sortBy, order, page, limit))
	return f.pages[page], f.totalPages, f.err
}

func book(id, genre string) catalog.Book {
	return catalog.Book{ID: id, Title: "Book " + id, Genre: genre}
}

func resolve(t *testing.T, c *view.Controller, svc *fakeService, f view.Fetch) {
	t.Helper()
	if f.Zero() {
		t.Fatal("expected a fetch, got none")
	}
	if !c.Resolve(f.Do(context.Background(), svc)) {
		t.Fatal("Resolve dropped a current fetch")
	}
}

func TestSelectGenre_OneCallAndReplace(t *testing.T) {
	svc := &fakeService{
		all: []catalog.Book{book("1", "Sci-Fi"), book("2", "Drama")},
		byGenre: map[string][]catalog.Book{
			"Drama": {book("2", "Drama")},
		},
	}
	c := view.New(view.Options{})

	resolve(t, c, svc, c.Reload())
	svc.calls = nil

	resolve(t, c, svc, c.SelectGenre("Drama"))

	if want := []string{"genre:Drama"}; !reflect.DeepEqual(svc.calls, want) {
		t.Errorf("calls = %v, want %v", svc.calls, want)
	}
	if got := c.Books(); len(got) != 1 || got[0].ID != "2" {
		t.Errorf("Books = %v, want the single Drama book", got)
	}
}

func TestSelectGenre_AllRoundTrip(t *testing.T) {
	all := []catalog.Book{book("1", "Sci-Fi"), book("2", "Drama")}
	svc := &fakeService{
		all:     all,
		byGenre: map[string][]catalog.Book{"Drama": {book("2", "Drama")}},
	}
	c := view.New(view.Options{})

	resolve(t, c, svc, c.SelectGenre("Drama"))
	resolve(t, c, svc, c.SelectGenre(view.AllGenres))

	if !reflect.DeepEqual(c.Books(), all) {
		t.Errorf("Books after round trip = %v, want %v", c.Books(), all)
	}
	if c.Mode() != view.ModeAll {
		t.Errorf("Mode = %v, want ModeAll", c.Mode())
	}
}

func TestSetSearch_EmptyFallsBackToAll(t *testing.T) {
	svc := &fakeService{
		all:     []catalog.Book{book("1", "Sci-Fi")},
		matches: []catalog.Book{book("2", "Drama")},
	}
	c := view.New(view.Options{})

	resolve(t, c, svc, c.SetSearch("dune"))
	svc.calls = nil

	resolve(t, c, svc, c.SetSearch(""))

	if want := []string{"all"}; !reflect.DeepEqual(svc.calls, want) {
		t.Errorf("calls = %v, want %v (never an empty-query search)", svc.calls, want)
	}
}

func TestSelectSort_KeepsGenre(t *testing.T) {
	svc := &fakeService{
		byGenre: map[string][]catalog.Book{"Drama": {book("2", "Drama")}},
		sorted:  []catalog.Book{book("2", "Drama")},
	}
	c := view.New(view.Options{Sorting: true})

	resolve(t, c, svc, c.SelectGenre("Drama"))
	svc.calls = nil

	f, ok := c.SelectSort(view.SortByTitle)
	if !ok {
		t.Fatal("SelectSort refused with sorting enabled")
	}
	resolve(t, c, svc, f)

	if want := []string{"sort:Drama:title:desc"}; !reflect.DeepEqual(svc.calls, want) {
		t.Errorf("calls = %v, want %v", svc.calls, want)
	}
}

func TestSelectSort_DisabledIsNoop(t *testing.T) {
	c := view.New(view.Options{})
	if _, ok := c.SelectSort(view.SortByTitle); ok {
		t.Error("SelectSort should refuse when sorting is disabled")
	}
}

func TestChangePage_Bounds(t *testing.T) {
	svc := &fakeService{
		pages:      map[int][]catalog.Book{1: {book("1", "")}, 2: {book("2", "")}},
		totalPages: 2,
	}
	c := view.New(view.Options{Pagination: true, PageSize: 3})
	resolve(t, c, svc, c.Reload())
	svc.calls = nil

	for _, p := range []int{0, -1, 3, 99} {
		if _, ok := c.ChangePage(p); ok {
			t.Errorf("ChangePage(%d) issued a fetch, want no-op", p)
		}
	}
	if len(svc.calls) != 0 {
		t.Errorf("out-of-range pages made calls: %v", svc.calls)
	}
	if c.Page() != 1 {
		t.Errorf("Page = %d, want 1 retained", c.Page())
	}

	f, ok := c.ChangePage(2)
	if !ok {
		t.Fatal("ChangePage(2) refused a valid page")
	}
	resolve(t, c, svc, f)
	if want := []string{"paged:2:3"}; !reflect.DeepEqual(svc.calls, want) {
		t.Errorf("calls = %v, want exactly %v", svc.calls, want)
	}
	if c.Page() != 2 {
		t.Errorf("Page = %d, want 2", c.Page())
	}
}

func TestChangePage_GenreModeUsesGenreEndpoint(t *testing.T) {
	svc := &fakeService{
		byGenre:    map[string][]catalog.Book{"Drama": nil},
		pages:      map[int][]catalog.Book{1: nil, 2: nil},
		totalPages: 5,
	}
	c := view.New(view.Options{Pagination: true, PageSize: 7})
	resolve(t, c, svc, c.SelectGenre("Drama"))
	svc.calls = nil

	f, ok := c.ChangePage(2)
	if !ok {
		t.Fatal("ChangePage(2) refused")
	}
	resolve(t, c, svc, f)
	if want := []string{"pagedGenre:Drama:2:7"}; !reflect.DeepEqual(svc.calls, want) {
		t.Errorf("calls = %v, want %v", svc.calls, want)
	}
}

func TestToggleSelect_SelfInverse(t *testing.T) {
	c := view.New(view.Options{})

	c.ToggleSelect("a")
	c.ToggleSelect("b")
	prior := c.Selected()

	c.ToggleSelect("x")
	c.ToggleSelect("x")

	if !reflect.DeepEqual(c.Selected(), prior) {
		t.Errorf("Selected = %v, want %v after toggle twice", c.Selected(), prior)
	}
}

func TestApplyDelete_PrunesAndClearsSelection(t *testing.T) {
	svc := &fakeService{
		all: []catalog.Book{book("1", ""), book("2", ""), book("3", "")},
	}
	c := view.New(view.Options{})
	resolve(t, c, svc, c.Reload())

	c.ToggleSelect("1")
	c.ToggleSelect("3")
	c.ApplyDelete(c.Selected())

	if got := c.Books(); len(got) != 1 || got[0].ID != "2" {
		t.Errorf("Books = %v, want only id 2", got)
	}
	if c.SelectionCount() != 0 {
		t.Errorf("SelectionCount = %d, want 0", c.SelectionCount())
	}
}

func TestResolve_DropsStaleResult(t *testing.T) {
	svc := &fakeService{
		all:     []catalog.Book{book("1", "")},
		byGenre: map[string][]catalog.Book{"Drama": {book("2", "Drama")}},
	}
	c := view.New(view.Options{})

	slow := c.Reload()
	fast := c.SelectGenre("Drama")

	// The newer request resolves first; the older one completes late.
	if !c.Resolve(fast.Do(context.Background(), svc)) {
		t.Fatal("current result was dropped")
	}
	if c.Resolve(slow.Do(context.Background(), svc)) {
		t.Error("stale result was applied")
	}

	if got := c.Books(); len(got) != 1 || got[0].ID != "2" {
		t.Errorf("Books = %v, want the newer (Drama) collection", got)
	}
}

func TestResolve_ErrorFailsSoft(t *testing.T) {
	svc := &fakeService{
		all: []catalog.Book{book("1", "")},
	}
	c := view.New(view.Options{})
	resolve(t, c, svc, c.Reload())

	svc.err = errors.New("boom")
	resolve(t, c, svc, c.Reload())

	if len(c.Books()) != 0 {
		t.Errorf("Books = %v, want empty after fetch error", c.Books())
	}
	if c.Loading() {
		t.Error("Loading still true after resolve")
	}
}

func TestApplyAddAndUpdate(t *testing.T) {
	svc := &fakeService{all: []catalog.Book{book("1", "Sci-Fi")}}
	c := view.New(view.Options{})
	resolve(t, c, svc, c.Reload())

	c.ApplyAdd(book("2", "Drama"))
	if len(c.Books()) != 2 {
		t.Fatalf("Books = %d entries, want 2", len(c.Books()))
	}

	edited := book("1", "Horror")
	c.ApplyUpdate(edited)
	if got := c.Books()[0]; got.Genre != "Horror" {
		t.Errorf("Books[0].Genre = %q, want %q", got.Genre, "Horror")
	}
}
