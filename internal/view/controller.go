package view

import (
	"context"
	"sort"

	"github.com/Klea008/bookctl/internal/catalog"
)

// AllGenres is the pseudo-genre that clears the genre filter.
const AllGenres = "All"

// Sort keys accepted by SelectSort.
const (
	SortByTitle = "title"
	SortByDate  = "date"
)

// Service is the slice of the catalog API the controller drives.
// *api.Client satisfies it.
type Service interface {
	ListBooks(ctx context.Context) ([]catalog.Book, error)
	ListByGenre(ctx context.Context, genre string) ([]catalog.Book, error)
	Search(ctx context.Context, query string) ([]catalog.Book, error)
	Sorted(ctx context.Context, genre, sortBy, order string) ([]catalog.Book, error)
	Paged(ctx context.Context, page, limit int) ([]catalog.Book, int, error)
	PagedByGenre(ctx context.Context, genre string, page, limit int) ([]catalog.Book, int, error)
	PagedSorted(ctx context.Context, genre, sortBy, order string, page, limit int) ([]catalog.Book, int, error)
}

// Mode is the active fetch mode. Modes are mutually exclusive: entering
// one replaces the previous and triggers exactly one fetch.
type Mode int

const (
	ModeAll Mode = iota
	ModeGenre
	ModeSorted
	ModeSearch
)

// Options configures a controller instance. The three original views
// are this one controller with different options.
type Options struct {
	Pagination bool
	Sorting    bool
	PageSize   int
}

// Fetch is one issued request. The sequence number lets the controller
// discard responses that resolve after a newer request was issued.
type Fetch struct {
	Seq uint64
	run func(ctx context.Context, svc Service) ([]catalog.Book, int, error)
}

// Zero reports whether f describes no request at all.
func (f Fetch) Zero() bool { return f.run == nil }

// Do executes the request against svc and packages the outcome for Resolve.
func (f Fetch) Do(ctx context.Context, svc Service) Result {
	books, totalPages, err := f.run(ctx, svc)
	return Result{Seq: f.Seq, Books: books, TotalPages: totalPages, Err: err}
}

// Result is a completed fetch, fed back through Resolve.
type Result struct {
	Seq        uint64
	Books      []catalog.Book
	TotalPages int
	Err        error
}

// Controller owns the view state of one book list: the collection, the
// active mode, pagination, and the multi-select set. It issues at most
// one fetch per user action and only ever mutates on the caller's
// event loop.
type Controller struct {
	opts Options

	mode    Mode
	genre   string
	sortKey string
	query   string

	page       int
	totalPages int

	seq     uint64
	loading bool

	books    []catalog.Book
	genres   []string
	selected map[string]struct{}
}

// New creates a controller in All mode, page 1.
func New(opts Options) *Controller {
	if opts.PageSize <= 0 {
		opts.PageSize = 21
	}
	return &Controller{
		opts:       opts,
		genre:      AllGenres,
		page:       1,
		totalPages: 1,
		selected:   make(map[string]struct{}),
	}
}

// newFetch snapshots the current mode into a runnable request and bumps
// the sequence counter.
func (c *Controller) newFetch() Fetch {
	c.seq++
	c.loading = true

	var (
		mode       = c.mode
		genre      = c.genre
		sortKey    = c.sortKey
		query      = c.query
		page       = c.page
		limit      = c.opts.PageSize
		pagination = c.opts.Pagination
	)

	run := func(ctx context.Context, svc Service) ([]catalog.Book, int, error) {
		if pagination {
			switch mode {
			case ModeGenre:
				return svc.PagedByGenre(ctx, genre, page, limit)
			case ModeSorted:
				return svc.PagedSorted(ctx, genre, sortKey, "desc", page, limit)
			default:
				// Search is not wired to the paginated endpoints.
				return svc.Paged(ctx, page, limit)
			}
		}
		switch mode {
		case ModeGenre:
			books, err := svc.ListByGenre(ctx, genre)
			return books, 0, err
		case ModeSorted:
			books, err := svc.Sorted(ctx, genre, sortKey, "desc")
			return books, 0, err
		case ModeSearch:
			books, err := svc.Search(ctx, query)
			return books, 0, err
		default:
			books, err := svc.ListBooks(ctx)
			return books, 0, err
		}
	}
	return Fetch{Seq: c.seq, run: run}
}

// Reload re-resolves the current mode with one fetch.
func (c *Controller) Reload() Fetch { return c.newFetch() }

// SelectGenre switches to the given genre filter. "All" (or empty)
// returns to the unfiltered mode. Resets to page 1.
func (c *Controller) SelectGenre(genre string) Fetch {
	if genre == "" || genre == AllGenres {
		c.mode = ModeAll
		c.genre = AllGenres
	} else {
		c.mode = ModeGenre
		c.genre = genre
	}
	c.sortKey = ""
	c.page = 1
	return c.newFetch()
}

// SetSearch switches to search mode. An empty query falls back to the
// unfiltered list; no empty-query search call is ever issued.
func (c *Controller) SetSearch(query string) Fetch {
	c.query = query
	if query == "" {
		c.mode = ModeAll
		c.genre = AllGenres
	} else {
		c.mode = ModeSearch
	}
	c.page = 1
	return c.newFetch()
}

// SelectSort switches to sorted mode, keeping the active genre. Returns
// ok=false (and no fetch) when sorting is disabled for this view.
func (c *Controller) SelectSort(key string) (Fetch, bool) {
	if !c.opts.Sorting {
		return Fetch{}, false
	}
	c.mode = ModeSorted
	c.sortKey = key
	c.page = 1
	return c.newFetch(), true
}

// ChangePage moves to page p. Out-of-range pages are a no-op: the
// current page is retained and no fetch is issued.
func (c *Controller) ChangePage(p int) (Fetch, bool) {
	if !c.opts.Pagination {
		return Fetch{}, false
	}
	if p < 1 || p > c.totalPages {
		return Fetch{}, false
	}
	c.page = p
	return c.newFetch(), true
}

// Resolve applies a completed fetch. Results for anything but the most
// recently issued request are stale and dropped, so the displayed
// collection always reflects the newest request even when the network
// completes out of order. Fetch errors fail soft to an empty list.
func (c *Controller) Resolve(res Result) bool {
	if res.Seq != c.seq {
		return false
	}
	c.loading = false
	if res.Err != nil {
		c.books = nil
		if c.opts.Pagination {
			c.totalPages = 0
		}
		return true
	}
	c.books = res.Books
	if c.opts.Pagination {
		c.totalPages = res.TotalPages
	}
	return true
}

// ToggleSelect flips membership of id in the selection set. Selection
// is independent of the view mode.
func (c *Controller) ToggleSelect(id string) {
	if _, ok := c.selected[id]; ok {
		delete(c.selected, id)
	} else {
		c.selected[id] = struct{}{}
	}
}

// IsSelected reports whether id is in the selection set.
func (c *Controller) IsSelected(id string) bool {
	_, ok := c.selected[id]
	return ok
}

// Selected returns the selected ids in stable order.
func (c *Controller) Selected() []string {
	ids := make([]string, 0, len(c.selected))
	for id := range c.selected {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// SelectionCount reports the size of the selection set.
func (c *Controller) SelectionCount() int { return len(c.selected) }

// ClearSelection empties the selection set.
func (c *Controller) ClearSelection() {
	c.selected = make(map[string]struct{})
}

// ApplyDelete prunes the deleted ids from the collection and clears the
// selection. Callers follow up with Reload so the list re-resolves
// under the active filter.
func (c *Controller) ApplyDelete(ids []string) {
	gone := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		gone[id] = struct{}{}
	}
	kept := c.books[:0]
	for _, b := range c.books {
		if _, ok := gone[b.ID]; !ok {
			kept = append(kept, b)
		}
	}
	c.books = kept
	c.ClearSelection()
}

// ApplyAdd appends a created book to the collection.
func (c *Controller) ApplyAdd(b catalog.Book) {
	c.books = append(c.books, b)
}

// ApplyUpdate replaces the collection entry with the same id, if present.
func (c *Controller) ApplyUpdate(b catalog.Book) {
	for i := range c.books {
		if c.books[i].ID == b.ID {
			c.books[i] = b
			return
		}
	}
}

// SetGenres stores the genre filter choices fetched by the shell.
func (c *Controller) SetGenres(genres []string) { c.genres = genres }

// Accessors.

func (c *Controller) Books() []catalog.Book { return c.books }
func (c *Controller) Genres() []string      { return c.genres }
func (c *Controller) Mode() Mode            { return c.mode }
func (c *Controller) Genre() string         { return c.genre }
func (c *Controller) SortKey() string       { return c.sortKey }
func (c *Controller) Query() string         { return c.query }
func (c *Controller) Page() int             { return c.page }
func (c *Controller) TotalPages() int       { return c.totalPages }
func (c *Controller) Loading() bool         { return c.loading }
func (c *Controller) Opts() Options         { return c.opts }
