package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Klea008/bookctl/internal/catalog"
)

// Sort directions accepted by the /bookSort endpoints.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

type booksEnvelope struct {
	Books []catalog.Book `json:"books"`
}

type pagedEnvelope struct {
	Books      []catalog.Book `json:"books"`
	Pagination struct {
		TotalPages int `json:"totalPages"`
	} `json:"pagination"`
}

type genresEnvelope struct {
	Genres []string `json:"genres"`
}

type bookEnvelope struct {
	Message string       `json:"message"`
	Book    catalog.Book `json:"book"`
}

type messageEnvelope struct {
	Message string `json:"message"`
}

// ListBooks fetches the whole catalog in server order.
func (c *Client) ListBooks(ctx context.Context) ([]catalog.Book, error) {
	var env booksEnvelope
	if err := c.doJSON(ctx, http.MethodGet, "/all-books", nil, nil, &env); err != nil {
		return nil, err
	}
	return env.Books, nil
}

// GetBook fetches a single book by identifier.
func (c *Client) GetBook(ctx context.Context, id string) (catalog.Book, error) {
	var env bookEnvelope
	if err := c.doJSON(ctx, http.MethodGet, "/book/"+url.PathEscape(id), nil, nil, &env); err != nil {
		return catalog.Book{}, err
	}
	return env.Book, nil
}

// ListGenres fetches the distinct genres known to the service.
func (c *Client) ListGenres(ctx context.Context) ([]string, error) {
	var env genresEnvelope
	if err := c.doJSON(ctx, http.MethodGet, "/genres", nil, nil, &env); err != nil {
		return nil, err
	}
	return env.Genres, nil
}

// ListByGenre fetches the books of one genre, filtered server-side.
func (c *Client) ListByGenre(ctx context.Context, genre string) ([]catalog.Book, error) {
	q := url.Values{"genre": {genre}}
	var env booksEnvelope
	if err := c.doJSON(ctx, http.MethodGet, "/booksByGenre", q, nil, &env); err != nil {
		return nil, err
	}
	return env.Books, nil
}

// Search fetches books matching the text server-side. Callers fall back
// to ListBooks for an empty query rather than calling this.
func (c *Client) Search(ctx context.Context, query string) ([]catalog.Book, error) {
	q := url.Values{"query": {query}}
	var env booksEnvelope
	if err := c.doJSON(ctx, http.MethodGet, "/bookSearch", q, nil, &env); err != nil {
		return nil, err
	}
	return env.Books, nil
}

// Sorted fetches books ordered by sortBy within an optional genre.
func (c *Client) Sorted(ctx context.Context, genre, sortBy, order string) ([]catalog.Book, error) {
	q := url.Values{"sortBy": {sortBy}, "order": {order}, "genre": {genre}}
	var env booksEnvelope
	if err := c.doJSON(ctx, http.MethodGet, "/bookSort", q, nil, &env); err != nil {
		return nil, err
	}
	return env.Books, nil
}

// Paged fetches one page of the catalog plus the total page count.
func (c *Client) Paged(ctx context.Context, page, limit int) ([]catalog.Book, int, error) {
	q := pageQuery(page, limit)
	var env pagedEnvelope
	if err := c.doJSON(ctx, http.MethodGet, "/limited-books", q, nil, &env); err != nil {
		return nil, 0, err
	}
	return env.Books, env.Pagination.TotalPages, nil
}

// PagedByGenre is the genre-aware variant of Paged.
func (c *Client) PagedByGenre(ctx context.Context, genre string, page, limit int) ([]catalog.Book, int, error) {
	q := pageQuery(page, limit)
	q.Set("genre", genre)
	var env pagedEnvelope
	// Path casing is the service's, not a typo.
	if err := c.doJSON(ctx, http.MethodGet, "/bookbyGenreLimit", q, nil, &env); err != nil {
		return nil, 0, err
	}
	return env.Books, env.Pagination.TotalPages, nil
}

// PagedSorted is the sort-aware variant of Paged.
func (c *Client) PagedSorted(ctx context.Context, genre, sortBy, order string, page, limit int) ([]catalog.Book, int, error) {
	q := pageQuery(page, limit)
	q.Set("genre", genre)
	q.Set("sortBy", sortBy)
	q.Set("order", order)
	var env pagedEnvelope
	if err := c.doJSON(ctx, http.MethodGet, "/bookSortLimit", q, nil, &env); err != nil {
		return nil, 0, err
	}
	return env.Books, env.Pagination.TotalPages, nil
}

// CreateBook submits a draft; the service assigns the identifier.
func (c *Client) CreateBook(ctx context.Context, draft catalog.Draft) (catalog.Book, string, error) {
	var env bookEnvelope
	if err := c.doJSON(ctx, http.MethodPost, "/add-book", nil, draft, &env); err != nil {
		return catalog.Book{}, "", err
	}
	return env.Book, env.Message, nil
}

// UpdateBook replaces the stored record for book.ID.
func (c *Client) UpdateBook(ctx context.Context, book catalog.Book) (catalog.Book, string, error) {
	var env bookEnvelope
	if err := c.doJSON(ctx, http.MethodPut, "/update-book/"+url.PathEscape(book.ID), nil, book, &env); err != nil {
		return catalog.Book{}, "", err
	}
	return env.Book, env.Message, nil
}

// DeleteBook removes a single book.
func (c *Client) DeleteBook(ctx context.Context, id string) (string, error) {
	var env messageEnvelope
	if err := c.doJSON(ctx, http.MethodDelete, "/delete-book/"+url.PathEscape(id), nil, nil, &env); err != nil {
		return "", err
	}
	return env.Message, nil
}

// DeleteBooks removes every book in ids with one batch call.
func (c *Client) DeleteBooks(ctx context.Context, ids []string) (string, error) {
	body := struct {
		IDs []string `json:"ids"`
	}{IDs: ids}
	var env messageEnvelope
	if err := c.doJSON(ctx, http.MethodDelete, "/delete-books", nil, body, &env); err != nil {
		return "", err
	}
	return env.Message, nil
}

func pageQuery(page, limit int) url.Values {
	return url.Values{
		"page":  {strconv.Itoa(page)},
		"limit": {strconv.Itoa(limit)},
	}
}
