package catalog

// Availability is the stock status reported by the catalog service.
type Availability string

const (
	InStock    Availability = "In Stock"
	OutOfStock Availability = "Out of Stock"
)

// Book is one record in the remote catalog. Field names follow the
// service's JSON wire format.
type Book struct {
	ID              string       `json:"_id"`
	Title           string       `json:"title"`
	Author          string       `json:"author"`
	Genre           string       `json:"genre"`
	PublicationYear int          `json:"publicationYear"`
	CoverImage      string       `json:"coverImage"`
	Description     string       `json:"description"`
	Availability    Availability `json:"availability"`
	ISBN            string       `json:"isbn"`
}

// Draft carries the fields of a book being created or edited. The
// identifier is absent; the service assigns one on creation.
type Draft struct {
	Title           string       `json:"title" validate:"required"`
	Author          string       `json:"author" validate:"required"`
	Genre           string       `json:"genre" validate:"required"`
	PublicationYear int          `json:"publicationYear" validate:"required"`
	CoverImage      string       `json:"coverImage" validate:"required,url"`
	Description     string       `json:"description" validate:"required"`
	Availability    Availability `json:"availability" validate:"required,oneof='In Stock' 'Out of Stock'"`
	ISBN            string       `json:"isbn" validate:"required"`
}

// DraftOf pre-populates a draft from an existing book, for the update form.
func DraftOf(b Book) Draft {
	return Draft{
		Title:           b.Title,
		Author:          b.Author,
		Genre:           b.Genre,
		PublicationYear: b.PublicationYear,
		CoverImage:      b.CoverImage,
		Description:     b.Description,
		Availability:    b.Availability,
		ISBN:            b.ISBN,
	}
}
