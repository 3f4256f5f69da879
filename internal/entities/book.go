package entities

import "time"

const (
	MaxTitleLength  = 255
	MaxAuthorLength = 255
	MinBookYear     = 1000
)

// MaxBookYear allows announced books up to two years ahead.
func MaxBookYear() int {
	return time.Now().Year() + 2
}

type Book struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Title  string `gorm:"index;index:ix_books_title_author,priority:1;size:255;not null" json:"title"`
	Author string `gorm:"index;index:ix_books_title_author,priority:2;index:ix_books_author_year,priority:1;size:255;not null" json:"author"`
	Year   *int   `gorm:"index;index:ix_books_author_year,priority:2" json:"year"`
}

func (Book) TableName() string {
	return "books"
}

// Normalize trims text fields in place and validates every field.
func (b *Book) Normalize() error {
	v := &ValidationError{}
	b.Title = requiredText(v, "title", b.Title, MaxTitleLength)
	b.Author = requiredText(v, "author", b.Author, MaxAuthorLength)
	if b.Year != nil {
		intInRange(v, "year", *b.Year, MinBookYear, MaxBookYear())
	}
	return v.Err()
}

// BookPatch carries a partial update; nil fields are left unchanged.
type BookPatch struct {
	Title  *string `json:"title"`
	Author *string `json:"author"`
	Year   *int    `json:"year"`
}

// IsEmpty reports whether the patch changes nothing.
func (p BookPatch) IsEmpty() bool {
	return p.Title == nil && p.Author == nil && p.Year == nil
}

// Columns validates the patch and returns the column updates it implies.
func (p *BookPatch) Columns() (map[string]any, error) {
	v := &ValidationError{}
	cols := make(map[string]any)
	if p.Title != nil {
		title := requiredText(v, "title", *p.Title, MaxTitleLength)
		p.Title = &title
		cols["title"] = title
	}
	if p.Author != nil {
		author := requiredText(v, "author", *p.Author, MaxAuthorLength)
		p.Author = &author
		cols["author"] = author
	}
	if p.Year != nil {
		intInRange(v, "year", *p.Year, MinBookYear, MaxBookYear())
		cols["year"] = *p.Year
	}
	if err := v.Err(); err != nil {
		return nil, err
	}
	return cols, nil
}

// BookFilter holds the optional, conjunctive search criteria for books.
type BookFilter struct {
	Title    string
	Author   string
	Year     *int
	YearFrom *int
	YearTo   *int
}
