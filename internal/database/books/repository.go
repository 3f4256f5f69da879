// Package books provides database operations for the book collection.
//
// Every method maps to a single SQL statement (search adds one COUNT for the
// total). Missing rows surface as database.ErrNotFound.
//
// # Usage
//
//	repo := books.NewRepository(db)
//	book, err := repo.GetBookByID(123)
package books

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/mrlokans/bookshelf/internal/database"
	"github.com/mrlokans/bookshelf/internal/entities"
)

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetBookByID retrieves a book by its ID.
func (r *Repository) GetBookByID(id uint) (*entities.Book, error) {
	var book entities.Book
	if err := r.db.First(&book, id).Error; err != nil {
		return nil, database.TranslateError(err)
	}
	return &book, nil
}

// ListBooks returns one page of books ordered by ID, plus the total count.
func (r *Repository) ListBooks(page database.Page) ([]entities.Book, int64, error) {
	return r.SearchBooks(entities.BookFilter{}, page)
}

// SearchBooks applies every non-empty filter with AND semantics.
// Title and author are case-insensitive substring matches; year bounds are inclusive.
func (r *Repository) SearchBooks(filter entities.BookFilter, page database.Page) ([]entities.Book, int64, error) {
	query := applyFilter(r.db.Model(&entities.Book{}), filter).Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count books: %w", err)
	}

	books := make([]entities.Book, 0, page.Size)
	if total == 0 {
		return books, 0, nil
	}
	if err := query.Scopes(database.Paginate(page)).Order("id ASC").Find(&books).Error; err != nil {
		return nil, 0, fmt.Errorf("find books: %w", err)
	}
	return books, total, nil
}

// CreateBook validates and inserts a book, filling in its ID.
func (r *Repository) CreateBook(book *entities.Book) error {
	if err := book.Normalize(); err != nil {
		return err
	}
	book.ID = 0
	return database.TranslateError(r.db.Create(book).Error)
}

// UpdateBook changes only the fields present in patch and returns the stored book.
func (r *Repository) UpdateBook(id uint, patch entities.BookPatch) (*entities.Book, error) {
	if patch.IsEmpty() {
		return r.GetBookByID(id)
	}

	columns, err := patch.Columns()
	if err != nil {
		return nil, err
	}

	result := r.db.Model(&entities.Book{}).Where("id = ?", id).Updates(columns)
	if result.Error != nil {
		return nil, database.TranslateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, database.ErrNotFound
	}
	return r.GetBookByID(id)
}

// DeleteBook removes a book permanently.
func (r *Repository) DeleteBook(id uint) error {
	result := r.db.Delete(&entities.Book{}, id)
	if result.Error != nil {
		return database.TranslateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return database.ErrNotFound
	}
	return nil
}

// CountBooks returns the number of stored books.
func (r *Repository) CountBooks() (int64, error) {
	var total int64
	err := r.db.Model(&entities.Book{}).Count(&total).Error
	return total, err
}

func applyFilter(query *gorm.DB, filter entities.BookFilter) *gorm.DB {
	query = database.WhereContains(query, "title", filter.Title)
	query = database.WhereContains(query, "author", filter.Author)
	if filter.Year != nil {
		query = query.Where("year = ?", *filter.Year)
	}
	if filter.YearFrom != nil {
		query = query.Where("year >= ?", *filter.YearFrom)
	}
	if filter.YearTo != nil {
		query = query.Where("year <= ?", *filter.YearTo)
	}
	return query
}
