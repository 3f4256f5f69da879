package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookshelf/internal/entities"
)

type BooksController struct {
	store BookStore
}

func NewBooksController(store BookStore) *BooksController {
	return &BooksController{store: store}
}

type bookSearchQuery struct {
	PageQuery
	Title    string `form:"title" binding:"max=255"`
	Author   string `form:"author" binding:"max=255"`
	Year     *int   `form:"year" binding:"omitempty,min=1000"`
	YearFrom *int   `form:"year_from" binding:"omitempty,min=1000"`
	YearTo   *int   `form:"year_to"`
}

func bookNotFound(id uint) string {
	return fmt.Sprintf("Book with ID %d not found", id)
}

// RegisterRoutes mounts the book endpoints on group.
func (controller *BooksController) RegisterRoutes(group *gin.RouterGroup) {
	group.POST("", controller.CreateBook)
	group.GET("", controller.ListBooks)
	group.GET("/search", controller.SearchBooks)
	group.GET("/:id", controller.GetBook)
	group.PUT("/:id", controller.UpdateBook)
	group.PATCH("/:id", controller.UpdateBook)
	group.DELETE("/:id", controller.DeleteBook)
}

func (controller *BooksController) CreateBook(c *gin.Context) {
	var book entities.Book
	if err := c.ShouldBindJSON(&book); err != nil {
		respondBindingError(c, err)
		return
	}
	if err := controller.store.CreateBook(&book); err != nil {
		respondStoreError(c, err, "", "create book")
		return
	}
	respondCreated(c, book)
}

func (controller *BooksController) ListBooks(c *gin.Context) {
	var query PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindingError(c, err)
		return
	}
	page := query.page()
	books, total, err := controller.store.ListBooks(page)
	if err != nil {
		respondInternalError(c, err, "list books")
		return
	}
	c.JSON(http.StatusOK, paginated("books", books, total, page))
}

func (controller *BooksController) SearchBooks(c *gin.Context) {
	var query bookSearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindingError(c, err)
		return
	}
	filter := entities.BookFilter{
		Title:    query.Title,
		Author:   query.Author,
		Year:     query.Year,
		YearFrom: query.YearFrom,
		YearTo:   query.YearTo,
	}
	page := query.page()
	books, total, err := controller.store.SearchBooks(filter, page)
	if err != nil {
		respondInternalError(c, err, "search books")
		return
	}
	c.JSON(http.StatusOK, paginated("books", books, total, page))
}

func (controller *BooksController) GetBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	book, err := controller.store.GetBookByID(id)
	if err != nil {
		respondStoreError(c, err, bookNotFound(id), "get book")
		return
	}
	c.JSON(http.StatusOK, book)
}

// UpdateBook serves both PUT and PATCH: only fields present in the body change.
func (controller *BooksController) UpdateBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var patch entities.BookPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondBindingError(c, err)
		return
	}
	book, err := controller.store.UpdateBook(id, patch)
	if err != nil {
		respondStoreError(c, err, bookNotFound(id), "update book")
		return
	}
	c.JSON(http.StatusOK, book)
}

func (controller *BooksController) DeleteBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := controller.store.DeleteBook(id); err != nil {
		respondStoreError(c, err, bookNotFound(id), "delete book")
		return
	}
	c.Status(http.StatusNoContent)
}
