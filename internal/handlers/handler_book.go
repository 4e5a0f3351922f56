package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/book_catalog_api/internal/core/ports/services"
	"github.com/SscSPs/book_catalog_api/internal/dto"
	"github.com/SscSPs/book_catalog_api/internal/middleware"
	"github.com/gin-gonic/gin"
)

// bookHandler handles HTTP requests related to books.
type bookHandler struct {
	bookService portssvc.BookSvcFacade
}

func newBookHandler(bs portssvc.BookSvcFacade) *bookHandler {
	return &bookHandler{bookService: bs}
}

// registerBookRoutes registers routes related to books.
func registerBookRoutes(rg *gin.RouterGroup, bookService portssvc.BookSvcFacade) {
	h := newBookHandler(bookService)

	books := rg.Group("/books")
	{
		books.GET("", h.listBooks)
		books.POST("", h.createBook)
		books.GET("/:id", h.getBook)
		books.PUT("/:id", h.updateBook)
		books.DELETE("/:id", h.deleteBook)
	}
}

// listBooks godoc
// @Summary List books
// @Description Returns every book, newest first.
// @Tags books
// @Produce json
// @Success 200 {array} dto.BookResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security SessionCookie
// @Router /books [get]
func (h *bookHandler) listBooks(c *gin.Context) {
	books, err := h.bookService.ListBooks(c.Request.Context())
	if err != nil {
		respondError(c, err, "list books")
		return
	}
	c.JSON(http.StatusOK, dto.ToBookListResponse(books))
}

// getBook godoc
// @Summary Get a book
// @Tags books
// @Produce json
// @Param id path string true "Book ID"
// @Success 200 {object} dto.BookResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid Identifier"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security SessionCookie
// @Router /books/{id} [get]
func (h *bookHandler) getBook(c *gin.Context) {
	book, err := h.bookService.GetBookByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "get book")
		return
	}
	c.JSON(http.StatusOK, dto.ToBookResponse(book))
}

// createBook godoc
// @Summary Create a book
// @Tags books
// @Accept json
// @Produce json
// @Param book body dto.BookRequest true "Book details"
// @Success 201 {object} dto.BookResponse
// @Failure 400 {object} dto.ErrorResponse "Validation Error or Duplicate Error"
// @Failure 401 {object} dto.ErrorResponse
// @Security SessionCookie
// @Router /books [post]
func (h *bookHandler) createBook(c *gin.Context) {
	var req dto.BookRequest
	if !bindJSON(c, &req) {
		return
	}

	book, err := h.bookService.CreateBook(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "create book")
		return
	}
	middleware.GetLoggerFromContext(c).Info("Book created", slog.String("book_id", book.BookID))
	c.JSON(http.StatusCreated, dto.ToBookResponse(book))
}

// updateBook godoc
// @Summary Replace a book
// @Description Full replacement; every required field must be sent. An omitted rating keeps the stored value.
// @Tags books
// @Accept json
// @Produce json
// @Param id path string true "Book ID"
// @Param book body dto.BookRequest true "Book details"
// @Success 200 {object} dto.BookResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security SessionCookie
// @Router /books/{id} [put]
func (h *bookHandler) updateBook(c *gin.Context) {
	var req dto.BookRequest
	if !bindJSON(c, &req) {
		return
	}

	book, err := h.bookService.UpdateBook(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "update book")
		return
	}
	c.JSON(http.StatusOK, dto.ToBookResponse(book))
}

// deleteBook godoc
// @Summary Delete a book
// @Description Deletes the book and its reviews.
// @Tags books
// @Produce json
// @Param id path string true "Book ID"
// @Success 200 {object} dto.DeleteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security SessionCookie
// @Router /books/{id} [delete]
func (h *bookHandler) deleteBook(c *gin.Context) {
	book, err := h.bookService.DeleteBook(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "delete book")
		return
	}
	c.JSON(http.StatusOK, dto.DeleteResponse{
		Message: "Book deleted successfully",
		Deleted: dto.DeletedSummary{ID: book.BookID, Title: book.Title},
	})
}
