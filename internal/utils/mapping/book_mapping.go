package mapping

import (
	"github.com/SscSPs/book_catalog_api/internal/core/domain"
	"github.com/SscSPs/book_catalog_api/internal/models"
)

// ToModelBook converts a domain Book to a model Book
func ToModelBook(d domain.Book) models.Book {
	return models.Book{
		BookID:        d.BookID,
		Title:         d.Title,
		Author:        d.Author,
		PublishedYear: d.PublishedYear,
		Genre:         d.Genre,
		ISBN:          d.ISBN,
		Rating:        d.Rating,
		Summary:       d.Summary,
		Timestamps:    ToModelTimestamps(d.Timestamps),
	}
}

// ToDomainBook converts a model Book to a domain Book
func ToDomainBook(m models.Book) domain.Book {
	return domain.Book{
		BookID:        m.BookID,
		Title:         m.Title,
		Author:        m.Author,
		PublishedYear: m.PublishedYear,
		Genre:         m.Genre,
		ISBN:          m.ISBN,
		Rating:        m.Rating,
		Summary:       m.Summary,
		Timestamps:    ToDomainTimestamps(m.Timestamps),
	}
}

// ToDomainBookSlice converts a slice of model Books to a slice of domain Books
func ToDomainBookSlice(ms []models.Book) []domain.Book {
	ds := make([]domain.Book, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBook(m)
	}
	return ds
}
