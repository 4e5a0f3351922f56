package models

import "github.com/shopspring/decimal"

// Book is a row of the books table.
type Book struct {
	BookID        string          `db:"id"`
	Title         string          `db:"title"`
	Author        string          `db:"author"`
	PublishedYear int             `db:"published_year"`
	Genre         string          `db:"genre"`
	ISBN          string          `db:"isbn"`
	Rating        decimal.Decimal `db:"rating"`
	Summary       string          `db:"summary"`
	Timestamps
}
