package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Book is a catalog entry.
type Book struct {
	BookID        string          `json:"id"`
	Title         string          `json:"title"`
	Author        string          `json:"author"`
	PublishedYear int             `json:"publishedYear"`
	Genre         string          `json:"genre"`
	ISBN          string          `json:"isbn"`
	Rating        decimal.Decimal `json:"rating"`
	Summary       string          `json:"summary"`
	Timestamps
}

// NormalizeISBN strips separators so that differently hyphenated forms of
// the same ISBN compare equal. A trailing x check digit is upper-cased.
func NormalizeISBN(isbn string) string {
	var b strings.Builder
	for _, r := range isbn {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == 'x' || r == 'X':
			b.WriteRune('X')
		}
	}
	return b.String()
}
