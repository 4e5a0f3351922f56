package models

// Review is a row of the reviews table joined with the book title and author name.
type Review struct {
	ReviewID           string `db:"id"`
	BookID             string `db:"book_id"`
	UserID             string `db:"user_id"`
	Rating             int    `db:"rating"`
	Title              string `db:"title"`
	Content            string `db:"content"`
	HelpfulVotes       int    `db:"helpful_votes"`
	IsVerifiedPurchase bool   `db:"is_verified_purchase"`
	BookTitle          string `db:"book_title"`
	UserDisplayName    string `db:"user_display_name"`
	Timestamps
}
