package domain

// Review is a user's opinion of a book. AuthorID never changes after creation.
type Review struct {
	ReviewID           string `json:"id"`
	BookID             string `json:"bookId"`
	AuthorID           string `json:"userId"`
	Rating             int    `json:"rating"`
	Title              string `json:"title"`
	Content            string `json:"content"`
	HelpfulVotes       int    `json:"helpfulVotes"`
	IsVerifiedPurchase bool   `json:"isVerifiedPurchase"`
	Timestamps

	// Populated by read queries.
	BookTitle         string `json:"-"`
	AuthorDisplayName string `json:"-"`
}

// IsAuthoredBy reports whether userID wrote the review.
func (r *Review) IsAuthoredBy(userID string) bool {
	return userID != "" && r.AuthorID == userID
}
