package dto

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error   string   `json:"error"`
	Message string   `json:"message,omitempty"`
	Details []string `json:"details,omitempty"`
}

// DeletedSummary identifies a deleted resource.
type DeletedSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// DeleteResponse confirms a deletion.
type DeleteResponse struct {
	Message string         `json:"message"`
	Deleted DeletedSummary `json:"deleted"`
}
