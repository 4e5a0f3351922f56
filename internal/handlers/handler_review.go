package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/book_catalog_api/internal/core/ports/services"
	"github.com/SscSPs/book_catalog_api/internal/dto"
	"github.com/gin-gonic/gin"
)

// reviewHandler handles HTTP requests related to reviews.
type reviewHandler struct {
	reviewService portssvc.ReviewSvcFacade
}

func newReviewHandler(rs portssvc.ReviewSvcFacade) *reviewHandler {
	return &reviewHandler{reviewService: rs}
}

// registerReviewRoutes registers routes related to reviews.
func registerReviewRoutes(rg *gin.RouterGroup, reviewService portssvc.ReviewSvcFacade) {
	h := newReviewHandler(reviewService)

	reviews := rg.Group("/reviews")
	{
		reviews.GET("", h.listReviews)
		reviews.POST("", h.createReview)
		reviews.GET("/:id", h.getReview)
		reviews.PUT("/:id", h.updateReview)
		reviews.DELETE("/:id", h.deleteReview)
		reviews.POST("/:id/helpful", h.markHelpful)
	}
}

// listReviews godoc
// @Summary List reviews
// @Tags reviews
// @Produce json
// @Success 200 {array} dto.ReviewResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security SessionCookie
// @Router /reviews [get]
func (h *reviewHandler) listReviews(c *gin.Context) {
	reviews, err := h.reviewService.ListReviews(c.Request.Context())
	if err != nil {
		respondError(c, err, "list reviews")
		return
	}
	c.JSON(http.StatusOK, dto.ToReviewListResponse(reviews))
}

// getReview godoc
// @Summary Get a review
// @Tags reviews
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} dto.ReviewResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security SessionCookie
// @Router /reviews/{id} [get]
func (h *reviewHandler) getReview(c *gin.Context) {
	review, err := h.reviewService.GetReviewByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "get review")
		return
	}
	c.JSON(http.StatusOK, dto.ToReviewResponse(review))
}

// createReview godoc
// @Summary Create a review
// @Description The author is the current user.
// @Tags reviews
// @Accept json
// @Produce json
// @Param review body dto.ReviewRequest true "Review details"
// @Success 201 {object} dto.ReviewResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Book not found"
// @Security SessionCookie
// @Router /reviews [post]
func (h *reviewHandler) createReview(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.ReviewRequest
	if !bindJSON(c, &req) {
		return
	}

	review, err := h.reviewService.CreateReview(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "create review")
		return
	}
	c.JSON(http.StatusCreated, dto.ToReviewResponse(review))
}

// updateReview godoc
// @Summary Replace a review
// @Description Only the author may update a review. Ownership is checked before the body is validated.
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path string true "Review ID"
// @Param review body dto.ReviewRequest true "Review details"
// @Success 200 {object} dto.ReviewResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security SessionCookie
// @Router /reviews/{id} [put]
func (h *reviewHandler) updateReview(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	reviewID := c.Param("id")

	// A non-author is refused whatever the payload.
	if _, err := h.reviewService.AuthorizeMutation(c.Request.Context(), reviewID, userID); err != nil {
		respondError(c, err, "authorize review update")
		return
	}

	var req dto.ReviewRequest
	if !bindJSON(c, &req) {
		return
	}

	review, err := h.reviewService.UpdateReview(c.Request.Context(), reviewID, userID, req)
	if err != nil {
		respondError(c, err, "update review")
		return
	}
	c.JSON(http.StatusOK, dto.ToReviewResponse(review))
}

// deleteReview godoc
// @Summary Delete a review
// @Description Only the author may delete a review.
// @Tags reviews
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} dto.DeleteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security SessionCookie
// @Router /reviews/{id} [delete]
func (h *reviewHandler) deleteReview(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	review, err := h.reviewService.DeleteReview(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, err, "delete review")
		return
	}
	c.JSON(http.StatusOK, dto.DeleteResponse{
		Message: "Review deleted successfully",
		Deleted: dto.DeletedSummary{ID: review.ReviewID, Title: review.Title},
	})
}

// markHelpful godoc
// @Summary Vote a review helpful
// @Tags reviews
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} dto.ReviewResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security SessionCookie
// @Router /reviews/{id}/helpful [post]
func (h *reviewHandler) markHelpful(c *gin.Context) {
	review, err := h.reviewService.MarkHelpful(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "vote on review")
		return
	}
	c.JSON(http.StatusOK, dto.ToReviewResponse(review))
}
