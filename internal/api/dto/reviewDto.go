package dto

import (
	"time"

	"bookhub/internal/api/models"
)

// AddReviewRequest: payload for POST /api/users/reviews/:bookId.
// Comments are capped at 2000 characters.
type AddReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"max=2000"`
}

type ReviewResponse struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName,omitempty"`
	BookID    int64     `json:"bookId"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

// BookReviewsResponse is the aggregate for GET /api/users/reviews/:bookId.
type BookReviewsResponse struct {
	Reviews       []ReviewResponse `json:"reviews"`
	AverageRating float64          `json:"averageRating"`
	ReviewCount   int64            `json:"reviewCount"`
}

func FromModelToReviewResponse(r models.Review) ReviewResponse {
	resp := ReviewResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		BookID:    r.BookID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
	if r.User != nil {
		resp.UserName = r.User.Username
	}
	return resp
}
