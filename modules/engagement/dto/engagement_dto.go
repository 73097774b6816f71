package dto

import (
	"time"

	"community-events-api/modules/engagement/entity"
)

// ===================== Request DTOs =====================

// ToggleLikeRequest carries the desired end state, not an increment, so a
// repeated request converges instead of double-counting.
type ToggleLikeRequest struct {
	Liked bool `json:"liked"`
}

// PostCommentRequest for appending to an event's thread
type PostCommentRequest struct {
	Body       string `json:"body" validate:"required,min=1,max=500"`
	AuthorName string `json:"author_name" validate:"required,max=255"`
	Avatar     string `json:"avatar"`
}

// ===================== Response DTOs =====================

// LikeStatusResponse returns the authoritative recomputed count
type LikeStatusResponse struct {
	EventID   string `json:"event_id"`
	Liked     bool   `json:"liked"`
	LikeCount int    `json:"like_count"`
}

// CommentResponse for a single comment
type CommentResponse struct {
	ID         string    `json:"id"`
	EventID    string    `json:"event_id"`
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Avatar     string    `json:"avatar,omitempty"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"created_at"`
}

// ===================== Mapper Functions =====================

func ToCommentResponse(c *entity.Comment) *CommentResponse {
	resp := &CommentResponse{
		ID:         c.ID.String(),
		EventID:    c.EventID.String(),
		AuthorID:   c.AuthorID.String(),
		AuthorName: c.AuthorName,
		Body:       c.Body,
		CreatedAt:  c.CreatedAt,
	}
	if c.Avatar != nil {
		resp.Avatar = *c.Avatar
	}
	return resp
}

func ToCommentResponses(comments []entity.Comment) []CommentResponse {
	out := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		out = append(out, *ToCommentResponse(&comments[i]))
	}
	return out
}
