package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateCommentRequest is the body of POST /api/tasks/{id}/comments/
type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// CommentResponse is the comment view. Author is the display name of the
// comment's author; timestamps are UTC.
type CommentResponse struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
}
