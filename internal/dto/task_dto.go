package dto

import "github.com/google/uuid"

// CreateTaskRequest is the body of POST /api/tasks/
type CreateTaskRequest struct {
	Board       uuid.UUID    `json:"board" binding:"required"`
	Title       string       `json:"title" binding:"required"`
	Description string       `json:"description"`
	Status      string       `json:"status"`
	Priority    string       `json:"priority"`
	AssigneeID  NullableUUID `json:"assignee_id"`
	ReviewerID  NullableUUID `json:"reviewer_id"`
	DueDate     NullableDate `json:"due_date"`
}

// UpdateTaskRequest is the body of PATCH /api/tasks/{id}/. Only the
// fields present in the request are applied; assignee, reviewer, and due
// date may be explicitly set to null to clear them. The board a task
// belongs to cannot be changed.
type UpdateTaskRequest struct {
	Title       *string      `json:"title"`
	Description *string      `json:"description"`
	Status      *string      `json:"status"`
	Priority    *string      `json:"priority"`
	AssigneeID  NullableUUID `json:"assignee_id"`
	ReviewerID  NullableUUID `json:"reviewer_id"`
	DueDate     NullableDate `json:"due_date"`
}

// TaskResponse is the task view. CommentsCount is a pointer so the patch
// response can omit it while a count of zero still serializes for reads.
type TaskResponse struct {
	ID            uuid.UUID     `json:"id"`
	Board         uuid.UUID     `json:"board"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	Status        string        `json:"status"`
	Priority      string        `json:"priority"`
	Assignee      *UserResponse `json:"assignee"`
	Reviewer      *UserResponse `json:"reviewer"`
	DueDate       *string       `json:"due_date"`
	CommentsCount *int          `json:"comments_count,omitempty"`
}
