package domain

import (
	"time"

	"github.com/google/uuid"
)

// TaskStatus represents the workflow state of a task
type TaskStatus string

const (
	StatusToDo       TaskStatus = "to-do"
	StatusInProgress TaskStatus = "in-progress"
	StatusReview     TaskStatus = "review"
	StatusDone       TaskStatus = "done"
)

// Valid reports whether the status is one of the known workflow states
func (s TaskStatus) Valid() bool {
	switch s {
	case StatusToDo, StatusInProgress, StatusReview, StatusDone:
		return true
	}
	return false
}

// TaskPriority represents the urgency of a task
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// Valid reports whether the priority is one of the known levels
func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task is a unit of work on a board. Assignee and reviewer, when set,
// must be the board owner or a board member.
type Task struct {
	BaseModel
	BoardID     uuid.UUID    `gorm:"type:uuid;not null;index:idx_tasks_board_id" json:"board_id"`
	CreatedByID *uuid.UUID   `gorm:"type:uuid;index:idx_tasks_created_by_id" json:"created_by_id"`
	Title       string       `gorm:"type:varchar(200);not null" json:"title"`
	Description string       `gorm:"type:text" json:"description"`
	Status      TaskStatus   `gorm:"type:varchar(20);not null;default:'to-do'" json:"status"`
	Priority    TaskPriority `gorm:"type:varchar(10);not null;default:'medium'" json:"priority"`
	AssigneeID  *uuid.UUID   `gorm:"type:uuid;index:idx_tasks_assignee_id" json:"assignee_id"`
	ReviewerID  *uuid.UUID   `gorm:"type:uuid;index:idx_tasks_reviewer_id" json:"reviewer_id"`
	DueDate     *time.Time   `gorm:"type:date" json:"due_date"`
	Board       Board        `gorm:"foreignKey:BoardID;constraint:OnDelete:CASCADE" json:"board,omitempty"`
	CreatedBy   *User        `gorm:"foreignKey:CreatedByID;constraint:OnDelete:SET NULL" json:"created_by,omitempty"`
	Assignee    *User        `gorm:"foreignKey:AssigneeID;constraint:OnDelete:SET NULL" json:"assignee,omitempty"`
	Reviewer    *User        `gorm:"foreignKey:ReviewerID;constraint:OnDelete:SET NULL" json:"reviewer,omitempty"`
	Comments    []Comment    `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE" json:"comments,omitempty"`
}

// TableName specifies the table name for Task
func (Task) TableName() string {
	return "tasks"
}

// CreatedByUser reports whether the task was created by the given user
func (t *Task) CreatedByUser(userID uuid.UUID) bool {
	return t.CreatedByID != nil && *t.CreatedByID == userID
}

// DeletableBy reports whether the user may delete the task: the task
// creator or the board owner. The task's Board must be loaded.
func (t *Task) DeletableBy(userID uuid.UUID) bool {
	return t.CreatedByUser(userID) || t.Board.IsOwner(userID)
}
