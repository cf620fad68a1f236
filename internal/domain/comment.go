package domain

import "github.com/google/uuid"

// Comment is a text note authored by a user on a task. The creation
// timestamp is set once and never updated.
type Comment struct {
	BaseModel
	TaskID   uuid.UUID `gorm:"type:uuid;not null;index:idx_comments_task_id" json:"task_id"`
	AuthorID uuid.UUID `gorm:"type:uuid;not null;index:idx_comments_author_id" json:"author_id"`
	Content  string    `gorm:"type:text;not null" json:"content"`
	Task     Task      `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE" json:"task,omitempty"`
	Author   User      `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author,omitempty"`
}

// TableName specifies the table name for Comment
func (Comment) TableName() string {
	return "comments"
}

// DeletableBy reports whether the user may delete the comment: author only
func (c *Comment) DeletableBy(userID uuid.UUID) bool {
	return c.AuthorID == userID
}
