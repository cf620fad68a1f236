package domain

import "github.com/google/uuid"

// Board is a named collection of tasks with an owner and a member set.
// The owner is always kept in the member set so that visibility checks
// only need to consult the members.
type Board struct {
	BaseModel
	Title   string        `gorm:"type:varchar(200);not null" json:"title"`
	OwnerID uuid.UUID     `gorm:"type:uuid;not null;index:idx_boards_owner_id" json:"owner_id"`
	Owner   User          `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"owner,omitempty"`
	Members []BoardMember `gorm:"foreignKey:BoardID;constraint:OnDelete:CASCADE" json:"members,omitempty"`
	Tasks   []Task        `gorm:"foreignKey:BoardID;constraint:OnDelete:CASCADE" json:"tasks,omitempty"`
}

// TableName specifies the table name for Board
func (Board) TableName() string {
	return "boards"
}

// IsOwner reports whether the user owns the board
func (b *Board) IsOwner(userID uuid.UUID) bool {
	return b.OwnerID == userID
}

// IsMember reports whether the user is in the board's member set
func (b *Board) IsMember(userID uuid.UUID) bool {
	for _, m := range b.Members {
		if m.UserID == userID {
			return true
		}
	}
	return false
}

// AccessibleBy reports whether the user may view the board and the tasks
// and comments under it: owner or member.
func (b *Board) AccessibleBy(userID uuid.UUID) bool {
	return b.IsOwner(userID) || b.IsMember(userID)
}

// TaskCount returns the number of tasks on the board
func (b *Board) TaskCount() int {
	return len(b.Tasks)
}

// TasksWithStatus returns the number of tasks with the given status
func (b *Board) TasksWithStatus(status TaskStatus) int {
	n := 0
	for _, t := range b.Tasks {
		if t.Status == status {
			n++
		}
	}
	return n
}

// TasksWithPriority returns the number of tasks with the given priority
func (b *Board) TasksWithPriority(priority TaskPriority) int {
	n := 0
	for _, t := range b.Tasks {
		if t.Priority == priority {
			n++
		}
	}
	return n
}

// BoardMember is a membership row linking a user to a board
type BoardMember struct {
	BaseModel
	BoardID uuid.UUID `gorm:"type:uuid;not null;index:idx_board_members_board_id;uniqueIndex:uq_board_members_board_user" json:"board_id"`
	UserID  uuid.UUID `gorm:"type:uuid;not null;index:idx_board_members_user_id;uniqueIndex:uq_board_members_board_user" json:"user_id"`
	User    User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}

// TableName specifies the table name for BoardMember
func (BoardMember) TableName() string {
	return "board_members"
}
