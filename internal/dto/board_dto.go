package dto

import "github.com/google/uuid"

// CreateBoardRequest is the body of POST /api/boards/
type CreateBoardRequest struct {
	Title   string      `json:"title" binding:"required"`
	Members []uuid.UUID `json:"members"`
}

// UpdateBoardRequest is the body of PATCH /api/boards/{id}/. Both fields
// are optional; a provided member list replaces the current one (the
// owner stays a member regardless).
type UpdateBoardRequest struct {
	Title   *string      `json:"title"`
	Members *[]uuid.UUID `json:"members"`
}

// BoardResponse is the summary view used by board list/create
type BoardResponse struct {
	ID                 uuid.UUID `json:"id"`
	Title              string    `json:"title"`
	MemberCount        int       `json:"member_count"`
	TicketCount        int       `json:"ticket_count"`
	TasksToDoCount     int       `json:"tasks_to_do_count"`
	TasksHighPrioCount int       `json:"tasks_high_prio_count"`
	OwnerID            uuid.UUID `json:"owner_id"`
}

// BoardDetailResponse is the detail view including members and tasks
type BoardDetailResponse struct {
	ID          uuid.UUID      `json:"id"`
	Title       string         `json:"title"`
	OwnerID     uuid.UUID      `json:"owner_id"`
	OwnerData   UserResponse   `json:"owner_data"`
	MembersData []UserResponse `json:"members_data"`
	Tasks       []TaskResponse `json:"tasks"`
}
