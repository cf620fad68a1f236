package service

import (
	"kanmind/internal/domain"
	"kanmind/internal/dto"
)

// Response builders shared by the services. Each endpoint picks an
// explicit shape here instead of relying on serializer dispatch.

func newUserResponse(u *domain.User) dto.UserResponse {
	return dto.UserResponse{
		ID:       u.ID,
		Email:    u.Email,
		Fullname: u.FullName(),
	}
}

func newUserResponsePtr(u *domain.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	r := newUserResponse(u)
	return &r
}

// newTaskResponse builds the task view. The patch result variant leaves
// the comment count out; every other variant carries it, zero included.
func newTaskResponse(t *domain.Task, withCommentsCount bool) dto.TaskResponse {
	resp := dto.TaskResponse{
		ID:          t.ID,
		Board:       t.BoardID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		Assignee:    newUserResponsePtr(t.Assignee),
		Reviewer:    newUserResponsePtr(t.Reviewer),
		DueDate:     dto.FormatDate(t.DueDate),
	}
	if withCommentsCount {
		count := len(t.Comments)
		resp.CommentsCount = &count
	}
	return resp
}

// newBoardResponse builds the summary view used by list/create
func newBoardResponse(b *domain.Board) dto.BoardResponse {
	return dto.BoardResponse{
		ID:                 b.ID,
		Title:              b.Title,
		MemberCount:        len(b.Members),
		TicketCount:        b.TaskCount(),
		TasksToDoCount:     b.TasksWithStatus(domain.StatusToDo),
		TasksHighPrioCount: b.TasksWithPriority(domain.PriorityHigh),
		OwnerID:            b.OwnerID,
	}
}

// newBoardDetailResponse builds the detail view with members and tasks
func newBoardDetailResponse(b *domain.Board) *dto.BoardDetailResponse {
	members := make([]dto.UserResponse, 0, len(b.Members))
	for i := range b.Members {
		members = append(members, newUserResponse(&b.Members[i].User))
	}

	tasks := make([]dto.TaskResponse, 0, len(b.Tasks))
	for i := range b.Tasks {
		tasks = append(tasks, newTaskResponse(&b.Tasks[i], true))
	}

	return &dto.BoardDetailResponse{
		ID:          b.ID,
		Title:       b.Title,
		OwnerID:     b.OwnerID,
		OwnerData:   newUserResponse(&b.Owner),
		MembersData: members,
		Tasks:       tasks,
	}
}

func newCommentResponse(c *domain.Comment) dto.CommentResponse {
	return dto.CommentResponse{
		ID:        c.ID,
		CreatedAt: c.CreatedAt.UTC(),
		Author:    c.Author.FullName(),
		Content:   c.Content,
	}
}
