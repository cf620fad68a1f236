package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"kanmind/internal/domain"
	"kanmind/internal/dto"
	"kanmind/internal/metrics"
	"kanmind/internal/repository"
	"kanmind/internal/response"
)

// TaskService defines the interface for task business logic
type TaskService interface {
	CreateTask(ctx context.Context, actorID uuid.UUID, req *dto.CreateTaskRequest) (*dto.TaskResponse, error)
	GetTask(ctx context.Context, actorID, taskID uuid.UUID) (*dto.TaskResponse, error)
	ListAssignedToMe(ctx context.Context, actorID uuid.UUID) ([]dto.TaskResponse, error)
	ListReviewing(ctx context.Context, actorID uuid.UUID) ([]dto.TaskResponse, error)
	UpdateTask(ctx context.Context, actorID, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error)
	DeleteTask(ctx context.Context, actorID, taskID uuid.UUID) error
}

type taskServiceImpl struct {
	taskRepo  repository.TaskRepository
	boardRepo repository.BoardRepository
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

// NewTaskService creates a new TaskService
func NewTaskService(
	taskRepo repository.TaskRepository,
	boardRepo repository.BoardRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) TaskService {
	return &taskServiceImpl{
		taskRepo:  taskRepo,
		boardRepo: boardRepo,
		metrics:   m,
		logger:    logger,
	}
}

// CreateTask creates a task on a board the actor belongs to
func (s *taskServiceImpl) CreateTask(ctx context.Context, actorID uuid.UUID, req *dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	board, err := s.boardRepo.FindByID(ctx, req.Board)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewValidationError("board", "Board not found.")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to look up board", err.Error())
	}
	if !board.AccessibleBy(actorID) {
		return nil, response.NewAppError(response.ErrCodeForbidden, "You are not a member of this board", "")
	}

	if req.Title == "" {
		return nil, response.NewValidationError("title", "This field is required.")
	}

	status := domain.StatusToDo
	if req.Status != "" {
		status = domain.TaskStatus(req.Status)
		if !status.Valid() {
			return nil, response.NewValidationError("status", "Status must be one of: to-do, in-progress, review, done.")
		}
	}
	priority := domain.PriorityMedium
	if req.Priority != "" {
		priority = domain.TaskPriority(req.Priority)
		if !priority.Valid() {
			return nil, response.NewValidationError("priority", "Priority must be one of: low, medium, high.")
		}
	}

	if err := validateTaskUser(board, req.AssigneeID.Value, "assignee_id"); err != nil {
		return nil, err
	}
	if err := validateTaskUser(board, req.ReviewerID.Value, "reviewer_id"); err != nil {
		return nil, err
	}

	createdBy := actorID
	task := &domain.Task{
		BoardID:     board.ID,
		CreatedByID: &createdBy,
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		Priority:    priority,
		AssigneeID:  req.AssigneeID.Value,
		ReviewerID:  req.ReviewerID.Value,
		DueDate:     req.DueDate.Value,
	}
	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create task", err.Error())
	}

	s.metrics.IncrementTaskCreated()
	s.logger.Info("Task created",
		zap.String("task_id", task.ID.String()),
		zap.String("board_id", board.ID.String()),
		zap.String("created_by", actorID.String()),
	)

	// Reload so the response carries nested assignee/reviewer data
	created, err := s.taskRepo.FindByID(ctx, task.ID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load created task", err.Error())
	}
	resp := newTaskResponse(created, true)
	return &resp, nil
}

// GetTask returns the task view for board owners and members
func (s *taskServiceImpl) GetTask(ctx context.Context, actorID, taskID uuid.UUID) (*dto.TaskResponse, error) {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if !task.Board.AccessibleBy(actorID) {
		return nil, response.NewAppError(response.ErrCodeForbidden, "You are not a member of this board", "")
	}
	resp := newTaskResponse(task, true)
	return &resp, nil
}

// ListAssignedToMe lists tasks where the actor is the assignee
func (s *taskServiceImpl) ListAssignedToMe(ctx context.Context, actorID uuid.UUID) ([]dto.TaskResponse, error) {
	tasks, err := s.taskRepo.FindByAssignee(ctx, actorID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list tasks", err.Error())
	}
	return s.toTaskResponses(ctx, tasks)
}

// ListReviewing lists tasks where the actor is the reviewer
func (s *taskServiceImpl) ListReviewing(ctx context.Context, actorID uuid.UUID) ([]dto.TaskResponse, error) {
	tasks, err := s.taskRepo.FindByReviewer(ctx, actorID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list tasks", err.Error())
	}
	return s.toTaskResponses(ctx, tasks)
}

// UpdateTask applies a partial update. The response is the patch-result
// variant of the task view, without the comment count.
func (s *taskServiceImpl) UpdateTask(ctx context.Context, actorID, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if !task.Board.AccessibleBy(actorID) {
		return nil, response.NewAppError(response.ErrCodeForbidden, "You are not a member of this board", "")
	}

	if req.Title != nil {
		if *req.Title == "" {
			return nil, response.NewValidationError("title", "Title cannot be empty.")
		}
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Status != nil {
		status := domain.TaskStatus(*req.Status)
		if !status.Valid() {
			return nil, response.NewValidationError("status", "Status must be one of: to-do, in-progress, review, done.")
		}
		task.Status = status
	}
	if req.Priority != nil {
		priority := domain.TaskPriority(*req.Priority)
		if !priority.Valid() {
			return nil, response.NewValidationError("priority", "Priority must be one of: low, medium, high.")
		}
		task.Priority = priority
	}
	if req.AssigneeID.Set {
		if err := validateTaskUser(&task.Board, req.AssigneeID.Value, "assignee_id"); err != nil {
			return nil, err
		}
		task.AssigneeID = req.AssigneeID.Value
	}
	if req.ReviewerID.Set {
		if err := validateTaskUser(&task.Board, req.ReviewerID.Value, "reviewer_id"); err != nil {
			return nil, err
		}
		task.ReviewerID = req.ReviewerID.Value
	}
	if req.DueDate.Set {
		task.DueDate = req.DueDate.Value
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update task", err.Error())
	}

	// Reload so nested assignee/reviewer reflect the update
	updated, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load updated task", err.Error())
	}
	resp := newTaskResponse(updated, false)
	return &resp, nil
}

// DeleteTask removes a task. Allowed for the task creator and the board
// owner; the task's comments go with it.
func (s *taskServiceImpl) DeleteTask(ctx context.Context, actorID, taskID uuid.UUID) error {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return err
	}
	if !task.Board.AccessibleBy(actorID) {
		return response.NewAppError(response.ErrCodeForbidden, "You are not a member of this board", "")
	}
	if !task.DeletableBy(actorID) {
		return response.NewAppError(response.ErrCodeForbidden, "Only the task creator or board owner may delete the task", "")
	}

	if err := s.taskRepo.Delete(ctx, taskID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete task", err.Error())
	}

	s.logger.Info("Task deleted",
		zap.String("task_id", taskID.String()),
		zap.String("actor_id", actorID.String()),
	)
	return nil
}

// toTaskResponses builds list views. The list queries do not load
// comment rows, so the counts come from CountComments instead.
func (s *taskServiceImpl) toTaskResponses(ctx context.Context, tasks []*domain.Task) ([]dto.TaskResponse, error) {
	responses := make([]dto.TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		count, err := s.taskRepo.CountComments(ctx, task.ID)
		if err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to count comments", err.Error())
		}
		resp := newTaskResponse(task, false)
		n := int(count)
		resp.CommentsCount = &n
		responses = append(responses, resp)
	}
	return responses, nil
}

// validateTaskUser checks that an assignee or reviewer, when set, is the
// board owner or a board member.
func validateTaskUser(board *domain.Board, userID *uuid.UUID, field string) error {
	if userID == nil {
		return nil
	}
	if !board.AccessibleBy(*userID) {
		return response.NewValidationError(field, "The user must be a member of the board.")
	}
	return nil
}
