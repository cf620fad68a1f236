package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"kanmind/internal/domain"
	"kanmind/internal/dto"
	"kanmind/internal/metrics"
	"kanmind/internal/repository"
	"kanmind/internal/response"
)

// CommentService defines the interface for comment business logic
type CommentService interface {
	ListComments(ctx context.Context, actorID, taskID uuid.UUID) ([]dto.CommentResponse, error)
	CreateComment(ctx context.Context, actorID, taskID uuid.UUID, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
	DeleteComment(ctx context.Context, actorID, taskID, commentID uuid.UUID) error
}

type commentServiceImpl struct {
	commentRepo repository.CommentRepository
	taskRepo    repository.TaskRepository
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewCommentService creates a new CommentService
func NewCommentService(
	commentRepo repository.CommentRepository,
	taskRepo repository.TaskRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) CommentService {
	return &commentServiceImpl{
		commentRepo: commentRepo,
		taskRepo:    taskRepo,
		metrics:     m,
		logger:      logger,
	}
}

// ListComments lists a task's comments for board owners and members,
// oldest first.
func (s *commentServiceImpl) ListComments(ctx context.Context, actorID, taskID uuid.UUID) ([]dto.CommentResponse, error) {
	if err := s.checkTaskAccess(ctx, actorID, taskID); err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.FindByTaskID(ctx, taskID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list comments", err.Error())
	}

	responses := make([]dto.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		responses = append(responses, newCommentResponse(comment))
	}
	return responses, nil
}

// CreateComment adds a comment authored by the actor to a task
func (s *commentServiceImpl) CreateComment(ctx context.Context, actorID, taskID uuid.UUID, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	if req.Content == "" {
		return nil, response.NewValidationError("content", "This field is required.")
	}

	if err := s.checkTaskAccess(ctx, actorID, taskID); err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		TaskID:   taskID,
		AuthorID: actorID,
		Content:  req.Content,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create comment", err.Error())
	}

	s.metrics.IncrementCommentCreated()

	// Reload so the response carries the author's display name
	created, err := s.commentRepo.FindByID(ctx, comment.ID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load created comment", err.Error())
	}
	resp := newCommentResponse(created)
	return &resp, nil
}

// DeleteComment removes a comment. Author only; the comment must belong
// to the task in the request path.
func (s *commentServiceImpl) DeleteComment(ctx context.Context, actorID, taskID, commentID uuid.UUID) error {
	comment, err := s.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.TaskID != taskID {
		return gorm.ErrRecordNotFound
	}
	if !comment.DeletableBy(actorID) {
		return response.NewAppError(response.ErrCodeForbidden, "Only the comment author may delete the comment", "")
	}

	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete comment", err.Error())
	}

	s.logger.Info("Comment deleted",
		zap.String("comment_id", commentID.String()),
		zap.String("author_id", actorID.String()),
	)
	return nil
}

// checkTaskAccess loads the task and verifies the actor may access the
// board it belongs to.
func (s *commentServiceImpl) checkTaskAccess(ctx context.Context, actorID, taskID uuid.UUID) error {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return err
	}
	if !task.Board.AccessibleBy(actorID) {
		return response.NewAppError(response.ErrCodeForbidden, "You are not a member of this board", "")
	}
	return nil
}
