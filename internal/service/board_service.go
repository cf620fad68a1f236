package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"kanmind/internal/domain"
	"kanmind/internal/dto"
	"kanmind/internal/metrics"
	"kanmind/internal/repository"
	"kanmind/internal/response"
)

// BoardService defines the interface for board business logic
type BoardService interface {
	ListBoards(ctx context.Context, actorID uuid.UUID) ([]dto.BoardResponse, error)
	CreateBoard(ctx context.Context, actorID uuid.UUID, req *dto.CreateBoardRequest) (*dto.BoardResponse, error)
	GetBoard(ctx context.Context, actorID, boardID uuid.UUID) (*dto.BoardDetailResponse, error)
	UpdateBoard(ctx context.Context, actorID, boardID uuid.UUID, req *dto.UpdateBoardRequest) (*dto.BoardDetailResponse, error)
	DeleteBoard(ctx context.Context, actorID, boardID uuid.UUID) error
}

type boardServiceImpl struct {
	boardRepo repository.BoardRepository
	userRepo  repository.UserRepository
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

// NewBoardService creates a new BoardService
func NewBoardService(
	boardRepo repository.BoardRepository,
	userRepo repository.UserRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) BoardService {
	return &boardServiceImpl{
		boardRepo: boardRepo,
		userRepo:  userRepo,
		metrics:   m,
		logger:    logger,
	}
}

// ListBoards lists all boards the actor owns or is a member of
func (s *boardServiceImpl) ListBoards(ctx context.Context, actorID uuid.UUID) ([]dto.BoardResponse, error) {
	boards, err := s.boardRepo.FindByUserID(ctx, actorID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list boards", err.Error())
	}

	responses := make([]dto.BoardResponse, 0, len(boards))
	for _, board := range boards {
		responses = append(responses, newBoardResponse(board))
	}
	return responses, nil
}

// CreateBoard creates a board owned by the actor. The actor is always
// added to the member set, whether or not the request lists them.
func (s *boardServiceImpl) CreateBoard(ctx context.Context, actorID uuid.UUID, req *dto.CreateBoardRequest) (*dto.BoardResponse, error) {
	if req.Title == "" {
		return nil, response.NewValidationError("title", "This field is required.")
	}

	memberIDs, err := s.resolveMemberIDs(ctx, actorID, req.Members)
	if err != nil {
		return nil, err
	}

	members := make([]domain.BoardMember, 0, len(memberIDs))
	for _, userID := range memberIDs {
		members = append(members, domain.BoardMember{UserID: userID})
	}

	board := &domain.Board{
		Title:   req.Title,
		OwnerID: actorID,
		Members: members,
	}
	if err := s.boardRepo.Create(ctx, board); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create board", err.Error())
	}

	s.metrics.IncrementBoardCreated()
	s.logger.Info("Board created",
		zap.String("board_id", board.ID.String()),
		zap.String("owner_id", actorID.String()),
	)

	resp := newBoardResponse(board)
	return &resp, nil
}

// GetBoard returns the detailed board view for owners and members
func (s *boardServiceImpl) GetBoard(ctx context.Context, actorID, boardID uuid.UUID) (*dto.BoardDetailResponse, error) {
	board, err := s.boardRepo.FindByID(ctx, boardID)
	if err != nil {
		return nil, err
	}
	if !board.AccessibleBy(actorID) {
		return nil, response.NewAppError(response.ErrCodeForbidden, "You are not a member of this board", "")
	}
	return newBoardDetailResponse(board), nil
}

// UpdateBoard updates title and/or replaces the member set. Owner only;
// the owner stays in the member set regardless of the given list.
func (s *boardServiceImpl) UpdateBoard(ctx context.Context, actorID, boardID uuid.UUID, req *dto.UpdateBoardRequest) (*dto.BoardDetailResponse, error) {
	board, err := s.boardRepo.FindByID(ctx, boardID)
	if err != nil {
		return nil, err
	}
	if !board.IsOwner(actorID) {
		return nil, response.NewAppError(response.ErrCodeForbidden, "Only the board owner may update the board", "")
	}

	if req.Title != nil {
		if *req.Title == "" {
			return nil, response.NewValidationError("title", "Title cannot be empty.")
		}
		board.Title = *req.Title
		if err := s.boardRepo.Update(ctx, board); err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update board", err.Error())
		}
	}

	if req.Members != nil {
		memberIDs, err := s.resolveMemberIDs(ctx, board.OwnerID, *req.Members)
		if err != nil {
			return nil, err
		}
		if err := s.boardRepo.ReplaceMembers(ctx, board.ID, memberIDs); err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update members", err.Error())
		}
	}

	// Reload for a fresh response
	board, err = s.boardRepo.FindByID(ctx, boardID)
	if err != nil {
		return nil, err
	}
	return newBoardDetailResponse(board), nil
}

// DeleteBoard removes a board. Owner only; tasks and their comments are
// deleted along with it.
func (s *boardServiceImpl) DeleteBoard(ctx context.Context, actorID, boardID uuid.UUID) error {
	board, err := s.boardRepo.FindByID(ctx, boardID)
	if err != nil {
		return err
	}
	if !board.IsOwner(actorID) {
		return response.NewAppError(response.ErrCodeForbidden, "Only the board owner may delete the board", "")
	}

	if err := s.boardRepo.Delete(ctx, boardID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete board", err.Error())
	}

	s.logger.Info("Board deleted",
		zap.String("board_id", boardID.String()),
		zap.String("owner_id", actorID.String()),
	)
	return nil
}

// resolveMemberIDs validates the requested member IDs against existing
// users and returns them deduplicated with the owner included.
func (s *boardServiceImpl) resolveMemberIDs(ctx context.Context, ownerID uuid.UUID, requested []uuid.UUID) ([]uuid.UUID, error) {
	unique := make([]uuid.UUID, 0, len(requested)+1)
	seen := map[uuid.UUID]bool{}
	for _, id := range requested {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}

	users, err := s.userRepo.FindByIDs(ctx, unique)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to look up members", err.Error())
	}
	if len(users) != len(unique) {
		return nil, response.NewValidationError("members", "One or more members do not exist.")
	}

	if !seen[ownerID] {
		unique = append(unique, ownerID)
	}
	return unique, nil
}
