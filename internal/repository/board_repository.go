package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kanmind/internal/domain"
)

// BoardRepository defines data access for boards and their member set
type BoardRepository interface {
	Create(ctx context.Context, board *domain.Board) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Board, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Board, error)
	Update(ctx context.Context, board *domain.Board) error
	ReplaceMembers(ctx context.Context, boardID uuid.UUID, userIDs []uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type boardRepository struct {
	db *gorm.DB
}

// NewBoardRepository creates a new BoardRepository
func NewBoardRepository(db *gorm.DB) BoardRepository {
	return &boardRepository{db: db}
}

// Create creates a board together with any member rows attached to it
func (r *boardRepository) Create(ctx context.Context, board *domain.Board) error {
	return r.db.WithContext(ctx).Create(board).Error
}

// FindByID loads a board with owner, members, and tasks (including the
// task relations the detail view needs).
func (r *boardRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
	var board domain.Board
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Preload("Members.User").
		Preload("Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("tasks.created_at DESC")
		}).
		Preload("Tasks.Assignee").
		Preload("Tasks.Reviewer").
		Preload("Tasks.Comments").
		First(&board, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &board, nil
}

// FindByUserID lists all boards the user owns or is a member of,
// newest first.
func (r *boardRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Board, error) {
	var boards []*domain.Board
	err := r.db.WithContext(ctx).
		Distinct("boards.*").
		Joins("LEFT JOIN board_members ON board_members.board_id = boards.id").
		Where("boards.owner_id = ? OR board_members.user_id = ?", userID, userID).
		Preload("Members").
		Preload("Tasks").
		Order("boards.created_at DESC").
		Find(&boards).Error
	if err != nil {
		return nil, err
	}
	return boards, nil
}

// Update saves board scalar fields
func (r *boardRepository) Update(ctx context.Context, board *domain.Board) error {
	return r.db.WithContext(ctx).Model(board).Updates(map[string]interface{}{
		"title": board.Title,
	}).Error
}

// ReplaceMembers sets the board's member rows to exactly the given user
// IDs inside a transaction.
func (r *boardRepository) ReplaceMembers(ctx context.Context, boardID uuid.UUID, userIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("board_id = ?", boardID).Delete(&domain.BoardMember{}).Error; err != nil {
			return err
		}
		for _, userID := range userIDs {
			member := domain.BoardMember{BoardID: boardID, UserID: userID}
			if err := tx.Create(&member).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes a board and cascades to its member rows, tasks, and the
// comments under those tasks.
func (r *boardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taskIDs := tx.Model(&domain.Task{}).Select("id").Where("board_id = ?", id)
		if err := tx.Where("task_id IN (?)", taskIDs).Delete(&domain.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("board_id = ?", id).Delete(&domain.Task{}).Error; err != nil {
			return err
		}
		if err := tx.Where("board_id = ?", id).Delete(&domain.BoardMember{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Board{}, "id = ?", id).Error
	})
}
