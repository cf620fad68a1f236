package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"kanmind/internal/domain"
)

// TaskRepository defines data access for tasks
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	FindByAssignee(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error)
	FindByReviewer(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountComments(ctx context.Context, taskID uuid.UUID) (int64, error)
}

type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

// Create creates a new task
func (r *taskRepository) Create(ctx context.Context, task *domain.Task) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(task).Error
}

// FindByID loads a task with its board (including member rows for
// authorization checks), assignee, reviewer, and comments.
func (r *taskRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	var task domain.Task
	err := r.db.WithContext(ctx).
		Preload("Board.Members").
		Preload("Assignee").
		Preload("Reviewer").
		Preload("Comments").
		First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// FindByAssignee lists tasks assigned to the user, newest first
func (r *taskRepository) FindByAssignee(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error) {
	return r.findByUserColumn(ctx, "assignee_id", userID)
}

// FindByReviewer lists tasks the user is reviewing, newest first
func (r *taskRepository) FindByReviewer(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error) {
	return r.findByUserColumn(ctx, "reviewer_id", userID)
}

func (r *taskRepository) findByUserColumn(ctx context.Context, column string, userID uuid.UUID) ([]*domain.Task, error) {
	var tasks []*domain.Task
	err := r.db.WithContext(ctx).
		Where(column+" = ?", userID).
		Preload("Assignee").
		Preload("Reviewer").
		Order("created_at DESC").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update saves the task's own columns, leaving loaded relations alone
func (r *taskRepository) Update(ctx context.Context, task *domain.Task) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(task).Error
}

// Delete removes a task and its comments
func (r *taskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", id).Delete(&domain.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Task{}, "id = ?", id).Error
	})
}

// CountComments returns the number of comments on a task
func (r *taskRepository) CountComments(ctx context.Context, taskID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Comment{}).Where("task_id = ?", taskID).Count(&count).Error
	return count, err
}
