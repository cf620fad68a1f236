package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"kanmind/internal/domain"
	"kanmind/internal/metrics"
)

// newTestMetrics returns metrics bound to a throwaway registry so tests
// can run side by side without duplicate registration panics.
func newTestMetrics() *metrics.Metrics {
	return metrics.NewWithRegistry(prometheus.NewRegistry(), nil)
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	CreateFunc        func(ctx context.Context, user *domain.User) error
	FindByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindByEmailFunc   func(ctx context.Context, email string) (*domain.User, error)
	FindByIDsFunc     func(ctx context.Context, ids []uuid.UUID) ([]domain.User, error)
	ExistsByEmailFunc func(ctx context.Context, email string) (bool, error)
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error) {
	if m.FindByIDsFunc != nil {
		return m.FindByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, nil
}

// MockTokenRepository is a mock implementation of TokenRepository
type MockTokenRepository struct {
	CreateFunc        func(ctx context.Context, token *domain.AuthToken) error
	FindByKeyFunc     func(ctx context.Context, key string) (*domain.AuthToken, error)
	FindByUserIDFunc  func(ctx context.Context, userID uuid.UUID) (*domain.AuthToken, error)
	DeleteFunc        func(ctx context.Context, id uuid.UUID) error
	DeleteExpiredFunc func(ctx context.Context, now time.Time) (int64, error)
}

func (m *MockTokenRepository) Create(ctx context.Context, token *domain.AuthToken) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, token)
	}
	return nil
}

func (m *MockTokenRepository) FindByKey(ctx context.Context, key string) (*domain.AuthToken, error) {
	if m.FindByKeyFunc != nil {
		return m.FindByKeyFunc(ctx, key)
	}
	return nil, nil
}

func (m *MockTokenRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*domain.AuthToken, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockTokenRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockTokenRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	if m.DeleteExpiredFunc != nil {
		return m.DeleteExpiredFunc(ctx, now)
	}
	return 0, nil
}

// MockBoardRepository is a mock implementation of BoardRepository
type MockBoardRepository struct {
	CreateFunc         func(ctx context.Context, board *domain.Board) error
	FindByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.Board, error)
	FindByUserIDFunc   func(ctx context.Context, userID uuid.UUID) ([]*domain.Board, error)
	UpdateFunc         func(ctx context.Context, board *domain.Board) error
	ReplaceMembersFunc func(ctx context.Context, boardID uuid.UUID, userIDs []uuid.UUID) error
	DeleteFunc         func(ctx context.Context, id uuid.UUID) error
}

func (m *MockBoardRepository) Create(ctx context.Context, board *domain.Board) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, board)
	}
	return nil
}

func (m *MockBoardRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockBoardRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Board, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockBoardRepository) Update(ctx context.Context, board *domain.Board) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, board)
	}
	return nil
}

func (m *MockBoardRepository) ReplaceMembers(ctx context.Context, boardID uuid.UUID, userIDs []uuid.UUID) error {
	if m.ReplaceMembersFunc != nil {
		return m.ReplaceMembersFunc(ctx, boardID, userIDs)
	}
	return nil
}

func (m *MockBoardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockTaskRepository is a mock implementation of TaskRepository
type MockTaskRepository struct {
	CreateFunc         func(ctx context.Context, task *domain.Task) error
	FindByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	FindByAssigneeFunc func(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error)
	FindByReviewerFunc func(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error)
	UpdateFunc         func(ctx context.Context, task *domain.Task) error
	DeleteFunc         func(ctx context.Context, id uuid.UUID) error
	CountCommentsFunc  func(ctx context.Context, taskID uuid.UUID) (int64, error)
}

func (m *MockTaskRepository) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, task)
	}
	return nil
}

func (m *MockTaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockTaskRepository) FindByAssignee(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error) {
	if m.FindByAssigneeFunc != nil {
		return m.FindByAssigneeFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockTaskRepository) FindByReviewer(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error) {
	if m.FindByReviewerFunc != nil {
		return m.FindByReviewerFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockTaskRepository) Update(ctx context.Context, task *domain.Task) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, task)
	}
	return nil
}

func (m *MockTaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockTaskRepository) CountComments(ctx context.Context, taskID uuid.UUID) (int64, error) {
	if m.CountCommentsFunc != nil {
		return m.CountCommentsFunc(ctx, taskID)
	}
	return 0, nil
}

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	CreateFunc       func(ctx context.Context, comment *domain.Comment) error
	FindByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	FindByTaskIDFunc func(ctx context.Context, taskID uuid.UUID) ([]*domain.Comment, error)
	DeleteFunc       func(ctx context.Context, id uuid.UUID) error
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, comment)
	}
	return nil
}

func (m *MockCommentRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockCommentRepository) FindByTaskID(ctx context.Context, taskID uuid.UUID) ([]*domain.Comment, error) {
	if m.FindByTaskIDFunc != nil {
		return m.FindByTaskIDFunc(ctx, taskID)
	}
	return nil, nil
}

func (m *MockCommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockTokenCache is a mock implementation of TokenCache
type MockTokenCache struct {
	GetFunc    func(ctx context.Context, key string) (uuid.UUID, bool)
	SetFunc    func(ctx context.Context, key string, userID uuid.UUID, ttl time.Duration)
	DeleteFunc func(ctx context.Context, key string)
}

func (m *MockTokenCache) Get(ctx context.Context, key string) (uuid.UUID, bool) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	return uuid.Nil, false
}

func (m *MockTokenCache) Set(ctx context.Context, key string, userID uuid.UUID, ttl time.Duration) {
	if m.SetFunc != nil {
		m.SetFunc(ctx, key, userID, ttl)
	}
}

func (m *MockTokenCache) Delete(ctx context.Context, key string) {
	if m.DeleteFunc != nil {
		m.DeleteFunc(ctx, key)
	}
}
