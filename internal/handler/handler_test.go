package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"kanmind/internal/dto"
)

// setupTestRouter builds a gin engine that trusts an X-User-ID header in
// place of the real auth middleware.
func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if userIDStr := c.GetHeader("X-User-ID"); userIDStr != "" {
			if userID, err := uuid.Parse(userIDStr); err == nil {
				c.Set("user_id", userID)
			}
		}
		c.Next()
	})
	return router
}

// MockAuthService is a mock implementation of service.AuthService
type MockAuthService struct {
	RegisterFunc      func(ctx context.Context, req *dto.RegistrationRequest) (*dto.AuthResponse, error)
	LoginFunc         func(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	CheckEmailFunc    func(ctx context.Context, email string) (*dto.UserResponse, error)
	ValidateTokenFunc func(ctx context.Context, key string) (uuid.UUID, error)
}

func (m *MockAuthService) Register(ctx context.Context, req *dto.RegistrationRequest) (*dto.AuthResponse, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) CheckEmail(ctx context.Context, email string) (*dto.UserResponse, error) {
	if m.CheckEmailFunc != nil {
		return m.CheckEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockAuthService) ValidateToken(ctx context.Context, key string) (uuid.UUID, error) {
	if m.ValidateTokenFunc != nil {
		return m.ValidateTokenFunc(ctx, key)
	}
	return uuid.Nil, nil
}

// MockBoardService is a mock implementation of service.BoardService
type MockBoardService struct {
	ListBoardsFunc  func(ctx context.Context, actorID uuid.UUID) ([]dto.BoardResponse, error)
	CreateBoardFunc func(ctx context.Context, actorID uuid.UUID, req *dto.CreateBoardRequest) (*dto.BoardResponse, error)
	GetBoardFunc    func(ctx context.Context, actorID, boardID uuid.UUID) (*dto.BoardDetailResponse, error)
	UpdateBoardFunc func(ctx context.Context, actorID, boardID uuid.UUID, req *dto.UpdateBoardRequest) (*dto.BoardDetailResponse, error)
	DeleteBoardFunc func(ctx context.Context, actorID, boardID uuid.UUID) error
}

func (m *MockBoardService) ListBoards(ctx context.Context, actorID uuid.UUID) ([]dto.BoardResponse, error) {
	if m.ListBoardsFunc != nil {
		return m.ListBoardsFunc(ctx, actorID)
	}
	return nil, nil
}

func (m *MockBoardService) CreateBoard(ctx context.Context, actorID uuid.UUID, req *dto.CreateBoardRequest) (*dto.BoardResponse, error) {
	if m.CreateBoardFunc != nil {
		return m.CreateBoardFunc(ctx, actorID, req)
	}
	return nil, nil
}

func (m *MockBoardService) GetBoard(ctx context.Context, actorID, boardID uuid.UUID) (*dto.BoardDetailResponse, error) {
	if m.GetBoardFunc != nil {
		return m.GetBoardFunc(ctx, actorID, boardID)
	}
	return nil, nil
}

func (m *MockBoardService) UpdateBoard(ctx context.Context, actorID, boardID uuid.UUID, req *dto.UpdateBoardRequest) (*dto.BoardDetailResponse, error) {
	if m.UpdateBoardFunc != nil {
		return m.UpdateBoardFunc(ctx, actorID, boardID, req)
	}
	return nil, nil
}

func (m *MockBoardService) DeleteBoard(ctx context.Context, actorID, boardID uuid.UUID) error {
	if m.DeleteBoardFunc != nil {
		return m.DeleteBoardFunc(ctx, actorID, boardID)
	}
	return nil
}

// MockTaskService is a mock implementation of service.TaskService
type MockTaskService struct {
	CreateTaskFunc       func(ctx context.Context, actorID uuid.UUID, req *dto.CreateTaskRequest) (*dto.TaskResponse, error)
	GetTaskFunc          func(ctx context.Context, actorID, taskID uuid.UUID) (*dto.TaskResponse, error)
	ListAssignedToMeFunc func(ctx context.Context, actorID uuid.UUID) ([]dto.TaskResponse, error)
	ListReviewingFunc    func(ctx context.Context, actorID uuid.UUID) ([]dto.TaskResponse, error)
	UpdateTaskFunc       func(ctx context.Context, actorID, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error)
	DeleteTaskFunc       func(ctx context.Context, actorID, taskID uuid.UUID) error
}

func (m *MockTaskService) CreateTask(ctx context.Context, actorID uuid.UUID, req *dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	if m.CreateTaskFunc != nil {
		return m.CreateTaskFunc(ctx, actorID, req)
	}
	return nil, nil
}

func (m *MockTaskService) GetTask(ctx context.Context, actorID, taskID uuid.UUID) (*dto.TaskResponse, error) {
	if m.GetTaskFunc != nil {
		return m.GetTaskFunc(ctx, actorID, taskID)
	}
	return nil, nil
}

func (m *MockTaskService) ListAssignedToMe(ctx context.Context, actorID uuid.UUID) ([]dto.TaskResponse, error) {
	if m.ListAssignedToMeFunc != nil {
		return m.ListAssignedToMeFunc(ctx, actorID)
	}
	return nil, nil
}

func (m *MockTaskService) ListReviewing(ctx context.Context, actorID uuid.UUID) ([]dto.TaskResponse, error) {
	if m.ListReviewingFunc != nil {
		return m.ListReviewingFunc(ctx, actorID)
	}
	return nil, nil
}

func (m *MockTaskService) UpdateTask(ctx context.Context, actorID, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	if m.UpdateTaskFunc != nil {
		return m.UpdateTaskFunc(ctx, actorID, taskID, req)
	}
	return nil, nil
}

func (m *MockTaskService) DeleteTask(ctx context.Context, actorID, taskID uuid.UUID) error {
	if m.DeleteTaskFunc != nil {
		return m.DeleteTaskFunc(ctx, actorID, taskID)
	}
	return nil
}

// MockCommentService is a mock implementation of service.CommentService
type MockCommentService struct {
	ListCommentsFunc  func(ctx context.Context, actorID, taskID uuid.UUID) ([]dto.CommentResponse, error)
	CreateCommentFunc func(ctx context.Context, actorID, taskID uuid.UUID, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
	DeleteCommentFunc func(ctx context.Context, actorID, taskID, commentID uuid.UUID) error
}

func (m *MockCommentService) ListComments(ctx context.Context, actorID, taskID uuid.UUID) ([]dto.CommentResponse, error) {
	if m.ListCommentsFunc != nil {
		return m.ListCommentsFunc(ctx, actorID, taskID)
	}
	return nil, nil
}

func (m *MockCommentService) CreateComment(ctx context.Context, actorID, taskID uuid.UUID, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	if m.CreateCommentFunc != nil {
		return m.CreateCommentFunc(ctx, actorID, taskID, req)
	}
	return nil, nil
}

func (m *MockCommentService) DeleteComment(ctx context.Context, actorID, taskID, commentID uuid.UUID) error {
	if m.DeleteCommentFunc != nil {
		return m.DeleteCommentFunc(ctx, actorID, taskID, commentID)
	}
	return nil
}
