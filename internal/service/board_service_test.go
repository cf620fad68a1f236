package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"kanmind/internal/domain"
	"kanmind/internal/dto"
	"kanmind/internal/response"
)

func newBoardServiceForTest(boardRepo *MockBoardRepository, userRepo *MockUserRepository) BoardService {
	return NewBoardService(boardRepo, userRepo, newTestMetrics(), zap.NewNop())
}

// boardWith builds a board with an owner and the given extra members
func boardWith(ownerID uuid.UUID, memberIDs ...uuid.UUID) *domain.Board {
	members := []domain.BoardMember{{UserID: ownerID}}
	for _, id := range memberIDs {
		members = append(members, domain.BoardMember{UserID: id})
	}
	return &domain.Board{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		Title:     "Test Board",
		OwnerID:   ownerID,
		Owner:     domain.User{BaseModel: domain.BaseModel{ID: ownerID}, Email: "owner@example.com"},
		Members:   members,
	}
}

func TestBoardService_CreateBoard(t *testing.T) {
	ownerID := uuid.New()
	memberID := uuid.New()

	tests := []struct {
		name            string
		req             *dto.CreateBoardRequest
		mockUser        func(*MockUserRepository)
		wantErr         bool
		wantMemberCount int
	}{
		{
			name: "owner is added to the member set",
			req:  &dto.CreateBoardRequest{Title: "Sprint Board", Members: []uuid.UUID{memberID}},
			mockUser: func(m *MockUserRepository) {
				m.FindByIDsFunc = func(ctx context.Context, ids []uuid.UUID) ([]domain.User, error) {
					users := make([]domain.User, 0, len(ids))
					for _, id := range ids {
						users = append(users, domain.User{BaseModel: domain.BaseModel{ID: id}})
					}
					return users, nil
				}
			},
			wantMemberCount: 2,
		},
		{
			name: "owner listed in members is not duplicated",
			req:  &dto.CreateBoardRequest{Title: "Sprint Board", Members: []uuid.UUID{ownerID, memberID, memberID}},
			mockUser: func(m *MockUserRepository) {
				m.FindByIDsFunc = func(ctx context.Context, ids []uuid.UUID) ([]domain.User, error) {
					users := make([]domain.User, 0, len(ids))
					for _, id := range ids {
						users = append(users, domain.User{BaseModel: domain.BaseModel{ID: id}})
					}
					return users, nil
				}
			},
			wantMemberCount: 2,
		},
		{
			name: "empty member list still gets the owner",
			req:  &dto.CreateBoardRequest{Title: "Solo Board"},
			mockUser: func(m *MockUserRepository) {
				m.FindByIDsFunc = func(ctx context.Context, ids []uuid.UUID) ([]domain.User, error) {
					return []domain.User{}, nil
				}
			},
			wantMemberCount: 1,
		},
		{
			name:    "missing title",
			req:     &dto.CreateBoardRequest{Members: []uuid.UUID{memberID}},
			wantErr: true,
		},
		{
			name: "unknown member id",
			req:  &dto.CreateBoardRequest{Title: "Sprint Board", Members: []uuid.UUID{memberID}},
			mockUser: func(m *MockUserRepository) {
				m.FindByIDsFunc = func(ctx context.Context, ids []uuid.UUID) ([]domain.User, error) {
					return []domain.User{}, nil
				}
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var created *domain.Board
			boardRepo := &MockBoardRepository{
				CreateFunc: func(ctx context.Context, board *domain.Board) error {
					board.ID = uuid.New()
					created = board
					return nil
				},
			}
			userRepo := &MockUserRepository{}
			if tt.mockUser != nil {
				tt.mockUser(userRepo)
			}
			svc := newBoardServiceForTest(boardRepo, userRepo)

			got, err := svc.CreateBoard(context.Background(), ownerID, tt.req)

			if tt.wantErr {
				if err == nil {
					t.Fatal("CreateBoard() error = nil, want error")
				}
				var vErr *response.ValidationError
				if !errors.As(err, &vErr) {
					t.Errorf("CreateBoard() error type = %T, want *response.ValidationError", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("CreateBoard() unexpected error = %v", err)
			}
			if got.OwnerID != ownerID {
				t.Errorf("CreateBoard() OwnerID = %v, want %v", got.OwnerID, ownerID)
			}
			if got.MemberCount != tt.wantMemberCount {
				t.Errorf("CreateBoard() MemberCount = %d, want %d", got.MemberCount, tt.wantMemberCount)
			}
			ownerIsMember := false
			for _, m := range created.Members {
				if m.UserID == ownerID {
					ownerIsMember = true
				}
			}
			if !ownerIsMember {
				t.Error("CreateBoard() owner missing from created member set")
			}
		})
	}
}

func TestBoardService_ListBoards(t *testing.T) {
	ownerID := uuid.New()
	board := boardWith(ownerID)
	board.Tasks = []domain.Task{
		{Status: domain.StatusToDo, Priority: domain.PriorityHigh},
		{Status: domain.StatusDone, Priority: domain.PriorityLow},
		{Status: domain.StatusToDo, Priority: domain.PriorityMedium},
	}

	boardRepo := &MockBoardRepository{
		FindByUserIDFunc: func(ctx context.Context, userID uuid.UUID) ([]*domain.Board, error) {
			return []*domain.Board{board}, nil
		},
	}
	svc := newBoardServiceForTest(boardRepo, &MockUserRepository{})

	got, err := svc.ListBoards(context.Background(), ownerID)
	if err != nil {
		t.Fatalf("ListBoards() unexpected error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("ListBoards() returned %d boards, want 1", len(got))
	}
	summary := got[0]
	if summary.TicketCount != 3 {
		t.Errorf("TicketCount = %d, want 3", summary.TicketCount)
	}
	if summary.TasksToDoCount != 2 {
		t.Errorf("TasksToDoCount = %d, want 2", summary.TasksToDoCount)
	}
	if summary.TasksHighPrioCount != 1 {
		t.Errorf("TasksHighPrioCount = %d, want 1", summary.TasksHighPrioCount)
	}
	if summary.MemberCount != 1 {
		t.Errorf("MemberCount = %d, want 1", summary.MemberCount)
	}
}

func TestBoardService_GetBoard(t *testing.T) {
	ownerID := uuid.New()
	memberID := uuid.New()
	strangerID := uuid.New()
	board := boardWith(ownerID, memberID)

	tests := []struct {
		name        string
		actorID     uuid.UUID
		mockBoard   func(*MockBoardRepository)
		wantErr     bool
		wantErrCode string
		notFound    bool
	}{
		{
			name:    "owner can read",
			actorID: ownerID,
			mockBoard: func(m *MockBoardRepository) {
				m.FindByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
					return board, nil
				}
			},
		},
		{
			name:    "member can read",
			actorID: memberID,
			mockBoard: func(m *MockBoardRepository) {
				m.FindByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
					return board, nil
				}
			},
		},
		{
			name:    "non-member is forbidden",
			actorID: strangerID,
			mockBoard: func(m *MockBoardRepository) {
				m.FindByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
					return board, nil
				}
			},
			wantErr:     true,
			wantErrCode: response.ErrCodeForbidden,
		},
		{
			name:    "missing board",
			actorID: ownerID,
			mockBoard: func(m *MockBoardRepository) {
				m.FindByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
					return nil, gorm.ErrRecordNotFound
				}
			},
			wantErr:  true,
			notFound: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			boardRepo := &MockBoardRepository{}
			tt.mockBoard(boardRepo)
			svc := newBoardServiceForTest(boardRepo, &MockUserRepository{})

			got, err := svc.GetBoard(context.Background(), tt.actorID, board.ID)

			if tt.wantErr {
				if err == nil {
					t.Fatal("GetBoard() error = nil, want error")
				}
				if tt.notFound {
					if !errors.Is(err, gorm.ErrRecordNotFound) {
						t.Errorf("GetBoard() error = %v, want record not found", err)
					}
					return
				}
				var appErr *response.AppError
				if !errors.As(err, &appErr) {
					t.Fatalf("GetBoard() error type = %T, want *response.AppError", err)
				}
				if appErr.Code != tt.wantErrCode {
					t.Errorf("GetBoard() error code = %v, want %v", appErr.Code, tt.wantErrCode)
				}
				return
			}

			if err != nil {
				t.Fatalf("GetBoard() unexpected error = %v", err)
			}
			if got.ID != board.ID {
				t.Errorf("GetBoard() ID = %v, want %v", got.ID, board.ID)
			}
			if got.OwnerData.Email != "owner@example.com" {
				t.Errorf("GetBoard() OwnerData.Email = %q, want %q", got.OwnerData.Email, "owner@example.com")
			}
			if len(got.MembersData) != 2 {
				t.Errorf("GetBoard() MembersData length = %d, want 2", len(got.MembersData))
			}
		})
	}
}

func TestBoardService_UpdateBoard(t *testing.T) {
	ownerID := uuid.New()
	memberID := uuid.New()

	tests := []struct {
		name        string
		actorID     uuid.UUID
		req         *dto.UpdateBoardRequest
		wantErr     bool
		wantErrCode string
	}{
		{
			name:    "owner updates title",
			actorID: ownerID,
			req:     &dto.UpdateBoardRequest{Title: strPtr("Renamed")},
		},
		{
			name:        "member may not update",
			actorID:     memberID,
			req:         &dto.UpdateBoardRequest{Title: strPtr("Renamed")},
			wantErr:     true,
			wantErrCode: response.ErrCodeForbidden,
		},
		{
			name:        "non-member may not update",
			actorID:     uuid.New(),
			req:         &dto.UpdateBoardRequest{Title: strPtr("Renamed")},
			wantErr:     true,
			wantErrCode: response.ErrCodeForbidden,
		},
		{
			name:    "empty title rejected",
			actorID: ownerID,
			req:     &dto.UpdateBoardRequest{Title: strPtr("")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := boardWith(ownerID, memberID)
			boardRepo := &MockBoardRepository{
				FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
					return board, nil
				},
			}
			svc := newBoardServiceForTest(boardRepo, &MockUserRepository{})

			got, err := svc.UpdateBoard(context.Background(), tt.actorID, board.ID, tt.req)

			if tt.wantErr {
				if err == nil {
					t.Fatal("UpdateBoard() error = nil, want error")
				}
				if tt.wantErrCode != "" {
					var appErr *response.AppError
					if !errors.As(err, &appErr) {
						t.Fatalf("UpdateBoard() error type = %T, want *response.AppError", err)
					}
					if appErr.Code != tt.wantErrCode {
						t.Errorf("UpdateBoard() error code = %v, want %v", appErr.Code, tt.wantErrCode)
					}
				}
				return
			}

			if err != nil {
				t.Fatalf("UpdateBoard() unexpected error = %v", err)
			}
			if got.Title != "Renamed" {
				t.Errorf("UpdateBoard() Title = %q, want %q", got.Title, "Renamed")
			}
		})
	}
}

func TestBoardService_UpdateBoard_ReplaceMembersKeepsOwner(t *testing.T) {
	ownerID := uuid.New()
	oldMemberID := uuid.New()
	newMemberID := uuid.New()
	board := boardWith(ownerID, oldMemberID)

	var replacedWith []uuid.UUID
	boardRepo := &MockBoardRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
			return board, nil
		},
		ReplaceMembersFunc: func(ctx context.Context, boardID uuid.UUID, userIDs []uuid.UUID) error {
			replacedWith = userIDs
			return nil
		},
	}
	userRepo := &MockUserRepository{
		FindByIDsFunc: func(ctx context.Context, ids []uuid.UUID) ([]domain.User, error) {
			users := make([]domain.User, 0, len(ids))
			for _, id := range ids {
				users = append(users, domain.User{BaseModel: domain.BaseModel{ID: id}})
			}
			return users, nil
		},
	}
	svc := newBoardServiceForTest(boardRepo, userRepo)

	_, err := svc.UpdateBoard(context.Background(), ownerID, board.ID, &dto.UpdateBoardRequest{
		Members: &[]uuid.UUID{newMemberID},
	})
	if err != nil {
		t.Fatalf("UpdateBoard() unexpected error = %v", err)
	}

	hasOwner, hasNew := false, false
	for _, id := range replacedWith {
		if id == ownerID {
			hasOwner = true
		}
		if id == newMemberID {
			hasNew = true
		}
	}
	if !hasOwner {
		t.Error("replaced member set is missing the owner")
	}
	if !hasNew {
		t.Error("replaced member set is missing the requested member")
	}
}

func TestBoardService_DeleteBoard(t *testing.T) {
	ownerID := uuid.New()
	memberID := uuid.New()
	board := boardWith(ownerID, memberID)

	tests := []struct {
		name    string
		actorID uuid.UUID
		wantErr bool
	}{
		{name: "owner may delete", actorID: ownerID},
		{name: "member may not delete", actorID: memberID, wantErr: true},
		{name: "non-member may not delete", actorID: uuid.New(), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deleted := false
			boardRepo := &MockBoardRepository{
				FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
					return board, nil
				},
				DeleteFunc: func(ctx context.Context, id uuid.UUID) error {
					deleted = true
					return nil
				},
			}
			svc := newBoardServiceForTest(boardRepo, &MockUserRepository{})

			err := svc.DeleteBoard(context.Background(), tt.actorID, board.ID)

			if tt.wantErr {
				if err == nil {
					t.Fatal("DeleteBoard() error = nil, want error")
				}
				var appErr *response.AppError
				if !errors.As(err, &appErr) {
					t.Fatalf("DeleteBoard() error type = %T, want *response.AppError", err)
				}
				if appErr.Code != response.ErrCodeForbidden {
					t.Errorf("DeleteBoard() error code = %v, want %v", appErr.Code, response.ErrCodeForbidden)
				}
				if deleted {
					t.Error("DeleteBoard() deleted the board despite the permission error")
				}
				return
			}

			if err != nil {
				t.Fatalf("DeleteBoard() unexpected error = %v", err)
			}
			if !deleted {
				t.Error("DeleteBoard() did not delete the board")
			}
		})
	}
}

func strPtr(s string) *string { return &s }
