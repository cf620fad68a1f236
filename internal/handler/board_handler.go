package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kanmind/internal/dto"
	"kanmind/internal/response"
	"kanmind/internal/service"
)

// BoardHandler handles board CRUD endpoints
type BoardHandler struct {
	boardService service.BoardService
}

// NewBoardHandler creates a new BoardHandler
func NewBoardHandler(boardService service.BoardService) *BoardHandler {
	return &BoardHandler{boardService: boardService}
}

// ListBoards godoc
// @Summary      List boards visible to the current user
// @Tags         boards
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.BoardResponse
// @Router       /boards [get]
func (h *BoardHandler) ListBoards(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	boards, err := h.boardService.ListBoards(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, boards)
}

// CreateBoard godoc
// @Summary      Create a board
// @Description  The creator becomes owner and is always included in the member list
// @Tags         boards
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateBoardRequest true "Board payload"
// @Success      201 {object} dto.BoardResponse
// @Failure      400 {object} map[string][]string "Field-keyed validation errors"
// @Router       /boards [post]
func (h *BoardHandler) CreateBoard(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	board, err := h.boardService.CreateBoard(c.Request.Context(), userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, board)
}

// GetBoard godoc
// @Summary      Get a board with members and tasks
// @Tags         boards
// @Produce      json
// @Security     BearerAuth
// @Param        boardId path string true "Board ID"
// @Success      200 {object} dto.BoardDetailResponse
// @Failure      403 {object} response.ErrorResponse "Not a member of the board"
// @Failure      404 {object} response.ErrorResponse "Board not found"
// @Router       /boards/{boardId} [get]
func (h *BoardHandler) GetBoard(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	boardID, ok := parseIDParam(c, "boardId")
	if !ok {
		return
	}

	board, err := h.boardService.GetBoard(c.Request.Context(), userID, boardID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, board)
}

// UpdateBoard godoc
// @Summary      Update a board's title or member list
// @Description  Only the board owner may update a board
// @Tags         boards
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        boardId path string true "Board ID"
// @Param        request body dto.UpdateBoardRequest true "Fields to update"
// @Success      200 {object} dto.BoardDetailResponse
// @Failure      403 {object} response.ErrorResponse "Not the board owner"
// @Failure      404 {object} response.ErrorResponse "Board not found"
// @Router       /boards/{boardId} [patch]
func (h *BoardHandler) UpdateBoard(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	boardID, ok := parseIDParam(c, "boardId")
	if !ok {
		return
	}

	var req dto.UpdateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	board, err := h.boardService.UpdateBoard(c.Request.Context(), userID, boardID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, board)
}

// DeleteBoard godoc
// @Summary      Delete a board and everything on it
// @Description  Only the board owner may delete a board
// @Tags         boards
// @Security     BearerAuth
// @Param        boardId path string true "Board ID"
// @Success      204 "No Content"
// @Failure      403 {object} response.ErrorResponse "Not the board owner"
// @Failure      404 {object} response.ErrorResponse "Board not found"
// @Router       /boards/{boardId} [delete]
func (h *BoardHandler) DeleteBoard(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	boardID, ok := parseIDParam(c, "boardId")
	if !ok {
		return
	}

	if err := h.boardService.DeleteBoard(c.Request.Context(), userID, boardID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
