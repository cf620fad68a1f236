package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kanmind/internal/dto"
	"kanmind/internal/response"
	"kanmind/internal/service"
)

// CommentHandler handles task comment endpoints
type CommentHandler struct {
	commentService service.CommentService
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// ListComments godoc
// @Summary      List comments on a task, oldest first
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        taskId path string true "Task ID"
// @Success      200 {array} dto.CommentResponse
// @Failure      403 {object} response.ErrorResponse "Not a member of the task's board"
// @Failure      404 {object} response.ErrorResponse "Task not found"
// @Router       /tasks/{taskId}/comments [get]
func (h *CommentHandler) ListComments(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	taskID, ok := parseIDParam(c, "taskId")
	if !ok {
		return
	}

	comments, err := h.commentService.ListComments(c.Request.Context(), userID, taskID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, comments)
}

// CreateComment godoc
// @Summary      Add a comment to a task
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        taskId path string true "Task ID"
// @Param        request body dto.CreateCommentRequest true "Comment payload"
// @Success      201 {object} dto.CommentResponse
// @Failure      400 {object} map[string][]string "Field-keyed validation errors"
// @Failure      403 {object} response.ErrorResponse "Not a member of the task's board"
// @Failure      404 {object} response.ErrorResponse "Task not found"
// @Router       /tasks/{taskId}/comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	taskID, ok := parseIDParam(c, "taskId")
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	comment, err := h.commentService.CreateComment(c.Request.Context(), userID, taskID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// DeleteComment godoc
// @Summary      Delete a comment
// @Description  Only the comment author may delete a comment
// @Tags         comments
// @Security     BearerAuth
// @Param        taskId path string true "Task ID"
// @Param        commentId path string true "Comment ID"
// @Success      204 "No Content"
// @Failure      403 {object} response.ErrorResponse "Not the comment author"
// @Failure      404 {object} response.ErrorResponse "Task or comment not found"
// @Router       /tasks/{taskId}/comments/{commentId} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	taskID, ok := parseIDParam(c, "taskId")
	if !ok {
		return
	}
	commentID, ok := parseIDParam(c, "commentId")
	if !ok {
		return
	}

	if err := h.commentService.DeleteComment(c.Request.Context(), userID, taskID, commentID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
