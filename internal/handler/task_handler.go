package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kanmind/internal/dto"
	"kanmind/internal/response"
	"kanmind/internal/service"
)

// TaskHandler handles task endpoints
type TaskHandler struct {
	taskService service.TaskService
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// CreateTask godoc
// @Summary      Create a task on a board
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateTaskRequest true "Task payload"
// @Success      201 {object} dto.TaskResponse
// @Failure      400 {object} map[string][]string "Field-keyed validation errors"
// @Failure      403 {object} response.ErrorResponse "Not a member of the board"
// @Router       /tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// ListAssignedToMe godoc
// @Summary      List tasks assigned to the current user
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.TaskResponse
// @Router       /tasks/assigned-to-me [get]
func (h *TaskHandler) ListAssignedToMe(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	tasks, err := h.taskService.ListAssignedToMe(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// ListReviewing godoc
// @Summary      List tasks the current user is reviewing
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.TaskResponse
// @Router       /tasks/reviewing [get]
func (h *TaskHandler) ListReviewing(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	tasks, err := h.taskService.ListReviewing(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// GetTask godoc
// @Summary      Get a single task
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        taskId path string true "Task ID"
// @Success      200 {object} dto.TaskResponse
// @Failure      403 {object} response.ErrorResponse "Not a member of the task's board"
// @Failure      404 {object} response.ErrorResponse "Task not found"
// @Router       /tasks/{taskId} [get]
func (h *TaskHandler) GetTask(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	taskID, ok := parseIDParam(c, "taskId")
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), userID, taskID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// UpdateTask godoc
// @Summary      Partially update a task
// @Description  The task's board cannot be changed
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        taskId path string true "Task ID"
// @Param        request body dto.UpdateTaskRequest true "Fields to update"
// @Success      200 {object} dto.TaskResponse
// @Failure      400 {object} map[string][]string "Field-keyed validation errors"
// @Failure      403 {object} response.ErrorResponse "Not a member of the task's board"
// @Failure      404 {object} response.ErrorResponse "Task not found"
// @Router       /tasks/{taskId} [patch]
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	taskID, ok := parseIDParam(c, "taskId")
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), userID, taskID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask godoc
// @Summary      Delete a task
// @Description  Only the task creator or the board owner may delete a task
// @Tags         tasks
// @Security     BearerAuth
// @Param        taskId path string true "Task ID"
// @Success      204 "No Content"
// @Failure      403 {object} response.ErrorResponse "Not the creator or board owner"
// @Failure      404 {object} response.ErrorResponse "Task not found"
// @Router       /tasks/{taskId} [delete]
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	taskID, ok := parseIDParam(c, "taskId")
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), userID, taskID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
