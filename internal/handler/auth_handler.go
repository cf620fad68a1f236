package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kanmind/internal/dto"
	"kanmind/internal/response"
	"kanmind/internal/service"
)

// AuthHandler handles registration, login, and email lookup
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register godoc
// @Summary      Register a new user
// @Description  Creates an account and returns a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body dto.RegistrationRequest true "Registration request"
// @Success      201 {object} dto.AuthResponse
// @Failure      400 {object} map[string][]string "Field-keyed validation errors"
// @Router       /registration [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	result, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// Login godoc
// @Summary      Log in
// @Description  Authenticates by email and password, returning the user's token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "Login request"
// @Success      200 {object} dto.AuthResponse
// @Failure      400 {object} map[string][]string "Missing credentials"
// @Failure      401 {object} response.ErrorResponse "Invalid credentials"
// @Router       /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	result, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// CheckEmail godoc
// @Summary      Look up a user by email
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Param        email query string true "Email address"
// @Success      200 {object} dto.UserResponse
// @Failure      400 {object} response.ErrorResponse "Missing or malformed email"
// @Failure      404 {object} response.ErrorResponse "Email not registered"
// @Router       /email-check [get]
func (h *AuthHandler) CheckEmail(c *gin.Context) {
	user, err := h.authService.CheckEmail(c.Request.Context(), c.Query("email"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
