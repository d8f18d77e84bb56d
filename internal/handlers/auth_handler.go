package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard-api/internal/dtos"
	"jobboard-api/internal/services"
)

type AuthHandler struct {
	Users *services.UserService
}

func NewAuthHandler(users *services.UserService) *AuthHandler {
	return &AuthHandler{Users: users}
}

// Signup is the POST /auth/signup endpoint.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dtos.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dtos.Fail("Invalid JSON format: "+err.Error(), ""))
		return
	}

	data, appErr := h.Users.Register(&req)
	if appErr != nil {
		respondError(c, appErr)
		return
	}
	c.JSON(http.StatusCreated, dtos.OK("User registered successfully", data))
}

// Login is the POST /auth/login endpoint.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dtos.Fail("Invalid JSON format: "+err.Error(), ""))
		return
	}

	data, appErr := h.Users.Authenticate(&req)
	if appErr != nil {
		respondError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, dtos.OK("Login successful", data))
}
