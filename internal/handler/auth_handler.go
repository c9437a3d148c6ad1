package handler

import (
	"errors"
	"net/http"

	"portfolio_api/internal/middleware"
	"portfolio_api/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication requests
type AuthHandler struct {
	service service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

// Login verifies credentials and issues a session token
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid data"})
		return
	}

	token, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Admin echoes the verified identity, a probe route for the admin console
func (h *AuthHandler) Admin(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to admin area",
		"user": gin.H{
			"email": c.GetString(middleware.AuthEmailKey),
			"role":  c.GetString(middleware.AuthRoleKey),
		},
	})
}

// RegisterRoutes wires the auth routes at the router root
func (h *AuthHandler) RegisterRoutes(router *gin.Engine, auth gin.HandlerFunc) {
	router.POST("/login", h.Login)
	router.GET("/admin", auth, h.Admin)
}
