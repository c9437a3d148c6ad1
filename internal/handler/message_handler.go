package handler

import (
	"net/http"
	"time"

	"portfolio_api/internal/model"
	"portfolio_api/internal/repository"

	"github.com/gin-gonic/gin"
)

// CreateMessageRequest is the contact-form payload. It deliberately has no
// date or read field: the server assigns both, so spoofed timestamps never
// reach the store.
type CreateMessageRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

// MessageHandler covers the two ways messages deviate from the generic
// factory: the public create with a server-assigned date, and the read-flag
// toggle that bypasses the full-payload update.
type MessageHandler struct {
	store repository.EntityStore[model.Message]
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(store repository.EntityStore[model.Message]) *MessageHandler {
	return &MessageHandler{store: store}
}

// RegisterRoutes wires the bespoke message endpoints. Create stays public
// (it is the contact form); authenticated admin creates land here too.
func (h *MessageHandler) RegisterRoutes(api *gin.RouterGroup, auth gin.HandlerFunc) {
	api.POST("/messages", h.Create)
	api.PATCH("/messages/:id/read", auth, h.MarkRead)
}

// Create stores a contact-form submission with the receipt timestamp
func (h *MessageHandler) Create(c *gin.Context) {
	var req CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid data"})
		return
	}

	message := model.Message{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
		Date:    time.Now().UTC(),
		Read:    false,
	}
	if err := h.store.Insert(c.Request.Context(), &message); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid data"})
		return
	}
	c.JSON(http.StatusCreated, message)
}

// MarkRead toggles only the read flag of a message
func (h *MessageHandler) MarkRead(c *gin.Context) {
	var req struct {
		Read *bool `json:"read" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid data"})
		return
	}

	message, err := h.store.UpdateByID(c.Request.Context(), c.Param("id"), map[string]any{"read": *req.Read})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	if message == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Message not found"})
		return
	}
	c.JSON(http.StatusOK, message)
}
