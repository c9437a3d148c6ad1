package handler

import (
	"context"
	"net/http"

	"portfolio_api/internal/model"

	"github.com/gin-gonic/gin"
)

// AboutStore is the single read the public about endpoint needs
type AboutStore interface {
	FindOne(ctx context.Context) (*model.About, error)
}

// AboutHandler serves the public read of the singleton about document. The
// public site fetches it without listing the collection and picking first.
type AboutHandler struct {
	store AboutStore
}

// NewAboutHandler creates a new AboutHandler
func NewAboutHandler(store AboutStore) *AboutHandler {
	return &AboutHandler{store: store}
}

// RegisterRoutes wires the public about read
func (h *AboutHandler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/about", h.Get)
}

// Get returns the single about document
func (h *AboutHandler) Get(c *gin.Context) {
	about, err := h.store.FindOne(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	if about == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "About data not found"})
		return
	}
	c.JSON(http.StatusOK, about)
}
