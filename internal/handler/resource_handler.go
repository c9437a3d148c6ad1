package handler

import (
	"net/http"

	"portfolio_api/internal/repository"

	"github.com/gin-gonic/gin"
)

// ResourceOptions controls how a resource's routes are produced.
type ResourceOptions struct {
	// PublicList serves the list endpoint without authentication. The seven
	// public content kinds set it; messages and users do not.
	PublicList bool
	// SkipList leaves the list route to a bespoke handler (about, whose
	// GET /api/about returns the single document instead of a list).
	SkipList bool
	// SkipCreate leaves the create route to a bespoke handler (messages,
	// whose public contact-form create assigns the date server-side).
	SkipCreate bool
}

// ResourceHandler produces the uniform CRUD operations for one resource
// kind: list, create, update, delete and count. It is the one reusable
// abstraction here; everything kind-specific lives in the bespoke handlers
// layered next to it.
type ResourceHandler[T any] struct {
	name  string
	store repository.EntityStore[T]
	opts  ResourceOptions
}

// NewResourceHandler creates the handler set for a resource kind
func NewResourceHandler[T any](name string, store repository.EntityStore[T], opts ResourceOptions) *ResourceHandler[T] {
	return &ResourceHandler[T]{name: name, store: store, opts: opts}
}

// RegisterRoutes wires the produced operations under /{name}. Mutations run
// behind both middlewares; list (when protected) and count only need auth.
func (h *ResourceHandler[T]) RegisterRoutes(api *gin.RouterGroup, auth, admin gin.HandlerFunc) {
	grp := api.Group("/" + h.name)
	if !h.opts.SkipList {
		if h.opts.PublicList {
			grp.GET("", h.List)
		} else {
			grp.GET("", auth, h.List)
		}
	}
	if !h.opts.SkipCreate {
		grp.POST("", auth, admin, h.Create)
	}
	grp.PUT("/:id", auth, admin, h.Update)
	grp.DELETE("/:id", auth, admin, h.Delete)
	grp.GET("/count", auth, h.Count)
}

// List returns all entities of the kind in the store's native order
func (h *ResourceHandler[T]) List(c *gin.Context) {
	items, err := h.store.FindAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// Create validates the payload against the kind's schema and stores it
func (h *ResourceHandler[T]) Create(c *gin.Context) {
	var entity T
	if err := c.ShouldBindJSON(&entity); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid data"})
		return
	}
	if err := h.store.Insert(c.Request.Context(), &entity); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid data"})
		return
	}
	c.JSON(http.StatusCreated, entity)
}

// Update merges a partial payload into the stored entity
func (h *ResourceHandler[T]) Update(c *gin.Context) {
	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid data"})
		return
	}

	item, err := h.store.UpdateByID(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid data"})
		return
	}
	if item == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": h.name + " item not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// Delete removes an entity by id
func (h *ResourceHandler[T]) Delete(c *gin.Context) {
	found, err := h.store.DeleteByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"message": h.name + " item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": h.name + " item deleted"})
}

// Count returns the number of entities of the kind
func (h *ResourceHandler[T]) Count(c *gin.Context) {
	count, err := h.store.Count(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}
