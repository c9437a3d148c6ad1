package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"portfolio_api/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAboutStore struct {
	about *model.About
	err   error
}

func (f *fakeAboutStore) FindOne(context.Context) (*model.About, error) {
	return f.about, f.err
}

func setupAboutRouter(store AboutStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewAboutHandler(store).RegisterRoutes(router.Group("/api"))
	return router
}

func TestAboutGet_Public(t *testing.T) {
	router := setupAboutRouter(&fakeAboutStore{about: &model.About{
		ID:       "id-1",
		FullName: "Emad Saeid",
		Title:    "Full Stack Developer",
		Social:   model.SocialLinks{Github: "https://github.com/emad"},
	}})

	// No Authorization header: the public site reads this anonymously
	w := doJSON(router, http.MethodGet, "/api/about", "", "")

	assert.Equal(t, http.StatusOK, w.Code)
	var about model.About
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &about))
	assert.Equal(t, "Emad Saeid", about.FullName)
	assert.Equal(t, "https://github.com/emad", about.Social.Github)
}

func TestAboutGet_NotSeeded(t *testing.T) {
	router := setupAboutRouter(&fakeAboutStore{})

	w := doJSON(router, http.MethodGet, "/api/about", "", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "About data not found")
}

func TestAboutGet_StoreFailure(t *testing.T) {
	router := setupAboutRouter(&fakeAboutStore{err: assert.AnError})

	w := doJSON(router, http.MethodGet, "/api/about", "", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Server error")
}
