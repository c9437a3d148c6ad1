package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"testing"

	"portfolio_api/internal/middleware"
	"portfolio_api/internal/model"
	"portfolio_api/internal/repository"
	"portfolio_api/internal/service"
	"portfolio_api/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUserRepo is an in-memory UserRepository shared by the auth and user
// handler tests
type fakeUserRepo struct {
	users  []model.User
	nextID int
}

func (f *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	for _, u := range f.users {
		if u.Email == user.Email || u.Username == user.Username {
			return repository.ErrDuplicate
		}
	}
	f.nextID++
	user.ID = "user-" + strconv.Itoa(f.nextID)
	f.users = append(f.users, *user)
	return nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*model.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindAll(_ context.Context) ([]model.User, error) {
	return append([]model.User{}, f.users...), nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *model.User) error {
	for i := range f.users {
		if f.users[i].ID == user.ID {
			f.users[i] = *user
			return nil
		}
	}
	return repository.ErrDuplicate
}

func (f *fakeUserRepo) Delete(_ context.Context, id string) (bool, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

func seededUserRepo(t *testing.T) *fakeUserRepo {
	t.Helper()
	hash, err := utils.HashPassword("admin123")
	require.NoError(t, err)
	return &fakeUserRepo{users: []model.User{{
		ID:           "user-1",
		Username:     "admin",
		Email:        "admin@example.com",
		PasswordHash: hash,
		Role:         model.RoleAdmin,
	}}, nextID: 1}
}

func setupAuthRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	authService := service.NewAuthService(seededUserRepo(t), testJWT)
	NewAuthHandler(authService).RegisterRoutes(router, middleware.JWTAuthMiddleware(testJWT))
	return router
}

func TestLogin(t *testing.T) {
	router := setupAuthRouter(t)

	w := doJSON(router, http.MethodPost, "/login", `{"email":"admin@example.com","password":"admin123"}`, "")

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)

	claims, err := testJWT.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, model.RoleAdmin, claims.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	router := setupAuthRouter(t)

	w := doJSON(router, http.MethodPost, "/login", `{"email":"admin@example.com","password":"wrong"}`, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid email or password")
}

func TestLogin_UnknownEmail(t *testing.T) {
	router := setupAuthRouter(t)

	w := doJSON(router, http.MethodPost, "/login", `{"email":"nobody@example.com","password":"admin123"}`, "")

	// Same status and body as a wrong password
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid email or password")
}

func TestLogin_MalformedBody(t *testing.T) {
	router := setupAuthRouter(t)

	w := doJSON(router, http.MethodPost, "/login", `{"email":"admin@example.com"}`, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminProbe(t *testing.T) {
	router := setupAuthRouter(t)

	w := doJSON(router, http.MethodGet, "/admin", "", bearer(t, model.RoleAdmin))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Welcome to admin area")
	assert.Contains(t, w.Body.String(), "admin@example.com")
}

func TestAdminProbe_WithoutToken(t *testing.T) {
	router := setupAuthRouter(t)

	w := doJSON(router, http.MethodGet, "/admin", "", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "No token provided")
}
