package service

import (
	"context"
	"testing"

	"portfolio_api/internal/model"
	"portfolio_api/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestUserService_Create(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewUserService(repo)

	user, err := svc.Create(context.Background(), model.CreateUserRequest{
		Username: "emad",
		Email:    "emad@example.com",
		Password: "supersecret",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, model.RoleUser, user.Role) // Role defaults to user
	assert.NotEqual(t, "supersecret", user.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("supersecret", user.PasswordHash))
}

func TestUserService_Create_DuplicateEmail(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewUserService(repo)

	_, err := svc.Create(context.Background(), model.CreateUserRequest{
		Username: "emad", Email: "emad@example.com", Password: "supersecret",
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), model.CreateUserRequest{
		Username: "other", Email: "emad@example.com", Password: "supersecret",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestUserService_Update_KeepsHashWithoutPassword(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewUserService(repo)

	created, err := svc.Create(context.Background(), model.CreateUserRequest{
		Username: "emad", Email: "emad@example.com", Password: "supersecret",
	})
	require.NoError(t, err)

	// No password in the merge, and an empty one must not replace the hash either
	updated, err := svc.Update(context.Background(), created.ID, model.UpdateUserRequest{
		Username: strPtr("renamed"),
		Password: strPtr("   "),
	})

	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Username)
	assert.Equal(t, created.PasswordHash, updated.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("supersecret", updated.PasswordHash))
}

func TestUserService_Update_RehashesNewPassword(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewUserService(repo)

	created, err := svc.Create(context.Background(), model.CreateUserRequest{
		Username: "emad", Email: "emad@example.com", Password: "supersecret",
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, model.UpdateUserRequest{
		Password: strPtr("newpassword"),
	})

	require.NoError(t, err)
	assert.NotEqual(t, "newpassword", updated.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("newpassword", updated.PasswordHash))
	assert.False(t, utils.CheckPasswordHash("supersecret", updated.PasswordHash))
}

func TestUserService_Update_NotFound(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{})

	_, err := svc.Update(context.Background(), "user-99", model.UpdateUserRequest{
		Username: strPtr("ghost"),
	})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_Delete_NotFound(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{})

	err := svc.Delete(context.Background(), "user-99")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
