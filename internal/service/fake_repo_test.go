package service

import (
	"context"
	"strconv"

	"portfolio_api/internal/model"
	"portfolio_api/internal/repository"
)

// fakeUserRepo is an in-memory UserRepository for service tests
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
		if f.users[i].ID != user.ID && (f.users[i].Email == user.Email || f.users[i].Username == user.Username) {
			return repository.ErrDuplicate
		}
	}
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
