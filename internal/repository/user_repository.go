// internal/repository/user_repository.go
package repository

import (
	"context"
	"sync"

	"github.com/unclebandit/campaigntrack/internal/model"
)

type UserRepositoryInterface interface {
	// GetByEmail returns the user with exactly this email, or nil if
	// no record matches.
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, u *model.User) error
}

// FileUserRepository persists users as a single JSON array file.
// Users are created at signup and never mutated or deleted.
type FileUserRepository struct {
	Path string

	mu sync.Mutex
}

func NewFileUserRepository(path string) *FileUserRepository {
	return &FileUserRepository{Path: path}
}

func (r *FileUserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := loadCollection[model.User](r.Path)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			u := users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (r *FileUserRepository) Create(ctx context.Context, u *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := loadCollection[model.User](r.Path)
	if err != nil {
		return err
	}
	users = append(users, *u)
	return saveCollection(r.Path, users)
}

var _ UserRepositoryInterface = (*FileUserRepository)(nil)
