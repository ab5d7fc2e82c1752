// internal/repository/postgres_user_repository.go
package repository

import (
	"context"
	"database/sql"

	"github.com/unclebandit/campaigntrack/internal/model"
)

type PostgresUserRepository struct {
	DB *sql.DB
}

func NewPostgresUserRepository(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{DB: db}
}

func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT id, name, email, password_hash FROM users WHERE email=$1`
	var u model.User
	err := r.DB.QueryRowContext(ctx, query, email).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *PostgresUserRepository) Create(ctx context.Context, u *model.User) error {
	query := `INSERT INTO users (id, name, email, password_hash) VALUES ($1, $2, $3, $4)`
	_, err := r.DB.ExecContext(ctx, query, u.ID, u.Name, u.Email, u.PasswordHash)
	return err
}

var _ UserRepositoryInterface = (*PostgresUserRepository)(nil)
