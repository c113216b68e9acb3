package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/hrcauto/workshop-backoffice/internal/model"
)

// UserRepo reads staff accounts from the 'users' table. The service
// never writes to it; accounts are provisioned out-of-band.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// GetByUsername fetches a user by exact username match.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (model.User, error) {
	username = strings.TrimSpace(username)
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT user_id, username, password_hash FROM users WHERE username=? LIMIT 1",
		username).Scan(&u.ID, &u.Username, &u.PasswordHash)
	if err == sql.ErrNoRows {
		return model.User{}, ErrNotFound
	}
	return u, err
}
