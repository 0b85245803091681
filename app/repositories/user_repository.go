package repositories

import (
	"database/sql"
	"errors"
)

// UserDirectory resolves user ids to notification addresses. Account
// management itself lives outside this service.
type UserDirectory interface {
	EmailByID(id int) (string, error)
}

type userDirectory struct {
	db *sql.DB
}

func NewUserDirectory(db *sql.DB) UserDirectory {
	return &userDirectory{db: db}
}

func (r *userDirectory) EmailByID(id int) (string, error) {
	var email string
	err := r.db.QueryRow(`SELECT email FROM users WHERE id = $1`, id).Scan(&email)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	return email, err
}
