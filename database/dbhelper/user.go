package dbhelper

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ray-remotestate/orderdesk/models"
)

type UserRepo struct {
	ext sqlx.Ext
}

func (r *UserRepo) Create(u *models.User) error {
	return sqlx.Get(r.ext, u, `
		INSERT INTO users (name, email, password)
		VALUES ($1, $2, $3)
		RETURNING *`,
		u.Name, u.Email, u.Password)
}

func (r *UserRepo) Exists(id uuid.UUID) (bool, error) {
	var exists bool
	err := sqlx.Get(r.ext, &exists, `
		SELECT EXISTS (
			SELECT 1 FROM users WHERE id = $1 AND archived_at IS NULL
		)`, id)
	return exists, err
}

func (r *UserRepo) GetByEmail(email string) (*models.User, error) {
	var u models.User
	err := sqlx.Get(r.ext, &u, `
		SELECT * FROM users
		WHERE LOWER(email) = LOWER($1) AND archived_at IS NULL`, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) EmailTaken(email string) (bool, error) {
	var count int
	err := sqlx.Get(r.ext, &count, `
		SELECT COUNT(*) FROM users WHERE LOWER(email) = LOWER($1)`, email)
	return count > 0, err
}
