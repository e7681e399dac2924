package dbhelper

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ray-remotestate/orderdesk/models"
)

type CategoryRepo struct {
	ext sqlx.Ext
}

func (r *CategoryRepo) Create(c *models.Category) error {
	return sqlx.Get(r.ext, c, `
		INSERT INTO categories (name, description, is_active)
		VALUES ($1, $2, $3)
		RETURNING *`,
		c.Name, c.Description, c.IsActive)
}

func (r *CategoryRepo) Get(id uuid.UUID) (*models.Category, error) {
	var c models.Category
	err := sqlx.Get(r.ext, &c, `SELECT * FROM categories WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CategoryRepo) List() ([]models.Category, error) {
	categories := []models.Category{}
	err := sqlx.Select(r.ext, &categories, `SELECT * FROM categories ORDER BY created_at DESC`)
	return categories, err
}

func (r *CategoryRepo) Update(c *models.Category) error {
	return sqlx.Get(r.ext, c, `
		UPDATE categories
		SET name = $2, description = $3, is_active = $4, updated_at = now()
		WHERE id = $1
		RETURNING *`,
		c.ID, c.Name, c.Description, c.IsActive)
}

type SupplierRepo struct {
	ext sqlx.Ext
}

func (r *SupplierRepo) Create(s *models.Supplier) error {
	return sqlx.Get(r.ext, s, `
		INSERT INTO suppliers (name, email, phone, address, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING *`,
		s.Name, s.Email, s.Phone, s.Address, s.IsActive)
}

func (r *SupplierRepo) Get(id uuid.UUID) (*models.Supplier, error) {
	var s models.Supplier
	err := sqlx.Get(r.ext, &s, `SELECT * FROM suppliers WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SupplierRepo) List() ([]models.Supplier, error) {
	suppliers := []models.Supplier{}
	err := sqlx.Select(r.ext, &suppliers, `SELECT * FROM suppliers ORDER BY created_at DESC`)
	return suppliers, err
}

func (r *SupplierRepo) Update(s *models.Supplier) error {
	return sqlx.Get(r.ext, s, `
		UPDATE suppliers
		SET name = $2, email = $3, phone = $4, address = $5, is_active = $6, updated_at = now()
		WHERE id = $1
		RETURNING *`,
		s.ID, s.Name, s.Email, s.Phone, s.Address, s.IsActive)
}
