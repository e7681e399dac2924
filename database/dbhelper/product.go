package dbhelper

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ray-remotestate/orderdesk/models"
)

type ProductRepo struct {
	ext sqlx.Ext
}

func (r *ProductRepo) Create(p *models.Product) error {
	return sqlx.Get(r.ext, p, `
		INSERT INTO products (category_id, name, description, price, image_path, is_active, is_featured)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING *`,
		p.CategoryID, p.Name, p.Description, p.Price, p.ImagePath, p.IsActive, p.IsFeatured)
}

func (r *ProductRepo) Get(id uuid.UUID) (*models.Product, error) {
	var p models.Product
	err := sqlx.Get(r.ext, &p, `SELECT * FROM products WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepo) ListFeatured() ([]models.Product, error) {
	products := []models.Product{}
	err := sqlx.Select(r.ext, &products, `
		SELECT * FROM products
		WHERE is_active AND is_featured
		ORDER BY created_at DESC`)
	return products, err
}

func (r *ProductRepo) ListByCategory(categoryID uuid.UUID) ([]models.Product, error) {
	products := []models.Product{}
	err := sqlx.Select(r.ext, &products, `
		SELECT * FROM products
		WHERE category_id = $1 AND is_active
		ORDER BY created_at DESC`,
		categoryID)
	return products, err
}

func (r *ProductRepo) Update(p *models.Product) error {
	return sqlx.Get(r.ext, p, `
		UPDATE products
		SET category_id = $2, name = $3, description = $4, price = $5,
			image_path = $6, is_active = $7, is_featured = $8, updated_at = now()
		WHERE id = $1
		RETURNING *`,
		p.ID, p.CategoryID, p.Name, p.Description, p.Price, p.ImagePath, p.IsActive, p.IsFeatured)
}
