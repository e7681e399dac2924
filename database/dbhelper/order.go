package dbhelper

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ray-remotestate/orderdesk/models"
)

type OrderRepo struct {
	ext sqlx.Ext
}

func (r *OrderRepo) Create(o *models.Order) error {
	return sqlx.Get(r.ext, o, `
		INSERT INTO orders (order_number, user_id, table_name, order_type, status,
			subtotal, tax, discount, total, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING *`,
		o.OrderNumber, o.UserID, o.Table, o.OrderType, o.Status,
		o.Subtotal, o.Tax, o.Discount, o.Total, o.Notes)
}

func (r *OrderRepo) Get(id uuid.UUID) (*models.Order, error) {
	var o models.Order
	err := sqlx.Get(r.ext, &o, `SELECT * FROM orders WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepo) List() ([]models.Order, error) {
	orders := []models.Order{}
	err := sqlx.Select(r.ext, &orders, `SELECT * FROM orders ORDER BY created_at DESC`)
	return orders, err
}

func (r *OrderRepo) ListByStatus(status models.OrderStatus) ([]models.Order, error) {
	orders := []models.Order{}
	err := sqlx.Select(r.ext, &orders, `
		SELECT * FROM orders WHERE status = $1 ORDER BY created_at DESC`, status)
	return orders, err
}

func (r *OrderRepo) Update(o *models.Order) error {
	return sqlx.Get(r.ext, o, `
		UPDATE orders
		SET user_id = $2, table_name = $3, order_type = $4, status = $5,
			subtotal = $6, tax = $7, discount = $8, total = $9, notes = $10,
			updated_at = now()
		WHERE id = $1
		RETURNING *`,
		o.ID, o.UserID, o.Table, o.OrderType, o.Status,
		o.Subtotal, o.Tax, o.Discount, o.Total, o.Notes)
}

type OrderItemRepo struct {
	ext sqlx.Ext
}

func (r *OrderItemRepo) Create(it *models.OrderItem) error {
	return sqlx.Get(r.ext, it, `
		INSERT INTO order_items (order_id, product_id, quantity, unit_price, subtotal, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING *`,
		it.OrderID, it.ProductID, it.Quantity, it.UnitPrice, it.Subtotal, it.Notes)
}

func (r *OrderItemRepo) Get(id uuid.UUID) (*models.OrderItem, error) {
	var it models.OrderItem
	err := sqlx.Get(r.ext, &it, `SELECT * FROM order_items WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *OrderItemRepo) List() ([]models.OrderItem, error) {
	items := []models.OrderItem{}
	err := sqlx.Select(r.ext, &items, `SELECT * FROM order_items ORDER BY created_at DESC`)
	return items, err
}

func (r *OrderItemRepo) ListByOrder(orderID uuid.UUID) ([]models.OrderItem, error) {
	items := []models.OrderItem{}
	err := sqlx.Select(r.ext, &items, `
		SELECT * FROM order_items WHERE order_id = $1 ORDER BY created_at`, orderID)
	return items, err
}

func (r *OrderItemRepo) Update(it *models.OrderItem) error {
	return sqlx.Get(r.ext, it, `
		UPDATE order_items
		SET order_id = $2, product_id = $3, quantity = $4, unit_price = $5,
			subtotal = $6, notes = $7, updated_at = now()
		WHERE id = $1
		RETURNING *`,
		it.ID, it.OrderID, it.ProductID, it.Quantity, it.UnitPrice, it.Subtotal, it.Notes)
}

func (r *OrderItemRepo) Delete(id uuid.UUID) error {
	_, err := r.ext.Exec(`DELETE FROM order_items WHERE id = $1`, id)
	return err
}
