// Package dbhelper implements the services store contract on postgres via
// sqlx. Each repository holds the current executor, which is either the DB
// pool or an open transaction.
package dbhelper

import (
	"github.com/jmoiron/sqlx"

	"github.com/ray-remotestate/orderdesk/database"
	"github.com/ray-remotestate/orderdesk/services"
)

type Store struct {
	db  *sqlx.DB // nil when this view is transactional
	ext sqlx.Ext
}

func New(db *sqlx.DB) *Store {
	return &Store{db: db, ext: db}
}

func (s *Store) Categories() services.CategoryStore { return &CategoryRepo{ext: s.ext} }
func (s *Store) Suppliers() services.SupplierStore  { return &SupplierRepo{ext: s.ext} }
func (s *Store) Products() services.ProductStore    { return &ProductRepo{ext: s.ext} }
func (s *Store) Orders() services.OrderStore        { return &OrderRepo{ext: s.ext} }
func (s *Store) OrderItems() services.OrderItemStore { return &OrderItemRepo{ext: s.ext} }
func (s *Store) Users() services.UserStore          { return &UserRepo{ext: s.ext} }

// InTx hands fn a view of the store bound to a single transaction. Nested
// calls reuse the transaction already in flight.
func (s *Store) InTx(fn func(services.Store) error) error {
	if s.db == nil {
		return fn(s)
	}
	return database.Tx(s.db, func(tx *sqlx.Tx) error {
		return fn(&Store{ext: tx})
	})
}
