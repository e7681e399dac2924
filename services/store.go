package services

import (
	"github.com/google/uuid"

	"github.com/ray-remotestate/orderdesk/models"
)

// Store is the persistence contract the services run against. Get methods
// return (nil, nil) when the id does not resolve; services translate that
// into a 404.
type Store interface {
	Categories() CategoryStore
	Suppliers() SupplierStore
	Products() ProductStore
	Orders() OrderStore
	OrderItems() OrderItemStore
	Users() UserStore

	// InTx runs fn against a transactional view of the store. Every
	// read-modify-write flow goes through here so concurrent requests
	// cannot interleave between the read and the write.
	InTx(fn func(Store) error) error
}

type CategoryStore interface {
	Create(c *models.Category) error
	Get(id uuid.UUID) (*models.Category, error)
	List() ([]models.Category, error)
	Update(c *models.Category) error
}

type SupplierStore interface {
	Create(s *models.Supplier) error
	Get(id uuid.UUID) (*models.Supplier, error)
	List() ([]models.Supplier, error)
	Update(s *models.Supplier) error
}

type ProductStore interface {
	Create(p *models.Product) error
	Get(id uuid.UUID) (*models.Product, error)
	ListFeatured() ([]models.Product, error)
	ListByCategory(categoryID uuid.UUID) ([]models.Product, error)
	Update(p *models.Product) error
}

type OrderStore interface {
	Create(o *models.Order) error
	Get(id uuid.UUID) (*models.Order, error)
	List() ([]models.Order, error)
	ListByStatus(status models.OrderStatus) ([]models.Order, error)
	Update(o *models.Order) error
}

type OrderItemStore interface {
	Create(it *models.OrderItem) error
	Get(id uuid.UUID) (*models.OrderItem, error)
	List() ([]models.OrderItem, error)
	ListByOrder(orderID uuid.UUID) ([]models.OrderItem, error)
	Update(it *models.OrderItem) error
	Delete(id uuid.UUID) error
}

type UserStore interface {
	Create(u *models.User) error
	Exists(id uuid.UUID) (bool, error)
	GetByEmail(email string) (*models.User, error)
	EmailTaken(email string) (bool, error)
}
