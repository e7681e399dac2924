// Package testutil provides an in-memory store implementation for service
// and handler tests.
package testutil

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/ray-remotestate/orderdesk/models"
	"github.com/ray-remotestate/orderdesk/services"
)

type MemStore struct {
	CategoriesByID map[uuid.UUID]models.Category
	SuppliersByID  map[uuid.UUID]models.Supplier
	ProductsByID   map[uuid.UUID]models.Product
	OrdersByID     map[uuid.UUID]models.Order
	ItemsByID      map[uuid.UUID]models.OrderItem
	UsersByID      map[uuid.UUID]models.User
}

var _ services.Store = (*MemStore)(nil)

func NewMemStore() *MemStore {
	return &MemStore{
		CategoriesByID: map[uuid.UUID]models.Category{},
		SuppliersByID:  map[uuid.UUID]models.Supplier{},
		ProductsByID:   map[uuid.UUID]models.Product{},
		OrdersByID:     map[uuid.UUID]models.Order{},
		ItemsByID:      map[uuid.UUID]models.OrderItem{},
		UsersByID:      map[uuid.UUID]models.User{},
	}
}

func (s *MemStore) Categories() services.CategoryStore   { return memCategories{s} }
func (s *MemStore) Suppliers() services.SupplierStore    { return memSuppliers{s} }
func (s *MemStore) Products() services.ProductStore      { return memProducts{s} }
func (s *MemStore) Orders() services.OrderStore          { return memOrders{s} }
func (s *MemStore) OrderItems() services.OrderItemStore  { return memItems{s} }
func (s *MemStore) Users() services.UserStore            { return memUsers{s} }

func (s *MemStore) InTx(fn func(services.Store) error) error {
	return fn(s)
}

// Seed helpers assign ids when missing and return the stored value.

func (s *MemStore) SeedCategory(c models.Category) models.Category {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	s.CategoriesByID[c.ID] = c
	return c
}

func (s *MemStore) SeedProduct(p models.Product) models.Product {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.ImagePath == "" {
		p.ImagePath = models.DefaultImagePath
	}
	s.ProductsByID[p.ID] = p
	return p
}

func (s *MemStore) SeedOrder(o models.Order) models.Order {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	s.OrdersByID[o.ID] = o
	return o
}

func (s *MemStore) SeedItem(it models.OrderItem) models.OrderItem {
	if it.ID == uuid.Nil {
		it.ID = uuid.New()
	}
	s.ItemsByID[it.ID] = it
	return it
}

func (s *MemStore) SeedUser(u models.User) models.User {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	s.UsersByID[u.ID] = u
	return u
}

type memCategories struct{ s *MemStore }

func (m memCategories) Create(c *models.Category) error {
	c.ID = uuid.New()
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	m.s.CategoriesByID[c.ID] = *c
	return nil
}

func (m memCategories) Get(id uuid.UUID) (*models.Category, error) {
	c, ok := m.s.CategoriesByID[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (m memCategories) List() ([]models.Category, error) {
	out := make([]models.Category, 0, len(m.s.CategoriesByID))
	for _, c := range m.s.CategoriesByID {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m memCategories) Update(c *models.Category) error {
	c.UpdatedAt = time.Now()
	m.s.CategoriesByID[c.ID] = *c
	return nil
}

type memSuppliers struct{ s *MemStore }

func (m memSuppliers) Create(sp *models.Supplier) error {
	sp.ID = uuid.New()
	sp.CreatedAt = time.Now()
	sp.UpdatedAt = sp.CreatedAt
	m.s.SuppliersByID[sp.ID] = *sp
	return nil
}

func (m memSuppliers) Get(id uuid.UUID) (*models.Supplier, error) {
	sp, ok := m.s.SuppliersByID[id]
	if !ok {
		return nil, nil
	}
	return &sp, nil
}

func (m memSuppliers) List() ([]models.Supplier, error) {
	out := make([]models.Supplier, 0, len(m.s.SuppliersByID))
	for _, sp := range m.s.SuppliersByID {
		out = append(out, sp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m memSuppliers) Update(sp *models.Supplier) error {
	sp.UpdatedAt = time.Now()
	m.s.SuppliersByID[sp.ID] = *sp
	return nil
}

type memProducts struct{ s *MemStore }

func (m memProducts) Create(p *models.Product) error {
	p.ID = uuid.New()
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	m.s.ProductsByID[p.ID] = *p
	return nil
}

func (m memProducts) Get(id uuid.UUID) (*models.Product, error) {
	p, ok := m.s.ProductsByID[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (m memProducts) ListFeatured() ([]models.Product, error) {
	out := []models.Product{}
	for _, p := range m.s.ProductsByID {
		if p.IsActive && p.IsFeatured {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m memProducts) ListByCategory(categoryID uuid.UUID) ([]models.Product, error) {
	out := []models.Product{}
	for _, p := range m.s.ProductsByID {
		if p.CategoryID == categoryID && p.IsActive {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m memProducts) Update(p *models.Product) error {
	p.UpdatedAt = time.Now()
	m.s.ProductsByID[p.ID] = *p
	return nil
}

type memOrders struct{ s *MemStore }

func (m memOrders) Create(o *models.Order) error {
	o.ID = uuid.New()
	o.CreatedAt = time.Now()
	o.UpdatedAt = o.CreatedAt
	m.s.OrdersByID[o.ID] = *o
	return nil
}

func (m memOrders) Get(id uuid.UUID) (*models.Order, error) {
	o, ok := m.s.OrdersByID[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (m memOrders) List() ([]models.Order, error) {
	out := make([]models.Order, 0, len(m.s.OrdersByID))
	for _, o := range m.s.OrdersByID {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m memOrders) ListByStatus(status models.OrderStatus) ([]models.Order, error) {
	out := []models.Order{}
	for _, o := range m.s.OrdersByID {
		if o.Status == status {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m memOrders) Update(o *models.Order) error {
	o.UpdatedAt = time.Now()
	m.s.OrdersByID[o.ID] = *o
	return nil
}

type memItems struct{ s *MemStore }

func (m memItems) Create(it *models.OrderItem) error {
	it.ID = uuid.New()
	it.CreatedAt = time.Now()
	it.UpdatedAt = it.CreatedAt
	m.s.ItemsByID[it.ID] = *it
	return nil
}

func (m memItems) Get(id uuid.UUID) (*models.OrderItem, error) {
	it, ok := m.s.ItemsByID[id]
	if !ok {
		return nil, nil
	}
	return &it, nil
}

func (m memItems) List() ([]models.OrderItem, error) {
	out := make([]models.OrderItem, 0, len(m.s.ItemsByID))
	for _, it := range m.s.ItemsByID {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m memItems) ListByOrder(orderID uuid.UUID) ([]models.OrderItem, error) {
	out := []models.OrderItem{}
	for _, it := range m.s.ItemsByID {
		if it.OrderID == orderID {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m memItems) Update(it *models.OrderItem) error {
	it.UpdatedAt = time.Now()
	m.s.ItemsByID[it.ID] = *it
	return nil
}

func (m memItems) Delete(id uuid.UUID) error {
	delete(m.s.ItemsByID, id)
	return nil
}

type memUsers struct{ s *MemStore }

func (m memUsers) Create(u *models.User) error {
	u.ID = uuid.New()
	u.CreatedAt = time.Now()
	m.s.UsersByID[u.ID] = *u
	return nil
}

func (m memUsers) Exists(id uuid.UUID) (bool, error) {
	u, ok := m.s.UsersByID[id]
	return ok && u.ArchivedAt == nil, nil
}

func (m memUsers) GetByEmail(email string) (*models.User, error) {
	for _, u := range m.s.UsersByID {
		if u.Email == email && u.ArchivedAt == nil {
			out := u
			return &out, nil
		}
	}
	return nil, nil
}

func (m memUsers) EmailTaken(email string) (bool, error) {
	for _, u := range m.s.UsersByID {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}
