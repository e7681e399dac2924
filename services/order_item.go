package services

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ray-remotestate/orderdesk/apperr"
	"github.com/ray-remotestate/orderdesk/models"
)

type OrderItemService struct {
	store Store
}

func NewOrderItemService(store Store) *OrderItemService {
	return &OrderItemService{store: store}
}

type CreateOrderItemInput struct {
	OrderID   uuid.UUID `json:"order_id" validate:"required"`
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,min=1"`
	Notes     *string   `json:"notes"`
}

// UpdateOrderItemInput is the generic partial update allow-list. unit_price
// and subtotal are excluded on purpose: the unit price is a creation-time
// snapshot and the subtotal is always derived from it.
type UpdateOrderItemInput struct {
	OrderID   *uuid.UUID `json:"order_id"`
	ProductID *uuid.UUID `json:"product_id"`
	Quantity  *int       `json:"quantity" validate:"omitempty,min=1"`
	Notes     *string    `json:"notes"`
}

type BulkAddEntry struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,min=1"`
	Notes     *string   `json:"notes"`
}

type BulkAddInput struct {
	OrderID uuid.UUID      `json:"order_id" validate:"required"`
	Items   []BulkAddEntry `json:"items" validate:"required,min=1,dive"`
}

func guardItemMutable(order *models.Order, action string) error {
	if order.Status.IsTerminal() {
		return apperr.InvalidState("Cannot " + action + " completed or cancelled orders")
	}
	return nil
}

func (s *OrderItemService) List() ([]models.OrderItem, error) {
	return s.store.OrderItems().List()
}

// Create snapshots the current product price as unit_price and derives the
// subtotal from it.
func (s *OrderItemService) Create(in CreateOrderItemInput) (*models.OrderItem, error) {
	var item *models.OrderItem
	err := s.store.InTx(func(tx Store) error {
		order, err := tx.Orders().Get(in.OrderID)
		if err != nil {
			return err
		}
		if order == nil {
			return apperr.NotFound("Order not found")
		}
		if err := guardItemMutable(order, "add items to"); err != nil {
			return err
		}

		product, err := tx.Products().Get(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return apperr.NotFound("Product not found")
		}

		item = &models.OrderItem{
			OrderID:   in.OrderID,
			ProductID: in.ProductID,
			UnitPrice: product.Price,
			Notes:     in.Notes,
		}
		item.SetQuantity(in.Quantity)
		return tx.OrderItems().Create(item)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *OrderItemService) Get(id uuid.UUID) (*models.OrderItem, error) {
	item, err := s.store.OrderItems().Get(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperr.NotFound("Order item not found")
	}
	return item, nil
}

// Update applies the allow-listed fields. A quantity change recomputes the
// subtotal; switching product_id does not re-snapshot the unit price.
func (s *OrderItemService) Update(id uuid.UUID, in UpdateOrderItemInput) (*models.OrderItem, error) {
	var item *models.OrderItem
	err := s.store.InTx(func(tx Store) error {
		var err error
		item, err = tx.OrderItems().Get(id)
		if err != nil {
			return err
		}
		if item == nil {
			return apperr.NotFound("Order item not found")
		}

		order, err := tx.Orders().Get(item.OrderID)
		if err != nil {
			return err
		}
		if order == nil {
			return apperr.NotFound("Order not found")
		}
		if err := guardItemMutable(order, "modify items in"); err != nil {
			return err
		}

		if in.OrderID != nil {
			target, err := tx.Orders().Get(*in.OrderID)
			if err != nil {
				return err
			}
			if target == nil {
				return apperr.Validation("Validation Error", map[string]string{
					"order_id": "order_id does not exist",
				})
			}
			item.OrderID = *in.OrderID
		}
		if in.ProductID != nil {
			product, err := tx.Products().Get(*in.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return apperr.Validation("Validation Error", map[string]string{
					"product_id": "product_id does not exist",
				})
			}
			item.ProductID = *in.ProductID
		}
		if in.Quantity != nil {
			item.SetQuantity(*in.Quantity)
		}
		if in.Notes != nil {
			item.Notes = in.Notes
		}
		return tx.OrderItems().Update(item)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateQuantity recomputes the subtotal from the stored unit price.
func (s *OrderItemService) UpdateQuantity(id uuid.UUID, quantity int) (*models.OrderItem, error) {
	if quantity < 1 {
		return nil, apperr.Validation("Validation Error", map[string]string{
			"quantity": "quantity must be at least 1",
		})
	}

	var item *models.OrderItem
	err := s.store.InTx(func(tx Store) error {
		var err error
		item, err = tx.OrderItems().Get(id)
		if err != nil {
			return err
		}
		if item == nil {
			return apperr.NotFound("Order item not found")
		}

		order, err := tx.Orders().Get(item.OrderID)
		if err != nil {
			return err
		}
		if order == nil {
			return apperr.NotFound("Order not found")
		}
		if err := guardItemMutable(order, "modify items in"); err != nil {
			return err
		}

		item.SetQuantity(quantity)
		return tx.OrderItems().Update(item)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// Delete removes the item permanently. Items never survive as soft-deleted
// rows; only the owning order's terminal status protects them.
func (s *OrderItemService) Delete(id uuid.UUID) error {
	return s.store.InTx(func(tx Store) error {
		item, err := tx.OrderItems().Get(id)
		if err != nil {
			return err
		}
		if item == nil {
			return apperr.NotFound("Order item not found")
		}

		order, err := tx.Orders().Get(item.OrderID)
		if err != nil {
			return err
		}
		if order == nil {
			return apperr.NotFound("Order not found")
		}
		if err := guardItemMutable(order, "remove items from"); err != nil {
			return err
		}

		return tx.OrderItems().Delete(id)
	})
}

func (s *OrderItemService) ListByOrder(orderID uuid.UUID) ([]models.OrderItem, error) {
	order, err := s.store.Orders().Get(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperr.NotFound("Order not found")
	}
	return s.store.OrderItems().ListByOrder(orderID)
}

// BulkAdd adds items best-effort: entries whose product does not resolve
// are skipped without failing the batch.
func (s *OrderItemService) BulkAdd(in BulkAddInput) ([]models.OrderItem, error) {
	var added []models.OrderItem
	err := s.store.InTx(func(tx Store) error {
		order, err := tx.Orders().Get(in.OrderID)
		if err != nil {
			return err
		}
		if order == nil {
			return apperr.NotFound("Order not found")
		}
		if err := guardItemMutable(order, "add items to"); err != nil {
			return err
		}

		for _, entry := range in.Items {
			product, err := tx.Products().Get(entry.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				logrus.WithFields(logrus.Fields{
					"order_id":   in.OrderID,
					"product_id": entry.ProductID,
				}).Warn("skipping bulk-add entry: product not found")
				continue
			}

			item := models.OrderItem{
				OrderID:   in.OrderID,
				ProductID: entry.ProductID,
				UnitPrice: product.Price,
				Notes:     entry.Notes,
			}
			item.SetQuantity(entry.Quantity)
			if err := tx.OrderItems().Create(&item); err != nil {
				return err
			}
			added = append(added, item)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return added, nil
}
