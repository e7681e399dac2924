package services

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ray-remotestate/orderdesk/apperr"
	"github.com/ray-remotestate/orderdesk/models"
	"github.com/ray-remotestate/orderdesk/utils"
)

type OrderService struct {
	store Store
}

func NewOrderService(store Store) *OrderService {
	return &OrderService{store: store}
}

type CreateOrderInput struct {
	UserID    uuid.UUID          `json:"user_id" validate:"required"`
	Table     *string            `json:"table" validate:"omitempty,max=255"`
	OrderType models.OrderType   `json:"order_type" validate:"required,oneof=dine_in takeaway delivery"`
	Status    models.OrderStatus `json:"status" validate:"required,oneof=pending preparing ready completed cancelled"`
	Subtotal  *decimal.Decimal   `json:"subtotal" validate:"required,gte=0"`
	Tax       *decimal.Decimal   `json:"tax" validate:"required,gte=0"`
	Discount  *decimal.Decimal   `json:"discount" validate:"omitempty,gte=0"`
	Total     *decimal.Decimal   `json:"total" validate:"required,gte=0"`
	Notes     *string            `json:"notes"`
}

type UpdateOrderInput struct {
	UserID    *uuid.UUID          `json:"user_id"`
	Table     *string             `json:"table" validate:"omitempty,max=255"`
	OrderType *models.OrderType   `json:"order_type" validate:"omitempty,oneof=dine_in takeaway delivery"`
	Status    *models.OrderStatus `json:"status" validate:"omitempty,oneof=pending preparing ready completed cancelled"`
	Subtotal  *decimal.Decimal    `json:"subtotal" validate:"omitempty,gte=0"`
	Tax       *decimal.Decimal    `json:"tax" validate:"omitempty,gte=0"`
	Discount  *decimal.Decimal    `json:"discount" validate:"omitempty,gte=0"`
	Total     *decimal.Decimal    `json:"total" validate:"omitempty,gte=0"`
	Notes     *string             `json:"notes"`
}

func (s *OrderService) List() ([]models.Order, error) {
	return s.store.Orders().List()
}

// Create persists a new order. The order number is always generated here;
// a caller-supplied one is never accepted.
func (s *OrderService) Create(in CreateOrderInput) (*models.Order, error) {
	exists, err := s.store.Users().Exists(in.UserID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.Validation("Validation Error", map[string]string{
			"user_id": "user_id does not exist",
		})
	}

	order := &models.Order{
		OrderNumber: utils.GenerateOrderNumber(),
		UserID:      in.UserID,
		Table:       in.Table,
		OrderType:   in.OrderType,
		Status:      in.Status,
		Subtotal:    in.Subtotal.Round(2),
		Tax:         in.Tax.Round(2),
		Discount:    decimal.Zero,
		Total:       in.Total.Round(2),
		Notes:       in.Notes,
	}
	if in.Discount != nil {
		order.Discount = in.Discount.Round(2)
	}

	if err := s.store.Orders().Create(order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) Get(id uuid.UUID) (*models.Order, error) {
	order, err := s.store.Orders().Get(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperr.NotFound("Order not found")
	}
	return order, nil
}

// Update is the generic partial update. order_number is deliberately not on
// the allow-list; it stays system-generated for the lifetime of the order.
func (s *OrderService) Update(id uuid.UUID, in UpdateOrderInput) (*models.Order, error) {
	var order *models.Order
	err := s.store.InTx(func(tx Store) error {
		var err error
		order, err = tx.Orders().Get(id)
		if err != nil {
			return err
		}
		if order == nil {
			return apperr.NotFound("Order not found")
		}

		if in.UserID != nil {
			exists, err := tx.Users().Exists(*in.UserID)
			if err != nil {
				return err
			}
			if !exists {
				return apperr.Validation("Validation Error", map[string]string{
					"user_id": "user_id does not exist",
				})
			}
			order.UserID = *in.UserID
		}
		if in.Table != nil {
			order.Table = in.Table
		}
		if in.OrderType != nil {
			order.OrderType = *in.OrderType
		}
		if in.Status != nil {
			order.Status = *in.Status
		}
		if in.Subtotal != nil {
			order.Subtotal = in.Subtotal.Round(2)
		}
		if in.Tax != nil {
			order.Tax = in.Tax.Round(2)
		}
		if in.Discount != nil {
			order.Discount = in.Discount.Round(2)
		}
		if in.Total != nil {
			order.Total = in.Total.Round(2)
		}
		if in.Notes != nil {
			order.Notes = in.Notes
		}
		return tx.Orders().Update(order)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// UpdateStatus accepts any of the five statuses regardless of the current
// one; there is no transition-adjacency table.
func (s *OrderService) UpdateStatus(id uuid.UUID, status models.OrderStatus) (*models.Order, error) {
	if !status.IsValid() {
		return nil, apperr.Validation("Validation Error", map[string]string{
			"status": "status must be one of pending, preparing, ready, completed, cancelled",
		})
	}

	var order *models.Order
	err := s.store.InTx(func(tx Store) error {
		var err error
		order, err = tx.Orders().Get(id)
		if err != nil {
			return err
		}
		if order == nil {
			return apperr.NotFound("Order not found")
		}
		order.Status = status
		return tx.Orders().Update(order)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// Cancel moves the order to cancelled from any non-completed status.
// Cancelling an already cancelled order is a no-op success.
func (s *OrderService) Cancel(id uuid.UUID) (*models.Order, error) {
	var order *models.Order
	err := s.store.InTx(func(tx Store) error {
		var err error
		order, err = tx.Orders().Get(id)
		if err != nil {
			return err
		}
		if order == nil {
			return apperr.NotFound("Order not found")
		}
		if order.Status == models.StatusCompleted {
			return apperr.InvalidState("Completed orders cannot be cancelled")
		}
		order.Status = models.StatusCancelled
		return tx.Orders().Update(order)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) ListByStatus(status models.OrderStatus) ([]models.Order, error) {
	if !status.IsValid() {
		return nil, apperr.Validation("Invalid status parameter", map[string]string{
			"status": "status must be one of pending, preparing, ready, completed, cancelled",
		})
	}
	return s.store.Orders().ListByStatus(status)
}
