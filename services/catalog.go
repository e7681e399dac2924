package services

import (
	"github.com/google/uuid"

	"github.com/ray-remotestate/orderdesk/apperr"
	"github.com/ray-remotestate/orderdesk/models"
)

type CategoryService struct {
	store Store
}

func NewCategoryService(store Store) *CategoryService {
	return &CategoryService{store: store}
}

type CreateCategoryInput struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

type UpdateCategoryInput struct {
	Name        *string `json:"name" validate:"omitempty,max=255"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

func (s *CategoryService) List() ([]models.Category, error) {
	return s.store.Categories().List()
}

func (s *CategoryService) Create(in CreateCategoryInput) (*models.Category, error) {
	category := &models.Category{
		Name:        in.Name,
		Description: in.Description,
		IsActive:    true,
	}
	if in.IsActive != nil {
		category.IsActive = *in.IsActive
	}
	if err := s.store.Categories().Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Get(id uuid.UUID) (*models.Category, error) {
	category, err := s.store.Categories().Get(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperr.NotFound("Category not found")
	}
	return category, nil
}

// Update applies only the fields present in the input; everything else is
// left as stored.
func (s *CategoryService) Update(id uuid.UUID, in UpdateCategoryInput) (*models.Category, error) {
	var category *models.Category
	err := s.store.InTx(func(tx Store) error {
		var err error
		category, err = tx.Categories().Get(id)
		if err != nil {
			return err
		}
		if category == nil {
			return apperr.NotFound("Category not found")
		}

		if in.Name != nil {
			category.Name = *in.Name
		}
		if in.Description != nil {
			category.Description = in.Description
		}
		if in.IsActive != nil {
			category.IsActive = *in.IsActive
		}
		return tx.Categories().Update(category)
	})
	if err != nil {
		return nil, err
	}
	return category, nil
}

// Deactivate flips is_active off; the row is never removed.
func (s *CategoryService) Deactivate(id uuid.UUID) error {
	return s.store.InTx(func(tx Store) error {
		category, err := tx.Categories().Get(id)
		if err != nil {
			return err
		}
		if category == nil {
			return apperr.NotFound("Category not found")
		}
		category.IsActive = false
		return tx.Categories().Update(category)
	})
}

type SupplierService struct {
	store Store
}

func NewSupplierService(store Store) *SupplierService {
	return &SupplierService{store: store}
}

type CreateSupplierInput struct {
	Name     string  `json:"name" validate:"required,max=255"`
	Email    *string `json:"email" validate:"omitempty,email,max=255"`
	Phone    *string `json:"phone" validate:"omitempty,max=20"`
	Address  *string `json:"address"`
	IsActive *bool   `json:"is_active"`
}

type UpdateSupplierInput struct {
	Name     *string `json:"name" validate:"omitempty,max=255"`
	Email    *string `json:"email" validate:"omitempty,email,max=255"`
	Phone    *string `json:"phone" validate:"omitempty,max=20"`
	Address  *string `json:"address"`
	IsActive *bool   `json:"is_active"`
}

func (s *SupplierService) List() ([]models.Supplier, error) {
	return s.store.Suppliers().List()
}

func (s *SupplierService) Create(in CreateSupplierInput) (*models.Supplier, error) {
	supplier := &models.Supplier{
		Name:     in.Name,
		Email:    in.Email,
		Phone:    in.Phone,
		Address:  in.Address,
		IsActive: true,
	}
	if in.IsActive != nil {
		supplier.IsActive = *in.IsActive
	}
	if err := s.store.Suppliers().Create(supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

func (s *SupplierService) Get(id uuid.UUID) (*models.Supplier, error) {
	supplier, err := s.store.Suppliers().Get(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apperr.NotFound("Supplier not found")
	}
	return supplier, nil
}

func (s *SupplierService) Update(id uuid.UUID, in UpdateSupplierInput) (*models.Supplier, error) {
	var supplier *models.Supplier
	err := s.store.InTx(func(tx Store) error {
		var err error
		supplier, err = tx.Suppliers().Get(id)
		if err != nil {
			return err
		}
		if supplier == nil {
			return apperr.NotFound("Supplier not found")
		}

		if in.Name != nil {
			supplier.Name = *in.Name
		}
		if in.Email != nil {
			supplier.Email = in.Email
		}
		if in.Phone != nil {
			supplier.Phone = in.Phone
		}
		if in.Address != nil {
			supplier.Address = in.Address
		}
		if in.IsActive != nil {
			supplier.IsActive = *in.IsActive
		}
		return tx.Suppliers().Update(supplier)
	})
	if err != nil {
		return nil, err
	}
	return supplier, nil
}

func (s *SupplierService) Deactivate(id uuid.UUID) error {
	return s.store.InTx(func(tx Store) error {
		supplier, err := tx.Suppliers().Get(id)
		if err != nil {
			return err
		}
		if supplier == nil {
			return apperr.NotFound("Supplier not found")
		}
		supplier.IsActive = false
		return tx.Suppliers().Update(supplier)
	})
}
