package services

import (
	"io"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/ray-remotestate/orderdesk/apperr"
	"github.com/ray-remotestate/orderdesk/models"
)

// ImageStore is the blob-store collaborator for product images. Save
// returns the stored path recorded on the product; URL resolves a stored
// path to a public address.
type ImageStore interface {
	Save(filename string, r io.Reader) (string, error)
	Delete(path string) error
	URL(path string) string
}

type ProductService struct {
	store  Store
	images ImageStore
}

func NewProductService(store Store, images ImageStore) *ProductService {
	return &ProductService{store: store, images: images}
}

// ImageUpload is an already-validated uploaded file; size and mime checks
// happen at the API layer.
type ImageUpload struct {
	Filename string
	Reader   io.Reader
}

type CreateProductInput struct {
	CategoryID  uuid.UUID        `json:"category_id" validate:"required"`
	Name        string           `json:"name" validate:"required,max=255"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price" validate:"required,gte=0"`
	IsActive    *bool            `json:"is_active"`
	IsFeatured  *bool            `json:"is_featured"`
}

type UpdateProductInput struct {
	CategoryID  *uuid.UUID       `json:"category_id"`
	Name        *string          `json:"name" validate:"omitempty,max=255"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price" validate:"omitempty,gte=0"`
	IsActive    *bool            `json:"is_active"`
	IsFeatured  *bool            `json:"is_featured"`
}

// List returns the storefront listing: active featured products with their
// category attached.
func (s *ProductService) List() ([]models.Product, error) {
	products, err := s.store.Products().ListFeatured()
	if err != nil {
		return nil, err
	}
	return s.decorate(products)
}

func (s *ProductService) Create(in CreateProductInput, image *ImageUpload) (*models.Product, error) {
	category, err := s.store.Categories().Get(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperr.Validation("Validation Error", map[string]string{
			"category_id": "category_id does not exist",
		})
	}

	product := &models.Product{
		CategoryID:  in.CategoryID,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price.Round(2),
		ImagePath:   models.DefaultImagePath,
		IsActive:    true,
		IsFeatured:  false,
	}
	if in.IsActive != nil {
		product.IsActive = *in.IsActive
	}
	if in.IsFeatured != nil {
		product.IsFeatured = *in.IsFeatured
	}

	if image != nil {
		path, err := s.images.Save(image.Filename, image.Reader)
		if err != nil {
			return nil, err
		}
		product.ImagePath = path
	}

	if err := s.store.Products().Create(product); err != nil {
		return nil, err
	}
	product.ImageURL = s.images.URL(product.ImagePath)
	return product, nil
}

func (s *ProductService) Get(id uuid.UUID) (*models.Product, error) {
	product, err := s.store.Products().Get(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperr.NotFound("Product not found")
	}
	s.attachCategory(product)
	product.ImageURL = s.images.URL(product.ImagePath)
	return product, nil
}

// Update applies present fields only. When a new image comes in, the
// previously stored file is released first unless it is the default
// sentinel; exactly one stored image remains afterwards.
func (s *ProductService) Update(id uuid.UUID, in UpdateProductInput, image *ImageUpload) (*models.Product, error) {
	var product *models.Product
	err := s.store.InTx(func(tx Store) error {
		var err error
		product, err = tx.Products().Get(id)
		if err != nil {
			return err
		}
		if product == nil {
			return apperr.NotFound("Product not found")
		}

		if in.CategoryID != nil {
			category, err := tx.Categories().Get(*in.CategoryID)
			if err != nil {
				return err
			}
			if category == nil {
				return apperr.Validation("Validation Error", map[string]string{
					"category_id": "category_id does not exist",
				})
			}
			product.CategoryID = *in.CategoryID
		}
		if in.Name != nil {
			product.Name = *in.Name
		}
		if in.Description != nil {
			product.Description = in.Description
		}
		if in.Price != nil {
			product.Price = in.Price.Round(2)
		}
		if in.IsActive != nil {
			product.IsActive = *in.IsActive
		}
		if in.IsFeatured != nil {
			product.IsFeatured = *in.IsFeatured
		}

		if image != nil {
			if product.HasCustomImage() {
				if err := s.images.Delete(product.ImagePath); err != nil {
					logrus.WithError(err).WithField("path", product.ImagePath).
						Warn("failed to release previous product image")
				}
			}
			path, err := s.images.Save(image.Filename, image.Reader)
			if err != nil {
				return err
			}
			product.ImagePath = path
		}

		return tx.Products().Update(product)
	})
	if err != nil {
		return nil, err
	}
	product.ImageURL = s.images.URL(product.ImagePath)
	return product, nil
}

// RemoveImage resets image_path to the default sentinel, releasing the
// prior stored file when it is not the default.
func (s *ProductService) RemoveImage(id uuid.UUID) (*models.Product, error) {
	var product *models.Product
	err := s.store.InTx(func(tx Store) error {
		var err error
		product, err = tx.Products().Get(id)
		if err != nil {
			return err
		}
		if product == nil {
			return apperr.NotFound("Product not found")
		}

		if product.HasCustomImage() {
			if err := s.images.Delete(product.ImagePath); err != nil {
				logrus.WithError(err).WithField("path", product.ImagePath).
					Warn("failed to release product image")
			}
		}
		product.ImagePath = models.DefaultImagePath
		return tx.Products().Update(product)
	})
	if err != nil {
		return nil, err
	}
	product.ImageURL = s.images.URL(product.ImagePath)
	return product, nil
}

func (s *ProductService) Deactivate(id uuid.UUID) error {
	return s.store.InTx(func(tx Store) error {
		product, err := tx.Products().Get(id)
		if err != nil {
			return err
		}
		if product == nil {
			return apperr.NotFound("Product not found")
		}
		product.IsActive = false
		return tx.Products().Update(product)
	})
}

func (s *ProductService) ListFeatured() ([]models.Product, error) {
	products, err := s.store.Products().ListFeatured()
	if err != nil {
		return nil, err
	}
	return s.decorate(products)
}

func (s *ProductService) ListByCategory(categoryID uuid.UUID) ([]models.Product, error) {
	products, err := s.store.Products().ListByCategory(categoryID)
	if err != nil {
		return nil, err
	}
	return s.decorate(products)
}

func (s *ProductService) decorate(products []models.Product) ([]models.Product, error) {
	categories, err := s.store.Categories().List()
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*models.Category, len(categories))
	for i := range categories {
		byID[categories[i].ID] = &categories[i]
	}
	for i := range products {
		products[i].Category = byID[products[i].CategoryID]
		products[i].ImageURL = s.images.URL(products[i].ImagePath)
	}
	return products, nil
}

func (s *ProductService) attachCategory(product *models.Product) {
	category, err := s.store.Categories().Get(product.CategoryID)
	if err != nil {
		logrus.WithError(err).Warn("failed to load product category")
		return
	}
	product.Category = category
}
