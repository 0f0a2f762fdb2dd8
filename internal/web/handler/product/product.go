// Package product serves the parts catalog under /api/products.
package product

import (
	"github.com/partshop/partshop/internal/db/models"
	"github.com/partshop/partshop/internal/web/handler/entity"
)

// Path is the products collection.
const Path = "/api/products"

// Service is the products handler service.
type Service = entity.Service[models.Product, models.ProductFields, models.ProductView]

// New returns the products handler.
func New() *Service {
	return entity.New(entity.Kind[models.Product, models.ProductFields, models.ProductView]{
		Path:      Path,
		Normalize: models.NewProductFields,
		Record: func(f models.ProductFields) models.Product {
			return models.Product{ProductFields: f}
		},
		View: func(id uint64, f models.ProductFields) models.ProductView {
			return models.ProductView{ID: id, ProductFields: f}
		},
	})
}
