package models

import (
	"time"
)

// ProductFields are the mutable columns of a product.
type ProductFields struct {
	Name   string `json:"name" gorm:"not null"`
	Models string `json:"models"`
	Image  string `json:"image"`
}

// NewProductFields normalizes a request body, every field is always set.
func NewProductFields(body Body) ProductFields {
	return ProductFields{
		Name:   text(body, "name"),
		Models: text(body, "models"),
		Image:  text(body, "image"),
	}
}

// Columns implements entity.Fields.
func (f ProductFields) Columns() map[string]any {
	return map[string]any{
		"name":   f.Name,
		"models": f.Models,
		"image":  f.Image,
	}
}

// Product is a part offered in the catalog.
type Product struct {
	ID uint64 `json:"id" gorm:"primaryKey;autoIncrement"`
	ProductFields
	CreatedAt time.Time `json:"created_at"`
}

// ProductView is a product without creation time, as returned by an update.
type ProductView struct {
	ID uint64 `json:"id"`
	ProductFields
}
