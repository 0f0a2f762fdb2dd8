package models

import (
	"time"
)

// BranchFields are the mutable columns of a branch.
type BranchFields struct {
	Name        string `json:"name" gorm:"not null"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Coordinates string `json:"coordinates"`
}

// NewBranchFields normalizes a request body, every field is always set.
func NewBranchFields(body Body) BranchFields {
	return BranchFields{
		Name:        text(body, "name"),
		Address:     text(body, "address"),
		Phone:       text(body, "phone"),
		Coordinates: text(body, "coordinates"),
	}
}

// Columns implements entity.Fields.
func (f BranchFields) Columns() map[string]any {
	return map[string]any{
		"name":        f.Name,
		"address":     f.Address,
		"phone":       f.Phone,
		"coordinates": f.Coordinates,
	}
}

// Branch is a shop location.
type Branch struct {
	ID uint64 `json:"id" gorm:"primaryKey;autoIncrement"`
	BranchFields
	CreatedAt time.Time `json:"created_at"`
}

// BranchView is a branch without creation time, as returned by an update.
type BranchView struct {
	ID uint64 `json:"id"`
	BranchFields
}
