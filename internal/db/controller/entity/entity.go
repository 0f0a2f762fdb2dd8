// Package entity provides the CRUD operations shared by the id keyed tables (products, branches).
package entity

import (
	"errors"

	"gorm.io/gorm"

	"github.com/partshop/partshop/internal/db/models"
)

const idQueryPattern = "id = ?"

var (
	// ErrNotFound is returned when no row has the requested id.
	ErrNotFound = errors.New("record not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Record lists the models stored through this package.
type Record interface {
	models.Product | models.Branch
}

// Fields is a normalized set of mutable columns.
type Fields interface {
	Columns() map[string]any
}

// List returns all rows, newest id first.
func List[T Record](db *gorm.DB) ([]T, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	records := make([]T, 0)
	if err := db.Order("id DESC").Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

// Create inserts record. The store assigns id and creation time on record.
func Create[T Record](db *gorm.DB, record *T) error {
	if db == nil {
		return ErrDBNil
	}

	return db.Create(record).Error
}

// Update replaces every mutable column of the row with the given id.
// Writing the same values twice succeeds both times.
func Update[T Record](db *gorm.DB, id uint64, fields Fields) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Model(new(T)).Where(idQueryPattern, id).Updates(fields.Columns())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected > 0 {
		return nil
	}

	// mysql reports unchanged rows as not affected
	var count int64
	if err := db.Model(new(T)).Where(idQueryPattern, id).Count(&count).Error; err != nil {
		return err
	}

	if count == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes the row with the given id.
func Delete[T Record](db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Where(idQueryPattern, id).Delete(new(T))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
