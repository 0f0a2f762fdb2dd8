// Package branch serves the shop locations under /api/branches.
package branch

import (
	"github.com/partshop/partshop/internal/db/models"
	"github.com/partshop/partshop/internal/web/handler/entity"
)

// Path is the branches collection.
const Path = "/api/branches"

// Service is the branches handler service.
type Service = entity.Service[models.Branch, models.BranchFields, models.BranchView]

// New returns the branches handler.
func New() *Service {
	return entity.New(entity.Kind[models.Branch, models.BranchFields, models.BranchView]{
		Path:      Path,
		Normalize: models.NewBranchFields,
		Record: func(f models.BranchFields) models.Branch {
			return models.Branch{BranchFields: f}
		},
		View: func(id uint64, f models.BranchFields) models.BranchView {
			return models.BranchView{ID: id, BranchFields: f}
		},
	})
}
