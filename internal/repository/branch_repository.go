package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"regadmin/internal/model"
)

// BranchRepository defines branch persistence operations.
type BranchRepository interface {
	Create(ctx context.Context, branch *model.Branch) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Branch, error)
	FindByName(ctx context.Context, name string) (*model.Branch, error)
	ListActive(ctx context.Context) ([]model.Branch, error)
	Update(ctx context.Context, branch *model.Branch) error
}

type branchRepository struct {
	db *gorm.DB
}

// NewBranchRepository builds a GORM-backed branch repository.
func NewBranchRepository(db *gorm.DB) BranchRepository {
	return &branchRepository{db: db}
}

func (r *branchRepository) Create(ctx context.Context, branch *model.Branch) error {
	return r.db.WithContext(ctx).Create(branch).Error
}

func (r *branchRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Branch, error) {
	var branch model.Branch
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&branch).Error; err != nil {
		return nil, err
	}
	return &branch, nil
}

func (r *branchRepository) FindByName(ctx context.Context, name string) (*model.Branch, error) {
	var branch model.Branch
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&branch).Error; err != nil {
		return nil, err
	}
	return &branch, nil
}

// ListActive returns active branches with manager populated, newest first.
func (r *branchRepository) ListActive(ctx context.Context) ([]model.Branch, error) {
	var branches []model.Branch
	err := r.db.WithContext(ctx).
		Preload("Manager").
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&branches).Error
	if err != nil {
		return nil, err
	}
	return branches, nil
}

func (r *branchRepository) Update(ctx context.Context, branch *model.Branch) error {
	return r.db.WithContext(ctx).Save(branch).Error
}
