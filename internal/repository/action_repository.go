package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"regadmin/internal/model"
	"regadmin/internal/query"
)

// ActionRepository defines action persistence operations.
type ActionRepository interface {
	Create(ctx context.Context, action *model.Action) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Action, error)
	FindByName(ctx context.Context, name string) (*model.Action, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Action, error)
	List(ctx context.Context, f query.Filter, opts query.Options) ([]model.Action, int64, error)
	Update(ctx context.Context, action *model.Action) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type actionRepository struct {
	db *gorm.DB
}

// NewActionRepository builds a GORM-backed action repository.
func NewActionRepository(db *gorm.DB) ActionRepository {
	return &actionRepository{db: db}
}

func (r *actionRepository) Create(ctx context.Context, action *model.Action) error {
	return r.db.WithContext(ctx).Create(action).Error
}

func (r *actionRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Action, error) {
	var action model.Action
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&action).Error; err != nil {
		return nil, err
	}
	return &action, nil
}

func (r *actionRepository) FindByName(ctx context.Context, name string) (*model.Action, error) {
	var action model.Action
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&action).Error; err != nil {
		return nil, err
	}
	return &action, nil
}

func (r *actionRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Action, error) {
	var actions []model.Action
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&actions).Error; err != nil {
		return nil, err
	}
	return actions, nil
}

func (r *actionRepository) List(ctx context.Context, f query.Filter, opts query.Options) ([]model.Action, int64, error) {
	base := func() *gorm.DB {
		return f.Apply(r.db.WithContext(ctx).Model(&model.Action{}))
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var actions []model.Action
	q := opts.ApplyPage(opts.ApplyOrder(opts.ApplySelect(base())))
	if err := q.Find(&actions).Error; err != nil {
		return nil, 0, err
	}
	return actions, total, nil
}

func (r *actionRepository) Update(ctx context.Context, action *model.Action) error {
	return r.db.WithContext(ctx).Save(action).Error
}

func (r *actionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Action{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
