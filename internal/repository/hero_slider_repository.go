package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"regadmin/internal/model"
	"regadmin/internal/query"
)

// HeroSliderRepository defines hero-slider persistence operations.
type HeroSliderRepository interface {
	Create(ctx context.Context, slider *model.HeroSlider) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.HeroSlider, error)
	List(ctx context.Context, f query.Filter, opts query.Options) ([]model.HeroSlider, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type heroSliderRepository struct {
	db *gorm.DB
}

// NewHeroSliderRepository builds a GORM-backed hero-slider repository.
func NewHeroSliderRepository(db *gorm.DB) HeroSliderRepository {
	return &heroSliderRepository{db: db}
}

func (r *heroSliderRepository) Create(ctx context.Context, slider *model.HeroSlider) error {
	return r.db.WithContext(ctx).Create(slider).Error
}

func (r *heroSliderRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.HeroSlider, error) {
	var slider model.HeroSlider
	err := r.db.WithContext(ctx).
		Preload("CreatedBy").
		Where("id = ?", id).
		First(&slider).Error
	if err != nil {
		return nil, err
	}
	return &slider, nil
}

func (r *heroSliderRepository) List(ctx context.Context, f query.Filter, opts query.Options) ([]model.HeroSlider, int64, error) {
	base := func() *gorm.DB {
		return f.Apply(r.db.WithContext(ctx).Model(&model.HeroSlider{}))
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := opts.ApplyPage(opts.ApplyOrder(base())).Preload("CreatedBy")

	var sliders []model.HeroSlider
	if err := q.Find(&sliders).Error; err != nil {
		return nil, 0, err
	}
	return sliders, total, nil
}

func (r *heroSliderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.HeroSlider{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
