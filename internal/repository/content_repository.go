package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"regadmin/internal/model"
	"regadmin/internal/query"
)

// ContentRepository defines content persistence operations.
type ContentRepository interface {
	Create(ctx context.Context, content *model.Content) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Content, error)
	FindByTitle(ctx context.Context, title string) (*model.Content, error)
	List(ctx context.Context, f query.Filter, opts query.Options) ([]model.Content, int64, error)
	Update(ctx context.Context, content *model.Content) error
	MarkDeleted(ctx context.Context, id uuid.UUID, updatedBy uuid.UUID) error
}

type contentRepository struct {
	db *gorm.DB
}

// NewContentRepository builds a GORM-backed content repository.
func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

func (r *contentRepository) Create(ctx context.Context, content *model.Content) error {
	return r.db.WithContext(ctx).Create(content).Error
}

func (r *contentRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Content, error) {
	var content model.Content
	err := r.db.WithContext(ctx).
		Preload("Details.Images").
		Preload("Details").
		Preload("CreatedBy").
		Preload("UpdatedBy").
		Where("id = ?", id).
		First(&content).Error
	if err != nil {
		return nil, err
	}
	return &content, nil
}

func (r *contentRepository) FindByTitle(ctx context.Context, title string) (*model.Content, error) {
	var content model.Content
	if err := r.db.WithContext(ctx).Where("title = ?", title).First(&content).Error; err != nil {
		return nil, err
	}
	return &content, nil
}

func (r *contentRepository) List(ctx context.Context, f query.Filter, opts query.Options) ([]model.Content, int64, error) {
	base := func() *gorm.DB {
		return f.Apply(r.db.WithContext(ctx).Model(&model.Content{}))
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := opts.ApplyPage(opts.ApplyOrder(base())).
		Preload("Details.Images").
		Preload("Details").
		Preload("CreatedBy").
		Preload("UpdatedBy")

	var contents []model.Content
	if err := q.Find(&contents).Error; err != nil {
		return nil, 0, err
	}
	return contents, total, nil
}

func (r *contentRepository) Update(ctx context.Context, content *model.Content) error {
	return r.db.WithContext(ctx).Save(content).Error
}

func (r *contentRepository) MarkDeleted(ctx context.Context, id uuid.UUID, updatedBy uuid.UUID) error {
	res := r.db.WithContext(ctx).Model(&model.Content{}).
		Where("id = ? AND deleted = ?", id, false).
		Updates(map[string]interface{}{"deleted": true, "updated_by_id": updatedBy})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
