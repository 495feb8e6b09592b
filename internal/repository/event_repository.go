package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"regadmin/internal/model"
	"regadmin/internal/query"
)

// EventRepository defines event persistence operations.
type EventRepository interface {
	Create(ctx context.Context, event *model.Event) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Event, error)
	List(ctx context.Context, f query.Filter, opts query.Options) ([]model.Event, int64, error)
	Update(ctx context.Context, event *model.Event) error
}

type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository builds a GORM-backed event repository.
func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	var event model.Event
	err := r.db.WithContext(ctx).
		Preload("CreatedBy").
		Preload("UpdatedBy").
		Where("id = ?", id).
		First(&event).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) List(ctx context.Context, f query.Filter, opts query.Options) ([]model.Event, int64, error) {
	base := func() *gorm.DB {
		return f.Apply(r.db.WithContext(ctx).Model(&model.Event{}))
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := opts.ApplyPage(opts.ApplyOrder(base())).
		Preload("CreatedBy").
		Preload("UpdatedBy")

	var events []model.Event
	if err := q.Find(&events).Error; err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

func (r *eventRepository) Update(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).Save(event).Error
}
