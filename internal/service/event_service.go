package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"regadmin/internal/errors"
	"regadmin/internal/model"
	"regadmin/internal/query"
	"regadmin/internal/repository"
)

// EventInput is the create/update payload for an event.
type EventInput struct {
	Title         string
	DateFrom      time.Time
	DateTo        time.Time
	TimeFrom      string
	TimeTo        string
	Description   string
	Map           string
	URLImage      string
	ContactPerson model.ContactPerson
}

// EventListParams are the recognized list filters for events.
type EventListParams struct {
	Search     string
	EventID    *uuid.UUID
	IsCanceled *bool
	StartDate  *time.Time
	EndDate    *time.Time
	Options    query.Options
}

// EventService manages scheduled events. Deleting an event is a soft cancel.
type EventService interface {
	Create(ctx context.Context, in EventInput, createdBy uuid.UUID) (*model.Event, error)
	List(ctx context.Context, p EventListParams) ([]model.Event, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Event, error)
	Update(ctx context.Context, id uuid.UUID, in EventInput, updatedBy uuid.UUID) (*model.Event, error)
	Cancel(ctx context.Context, id uuid.UUID, canceledBy uuid.UUID) error
}

type eventService struct {
	events repository.EventRepository
}

// NewEventService creates the event service.
func NewEventService(events repository.EventRepository) EventService {
	return &eventService{events: events}
}

// validateSchedule checks the date range and the HH:mm wall-clock times.
// Times must be strictly ordered within a single day.
func validateSchedule(in EventInput) error {
	if in.DateTo.Before(in.DateFrom) {
		return fmt.Errorf("%w: dateTo must not precede dateFrom", errors.ErrValidation)
	}
	from, err := time.Parse("15:04", in.TimeFrom)
	if err != nil {
		return fmt.Errorf("%w: timeFrom must be HH:mm", errors.ErrValidation)
	}
	to, err := time.Parse("15:04", in.TimeTo)
	if err != nil {
		return fmt.Errorf("%w: timeTo must be HH:mm", errors.ErrValidation)
	}
	if !from.Before(to) {
		return fmt.Errorf("%w: timeFrom must precede timeTo", errors.ErrValidation)
	}
	return nil
}

func (s *eventService) Create(ctx context.Context, in EventInput, createdBy uuid.UUID) (*model.Event, error) {
	if err := validateSchedule(in); err != nil {
		return nil, err
	}
	event := &model.Event{
		Title:         in.Title,
		DateFrom:      in.DateFrom,
		DateTo:        in.DateTo,
		TimeFrom:      in.TimeFrom,
		TimeTo:        in.TimeTo,
		Description:   in.Description,
		Map:           in.Map,
		URLImage:      in.URLImage,
		ContactPerson: in.ContactPerson,
		CreatedByID:   createdBy,
	}
	if err := s.events.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return s.events.FindByID(ctx, event.ID)
}

func (s *eventService) List(ctx context.Context, p EventListParams) ([]model.Event, int64, error) {
	f := query.Filter{}.
		WithTextSearch([]string{"title", "description"}, p.Search).
		WithDateRange("date_from", p.StartDate, p.EndDate)
	if p.EventID != nil {
		f = f.WithID("id", *p.EventID)
	}
	if p.IsCanceled != nil {
		f = f.WithBool("is_canceled", *p.IsCanceled)
	}

	return s.events.List(ctx, f, p.Options)
}

func (s *eventService) GetByID(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	event, err := s.events.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrNotFound
		}
		return nil, err
	}
	return event, nil
}

func (s *eventService) Update(ctx context.Context, id uuid.UUID, in EventInput, updatedBy uuid.UUID) (*model.Event, error) {
	event, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != "" {
		event.Title = in.Title
	}
	if !in.DateFrom.IsZero() {
		event.DateFrom = in.DateFrom
	}
	if !in.DateTo.IsZero() {
		event.DateTo = in.DateTo
	}
	if in.TimeFrom != "" {
		event.TimeFrom = in.TimeFrom
	}
	if in.TimeTo != "" {
		event.TimeTo = in.TimeTo
	}
	if err := validateSchedule(EventInput{
		DateFrom: event.DateFrom,
		DateTo:   event.DateTo,
		TimeFrom: event.TimeFrom,
		TimeTo:   event.TimeTo,
	}); err != nil {
		return nil, err
	}
	if in.Description != "" {
		event.Description = in.Description
	}
	if in.Map != "" {
		event.Map = in.Map
	}
	if in.URLImage != "" {
		event.URLImage = in.URLImage
	}
	if in.ContactPerson.Name != "" {
		event.ContactPerson = in.ContactPerson
	}
	event.UpdatedByID = &updatedBy

	if err := s.events.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}
	return s.events.FindByID(ctx, id)
}

// Cancel flags the event; the row is kept for history.
func (s *eventService) Cancel(ctx context.Context, id uuid.UUID, canceledBy uuid.UUID) error {
	event, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	event.IsCanceled = true
	event.UpdatedByID = &canceledBy
	if err := s.events.Update(ctx, event); err != nil {
		return fmt.Errorf("cancel event: %w", err)
	}
	return nil
}
