package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"regadmin/internal/errors"
	"regadmin/internal/model"
)

func validEventInput() EventInput {
	day := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)
	return EventInput{
		Title:    "Open house",
		DateFrom: day,
		DateTo:   day.AddDate(0, 0, 1),
		TimeFrom: "09:00",
		TimeTo:   "17:30",
	}
}

func TestEventCreate_Valid(t *testing.T) {
	repo := new(MockEventRepository)
	svc := NewEventService(repo)

	actor := uuid.New()
	repo.On("Create", mock.Anything, mock.MatchedBy(func(e *model.Event) bool {
		return e.Title == "Open house" && e.CreatedByID == actor && !e.IsCanceled
	})).Return(nil)
	repo.On("FindByID", mock.Anything, mock.Anything).Return(&model.Event{Title: "Open house"}, nil)

	_, err := svc.Create(context.Background(), validEventInput(), actor)
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestEventCreate_ScheduleValidation(t *testing.T) {
	svc := NewEventService(new(MockEventRepository))

	tests := []struct {
		name   string
		mutate func(*EventInput)
	}{
		{"dateTo before dateFrom", func(in *EventInput) {
			in.DateTo = in.DateFrom.AddDate(0, 0, -1)
		}},
		{"malformed timeFrom", func(in *EventInput) {
			in.TimeFrom = "9am"
		}},
		{"malformed timeTo", func(in *EventInput) {
			in.TimeTo = "25:99"
		}},
		{"timeFrom equal to timeTo", func(in *EventInput) {
			in.TimeTo = in.TimeFrom
		}},
		{"timeFrom after timeTo", func(in *EventInput) {
			in.TimeFrom = "18:00"
			in.TimeTo = "09:00"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validEventInput()
			tt.mutate(&in)
			_, err := svc.Create(context.Background(), in, uuid.New())
			assert.ErrorIs(t, err, errors.ErrValidation)
		})
	}
}

func TestEventCancel_KeepsRow(t *testing.T) {
	repo := new(MockEventRepository)
	svc := NewEventService(repo)

	id := uuid.New()
	actor := uuid.New()
	repo.On("FindByID", mock.Anything, id).Return(&model.Event{ID: id, Title: "Open house"}, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(e *model.Event) bool {
		return e.IsCanceled && e.UpdatedByID != nil && *e.UpdatedByID == actor
	})).Return(nil)

	err := svc.Cancel(context.Background(), id, actor)
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}
