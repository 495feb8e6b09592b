package service

import (
	"context"
	"fmt"
	"regexp"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"regadmin/internal/errors"
	"regadmin/internal/model"
	"regadmin/internal/query"
	"regadmin/internal/repository"
)

// Action names are snake-ish identifiers, letters and underscores only.
var actionNamePattern = regexp.MustCompile(`^[A-Za-z_]+$`)

// ActionInput is the create/update payload for a permission action.
type ActionInput struct {
	Name        string
	Description string
	IsActive    *bool
}

// ActionService manages permission actions.
type ActionService interface {
	Create(ctx context.Context, in ActionInput) (*model.Action, error)
	List(ctx context.Context, search string, opts query.Options) ([]model.Action, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Action, error)
	Update(ctx context.Context, id uuid.UUID, in ActionInput) (*model.Action, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type actionService struct {
	actions repository.ActionRepository
}

// NewActionService creates the action service.
func NewActionService(actions repository.ActionRepository) ActionService {
	return &actionService{actions: actions}
}

func (s *actionService) Create(ctx context.Context, in ActionInput) (*model.Action, error) {
	if !actionNamePattern.MatchString(in.Name) {
		return nil, fmt.Errorf("%w: action name must contain only letters and underscores", errors.ErrValidation)
	}
	if _, err := s.actions.FindByName(ctx, in.Name); err == nil {
		return nil, errors.ErrDuplicateName
	} else if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check action name: %w", err)
	}

	action := &model.Action{
		Name:        in.Name,
		Description: in.Description,
		IsActive:    true,
	}
	if in.IsActive != nil {
		action.IsActive = *in.IsActive
	}
	if err := s.actions.Create(ctx, action); err != nil {
		return nil, fmt.Errorf("create action: %w", err)
	}
	return action, nil
}

func (s *actionService) List(ctx context.Context, search string, opts query.Options) ([]model.Action, int64, error) {
	f := query.Filter{}.WithTextSearch([]string{"name", "description"}, search)
	return s.actions.List(ctx, f, opts)
}

func (s *actionService) GetByID(ctx context.Context, id uuid.UUID) (*model.Action, error) {
	action, err := s.actions.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrNotFound
		}
		return nil, err
	}
	return action, nil
}

func (s *actionService) Update(ctx context.Context, id uuid.UUID, in ActionInput) (*model.Action, error) {
	action, err := s.actions.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrNotFound
		}
		return nil, err
	}

	if in.Name != "" && in.Name != action.Name {
		if !actionNamePattern.MatchString(in.Name) {
			return nil, fmt.Errorf("%w: action name must contain only letters and underscores", errors.ErrValidation)
		}
		if _, err := s.actions.FindByName(ctx, in.Name); err == nil {
			return nil, errors.ErrDuplicateName
		} else if err != gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("check action name: %w", err)
		}
		action.Name = in.Name
	}
	if in.Description != "" {
		action.Description = in.Description
	}
	if in.IsActive != nil {
		action.IsActive = *in.IsActive
	}
	if err := s.actions.Update(ctx, action); err != nil {
		return nil, fmt.Errorf("update action: %w", err)
	}
	return action, nil
}

func (s *actionService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.actions.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrNotFound
		}
		return err
	}
	return nil
}
