package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"regadmin/internal/errors"
	"regadmin/internal/model"
	"regadmin/internal/query"
	"regadmin/internal/repository"
)

// RoleInput is the create/update payload for a role.
type RoleInput struct {
	Name        string
	Description string
	IsActive    *bool
	ActionIDs   []uuid.UUID
}

// RoleService manages roles and their action grants.
type RoleService interface {
	Create(ctx context.Context, in RoleInput) (*model.Role, error)
	List(ctx context.Context, search string, opts query.Options) ([]model.Role, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Role, error)
	Update(ctx context.Context, id uuid.UUID, in RoleInput) (*model.Role, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type roleService struct {
	roles   repository.RoleRepository
	actions repository.ActionRepository
}

// NewRoleService creates the role service.
func NewRoleService(roles repository.RoleRepository, actions repository.ActionRepository) RoleService {
	return &roleService{roles: roles, actions: actions}
}

func (s *roleService) Create(ctx context.Context, in RoleInput) (*model.Role, error) {
	if _, err := s.roles.FindByName(ctx, in.Name); err == nil {
		return nil, errors.ErrDuplicateName
	} else if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check role name: %w", err)
	}

	var actions []model.Action
	var err error
	if len(in.ActionIDs) > 0 {
		actions, err = s.actions.FindByIDs(ctx, in.ActionIDs)
		if err != nil {
			return nil, fmt.Errorf("load actions: %w", err)
		}
	}

	role := &model.Role{
		Name:        in.Name,
		Description: in.Description,
		IsActive:    true,
		Actions:     actions,
	}
	if in.IsActive != nil {
		role.IsActive = *in.IsActive
	}
	if err := s.roles.Create(ctx, role); err != nil {
		return nil, fmt.Errorf("create role: %w", err)
	}
	return role, nil
}

func (s *roleService) List(ctx context.Context, search string, opts query.Options) ([]model.Role, int64, error) {
	f := query.Filter{}.WithTextSearch([]string{"name", "description"}, search)
	return s.roles.List(ctx, f, opts)
}

func (s *roleService) GetByID(ctx context.Context, id uuid.UUID) (*model.Role, error) {
	role, err := s.roles.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrNotFound
		}
		return nil, err
	}
	return role, nil
}

func (s *roleService) Update(ctx context.Context, id uuid.UUID, in RoleInput) (*model.Role, error) {
	role, err := s.roles.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrNotFound
		}
		return nil, err
	}

	if in.Name != "" && in.Name != role.Name {
		if _, err := s.roles.FindByName(ctx, in.Name); err == nil {
			return nil, errors.ErrDuplicateName
		} else if err != gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("check role name: %w", err)
		}
		role.Name = in.Name
	}
	if in.Description != "" {
		role.Description = in.Description
	}
	if in.IsActive != nil {
		role.IsActive = *in.IsActive
	}
	if err := s.roles.Update(ctx, role); err != nil {
		return nil, fmt.Errorf("update role: %w", err)
	}

	if in.ActionIDs != nil {
		actions, err := s.actions.FindByIDs(ctx, in.ActionIDs)
		if err != nil {
			return nil, fmt.Errorf("load actions: %w", err)
		}
		if err := s.roles.ReplaceActions(ctx, role, actions); err != nil {
			return nil, fmt.Errorf("replace actions: %w", err)
		}
	}

	return s.roles.FindByID(ctx, id)
}

func (s *roleService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.roles.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrNotFound
		}
		return err
	}
	return nil
}
