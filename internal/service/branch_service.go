package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"regadmin/internal/cache"
	"regadmin/internal/errors"
	"regadmin/internal/model"
	"regadmin/internal/repository"
)

const (
	activeBranchesKey = "branches:active"
	branchCacheTTL    = 5 * time.Minute
)

// BranchInput is the create/update payload for a branch office.
type BranchInput struct {
	Name      string
	Address   string
	City      string
	Phone     string
	ManagerID *uuid.UUID
	IsActive  *bool
}

// BranchService manages branch offices. The active list is served through
// the cache; writes invalidate it.
type BranchService interface {
	Create(ctx context.Context, in BranchInput) (*model.Branch, error)
	ListActive(ctx context.Context) ([]model.Branch, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Branch, error)
	Update(ctx context.Context, id uuid.UUID, in BranchInput) (*model.Branch, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type branchService struct {
	branches repository.BranchRepository
	cache    *cache.Client
	log      *zap.Logger
}

// NewBranchService creates the branch service.
func NewBranchService(branches repository.BranchRepository, c *cache.Client, log *zap.Logger) BranchService {
	return &branchService{branches: branches, cache: c, log: log}
}

func (s *branchService) Create(ctx context.Context, in BranchInput) (*model.Branch, error) {
	if _, err := s.branches.FindByName(ctx, in.Name); err == nil {
		return nil, errors.ErrDuplicateName
	} else if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check branch name: %w", err)
	}

	branch := &model.Branch{
		Name:      in.Name,
		Address:   in.Address,
		City:      in.City,
		Phone:     in.Phone,
		ManagerID: in.ManagerID,
		IsActive:  true,
	}
	if in.IsActive != nil {
		branch.IsActive = *in.IsActive
	}
	if err := s.branches.Create(ctx, branch); err != nil {
		return nil, fmt.Errorf("create branch: %w", err)
	}
	s.cache.Delete(ctx, activeBranchesKey)
	return branch, nil
}

func (s *branchService) ListActive(ctx context.Context) ([]model.Branch, error) {
	if raw, _ := s.cache.Get(ctx, activeBranchesKey); len(raw) > 0 {
		var cached []model.Branch
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
		s.log.Warn("discarding unreadable branch cache entry")
	}

	branches, err := s.branches.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list branches: %w", err)
	}
	if raw, err := json.Marshal(branches); err == nil {
		_ = s.cache.Set(ctx, activeBranchesKey, raw, branchCacheTTL)
	}
	return branches, nil
}

func (s *branchService) GetByID(ctx context.Context, id uuid.UUID) (*model.Branch, error) {
	branch, err := s.branches.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrNotFound
		}
		return nil, err
	}
	return branch, nil
}

func (s *branchService) Update(ctx context.Context, id uuid.UUID, in BranchInput) (*model.Branch, error) {
	branch, err := s.branches.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrNotFound
		}
		return nil, err
	}

	if in.Name != "" && in.Name != branch.Name {
		if _, err := s.branches.FindByName(ctx, in.Name); err == nil {
			return nil, errors.ErrDuplicateName
		} else if err != gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("check branch name: %w", err)
		}
		branch.Name = in.Name
	}
	if in.Address != "" {
		branch.Address = in.Address
	}
	if in.City != "" {
		branch.City = in.City
	}
	if in.Phone != "" {
		branch.Phone = in.Phone
	}
	if in.ManagerID != nil {
		branch.ManagerID = in.ManagerID
	}
	if in.IsActive != nil {
		branch.IsActive = *in.IsActive
	}
	if err := s.branches.Update(ctx, branch); err != nil {
		return nil, fmt.Errorf("update branch: %w", err)
	}
	s.cache.Delete(ctx, activeBranchesKey)
	return branch, nil
}

// Deactivate soft-deletes a branch by clearing its active flag.
func (s *branchService) Deactivate(ctx context.Context, id uuid.UUID) error {
	branch, err := s.branches.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrNotFound
		}
		return err
	}
	branch.IsActive = false
	if err := s.branches.Update(ctx, branch); err != nil {
		return fmt.Errorf("deactivate branch: %w", err)
	}
	s.cache.Delete(ctx, activeBranchesKey)
	return nil
}
