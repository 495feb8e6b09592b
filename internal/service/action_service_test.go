package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"regadmin/internal/errors"
	"regadmin/internal/model"
)

func TestActionCreate_NamePattern(t *testing.T) {
	repo := new(MockActionRepository)
	svc := NewActionService(repo)

	repo.On("FindByName", mock.Anything, mock.Anything).Return(nil, gorm.ErrRecordNotFound)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	valid := []string{"manage_users", "ManageRoles", "a", "_internal_"}
	for _, name := range valid {
		_, err := svc.Create(context.Background(), ActionInput{Name: name})
		assert.NoError(t, err, name)
	}

	invalid := []string{"", "manage-users", "manage users", "users2", "drop;table"}
	for _, name := range invalid {
		_, err := svc.Create(context.Background(), ActionInput{Name: name})
		assert.ErrorIs(t, err, errors.ErrValidation, name)
	}
}

func TestActionCreate_DuplicateName(t *testing.T) {
	repo := new(MockActionRepository)
	svc := NewActionService(repo)

	repo.On("FindByName", mock.Anything, "manage_users").
		Return(&model.Action{Name: "manage_users"}, nil)

	_, err := svc.Create(context.Background(), ActionInput{Name: "manage_users"})
	assert.ErrorIs(t, err, errors.ErrDuplicateName)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestActionDelete_Hard(t *testing.T) {
	repo := new(MockActionRepository)
	svc := NewActionService(repo)

	id := uuid.New()
	repo.On("Delete", mock.Anything, id).Return(gorm.ErrRecordNotFound)

	err := svc.Delete(context.Background(), id)
	assert.ErrorIs(t, err, errors.ErrNotFound)
}
