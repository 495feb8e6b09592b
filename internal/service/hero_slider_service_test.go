package service

import (
	"context"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"regadmin/internal/errors"
	"regadmin/internal/model"
)

func pngUpload(name string) Upload {
	return Upload{
		OriginalName: name,
		MimeType:     "image/png",
		Size:         128,
		Body:         strings.NewReader("fake-png"),
	}
}

func TestHeroSliderCreate_StoresObjectAndRow(t *testing.T) {
	repo := new(MockHeroSliderRepository)
	store := new(MockObjectStore)
	svc := NewHeroSliderService(repo, store)

	store.On("Put", mock.Anything, mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "hero-slider/")
	}), mock.Anything, "image/png").Return(nil)
	store.On("Bucket").Return("registry-files")
	repo.On("Create", mock.Anything, mock.MatchedBy(func(s *model.HeroSlider) bool {
		return s.Title == "Welcome" && s.Image.Bucket == "registry-files" && s.Image.Path != ""
	})).Return(nil)
	repo.On("FindByID", mock.Anything, mock.Anything).Return(&model.HeroSlider{Title: "Welcome"}, nil)

	_, err := svc.Create(context.Background(), HeroSliderInput{Title: "Welcome"}, pngUpload("banner.png"), uuid.New())
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestHeroSliderCreate_RejectsBadUpload(t *testing.T) {
	store := new(MockObjectStore)
	svc := NewHeroSliderService(new(MockHeroSliderRepository), store)

	bad := pngUpload("banner.gif")
	bad.MimeType = "image/gif"

	_, err := svc.Create(context.Background(), HeroSliderInput{Title: "Welcome"}, bad, uuid.New())
	assert.ErrorIs(t, err, errors.ErrValidation)
	store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHeroSliderDelete_ObjectFirst(t *testing.T) {
	repo := new(MockHeroSliderRepository)
	store := new(MockObjectStore)
	svc := NewHeroSliderService(repo, store)

	id := uuid.New()
	repo.On("FindByID", mock.Anything, id).Return(&model.HeroSlider{
		ID:    id,
		Image: model.ImageMeta{Path: "hero-slider/123-banner.png"},
	}, nil)
	store.On("Delete", mock.Anything, "hero-slider/123-banner.png").Return(nil)
	repo.On("Delete", mock.Anything, id).Return(nil)

	err := svc.Delete(context.Background(), id)
	assert.NoError(t, err)
	repo.AssertExpectations(t)
	store.AssertExpectations(t)
}

func TestHeroSliderDelete_KeepsRowWhenObjectRemovalFails(t *testing.T) {
	repo := new(MockHeroSliderRepository)
	store := new(MockObjectStore)
	svc := NewHeroSliderService(repo, store)

	id := uuid.New()
	repo.On("FindByID", mock.Anything, id).Return(&model.HeroSlider{
		ID:    id,
		Image: model.ImageMeta{Path: "hero-slider/123-banner.png"},
	}, nil)
	store.On("Delete", mock.Anything, "hero-slider/123-banner.png").
		Return(stderrors.New("connection refused"))

	err := svc.Delete(context.Background(), id)
	assert.ErrorIs(t, err, errors.ErrPartialDelete)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
