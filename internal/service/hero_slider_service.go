package service

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"regadmin/internal/errors"
	"regadmin/internal/model"
	"regadmin/internal/query"
	"regadmin/internal/repository"
	"regadmin/internal/storage"
)

const heroFolder = "hero-slider"

// HeroSliderInput is the create payload for a slide, minus the image file.
type HeroSliderInput struct {
	Title    string
	Subtitle string
	Link     string
	Sort     *int
}

// HeroSliderService manages landing-page slides and their image attachments.
type HeroSliderService interface {
	Create(ctx context.Context, in HeroSliderInput, image Upload, createdBy uuid.UUID) (*model.HeroSlider, error)
	List(ctx context.Context, isActive *bool, opts query.Options) ([]model.HeroSlider, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.HeroSlider, error)
	Delete(ctx context.Context, id uuid.UUID) error
	OpenImage(ctx context.Context, id uuid.UUID) (io.ReadCloser, string, error)
}

type heroSliderService struct {
	sliders repository.HeroSliderRepository
	store   storage.ObjectStore
}

// NewHeroSliderService creates the hero-slider service.
func NewHeroSliderService(sliders repository.HeroSliderRepository, store storage.ObjectStore) HeroSliderService {
	return &heroSliderService{sliders: sliders, store: store}
}

func (s *heroSliderService) Create(ctx context.Context, in HeroSliderInput, image Upload, createdBy uuid.UUID) (*model.HeroSlider, error) {
	if err := validateUpload(image); err != nil {
		return nil, err
	}

	key := storage.ObjectKey(heroFolder, image.OriginalName)
	if err := s.store.Put(ctx, key, image.Body, image.MimeType); err != nil {
		return nil, fmt.Errorf("store slide image: %w", err)
	}

	slider := &model.HeroSlider{
		Title:       in.Title,
		Subtitle:    in.Subtitle,
		Link:        in.Link,
		Sort:        1,
		IsActive:    true,
		CreatedByID: createdBy,
		Image: model.ImageMeta{
			Filename:     path.Base(key),
			OriginalName: image.OriginalName,
			Path:         key,
			MimeType:     image.MimeType,
			Encoding:     image.Encoding,
			Bucket:       s.store.Bucket(),
		},
	}
	if in.Sort != nil {
		slider.Sort = *in.Sort
	}
	if err := s.sliders.Create(ctx, slider); err != nil {
		return nil, fmt.Errorf("create slide: %w", err)
	}
	return s.sliders.FindByID(ctx, slider.ID)
}

func (s *heroSliderService) List(ctx context.Context, isActive *bool, opts query.Options) ([]model.HeroSlider, int64, error) {
	f := query.Filter{}
	if isActive != nil {
		f = f.WithBool("is_active", *isActive)
	}
	return s.sliders.List(ctx, f, opts)
}

func (s *heroSliderService) GetByID(ctx context.Context, id uuid.UUID) (*model.HeroSlider, error) {
	slider, err := s.sliders.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrNotFound
		}
		return nil, err
	}
	return slider, nil
}

// Delete removes the stored object first; the row is only deleted once the
// object is gone.
func (s *heroSliderService) Delete(ctx context.Context, id uuid.UUID) error {
	slider, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if slider.Image.Path != "" {
		if err := s.store.Delete(ctx, slider.Image.Path); err != nil {
			return fmt.Errorf("%w: %v", errors.ErrPartialDelete, err)
		}
	}
	if err := s.sliders.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrNotFound
		}
		return err
	}
	return nil
}

// OpenImage streams the slide image. The caller owns the returned reader.
func (s *heroSliderService) OpenImage(ctx context.Context, id uuid.UUID) (io.ReadCloser, string, error) {
	slider, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if slider.Image.Path == "" {
		return nil, "", errors.ErrNotFound
	}
	body, contentType, err := s.store.Get(ctx, slider.Image.Path)
	if err != nil {
		return nil, "", fmt.Errorf("open slide image: %w", err)
	}
	if contentType == "" {
		contentType = slider.Image.MimeType
	}
	return body, contentType, nil
}
