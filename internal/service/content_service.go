package service

import (
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"regadmin/internal/errors"
	"regadmin/internal/model"
	"regadmin/internal/query"
	"regadmin/internal/repository"
	"regadmin/internal/storage"
)

const contentFolder = "content"

// ContentDetailInput is one block of a content payload.
type ContentDetailInput struct {
	Statement string
	List      []string
}

// ContentInput is the create/update payload of a content page, decoded from
// the multipart data field. Images arrive separately as Uploads.
type ContentInput struct {
	Title       string
	Description string
	Sort        *int
	Details     []ContentDetailInput
}

// ContentListParams are the recognized list filters for content pages.
type ContentListParams struct {
	Search    string
	StartDate *time.Time
	EndDate   *time.Time
	Options   query.Options
}

// ContentService manages content pages and their image attachments.
type ContentService interface {
	Create(ctx context.Context, in ContentInput, uploads []Upload, createdBy uuid.UUID) (*model.Content, error)
	List(ctx context.Context, p ContentListParams) ([]model.Content, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Content, error)
	Update(ctx context.Context, id uuid.UUID, in ContentInput, uploads []Upload, updatedBy uuid.UUID) (*model.Content, error)
	Delete(ctx context.Context, id uuid.UUID, deletedBy uuid.UUID) error
	OpenImage(ctx context.Context, contentID, detailID, imageID uuid.UUID) (io.ReadCloser, string, error)
}

type contentService struct {
	contents repository.ContentRepository
	store    storage.ObjectStore
}

// NewContentService creates the content service.
func NewContentService(contents repository.ContentRepository, store storage.ObjectStore) ContentService {
	return &contentService{contents: contents, store: store}
}

// storeUploads validates and uploads each file, returning per-detail images.
// Uploads with an out-of-range detail index land on the first block.
func (s *contentService) storeUploads(ctx context.Context, uploads []Upload, detailCount int) (map[int][]model.ContentImage, error) {
	byDetail := make(map[int][]model.ContentImage)
	for _, u := range uploads {
		if err := validateUpload(u); err != nil {
			return nil, err
		}
		key := storage.ObjectKey(contentFolder, u.OriginalName)
		if err := s.store.Put(ctx, key, u.Body, u.MimeType); err != nil {
			return nil, fmt.Errorf("store upload %q: %w", u.OriginalName, err)
		}
		idx := u.DetailIndex
		if idx < 0 || idx >= detailCount {
			idx = 0
		}
		byDetail[idx] = append(byDetail[idx], model.ContentImage{
			ImageMeta: model.ImageMeta{
				Filename:     path.Base(key),
				OriginalName: u.OriginalName,
				Path:         key,
				MimeType:     u.MimeType,
				Encoding:     u.Encoding,
				Bucket:       s.store.Bucket(),
			},
		})
	}
	return byDetail, nil
}

func (s *contentService) Create(ctx context.Context, in ContentInput, uploads []Upload, createdBy uuid.UUID) (*model.Content, error) {
	if len(in.Details) == 0 {
		return nil, fmt.Errorf("%w: content requires at least one detail block", errors.ErrValidation)
	}
	if _, err := s.contents.FindByTitle(ctx, in.Title); err == nil {
		return nil, errors.ErrDuplicateName
	} else if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check content title: %w", err)
	}

	byDetail, err := s.storeUploads(ctx, uploads, len(in.Details))
	if err != nil {
		return nil, err
	}

	content := &model.Content{
		Title:       in.Title,
		Description: in.Description,
		CreatedByID: createdBy,
	}
	if in.Sort != nil {
		content.Sort = *in.Sort
	} else {
		content.Sort = 1
	}
	for i, d := range in.Details {
		content.Details = append(content.Details, model.ContentDetail{
			Statement: d.Statement,
			List:      d.List,
			Images:    byDetail[i],
		})
	}

	if err := s.contents.Create(ctx, content); err != nil {
		return nil, fmt.Errorf("create content: %w", err)
	}
	return s.contents.FindByID(ctx, content.ID)
}

func (s *contentService) List(ctx context.Context, p ContentListParams) ([]model.Content, int64, error) {
	f := query.Filter{}.
		WithBool("deleted", false).
		WithTextSearch([]string{"title", "description"}, p.Search).
		WithDateRange("created_at", p.StartDate, p.EndDate)

	return s.contents.List(ctx, f, p.Options)
}

func (s *contentService) GetByID(ctx context.Context, id uuid.UUID) (*model.Content, error) {
	content, err := s.contents.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrNotFound
		}
		return nil, err
	}
	if content.Deleted {
		return nil, errors.ErrNotFound
	}
	return content, nil
}

// Update rewrites title, description and sort. When in.Details is present it
// replaces the detail blocks wholesale; new uploads attach to the new blocks.
func (s *contentService) Update(ctx context.Context, id uuid.UUID, in ContentInput, uploads []Upload, updatedBy uuid.UUID) (*model.Content, error) {
	content, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != "" && in.Title != content.Title {
		if _, err := s.contents.FindByTitle(ctx, in.Title); err == nil {
			return nil, errors.ErrDuplicateName
		} else if err != gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("check content title: %w", err)
		}
		content.Title = in.Title
	}
	if in.Description != "" {
		content.Description = in.Description
	}
	if in.Sort != nil {
		content.Sort = *in.Sort
	}
	content.UpdatedByID = &updatedBy

	if in.Details != nil {
		byDetail, err := s.storeUploads(ctx, uploads, len(in.Details))
		if err != nil {
			return nil, err
		}
		details := make([]model.ContentDetail, 0, len(in.Details))
		for i, d := range in.Details {
			details = append(details, model.ContentDetail{
				ContentID: content.ID,
				Statement: d.Statement,
				List:      d.List,
				Images:    byDetail[i],
			})
		}
		content.Details = details
	}

	if err := s.contents.Update(ctx, content); err != nil {
		return nil, fmt.Errorf("update content: %w", err)
	}
	return s.contents.FindByID(ctx, id)
}

// Delete removes every attachment from the object store first, then flags
// the row. If any object removal fails the row stays untouched and the
// caller gets a partial-delete error.
func (s *contentService) Delete(ctx context.Context, id uuid.UUID, deletedBy uuid.UUID) error {
	content, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, detail := range content.Details {
		for _, img := range detail.Images {
			key := img.Path
			g.Go(func() error {
				return s.store.Delete(gctx, key)
			})
		}
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrPartialDelete, err)
	}

	if err := s.contents.MarkDeleted(ctx, id, deletedBy); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrNotFound
		}
		return fmt.Errorf("mark content deleted: %w", err)
	}
	return nil
}

// OpenImage streams one attachment. The caller owns the returned reader.
func (s *contentService) OpenImage(ctx context.Context, contentID, detailID, imageID uuid.UUID) (io.ReadCloser, string, error) {
	content, err := s.GetByID(ctx, contentID)
	if err != nil {
		return nil, "", err
	}
	for _, detail := range content.Details {
		if detail.ID != detailID {
			continue
		}
		for _, img := range detail.Images {
			if img.ID != imageID {
				continue
			}
			body, contentType, err := s.store.Get(ctx, img.Path)
			if err != nil {
				return nil, "", fmt.Errorf("open image: %w", err)
			}
			if contentType == "" {
				contentType = img.MimeType
			}
			return body, contentType, nil
		}
	}
	return nil, "", errors.ErrNotFound
}
