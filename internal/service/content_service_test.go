package service

import (
	"context"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"regadmin/internal/errors"
	"regadmin/internal/model"
)

func contentWithImages(id uuid.UUID, paths ...string) *model.Content {
	detail := model.ContentDetail{ID: uuid.New(), Statement: "About us"}
	for _, p := range paths {
		detail.Images = append(detail.Images, model.ContentImage{
			ID:        uuid.New(),
			ImageMeta: model.ImageMeta{Path: p, MimeType: "image/png"},
		})
	}
	return &model.Content{
		ID:      id,
		Title:   "About",
		Details: []model.ContentDetail{detail},
	}
}

func TestContentCreate_RequiresDetail(t *testing.T) {
	svc := NewContentService(new(MockContentRepository), new(MockObjectStore))

	_, err := svc.Create(context.Background(), ContentInput{Title: "Empty"}, nil, uuid.New())
	assert.ErrorIs(t, err, errors.ErrValidation)
}

func TestContentCreate_DuplicateTitle(t *testing.T) {
	repo := new(MockContentRepository)
	svc := NewContentService(repo, new(MockObjectStore))

	repo.On("FindByTitle", mock.Anything, "About").Return(&model.Content{Title: "About"}, nil)

	_, err := svc.Create(context.Background(), ContentInput{
		Title:   "About",
		Details: []ContentDetailInput{{Statement: "hello"}},
	}, nil, uuid.New())
	assert.ErrorIs(t, err, errors.ErrDuplicateName)
}

func TestContentCreate_RejectsOversizedUpload(t *testing.T) {
	repo := new(MockContentRepository)
	store := new(MockObjectStore)
	svc := NewContentService(repo, store)

	repo.On("FindByTitle", mock.Anything, "About").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Create(context.Background(), ContentInput{
		Title:   "About",
		Details: []ContentDetailInput{{Statement: "hello"}},
	}, []Upload{{
		OriginalName: "big.png",
		MimeType:     "image/png",
		Size:         MaxUploadSize + 1,
		Body:         strings.NewReader("x"),
	}}, uuid.New())

	assert.ErrorIs(t, err, errors.ErrValidation)
	store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestContentCreate_RejectsUnsupportedType(t *testing.T) {
	repo := new(MockContentRepository)
	svc := NewContentService(repo, new(MockObjectStore))

	repo.On("FindByTitle", mock.Anything, "About").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Create(context.Background(), ContentInput{
		Title:   "About",
		Details: []ContentDetailInput{{Statement: "hello"}},
	}, []Upload{{
		OriginalName: "doc.pdf",
		MimeType:     "application/pdf",
		Size:         100,
		Body:         strings.NewReader("x"),
	}}, uuid.New())

	assert.ErrorIs(t, err, errors.ErrValidation)
}

func TestContentDelete_RemovesAttachmentsBeforeRow(t *testing.T) {
	repo := new(MockContentRepository)
	store := new(MockObjectStore)
	svc := NewContentService(repo, store)

	id := uuid.New()
	actor := uuid.New()
	content := contentWithImages(id, "content/a.png", "content/b.png")

	repo.On("FindByID", mock.Anything, id).Return(content, nil)
	store.On("Delete", mock.Anything, "content/a.png").Return(nil)
	store.On("Delete", mock.Anything, "content/b.png").Return(nil)
	repo.On("MarkDeleted", mock.Anything, id, actor).Return(nil)

	err := svc.Delete(context.Background(), id, actor)

	assert.NoError(t, err)
	store.AssertNumberOfCalls(t, "Delete", 2)
	repo.AssertCalled(t, "MarkDeleted", mock.Anything, id, actor)
}

func TestContentDelete_AbortsWhenObjectRemovalFails(t *testing.T) {
	repo := new(MockContentRepository)
	store := new(MockObjectStore)
	svc := NewContentService(repo, store)

	id := uuid.New()
	content := contentWithImages(id, "content/a.png", "content/b.png")

	repo.On("FindByID", mock.Anything, id).Return(content, nil)
	store.On("Delete", mock.Anything, "content/a.png").Return(nil)
	store.On("Delete", mock.Anything, "content/b.png").Return(stderrors.New("connection reset"))

	err := svc.Delete(context.Background(), id, uuid.New())

	assert.ErrorIs(t, err, errors.ErrPartialDelete)
	repo.AssertNotCalled(t, "MarkDeleted", mock.Anything, mock.Anything, mock.Anything)
}

func TestContentGet_HidesDeleted(t *testing.T) {
	repo := new(MockContentRepository)
	svc := NewContentService(repo, new(MockObjectStore))

	id := uuid.New()
	repo.On("FindByID", mock.Anything, id).Return(&model.Content{ID: id, Deleted: true}, nil)

	_, err := svc.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, errors.ErrNotFound)
}

func TestContentOpenImage_UnknownImage(t *testing.T) {
	repo := new(MockContentRepository)
	svc := NewContentService(repo, new(MockObjectStore))

	id := uuid.New()
	repo.On("FindByID", mock.Anything, id).Return(contentWithImages(id, "content/a.png"), nil)

	_, _, err := svc.OpenImage(context.Background(), id, uuid.New(), uuid.New())
	assert.ErrorIs(t, err, errors.ErrNotFound)
}
