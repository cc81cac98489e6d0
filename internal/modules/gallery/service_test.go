package gallery

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"photosite/internal/domain"
)

type MockCollectionStore struct {
	mock.Mock
}

func (m *MockCollectionStore) Create(ctx context.Context, c *domain.Collection) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCollectionStore) All(ctx context.Context) ([]domain.Collection, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Collection), args.Error(1)
}

func (m *MockCollectionStore) GetBySlug(ctx context.Context, slug string) (*domain.Collection, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Collection), args.Error(1)
}

func (m *MockCollectionStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestCreate_Validation(t *testing.T) {
	svc := NewService(new(MockCollectionStore))

	_, err := svc.Create(context.Background(), CreateCollectionRequest{Title: "Weddings"})
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.Create(context.Background(), CreateCollectionRequest{Slug: "Bad Slug!", Title: "Weddings"})
	assert.ErrorIs(t, err, ErrBadSlug)
}

func TestCreate_NormalizesImages(t *testing.T) {
	store := new(MockCollectionStore)
	svc := NewService(store)

	store.On("Create", mock.Anything, mock.Anything).Return(nil)

	c, err := svc.Create(context.Background(), CreateCollectionRequest{
		Slug:  "weddings",
		Title: "Weddings",
		Images: []CollectionImageIn{
			{URL: "https://img/1.jpg", Alt: "first"},
			{URL: "   "},
			{URL: "https://img/2.jpg"},
		},
	})

	require.NoError(t, err)
	require.Len(t, c.Images, 2)
	assert.Equal(t, 0, c.Images[0].Position)
	assert.Equal(t, 2, c.Images[1].Position)
}

func TestGetBySlug_NotFound(t *testing.T) {
	store := new(MockCollectionStore)
	svc := NewService(store)

	store.On("GetBySlug", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetBySlug(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete_NotFound(t *testing.T) {
	store := new(MockCollectionStore)
	svc := NewService(store)

	store.On("Delete", mock.Anything, int64(99)).Return(gorm.ErrRecordNotFound)

	err := svc.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}
