package gallery

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"gorm.io/gorm"

	"photosite/internal/domain"
)

var (
	ErrMissingFields = errors.New("slug and title are required")
	ErrBadSlug       = errors.New("slug may contain lowercase letters, digits and hyphens only")
	ErrNotFound      = errors.New("collection not found")
	ErrSlugTaken     = errors.New("a collection with this slug already exists")
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// CollectionStore owns gallery collections and their images.
type CollectionStore interface {
	Create(ctx context.Context, c *domain.Collection) error
	All(ctx context.Context) ([]domain.Collection, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Collection, error)
	Delete(ctx context.Context, id int64) error
}

type Service struct {
	store CollectionStore
}

func NewService(store CollectionStore) *Service {
	return &Service{store: store}
}

func (s *Service) List(ctx context.Context) ([]domain.Collection, error) {
	return s.store.All(ctx)
}

func (s *Service) GetBySlug(ctx context.Context, slug string) (*domain.Collection, error) {
	c, err := s.store.GetBySlug(ctx, slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return c, err
}

func (s *Service) Create(ctx context.Context, req CreateCollectionRequest) (*domain.Collection, error) {
	slug := strings.ToLower(strings.TrimSpace(req.Slug))
	title := strings.TrimSpace(req.Title)

	if slug == "" || title == "" {
		return nil, ErrMissingFields
	}
	if !slugPattern.MatchString(slug) {
		return nil, ErrBadSlug
	}

	c := &domain.Collection{
		Slug:        slug,
		Title:       title,
		Description: strings.TrimSpace(req.Description),
		CoverURL:    strings.TrimSpace(req.CoverURL),
	}
	for i, img := range req.Images {
		url := strings.TrimSpace(img.URL)
		if url == "" {
			continue
		}
		c.Images = append(c.Images, domain.CollectionImage{
			URL:      url,
			Alt:      strings.TrimSpace(img.Alt),
			Position: i,
		})
	}

	if err := s.store.Create(ctx, c); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.store.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
