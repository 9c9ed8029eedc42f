// Package service applies the catalog rules on top of the store: ids must be
// positive and a missing row becomes a NotFound naming the resource.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"museum/internal/catalog/models"
	dErrors "museum/pkg/domain-errors"
	"museum/pkg/platform/sentinel"
	"museum/pkg/requestcontext"
)

type ProductStore interface {
	ListProducts(ctx context.Context) ([]*models.Product, error)
	CreateProduct(ctx context.Context, p *models.Product) (*models.Product, error)
	GetProduct(ctx context.Context, id int64) (*models.Product, error)
	UpdateProduct(ctx context.Context, id int64, p *models.Product) (*models.Product, error)
	DeleteProduct(ctx context.Context, id int64) (*models.Product, error)
}

type ArtworkStore interface {
	ListArtworks(ctx context.Context) ([]*models.Artwork, error)
	CreateArtwork(ctx context.Context, a *models.Artwork) (*models.Artwork, error)
	GetArtwork(ctx context.Context, id int64) (*models.Artwork, error)
	UpdateArtwork(ctx context.Context, id int64, a *models.Artwork) (*models.Artwork, error)
	DeleteArtwork(ctx context.Context, id int64) (*models.Artwork, error)
}

type ExhibitionStore interface {
	ListExhibitions(ctx context.Context) ([]*models.Exhibition, error)
	CreateExhibition(ctx context.Context, e *models.Exhibition) (*models.Exhibition, error)
	GetExhibition(ctx context.Context, id int64) (*models.Exhibition, error)
	UpdateExhibition(ctx context.Context, id int64, e *models.Exhibition) (*models.Exhibition, error)
	DeleteExhibition(ctx context.Context, id int64) (*models.Exhibition, error)
}

// Store is implemented by the catalog PostgresStore.
type Store interface {
	ProductStore
	ArtworkStore
	ExhibitionStore
}

type Service struct {
	store  Store
	logger *slog.Logger
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func New(store Store, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, errors.New("catalog store is required")
	}
	s := &Service{store: store, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Service) ListProducts(ctx context.Context) ([]*models.Product, error) {
	products, err := s.store.ListProducts(ctx)
	return products, internal(err, "list products")
}

func (s *Service) CreateProduct(ctx context.Context, req *models.ProductRequest) (*models.Product, error) {
	p, err := s.store.CreateProduct(ctx, req.Product())
	if err != nil {
		return nil, internal(err, "create product")
	}
	s.created(ctx, models.ResourceProduct, p.ID)
	return p, nil
}

func (s *Service) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	if err := checkID(id, "product"); err != nil {
		return nil, err
	}
	p, err := s.store.GetProduct(ctx, id)
	return p, lookupError(err, models.ResourceProduct, "get product")
}

func (s *Service) UpdateProduct(ctx context.Context, id int64, req *models.ProductRequest) (*models.Product, error) {
	if err := checkID(id, "product"); err != nil {
		return nil, err
	}
	p, err := s.store.UpdateProduct(ctx, id, req.Product())
	return p, lookupError(err, models.ResourceProduct, "update product")
}

func (s *Service) DeleteProduct(ctx context.Context, id int64) (*models.Product, error) {
	if err := checkID(id, "product"); err != nil {
		return nil, err
	}
	p, err := s.store.DeleteProduct(ctx, id)
	if err == nil {
		s.deleted(ctx, models.ResourceProduct, id)
	}
	return p, lookupError(err, models.ResourceProduct, "delete product")
}

func (s *Service) ListArtworks(ctx context.Context) ([]*models.Artwork, error) {
	artworks, err := s.store.ListArtworks(ctx)
	return artworks, internal(err, "list artworks")
}

func (s *Service) CreateArtwork(ctx context.Context, req *models.ArtworkRequest) (*models.Artwork, error) {
	a, err := s.store.CreateArtwork(ctx, req.Artwork())
	if err != nil {
		return nil, internal(err, "create artwork")
	}
	s.created(ctx, models.ResourceArtwork, a.ID)
	return a, nil
}

func (s *Service) GetArtwork(ctx context.Context, id int64) (*models.Artwork, error) {
	if err := checkID(id, "artwork"); err != nil {
		return nil, err
	}
	a, err := s.store.GetArtwork(ctx, id)
	return a, lookupError(err, models.ResourceArtwork, "get artwork")
}

func (s *Service) UpdateArtwork(ctx context.Context, id int64, req *models.ArtworkRequest) (*models.Artwork, error) {
	if err := checkID(id, "artwork"); err != nil {
		return nil, err
	}
	a, err := s.store.UpdateArtwork(ctx, id, req.Artwork())
	return a, lookupError(err, models.ResourceArtwork, "update artwork")
}

func (s *Service) DeleteArtwork(ctx context.Context, id int64) (*models.Artwork, error) {
	if err := checkID(id, "artwork"); err != nil {
		return nil, err
	}
	a, err := s.store.DeleteArtwork(ctx, id)
	if err == nil {
		s.deleted(ctx, models.ResourceArtwork, id)
	}
	return a, lookupError(err, models.ResourceArtwork, "delete artwork")
}

func (s *Service) ListExhibitions(ctx context.Context) ([]*models.Exhibition, error) {
	exhibitions, err := s.store.ListExhibitions(ctx)
	return exhibitions, internal(err, "list exhibitions")
}

func (s *Service) CreateExhibition(ctx context.Context, req *models.ExhibitionRequest) (*models.Exhibition, error) {
	e, err := s.store.CreateExhibition(ctx, req.Exhibition())
	if err != nil {
		return nil, internal(err, "create exhibition")
	}
	s.created(ctx, models.ResourceExhibition, e.ID)
	return e, nil
}

func (s *Service) GetExhibition(ctx context.Context, id int64) (*models.Exhibition, error) {
	if err := checkID(id, "exhibition"); err != nil {
		return nil, err
	}
	e, err := s.store.GetExhibition(ctx, id)
	return e, lookupError(err, models.ResourceExhibition, "get exhibition")
}

func (s *Service) UpdateExhibition(ctx context.Context, id int64, req *models.ExhibitionRequest) (*models.Exhibition, error) {
	if err := checkID(id, "exhibition"); err != nil {
		return nil, err
	}
	e, err := s.store.UpdateExhibition(ctx, id, req.Exhibition())
	return e, lookupError(err, models.ResourceExhibition, "update exhibition")
}

func (s *Service) DeleteExhibition(ctx context.Context, id int64) (*models.Exhibition, error) {
	if err := checkID(id, "exhibition"); err != nil {
		return nil, err
	}
	e, err := s.store.DeleteExhibition(ctx, id)
	if err == nil {
		s.deleted(ctx, models.ResourceExhibition, id)
	}
	return e, lookupError(err, models.ResourceExhibition, "delete exhibition")
}

func (s *Service) created(ctx context.Context, resource string, id int64) {
	s.logger.InfoContext(ctx, "catalog item created",
		"resource", resource,
		"id", id,
		"request_id", requestcontext.RequestID(ctx),
	)
}

func (s *Service) deleted(ctx context.Context, resource string, id int64) {
	s.logger.InfoContext(ctx, "catalog item deleted",
		"resource", resource,
		"id", id,
		"request_id", requestcontext.RequestID(ctx),
	)
}

func checkID(id int64, noun string) error {
	if id <= 0 {
		return InvalidID(noun)
	}
	return nil
}

// InvalidID is returned for ids that are missing, non-numeric or not positive.
func InvalidID(noun string) error {
	return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("Invalid or missing %s ID", noun))
}

func lookupError(err error, resource, op string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, resource+" not found")
	}
	return internal(err, op)
}

func internal(err error, op string) error {
	if err == nil {
		return nil
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, op+" failed")
}
