package catalog

import (
	"context"
	"fmt"
	"io"
	"log"

	"vibe-commerce/internal/domain"
	"vibe-commerce/internal/seed"
)

type Service struct {
	repo   productRepo
	logger *log.Logger
}

type productRepo interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Upsert(ctx context.Context, product domain.Product) (*domain.Product, error)
}

func New(repo productRepo, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{repo: repo, logger: logger}
}

// List returns all products. An empty catalog is seeded with the fixed demo
// set on first read; the upserts are idempotent, so a concurrent first read
// cannot duplicate products.
func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(products) > 0 {
		return products, nil
	}

	demo := seed.Products()
	for _, p := range demo {
		if _, err := s.repo.Upsert(ctx, p); err != nil {
			return nil, fmt.Errorf("seed product %s: %w", p.Slug, err)
		}
	}
	s.logger.Printf("catalog: seeded %d demo products", len(demo))

	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}
