package order

import (
	"context"

	"vibe-commerce/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, order domain.Order) (*domain.Order, error)
	GetByRef(ctx context.Context, orderRef string) (*domain.Order, error)
}
