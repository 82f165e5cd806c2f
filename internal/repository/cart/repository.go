package cart

import (
	"context"

	"vibe-commerce/internal/domain"
)

type Repository interface {
	// GetByUser returns the user's cart or domain.ErrNotFound.
	GetByUser(ctx context.Context, userID string) (*domain.Cart, error)
	// GetOrCreateByUser lazily creates an empty cart on first access.
	GetOrCreateByUser(ctx context.Context, userID string) (*domain.Cart, error)
	AddItem(ctx context.Context, cartID string, product domain.Product, quantity int) error
	UpdateItemQuantity(ctx context.Context, cartID, itemID string, quantity int) error
	// RemoveItem is idempotent: removing an absent item is not an error.
	RemoveItem(ctx context.Context, cartID, itemID string) error
	Clear(ctx context.Context, cartID string) error
}
