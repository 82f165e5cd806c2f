package seed

import (
	"context"
	"fmt"

	"vibe-commerce/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

// demoProducts is the fixed demo catalog. The catalog service inserts it on
// the first read of an empty store; cmd/seed applies it out-of-band.
var demoProducts = []domain.Product{
	{
		Slug:        "wireless-headphones",
		Name:        "Wireless Headphones",
		PriceCents:  2999,
		ImageURL:    "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=500",
		Description: "Premium wireless headphones with noise cancellation",
		Category:    "Electronics",
	},
	{
		Slug:        "smart-watch",
		Name:        "Smart Watch",
		PriceCents:  4999,
		ImageURL:    "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=500",
		Description: "Fitness tracker with heart rate monitor",
		Category:    "Electronics",
	},
	{
		Slug:        "coffee-maker",
		Name:        "Coffee Maker",
		PriceCents:  1999,
		ImageURL:    "https://images.unsplash.com/photo-1517668808822-9ebb02f2a0e6?w=500",
		Description: "Automatic drip coffee maker",
		Category:    "Home",
	},
	{
		Slug:        "running-shoes",
		Name:        "Running Shoes",
		PriceCents:  3499,
		ImageURL:    "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=500",
		Description: "Lightweight running shoes for comfort",
		Category:    "Fashion",
	},
	{
		Slug:        "backpack",
		Name:        "Backpack",
		PriceCents:  1499,
		ImageURL:    "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=500",
		Description: "Durable travel backpack with laptop compartment",
		Category:    "Fashion",
	},
	{
		Slug:        "desk-lamp",
		Name:        "Desk Lamp",
		PriceCents:  899,
		ImageURL:    "https://images.unsplash.com/photo-1507473885765-e6ed057f782c?w=500",
		Description: "LED desk lamp with adjustable brightness",
		Category:    "Home",
	},
	{
		Slug:        "water-bottle",
		Name:        "Water Bottle",
		PriceCents:  499,
		ImageURL:    "https://images.unsplash.com/photo-1602143407151-7111542de6e8?w=500",
		Description: "Insulated stainless steel water bottle",
		Category:    "Sports",
	},
	{
		Slug:        "bluetooth-speaker",
		Name:        "Bluetooth Speaker",
		PriceCents:  2499,
		ImageURL:    "https://images.unsplash.com/photo-1608043152269-423dbba4e7e1?w=500",
		Description: "Portable Bluetooth speaker with bass boost",
		Category:    "Electronics",
	},
	{
		Slug:        "yoga-mat",
		Name:        "Yoga Mat",
		PriceCents:  799,
		ImageURL:    "https://images.unsplash.com/photo-1601925260368-ae2f83cf8b7f?w=500",
		Description: "Non-slip yoga mat for all exercises",
		Category:    "Sports",
	},
	{
		Slug:        "sunglasses",
		Name:        "Sunglasses",
		PriceCents:  1299,
		ImageURL:    "https://images.unsplash.com/photo-1572635196237-14b3f281503f?w=500",
		Description: "UV protection sunglasses",
		Category:    "Fashion",
	},
}

// Products returns a copy of the demo catalog.
func Products() []domain.Product {
	out := make([]domain.Product, len(demoProducts))
	copy(out, demoProducts)
	return out
}

// Apply inserts the demo catalog for manual testing. It is idempotent via
// ON CONFLICT on the product slug.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	for _, p := range demoProducts {
		if err := upsertProduct(ctx, pool, p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.Slug, err)
		}
	}
	return nil
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, p domain.Product) error {
	const q = `
INSERT INTO products (slug, name, price_cents, image_url, description, category)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (slug) DO UPDATE
SET name = EXCLUDED.name,
    price_cents = EXCLUDED.price_cents,
    image_url = EXCLUDED.image_url,
    description = EXCLUDED.description,
    category = EXCLUDED.category
`
	_, err := pool.Exec(ctx, q, p.Slug, p.Name, p.PriceCents, p.ImageURL, p.Description, p.Category)
	return err
}
