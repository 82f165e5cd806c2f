package cart

import (
	"context"
	"errors"
	"os"
	"testing"

	"vibe-commerce/internal/domain"
	"vibe-commerce/internal/migrate"
	"github.com/jackc/pgx/v5/pgxpool"
)

func TestPostgres_CartLifecycle(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	resetTables(ctx, t, pool)

	product := insertProduct(ctx, t, pool, "wireless-headphones", 2999)
	repo := NewPostgres(pool)

	// Lazy create on first access.
	if _, err := repo.GetByUser(ctx, "mock-user-001"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found before first access, got %v", err)
	}
	cart, err := repo.GetOrCreateByUser(ctx, "mock-user-001")
	if err != nil {
		t.Fatalf("GetOrCreateByUser: %v", err)
	}
	if len(cart.Items) != 0 || cart.SubtotalCents != 0 {
		t.Fatalf("new cart must be empty, got %+v", cart)
	}
	again, err := repo.GetOrCreateByUser(ctx, "mock-user-001")
	if err != nil {
		t.Fatalf("GetOrCreateByUser again: %v", err)
	}
	if again.ID != cart.ID {
		t.Fatalf("expected the same cart on repeat access")
	}

	// Add twice: quantity accumulates on one line.
	if err := repo.AddItem(ctx, cart.ID, product, 2); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if err := repo.AddItem(ctx, cart.ID, product, 1); err != nil {
		t.Fatalf("AddItem again: %v", err)
	}
	cart, err = repo.GetByUser(ctx, "mock-user-001")
	if err != nil {
		t.Fatalf("GetByUser: %v", err)
	}
	if len(cart.Items) != 1 {
		t.Fatalf("expected one accumulated line, got %d", len(cart.Items))
	}
	if cart.Items[0].Quantity != 3 || cart.Items[0].TotalCents != 3*2999 {
		t.Fatalf("unexpected line %+v", cart.Items[0])
	}
	if cart.SubtotalCents != 3*2999 {
		t.Fatalf("subtotal %d, want %d", cart.SubtotalCents, 3*2999)
	}

	// Update quantity recomputes from the stored unit price.
	if err := repo.UpdateItemQuantity(ctx, cart.ID, cart.Items[0].ID, 2); err != nil {
		t.Fatalf("UpdateItemQuantity: %v", err)
	}
	cart, _ = repo.GetByUser(ctx, "mock-user-001")
	if cart.Items[0].TotalCents != 5998 || cart.SubtotalCents != 5998 {
		t.Fatalf("unexpected totals after update: %+v", cart)
	}
	if err := repo.UpdateItemQuantity(ctx, cart.ID, "00000000-0000-0000-0000-000000000000", 2); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found for missing item, got %v", err)
	}

	// Removing an absent item is a no-op; removing the line empties the cart.
	if err := repo.RemoveItem(ctx, cart.ID, "00000000-0000-0000-0000-000000000000"); err != nil {
		t.Fatalf("RemoveItem absent: %v", err)
	}
	unchanged, _ := repo.GetByUser(ctx, "mock-user-001")
	if len(unchanged.Items) != 1 || unchanged.SubtotalCents != 5998 {
		t.Fatalf("cart changed by absent removal: %+v", unchanged)
	}
	if err := repo.RemoveItem(ctx, cart.ID, cart.Items[0].ID); err != nil {
		t.Fatalf("RemoveItem: %v", err)
	}
	cart, _ = repo.GetByUser(ctx, "mock-user-001")
	if len(cart.Items) != 0 || cart.SubtotalCents != 0 {
		t.Fatalf("expected empty cart, got %+v", cart)
	}
}

func TestPostgres_Clear(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	resetTables(ctx, t, pool)

	product := insertProduct(ctx, t, pool, "smart-watch", 4999)
	repo := NewPostgres(pool)

	cart, err := repo.GetOrCreateByUser(ctx, "mock-user-001")
	if err != nil {
		t.Fatalf("GetOrCreateByUser: %v", err)
	}
	if err := repo.AddItem(ctx, cart.ID, product, 2); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if err := repo.Clear(ctx, cart.ID); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	cart, err = repo.GetByUser(ctx, "mock-user-001")
	if err != nil {
		t.Fatalf("GetByUser: %v", err)
	}
	if len(cart.Items) != 0 || cart.SubtotalCents != 0 {
		t.Fatalf("expected cleared cart, got %+v", cart)
	}
}

func insertProduct(ctx context.Context, t *testing.T, pool *pgxpool.Pool, slug string, priceCents int64) domain.Product {
	t.Helper()
	p := domain.Product{Slug: slug, Name: slug, PriceCents: priceCents}
	err := pool.QueryRow(ctx, `
		INSERT INTO products (slug, name, price_cents)
		VALUES ($1, $2, $3)
		RETURNING id::text
	`, p.Slug, p.Name, p.PriceCents).Scan(&p.ID)
	if err != nil {
		t.Fatalf("insert product: %v", err)
	}
	return p
}

func testPool(ctx context.Context, t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	return pool
}

func resetTables(ctx context.Context, t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	if _, err := pool.Exec(ctx, `TRUNCATE cart_items, carts, orders, products RESTART IDENTITY CASCADE`); err != nil {
		t.Fatalf("truncate tables: %v", err)
	}
}
