package order

import (
	"context"
	"errors"
	"os"
	"testing"

	"vibe-commerce/internal/domain"
	"vibe-commerce/internal/migrate"
	"github.com/jackc/pgx/v5/pgxpool"
)

func TestPostgres_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	if _, err := pool.Exec(ctx, `TRUNCATE orders CASCADE`); err != nil {
		t.Fatalf("truncate orders: %v", err)
	}

	repo := NewPostgres(pool, nil)

	created, err := repo.Create(ctx, domain.Order{
		OrderRef:      "ORD-1756300000000-ABCDEFGHI",
		CustomerName:  "Ada Lovelace",
		CustomerEmail: "ada@example.com",
		Items: []domain.OrderItem{
			{ProductID: "p1", Name: "Wireless Headphones", Quantity: 2, PriceCents: 2999, TotalCents: 5998},
		},
		TotalCents: 5998,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == "" || created.CreatedAt.IsZero() {
		t.Fatalf("expected generated id and timestamp, got %+v", created)
	}

	got, err := repo.GetByRef(ctx, created.OrderRef)
	if err != nil {
		t.Fatalf("GetByRef: %v", err)
	}
	if got.TotalCents != 5998 || len(got.Items) != 1 || got.Items[0].Name != "Wireless Headphones" {
		t.Fatalf("unexpected order %+v", got)
	}

	if _, err := repo.GetByRef(ctx, "ORD-0-MISSING00"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	// The order ref is unique; a second insert with the same ref must fail.
	if _, err := repo.Create(ctx, domain.Order{
		OrderRef:      created.OrderRef,
		CustomerName:  "Ada Lovelace",
		CustomerEmail: "ada@example.com",
		Items:         []domain.OrderItem{},
		TotalCents:    0,
	}); err == nil {
		t.Fatalf("expected unique violation")
	}
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
