package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"

	"vibe-commerce/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Create(ctx context.Context, order domain.Order) (*domain.Order, error) {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return nil, fmt.Errorf("marshal order items: %w", err)
	}

	const q = `
INSERT INTO orders (order_ref, customer_name, customer_email, items, total_cents)
VALUES ($1, $2, $3, $4, $5)
RETURNING id::text, created_at
`
	res := order
	if err := r.pool.QueryRow(ctx, q,
		order.OrderRef,
		order.CustomerName,
		order.CustomerEmail,
		items,
		order.TotalCents,
	).Scan(&res.ID, &res.CreatedAt); err != nil {
		r.logger.Printf("order repo: create ref=%s error=%v", order.OrderRef, err)
		return nil, err
	}
	r.logger.Printf("order repo: created ref=%s total_cents=%d", res.OrderRef, res.TotalCents)
	return &res, nil
}

func (r *postgresRepo) GetByRef(ctx context.Context, orderRef string) (*domain.Order, error) {
	const q = `
SELECT id::text, order_ref, customer_name, customer_email, items, total_cents, created_at
FROM orders
WHERE order_ref = $1
`
	var o domain.Order
	var items []byte
	err := r.pool.QueryRow(ctx, q, orderRef).Scan(
		&o.ID,
		&o.OrderRef,
		&o.CustomerName,
		&o.CustomerEmail,
		&items,
		&o.TotalCents,
		&o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("order repo: get ref=%s error=%v", orderRef, err)
		return nil, err
	}
	if err := json.Unmarshal(items, &o.Items); err != nil {
		return nil, fmt.Errorf("unmarshal order items: %w", err)
	}
	return &o, nil
}
