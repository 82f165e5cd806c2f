package domain

import "time"

// Order is an immutable snapshot taken at checkout. Items are a detached
// copy with no reference back to the cart or the catalog.
type Order struct {
	ID            string      `json:"id"`
	OrderRef      string      `json:"orderId"`
	CustomerName  string      `json:"customerName"`
	CustomerEmail string      `json:"customerEmail"`
	Items         []OrderItem `json:"items"`
	TotalCents    int64       `json:"total"`
	CreatedAt     time.Time   `json:"createdAt"`
}

type OrderItem struct {
	ProductID  string `json:"productId"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	PriceCents int64  `json:"price"`
	TotalCents int64  `json:"total"`
}

// Receipt is the read-only view returned after a successful checkout.
type Receipt struct {
	OrderID       string      `json:"orderId"`
	CustomerName  string      `json:"customerName"`
	CustomerEmail string      `json:"customerEmail"`
	Items         []OrderItem `json:"items"`
	TotalCents    int64       `json:"total"`
	Timestamp     time.Time   `json:"timestamp"`
	Message       string      `json:"message"`
}
