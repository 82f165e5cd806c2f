package domain

import "time"

// Cart is the single mutable aggregate per user. SubtotalCents is derived
// state: after every mutation it equals the sum of the item totals.
type Cart struct {
	ID            string     `json:"id"`
	UserID        string     `json:"userId"`
	SubtotalCents int64      `json:"subTotal"`
	CreatedAt     time.Time  `json:"createdAt"`
	Items         []CartItem `json:"items"`
}

// CartItem denormalizes the product name and price at add time. The unit
// price is never refreshed from the catalog afterwards.
type CartItem struct {
	ID             string    `json:"id"`
	CartID         string    `json:"cartId"`
	ProductID      string    `json:"productId"`
	ProductName    string    `json:"name"`
	Quantity       int       `json:"quantity"`
	UnitPriceCents int64     `json:"price"`
	TotalCents     int64     `json:"total"`
	CreatedAt      time.Time `json:"createdAt"`
}
