package httpserver

import (
	"fmt"
	"net/http"

	"vibe-commerce/internal/domain"
	checkoutsvc "vibe-commerce/internal/service/checkout"
	"github.com/gin-gonic/gin"
)

type checkoutRequest struct {
	CartItems     []checkoutItem `json:"cartItems"`
	CustomerName  string         `json:"customerName"`
	CustomerEmail string         `json:"customerEmail"`
}

type checkoutItem struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Price     int64  `json:"price"`
	Total     int64  `json:"total"`
}

func checkoutHandler(svc checkoutService, userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req checkoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error()), "Invalid checkout payload")
			return
		}

		items := make([]domain.OrderItem, 0, len(req.CartItems))
		for _, item := range req.CartItems {
			items = append(items, domain.OrderItem{
				ProductID:  item.ProductID,
				Name:       item.Name,
				Quantity:   item.Quantity,
				PriceCents: item.Price,
				TotalCents: item.Total,
			})
		}

		receipt, err := svc.Checkout(c.Request.Context(), userID, checkoutsvc.Input{
			CustomerName:  req.CustomerName,
			CustomerEmail: req.CustomerEmail,
			Items:         items,
		})
		if err != nil {
			respondError(c, err, "Checkout failed")
			return
		}
		respondMessage(c, http.StatusCreated, "Order placed successfully", receipt)
	}
}
