package httpserver

import (
	"fmt"
	"net/http"

	"vibe-commerce/internal/domain"
	"github.com/gin-gonic/gin"
)

type addItemRequest struct {
	ProductID string `json:"productId"`
	Qty       int    `json:"qty"`
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

func getCartHandler(svc cartService, userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := svc.Get(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err, "Failed to fetch cart")
			return
		}
		respondData(c, http.StatusOK, cart)
	}
}

func addCartItemHandler(svc cartService, userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error()), "Product ID and quantity are required")
			return
		}
		cart, err := svc.AddItem(c.Request.Context(), userID, req.ProductID, req.Qty)
		if err != nil {
			respondError(c, err, "Failed to add item to cart")
			return
		}
		respondMessage(c, http.StatusCreated, "Item added to cart successfully", cart)
	}
}

func updateCartItemHandler(svc cartService, userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error()), "Valid quantity is required")
			return
		}
		cart, err := svc.UpdateItemQuantity(c.Request.Context(), userID, c.Param("itemId"), req.Quantity)
		if err != nil {
			respondError(c, err, "Failed to update cart")
			return
		}
		respondMessage(c, http.StatusOK, "Cart updated successfully", cart)
	}
}

func removeCartItemHandler(svc cartService, userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := svc.RemoveItem(c.Request.Context(), userID, c.Param("itemId"))
		if err != nil {
			respondError(c, err, "Failed to remove item from cart")
			return
		}
		respondMessage(c, http.StatusOK, "Item removed from cart", cart)
	}
}
