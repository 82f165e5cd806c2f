package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func listProductsHandler(svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.List(c.Request.Context())
		if err != nil {
			respondError(c, err, "Failed to fetch products")
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"count":   len(products),
			"data":    products,
		})
	}
}
