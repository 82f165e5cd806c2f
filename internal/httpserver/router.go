package httpserver

import (
	"log"

	"vibe-commerce/web"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// buildRouter wires the storefront API and the embedded UI.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, corsOrigins []string) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(corsOrigins) > 0 {
		corsCfg.AllowOrigins = corsOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	router.Use(cors.New(corsCfg))

	api := router.Group("/api")
	api.GET("/products", listProductsHandler(deps.CatalogSvc))
	api.GET("/cart", getCartHandler(deps.CartSvc, deps.UserID))
	api.POST("/cart", addCartItemHandler(deps.CartSvc, deps.UserID))
	api.PUT("/cart/:itemId", updateCartItemHandler(deps.CartSvc, deps.UserID))
	api.DELETE("/cart/:itemId", removeCartItemHandler(deps.CartSvc, deps.UserID))
	api.POST("/checkout", checkoutHandler(deps.CheckoutSvc, deps.UserID))
	api.GET("/health", healthHandler)

	router.GET("/readyz", readyHandler(db))

	if err := web.Register(router); err != nil {
		return nil, err
	}

	return router, nil
}
