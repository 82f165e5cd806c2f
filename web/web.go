// Package web serves the embedded storefront UI. All business logic lives
// behind the JSON API; the UI only drives the four-screen view state.
package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed static
var assets embed.FS

//go:embed static/index.html
var indexHTML []byte

// Register mounts the UI at / and its assets at /static.
func Register(router *gin.Engine) error {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		return err
	}
	router.StaticFS("/static", http.FS(sub))
	router.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
	})
	return nil
}
