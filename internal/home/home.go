// Package home serves the static landing page.
package home

import (
	_ "embed"
	"net/http"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
)

//go:embed static/index.html
var indexPage []byte

var indexContentType = mimetype.Detect(indexPage).String()

// RegisterRoutes attaches the landing page.
func RegisterRoutes(r gin.IRoutes) {
	r.GET("/", index)
}

func index(c *gin.Context) {
	c.Header("Cache-Control", "no-cache")
	c.Data(http.StatusOK, indexContentType, indexPage)
}
