package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"marketplace-api/internal/catalog"
)

// Health reporta qué backend está sirviendo el catálogo, para que el
// modo degradado sea visible desde afuera
func Health(store *catalog.FallbackStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		backend := "primary"
		if store.Degraded() {
			backend = "snapshot"
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"backend": backend,
		})
	}
}
