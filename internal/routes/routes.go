package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"marketplace-api/internal/auth"
	"marketplace-api/internal/catalog"
	"marketplace-api/internal/handlers"
	"marketplace-api/internal/middleware"
)

func RegisterRoutes(router *gin.Engine, store *catalog.FallbackStore, h *handlers.ProductHandler, resolver auth.Resolver, log *logrus.Logger) {
	router.GET("/health", handlers.Health(store))

	products := router.Group("/products")
	{
		products.GET("", h.ListProducts)
		products.GET("/seller/:sellerId", h.SellerProducts)
		products.GET("/:id", h.GetProduct)
	}

	secured := products.Group("", middleware.Auth(resolver, log))
	{
		secured.POST("", h.CreateProduct)
		secured.PUT("/:id", h.UpdateProduct)
		secured.DELETE("/:id", h.DeleteProduct)
	}
}
