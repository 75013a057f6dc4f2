package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"marketplace-api/internal/auth"
	"marketplace-api/internal/cache"
	"marketplace-api/internal/catalog"
	"marketplace-api/internal/config"
	"marketplace-api/internal/database"
	"marketplace-api/internal/handlers"
	"marketplace-api/internal/middleware"
	"marketplace-api/internal/routes"
)

func main() {
	log := logrus.New()

	cfg, err := config.Load(log)
	if err != nil {
		log.WithError(err).Fatal("could not load configuration")
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	// El primario puede no estar disponible al arranque: el servicio
	// igual levanta y sirve desde el snapshot.
	var primary catalog.Store
	if cfg.MongoURI != "" {
		client, err := database.Connect(context.Background(), cfg.MongoURI, cfg.MongoTimeout)
		if err != nil {
			log.WithError(err).Warn("could not connect to MongoDB, starting in snapshot mode")
		} else {
			collection := client.Database(cfg.MongoDB).Collection("products")
			primary = catalog.NewMongoStore(collection)
		}
	} else {
		log.Warn("MONGO_URI not set, starting in snapshot mode")
	}

	snapshot := catalog.NewMemoryStore(catalog.SeedProducts())
	store := catalog.NewFallbackStore(primary, snapshot, log)

	resolver := auth.NewJWTResolver(cfg.JWTSecret)
	handler := handlers.NewProductHandler(store, cache.New(cfg.CacheTTL), log)

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(log))
	routes.RegisterRoutes(router, store, handler, resolver, log)

	log.WithField("port", cfg.Port).Info("🚀 Server running")
	if err := router.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
