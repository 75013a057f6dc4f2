package catalog

import (
	"time"

	"marketplace-api/internal/models"
)

// SeedProducts es la semilla estática del snapshot: un producto por
// categoría, con precios y fechas escalonadas para que el catálogo
// degradado tenga algo razonable que mostrar.
func SeedProducts() []models.Product {
	base := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)

	return []models.Product{
		{
			Name:        "Wireless Headphones",
			Description: "Over-ear bluetooth headphones with noise cancellation",
			Price:       89.99,
			Category:    "electronics",
			Images:      []string{"https://cdn.example.com/img/headphones.jpg"},
			SellerID:    1,
			SellerName:  "Demo Seller",
			Stock:       25,
			Status:      models.StatusActive,
			CreatedAt:   base,
			UpdatedAt:   base,
		},
		{
			Name:        "Denim Jacket",
			Description: "Classic blue denim jacket, unisex fit",
			Price:       59.50,
			Category:    "fashion",
			Images:      []string{"https://cdn.example.com/img/jacket.jpg"},
			SellerID:    1,
			SellerName:  "Demo Seller",
			Stock:       40,
			Status:      models.StatusActive,
			CreatedAt:   base.Add(time.Hour),
			UpdatedAt:   base.Add(time.Hour),
		},
		{
			Name:        "Ceramic Vase",
			Description: "Handmade ceramic vase for living room decoration",
			Price:       34.00,
			Category:    "home",
			Images:      []string{"https://cdn.example.com/img/vase.jpg"},
			SellerID:    2,
			SellerName:  "Casa Deco",
			Stock:       12,
			Status:      models.StatusActive,
			CreatedAt:   base.Add(2 * time.Hour),
			UpdatedAt:   base.Add(2 * time.Hour),
		},
		{
			Name:        "The Go Programming Language",
			Description: "Reference book for the Go language, paperback edition",
			Price:       45.90,
			Category:    "books",
			Images:      []string{"https://cdn.example.com/img/gobook.jpg"},
			SellerID:    2,
			SellerName:  "Casa Deco",
			Stock:       8,
			Status:      models.StatusActive,
			CreatedAt:   base.Add(3 * time.Hour),
			UpdatedAt:   base.Add(3 * time.Hour),
		},
	}
}
