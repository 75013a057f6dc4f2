package catalog

import (
	"context"
	"errors"

	"marketplace-api/internal/models"
)

// ErrNotFound indica que el producto no existe en el backend activo.
// No es una falla de almacenamiento: nunca dispara el fallback.
var ErrNotFound = errors.New("product not found")

// Store es el contrato común de los dos backends del catálogo. Ambos
// deben producir resultados con la misma forma y semántica para una
// misma consulta.
type Store interface {
	List(ctx context.Context, f Filter, pg Page) (*PagedResult, error)
	FindByID(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, p *models.Product) error
	Update(ctx context.Context, id string, u *models.ProductUpdate) (*models.Product, error)
	Delete(ctx context.Context, id string) error
	IncrementViews(ctx context.Context, id string) error
}
