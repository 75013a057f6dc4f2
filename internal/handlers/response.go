package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"marketplace-api/internal/apperr"
	"marketplace-api/internal/catalog"
	"marketplace-api/internal/models"
)

// Pagination es la metadata que acompaña a todo listado
type Pagination struct {
	CurrentPage   int   `json:"currentPage"`
	TotalPages    int   `json:"totalPages"`
	TotalProducts int64 `json:"totalProducts"`
	HasNextPage   bool  `json:"hasNextPage"`
	HasPrevPage   bool  `json:"hasPrevPage"`
}

type ListResponse struct {
	Success    bool             `json:"success"`
	Data       []models.Product `json:"data"`
	Pagination Pagination       `json:"pagination"`
}

type ItemResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    *models.Product `json:"data,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

func newListResponse(result *catalog.PagedResult) ListResponse {
	return ListResponse{
		Success: true,
		Data:    result.Items,
		Pagination: Pagination{
			CurrentPage:   result.Page,
			TotalPages:    result.TotalPages,
			TotalProducts: result.Total,
			HasNextPage:   result.HasNext,
			HasPrevPage:   result.HasPrev,
		},
	}
}

// respondError escribe el error con su clasificación estable. Nunca
// expone causas internas, solo el mensaje de la taxonomía.
func respondError(c *gin.Context, err error) {
	if errors.Is(err, catalog.ErrNotFound) {
		err = apperr.NotFound("Product not found")
	}
	c.JSON(apperr.HTTPStatus(err), ErrorResponse{
		Error: apperr.Message(err),
		Kind:  string(apperr.KindOf(err)),
	})
}
