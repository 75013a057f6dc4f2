package catalog

import (
	"net/url"
	"sort"
	"strconv"
	"strings"

	"marketplace-api/internal/apperr"
	"marketplace-api/internal/models"
)

const (
	defaultPage     = 1
	defaultPageSize = 12
)

// Campos de ordenamiento soportados
const (
	SortCreatedAt = "createdAt"
	SortPrice     = "price"
	SortName      = "name"
	SortViews     = "views"
)

// Page describe ordenamiento y paginación de una consulta
type Page struct {
	Number    int
	Size      int
	SortField string
	Ascending bool
}

// ParsePage obtiene y valida los parámetros de paginación y orden.
// Defaults: page=1, limit=12, sort=createdAt, order=desc. Valores no
// numéricos o no positivos fallan con error de validación.
func ParsePage(q url.Values) (Page, error) {
	pg := Page{Number: defaultPage, Size: defaultPageSize, SortField: SortCreatedAt}

	if raw := q.Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return Page{}, apperr.Validation("page must be a positive integer")
		}
		pg.Number = n
	}

	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return Page{}, apperr.Validation("limit must be a positive integer")
		}
		pg.Size = n
	}

	switch field := q.Get("sort"); field {
	case "", SortCreatedAt:
		pg.SortField = SortCreatedAt
	case SortPrice, SortName, SortViews:
		pg.SortField = field
	default:
		// Campo desconocido cae al default en vez de errar
		pg.SortField = SortCreatedAt
	}

	pg.Ascending = strings.EqualFold(q.Get("order"), "asc")

	return pg, nil
}

// PagedResult es una página de productos más su posición dentro del
// conjunto completo
type PagedResult struct {
	Items      []models.Product
	Total      int64
	TotalPages int
	Page       int
	HasNext    bool
	HasPrev    bool
}

// NewPagedResult arma la metadata de paginación para una página ya
// recortada. totalPages = ceil(total/pageSize).
func NewPagedResult(items []models.Product, total int64, pg Page) *PagedResult {
	if items == nil {
		items = []models.Product{}
	}
	totalPages := int(total / int64(pg.Size))
	if total%int64(pg.Size) != 0 {
		totalPages++
	}
	return &PagedResult{
		Items:      items,
		Total:      total,
		TotalPages: totalPages,
		Page:       pg.Number,
		HasNext:    pg.Number < totalPages,
		HasPrev:    pg.Number > 1,
	}
}

// SortProducts ordena in place con orden total: el criterio pedido y,
// en empate, el orden de inserción (sort estable sobre el slice que ya
// viene en orden de creación). createdAt compara instantes, no strings.
func SortProducts(products []models.Product, pg Page) {
	sort.SliceStable(products, func(i, j int) bool {
		a, b := products[i], products[j]
		if !pg.Ascending {
			a, b = b, a
		}
		switch pg.SortField {
		case SortPrice:
			return a.Price < b.Price
		case SortName:
			return a.Name < b.Name
		case SortViews:
			return a.Views < b.Views
		default:
			return a.CreatedAt.Before(b.CreatedAt)
		}
	})
}

// Paginate recorta la página pedida. Una página fuera de rango produce
// items vacíos pero la metadata sigue siendo correcta.
func Paginate(products []models.Product, pg Page) *PagedResult {
	total := int64(len(products))
	offset := (pg.Number - 1) * pg.Size

	var items []models.Product
	if offset < len(products) {
		end := offset + pg.Size
		if end > len(products) {
			end = len(products)
		}
		items = products[offset:end]
	}

	return NewPagedResult(items, total, pg)
}
