package catalog

import (
	"net/url"
	"strconv"
	"strings"

	"marketplace-api/internal/apperr"
	"marketplace-api/internal/models"
)

// Filter es un predicado normalizado sobre productos. El mismo valor
// se traduce a un filtro de Mongo o se evalúa en memoria con Match,
// con semántica de selección idéntica en ambos backends.
type Filter struct {
	Status   string // vacío = sin filtro de estado
	Category string
	Search   string
	MinPrice *float64
	MaxPrice *float64
	SellerID *int64
}

// ParseFilter construye el filtro desde los query params del listado.
// status default "active"; un valor explícito distinto se respeta tal
// cual (incluye inactive/pending, ver nota en DESIGN.md).
func ParseFilter(q url.Values) (Filter, error) {
	f := Filter{
		Status:   models.StatusActive,
		Category: q.Get("category"),
		Search:   q.Get("search"),
	}

	if status := q.Get("status"); status != "" {
		f.Status = status
	}

	if raw := q.Get("minPrice"); raw != "" {
		min, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Filter{}, apperr.Validation("minPrice must be a number")
		}
		f.MinPrice = &min
	}

	if raw := q.Get("maxPrice"); raw != "" {
		max, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Filter{}, apperr.Validation("maxPrice must be a number")
		}
		f.MaxPrice = &max
	}

	return f, nil
}

// Match evalúa el predicado contra un producto. Una categoría fuera
// del conjunto cerrado simplemente no matchea nada (igualdad literal).
func (f Filter) Match(p models.Product) bool {
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.SellerID != nil && p.SellerID != *f.SellerID {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.Search != "" {
		// Contención de substring, sin distinguir mayúsculas. Sin
		// tokenización ni ranking.
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.Description), needle) {
			return false
		}
	}
	return true
}
