package catalog

import (
	"fmt"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace-api/internal/apperr"
	"marketplace-api/internal/models"
)

func TestParsePageDefaults(t *testing.T) {
	pg, err := ParsePage(url.Values{})
	require.NoError(t, err)

	assert.Equal(t, 1, pg.Number)
	assert.Equal(t, 12, pg.Size)
	assert.Equal(t, SortCreatedAt, pg.SortField)
	assert.False(t, pg.Ascending)
}

func TestParsePageInvalidValues(t *testing.T) {
	for _, q := range []url.Values{
		{"page": {"0"}},
		{"page": {"-3"}},
		{"page": {"abc"}},
		{"limit": {"0"}},
		{"limit": {"x"}},
	} {
		_, err := ParsePage(q)
		require.Error(t, err, "query %v", q)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	}
}

func TestParsePageSortAndOrder(t *testing.T) {
	pg, err := ParsePage(url.Values{"sort": {"price"}, "order": {"asc"}})
	require.NoError(t, err)
	assert.Equal(t, SortPrice, pg.SortField)
	assert.True(t, pg.Ascending)

	// Un campo de orden desconocido cae al default
	pg, err = ParsePage(url.Values{"sort": {"sellerName"}})
	require.NoError(t, err)
	assert.Equal(t, SortCreatedAt, pg.SortField)
}

func TestNewPagedResultMetadata(t *testing.T) {
	tests := []struct {
		total      int64
		page, size int
		totalPages int
		hasNext    bool
		hasPrev    bool
	}{
		{total: 25, page: 1, size: 12, totalPages: 3, hasNext: true, hasPrev: false},
		{total: 25, page: 2, size: 12, totalPages: 3, hasNext: true, hasPrev: true},
		{total: 25, page: 3, size: 12, totalPages: 3, hasNext: false, hasPrev: true},
		{total: 24, page: 2, size: 12, totalPages: 2, hasNext: false, hasPrev: true},
		{total: 0, page: 1, size: 12, totalPages: 0, hasNext: false, hasPrev: false},
		{total: 1, page: 1, size: 1, totalPages: 1, hasNext: false, hasPrev: false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("total=%d page=%d size=%d", tt.total, tt.page, tt.size), func(t *testing.T) {
			r := NewPagedResult(nil, tt.total, Page{Number: tt.page, Size: tt.size})
			assert.NotNil(t, r.Items)
			assert.Equal(t, tt.totalPages, r.TotalPages)
			assert.Equal(t, tt.hasNext, r.HasNext)
			assert.Equal(t, tt.hasPrev, r.HasPrev)
		})
	}
}

func TestPaginateSliceBounds(t *testing.T) {
	products := make([]models.Product, 30)
	for i := range products {
		products[i].Name = fmt.Sprintf("p%02d", i)
	}

	for _, tt := range []struct {
		page, size, wantLen int
	}{
		{1, 12, 12},
		{2, 12, 12},
		{3, 12, 6},
		{4, 12, 0}, // fuera de rango: vacío, no error
		{1, 100, 30},
	} {
		r := Paginate(products, Page{Number: tt.page, Size: tt.size})
		assert.Len(t, r.Items, tt.wantLen, "page=%d size=%d", tt.page, tt.size)
		assert.Equal(t, int64(30), r.Total)
		assert.Equal(t, 30/tt.size+boolToInt(30%tt.size != 0), r.TotalPages)
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func TestSortProductsByInstantNotString(t *testing.T) {
	// Fechas cuyo orden lexicográfico de formato no coincide con el
	// orden temporal
	older := models.Product{Name: "older", CreatedAt: time.Date(2024, 9, 30, 23, 0, 0, 0, time.FixedZone("UTC-5", -5*3600))}
	newer := models.Product{Name: "newer", CreatedAt: time.Date(2024, 10, 1, 1, 0, 0, 0, time.UTC)}

	products := []models.Product{older, newer}
	SortProducts(products, Page{SortField: SortCreatedAt, Ascending: false})

	assert.Equal(t, "newer", products[0].Name)
	assert.Equal(t, "older", products[1].Name)
}

func TestSortProductsTieBreakIsInsertionOrder(t *testing.T) {
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	products := []models.Product{
		{Name: "first", Price: 10, CreatedAt: at},
		{Name: "second", Price: 10, CreatedAt: at},
		{Name: "third", Price: 10, CreatedAt: at},
	}

	for _, asc := range []bool{true, false} {
		got := append([]models.Product(nil), products...)
		SortProducts(got, Page{SortField: SortPrice, Ascending: asc})
		assert.Equal(t, "first", got[0].Name, "asc=%v", asc)
		assert.Equal(t, "second", got[1].Name, "asc=%v", asc)
		assert.Equal(t, "third", got[2].Name, "asc=%v", asc)
	}
}
