package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"marketplace-api/internal/apperr"
	"marketplace-api/internal/cache"
	"marketplace-api/internal/catalog"
	"marketplace-api/internal/middleware"
	"marketplace-api/internal/models"
)

const (
	listCachePrefix = "products:list:"
	listCacheTTL    = 2 * time.Minute
	incrementWindow = 5 * time.Second
)

type ProductHandler struct {
	store catalog.Store
	cache *cache.Cache
	log   *logrus.Logger
}

func NewProductHandler(store catalog.Store, c *cache.Cache, log *logrus.Logger) *ProductHandler {
	return &ProductHandler{store: store, cache: c, log: log}
}

// GET /products
func (h *ProductHandler) ListProducts(c *gin.Context) {
	q := c.Request.URL.Query()

	filter, err := catalog.ParseFilter(q)
	if err != nil {
		respondError(c, err)
		return
	}
	if filter.Status != models.StatusActive {
		// Cualquier caller puede pedir listados no activos por query
		// param, sin chequeo de propiedad. Se deja visible en logs.
		h.log.WithField("status", filter.Status).Warn("non-active status filter requested without ownership check")
	}

	page, err := catalog.ParsePage(q)
	if err != nil {
		respondError(c, err)
		return
	}

	cacheKey := listCachePrefix + q.Encode()
	if cached, found := h.cache.GetValue(cacheKey); found {
		c.JSON(http.StatusOK, cached)
		return
	}

	result, err := h.store.List(c.Request.Context(), filter, page)
	if err != nil {
		respondError(c, apperr.Storage(err, "could not list products"))
		return
	}

	response := newListResponse(result)
	h.cache.Set(cacheKey, response, listCacheTTL)
	c.JSON(http.StatusOK, response)
}

// GET /products/:id
//
// La lectura incrementa el contador de vistas como efecto observable,
// en forma asíncrona: no bloquea ni hace fallar la respuesta. El
// incremento va por la vía atómica del store, nunca por el update de
// campos, así un update concurrente no lo pisa.
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id := c.Param("id")

	product, err := h.store.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), incrementWindow)
		defer cancel()
		if err := h.store.IncrementViews(ctx, id); err != nil {
			h.log.WithError(err).WithField("product_id", id).Warn("could not increment product views")
		}
	}()

	c.JSON(http.StatusOK, ItemResponse{Success: true, Data: product})
}

// GET /products/seller/:sellerId
func (h *ProductHandler) SellerProducts(c *gin.Context) {
	sellerID, err := strconv.ParseInt(c.Param("sellerId"), 10, 64)
	if err != nil {
		respondError(c, apperr.Validation("sellerId must be an integer"))
		return
	}

	q := c.Request.URL.Query()
	page, err := catalog.ParsePage(q)
	if err != nil {
		respondError(c, err)
		return
	}

	// Sin filtro de estado por defecto: el listado por vendedor
	// muestra todas sus publicaciones salvo que se pida un estado.
	filter := catalog.Filter{
		SellerID: &sellerID,
		Status:   c.Query("status"),
	}
	if filter.Status != "" && filter.Status != models.StatusActive {
		h.log.WithField("status", filter.Status).Warn("non-active status filter requested without ownership check")
	}

	cacheKey := fmt.Sprintf("%sseller:%d:%s", listCachePrefix, sellerID, q.Encode())
	if cached, found := h.cache.GetValue(cacheKey); found {
		c.JSON(http.StatusOK, cached)
		return
	}

	result, err := h.store.List(c.Request.Context(), filter, page)
	if err != nil {
		respondError(c, apperr.Storage(err, "could not list seller products"))
		return
	}

	response := newListResponse(result)
	h.cache.Set(cacheKey, response, listCacheTTL)
	c.JSON(http.StatusOK, response)
}

// POST /products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}
	if identity.Role != models.RoleSeller {
		respondError(c, apperr.Authorization("only sellers can create products"))
		return
	}

	var in models.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, bindingError(err))
		return
	}

	status := in.Status
	if status == "" {
		status = models.StatusActive
	}
	stock := 0
	if in.Stock != nil {
		stock = *in.Stock
	}
	images := in.Images
	if images == nil {
		images = []string{}
	}

	product := models.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       *in.Price,
		Category:    in.Category,
		Images:      images,
		SellerID:    identity.UserID,
		// Denormalizado al momento de crear; no se refresca si el
		// perfil cambia después.
		SellerName: identity.DisplayName(),
		Stock:      stock,
		Status:     status,
		Views:      0,
	}

	if err := h.store.Create(c.Request.Context(), &product); err != nil {
		respondError(c, apperr.Storage(err, "could not create product"))
		return
	}

	h.cache.DeleteByPrefix(listCachePrefix)
	c.JSON(http.StatusCreated, ItemResponse{
		Success: true,
		Message: "Product created successfully",
		Data:    &product,
	})
}

// PUT /products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	id := c.Param("id")
	if _, err := h.guardOwnership(c, identity, id); err != nil {
		respondError(c, err)
		return
	}

	var update models.ProductUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		respondError(c, bindingError(err))
		return
	}
	if update.Empty() {
		respondError(c, apperr.Validation("no valid fields to update"))
		return
	}
	if err := update.Validate(); err != nil {
		respondError(c, err)
		return
	}

	product, err := h.store.Update(c.Request.Context(), id, &update)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			respondError(c, err)
			return
		}
		respondError(c, apperr.Storage(err, "could not update product"))
		return
	}

	h.cache.DeleteByPrefix(listCachePrefix)
	c.JSON(http.StatusOK, ItemResponse{
		Success: true,
		Message: "Product updated successfully",
		Data:    product,
	})
}

// DELETE /products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	id := c.Param("id")
	if _, err := h.guardOwnership(c, identity, id); err != nil {
		respondError(c, err)
		return
	}

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			respondError(c, err)
			return
		}
		respondError(c, apperr.Storage(err, "could not delete product"))
		return
	}

	h.cache.DeleteByPrefix(listCachePrefix)
	c.JSON(http.StatusOK, ItemResponse{
		Success: true,
		Message: "Product deleted successfully",
	})
}

// guardOwnership verifica rol y propiedad antes de una mutación. Un
// vendedor ajeno sobre un producto existente recibe 403, no 404.
func (h *ProductHandler) guardOwnership(c *gin.Context, identity models.Identity, id string) (*models.Product, error) {
	if identity.Role != models.RoleSeller {
		return nil, apperr.Authorization("only sellers can modify products")
	}

	product, err := h.store.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return nil, err
		}
		return nil, apperr.Storage(err, "could not fetch product")
	}

	if product.SellerID != identity.UserID {
		return nil, apperr.Authorization("you can only modify your own products")
	}
	return product, nil
}
