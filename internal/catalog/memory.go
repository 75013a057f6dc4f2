package catalog

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"marketplace-api/internal/models"
)

// MemoryStore es el espejo en memoria del catálogo: una semilla
// estática más las escrituras hechas mientras el primario está caído.
// Es una instancia inyectable, no estado global; cada test puede crear
// la suya. Las mutaciones se serializan con el mutex porque no hay
// atomicidad externa que las respalde.
type MemoryStore struct {
	mu       sync.RWMutex
	products map[string]models.Product
	order    []string // ids en orden de creación, para el desempate del sort
	entropy  *ulid.MonotonicEntropy
}

// NewMemoryStore crea el snapshot con los productos semilla. Las
// semillas sin id reciben uno; el orden del slice es el orden de
// creación.
func NewMemoryStore(seed []models.Product) *MemoryStore {
	s := &MemoryStore{
		products: make(map[string]models.Product, len(seed)),
		entropy:  ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
	}
	for _, p := range seed {
		if p.ID == "" {
			p.ID = s.newID()
		}
		s.products[p.ID] = p
		s.order = append(s.order, p.ID)
	}
	return s
}

func (s *MemoryStore) newID() string {
	return ulid.MustNew(ulid.Now(), s.entropy).String()
}

// snapshot copia los productos en orden de creación
func (s *MemoryStore) snapshot() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, 0, len(s.order))
	for _, id := range s.order {
		if p, ok := s.products[id]; ok {
			out = append(out, p)
		}
	}
	return out
}

// List aplica el mismo filtro/orden/paginado que el backend primario,
// como funciones puras sobre una copia del estado.
func (s *MemoryStore) List(ctx context.Context, f Filter, pg Page) (*PagedResult, error) {
	matched := make([]models.Product, 0)
	for _, p := range s.snapshot() {
		if f.Match(p) {
			matched = append(matched, p)
		}
	}
	SortProducts(matched, pg)
	return Paginate(matched, pg), nil
}

func (s *MemoryStore) FindByID(ctx context.Context, id string) (*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (s *MemoryStore) Create(ctx context.Context, p *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = s.newID()
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	s.products[p.ID] = *p
	s.order = append(s.order, p.ID)
	return nil
}

// Update aplica el patch campo por campo. sellerId, views y createdAt
// nunca se tocan por esta vía.
func (s *MemoryStore) Update(ctx context.Context, id string, u *models.ProductUpdate) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return nil, ErrNotFound
	}

	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Price != nil {
		p.Price = *u.Price
	}
	if u.Category != nil {
		p.Category = *u.Category
	}
	if u.Images != nil {
		p.Images = u.Images
	}
	if u.Stock != nil {
		p.Stock = *u.Stock
	}
	if u.Status != nil {
		p.Status = *u.Status
	}
	p.UpdatedAt = time.Now()

	s.products[id] = p
	return &p, nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return ErrNotFound
	}
	delete(s.products, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *MemoryStore) IncrementViews(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return ErrNotFound
	}
	p.Views++
	s.products[id] = p
	return nil
}
