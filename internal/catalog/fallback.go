package catalog

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"marketplace-api/internal/models"
)

// FallbackStore ejecuta cada consulta contra el backend primario y,
// si este falla, contra el snapshot en memoria. Los dos backends no se
// sincronizan entre sí: el snapshot es la semilla estática más las
// escrituras hechas estando en modo degradado. Cambiar de backend
// dentro de un mismo proceso puede mostrar datos distintos; es un
// comportamiento documentado, no un bug a enmascarar.
//
// Las lecturas se recuperan localmente con el fallback. Las escrituras
// nunca caen en silencio al otro backend: van al backend activo y si
// fallan, el error se reporta como falla de almacenamiento.
type FallbackStore struct {
	primary  Store // puede ser nil si el primario no conectó al arranque
	snapshot *MemoryStore
	degraded atomic.Bool
	log      *logrus.Logger
}

func NewFallbackStore(primary Store, snapshot *MemoryStore, log *logrus.Logger) *FallbackStore {
	s := &FallbackStore{primary: primary, snapshot: snapshot, log: log}
	if primary == nil {
		s.degraded.Store(true)
		log.Warn("primary store unavailable, serving from in-memory snapshot")
	}
	return s
}

// Degraded indica si el backend activo es el snapshot
func (s *FallbackStore) Degraded() bool {
	return s.degraded.Load()
}

// active devuelve el backend al que van las escrituras
func (s *FallbackStore) active() Store {
	if s.degraded.Load() {
		return s.snapshot
	}
	return s.primary
}

// fallback registra la falla del primario y deja activo el snapshot
func (s *FallbackStore) fallback(op string, err error) {
	if !s.degraded.Swap(true) {
		s.log.WithError(err).Warnf("primary store failed on %s, falling back to snapshot", op)
	}
}

// recovered marca al primario como activo de nuevo
func (s *FallbackStore) recovered() {
	if s.degraded.Swap(false) {
		s.log.Info("primary store recovered, leaving snapshot mode")
	}
}

// List intenta siempre el primario; un primario recuperado vuelve a
// ganar. ErrNotFound no existe en listados, cualquier error es falla
// de almacenamiento.
func (s *FallbackStore) List(ctx context.Context, f Filter, pg Page) (*PagedResult, error) {
	if s.primary != nil {
		result, err := s.primary.List(ctx, f, pg)
		if err == nil {
			s.recovered()
			return result, nil
		}
		s.fallback("list", err)
	}
	return s.snapshot.List(ctx, f, pg)
}

// FindByID busca en el backend activo. Un producto inexistente en el
// primario es un 404 real, no dispara el fallback.
func (s *FallbackStore) FindByID(ctx context.Context, id string) (*models.Product, error) {
	if s.primary != nil && !s.degraded.Load() {
		p, err := s.primary.FindByID(ctx, id)
		if err == nil || errors.Is(err, ErrNotFound) {
			return p, err
		}
		s.fallback("find", err)
	}
	return s.snapshot.FindByID(ctx, id)
}

func (s *FallbackStore) Create(ctx context.Context, p *models.Product) error {
	return s.writeErr("create", s.active().Create(ctx, p))
}

func (s *FallbackStore) Update(ctx context.Context, id string, u *models.ProductUpdate) (*models.Product, error) {
	p, err := s.active().Update(ctx, id, u)
	return p, s.writeErr("update", err)
}

func (s *FallbackStore) Delete(ctx context.Context, id string) error {
	return s.writeErr("delete", s.active().Delete(ctx, id))
}

func (s *FallbackStore) IncrementViews(ctx context.Context, id string) error {
	return s.active().IncrementViews(ctx, id)
}

// writeErr clasifica la falla de una escritura sin reintentarla contra
// el otro backend: perder un write hacia el backend equivocado sería
// peor que responder 500.
func (s *FallbackStore) writeErr(op string, err error) error {
	if err == nil || errors.Is(err, ErrNotFound) {
		return err
	}
	s.log.WithError(err).Errorf("storage failure on %s", op)
	return err
}
