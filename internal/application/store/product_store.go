// Package store mantiene la lista de productos del negocio activo. La lista
// no es un caché: es el reflejo del último fetch, y se reemplaza completa en
// cada sincronización. Contrato de invalidación: la postcondición de toda
// mutación exitosa es una recarga completa desde el backend.
package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhoicas/inventario-client/internal/domain"
	"github.com/jhoicas/inventario-client/internal/domain/entity"
	"github.com/jhoicas/inventario-client/pkg/logger"
)

// Draft borrador del formulario de alta de producto. Se conserva cuando el
// alta falla para que el usuario pueda corregirlo.
type Draft struct {
	Name     string
	SKU      string
	Price    string
	Quantity string
}

// Store almacén de productos del negocio activo.
type Store struct {
	mu       sync.Mutex
	svc      ProductService
	identity Identity
	log      *logger.Logger

	products []entity.Product
	draft    Draft
	editing  *entity.Product
}

// New construye el store. La identidad se enlaza con SetIdentity después de
// construir el session.Manager (dependencia mutua entre ambos).
func New(svc ProductService, log *logger.Logger) *Store {
	return &Store{svc: svc, log: log}
}

// SetIdentity enlaza la fuente de identidad de sesión.
func (s *Store) SetIdentity(id Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = id
}

// Refresh recarga la lista completa desde el backend. Sin sesión activa deja
// la lista vacía sin contactar al backend. Un fallo de transporte conserva la
// lista anterior y solo se registra en el log: la UI no se bloquea por un
// problema transitorio de red.
func (s *Store) Refresh(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refreshLocked(ctx)
}

func (s *Store) refreshLocked(ctx context.Context) error {
	email := s.ownerEmailLocked()
	if email == "" {
		s.products = nil
		return nil
	}
	list, err := s.svc.List(ctx, email)
	if err != nil {
		s.log.Warn().Err(err).Str("owner", email).Msg("fetch de productos falló, se conserva la lista anterior")
		return nil
	}
	s.products = list
	return nil
}

// Add registra el borrador actual como producto nuevo. Requiere sesión
// activa. En éxito limpia el borrador y recarga; en fallo (p. ej. SKU
// duplicado) el borrador queda intacto.
func (s *Store) Add(ctx context.Context, p entity.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := s.ownerEmailLocked()
	if email == "" {
		return domain.ErrSessionExpired
	}
	if err := s.svc.Create(ctx, email, p); err != nil {
		return err
	}
	s.draft = Draft{}
	return s.refreshLocked(ctx)
}

// AdjustQuantity aplica un delta a la cantidad de un producto. Si el
// resultado sería negativo no se envía ninguna petición y la cantidad
// mostrada no cambia. En éxito envía la actualización completa y recarga.
func (s *Store) AdjustQuantity(ctx context.Context, productID string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var target *entity.Product
	for i := range s.products {
		if s.products[i].ID == productID {
			target = &s.products[i]
			break
		}
	}
	if target == nil {
		return fmt.Errorf("%w: producto %s no está en la lista", domain.ErrInvalidInput, productID)
	}
	newQty := target.Quantity + delta
	if newQty < 0 {
		return fmt.Errorf("%w: la cantidad no puede quedar negativa", domain.ErrInvalidInput)
	}

	updated := *target
	updated.Quantity = newQty
	if err := s.svc.Update(ctx, updated); err != nil {
		return err
	}
	return s.refreshLocked(ctx)
}

// Update envía el reemplazo completo del producto editado. En éxito limpia el
// estado de edición en curso y recarga.
func (s *Store) Update(ctx context.Context, edited entity.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if edited.ID == "" {
		return fmt.Errorf("%w: id requerido", domain.ErrInvalidInput)
	}
	if err := s.svc.Update(ctx, edited); err != nil {
		return err
	}
	s.editing = nil
	return s.refreshLocked(ctx)
}

// Remove elimina un producto. Exige confirmación explícita: sin ella no se
// envía ninguna petición. En éxito recarga.
func (s *Store) Remove(ctx context.Context, id string, confirmed bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !confirmed {
		return fmt.Errorf("%w: eliminación sin confirmar", domain.ErrInvalidInput)
	}
	if err := s.svc.Delete(ctx, id); err != nil {
		return err
	}
	return s.refreshLocked(ctx)
}

// Products devuelve una copia de la lista vigente.
func (s *Store) Products() []entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Clear vacía lista, borrador y edición en curso. Lo invoca el session.Manager
// en el logout, en la misma transición que borra la identidad: el contenido
// del store solo es válido para el negocio activo.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = nil
	s.draft = Draft{}
	s.editing = nil
}

// SetDraft guarda el borrador del formulario de alta.
func (s *Store) SetDraft(d Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = d
}

// Draft devuelve el borrador vigente.
func (s *Store) Draft() Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// BeginEdit marca un producto como edición en curso.
func (s *Store) BeginEdit(p entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editing = &p
}

// CancelEdit descarta la edición en curso.
func (s *Store) CancelEdit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editing = nil
}

// Editing devuelve el producto en edición, o nil si no hay ninguno.
func (s *Store) Editing() *entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.editing == nil {
		return nil
	}
	p := *s.editing
	return &p
}

func (s *Store) ownerEmailLocked() string {
	if s.identity == nil {
		return ""
	}
	if b := s.identity.ActiveBusiness(); b != nil {
		return b.Email
	}
	return ""
}
