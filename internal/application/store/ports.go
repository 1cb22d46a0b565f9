package store

import (
	"context"

	"github.com/jhoicas/inventario-client/internal/domain/entity"
)

// ProductService operaciones de productos del backend (colaborador REST o
// almacenamiento local). Toda mutación viaja etiquetada con el email del dueño.
type ProductService interface {
	List(ctx context.Context, ownerEmail string) ([]entity.Product, error)
	Create(ctx context.Context, ownerEmail string, p entity.Product) error
	Update(ctx context.Context, p entity.Product) error
	Delete(ctx context.Context, id string) error
}

// Identity expone la identidad activa de la sesión. Lo implementa el
// session.Manager; nil significa sesión inactiva.
type Identity interface {
	ActiveBusiness() *entity.Business
}
