package session

import (
	"context"

	"github.com/jhoicas/inventario-client/internal/domain/entity"
)

// AccountService operaciones de cuentas del backend (colaborador REST o
// almacenamiento local). Login clasifica sus fallos con los errores de dominio.
type AccountService interface {
	Login(ctx context.Context, email, password string) (*entity.Business, error)
	Signup(ctx context.Context, b entity.Business, password string) error
}

// RecordStore persistencia del registro de sesión en el dispositivo.
// Load devuelve (nil, nil) cuando no hay registro: la ausencia es un estado
// normal, no un error.
type RecordStore interface {
	Load() (*entity.Business, error)
	Save(b *entity.Business) error
	Clear() error
}

// ProductResetter operaciones del Product Store que el manager dispara en las
// transiciones de identidad: recarga al entrar, limpieza al salir.
type ProductResetter interface {
	Refresh(ctx context.Context) error
	Clear()
}
