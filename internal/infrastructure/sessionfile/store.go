// Package sessionfile persiste el registro de sesión activo como un token
// firmado en un archivo del dispositivo. La ausencia del archivo es un estado
// normal; un token expirado o manipulado clasifica como sesión expirada.
package sessionfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jhoicas/inventario-client/internal/domain"
	"github.com/jhoicas/inventario-client/internal/domain/entity"
	"github.com/jhoicas/inventario-client/pkg/sessiontoken"
)

// Store persistencia del registro de sesión. Implementa session.RecordStore.
type Store struct {
	path   string
	secret string
	issuer string
	ttl    time.Duration
}

// New construye el store sobre la ruta dada.
func New(path, secret, issuer string, ttl time.Duration) *Store {
	return &Store{path: path, secret: secret, issuer: issuer, ttl: ttl}
}

// Load lee y valida el registro. Sin archivo devuelve (nil, nil). Un token
// expirado o inválido devuelve ErrSessionExpired para que el manager lo trate
// como ausente y lo registre.
func (s *Store) Load() (*entity.Business, error) {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("sessionfile: leer %s: %w", s.path, err)
	}

	name, logo, email, err := sessiontoken.Parse(s.secret, strings.TrimSpace(string(raw)))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrSessionExpired
		}
		return nil, fmt.Errorf("%w: token no válido", domain.ErrSessionExpired)
	}
	return &entity.Business{Name: name, Logo: logo, Email: email}, nil
}

// Save reemplaza el registro persistido. La escritura es síncrona: al volver,
// el registro ya está en disco.
func (s *Store) Save(b *entity.Business) error {
	if b == nil {
		return fmt.Errorf("sessionfile: negocio nil")
	}
	token, err := sessiontoken.Generate(s.secret, b.Name, b.Logo, b.Email, s.issuer, s.ttl)
	if err != nil {
		return fmt.Errorf("sessionfile: firmar registro: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("sessionfile: crear directorio: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("sessionfile: escribir %s: %w", s.path, err)
	}
	return nil
}

// Clear borra el registro; que no exista no es un error.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("sessionfile: borrar %s: %w", s.path, err)
	}
	return nil
}
