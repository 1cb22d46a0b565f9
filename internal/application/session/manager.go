// Package session administra la identidad del negocio autenticado: un único
// negocio activo por dispositivo, persistido entre arranques. Invariante:
// toda transición de identidad (login/logout) limpia o recarga el Product
// Store en la misma operación, para que nunca se muestre inventario de un
// negocio con la identidad de otro.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhoicas/inventario-client/internal/domain"
	"github.com/jhoicas/inventario-client/internal/domain/entity"
	"github.com/jhoicas/inventario-client/pkg/imaging"
	"github.com/jhoicas/inventario-client/pkg/logger"
)

// Parámetros del thumbnail del logo enviados en el registro.
const (
	logoMaxWidth    = 150
	logoJPEGQuality = 70
)

// Manager dueño de la identidad de sesión.
type Manager struct {
	mu       sync.Mutex
	accounts AccountService
	records  RecordStore
	products ProductResetter
	log      *logger.Logger
	active   *entity.Business
}

// NewManager construye el manager.
func NewManager(accounts AccountService, records RecordStore, products ProductResetter, log *logger.Logger) *Manager {
	return &Manager{accounts: accounts, records: records, products: products, log: log}
}

// Restore carga el registro de sesión persistido al arrancar. Si existe,
// activa la sesión y dispara el fetch de productos; si no existe, deja la
// sesión inactiva sin error. Un registro expirado o corrupto se trata como
// ausente (se registra en el log).
func (m *Manager) Restore(ctx context.Context) {
	rec, err := m.records.Load()
	if err != nil {
		m.log.Warn().Err(err).Msg("registro de sesión no restaurable, se inicia sin sesión")
		return
	}
	if rec == nil {
		return
	}

	m.mu.Lock()
	m.active = rec
	m.mu.Unlock()

	m.log.Info().Str("business", rec.Name).Msg("sesión restaurada")
	_ = m.products.Refresh(ctx)
}

// Login delega la verificación de credenciales al backend. En éxito reemplaza
// el registro persistido, activa la sesión y recarga productos. En fallo el
// registro persistido queda intacto y el error llega clasificado
// (ErrInvalidCredentials o ErrUserNotFound).
func (m *Manager) Login(ctx context.Context, email, password string) error {
	b, err := m.accounts.Login(ctx, email, password)
	if err != nil {
		return err
	}

	if err := m.records.Save(b); err != nil {
		return fmt.Errorf("session: persistir registro: %w", err)
	}

	m.mu.Lock()
	m.active = b
	m.mu.Unlock()

	m.log.Info().Str("business", b.Name).Msg("sesión iniciada")
	return m.products.Refresh(ctx)
}

// Logout borra el registro persistido, desactiva la sesión y vacía el
// Product Store en la misma transición. Nunca falla: un error al borrar el
// archivo solo se registra.
func (m *Manager) Logout() {
	if err := m.records.Clear(); err != nil {
		m.log.Warn().Err(err).Msg("no se pudo borrar el registro de sesión")
	}

	m.mu.Lock()
	m.active = nil
	m.mu.Unlock()

	m.products.Clear()
	m.log.Info().Msg("sesión cerrada")
}

// Signup crea la cuenta del negocio. Si hay logo, primero lo reduce a un
// ancho fijo y lo codifica como data URI JPEG. En éxito el llamador vuelve a
// la vista de login; el manager no activa la sesión.
func (m *Manager) Signup(ctx context.Context, name, email, password string, logo []byte) error {
	b := entity.Business{Name: name, Email: email}
	if len(logo) > 0 {
		dataURI, err := imaging.Downsample(logo, logoMaxWidth, logoJPEGQuality)
		if err != nil {
			return fmt.Errorf("%w: logo no procesable", domain.ErrInvalidInput)
		}
		b.Logo = dataURI
	}
	return m.accounts.Signup(ctx, b, password)
}

// ActiveBusiness devuelve una copia del negocio activo, o nil sin sesión.
func (m *Manager) ActiveBusiness() *entity.Business {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.active == nil {
		return nil
	}
	b := *m.active
	return &b
}

// IsLoggedIn indica si hay una sesión activa.
func (m *Manager) IsLoggedIn() bool {
	return m.ActiveBusiness() != nil
}
