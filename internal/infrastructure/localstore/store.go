// Package localstore implementa la variante offline: cuentas y productos
// viven únicamente en un archivo JSON del dispositivo, detrás de los mismos
// puertos que el colaborador REST. Las contraseñas se guardan como hash
// bcrypt; los productos reciben IDs uuid.
package localstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/inventario-client/internal/domain"
	"github.com/jhoicas/inventario-client/internal/domain/entity"
	"github.com/jhoicas/inventario-client/pkg/logger"
)

// DefaultMaxBytes presupuesto del archivo local. Un logo desmedido u otro
// crecimiento por encima de esto clasifica como almacenamiento excedido.
const DefaultMaxBytes = 1 << 20

type account struct {
	Name         string `json:"name"`
	Logo         string `json:"logo,omitempty"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
}

type fileData struct {
	Accounts []account                   `json:"accounts"`
	Products map[string][]entity.Product `json:"products"` // email del dueño → inventario
}

// Store backend local. Implementa session.AccountService y store.ProductService.
type Store struct {
	mu       sync.Mutex
	path     string
	maxBytes int64
	log      *logger.Logger
	data     fileData
}

// Open carga (o inicia) el archivo local. maxBytes <= 0 usa DefaultMaxBytes.
func Open(path string, maxBytes int64, log *logger.Logger) (*Store, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	s := &Store{path: path, maxBytes: maxBytes, log: log}
	s.data.Products = map[string][]entity.Product{}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("localstore: leer %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		return nil, fmt.Errorf("localstore: archivo corrupto %s: %w", path, err)
	}
	if s.data.Products == nil {
		s.data.Products = map[string][]entity.Product{}
	}
	return s, nil
}

// ── Cuentas ───────────────────────────────────────────────────────────────────

// Signup registra la cuenta con hash bcrypt de la contraseña. Email duplicado
// y archivo por encima del presupuesto se rechazan sin dejar estado a medias.
func (s *Store) Signup(_ context.Context, b entity.Business, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := normalizeEmail(b.Email)
	for _, a := range s.data.Accounts {
		if normalizeEmail(a.Email) == email {
			return domain.ErrEmailAlreadyExists
		}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("localstore: hashear contraseña: %w", err)
	}

	s.data.Accounts = append(s.data.Accounts, account{
		Name:         b.Name,
		Logo:         b.Logo,
		Email:        b.Email,
		PasswordHash: string(hash),
	})
	if err := s.persistLocked(); err != nil {
		s.data.Accounts = s.data.Accounts[:len(s.data.Accounts)-1]
		return err
	}
	return nil
}

// Login compara la contraseña contra el hash guardado.
func (s *Store) Login(_ context.Context, email, password string) (*entity.Business, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.data.Accounts {
		if normalizeEmail(a.Email) != normalizeEmail(email) {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) != nil {
			return nil, domain.ErrInvalidCredentials
		}
		return &entity.Business{Name: a.Name, Logo: a.Logo, Email: a.Email}, nil
	}
	return nil, domain.ErrUserNotFound
}

// ── Productos ─────────────────────────────────────────────────────────────────

// List devuelve una copia del inventario del dueño.
func (s *Store) List(_ context.Context, ownerEmail string) ([]entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	src := s.data.Products[normalizeEmail(ownerEmail)]
	out := make([]entity.Product, len(src))
	copy(out, src)
	return out, nil
}

// Create agrega el producto con un ID nuevo. SKU repetido dentro del mismo
// dueño se rechaza.
func (s *Store) Create(_ context.Context, ownerEmail string, p entity.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := normalizeEmail(ownerEmail)
	for _, existing := range s.data.Products[key] {
		if strings.EqualFold(existing.SKU, p.SKU) {
			return domain.ErrDuplicateSKU
		}
	}
	p.ID = uuid.NewString()
	s.data.Products[key] = append(s.data.Products[key], p)
	if err := s.persistLocked(); err != nil {
		s.data.Products[key] = s.data.Products[key][:len(s.data.Products[key])-1]
		return err
	}
	return nil
}

// Update reemplaza el producto identificado por su ID.
func (s *Store) Update(_ context.Context, p entity.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, list := range s.data.Products {
		for i := range list {
			if list[i].ID == p.ID {
				prev := list[i]
				list[i] = p
				if err := s.persistLocked(); err != nil {
					list[i] = prev
					return err
				}
				s.data.Products[key] = list
				return nil
			}
		}
	}
	return fmt.Errorf("%w: producto %s", domain.ErrNotFound, p.ID)
}

// Delete elimina el producto identificado por su ID.
func (s *Store) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, list := range s.data.Products {
		for i := range list {
			if list[i].ID == id {
				s.data.Products[key] = append(list[:i:i], list[i+1:]...)
				if err := s.persistLocked(); err != nil {
					s.data.Products[key] = list
					return err
				}
				return nil
			}
		}
	}
	return fmt.Errorf("%w: producto %s", domain.ErrNotFound, id)
}

// ── persistencia ──────────────────────────────────────────────────────────────

func (s *Store) persistLocked() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("localstore: serializar: %w", err)
	}
	if int64(len(raw)) > s.maxBytes {
		return fmt.Errorf("%w: %d bytes supera el límite de %d", domain.ErrStorageFull, len(raw), s.maxBytes)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("localstore: crear directorio: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("localstore: escribir %s: %w", s.path, err)
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
