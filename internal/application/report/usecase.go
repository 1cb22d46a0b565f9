// Package report genera los reportes descargables del inventario a partir de
// un snapshot de productos: lista completa o solo lo pendiente de reposición.
package report

import (
	"fmt"
	"time"

	"github.com/jhoicas/inventario-client/internal/application/view"
	"github.com/jhoicas/inventario-client/internal/domain"
	"github.com/jhoicas/inventario-client/internal/domain/entity"
)

// Kind tipo de reporte solicitado.
type Kind string

const (
	KindAll     Kind = "all"
	KindRestock Kind = "restock"
)

// Valid indica si el tipo de reporte es conocido.
func (k Kind) Valid() bool { return k == KindAll || k == KindRestock }

// Label etiqueta visible del tipo de reporte (subtítulo del documento).
func (k Kind) Label() string {
	if k == KindRestock {
		return "Reposición de stock"
	}
	return "Inventario completo"
}

// Document snapshot listo para renderizar: título, subtítulo, fecha y filas.
type Document struct {
	BusinessName string
	Subtitle     string
	GeneratedAt  time.Time
	Items        []entity.Product
}

// Renderer serializa un Document a bytes PDF. Implementado en infraestructura.
type Renderer interface {
	Render(doc Document) ([]byte, error)
}

// Result reporte generado con su nombre de archivo de descarga.
type Result struct {
	Filename string
	PDF      []byte
}

// UseCase caso de uso de generación de reportes.
type UseCase struct {
	renderer Renderer
}

// NewUseCase construye el caso de uso.
func NewUseCase(renderer Renderer) *UseCase {
	return &UseCase{renderer: renderer}
}

// Generate selecciona los productos según el tipo y renderiza el documento.
// Con selección vacía no se produce documento: retorna ErrEmptyReport con un
// mensaje distinto por tipo.
func (uc *UseCase) Generate(kind Kind, business *entity.Business, products []entity.Product, now time.Time) (*Result, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: tipo de reporte desconocido %q", domain.ErrInvalidInput, kind)
	}
	if business == nil {
		return nil, domain.ErrSessionExpired
	}

	items := products
	if kind == KindRestock {
		items = view.Filter(products, "", true)
	}
	if len(items) == 0 {
		if kind == KindRestock {
			return nil, fmt.Errorf("%w: no hay artículos que reponer", domain.ErrEmptyReport)
		}
		return nil, fmt.Errorf("%w: el inventario está vacío", domain.ErrEmptyReport)
	}

	pdf, err := uc.renderer.Render(Document{
		BusinessName: business.Name,
		Subtitle:     kind.Label(),
		GeneratedAt:  now,
		Items:        items,
	})
	if err != nil {
		return nil, fmt.Errorf("report: renderizar documento: %w", err)
	}

	return &Result{
		Filename: fmt.Sprintf("%s_%s_Report.pdf", business.Name, kind),
		PDF:      pdf,
	}, nil
}
