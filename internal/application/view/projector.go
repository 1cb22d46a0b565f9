// Package view deriva el estado de presentación a partir de la lista de
// productos más los filtros transitorios de la UI. Todo es derivación pura:
// ningún filtro toca los datos almacenados.
package view

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-client/internal/domain/entity"
)

// LowStockThreshold cantidad por debajo de la cual un producto se considera
// pendiente de reposición.
const LowStockThreshold = 5

// Projection vista derivada para la UI. Items es la lista filtrada; los
// agregados se calculan siempre sobre la lista completa sin filtrar.
type Projection struct {
	Items      []entity.Product
	TotalValue decimal.Decimal
	TotalSKUs  int
}

// Project deriva la vista completa en una sola pasada de filtrado más los agregados.
func Project(products []entity.Product, term string, lowStockOnly bool) Projection {
	return Projection{
		Items:      Filter(products, term, lowStockOnly),
		TotalValue: TotalValue(products),
		TotalSKUs:  TotalSKUCount(products),
	}
}

// Filter devuelve los productos cuyo nombre o SKU contienen term (sin
// distinguir mayúsculas) y, si lowStockOnly, con cantidad bajo el umbral.
func Filter(products []entity.Product, term string, lowStockOnly bool) []entity.Product {
	needle := strings.ToLower(term)
	out := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if !matchesSearch(p, needle) {
			continue
		}
		if lowStockOnly && p.Quantity >= LowStockThreshold {
			continue
		}
		out = append(out, p)
	}
	return out
}

// TotalValue suma precio×cantidad sobre la lista completa (nunca la filtrada).
func TotalValue(products []entity.Product) decimal.Decimal {
	total := decimal.Zero
	for _, p := range products {
		total = total.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Quantity))))
	}
	return total
}

// TotalSKUCount cantidad de referencias registradas (lista sin filtrar).
func TotalSKUCount(products []entity.Product) int {
	return len(products)
}

func matchesSearch(p entity.Product, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), needle) ||
		strings.Contains(strings.ToLower(p.SKU), needle)
}
