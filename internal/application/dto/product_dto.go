package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-client/internal/domain/entity"
)

// CreateProductRequest entrada del formulario de alta de producto.
type CreateProductRequest struct {
	Name     string          `json:"name"`
	SKU      string          `json:"sku"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// UpdateProductRequest reemplazo completo de un producto identificado.
type UpdateProductRequest struct {
	Name     string          `json:"name"`
	SKU      string          `json:"sku"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// AdjustQuantityRequest delta de existencias (+1 / −1 desde la UI, o libre).
type AdjustQuantityRequest struct {
	Delta int `json:"delta"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	SKU      string          `json:"sku"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	LowStock bool            `json:"lowStock"`
}

// ProductViewResponse vista proyectada: lista filtrada más agregados sobre la
// lista completa.
type ProductViewResponse struct {
	Items             []ProductResponse `json:"items"`
	TotalValue        decimal.Decimal   `json:"totalValue"`
	TotalSKUs         int               `json:"totalSkus"`
	LowStockThreshold int               `json:"lowStockThreshold"`
}

// ToProductResponse convierte la entidad marcando el estado de stock bajo.
func ToProductResponse(p entity.Product, lowStockThreshold int) ProductResponse {
	return ProductResponse{
		ID:       p.ID,
		Name:     p.Name,
		SKU:      p.SKU,
		Price:    p.Price,
		Quantity: p.Quantity,
		LowStock: p.Quantity < lowStockThreshold,
	}
}
