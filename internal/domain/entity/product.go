package entity

import "github.com/shopspring/decimal"

// Product representa un producto del inventario del negocio activo.
// SKU es único dentro de un negocio; el servidor es quien lo garantiza.
// El dueño no se guarda en la entidad: viaja como etiqueta en las mutaciones.
type Product struct {
	ID       string          `json:"id"` // identificador opaco asignado por el backend
	Name     string          `json:"name"`
	SKU      string          `json:"sku"`
	Price    decimal.Decimal `json:"price"`    // precio de venta, nunca negativo
	Quantity int             `json:"quantity"` // existencias, nunca negativo
}
