package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-client/internal/application/dto"
	"github.com/jhoicas/inventario-client/internal/application/feedback"
	"github.com/jhoicas/inventario-client/internal/application/store"
	"github.com/jhoicas/inventario-client/internal/application/view"
	"github.com/jhoicas/inventario-client/internal/domain"
	"github.com/jhoicas/inventario-client/internal/domain/entity"
)

// ProductHandler maneja la vista de inventario y sus mutaciones. Toda
// mutación exitosa termina con una recarga completa dentro del store.
type ProductHandler struct {
	store    *store.Store
	feedback *feedback.Channel
}

// NewProductHandler construye el handler.
func NewProductHandler(st *store.Store, fb *feedback.Channel) *ProductHandler {
	return &ProductHandler{store: st, feedback: fb}
}

// List devuelve la vista proyectada: lista filtrada por búsqueda y stock bajo
// más los agregados sobre la lista completa. Los filtros son transitorios,
// viajan por query y no se persisten.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	search := c.Query("search")
	lowStock := c.QueryBool("lowStock", false)

	proj := view.Project(h.store.Products(), search, lowStock)

	items := make([]dto.ProductResponse, 0, len(proj.Items))
	for _, p := range proj.Items {
		items = append(items, dto.ToProductResponse(p, view.LowStockThreshold))
	}
	return c.JSON(dto.ProductViewResponse{
		Items:             items,
		TotalValue:        proj.TotalValue,
		TotalSKUs:         proj.TotalSKUs,
		LowStockThreshold: view.LowStockThreshold,
	})
}

// Create registra un producto nuevo con el borrador recibido.
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "cuerpo inválido",
		})
	}
	if in.Name == "" || in.SKU == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "name y sku son requeridos",
		})
	}
	if in.Price.IsNegative() || in.Quantity < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "price y quantity no pueden ser negativos",
		})
	}

	h.store.SetDraft(store.Draft{
		Name: in.Name, SKU: in.SKU,
		Price: in.Price.String(), Quantity: decimal.NewFromInt(int64(in.Quantity)).String(),
	})

	err := h.store.Add(c.Context(), entity.Product{
		Name: in.Name, SKU: in.SKU, Price: in.Price, Quantity: in.Quantity,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSessionExpired):
			h.feedback.Show("Sesión expirada. Inicia sesión de nuevo.", feedback.Error)
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code: "SESSION_EXPIRED", Message: "sesión expirada",
			})
		case errors.Is(err, domain.ErrDuplicateSKU):
			h.feedback.Show("¡El SKU ya existe en tu inventario!", feedback.Error)
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Code: "DUPLICATE_SKU", Message: "el SKU ya existe en tu inventario",
			})
		}
		h.feedback.Show("No se pudo registrar el producto", feedback.Error)
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Code: "MUTATION_FAILED", Message: err.Error(),
		})
	}

	h.feedback.Show("Registrado correctamente", feedback.Success)
	return c.SendStatus(fiber.StatusCreated)
}

// Adjust aplica un delta de existencias. Un resultado negativo es un no-op
// silencioso: no viaja ninguna petición y no hay mensaje de error.
func (h *ProductHandler) Adjust(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.AdjustQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "cuerpo inválido",
		})
	}

	err := h.store.AdjustQuantity(c.Context(), id, in.Delta)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.SendStatus(fiber.StatusNoContent)
		}
		h.feedback.Show("No se pudo ajustar la cantidad", feedback.Error)
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Code: "MUTATION_FAILED", Message: err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusOK)
}

// Update envía el reemplazo completo del producto editado.
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "cuerpo inválido",
		})
	}
	if in.Price.IsNegative() || in.Quantity < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "price y quantity no pueden ser negativos",
		})
	}

	err := h.store.Update(c.Context(), entity.Product{
		ID: id, Name: in.Name, SKU: in.SKU, Price: in.Price, Quantity: in.Quantity,
	})
	if err != nil {
		h.feedback.Show("No se pudo actualizar el producto", feedback.Error)
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Code: "MUTATION_FAILED", Message: err.Error(),
		})
	}

	h.feedback.Show("Actualizado", feedback.Success)
	return c.SendStatus(fiber.StatusOK)
}

// Delete elimina un producto. Exige confirm=true en la query: la puerta de
// confirmación vive antes de que salga cualquier petición al backend.
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	confirmed := c.QueryBool("confirm", false)

	err := h.store.Remove(c.Context(), id, confirmed)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusPreconditionRequired).JSON(dto.ErrorResponse{
				Code: "CONFIRMATION_REQUIRED", Message: "la eliminación requiere confirm=true",
			})
		}
		h.feedback.Show("No se pudo eliminar el artículo", feedback.Error)
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Code: "MUTATION_FAILED", Message: err.Error(),
		})
	}

	h.feedback.Show("Artículo eliminado", feedback.Success)
	return c.SendStatus(fiber.StatusOK)
}
