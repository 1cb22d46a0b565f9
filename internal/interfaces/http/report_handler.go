package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-client/internal/application/dto"
	"github.com/jhoicas/inventario-client/internal/application/feedback"
	"github.com/jhoicas/inventario-client/internal/application/report"
	"github.com/jhoicas/inventario-client/internal/application/session"
	"github.com/jhoicas/inventario-client/internal/application/store"
	"github.com/jhoicas/inventario-client/internal/domain"
)

// ReportHandler genera y descarga los reportes PDF del inventario.
type ReportHandler struct {
	reports  *report.UseCase
	sessions *session.Manager
	store    *store.Store
	feedback *feedback.Channel
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.UseCase, sessions *session.Manager, st *store.Store, fb *feedback.Channel) *ReportHandler {
	return &ReportHandler{reports: uc, sessions: sessions, store: st, feedback: fb}
}

// Download genera el reporte del tipo pedido sobre el snapshot vigente y lo
// sirve como adjunto. Con selección vacía no se produce documento.
func (h *ReportHandler) Download(c *fiber.Ctx) error {
	kind := report.Kind(c.Params("kind"))
	if !kind.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_KIND", Message: "el tipo de reporte debe ser all o restock",
		})
	}

	business := h.sessions.ActiveBusiness()
	if business == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code: "SESSION_EXPIRED", Message: "sesión expirada",
		})
	}

	res, err := h.reports.Generate(kind, business, h.store.Products(), time.Now())
	if err != nil {
		if errors.Is(err, domain.ErrEmptyReport) {
			h.feedback.Show(emptyMessage(kind), feedback.Error)
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Code: "EMPTY_REPORT", Message: emptyMessage(kind),
			})
		}
		h.feedback.Show("No se pudo generar el reporte", feedback.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "REPORT_FAILED", Message: err.Error(),
		})
	}

	h.feedback.Show(fmt.Sprintf("¡%s descargado!", kind.Label()), feedback.Success)
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", res.Filename))
	return c.Send(res.PDF)
}

// emptyMessage mensaje distinto por tipo cuando la selección queda vacía.
func emptyMessage(kind report.Kind) string {
	if kind == report.KindRestock {
		return "¡No hay artículos que reponer!"
	}
	return "¡Tu inventario está vacío!"
}
