package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-client/internal/application/feedback"
)

// FeedbackHandler expone el mensaje transitorio vigente para que la UI lo
// consulte. Los mensajes caducan solos; aquí no hay estado propio.
type FeedbackHandler struct {
	channel *feedback.Channel
}

// NewFeedbackHandler construye el handler.
func NewFeedbackHandler(ch *feedback.Channel) *FeedbackHandler {
	return &FeedbackHandler{channel: ch}
}

// Current devuelve el mensaje vigente, o 204 si ya expiró.
func (h *FeedbackHandler) Current(c *fiber.Ctx) error {
	msg := h.channel.Current()
	if msg.Text == "" {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.JSON(msg)
}
