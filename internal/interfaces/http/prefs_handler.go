package http

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-client/internal/application/dto"
)

const defaultTheme = "dark"

// PrefsHandler persiste preferencias de UI locales al dispositivo. Hoy solo
// el tema; independiente de la sesión.
type PrefsHandler struct {
	themePath string
}

// NewPrefsHandler construye el handler sobre el directorio de datos.
func NewPrefsHandler(dataDir string) *PrefsHandler {
	return &PrefsHandler{themePath: filepath.Join(dataDir, "theme")}
}

// GetTheme devuelve el tema persistido, o el tema por defecto.
func (h *PrefsHandler) GetTheme(c *fiber.Ctx) error {
	raw, err := os.ReadFile(h.themePath)
	theme := defaultTheme
	if err == nil {
		if s := strings.TrimSpace(string(raw)); s != "" {
			theme = s
		}
	}
	return c.JSON(dto.ThemeResponse{Theme: theme})
}

// PutTheme guarda la preferencia de tema.
func (h *PrefsHandler) PutTheme(c *fiber.Ctx) error {
	var in dto.ThemeRequest
	if err := c.BodyParser(&in); err != nil || in.Theme == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "theme es requerido",
		})
	}
	if err := os.MkdirAll(filepath.Dir(h.themePath), 0o755); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	if err := os.WriteFile(h.themePath, []byte(in.Theme), 0o600); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(dto.ThemeResponse{Theme: in.Theme})
}
