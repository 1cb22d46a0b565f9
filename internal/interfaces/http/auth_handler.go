package http

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-client/internal/application/dto"
	"github.com/jhoicas/inventario-client/internal/application/feedback"
	"github.com/jhoicas/inventario-client/internal/application/session"
	"github.com/jhoicas/inventario-client/internal/domain"
)

// AuthHandler maneja registro, login, logout y consulta de sesión.
type AuthHandler struct {
	sessions *session.Manager
	feedback *feedback.Channel
}

// NewAuthHandler construye el handler.
func NewAuthHandler(sessions *session.Manager, fb *feedback.Channel) *AuthHandler {
	return &AuthHandler{sessions: sessions, feedback: fb}
}

// Signup crea la cuenta del negocio. Acepta multipart con el logo opcional;
// la imagen se reduce antes de enviarse al backend. En éxito la UI vuelve a
// la vista de login.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	name := c.FormValue("name")
	email := c.FormValue("email")
	password := c.FormValue("password")
	if name == "" || email == "" || password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "name, email y password son requeridos",
		})
	}

	var logo []byte
	if fh, err := c.FormFile("logo"); err == nil && fh != nil {
		f, err := fh.Open()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "INVALID_LOGO", Message: "no se pudo leer el logo",
			})
		}
		logo, err = io.ReadAll(f)
		f.Close()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "INVALID_LOGO", Message: "no se pudo leer el logo",
			})
		}
	}

	if err := h.sessions.Signup(c.Context(), name, email, password, logo); err != nil {
		h.feedback.Show(err.Error(), feedback.Error)
		switch {
		case errors.Is(err, domain.ErrEmailAlreadyExists):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Code: "EMAIL_EXISTS", Message: err.Error(),
			})
		case errors.Is(err, domain.ErrStorageFull):
			return c.Status(fiber.StatusRequestEntityTooLarge).JSON(dto.ErrorResponse{
				Code: "STORAGE_FULL", Message: err.Error(),
			})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "INVALID_LOGO", Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Code: "SIGNUP_FAILED", Message: err.Error(),
		})
	}

	h.feedback.Show("¡Cuenta creada!", feedback.Success)
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "cuenta creada"})
}

// Login verifica credenciales. El fallo llega clasificado: contraseña
// incorrecta vs usuario no encontrado o error del servidor; en ninguno de los
// dos se toca el registro de sesión persistido.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "cuerpo inválido",
		})
	}

	if err := h.sessions.Login(c.Context(), in.Email, in.Password); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			h.feedback.Show("¡Contraseña incorrecta!", feedback.Error)
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code: "INVALID_CREDENTIALS", Message: "contraseña incorrecta",
			})
		default:
			h.feedback.Show("Usuario no encontrado o error del servidor", feedback.Error)
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
				Code: "USER_NOT_FOUND_OR_SERVER_ERROR", Message: "usuario no encontrado o error del servidor",
			})
		}
	}

	b := h.sessions.ActiveBusiness()
	return c.JSON(dto.BusinessResponse{Name: b.Name, Logo: b.Logo, Email: b.Email})
}

// Logout cierra la sesión y vacía el inventario mostrado en la misma
// transición. Siempre responde 204.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.sessions.Logout()
	return c.SendStatus(fiber.StatusNoContent)
}

// Session devuelve el negocio activo, o 204 si no hay sesión.
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	b := h.sessions.ActiveBusiness()
	if b == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.JSON(dto.BusinessResponse{Name: b.Name, Logo: b.Logo, Email: b.Email})
}
