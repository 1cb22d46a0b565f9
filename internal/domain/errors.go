package domain

import "errors"

// Errores de dominio (sin dependencias externas). Cada uno corresponde a una
// condición clasificada que la capa de interfaz traduce a un código estable.
var (
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrUserNotFound       = errors.New("usuario no encontrado o error del servidor")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrDuplicateSKU       = errors.New("el SKU ya existe en este inventario")
	ErrEmptyReport        = errors.New("no hay productos para el reporte")
	ErrSessionExpired     = errors.New("sesión expirada")
	ErrTransport          = errors.New("fallo de red")
	ErrStorageFull        = errors.New("capacidad de almacenamiento excedida")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrNotFound           = errors.New("recurso no encontrado")
)
