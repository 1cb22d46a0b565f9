package entity

// Business representa el negocio autenticado (tenant único de la sesión).
// Logo es un data URI opcional generado en el registro; nunca se guarda la
// contraseña del lado del cliente.
type Business struct {
	Name  string `json:"name"`
	Logo  string `json:"logo,omitempty"` // data:image/jpeg;base64,...
	Email string `json:"email"`
}
