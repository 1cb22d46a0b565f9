package dto

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// BusinessResponse identidad del negocio activo.
type BusinessResponse struct {
	Name  string `json:"name"`
	Logo  string `json:"logo,omitempty"`
	Email string `json:"email"`
}

// ThemeRequest preferencia de tema de la UI.
type ThemeRequest struct {
	Theme string `json:"theme"`
}

// ThemeResponse preferencia de tema persistida.
type ThemeResponse struct {
	Theme string `json:"theme"`
}
