package sessiontoken

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más los datos del negocio activo.
// El registro de sesión persistido es este token firmado: si alguien edita el
// archivo a mano, la firma deja de validar y la sesión se trata como ausente.
type Claims struct {
	jwt.RegisteredClaims
	Name  string `json:"name"`
	Logo  string `json:"logo,omitempty"`
	Email string `json:"email"`
}

// Generate genera un token firmado con los datos del negocio y vigencia ttl.
func Generate(secret, name, logo, email, issuer string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("sessiontoken: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Name:  name,
		Logo:  logo,
		Email: email,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve name, logo y email del negocio.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta;
// la expiración se puede distinguir con errors.Is(err, jwt.ErrTokenExpired).
func Parse(secret, tokenString string) (name, logo, email string, err error) {
	if secret == "" {
		return "", "", "", fmt.Errorf("sessiontoken: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", "", "", err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", "", "", fmt.Errorf("claims inválidos")
	}
	return claims.Name, claims.Logo, claims.Email, nil
}
