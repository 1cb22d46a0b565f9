// Package restapi implementa los puertos de cuentas y productos contra el
// colaborador REST (backend en la nube). El cliente no reintenta ni
// deduplica: la política de fallos vive en los casos de uso.
package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-client/internal/domain"
	"github.com/jhoicas/inventario-client/internal/domain/entity"
	"github.com/jhoicas/inventario-client/pkg/logger"
)

const requestTimeout = 15 * time.Second

// Client cliente HTTP del colaborador. Implementa session.AccountService y
// store.ProductService.
type Client struct {
	baseURL string
	http    *http.Client
	log     *logger.Logger
}

// New construye el cliente contra la dirección base configurada.
func New(baseURL string, log *logger.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: requestTimeout},
		log:     log,
	}
}

// ── Cuentas ───────────────────────────────────────────────────────────────────

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupRequest struct {
	Name     string `json:"name"`
	Logo     string `json:"logo,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login verifica credenciales contra POST /users/login. 401 clasifica como
// credenciales inválidas; cualquier otro fallo (incluido el de red, donde no
// hay respuesta que inspeccionar) como usuario-no-encontrado-o-error-del-servidor.
func (c *Client) Login(ctx context.Context, email, password string) (*entity.Business, error) {
	resp, err := c.postJSON(ctx, "/users/login", loginRequest{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUserNotFound, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, domain.ErrInvalidCredentials
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: estado %d", domain.ErrUserNotFound, resp.StatusCode)
	}

	var b entity.Business
	if err := json.NewDecoder(resp.Body).Decode(&b); err != nil {
		return nil, fmt.Errorf("%w: respuesta ilegible: %v", domain.ErrUserNotFound, err)
	}
	return &b, nil
}

// Signup crea la cuenta vía POST /users/signup. En fallo devuelve el mensaje
// del servidor si lo hay, o uno genérico.
func (c *Client) Signup(ctx context.Context, b entity.Business, password string) error {
	resp, err := c.postJSON(ctx, "/users/signup", signupRequest{
		Name:     b.Name,
		Logo:     b.Logo,
		Email:    b.Email,
		Password: password,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := readErrorMessage(resp.Body)
		if msg == "" {
			msg = "no se pudo crear la cuenta, inténtalo de nuevo"
		}
		return fmt.Errorf("signup: %s", msg)
	}
	return nil
}

// ── Productos ─────────────────────────────────────────────────────────────────

type createProductRequest struct {
	Name      string          `json:"name"`
	SKU       string          `json:"sku"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	UserEmail string          `json:"userEmail"`
}

// List obtiene el inventario del dueño vía GET /products?email=E. Todo fallo
// se clasifica como transporte: el store lo trata como soft-fail.
func (c *Client) List(ctx context.Context, ownerEmail string) ([]entity.Product, error) {
	u := c.baseURL + "/products?email=" + url.QueryEscape(ownerEmail)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTransport, err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: estado %d", domain.ErrTransport, resp.StatusCode)
	}
	var list []entity.Product
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("%w: respuesta ilegible: %v", domain.ErrTransport, err)
	}
	return list, nil
}

// Create registra un producto vía POST /products, etiquetado con el email del
// dueño. Una respuesta de error del servidor clasifica como SKU duplicado (el
// único conflicto que define el contrato del colaborador).
func (c *Client) Create(ctx context.Context, ownerEmail string, p entity.Product) error {
	resp, err := c.postJSON(ctx, "/products", createProductRequest{
		Name:      p.Name,
		SKU:       p.SKU,
		Price:     p.Price,
		Quantity:  p.Quantity,
		UserEmail: ownerEmail,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w (estado %d)", domain.ErrDuplicateSKU, resp.StatusCode)
	}
	return nil
}

// Update reemplaza el producto completo vía PUT /products/{id}.
func (c *Client) Update(ctx context.Context, p entity.Product) error {
	body, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("restapi: serializar producto: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPut,
		c.baseURL+"/products/"+url.PathEscape(p.ID), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: actualizar producto, estado %d", domain.ErrTransport, resp.StatusCode)
	}
	return nil
}

// Delete elimina el producto vía DELETE /products/{id}.
func (c *Client) Delete(ctx context.Context, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete,
		c.baseURL+"/products/"+url.PathEscape(id), nil)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrTransport, err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: eliminar producto, estado %d", domain.ErrTransport, resp.StatusCode)
	}
	return nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

func (c *Client) postJSON(ctx context.Context, path string, payload any) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.http.Do(req)
}

// readErrorMessage extrae un mensaje legible del cuerpo de error: texto plano
// o un JSON {"message": ...}.
func readErrorMessage(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, 4<<10))
	if err != nil {
		return ""
	}
	var structured struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(raw, &structured) == nil && structured.Message != "" {
		return structured.Message
	}
	return strings.TrimSpace(string(raw))
}
