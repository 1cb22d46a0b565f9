// Package feedback implementa los mensajes transitorios de estado para el
// usuario: cada mensaje se autodestruye pasado el TTL y una nueva llamada
// antes de expirar reemplaza al anterior y reinicia el temporizador
// (último en escribir gana, sin cola).
package feedback

import (
	"sync"
	"time"
)

// DefaultTTL tiempo de vida de un mensaje antes de autolimpiarse.
const DefaultTTL = 3 * time.Second

// Kind clasifica el mensaje para la UI.
type Kind string

const (
	Success Kind = "success"
	Error   Kind = "error"
)

// Message mensaje transitorio visible. El valor cero significa "sin mensaje".
type Message struct {
	Text string `json:"text"`
	Kind Kind   `json:"kind"`
}

// Channel canal de feedback con expiración automática.
type Channel struct {
	mu  sync.Mutex
	ttl time.Duration
	cur Message
	seq uint64 // invalida temporizadores de mensajes ya reemplazados
}

// New construye el canal. Con ttl <= 0 se usa DefaultTTL.
func New(ttl time.Duration) *Channel {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Channel{ttl: ttl}
}

// Show publica un mensaje y programa su limpieza. Reemplaza cualquier mensaje
// pendiente y reinicia la ventana de expiración.
func (c *Channel) Show(text string, kind Kind) {
	c.mu.Lock()
	c.seq++
	seq := c.seq
	c.cur = Message{Text: text, Kind: kind}
	c.mu.Unlock()

	time.AfterFunc(c.ttl, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.seq == seq {
			c.cur = Message{}
		}
	})
}

// Current devuelve el mensaje vigente, o el valor cero si no hay ninguno.
func (c *Channel) Current() Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cur
}
