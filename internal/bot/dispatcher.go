// Package bot decides the scripted reply for a chat turn.
package bot

import (
	"fmt"

	"github.com/supportdesk-ai/ticket-chat-platform/internal/model"
)

// fallbackPersona is used for product keys absent from the registry.
const fallbackPersona = "Support Bot"

// defaultPersonas mirrors the product catalog shipped with the service.
var defaultPersonas = map[string]string{
	"mouse":    "Mouse Bot",
	"keyboard": "Keyboard Bot",
	"monitor":  "Monitor Bot",
	"default":  "Generic Bot",
}

// Outcome is the result of dispatching one turn: either a reply to
// record, or a signal that the caller must ask for a product first.
// NeedsProduct outcomes carry no reply and must cause no side effects.
type Outcome struct {
	Reply        string
	NeedsProduct bool
}

// Dispatcher selects replies from an immutable persona registry.
type Dispatcher struct {
	personas map[string]string
}

// NewDispatcher creates a dispatcher over the default persona registry.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{personas: defaultPersonas}
}

// NewDispatcherWithPersonas creates a dispatcher over a custom registry.
// The map is not copied; callers must treat it as frozen.
func NewDispatcherWithPersonas(personas map[string]string) *Dispatcher {
	return &Dispatcher{personas: personas}
}

// Persona resolves the display name for a product key.
func (d *Dispatcher) Persona(product string) string {
	if name, ok := d.personas[product]; ok {
		return name
	}
	return fallbackPersona
}

// Dispatch decides the reply for a message. It is a pure function of
// its inputs: demo turns greet, product-less turns signal NeedsProduct,
// everything else acknowledges the message verbatim.
func (d *Dispatcher) Dispatch(product, message string, demo bool) Outcome {
	if demo {
		return Outcome{Reply: fmt.Sprintf("👋 Hello! I'm the %s.", d.Persona(product))}
	}
	if product == "" || product == model.DefaultProduct {
		return Outcome{NeedsProduct: true}
	}
	return Outcome{
		Reply: fmt.Sprintf("This is a response from %s regarding your query: '%s'", d.Persona(product), message),
	}
}
