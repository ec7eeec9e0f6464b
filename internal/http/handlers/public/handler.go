package public

import "github.com/lumina-next/internal/provider"

// Handler serves the storefront API: catalog, cart, checkout, and the
// post-purchase order lookup.
type Handler struct {
	*provider.Container
}

// New creates the storefront handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
