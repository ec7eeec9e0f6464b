package admin

import "github.com/lumina-next/internal/provider"

// Handler serves the admin API: order management and the dashboard.
type Handler struct {
	*provider.Container
}

// New creates the admin handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
