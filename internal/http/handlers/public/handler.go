package public

import "github.com/lojaviva/lojaviva-api/internal/provider"

// Handler groups the API endpoints over the service container.
type Handler struct {
	*provider.Container
}

// New creates the API handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
