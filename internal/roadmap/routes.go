package roadmap

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/saulo-duarte/roadmap-lambda/internal/archive"
	"github.com/saulo-duarte/roadmap-lambda/internal/auth"
)

// Routes mounts generation and, when archived is non-nil, the authenticated
// archive endpoints under the same prefix.
func Routes(h *Handler, archived *archive.Handler) http.Handler {
	r := chi.NewRouter()

	r.With(auth.OptionalAuth).Post("/", h.Create)

	if archived != nil {
		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)

			r.Get("/", archived.List)
			r.Get("/{id}", archived.Get)
			r.Delete("/{id}", archived.Delete)
		})
	}
	return r
}
