package middlewares

import (
	"net/http"

	"github.com/rs/cors"
)

// Cors allows the configured origins. Credentials are only allowed for an
// explicit origin list; browsers reject them alongside a wildcard.
func Cors(allowedOrigins []string) func(http.Handler) http.Handler {
	wildcard := len(allowedOrigins) == 0
	for _, o := range allowedOrigins {
		if o == "*" {
			wildcard = true
		}
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		ExposedHeaders:   []string{"Content-Disposition", "X-Roadmap-Id", "X-Request-Id"},
		AllowCredentials: !wildcard,
		MaxAge:           300,
	})
	return c.Handler
}
