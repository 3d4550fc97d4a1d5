package auth

import (
	"net/http"
	"time"

	"github.com/saulo-duarte/roadmap-lambda/internal/config"
)

type Handler struct {
	cookieDomain string
}

func NewHandler(cookieDomain string) *Handler {
	return &Handler{cookieDomain: cookieDomain}
}

func (h *Handler) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     cookieName,
		Value:    value,
		Path:     "/",
		Domain:   h.cookieDomain,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	}
}

// CreateSession stores a valid bearer token in the HttpOnly cookie read by
// AuthMiddleware. The cookie expires with the token.
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	token := bearerToken(r)
	if token == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	claims, err := ValidateJWT(token)
	if err != nil {
		log.WithError(err).Warn("Rejected token for session")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	maxAge := 0
	if claims.ExpiresAt != nil {
		maxAge = int(time.Until(claims.ExpiresAt.Time).Seconds())
	}
	http.SetCookie(w, h.cookie(token, maxAge))

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "session created",
	})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.cookie("", -1))

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "logout successful",
	})
}
