// Package mockmode persists the per-client mock-data flag in a cookie so the
// API routes can serve fixed data without Square credentials.
package mockmode

import (
	"net/http"
	"time"
)

const (
	// CookieName is the cookie carrying the mock-mode flag.
	CookieName = "menuboard-mock-mode"

	cookieMaxAge = int(365 * 24 * time.Hour / time.Second)
)

// Enabled resolves the mock-mode flag for one request: the cookie when
// present, otherwise the configured fallback. Handlers resolve this once and
// pass the result down.
func Enabled(r *http.Request, fallback bool) bool {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return fallback
	}
	return cookie.Value == "true"
}

// Write sets the mock-mode cookie for a year, scoped to the whole site.
func Write(w http.ResponseWriter, enabled bool) {
	value := "false"
	if enabled {
		value = "true"
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   cookieMaxAge,
		SameSite: http.SameSiteLaxMode,
	})
}
