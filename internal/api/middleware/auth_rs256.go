package middleware

import (
	"crypto/rsa"
	"net/http"
	"strings"

	"github.com/gardenlawn/shopfeed/internal/api/auth"
)

// AuthMiddleware guards admin endpoints with RS256 bearer tokens carrying
// a role claim.
type AuthMiddleware struct {
	Env       string
	Role      string // required role, e.g. auth.RoleAdmin
	PublicKey *rsa.PublicKey
	Next      http.Handler
}

func (m AuthMiddleware) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if m.Next == nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	authz := strings.TrimSpace(r.Header.Get("Authorization"))

	// In dev, requests without a token pass through so local tooling does
	// not need key material. A token, if sent, is still validated.
	if strings.EqualFold(strings.TrimSpace(m.Env), "dev") && authz == "" {
		m.Next.ServeHTTP(w, r)
		return
	}

	if !strings.HasPrefix(authz, "Bearer ") {
		unauthorized(w, "missing bearer token")
		return
	}

	tokenString := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer "))
	if tokenString == "" {
		unauthorized(w, "empty bearer token")
		return
	}

	claims, err := auth.ParseAndValidateRS256(tokenString, m.PublicKey)
	if err != nil {
		unauthorized(w, "invalid token")
		return
	}

	if m.Role != "" && claims.Role != m.Role {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":"forbidden","message":"insufficient role"}`))
		return
	}

	m.Next.ServeHTTP(w, r)
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"unauthorized","message":"` + msg + `"}`))
}
