// apps/solver/internal/httpserver/auth.go
//
// Session tokens: an HS256 JWT whose "sid" claim names the one session the
// bearer may read or drive. Issued by POST /solver/new, presented either as
// "Authorization: Bearer <token>" or via the session cookie.

package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const sessionCookieName = "wordle_solver"

// ctxSessionKey is the context key type for the authorized session ID.
type ctxSessionKey struct{}

var errBadToken = errors.New("invalid token")

// signSessionToken creates an HS256 JWT for sessionID expiring after ttl.
func (s *Server) signSessionToken(sessionID string, ttl time.Duration) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(ttl)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": sessionID,
		"exp": exp.Unix(),
		"iat": now.Unix(),
	})
	ss, err := t.SignedString([]byte(s.opts.JWTSecret))
	return ss, exp, err
}

// parseSessionToken validates a token and returns its session ID.
func (s *Server) parseSessionToken(tok string) (string, error) {
	claims := jwt.MapClaims{}
	t, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.opts.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !t.Valid {
		return "", errBadToken
	}
	sid, _ := claims["sid"].(string)
	if sid == "" {
		return "", errBadToken
	}
	return sid, nil
}

// requireSession enforces a valid session token and injects its session ID
// into the request context.
func (s *Server) requireSession() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tok := bearerOrCookie(r)
			if tok == "" {
				respondError(w, r, http.StatusUnauthorized, "unauthorized", "")
				return
			}
			sid, err := s.parseSessionToken(tok)
			if err != nil {
				respondError(w, r, http.StatusUnauthorized, "invalid_token", "")
				return
			}
			ctx := context.WithValue(r.Context(), ctxSessionKey{}, sid)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// authorizedSession returns the session ID carried by the request token.
func authorizedSession(r *http.Request) string {
	sid, _ := r.Context().Value(ctxSessionKey{}).(string)
	return sid
}

// setSessionCookie writes the token cookie.
func setSessionCookie(w http.ResponseWriter, token string, exp time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  exp,
	})
}

// clearSessionCookie deletes the token cookie.
func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

// bearerOrCookie extracts a bearer token from Authorization header or cookie.
func bearerOrCookie(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	if c, err := r.Cookie(sessionCookieName); err == nil {
		return c.Value
	}
	return ""
}
