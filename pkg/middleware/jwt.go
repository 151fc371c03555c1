// Package middleware authenticates HTTP requests carrying HMAC-signed
// bearer tokens and exposes the token subject on the request context.
package middleware

import (
	"context"
	"net/http"
	"regexp"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var bearerRegex = regexp.MustCompile(`^Bearer (.+)$`)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

// SubjectKey is the context key for the authenticated subject.
const SubjectKey ContextKey = "subject"

// Subject returns the authenticated subject stored on ctx, if any.
func Subject(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(SubjectKey).(string)
	return subject, ok
}

// WithSubject returns a copy of ctx carrying an authenticated subject.
func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, SubjectKey, subject)
}

// BearerAuthenticator is middleware that validates HMAC-signed bearer
// tokens.
type BearerAuthenticator struct {
	secret []byte
}

// NewBearerAuthenticator creates a new bearer-token middleware around a
// shared secret.
func NewBearerAuthenticator(secret []byte) *BearerAuthenticator {
	return &BearerAuthenticator{secret: secret}
}

// Middleware returns an HTTP middleware that validates bearer tokens and
// stores the token subject on the request context.
func (b *BearerAuthenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")

		if len(authHeader) == 0 {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Authorization missing"))
			return
		}

		tokenMatches := bearerRegex.FindStringSubmatch(authHeader)

		if len(tokenMatches) != 2 {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Malformed authorization header"))
			return
		}

		token, err := jwt.Parse(
			tokenMatches[1],
			func(*jwt.Token) (interface{}, error) { return b.secret, nil },
			jwt.WithValidMethods([]string{"HS256"}),
		)
		if err != nil || !token.Valid {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Invalid authorization token"))
			return
		}

		subject, err := token.Claims.GetSubject()
		if err != nil || subject == "" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Token subject missing"))
			return
		}

		r = r.WithContext(WithSubject(r.Context(), subject))
		next.ServeHTTP(w, r)
	})
}

// Optional returns an HTTP middleware that stores the token subject on
// the request context when a valid bearer token is present, and passes
// the request through untouched otherwise. Handlers that respond
// differently to anonymous callers use this instead of Middleware.
func (b *BearerAuthenticator) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenMatches := bearerRegex.FindStringSubmatch(r.Header.Get("Authorization"))
		if len(tokenMatches) == 2 {
			token, err := jwt.Parse(
				tokenMatches[1],
				func(*jwt.Token) (interface{}, error) { return b.secret, nil },
				jwt.WithValidMethods([]string{"HS256"}),
			)
			if err == nil && token.Valid {
				if subject, err := token.Claims.GetSubject(); err == nil && subject != "" {
					r = r.WithContext(WithSubject(r.Context(), subject))
				}
			}
		}
		next.ServeHTTP(w, r)
	})
}

// IssueToken mints an HMAC-signed bearer token for subject, expiring
// after ttl.
func IssueToken(secret []byte, subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}
