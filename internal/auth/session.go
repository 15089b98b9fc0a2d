package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid token")
)

// Claims are the token claims the service relies on. Tokens are issued by
// the identity provider; this package only verifies them.
type Claims struct {
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// Session is the authenticated caller of a request.
type Session struct {
	Subject      string
	Roles        []string
	Capabilities Capabilities
}

func (s *Session) Can(p Permission) bool {
	return s != nil && s.Capabilities.Has(p)
}

type Authenticator struct {
	secret []byte
}

func NewAuthenticator(secret string) *Authenticator {
	return &Authenticator{secret: []byte(secret)}
}

// Parse verifies an HS256 token and resolves its roles to capabilities.
func (a *Authenticator) Parse(tokenString string) (*Session, error) {
	var claims Claims

	token, err := jwt.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return &Session{
		Subject:      claims.Subject,
		Roles:        claims.Roles,
		Capabilities: Resolve(claims.Roles),
	}, nil
}

type sessionKey struct{}

func NewContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// FromContext returns the request's session, or nil when unauthenticated.
func FromContext(ctx context.Context) *Session {
	s, _ := ctx.Value(sessionKey{}).(*Session)
	return s
}

func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", ErrMissingToken
	}

	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", ErrMissingToken
	}

	return token, nil
}

// Middleware rejects requests without a valid bearer token and stores the
// resolved session in the request context.
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := bearerToken(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		session, err := a.Parse(token)
		if err != nil {
			slog.Debug("rejected token", "error", err)
			http.Error(w, ErrInvalidToken.Error(), http.StatusUnauthorized)

			return
		}

		next.ServeHTTP(w, r.WithContext(NewContext(r.Context(), session)))
	})
}

// Require lets the request through only if its session holds p.
func Require(p Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := FromContext(r.Context())
			if session == nil {
				http.Error(w, ErrMissingToken.Error(), http.StatusUnauthorized)
				return
			}

			if !session.Can(p) {
				http.Error(w, fmt.Sprintf("missing permission %s", p), http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
