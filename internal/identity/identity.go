// Package identity adapts the authentication collaborator: it lifts the
// authenticated student identity out of trusted reverse-proxy headers and
// into the request context. Login and registration live elsewhere.
package identity

import (
	"context"
	"net"
	"net/http"
	"regexp"
	"strings"
)

// Header names set by the authenticating front proxy.
const (
	UserHeaderName  = "X-Exam-User"
	EmailHeaderName = "X-Exam-Email"
)

type contextKey int

const (
	usernameKey contextKey = iota
	emailKey
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// UsernameFromContext extracts the authenticated username from the request context.
func UsernameFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(usernameKey).(string); ok {
		return v
	}
	return ""
}

// EmailFromContext extracts the authenticated email from the request context.
func EmailFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(emailKey).(string); ok {
		return v
	}
	return ""
}

func sanitizeUsername(name string) string {
	name = strings.TrimSpace(name)
	if len(name) > 128 {
		return name[:128]
	}
	return name
}

func sanitizeEmail(email string) string {
	email = strings.TrimSpace(strings.ToLower(email))
	if !emailPattern.MatchString(email) {
		return ""
	}
	return email
}

// Middleware injects the authenticated identity into the request context.
// Requests without identity headers pass through unannotated; handlers that
// require identity reject them individually.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			username := sanitizeUsername(r.Header.Get(UserHeaderName))
			email := sanitizeEmail(r.Header.Get(EmailHeaderName))

			ctx := r.Context()
			if username != "" {
				ctx = context.WithValue(ctx, usernameKey, username)
			}
			if email != "" {
				ctx = context.WithValue(ctx, emailKey, email)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IPFromRequest returns a normalized remote IP for optional request tracing.
func IPFromRequest(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
