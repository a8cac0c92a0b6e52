package identity

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func runMiddleware(headers map[string]string) (username, email string) {
	handler := Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username = UsernameFromContext(r.Context())
		email = EmailFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	handler.ServeHTTP(httptest.NewRecorder(), req)
	return username, email
}

func TestMiddlewareInjectsIdentity(t *testing.T) {
	username, email := runMiddleware(map[string]string{
		UserHeaderName:  "  alice  ",
		EmailHeaderName: "A@Example.COM",
	})

	if username != "alice" {
		t.Errorf("Expected trimmed username, got %q", username)
	}
	if email != "a@example.com" {
		t.Errorf("Expected lowercased email, got %q", email)
	}
}

func TestMiddlewareWithoutHeaders(t *testing.T) {
	username, email := runMiddleware(nil)

	if username != "" || email != "" {
		t.Errorf("Expected empty identity, got %q / %q", username, email)
	}
}

func TestMiddlewareRejectsMalformedEmail(t *testing.T) {
	for _, bad := range []string{"not-an-email", "a@b", "two words@x.com", "@x.com"} {
		_, email := runMiddleware(map[string]string{EmailHeaderName: bad})
		if email != "" {
			t.Errorf("Expected %q to be dropped, got %q", bad, email)
		}
	}
}

func TestMiddlewareCapsUsernameLength(t *testing.T) {
	username, _ := runMiddleware(map[string]string{
		UserHeaderName: strings.Repeat("a", 300),
	})

	if len(username) != 128 {
		t.Errorf("Expected username capped at 128, got %d", len(username))
	}
}

func TestIPFromRequest(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.7:54321"
	if got := IPFromRequest(req); got != "10.0.0.7" {
		t.Errorf("Expected host without port, got %q", got)
	}

	req.RemoteAddr = "10.0.0.7"
	if got := IPFromRequest(req); got != "10.0.0.7" {
		t.Errorf("Expected raw address passthrough, got %q", got)
	}
}
