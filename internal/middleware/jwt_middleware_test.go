package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(42, "alice@example.com", "customer", 1)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.UserID != 42 || claims.Email != "alice@example.com" || claims.Role != "customer" {
		t.Fatalf("claims = %+v", claims)
	}
	if claims.Type != "access" {
		t.Fatalf("type = %q, want access", claims.Type)
	}
}

func TestRefreshTokenType(t *testing.T) {
	token, err := GenerateRefreshToken(42, "alice@example.com", "customer", 7)
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.Type != "refresh" {
		t.Fatalf("type = %q, want refresh", claims.Type)
	}
}

func TestParseGarbage(t *testing.T) {
	if _, err := ParseToken("not.a.token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}

func callProtected(t *testing.T, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	handler := JWTMiddleware()(func(c echo.Context) error {
		claims := GetClaims(c)
		return c.JSON(http.StatusOK, map[string]int64{"userid": claims.UserID})
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	if err := handler(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler: %v", err)
	}
	return rec
}

func TestJWTMiddlewareAcceptsAccessToken(t *testing.T) {
	token, _ := GenerateToken(42, "alice@example.com", "customer", 1)

	rec := callProtected(t, "Bearer "+token)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestJWTMiddlewareRejectsRefreshToken(t *testing.T) {
	token, _ := GenerateRefreshToken(42, "alice@example.com", "customer", 7)

	rec := callProtected(t, "Bearer "+token)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestJWTMiddlewareMissingHeader(t *testing.T) {
	rec := callProtected(t, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}
