package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const testSecret = "test-secret"

func signedToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return token
}

func requestWithCookie(token string) (*http.Request, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: TokenCookie, Value: token})
	}
	return req, httptest.NewRecorder()
}

func TestAuth_ValidToken(t *testing.T) {
	e := echo.New()
	token := signedToken(t, testSecret, jwt.MapClaims{
		"email": "maria@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	req, rec := requestWithCookie(token)
	c := e.NewContext(req, rec)

	called := false
	handler := Auth(testSecret)(func(c echo.Context) error {
		called = true
		if got, _ := c.Get("email").(string); got != "maria@example.com" {
			t.Errorf("expected email in context, got %q", got)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatal("next handler not called")
	}
}

func TestAuth_MissingCookie(t *testing.T) {
	e := echo.New()
	req, rec := requestWithCookie("")
	c := e.NewContext(req, rec)

	handler := Auth(testSecret)(func(c echo.Context) error {
		t.Fatal("should not reach next handler")
		return nil
	})

	err := handler(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestAuth_WrongSignature(t *testing.T) {
	e := echo.New()
	token := signedToken(t, "other-secret", jwt.MapClaims{
		"email": "maria@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	req, rec := requestWithCookie(token)
	c := e.NewContext(req, rec)

	handler := Auth(testSecret)(func(c echo.Context) error {
		t.Fatal("should not reach next handler")
		return nil
	})

	err := handler(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	e := echo.New()
	token := signedToken(t, testSecret, jwt.MapClaims{
		"email": "maria@example.com",
		"exp":   time.Now().Add(-time.Minute).Unix(),
	})
	req, rec := requestWithCookie(token)
	c := e.NewContext(req, rec)

	handler := Auth(testSecret)(func(c echo.Context) error {
		t.Fatal("should not reach next handler")
		return nil
	})

	err := handler(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestAuth_TokenWithoutEmail(t *testing.T) {
	e := echo.New()
	token := signedToken(t, testSecret, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	req, rec := requestWithCookie(token)
	c := e.NewContext(req, rec)

	handler := Auth(testSecret)(func(c echo.Context) error {
		t.Fatal("should not reach next handler")
		return nil
	})

	err := handler(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}
