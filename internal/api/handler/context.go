package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mercadito/marketplace-api/internal/core/domain"
)

// ctxPrincipal extracts the authentication context injected by the Auth
// middleware. The returned Principal is immutable; handlers pass it into
// service calls instead of reaching back into the request context.
func ctxPrincipal(c echo.Context) (domain.Principal, error) {
	email, _ := c.Get("email").(string)
	if email == "" {
		return domain.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return domain.Principal{Email: email}, nil
}
