package middleware

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// TokenCookie is the name of the session cookie set on login and read here.
const TokenCookie = "token"

// emailKey is the context key the verified session email is stored under.
const emailKey = "email"

// Auth validates the session JWT carried in the token cookie and injects the
// authenticated email into the request context. Verification failure
// short-circuits the request with 401 before any handler runs.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(TokenCookie)
			if err != nil || cookie.Value == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing session token")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(cookie.Value, claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			email, _ := claims[emailKey].(string)
			if email == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "token missing identity")
			}
			c.Set(emailKey, email)

			return next(c)
		}
	}
}
