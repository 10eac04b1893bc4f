package middleware

import (
	"net/http"
	"os"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/snackreel/backend/internal/models"
)

// UserAuthMiddleware requires a valid consumer JWT.
func UserAuthMiddleware() echo.MiddlewareFunc {
	return jwtAuthMiddleware(models.RoleUser)
}

// PartnerAuthMiddleware requires a valid food partner JWT.
func PartnerAuthMiddleware() echo.MiddlewareFunc {
	return jwtAuthMiddleware(models.RoleFoodPartner)
}

// jwtAuthMiddleware checks for a valid JWT with the expected role claim
// and stores the resolved claims in the request context.
func jwtAuthMiddleware(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing Authorization header")
			}

			// Expecting "Bearer <token>"
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid Authorization header format")
			}
			tokenString := parts[1]

			jwtSecret := os.Getenv("JWT_SECRET")
			if jwtSecret == "" {
				jwtSecret = "supersecretjwtkey" // Must match the secret used for signing
			}

			claims := &models.JwtCustomClaims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, echo.NewHTTPError(http.StatusUnauthorized, "Unexpected signing method")
				}
				return []byte(jwtSecret), nil
			})

			if err != nil || !token.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
			}

			if claims.Role != role {
				return echo.NewHTTPError(http.StatusForbidden, "Wrong account type for this resource")
			}

			c.Set("claims", claims)

			return next(c)
		}
	}
}
