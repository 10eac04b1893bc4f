package handlers

import (
	"github.com/labstack/echo/v4"
	"github.com/snackreel/backend/internal/models"
)

// getUserIDFromContext returns the authenticated consumer's ID, or 0.
func getUserIDFromContext(c echo.Context) uint {
	claims, ok := c.Get("claims").(*models.JwtCustomClaims)
	if !ok || claims.Role != models.RoleUser {
		return 0
	}
	return claims.SubjectID
}

// getPartnerIDFromContext returns the authenticated food partner's ID, or 0.
func getPartnerIDFromContext(c echo.Context) uint {
	claims, ok := c.Get("claims").(*models.JwtCustomClaims)
	if !ok || claims.Role != models.RoleFoodPartner {
		return 0
	}
	return claims.SubjectID
}
