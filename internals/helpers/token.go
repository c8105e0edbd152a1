// file: internals/helpers/token.go
package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

var (
	ErrNoClaims      = errors.New("no token claims on request")
	ErrInvalidUserID = errors.New("invalid or missing user id in token")
)

// ClaimsFromLocals: claims placed by the auth middleware.
func ClaimsFromLocals(c *fiber.Ctx) (jwt.MapClaims, error) {
	claims, ok := c.Locals("claims").(jwt.MapClaims)
	if !ok || claims == nil {
		return nil, ErrNoClaims
	}
	return claims, nil
}

// GetUserIDFromToken: "sub" (or legacy "user_id") claim as uuid.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	claims, err := ClaimsFromLocals(c)
	if err != nil {
		return uuid.Nil, err
	}
	raw, _ := claims["sub"].(string)
	if raw == "" {
		raw, _ = claims["user_id"].(string)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, ErrInvalidUserID
	}
	return id, nil
}

// GetUserNameFromToken: display name for audit entries. Never fails hard;
// the audit sink must not block the originating operation.
func GetUserNameFromToken(c *fiber.Ctx) string {
	claims, err := ClaimsFromLocals(c)
	if err != nil {
		return "unknown"
	}
	if name, _ := claims["name"].(string); name != "" {
		return name
	}
	if email, _ := claims["email"].(string); email != "" {
		return email
	}
	return "unknown"
}
