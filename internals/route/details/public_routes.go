// file: internals/route/details/public_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoutes "bokjisa_backend/internals/features/users/auth/route"
)

// PublicRoutes: everything reachable without an access token.
func PublicRoutes(router fiber.Router, db *gorm.DB) {
	authRoutes.AuthPublicRoutes(router, db)
}
