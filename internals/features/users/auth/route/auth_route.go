package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "bokjisa_backend/internals/features/users/auth/controller"
	"bokjisa_backend/internals/middlewares"
)

// AuthPublicRoutes: no token required. Login endpoints get the strict limiter.
func AuthPublicRoutes(router fiber.Router, db *gorm.DB) {
	ctl := authController.NewAuthController(db)

	auth := router.Group("/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	auth.Post("/login-google", middlewares.LoginRateLimiter(), ctl.LoginGoogle)
	auth.Post("/refresh-token", ctl.Refresh)
	auth.Post("/logout", ctl.Logout)
}

// AuthProtectedRoutes: mounted inside the JWT-guarded admin group.
func AuthProtectedRoutes(router fiber.Router, db *gorm.DB) {
	ctl := authController.NewAuthController(db)

	auth := router.Group("/auth")
	auth.Get("/me", ctl.Me)
	auth.Post("/register", ctl.Register)
	auth.Post("/change-password", ctl.ChangePassword)
}
