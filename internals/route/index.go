// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authMiddleware "bokjisa_backend/internals/middlewares/auth"
	routeDetails "bokjisa_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	api := app.Group("/api")

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC routes...")
	routeDetails.PublicRoutes(api, db)

	// ===================== ADMIN (JWT) =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := api.Group("/a", authMiddleware.AuthJWT())
	routeDetails.AdminRoutes(admin, db)
}

// Shutdown drains in-memory state that has not hit the database yet.
func Shutdown() {
	routeDetails.FlushPlanSessions()
}
