// file: internals/route/index.go
package routes

import (
	"log"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authMiddleware "schedulr_backend/internals/middlewares/auth"

	semroutes "schedulr_backend/internals/features/school/academics/semesters/route"
	classroutes "schedulr_backend/internals/features/school/classes/route"
	resourceroutes "schedulr_backend/internals/features/school/resources/route"
	schedroutes "schedulr_backend/internals/features/school/scheduling/route"
	structroutes "schedulr_backend/internals/features/school/structure/route"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	v := validator.New()

	// ===================== PUBLIC (USER) =====================
	// Read-only: hirarki + query gateway jadwal
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/u")
	structroutes.StructureUserRoutes(public, db)
	schedroutes.SchedulingUserRoutes(public, db)

	// ===================== ADMIN =====================
	// Semua mutasi lewat sini: Auth + RoleCheck
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
		authMiddleware.RequireAdmin(),
	)

	semroutes.SemesterAdminRoutes(admin, db, v)
	structroutes.StructureAdminRoutes(admin, db, v)
	resourceroutes.ResourceAdminRoutes(admin, db, v)
	classroutes.ClassAdminRoutes(admin, db, v)
	schedroutes.SchedulingAdminRoutes(admin, db, v)

	// ===================== MISC =====================
	app.Get("/uptime", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"uptime": time.Since(startTime).String()})
	})
}
