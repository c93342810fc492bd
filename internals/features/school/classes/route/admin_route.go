// file: internals/features/school/classes/route/admin_route.go
package routes

import (
	classctl "schedulr_backend/internals/features/school/classes/controller"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ClassAdminRoutes: CRUD class (ADMIN)
func ClassAdminRoutes(admin fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := classctl.New(db, v)

	grp := admin.Group("/classes")
	grp.Get("/", ctl.List)
	grp.Post("/", ctl.Create)
}
