// file: internals/features/school/structure/route/routes.go
package routes

import (
	structctl "schedulr_backend/internals/features/school/structure/controller"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// StructureAdminRoutes: CRUD section/grade/homeroom (ADMIN)
func StructureAdminRoutes(admin fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := structctl.New(db, v)

	grp := admin.Group("/structure")
	grp.Post("/sections", ctl.CreateSection)
	grp.Post("/grades", ctl.CreateGrade)
	grp.Post("/homerooms", ctl.CreateHomeroom)
}

// StructureUserRoutes: read-only hierarchy (PUBLIC/USER)
func StructureUserRoutes(user fiber.Router, db *gorm.DB) {
	ctl := structctl.New(db, nil)

	grp := user.Group("/structure")
	grp.Get("/hierarchy", ctl.Hierarchy)
}
