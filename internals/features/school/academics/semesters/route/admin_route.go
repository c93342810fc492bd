// file: internals/features/school/academics/semesters/route/admin_route.go
package routes

import (
	semctl "schedulr_backend/internals/features/school/academics/semesters/controller"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SemesterAdminRoutes mendaftarkan route untuk ADMIN (CRUD penuh)
func SemesterAdminRoutes(admin fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := semctl.New(db, v)

	grp := admin.Group("/semesters")
	grp.Get("/", ctl.List)
	grp.Get("/:id", ctl.GetByID)
	grp.Get("/:id/blocks", ctl.ListBlocks)
	grp.Post("/", ctl.Create)
	grp.Post("/blocks", ctl.CreateBlock)
	grp.Delete("/:id", ctl.Delete)
}
