// file: internals/features/school/scheduling/route/routes.go
package routes

import (
	schedctl "schedulr_backend/internals/features/school/scheduling/controller"
	middleware "schedulr_backend/internals/middlewares"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SchedulingAdminRoutes: validasi dry-run + commit batch + CRUD duty (ADMIN)
func SchedulingAdminRoutes(admin fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := schedctl.New(db, v)
	duty := schedctl.NewDuty(db, v)

	grp := admin.Group("/scheduling")
	grp.Post("/validate-move", ctl.ValidateMove)
	grp.Post("/validate-create", ctl.ValidateCreate)
	grp.Post("/commit", middleware.CommitRateLimiter(), ctl.CommitBatch)

	grpDuty := grp.Group("/duties")
	grpDuty.Get("/", duty.List)
	grpDuty.Post("/", duty.Create)
	grpDuty.Delete("/:id", duty.Delete)
}

// SchedulingUserRoutes: query gateway read-only (PUBLIC/USER)
func SchedulingUserRoutes(user fiber.Router, db *gorm.DB) {
	q := schedctl.NewQuery(db)

	grp := user.Group("/scheduling")
	grp.Get("/homerooms/:id/schedule", q.ScheduleForHomeroom)
	grp.Get("/resources/:kind/:id/schedule", q.ScheduleForResource)
}
