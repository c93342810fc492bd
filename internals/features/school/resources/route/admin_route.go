// file: internals/features/school/resources/route/admin_route.go
package routes

import (
	resctl "schedulr_backend/internals/features/school/resources/controller"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ResourceAdminRoutes: CRUD teacher/room (ADMIN)
func ResourceAdminRoutes(admin fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := resctl.New(db, v)

	grp := admin.Group("/resources")
	grp.Get("/teachers", ctl.ListTeachers)
	grp.Post("/teachers", ctl.CreateTeacher)
	grp.Post("/room-types", ctl.CreateRoomType)
	grp.Get("/rooms", ctl.ListRooms)
	grp.Post("/rooms", ctl.CreateRoom)
}
