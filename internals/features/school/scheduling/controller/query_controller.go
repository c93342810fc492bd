// file: internals/features/school/scheduling/controller/query_controller.go
package controller

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "schedulr_backend/internals/helpers"

	svc "schedulr_backend/internals/features/school/scheduling/service"
)

/* =========================
   Query gateway (read-only)
   ========================= */

type QueryController struct {
	DB *gorm.DB
}

func NewQuery(db *gorm.DB) *QueryController {
	return &QueryController{DB: db}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

func parseSemesterQuery(c *fiber.Ctx) (uuid.UUID, error) {
	s := strings.TrimSpace(c.Query("semester_id"))
	if s == "" {
		return uuid.Nil, fmt.Errorf("semester_id is required")
	}
	return uuid.Parse(s)
}

// ScheduleForHomeroom: GET /homerooms/:id/schedule?semester_id=
func (ctl *QueryController) ScheduleForHomeroom(c *fiber.Ctx) error {
	homeroomID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	semesterID, err := parseSemesterQuery(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	items, err := svc.ScheduleForHomeroom(ctl.DB.WithContext(c.Context()), homeroomID, semesterID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonOK(c, "", items)
}

// ScheduleForResource: GET /resources/:kind/:id/schedule?semester_id=
// kind ∈ {teacher, room}; duties resource ikut di payload.
func (ctl *QueryController) ScheduleForResource(c *fiber.Ctx) error {
	kind := strings.ToLower(strings.TrimSpace(c.Params("kind")))
	resourceID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	semesterID, err := parseSemesterQuery(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	sched, err := svc.ScheduleForResource(ctl.DB.WithContext(c.Context()), kind, resourceID, semesterID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonOK(c, "", sched)
}
