// file: internals/features/school/scheduling/controller/duty_controller.go
package controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "schedulr_backend/internals/helpers"

	d "schedulr_backend/internals/features/school/scheduling/dto"
	m "schedulr_backend/internals/features/school/scheduling/model"
)

type DutyController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewDuty(db *gorm.DB, v *validator.Validate) *DutyController {
	return &DutyController{DB: db, Validate: v}
}

func (ctl *DutyController) Create(c *fiber.Ctx) error {
	var req d.CreateDutyRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[Duty.Create] BodyParser error: %v", err)
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}
	model, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.WithContext(c.Context()).Create(model).Error; err != nil {
		log.Printf("[Duty.Create] DB.Create error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal membuat duty")
	}
	return helper.JsonCreated(c, "Duty berhasil dibuat", model)
}

func (ctl *DutyController) List(c *fiber.Ctx) error {
	semesterID, err := parseSemesterQuery(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	p := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.Context()).Model(&m.DutyModel{}).
		Where("duty_semester_id = ?", semesterID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	var rows []m.DutyModel
	if err := q.Order("duty_day_of_week ASC, duty_name ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "", rows, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

func (ctl *DutyController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	res := ctl.DB.WithContext(c.Context()).Delete(&m.DutyModel{}, "duty_id = ?", id)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Duty tidak ditemukan")
		}
		return helper.JsonError(c, http.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Duty tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Duty dihapus", fiber.Map{"duty_id": id})
}
