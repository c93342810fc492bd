// file: internals/features/school/academics/semesters/controller/semester_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "schedulr_backend/internals/helpers"

	d "schedulr_backend/internals/features/school/academics/semesters/dto"
	m "schedulr_backend/internals/features/school/academics/semesters/model"
)

/* =========================
   Controller & Constructor
   ========================= */

type SemesterController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *SemesterController {
	return &SemesterController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

/* ========================= Semester ========================= */

func (ctl *SemesterController) Create(c *fiber.Ctx) error {
	var req d.CreateSemesterRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[Semester.Create] BodyParser error: %v", err)
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
		log.Printf("[Semester.Create] DB.Create error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal membuat semester")
	}
	return helper.JsonCreated(c, "Semester berhasil dibuat", model)
}

func (ctl *SemesterController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctl.DB.WithContext(c.Context()).Model(&m.SemesterModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	var rows []m.SemesterModel
	if err := ctl.DB.WithContext(c.Context()).
		Order("semester_start_date DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "", rows, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

func (ctl *SemesterController) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var row m.SemesterModel
	if err := ctl.DB.WithContext(c.Context()).First(&row, "semester_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Semester tidak ditemukan")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", row)
}

func (ctl *SemesterController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	res := ctl.DB.WithContext(c.Context()).Delete(&m.SemesterModel{}, "semester_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, http.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Semester tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Semester dihapus", fiber.Map{"semester_id": id})
}

/* ========================= Block ========================= */

func (ctl *SemesterController) CreateBlock(c *fiber.Ctx) error {
	var req d.CreateBlockRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[Semester.CreateBlock] BodyParser error: %v", err)
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

	// Pastikan semester ada
	var cnt int64
	if err := ctl.DB.WithContext(c.Context()).Model(&m.SemesterModel{}).
		Where("semester_id = ?", model.BlockSemesterID).Count(&cnt).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	if cnt == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Semester tidak ditemukan")
	}

	if err := ctl.DB.WithContext(c.Context()).Create(model).Error; err != nil {
		log.Printf("[Semester.CreateBlock] DB.Create error: %v", err)
		return helper.JsonError(c, http.StatusConflict, "Gagal membuat block (nama mungkin sudah dipakai di semester ini)")
	}
	return helper.JsonCreated(c, "Block berhasil dibuat", model)
}

func (ctl *SemesterController) ListBlocks(c *fiber.Ctx) error {
	semID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var rows []m.BlockModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("block_semester_id = ?", semID).
		Order("block_start_time ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", rows)
}
