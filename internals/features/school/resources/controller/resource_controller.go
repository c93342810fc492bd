// file: internals/features/school/resources/controller/resource_controller.go
package controller

import (
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "schedulr_backend/internals/helpers"

	d "schedulr_backend/internals/features/school/resources/dto"
	m "schedulr_backend/internals/features/school/resources/model"
)

type ResourceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *ResourceController {
	return &ResourceController{DB: db, Validate: v}
}

func (ctl *ResourceController) CreateTeacher(c *fiber.Ctx) error {
	var req d.CreateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}
	model := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(model).Error; err != nil {
		log.Printf("[Resource.CreateTeacher] DB.Create error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal membuat teacher")
	}
	return helper.JsonCreated(c, "Teacher berhasil dibuat", model)
}

func (ctl *ResourceController) ListTeachers(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctl.DB.WithContext(c.Context()).Model(&m.TeacherModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	var rows []m.TeacherModel
	if err := ctl.DB.WithContext(c.Context()).
		Order("teacher_name ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "", rows, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

func (ctl *ResourceController) CreateRoomType(c *fiber.Ctx) error {
	var req d.CreateRoomTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}
	model := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(model).Error; err != nil {
		log.Printf("[Resource.CreateRoomType] DB.Create error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal membuat room type")
	}
	return helper.JsonCreated(c, "Room type berhasil dibuat", model)
}

func (ctl *ResourceController) CreateRoom(c *fiber.Ctx) error {
	var req d.CreateRoomRequest
	if err := c.BodyParser(&req); err != nil {
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
		log.Printf("[Resource.CreateRoom] DB.Create error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal membuat room")
	}
	return helper.JsonCreated(c, "Room berhasil dibuat", model)
}

func (ctl *ResourceController) ListRooms(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctl.DB.WithContext(c.Context()).Model(&m.RoomModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	var rows []m.RoomModel
	if err := ctl.DB.WithContext(c.Context()).
		Order("room_name ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "", rows, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}
