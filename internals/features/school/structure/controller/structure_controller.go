// file: internals/features/school/structure/controller/structure_controller.go
package controller

import (
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "schedulr_backend/internals/helpers"

	d "schedulr_backend/internals/features/school/structure/dto"
	m "schedulr_backend/internals/features/school/structure/model"
)

/* =========================
   Controller & Constructor
   ========================= */

type StructureController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *StructureController {
	return &StructureController{DB: db, Validate: v}
}

/* ========================= Create ========================= */

func (ctl *StructureController) CreateSection(c *fiber.Ctx) error {
	var req d.CreateSectionRequest
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
		log.Printf("[Structure.CreateSection] DB.Create error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal membuat section")
	}
	return helper.JsonCreated(c, "Section berhasil dibuat", model)
}

func (ctl *StructureController) CreateGrade(c *fiber.Ctx) error {
	var req d.CreateGradeRequest
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
		log.Printf("[Structure.CreateGrade] DB.Create error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal membuat grade")
	}
	return helper.JsonCreated(c, "Grade berhasil dibuat", model)
}

// CreateHomeroom membuat homeroom + link grade (M:N) dalam satu transaksi.
func (ctl *StructureController) CreateHomeroom(c *fiber.Ctx) error {
	var req d.CreateHomeroomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}
	model, gradeIDs, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if er := tx.Create(model).Error; er != nil {
			return er
		}
		for _, gid := range gradeIDs {
			link := m.HomeroomGradeModel{
				HomeroomGradeHomeroomID: model.HomeroomID,
				HomeroomGradeGradeID:    gid,
			}
			if er := tx.Create(&link).Error; er != nil {
				return er
			}
		}
		return nil
	}); err != nil {
		log.Printf("[Structure.CreateHomeroom] TX error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal membuat homeroom")
	}
	return helper.JsonCreated(c, "Homeroom berhasil dibuat", model)
}

/* ========================= Hierarchy ========================= */

// Hierarchy mengembalikan pohon section → grades → homerooms (read-only).
func (ctl *StructureController) Hierarchy(c *fiber.Ctx) error {
	var sections []m.SectionModel
	if err := ctl.DB.WithContext(c.Context()).
		Preload("Grades").
		Order("section_name ASC").
		Find(&sections).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	var homerooms []m.HomeroomModel
	if err := ctl.DB.WithContext(c.Context()).
		Preload("Grades").
		Order("homeroom_name ASC").
		Find(&homerooms).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	// index homerooms per section + per grade
	hrBySection := map[uuid.UUID][]d.HierarchyHomeroom{}
	hrByGrade := map[uuid.UUID][]uuid.UUID{}
	for _, hr := range homerooms {
		gradeIDs := make([]uuid.UUID, 0, len(hr.Grades))
		for _, g := range hr.Grades {
			gradeIDs = append(gradeIDs, g.GradeID)
			hrByGrade[g.GradeID] = append(hrByGrade[g.GradeID], hr.HomeroomID)
		}
		hrBySection[hr.HomeroomSectionID] = append(hrBySection[hr.HomeroomSectionID], d.HierarchyHomeroom{
			HomeroomID:   hr.HomeroomID,
			HomeroomName: hr.HomeroomName,
			TeacherID:    hr.HomeroomTeacherID,
			GradeIDs:     gradeIDs,
			MultiGrade:   len(gradeIDs) > 1,
		})
	}

	out := make([]d.HierarchySection, 0, len(sections))
	for _, s := range sections {
		grades := make([]d.HierarchyGrade, 0, len(s.Grades))
		for _, g := range s.Grades {
			grades = append(grades, d.HierarchyGrade{
				GradeID:   g.GradeID,
				GradeName: g.GradeName,
				Homerooms: hrByGrade[g.GradeID],
			})
		}
		out = append(out, d.HierarchySection{
			SectionID:   s.SectionID,
			SectionName: s.SectionName,
			Grades:      grades,
			Homerooms:   hrBySection[s.SectionID],
		})
	}
	return helper.JsonOK(c, "", out)
}
