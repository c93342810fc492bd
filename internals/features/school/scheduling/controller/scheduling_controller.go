// file: internals/features/school/scheduling/controller/scheduling_controller.go
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
	svc "schedulr_backend/internals/features/school/scheduling/service"
)

/* =========================
   Controller & Constructor
   ========================= */

type SchedulingController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Engine   *svc.CommitEngine
}

func New(db *gorm.DB, v *validator.Validate) *SchedulingController {
	return &SchedulingController{DB: db, Validate: v, Engine: svc.NewCommitEngine(db)}
}

// writeServiceError memetakan error bertipe dari service ke HTTP.
// Konflik saat commit ikut membawa daftar konfliknya (deep-link dari UI).
func writeServiceError(c *fiber.Ctx, err error) error {
	var badReq *svc.BadRequestError
	var conflict *svc.ConflictError
	var storeFail *svc.StoreFailureError

	switch {
	case errors.Is(err, svc.ErrNotFound):
		return helper.JsonError(c, http.StatusNotFound, err.Error())
	case errors.As(err, &badReq):
		return helper.JsonError(c, http.StatusBadRequest, badReq.Msg)
	case errors.As(err, &conflict):
		return helper.JsonErrorWithDetails(c, http.StatusConflict, "Batch ditolak: ada konflik jadwal", fiber.Map{
			"conflicts": conflict.Conflicts,
		})
	case errors.As(err, &storeFail):
		return helper.JsonError(c, http.StatusConflict, storeFail.Msg)
	default:
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
}

/* ========================= Dry-run validate ========================= */

// ValidateMove: dry-run pemindahan session ke slot baru.
// Konflik bukan error — selalu 200 dengan verdict, kecuali referensi hilang.
func (ctl *SchedulingController) ValidateMove(c *fiber.Ctx) error {
	var req d.ValidateMoveRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[Scheduling.ValidateMove] BodyParser error: %v", err)
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}

	placement, semesterID, err := req.ToPlacement()
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	snap, err := svc.LoadSnapshot(ctl.DB.WithContext(c.Context()), semesterID)
	if err != nil {
		return writeServiceError(c, err)
	}
	verdict, err := svc.Evaluate(snap, placement)
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonOK(c, "", verdict)
}

// ValidateCreate: dry-run penempatan session baru untuk sebuah class.
func (ctl *SchedulingController) ValidateCreate(c *fiber.Ctx) error {
	var req d.ValidateCreateRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[Scheduling.ValidateCreate] BodyParser error: %v", err)
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}

	placement, semesterID, err := req.ToPlacement()
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	snap, err := svc.LoadSnapshot(ctl.DB.WithContext(c.Context()), semesterID)
	if err != nil {
		return writeServiceError(c, err)
	}
	verdict, err := svc.Evaluate(snap, placement)
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonOK(c, "", verdict)
}

/* ========================= Batch commit ========================= */

// CommitBatch: semua operasi dalam SATU transaksi, urut sesuai input,
// all-or-nothing. Gagal apa pun → store tidak berubah, caller refetch.
func (ctl *SchedulingController) CommitBatch(c *fiber.Ctx) error {
	var req d.CommitBatchRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[Scheduling.CommitBatch] BodyParser error: %v", err)
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}

	ops, err := req.ToOperations()
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	results, err := ctl.Engine.Commit(c.Context(), ops)
	if err != nil {
		log.Printf("[Scheduling.CommitBatch] Commit error: %v", err)
		return writeServiceError(c, err)
	}
	return helper.JsonOK(c, "Batch berhasil di-commit", fiber.Map{
		"results": results,
	})
}
