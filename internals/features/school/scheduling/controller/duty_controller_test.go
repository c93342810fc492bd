// file: internals/features/school/scheduling/controller/duty_controller_test.go
package controller

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	m "schedulr_backend/internals/features/school/scheduling/model"
)

func openDutyTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.Exec(`CREATE TABLE duties (
		duty_id TEXT PRIMARY KEY,
		duty_name TEXT NOT NULL,
		duty_teacher_id TEXT NOT NULL,
		duty_room_id TEXT NOT NULL,
		duty_block_id TEXT NOT NULL,
		duty_day_of_week INTEGER NOT NULL,
		duty_semester_id TEXT NOT NULL,
		duty_created_at DATETIME NOT NULL,
		duty_updated_at DATETIME NOT NULL,
		duty_deleted_at DATETIME
	)`).Error; err != nil {
		t.Fatalf("schema: %v", err)
	}

	app := fiber.New()
	ctl := NewDuty(db, nil)
	app.Get("/duties", ctl.List)
	return app, db
}

func TestDutyList_PagedResponse(t *testing.T) {
	app, db := openDutyTestApp(t)

	semesterID := uuid.New()
	otherSemID := uuid.New()
	for i := 1; i <= 3; i++ {
		duty := m.DutyModel{
			DutyName:       fmt.Sprintf("Piket %d", i),
			DutyTeacherID:  uuid.New(),
			DutyRoomID:     uuid.New(),
			DutyBlockID:    uuid.New(),
			DutyDayOfWeek:  i,
			DutySemesterID: semesterID,
		}
		if err := db.Create(&duty).Error; err != nil {
			t.Fatalf("seed duty: %v", err)
		}
	}
	outside := m.DutyModel{
		DutyName:       "Rapat",
		DutyTeacherID:  uuid.New(),
		DutyRoomID:     uuid.New(),
		DutyBlockID:    uuid.New(),
		DutyDayOfWeek:  1,
		DutySemesterID: otherSemID,
	}
	if err := db.Create(&outside).Error; err != nil {
		t.Fatalf("seed duty: %v", err)
	}

	req := httptest.NewRequest("GET", "/duties?semester_id="+semesterID.String()+"&per_page=2&page=1", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var body struct {
		Success    bool             `json:"success"`
		Data       []map[string]any `json:"data"`
		Pagination struct {
			Page    int   `json:"page"`
			PerPage int   `json:"per_page"`
			Total   int64 `json:"total"`
			HasNext bool  `json:"has_next"`
			Count   int   `json:"count"`
		} `json:"pagination"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("decode body: %v\n%s", err, raw)
	}

	if !body.Success {
		t.Error("expected success envelope")
	}
	if len(body.Data) != 2 {
		t.Errorf("per_page=2 should cap the page, got %d items", len(body.Data))
	}
	if body.Pagination.Total != 3 {
		t.Errorf("total must count only the requested semester, got %d", body.Pagination.Total)
	}
	if !body.Pagination.HasNext || body.Pagination.Page != 1 || body.Pagination.Count != 2 {
		t.Errorf("pagination metadata wrong: %+v", body.Pagination)
	}
}

func TestDutyList_RequiresSemesterID(t *testing.T) {
	app, _ := openDutyTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/duties", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("missing semester_id must be 400, got %d", resp.StatusCode)
	}
}
