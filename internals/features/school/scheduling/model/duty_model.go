// file: internals/features/school/scheduling/model/duty_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   DutyModel — map ke tabel duties
   Komitmen non-mengajar: piket, rapat, jaga ujian.
   Bersaing dengan class_sessions untuk guru DAN ruangan
   pada (block, day, semester) yang sama.
   ======================================================= */

type DutyModel struct {
	// PK
	DutyID uuid.UUID `json:"duty_id" gorm:"type:uuid;primaryKey;column:duty_id;default:gen_random_uuid()"`

	DutyName string `json:"duty_name" gorm:"type:text;not null;column:duty_name"`

	DutyTeacherID uuid.UUID `json:"duty_teacher_id" gorm:"type:uuid;not null;column:duty_teacher_id;index"`
	DutyRoomID    uuid.UUID `json:"duty_room_id" gorm:"type:uuid;not null;column:duty_room_id;index"`

	// Slot
	DutyBlockID    uuid.UUID `json:"duty_block_id" gorm:"type:uuid;not null;column:duty_block_id"`
	DutyDayOfWeek  int       `json:"duty_day_of_week" gorm:"type:int;not null;column:duty_day_of_week"` // 1..5
	DutySemesterID uuid.UUID `json:"duty_semester_id" gorm:"type:uuid;not null;column:duty_semester_id;index"`

	DutyCreatedAt time.Time      `json:"duty_created_at" gorm:"column:duty_created_at;not null;autoCreateTime"`
	DutyUpdatedAt time.Time      `json:"duty_updated_at" gorm:"column:duty_updated_at;not null;autoUpdateTime"`
	DutyDeletedAt gorm.DeletedAt `json:"duty_deleted_at" gorm:"column:duty_deleted_at;index"`
}

func (DutyModel) TableName() string {
	return "duties"
}

func (m *DutyModel) BeforeCreate(tx *gorm.DB) error {
	if m.DutyID == uuid.Nil {
		m.DutyID = uuid.New()
	}
	return nil
}
