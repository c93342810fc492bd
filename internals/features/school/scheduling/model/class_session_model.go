// file: internals/features/school/scheduling/model/class_session_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   ClassSessionModel — map ke tabel class_sessions
   Satu pertemuan kelas pada slot (block, day, room, semester).

   Backstop keras di level store: unik per
   (block, day, room, semester) — menangkap race yang lolos
   dari pemeriksaan aplikasi.
   ======================================================= */

type ClassSessionModel struct {
	// PK
	ClassSessionID uuid.UUID `json:"class_session_id" gorm:"type:uuid;primaryKey;column:class_session_id;default:gen_random_uuid()"`

	ClassSessionClassID uuid.UUID `json:"class_session_class_id" gorm:"type:uuid;not null;column:class_session_class_id;index"`

	// Slot
	ClassSessionBlockID    uuid.UUID `json:"class_session_block_id" gorm:"type:uuid;not null;column:class_session_block_id;uniqueIndex:uq_class_sessions_slot"`
	ClassSessionDayOfWeek  int       `json:"class_session_day_of_week" gorm:"type:int;not null;column:class_session_day_of_week;uniqueIndex:uq_class_sessions_slot"` // 1..5
	ClassSessionRoomID     uuid.UUID `json:"class_session_room_id" gorm:"type:uuid;not null;column:class_session_room_id;uniqueIndex:uq_class_sessions_slot"`
	ClassSessionSemesterID uuid.UUID `json:"class_session_semester_id" gorm:"type:uuid;not null;column:class_session_semester_id;uniqueIndex:uq_class_sessions_slot"`

	// Wajib untuk session baru; nullable hanya untuk baris legacy pra-backfill
	// (resolusi via grade/section masih ada di query gateway sebagai shim migrasi).
	ClassSessionHomeroomID *uuid.UUID `json:"class_session_homeroom_id,omitempty" gorm:"type:uuid;column:class_session_homeroom_id;index"`

	// M:N ke teachers via class_session_teachers
	Teachers []ClassSessionTeacherModel `json:"teachers,omitempty" gorm:"foreignKey:ClassSessionTeacherSessionID;references:ClassSessionID"`

	ClassSessionCreatedAt time.Time `json:"class_session_created_at" gorm:"column:class_session_created_at;not null;autoCreateTime"`
	ClassSessionUpdatedAt time.Time `json:"class_session_updated_at" gorm:"column:class_session_updated_at;not null;autoUpdateTime"`
}

func (ClassSessionModel) TableName() string {
	return "class_sessions"
}

func (m *ClassSessionModel) BeforeCreate(tx *gorm.DB) error {
	if m.ClassSessionID == uuid.Nil {
		m.ClassSessionID = uuid.New()
	}
	return nil
}

/* =======================================================
   ClassSessionTeacherModel — link table class_session_teachers
   Guru maksimal sekali per session.
   ======================================================= */

type TeacherRole string

const (
	TeacherRolePrimary   TeacherRole = "primary"
	TeacherRoleAssistant TeacherRole = "assistant"
)

type ClassSessionTeacherModel struct {
	// PK
	ClassSessionTeacherID uuid.UUID `json:"class_session_teacher_id" gorm:"type:uuid;primaryKey;column:class_session_teacher_id;default:gen_random_uuid()"`

	ClassSessionTeacherSessionID uuid.UUID `json:"class_session_teacher_session_id" gorm:"type:uuid;not null;column:class_session_teacher_session_id;uniqueIndex:uq_session_teacher"`
	ClassSessionTeacherTeacherID uuid.UUID `json:"class_session_teacher_teacher_id" gorm:"type:uuid;not null;column:class_session_teacher_teacher_id;uniqueIndex:uq_session_teacher"`

	ClassSessionTeacherRole TeacherRole `json:"class_session_teacher_role" gorm:"type:text;not null;default:'primary';column:class_session_teacher_role"`

	ClassSessionTeacherCreatedAt time.Time `json:"class_session_teacher_created_at" gorm:"column:class_session_teacher_created_at;not null;autoCreateTime"`
}

func (ClassSessionTeacherModel) TableName() string {
	return "class_session_teachers"
}

func (m *ClassSessionTeacherModel) BeforeCreate(tx *gorm.DB) error {
	if m.ClassSessionTeacherID == uuid.Nil {
		m.ClassSessionTeacherID = uuid.New()
	}
	return nil
}
