// file: internals/features/school/resources/model/resource_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   TeacherModel — map ke tabel teachers
   Ketersediaan guru TIDAK disimpan di sini; diturunkan dari
   class_session_teachers + duties yang mereferensikan guru.
   ======================================================= */

type TeacherModel struct {
	// PK
	TeacherID uuid.UUID `json:"teacher_id" gorm:"type:uuid;primaryKey;column:teacher_id;default:gen_random_uuid()"`

	TeacherName string `json:"teacher_name" gorm:"type:text;not null;column:teacher_name"`

	TeacherCreatedAt time.Time      `json:"teacher_created_at" gorm:"column:teacher_created_at;not null;autoCreateTime"`
	TeacherUpdatedAt time.Time      `json:"teacher_updated_at" gorm:"column:teacher_updated_at;not null;autoUpdateTime"`
	TeacherDeletedAt gorm.DeletedAt `json:"teacher_deleted_at" gorm:"column:teacher_deleted_at;index"`
}

func (TeacherModel) TableName() string {
	return "teachers"
}

func (m *TeacherModel) BeforeCreate(tx *gorm.DB) error {
	if m.TeacherID == uuid.Nil {
		m.TeacherID = uuid.New()
	}
	return nil
}

/* =======================================================
   RoomTypeModel — map ke tabel room_types
   ======================================================= */

type RoomTypeModel struct {
	// PK
	RoomTypeID uuid.UUID `json:"room_type_id" gorm:"type:uuid;primaryKey;column:room_type_id;default:gen_random_uuid()"`

	RoomTypeName string `json:"room_type_name" gorm:"type:text;not null;column:room_type_name"`

	RoomTypeCreatedAt time.Time `json:"room_type_created_at" gorm:"column:room_type_created_at;not null;autoCreateTime"`
	RoomTypeUpdatedAt time.Time `json:"room_type_updated_at" gorm:"column:room_type_updated_at;not null;autoUpdateTime"`
}

func (RoomTypeModel) TableName() string {
	return "room_types"
}

func (m *RoomTypeModel) BeforeCreate(tx *gorm.DB) error {
	if m.RoomTypeID == uuid.Nil {
		m.RoomTypeID = uuid.New()
	}
	return nil
}

/* =======================================================
   RoomModel — map ke tabel rooms
   Sama seperti guru: ketersediaan diturunkan, bukan disimpan.
   ======================================================= */

type RoomModel struct {
	// PK
	RoomID uuid.UUID `json:"room_id" gorm:"type:uuid;primaryKey;column:room_id;default:gen_random_uuid()"`

	RoomName       string    `json:"room_name" gorm:"type:text;not null;column:room_name"`
	RoomRoomTypeID uuid.UUID `json:"room_room_type_id" gorm:"type:uuid;not null;column:room_room_type_id;index"`

	RoomCreatedAt time.Time      `json:"room_created_at" gorm:"column:room_created_at;not null;autoCreateTime"`
	RoomUpdatedAt time.Time      `json:"room_updated_at" gorm:"column:room_updated_at;not null;autoUpdateTime"`
	RoomDeletedAt gorm.DeletedAt `json:"room_deleted_at" gorm:"column:room_deleted_at;index"`
}

func (RoomModel) TableName() string {
	return "rooms"
}

func (m *RoomModel) BeforeCreate(tx *gorm.DB) error {
	if m.RoomID == uuid.Nil {
		m.RoomID = uuid.New()
	}
	return nil
}
