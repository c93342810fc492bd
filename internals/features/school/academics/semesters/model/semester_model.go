// file: internals/features/school/academics/semesters/model/semester_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   SemesterModel — map ke tabel semesters
   ======================================================= */

type SemesterModel struct {
	// PK
	SemesterID uuid.UUID `json:"semester_id" gorm:"type:uuid;primaryKey;column:semester_id;default:gen_random_uuid()"`

	SemesterName string `json:"semester_name" gorm:"type:text;not null;column:semester_name"`

	// Rentang berlaku (start < end, dijaga di DTO)
	SemesterStartDate time.Time `json:"semester_start_date" gorm:"type:date;not null;column:semester_start_date"`
	SemesterEndDate   time.Time `json:"semester_end_date" gorm:"type:date;not null;column:semester_end_date"`

	SemesterCreatedAt time.Time      `json:"semester_created_at" gorm:"column:semester_created_at;not null;autoCreateTime"`
	SemesterUpdatedAt time.Time      `json:"semester_updated_at" gorm:"column:semester_updated_at;not null;autoUpdateTime"`
	SemesterDeletedAt gorm.DeletedAt `json:"semester_deleted_at" gorm:"column:semester_deleted_at;index"`
}

func (SemesterModel) TableName() string {
	return "semesters"
}

func (m *SemesterModel) BeforeCreate(tx *gorm.DB) error {
	if m.SemesterID == uuid.Nil {
		m.SemesterID = uuid.New()
	}
	return nil
}

/* =======================================================
   BlockModel — map ke tabel blocks (slot waktu harian, mis. "Jam ke-3")
   ======================================================= */

type BlockModel struct {
	// PK
	BlockID uuid.UUID `json:"block_id" gorm:"type:uuid;primaryKey;column:block_id;default:gen_random_uuid()"`

	// Unik per (nama, semester)
	BlockName       string    `json:"block_name" gorm:"type:text;not null;column:block_name;uniqueIndex:uq_blocks_name_semester"`
	BlockSemesterID uuid.UUID `json:"block_semester_id" gorm:"type:uuid;not null;column:block_semester_id;uniqueIndex:uq_blocks_name_semester"`

	// Jam mulai/selesai dalam hari (start < end, dijaga di DTO)
	BlockStartTime time.Time `json:"block_start_time" gorm:"type:time;not null;column:block_start_time"`
	BlockEndTime   time.Time `json:"block_end_time" gorm:"type:time;not null;column:block_end_time"`

	BlockCreatedAt time.Time      `json:"block_created_at" gorm:"column:block_created_at;not null;autoCreateTime"`
	BlockUpdatedAt time.Time      `json:"block_updated_at" gorm:"column:block_updated_at;not null;autoUpdateTime"`
	BlockDeletedAt gorm.DeletedAt `json:"block_deleted_at" gorm:"column:block_deleted_at;index"`
}

func (BlockModel) TableName() string {
	return "blocks"
}

func (m *BlockModel) BeforeCreate(tx *gorm.DB) error {
	if m.BlockID == uuid.Nil {
		m.BlockID = uuid.New()
	}
	return nil
}
