// file: internals/features/school/classes/model/class_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   ClassModel — map ke tabel classes
   grade NULL  → kelas "shared" (ditawarkan ke semua grade di section)
   grade terisi → kelas grade-specific
   ======================================================= */

type ClassModel struct {
	// PK
	ClassID uuid.UUID `json:"class_id" gorm:"type:uuid;primaryKey;column:class_id;default:gen_random_uuid()"`

	ClassName string `json:"class_name" gorm:"type:text;not null;column:class_name"`

	// Scope
	ClassSectionID  uuid.UUID `json:"class_section_id" gorm:"type:uuid;not null;column:class_section_id;index"`
	ClassSemesterID uuid.UUID `json:"class_semester_id" gorm:"type:uuid;not null;column:class_semester_id;index"`

	// NULL = shared
	ClassGradeID *uuid.UUID `json:"class_grade_id,omitempty" gorm:"type:uuid;column:class_grade_id;index"`

	ClassCreatedAt time.Time      `json:"class_created_at" gorm:"column:class_created_at;not null;autoCreateTime"`
	ClassUpdatedAt time.Time      `json:"class_updated_at" gorm:"column:class_updated_at;not null;autoUpdateTime"`
	ClassDeletedAt gorm.DeletedAt `json:"class_deleted_at" gorm:"column:class_deleted_at;index"`
}

func (ClassModel) TableName() string {
	return "classes"
}

func (m *ClassModel) BeforeCreate(tx *gorm.DB) error {
	if m.ClassID == uuid.Nil {
		m.ClassID = uuid.New()
	}
	return nil
}

// IsShared: kelas tanpa grade berlaku untuk semua grade di section-nya
func (m *ClassModel) IsShared() bool {
	return m.ClassGradeID == nil
}
