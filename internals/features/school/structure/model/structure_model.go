// file: internals/features/school/structure/model/structure_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   SectionModel — map ke tabel sections (jenjang, mis. "SMP")
   ======================================================= */

type SectionModel struct {
	// PK
	SectionID uuid.UUID `json:"section_id" gorm:"type:uuid;primaryKey;column:section_id;default:gen_random_uuid()"`

	SectionName string `json:"section_name" gorm:"type:text;not null;column:section_name"`

	// 1:N ke grades
	Grades []GradeModel `json:"grades,omitempty" gorm:"foreignKey:GradeSectionID;references:SectionID"`

	SectionCreatedAt time.Time      `json:"section_created_at" gorm:"column:section_created_at;not null;autoCreateTime"`
	SectionUpdatedAt time.Time      `json:"section_updated_at" gorm:"column:section_updated_at;not null;autoUpdateTime"`
	SectionDeletedAt gorm.DeletedAt `json:"section_deleted_at" gorm:"column:section_deleted_at;index"`
}

func (SectionModel) TableName() string {
	return "sections"
}

func (m *SectionModel) BeforeCreate(tx *gorm.DB) error {
	if m.SectionID == uuid.Nil {
		m.SectionID = uuid.New()
	}
	return nil
}

/* =======================================================
   GradeModel — map ke tabel grades (tingkat, mis. "Kelas 10")
   ======================================================= */

type GradeModel struct {
	// PK
	GradeID uuid.UUID `json:"grade_id" gorm:"type:uuid;primaryKey;column:grade_id;default:gen_random_uuid()"`

	GradeName      string    `json:"grade_name" gorm:"type:text;not null;column:grade_name"`
	GradeSectionID uuid.UUID `json:"grade_section_id" gorm:"type:uuid;not null;column:grade_section_id;index"`

	GradeCreatedAt time.Time      `json:"grade_created_at" gorm:"column:grade_created_at;not null;autoCreateTime"`
	GradeUpdatedAt time.Time      `json:"grade_updated_at" gorm:"column:grade_updated_at;not null;autoUpdateTime"`
	GradeDeletedAt gorm.DeletedAt `json:"grade_deleted_at" gorm:"column:grade_deleted_at;index"`
}

func (GradeModel) TableName() string {
	return "grades"
}

func (m *GradeModel) BeforeCreate(tx *gorm.DB) error {
	if m.GradeID == uuid.Nil {
		m.GradeID = uuid.New()
	}
	return nil
}

/* =======================================================
   HomeroomModel — map ke tabel homerooms (rombel)
   Homeroom dengan lebih dari satu grade = "multi-grade"
   ======================================================= */

type HomeroomModel struct {
	// PK
	HomeroomID uuid.UUID `json:"homeroom_id" gorm:"type:uuid;primaryKey;column:homeroom_id;default:gen_random_uuid()"`

	HomeroomName      string    `json:"homeroom_name" gorm:"type:text;not null;column:homeroom_name"`
	HomeroomSectionID uuid.UUID `json:"homeroom_section_id" gorm:"type:uuid;not null;column:homeroom_section_id;index"`

	// Wali kelas (opsional)
	HomeroomTeacherID *uuid.UUID `json:"homeroom_teacher_id,omitempty" gorm:"type:uuid;column:homeroom_teacher_id"`

	// M:N ke grades via homeroom_grades
	Grades []GradeModel `json:"grades,omitempty" gorm:"many2many:homeroom_grades;foreignKey:HomeroomID;joinForeignKey:HomeroomGradeHomeroomID;References:GradeID;joinReferences:HomeroomGradeGradeID"`

	HomeroomCreatedAt time.Time      `json:"homeroom_created_at" gorm:"column:homeroom_created_at;not null;autoCreateTime"`
	HomeroomUpdatedAt time.Time      `json:"homeroom_updated_at" gorm:"column:homeroom_updated_at;not null;autoUpdateTime"`
	HomeroomDeletedAt gorm.DeletedAt `json:"homeroom_deleted_at" gorm:"column:homeroom_deleted_at;index"`
}

func (HomeroomModel) TableName() string {
	return "homerooms"
}

func (m *HomeroomModel) BeforeCreate(tx *gorm.DB) error {
	if m.HomeroomID == uuid.Nil {
		m.HomeroomID = uuid.New()
	}
	return nil
}

/* =======================================================
   HomeroomGradeModel — link table homeroom_grades
   ======================================================= */

type HomeroomGradeModel struct {
	HomeroomGradeHomeroomID uuid.UUID `json:"homeroom_grade_homeroom_id" gorm:"type:uuid;primaryKey;column:homeroom_grade_homeroom_id"`
	HomeroomGradeGradeID    uuid.UUID `json:"homeroom_grade_grade_id" gorm:"type:uuid;primaryKey;column:homeroom_grade_grade_id"`

	HomeroomGradeCreatedAt time.Time `json:"homeroom_grade_created_at" gorm:"column:homeroom_grade_created_at;not null;autoCreateTime"`
}

func (HomeroomGradeModel) TableName() string {
	return "homeroom_grades"
}
