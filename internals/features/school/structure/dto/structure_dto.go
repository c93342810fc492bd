// file: internals/features/school/structure/dto/structure_dto.go
package dto

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	m "schedulr_backend/internals/features/school/structure/model"
)

func uuidFromString(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid uuid: %w", err)
	}
	return id, nil
}

func uuidPtrFromString(s *string) (*uuid.UUID, error) {
	if s == nil {
		return nil, nil
	}
	ss := strings.TrimSpace(*s)
	if ss == "" {
		return nil, nil
	}
	id, err := uuid.Parse(ss)
	if err != nil {
		return nil, fmt.Errorf("invalid uuid: %w", err)
	}
	return &id, nil
}

/* =======================================================
   Request DTOs
   ======================================================= */

type CreateSectionRequest struct {
	SectionName string `json:"section_name" validate:"required,min=1"`
}

func (r *CreateSectionRequest) ToModel() *m.SectionModel {
	return &m.SectionModel{SectionName: strings.TrimSpace(r.SectionName)}
}

type CreateGradeRequest struct {
	GradeName      string `json:"grade_name" validate:"required,min=1"`
	GradeSectionID string `json:"grade_section_id" validate:"required,uuid"`
}

func (r *CreateGradeRequest) ToModel() (*m.GradeModel, error) {
	secID, err := uuidFromString(r.GradeSectionID)
	if err != nil {
		return nil, err
	}
	return &m.GradeModel{
		GradeName:      strings.TrimSpace(r.GradeName),
		GradeSectionID: secID,
	}, nil
}

type CreateHomeroomRequest struct {
	HomeroomName      string   `json:"homeroom_name" validate:"required,min=1"`
	HomeroomSectionID string   `json:"homeroom_section_id" validate:"required,uuid"`
	HomeroomTeacherID *string  `json:"homeroom_teacher_id,omitempty" validate:"omitempty,uuid"`
	GradeIDs          []string `json:"grade_ids,omitempty" validate:"omitempty,dive,uuid"`
}

func (r *CreateHomeroomRequest) ToModel() (*m.HomeroomModel, []uuid.UUID, error) {
	secID, err := uuidFromString(r.HomeroomSectionID)
	if err != nil {
		return nil, nil, err
	}
	teacherID, err := uuidPtrFromString(r.HomeroomTeacherID)
	if err != nil {
		return nil, nil, err
	}
	gradeIDs := make([]uuid.UUID, 0, len(r.GradeIDs))
	for _, g := range r.GradeIDs {
		id, er := uuidFromString(g)
		if er != nil {
			return nil, nil, er
		}
		gradeIDs = append(gradeIDs, id)
	}
	return &m.HomeroomModel{
		HomeroomName:      strings.TrimSpace(r.HomeroomName),
		HomeroomSectionID: secID,
		HomeroomTeacherID: teacherID,
	}, gradeIDs, nil
}

/* =======================================================
   Response DTOs — hirarki section → grade → homeroom
   ======================================================= */

type HierarchyGrade struct {
	GradeID   uuid.UUID   `json:"grade_id"`
	GradeName string      `json:"grade_name"`
	Homerooms []uuid.UUID `json:"homeroom_ids"`
}

type HierarchyHomeroom struct {
	HomeroomID   uuid.UUID   `json:"homeroom_id"`
	HomeroomName string      `json:"homeroom_name"`
	TeacherID    *uuid.UUID  `json:"homeroom_teacher_id,omitempty"`
	GradeIDs     []uuid.UUID `json:"grade_ids"`
	MultiGrade   bool        `json:"multi_grade"`
}

type HierarchySection struct {
	SectionID   uuid.UUID           `json:"section_id"`
	SectionName string              `json:"section_name"`
	Grades      []HierarchyGrade    `json:"grades"`
	Homerooms   []HierarchyHomeroom `json:"homerooms"`
}
