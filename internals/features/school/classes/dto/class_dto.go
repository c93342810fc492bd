// file: internals/features/school/classes/dto/class_dto.go
package dto

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	m "schedulr_backend/internals/features/school/classes/model"
)

type CreateClassRequest struct {
	ClassName       string  `json:"class_name" validate:"required,min=1"`
	ClassSectionID  string  `json:"class_section_id" validate:"required,uuid"`
	ClassSemesterID string  `json:"class_semester_id" validate:"required,uuid"`
	ClassGradeID    *string `json:"class_grade_id,omitempty" validate:"omitempty,uuid"`
}

func (r *CreateClassRequest) ToModel() (*m.ClassModel, error) {
	secID, err := uuid.Parse(strings.TrimSpace(r.ClassSectionID))
	if err != nil {
		return nil, fmt.Errorf("invalid class_section_id: %w", err)
	}
	semID, err := uuid.Parse(strings.TrimSpace(r.ClassSemesterID))
	if err != nil {
		return nil, fmt.Errorf("invalid class_semester_id: %w", err)
	}
	var gradeID *uuid.UUID
	if r.ClassGradeID != nil && strings.TrimSpace(*r.ClassGradeID) != "" {
		id, er := uuid.Parse(strings.TrimSpace(*r.ClassGradeID))
		if er != nil {
			return nil, fmt.Errorf("invalid class_grade_id: %w", er)
		}
		gradeID = &id
	}
	return &m.ClassModel{
		ClassName:       strings.TrimSpace(r.ClassName),
		ClassSectionID:  secID,
		ClassSemesterID: semID,
		ClassGradeID:    gradeID,
	}, nil
}
