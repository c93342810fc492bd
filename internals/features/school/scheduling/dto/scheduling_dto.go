// file: internals/features/school/scheduling/dto/scheduling_dto.go
package dto

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	m "schedulr_backend/internals/features/school/scheduling/model"
	svc "schedulr_backend/internals/features/school/scheduling/service"
)

func uuidFromString(field, s string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s: %w", field, err)
	}
	return id, nil
}

func uuidPtrFromString(field string, s *string) (*uuid.UUID, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	id, err := uuidFromString(field, *s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

/* =======================================================
   Dry-run validation
   ======================================================= */

type ValidateMoveRequest struct {
	SessionID  string `json:"session_id" validate:"required,uuid"`
	BlockID    string `json:"block_id" validate:"required,uuid"`
	DayOfWeek  int    `json:"day_of_week" validate:"required,min=1,max=5"`
	RoomID     string `json:"room_id" validate:"required,uuid"`
	SemesterID string `json:"semester_id" validate:"required,uuid"`
}

func (r *ValidateMoveRequest) ToPlacement() (svc.Placement, uuid.UUID, error) {
	sessionID, err := uuidFromString("session_id", r.SessionID)
	if err != nil {
		return svc.Placement{}, uuid.Nil, err
	}
	blockID, err := uuidFromString("block_id", r.BlockID)
	if err != nil {
		return svc.Placement{}, uuid.Nil, err
	}
	roomID, err := uuidFromString("room_id", r.RoomID)
	if err != nil {
		return svc.Placement{}, uuid.Nil, err
	}
	semID, err := uuidFromString("semester_id", r.SemesterID)
	if err != nil {
		return svc.Placement{}, uuid.Nil, err
	}
	return svc.Placement{
		SessionID: &sessionID,
		BlockID:   blockID,
		DayOfWeek: r.DayOfWeek,
		RoomID:    roomID,
	}, semID, nil
}

type ValidateCreateRequest struct {
	ClassID    string   `json:"class_id" validate:"required,uuid"`
	BlockID    string   `json:"block_id" validate:"required,uuid"`
	DayOfWeek  int      `json:"day_of_week" validate:"required,min=1,max=5"`
	RoomID     string   `json:"room_id" validate:"required,uuid"`
	SemesterID string   `json:"semester_id" validate:"required,uuid"`
	TeacherIDs []string `json:"teacher_ids,omitempty" validate:"omitempty,dive,uuid"` // guru yang akan di-assign
}

func (r *ValidateCreateRequest) ToPlacement() (svc.Placement, uuid.UUID, error) {
	classID, err := uuidFromString("class_id", r.ClassID)
	if err != nil {
		return svc.Placement{}, uuid.Nil, err
	}
	blockID, err := uuidFromString("block_id", r.BlockID)
	if err != nil {
		return svc.Placement{}, uuid.Nil, err
	}
	roomID, err := uuidFromString("room_id", r.RoomID)
	if err != nil {
		return svc.Placement{}, uuid.Nil, err
	}
	semID, err := uuidFromString("semester_id", r.SemesterID)
	if err != nil {
		return svc.Placement{}, uuid.Nil, err
	}
	teacherIDs := make([]uuid.UUID, 0, len(r.TeacherIDs))
	for _, t := range r.TeacherIDs {
		id, er := uuidFromString("teacher_ids", t)
		if er != nil {
			return svc.Placement{}, uuid.Nil, er
		}
		teacherIDs = append(teacherIDs, id)
	}
	return svc.Placement{
		ClassID:    classID,
		BlockID:    blockID,
		DayOfWeek:  r.DayOfWeek,
		RoomID:     roomID,
		TeacherIDs: teacherIDs,
	}, semID, nil
}

/* =======================================================
   Batch commit
   ======================================================= */

type BatchOperationRequest struct {
	Op         string  `json:"op" validate:"required,oneof=create move update_room update_teacher"`
	SessionID  *string `json:"session_id,omitempty" validate:"omitempty,uuid"`
	ClassID    *string `json:"class_id,omitempty" validate:"omitempty,uuid"`
	BlockID    *string `json:"block_id,omitempty" validate:"omitempty,uuid"`
	DayOfWeek  *int    `json:"day_of_week,omitempty" validate:"omitempty,min=1,max=5"`
	RoomID     *string `json:"room_id,omitempty" validate:"omitempty,uuid"`
	SemesterID *string `json:"semester_id,omitempty" validate:"omitempty,uuid"`
	HomeroomID *string `json:"homeroom_id,omitempty" validate:"omitempty,uuid"`
	TeacherID  *string `json:"teacher_id,omitempty" validate:"omitempty,uuid"`
}

type CommitBatchRequest struct {
	Operations []BatchOperationRequest `json:"operations" validate:"required,min=1,dive"`
}

func (r *BatchOperationRequest) ToOperation() (svc.Operation, error) {
	op := svc.Operation{Kind: svc.OpKind(strings.TrimSpace(r.Op)), DayOfWeek: 0}

	derefOrNil := func(field string, s *string) (uuid.UUID, error) {
		if s == nil {
			return uuid.Nil, nil
		}
		return uuidFromString(field, *s)
	}

	var err error
	if op.SessionID, err = derefOrNil("session_id", r.SessionID); err != nil {
		return svc.Operation{}, err
	}
	if op.ClassID, err = derefOrNil("class_id", r.ClassID); err != nil {
		return svc.Operation{}, err
	}
	if op.BlockID, err = derefOrNil("block_id", r.BlockID); err != nil {
		return svc.Operation{}, err
	}
	if op.RoomID, err = derefOrNil("room_id", r.RoomID); err != nil {
		return svc.Operation{}, err
	}
	if op.SemesterID, err = derefOrNil("semester_id", r.SemesterID); err != nil {
		return svc.Operation{}, err
	}
	if op.TeacherID, err = derefOrNil("teacher_id", r.TeacherID); err != nil {
		return svc.Operation{}, err
	}
	if op.HomeroomID, err = uuidPtrFromString("homeroom_id", r.HomeroomID); err != nil {
		return svc.Operation{}, err
	}
	if r.DayOfWeek != nil {
		op.DayOfWeek = *r.DayOfWeek
	}
	return op, nil
}

func (r *CommitBatchRequest) ToOperations() ([]svc.Operation, error) {
	ops := make([]svc.Operation, 0, len(r.Operations))
	for i := range r.Operations {
		op, err := r.Operations[i].ToOperation()
		if err != nil {
			return nil, fmt.Errorf("operations[%d]: %w", i, err)
		}
		ops = append(ops, op)
	}
	return ops, nil
}

/* =======================================================
   Duty
   ======================================================= */

type CreateDutyRequest struct {
	DutyName       string `json:"duty_name" validate:"required,min=1"`
	DutyTeacherID  string `json:"duty_teacher_id" validate:"required,uuid"`
	DutyRoomID     string `json:"duty_room_id" validate:"required,uuid"`
	DutyBlockID    string `json:"duty_block_id" validate:"required,uuid"`
	DutyDayOfWeek  int    `json:"duty_day_of_week" validate:"required,min=1,max=5"`
	DutySemesterID string `json:"duty_semester_id" validate:"required,uuid"`
}

func (r *CreateDutyRequest) ToModel() (*m.DutyModel, error) {
	teacherID, err := uuidFromString("duty_teacher_id", r.DutyTeacherID)
	if err != nil {
		return nil, err
	}
	roomID, err := uuidFromString("duty_room_id", r.DutyRoomID)
	if err != nil {
		return nil, err
	}
	blockID, err := uuidFromString("duty_block_id", r.DutyBlockID)
	if err != nil {
		return nil, err
	}
	semID, err := uuidFromString("duty_semester_id", r.DutySemesterID)
	if err != nil {
		return nil, err
	}
	return &m.DutyModel{
		DutyName:       strings.TrimSpace(r.DutyName),
		DutyTeacherID:  teacherID,
		DutyRoomID:     roomID,
		DutyBlockID:    blockID,
		DutyDayOfWeek:  r.DutyDayOfWeek,
		DutySemesterID: semID,
	}, nil
}
