// file: internals/features/school/resources/dto/resource_dto.go
package dto

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	m "schedulr_backend/internals/features/school/resources/model"
)

type CreateTeacherRequest struct {
	TeacherName string `json:"teacher_name" validate:"required,min=1"`
}

func (r *CreateTeacherRequest) ToModel() *m.TeacherModel {
	return &m.TeacherModel{TeacherName: strings.TrimSpace(r.TeacherName)}
}

type CreateRoomTypeRequest struct {
	RoomTypeName string `json:"room_type_name" validate:"required,min=1"`
}

func (r *CreateRoomTypeRequest) ToModel() *m.RoomTypeModel {
	return &m.RoomTypeModel{RoomTypeName: strings.TrimSpace(r.RoomTypeName)}
}

type CreateRoomRequest struct {
	RoomName       string `json:"room_name" validate:"required,min=1"`
	RoomRoomTypeID string `json:"room_room_type_id" validate:"required,uuid"`
}

func (r *CreateRoomRequest) ToModel() (*m.RoomModel, error) {
	typeID, err := uuid.Parse(strings.TrimSpace(r.RoomRoomTypeID))
	if err != nil {
		return nil, fmt.Errorf("invalid room_room_type_id: %w", err)
	}
	return &m.RoomModel{
		RoomName:       strings.TrimSpace(r.RoomName),
		RoomRoomTypeID: typeID,
	}, nil
}
