// file: internals/features/school/academics/semesters/dto/semester_dto.go
package dto

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	m "schedulr_backend/internals/features/school/academics/semesters/model"
)

/* =======================================================
   Util & parsing
   ======================================================= */

var (
	layoutDate = "2006-01-02" // DATE
	layoutT1   = "15:04"      // TIME (HH:mm)
	layoutT2   = "15:04:05"   // TIME (HH:mm:ss)
)

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("empty date")
	}
	t, err := time.Parse(layoutDate, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format (want YYYY-MM-DD): %w", err)
	}
	return t, nil
}

func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("empty time")
	}
	// coba HH:mm lalu HH:mm:ss
	if t, err := time.Parse(layoutT1, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(layoutT2, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid time format (want HH:mm or HH:mm:ss)")
}

/* =======================================================
   Request DTOs — Semester
   ======================================================= */

type CreateSemesterRequest struct {
	SemesterName      string `json:"semester_name" validate:"required,min=1"`
	SemesterStartDate string `json:"semester_start_date" validate:"required"`
	SemesterEndDate   string `json:"semester_end_date" validate:"required"`
}

func (r *CreateSemesterRequest) ToModel() (*m.SemesterModel, error) {
	start, err := parseDate(r.SemesterStartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate(r.SemesterEndDate)
	if err != nil {
		return nil, err
	}
	if !start.Before(end) {
		return nil, errors.New("semester_start_date harus sebelum semester_end_date")
	}
	return &m.SemesterModel{
		SemesterName:      strings.TrimSpace(r.SemesterName),
		SemesterStartDate: start,
		SemesterEndDate:   end,
	}, nil
}

/* =======================================================
   Request DTOs — Block
   ======================================================= */

type CreateBlockRequest struct {
	BlockName       string `json:"block_name" validate:"required,min=1"`
	BlockSemesterID string `json:"block_semester_id" validate:"required,uuid"`
	BlockStartTime  string `json:"block_start_time" validate:"required"`
	BlockEndTime    string `json:"block_end_time" validate:"required"`
}

func (r *CreateBlockRequest) ToModel() (*m.BlockModel, error) {
	semID, err := uuid.Parse(strings.TrimSpace(r.BlockSemesterID))
	if err != nil {
		return nil, fmt.Errorf("invalid block_semester_id: %w", err)
	}
	start, err := parseTime(r.BlockStartTime)
	if err != nil {
		return nil, err
	}
	end, err := parseTime(r.BlockEndTime)
	if err != nil {
		return nil, err
	}
	if !start.Before(end) {
		return nil, errors.New("block_start_time harus sebelum block_end_time")
	}
	return &m.BlockModel{
		BlockName:       strings.TrimSpace(r.BlockName),
		BlockSemesterID: semID,
		BlockStartTime:  start,
		BlockEndTime:    end,
	}, nil
}
