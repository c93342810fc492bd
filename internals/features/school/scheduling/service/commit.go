// file: internals/features/school/scheduling/service/commit.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	sm "schedulr_backend/internals/features/school/academics/semesters/model"
	cm "schedulr_backend/internals/features/school/classes/model"
	rm "schedulr_backend/internals/features/school/resources/model"
	m "schedulr_backend/internals/features/school/scheduling/model"

	"schedulr_backend/internals/constants"
)

/* =======================================================
   Batch Commit Engine.

   Satu transaksi untuk seluruh batch; operasi diproses
   SESUAI URUTAN caller (operasi belakangan melihat efek
   operasi sebelumnya di transaksi yang sama). Create/Move
   menjalankan ulang check grade terhadap state live
   in-transaction — bukan snapshot dry-run yang bisa basi.
   Kegagalan apa pun → rollback total, store tidak berubah.
   ======================================================= */

type OpKind string

const (
	OpCreate        OpKind = "create"
	OpMove          OpKind = "move"
	OpUpdateRoom    OpKind = "update_room"
	OpUpdateTeacher OpKind = "update_teacher"
)

type Operation struct {
	Kind OpKind

	// create
	ClassID    uuid.UUID
	SemesterID uuid.UUID
	HomeroomID *uuid.UUID

	// move / update_room / update_teacher
	SessionID uuid.UUID

	// slot (create & move)
	BlockID   uuid.UUID
	DayOfWeek int
	RoomID    uuid.UUID

	// update_teacher
	TeacherID uuid.UUID
}

type OperationResult struct {
	Op        OpKind    `json:"op"`
	SessionID uuid.UUID `json:"session_id"`
}

type CommitEngine struct {
	DB *gorm.DB
}

func NewCommitEngine(db *gorm.DB) *CommitEngine {
	return &CommitEngine{DB: db}
}

// Commit menjalankan batch secara atomik. Hasil: satu record per operasi,
// urut sesuai input. Error bertipe (NotFound/BadRequest/Conflict/StoreFailure);
// dalam semua kasus error, store dijamin tidak berubah.
func (e *CommitEngine) Commit(ctx context.Context, ops []Operation) ([]OperationResult, error) {
	if len(ops) == 0 {
		return nil, &BadRequestError{Msg: "batch kosong"}
	}

	// BadRequest ditolak SEBELUM menyentuh store
	for i := range ops {
		if err := ops[i].validate(); err != nil {
			return nil, err
		}
	}

	results := make([]OperationResult, 0, len(ops))
	err := e.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, op := range ops {
			var (
				sessionID uuid.UUID
				err       error
			)
			switch op.Kind {
			case OpCreate:
				sessionID, err = applyCreate(tx, op)
			case OpMove:
				sessionID, err = applyMove(tx, op)
			case OpUpdateRoom:
				sessionID, err = applyUpdateRoom(tx, op)
			case OpUpdateTeacher:
				sessionID, err = applyUpdateTeacher(tx, op)
			}
			if err != nil {
				return err // rollback seluruh batch
			}
			results = append(results, OperationResult{Op: op.Kind, SessionID: sessionID})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (op *Operation) validate() error {
	switch op.Kind {
	case OpCreate:
		if op.ClassID == uuid.Nil || op.BlockID == uuid.Nil || op.RoomID == uuid.Nil || op.SemesterID == uuid.Nil {
			return &BadRequestError{Msg: "create butuh class_id, block_id, room_id, semester_id"}
		}
		// Session baru wajib punya homeroom (kolom nullable hanya untuk baris legacy)
		if op.HomeroomID == nil || *op.HomeroomID == uuid.Nil {
			return &BadRequestError{Msg: "create butuh homeroom_id"}
		}
		if !constants.ValidDayOfWeek(op.DayOfWeek) {
			return &BadRequestError{Msg: fmt.Sprintf("day_of_week %d di luar rentang", op.DayOfWeek)}
		}
	case OpMove:
		if op.SessionID == uuid.Nil || op.BlockID == uuid.Nil || op.RoomID == uuid.Nil {
			return &BadRequestError{Msg: "move butuh session_id, block_id, room_id"}
		}
		if !constants.ValidDayOfWeek(op.DayOfWeek) {
			return &BadRequestError{Msg: fmt.Sprintf("day_of_week %d di luar rentang", op.DayOfWeek)}
		}
	case OpUpdateRoom:
		if op.SessionID == uuid.Nil || op.RoomID == uuid.Nil {
			return &BadRequestError{Msg: "update_room butuh session_id dan room_id"}
		}
	case OpUpdateTeacher:
		if op.SessionID == uuid.Nil || op.TeacherID == uuid.Nil {
			return &BadRequestError{Msg: "update_teacher butuh session_id dan teacher_id"}
		}
	default:
		return &BadRequestError{Msg: fmt.Sprintf("op tidak dikenal: %q", op.Kind)}
	}
	return nil
}

/* ========================= per-op apply ========================= */

func applyCreate(tx *gorm.DB, op Operation) (uuid.UUID, error) {
	// Class & block di-scope per semester, sama seperti snapshot dry-run:
	// referensi milik semester lain = NotFound, bukan session lintas semester.
	var cls cm.ClassModel
	if err := tx.First(&cls, "class_id = ? AND class_semester_id = ?", op.ClassID, op.SemesterID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, fmt.Errorf("%w: class %s", ErrNotFound, op.ClassID)
		}
		return uuid.Nil, mapStoreError(err)
	}
	if err := mustExistBlock(tx, op.BlockID, op.SemesterID); err != nil {
		return uuid.Nil, err
	}
	if err := mustExistRoom(tx, op.RoomID); err != nil {
		return uuid.Nil, err
	}

	// Re-check grade pada state live in-transaction
	target := ClassInfo{ClassID: cls.ClassID, Name: cls.ClassName, SectionID: cls.ClassSectionID, GradeID: cls.ClassGradeID}
	if err := checkGradeInTx(tx, target, op.BlockID, op.DayOfWeek, op.SemesterID, nil); err != nil {
		return uuid.Nil, err
	}

	session := m.ClassSessionModel{
		ClassSessionClassID:    op.ClassID,
		ClassSessionBlockID:    op.BlockID,
		ClassSessionDayOfWeek:  op.DayOfWeek,
		ClassSessionRoomID:     op.RoomID,
		ClassSessionSemesterID: op.SemesterID,
		ClassSessionHomeroomID: op.HomeroomID,
	}
	if err := tx.Create(&session).Error; err != nil {
		return uuid.Nil, mapStoreError(err)
	}
	return session.ClassSessionID, nil
}

func applyMove(tx *gorm.DB, op Operation) (uuid.UUID, error) {
	var session m.ClassSessionModel
	if err := tx.First(&session, "class_session_id = ?", op.SessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, fmt.Errorf("%w: session %s", ErrNotFound, op.SessionID)
		}
		return uuid.Nil, mapStoreError(err)
	}
	var cls cm.ClassModel
	if err := tx.First(&cls, "class_id = ?", session.ClassSessionClassID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, fmt.Errorf("%w: class %s", ErrNotFound, session.ClassSessionClassID)
		}
		return uuid.Nil, mapStoreError(err)
	}
	// Slot tujuan harus berada di semester session yang dipindah
	if err := mustExistBlock(tx, op.BlockID, session.ClassSessionSemesterID); err != nil {
		return uuid.Nil, err
	}
	if err := mustExistRoom(tx, op.RoomID); err != nil {
		return uuid.Nil, err
	}

	target := ClassInfo{ClassID: cls.ClassID, Name: cls.ClassName, SectionID: cls.ClassSectionID, GradeID: cls.ClassGradeID}
	exclude := session.ClassSessionID
	if err := checkGradeInTx(tx, target, op.BlockID, op.DayOfWeek, session.ClassSessionSemesterID, &exclude); err != nil {
		return uuid.Nil, err
	}

	if err := tx.Model(&session).Updates(map[string]any{
		"class_session_block_id":    op.BlockID,
		"class_session_day_of_week": op.DayOfWeek,
		"class_session_room_id":     op.RoomID,
	}).Error; err != nil {
		return uuid.Nil, mapStoreError(err)
	}
	return session.ClassSessionID, nil
}

func applyUpdateRoom(tx *gorm.DB, op Operation) (uuid.UUID, error) {
	var session m.ClassSessionModel
	if err := tx.First(&session, "class_session_id = ?", op.SessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, fmt.Errorf("%w: session %s", ErrNotFound, op.SessionID)
		}
		return uuid.Nil, mapStoreError(err)
	}
	if err := mustExistRoom(tx, op.RoomID); err != nil {
		return uuid.Nil, err
	}
	// Perubahan minimal; backstop unik (block, day, room, semester) yang menjaga
	if err := tx.Model(&session).Update("class_session_room_id", op.RoomID).Error; err != nil {
		return uuid.Nil, mapStoreError(err)
	}
	return session.ClassSessionID, nil
}

// applyUpdateTeacher mengganti SELURUH set guru session dengan satu link
// primary baru. Edit parsial set guru tidak didukung batch ini.
func applyUpdateTeacher(tx *gorm.DB, op Operation) (uuid.UUID, error) {
	var session m.ClassSessionModel
	if err := tx.First(&session, "class_session_id = ?", op.SessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, fmt.Errorf("%w: session %s", ErrNotFound, op.SessionID)
		}
		return uuid.Nil, mapStoreError(err)
	}
	var cnt int64
	if err := tx.Model(&rm.TeacherModel{}).Where("teacher_id = ?", op.TeacherID).Count(&cnt).Error; err != nil {
		return uuid.Nil, mapStoreError(err)
	}
	if cnt == 0 {
		return uuid.Nil, fmt.Errorf("%w: teacher %s", ErrNotFound, op.TeacherID)
	}

	if err := tx.Where("class_session_teacher_session_id = ?", session.ClassSessionID).
		Delete(&m.ClassSessionTeacherModel{}).Error; err != nil {
		return uuid.Nil, mapStoreError(err)
	}
	link := m.ClassSessionTeacherModel{
		ClassSessionTeacherSessionID: session.ClassSessionID,
		ClassSessionTeacherTeacherID: op.TeacherID,
		ClassSessionTeacherRole:      m.TeacherRolePrimary,
	}
	if err := tx.Create(&link).Error; err != nil {
		return uuid.Nil, mapStoreError(err)
	}
	return session.ClassSessionID, nil
}

/* ========================= helpers ========================= */

func mustExistBlock(tx *gorm.DB, blockID, semesterID uuid.UUID) error {
	var cnt int64
	if err := tx.Model(&sm.BlockModel{}).
		Where("block_id = ? AND block_semester_id = ?", blockID, semesterID).
		Count(&cnt).Error; err != nil {
		return mapStoreError(err)
	}
	if cnt == 0 {
		return fmt.Errorf("%w: block %s", ErrNotFound, blockID)
	}
	return nil
}

func mustExistRoom(tx *gorm.DB, roomID uuid.UUID) error {
	var cnt int64
	if err := tx.Model(&rm.RoomModel{}).Where("room_id = ?", roomID).Count(&cnt).Error; err != nil {
		return mapStoreError(err)
	}
	if cnt == 0 {
		return fmt.Errorf("%w: room %s", ErrNotFound, roomID)
	}
	return nil
}

// checkGradeInTx menjalankan ulang aturan grade (sama persis dengan
// GradeConflicts milik evaluator) terhadap session live in-transaction.
func checkGradeInTx(tx *gorm.DB, target ClassInfo, blockID uuid.UUID, day int, semesterID uuid.UUID, exclude *uuid.UUID) error {
	type slotRow struct {
		SessionID uuid.UUID  `gorm:"column:session_id"`
		ClassID   uuid.UUID  `gorm:"column:class_id"`
		ClassName string     `gorm:"column:class_name"`
		GradeID   *uuid.UUID `gorm:"column:grade_id"`
	}

	q := tx.Table("class_sessions").
		Select("class_sessions.class_session_id AS session_id, classes.class_id AS class_id, classes.class_name AS class_name, classes.class_grade_id AS grade_id").
		Joins("JOIN classes ON classes.class_id = class_sessions.class_session_class_id AND classes.class_deleted_at IS NULL").
		Where("class_session_block_id = ? AND class_session_day_of_week = ? AND class_session_semester_id = ?", blockID, day, semesterID)
	if exclude != nil {
		q = q.Where("class_session_id <> ?", *exclude)
	}

	var rows []slotRow
	if err := q.Scan(&rows).Error; err != nil {
		return mapStoreError(err)
	}

	views := make([]SessionView, 0, len(rows))
	for _, r := range rows {
		views = append(views, SessionView{
			SessionID: r.SessionID,
			ClassID:   r.ClassID,
			ClassName: r.ClassName,
			GradeID:   r.GradeID,
		})
	}
	if conflicts := GradeConflicts(target, views); len(conflicts) > 0 {
		return &ConflictError{Conflicts: conflicts}
	}
	return nil
}

// --- store error mapping ---

type pgSQLErr interface {
	SQLState() string
	Error() string
}

// mapStoreError membungkus error dari store menjadi StoreFailureError.
// 23505 = unique_violation (backstop slot), 23503 = foreign_key_violation.
func mapStoreError(err error) error {
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) {
		switch pgErr.SQLState() {
		case "23505":
			return &StoreFailureError{Msg: "Slot (block, hari, ruangan, semester) sudah terisi (unique violation)", Err: err}
		case "23503":
			return &StoreFailureError{Msg: "Referensi tidak valid (FK violation)", Err: err}
		}
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &StoreFailureError{Msg: "Slot (block, hari, ruangan, semester) sudah terisi (unique violation)", Err: err}
	}
	return &StoreFailureError{Msg: "Commit gagal di store", Err: err}
}
