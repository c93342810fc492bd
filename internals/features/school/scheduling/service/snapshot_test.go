// file: internals/features/school/scheduling/service/snapshot_test.go
package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	m "schedulr_backend/internals/features/school/scheduling/model"
)

func seedSession(t *testing.T, db *gorm.DB, s *seed, classID uuid.UUID, blockID uuid.UUID, day int, roomID uuid.UUID, homeroomID *uuid.UUID, teacherIDs ...uuid.UUID) m.ClassSessionModel {
	t.Helper()
	session := m.ClassSessionModel{
		ClassSessionClassID:    classID,
		ClassSessionBlockID:    blockID,
		ClassSessionDayOfWeek:  day,
		ClassSessionRoomID:     roomID,
		ClassSessionSemesterID: s.semester.SemesterID,
		ClassSessionHomeroomID: homeroomID,
	}
	mustCreate(t, db, &session)
	for _, tid := range teacherIDs {
		mustCreate(t, db, &m.ClassSessionTeacherModel{
			ClassSessionTeacherSessionID: session.ClassSessionID,
			ClassSessionTeacherTeacherID: tid,
			ClassSessionTeacherRole:      m.TeacherRolePrimary,
		})
	}
	return session
}

/* =======================================================
   LoadSnapshot
   ======================================================= */

func TestLoadSnapshot_BuildsFullPicture(t *testing.T) {
	db := openTestDB(t)
	s := seedSchool(t, db)

	seedSession(t, db, s, s.math10.ClassID, s.blockB1.BlockID, 1, s.roomR1.RoomID, &s.homeroom.HomeroomID, s.teach1.TeacherID)
	mustCreate(t, db, &m.DutyModel{
		DutyName:       "Piket Gerbang",
		DutyTeacherID:  s.teach2.TeacherID,
		DutyRoomID:     s.roomR2.RoomID,
		DutyBlockID:    s.blockB1.BlockID,
		DutyDayOfWeek:  1,
		DutySemesterID: s.semester.SemesterID,
	})

	snap, err := LoadSnapshot(db, s.semester.SemesterID)
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if len(snap.Sessions) != 1 || len(snap.Duties) != 1 {
		t.Fatalf("snapshot incomplete: %d sessions, %d duties", len(snap.Sessions), len(snap.Duties))
	}
	sv := snap.Sessions[0]
	if sv.ClassName != "Math10" {
		t.Errorf("session view should carry class name, got %q", sv.ClassName)
	}
	if sv.GradeID == nil || *sv.GradeID != s.grade10.GradeID {
		t.Errorf("session view should carry the class grade")
	}
	if len(sv.TeacherIDs) != 1 || sv.TeacherIDs[0] != s.teach1.TeacherID {
		t.Errorf("session view should carry teacher links, got %v", sv.TeacherIDs)
	}
	if len(snap.Classes) != 5 {
		t.Errorf("expected 5 classes in lookup, got %d", len(snap.Classes))
	}
	if _, ok := snap.Blocks[s.blockB2.BlockID]; !ok {
		t.Error("block lookup missing seeded block")
	}
	if _, ok := snap.Rooms[s.roomR1.RoomID]; !ok {
		t.Error("room lookup missing seeded room")
	}
}

func TestLoadSnapshot_UnknownSemester(t *testing.T) {
	db := openTestDB(t)
	seedSchool(t, db)

	if _, err := LoadSnapshot(db, uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

/* =======================================================
   ScheduleForHomeroom — termasuk shim inferensi legacy
   ======================================================= */

func TestScheduleForHomeroom_DirectAndLegacyRows(t *testing.T) {
	db := openTestDB(t)
	s := seedSchool(t, db)

	// 1) baris modern: homeroom terisi langsung
	direct := seedSession(t, db, s, s.math10.ClassID, s.blockB1.BlockID, 1, s.roomR1.RoomID, &s.homeroom.HomeroomID)
	// 2) baris legacy: homeroom NULL, class grade-specific match grade homeroom
	legacyGrade := seedSession(t, db, s, s.bio10.ClassID, s.blockB2.BlockID, 2, s.roomR1.RoomID, nil)
	// 3) baris legacy: homeroom NULL, class shared di section homeroom
	legacyShared := seedSession(t, db, s, s.spanish.ClassID, s.blockB1.BlockID, 3, s.roomR1.RoomID, nil)
	// 4) bukan milik homeroom ini: grade 11, homeroom NULL → harus TIDAK muncul
	seedSession(t, db, s, s.math11.ClassID, s.blockB2.BlockID, 4, s.roomR1.RoomID, nil)

	items, err := ScheduleForHomeroom(db, s.homeroom.HomeroomID, s.semester.SemesterID)
	if err != nil {
		t.Fatalf("ScheduleForHomeroom: %v", err)
	}
	got := map[uuid.UUID]bool{}
	for _, it := range items {
		got[it.SessionID] = true
	}
	for _, want := range []uuid.UUID{direct.ClassSessionID, legacyGrade.ClassSessionID, legacyShared.ClassSessionID} {
		if !got[want] {
			t.Errorf("missing session %s in homeroom schedule (%d items)", want, len(items))
		}
	}
	if len(items) != 3 {
		t.Errorf("grade-11 legacy row leaked in: got %d items", len(items))
	}
}

func TestScheduleForHomeroom_UnknownHomeroom(t *testing.T) {
	db := openTestDB(t)
	s := seedSchool(t, db)

	if _, err := ScheduleForHomeroom(db, uuid.New(), s.semester.SemesterID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

/* =======================================================
   ScheduleForResource
   ======================================================= */

func TestScheduleForResource_Teacher(t *testing.T) {
	db := openTestDB(t)
	s := seedSchool(t, db)

	mine := seedSession(t, db, s, s.math10.ClassID, s.blockB1.BlockID, 1, s.roomR1.RoomID, &s.homeroom.HomeroomID, s.teach1.TeacherID)
	seedSession(t, db, s, s.math11.ClassID, s.blockB2.BlockID, 2, s.roomR1.RoomID, nil, s.teach2.TeacherID)
	mustCreate(t, db, &m.DutyModel{
		DutyName:       "Rapat Kurikulum",
		DutyTeacherID:  s.teach1.TeacherID,
		DutyRoomID:     s.roomR2.RoomID,
		DutyBlockID:    s.blockB2.BlockID,
		DutyDayOfWeek:  5,
		DutySemesterID: s.semester.SemesterID,
	})

	sched, err := ScheduleForResource(db, "teacher", s.teach1.TeacherID, s.semester.SemesterID)
	if err != nil {
		t.Fatalf("ScheduleForResource: %v", err)
	}
	if len(sched.Sessions) != 1 || sched.Sessions[0].SessionID != mine.ClassSessionID {
		t.Errorf("expected only teach1's session, got %+v", sched.Sessions)
	}
	if len(sched.Duties) != 1 || sched.Duties[0].DutyName != "Rapat Kurikulum" {
		t.Errorf("teacher schedule must include duties, got %+v", sched.Duties)
	}
}

func TestScheduleForResource_Room(t *testing.T) {
	db := openTestDB(t)
	s := seedSchool(t, db)

	inR1 := seedSession(t, db, s, s.math10.ClassID, s.blockB1.BlockID, 1, s.roomR1.RoomID, &s.homeroom.HomeroomID)
	seedSession(t, db, s, s.math11.ClassID, s.blockB1.BlockID, 2, s.roomR2.RoomID, nil)

	sched, err := ScheduleForResource(db, "room", s.roomR1.RoomID, s.semester.SemesterID)
	if err != nil {
		t.Fatalf("ScheduleForResource: %v", err)
	}
	if len(sched.Sessions) != 1 || sched.Sessions[0].SessionID != inR1.ClassSessionID {
		t.Errorf("expected only R1's session, got %+v", sched.Sessions)
	}
}

func TestScheduleForResource_BadKindAndMissingID(t *testing.T) {
	db := openTestDB(t)
	s := seedSchool(t, db)

	var badReq *BadRequestError
	if _, err := ScheduleForResource(db, "homeroom", uuid.New(), s.semester.SemesterID); !errors.As(err, &badReq) {
		t.Errorf("unknown kind: expected BadRequestError, got %v", err)
	}
	if _, err := ScheduleForResource(db, "teacher", uuid.New(), s.semester.SemesterID); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown teacher: expected ErrNotFound, got %v", err)
	}
}
