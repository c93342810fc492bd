// file: internals/features/school/scheduling/service/evaluator_test.go
package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

/* =======================================================
   Fixture builders
   ======================================================= */

type fixture struct {
	snap *Snapshot

	semesterID uuid.UUID
	blockB1    uuid.UUID
	blockB2    uuid.UUID
	roomR1     uuid.UUID
	roomR2     uuid.UUID
	roomR3     uuid.UUID
	grade10    uuid.UUID
	grade11    uuid.UUID
	sectionID  uuid.UUID
	teacherT1  uuid.UUID
	teacherT2  uuid.UUID
}

func newFixture() *fixture {
	f := &fixture{
		semesterID: uuid.New(),
		blockB1:    uuid.New(),
		blockB2:    uuid.New(),
		roomR1:     uuid.New(),
		roomR2:     uuid.New(),
		roomR3:     uuid.New(),
		grade10:    uuid.New(),
		grade11:    uuid.New(),
		sectionID:  uuid.New(),
		teacherT1:  uuid.New(),
		teacherT2:  uuid.New(),
	}
	f.snap = &Snapshot{
		SemesterID: f.semesterID,
		Classes:    map[uuid.UUID]ClassInfo{},
		Blocks: map[uuid.UUID]string{
			f.blockB1: "B1",
			f.blockB2: "B2",
		},
		Rooms: map[uuid.UUID]string{
			f.roomR1: "R1",
			f.roomR2: "R2",
			f.roomR3: "R3",
		},
	}
	return f
}

func (f *fixture) addClass(name string, gradeID *uuid.UUID) uuid.UUID {
	id := uuid.New()
	f.snap.Classes[id] = ClassInfo{ClassID: id, Name: name, SectionID: f.sectionID, GradeID: gradeID}
	return id
}

func (f *fixture) addSession(classID, blockID uuid.UUID, day int, roomID uuid.UUID, teacherIDs ...uuid.UUID) uuid.UUID {
	id := uuid.New()
	info := f.snap.Classes[classID]
	f.snap.Sessions = append(f.snap.Sessions, SessionView{
		SessionID:  id,
		ClassID:    classID,
		ClassName:  info.Name,
		GradeID:    info.GradeID,
		BlockID:    blockID,
		DayOfWeek:  day,
		RoomID:     roomID,
		TeacherIDs: teacherIDs,
	})
	return id
}

func (f *fixture) addDuty(name string, teacherID, roomID, blockID uuid.UUID, day int) uuid.UUID {
	id := uuid.New()
	f.snap.Duties = append(f.snap.Duties, DutyView{
		DutyID:    id,
		Name:      name,
		TeacherID: teacherID,
		RoomID:    roomID,
		BlockID:   blockID,
		DayOfWeek: day,
	})
	return id
}

func conflictsOfType(v *Verdict, t ConflictType) []Conflict {
	var out []Conflict
	for _, c := range v.Conflicts {
		if c.Type == t {
			out = append(out, c)
		}
	}
	return out
}

/* =======================================================
   Self-exclusion
   ======================================================= */

func TestEvaluate_MoveToOwnSlotNeverConflictsWithItself(t *testing.T) {
	f := newFixture()
	math := f.addClass("Math10", &f.grade10)
	sid := f.addSession(math, f.blockB1, 1, f.roomR1, f.teacherT1)

	v, err := Evaluate(f.snap, Placement{
		SessionID: &sid,
		BlockID:   f.blockB1,
		DayOfWeek: 1,
		RoomID:    f.roomR1,
	})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if !v.Valid {
		t.Errorf("expected valid move to own slot, got conflicts: %+v", v.Conflicts)
	}
}

/* =======================================================
   Teacher conflicts
   ======================================================= */

func TestEvaluate_TeacherDoubleBooking(t *testing.T) {
	// Skenario: T1 mengajar Math10 di (B1, Senin, R1). Memindahkan session
	// Math11 (juga T1) ke (B1, Senin, ruangan mana pun) harus invalid dengan
	// satu konflik teacher yang menunjuk session Math10.
	f := newFixture()
	math10 := f.addClass("Math10", &f.grade10)
	math11 := f.addClass("Math11", &f.grade11)
	math10Session := f.addSession(math10, f.blockB1, 1, f.roomR1, f.teacherT1)
	math11Session := f.addSession(math11, f.blockB2, 2, f.roomR2, f.teacherT1)

	v, err := Evaluate(f.snap, Placement{
		SessionID: &math11Session,
		BlockID:   f.blockB1,
		DayOfWeek: 1,
		RoomID:    f.roomR3,
	})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if v.Valid {
		t.Fatal("expected invalid verdict")
	}
	teacher := conflictsOfType(v, ConflictTeacher)
	if len(teacher) != 1 {
		t.Fatalf("expected 1 teacher conflict, got %d (%+v)", len(teacher), v.Conflicts)
	}
	if teacher[0].SessionID == nil || *teacher[0].SessionID != math10Session {
		t.Errorf("teacher conflict should reference the colliding session %s, got %v", math10Session, teacher[0].SessionID)
	}
}

func TestEvaluate_TeacherConflictIsSymmetric(t *testing.T) {
	f := newFixture()
	clsA := f.addClass("A", nil)
	clsB := f.addClass("B", nil)

	// A sudah terpasang; create B untuk guru yang sama → konflik
	f.addSession(clsA, f.blockB1, 3, f.roomR1, f.teacherT1)
	v1, err := Evaluate(f.snap, Placement{
		ClassID:    clsB,
		BlockID:    f.blockB1,
		DayOfWeek:  3,
		RoomID:     f.roomR2,
		TeacherIDs: []uuid.UUID{f.teacherT1},
	})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	// Arah sebaliknya: B terpasang, create A
	g := newFixture()
	gA := g.addClass("A", nil)
	gB := g.addClass("B", nil)
	g.addSession(gB, g.blockB1, 3, g.roomR2, g.teacherT1)
	v2, err := Evaluate(g.snap, Placement{
		ClassID:    gA,
		BlockID:    g.blockB1,
		DayOfWeek:  3,
		RoomID:     g.roomR1,
		TeacherIDs: []uuid.UUID{g.teacherT1},
	})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	if len(conflictsOfType(v1, ConflictTeacher)) == 0 || len(conflictsOfType(v2, ConflictTeacher)) == 0 {
		t.Errorf("teacher conflict must hold in both directions: %+v / %+v", v1.Conflicts, v2.Conflicts)
	}
}

func TestEvaluate_TeacherDutyConflict(t *testing.T) {
	f := newFixture()
	cls := f.addClass("Fisika", &f.grade10)
	dutyID := f.addDuty("Piket Gerbang", f.teacherT1, f.roomR3, f.blockB1, 2)

	v, err := Evaluate(f.snap, Placement{
		ClassID:    cls,
		BlockID:    f.blockB1,
		DayOfWeek:  2,
		RoomID:     f.roomR1,
		TeacherIDs: []uuid.UUID{f.teacherT1},
	})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	teacher := conflictsOfType(v, ConflictTeacher)
	if len(teacher) != 1 {
		t.Fatalf("expected 1 teacher conflict from duty, got %+v", v.Conflicts)
	}
	if teacher[0].DutyID == nil || *teacher[0].DutyID != dutyID {
		t.Errorf("conflict should reference duty %s, got %v", dutyID, teacher[0].DutyID)
	}
}

/* =======================================================
   Room conflicts
   ======================================================= */

func TestEvaluate_RoomDoubleBooking(t *testing.T) {
	f := newFixture()
	clsA := f.addClass("A", nil)
	clsB := f.addClass("B", nil)
	occupied := f.addSession(clsA, f.blockB1, 1, f.roomR1, f.teacherT1)

	v, err := Evaluate(f.snap, Placement{
		ClassID:    clsB,
		BlockID:    f.blockB1,
		DayOfWeek:  1,
		RoomID:     f.roomR1,
		TeacherIDs: []uuid.UUID{f.teacherT2},
	})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	room := conflictsOfType(v, ConflictRoom)
	if len(room) != 1 {
		t.Fatalf("expected 1 room conflict, got %+v", v.Conflicts)
	}
	if room[0].SessionID == nil || *room[0].SessionID != occupied {
		t.Errorf("room conflict should reference session %s", occupied)
	}
}

func TestEvaluate_RoomSharedWithDuties(t *testing.T) {
	f := newFixture()
	cls := f.addClass("Kimia", nil)
	f.addDuty("Rapat Kurikulum", f.teacherT2, f.roomR1, f.blockB2, 4)

	v, err := Evaluate(f.snap, Placement{
		ClassID:   cls,
		BlockID:   f.blockB2,
		DayOfWeek: 4,
		RoomID:    f.roomR1,
	})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if len(conflictsOfType(v, ConflictRoom)) != 1 {
		t.Errorf("duty occupying the room must produce a room conflict, got %+v", v.Conflicts)
	}
}

/* =======================================================
   Grade exclusivity
   ======================================================= */

func TestEvaluate_SameGradeOverlap(t *testing.T) {
	f := newFixture()
	math := f.addClass("Math10", &f.grade10)
	bio := f.addClass("Bio10", &f.grade10)
	f.addSession(math, f.blockB1, 1, f.roomR1, f.teacherT1)

	v, err := Evaluate(f.snap, Placement{
		ClassID:    bio,
		BlockID:    f.blockB1,
		DayOfWeek:  1,
		RoomID:     f.roomR2,
		TeacherIDs: []uuid.UUID{f.teacherT2},
	})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if len(conflictsOfType(v, ConflictHomeroom)) != 1 {
		t.Errorf("same grade in same slot must conflict, got %+v", v.Conflicts)
	}
}

func TestEvaluate_SharedVsGradeSpecificBothDirections(t *testing.T) {
	// Spanish (shared) vs Bio10 (grade-specific), ruangan beda → tetap konflik homeroom.
	f := newFixture()
	bio := f.addClass("Bio10", &f.grade10)
	spanish := f.addClass("Spanish", nil)
	f.addSession(bio, f.blockB2, 2, f.roomR3, f.teacherT1)

	v, err := Evaluate(f.snap, Placement{
		ClassID:    spanish,
		BlockID:    f.blockB2,
		DayOfWeek:  2,
		RoomID:     f.roomR2,
		TeacherIDs: []uuid.UUID{f.teacherT2},
	})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if v.Valid || len(conflictsOfType(v, ConflictHomeroom)) != 1 {
		t.Errorf("shared vs grade-specific must conflict even across rooms, got %+v", v.Conflicts)
	}

	// Arah sebaliknya: shared sudah terpasang, tempatkan grade-specific
	g := newFixture()
	gBio := g.addClass("Bio10", &g.grade10)
	gSpanish := g.addClass("Spanish", nil)
	g.addSession(gSpanish, g.blockB2, 2, g.roomR2, g.teacherT2)

	v2, err := Evaluate(g.snap, Placement{
		ClassID:    gBio,
		BlockID:    g.blockB2,
		DayOfWeek:  2,
		RoomID:     g.roomR3,
		TeacherIDs: []uuid.UUID{g.teacherT1},
	})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if v2.Valid || len(conflictsOfType(v2, ConflictHomeroom)) != 1 {
		t.Errorf("grade-specific vs shared must conflict, got %+v", v2.Conflicts)
	}
}

func TestEvaluate_TwoSharedClassesNeverGradeConflict(t *testing.T) {
	f := newFixture()
	spanish := f.addClass("Spanish", nil)
	art := f.addClass("Art", nil)
	f.addSession(spanish, f.blockB1, 5, f.roomR1, f.teacherT1)

	v, err := Evaluate(f.snap, Placement{
		ClassID:    art,
		BlockID:    f.blockB1,
		DayOfWeek:  5,
		RoomID:     f.roomR2,
		TeacherIDs: []uuid.UUID{f.teacherT2},
	})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if !v.Valid {
		t.Errorf("two shared classes in different rooms must not conflict, got %+v", v.Conflicts)
	}
}

/* =======================================================
   Warnings & additivity
   ======================================================= */

func TestEvaluate_DuplicateSameDayIsWarningNotConflict(t *testing.T) {
	f := newFixture()
	math := f.addClass("Math10", &f.grade10)
	f.addSession(math, f.blockB1, 1, f.roomR1, f.teacherT1)

	// Class sama, hari sama, block beda → valid + warning duplicate_class
	v, err := Evaluate(f.snap, Placement{
		ClassID:    math,
		BlockID:    f.blockB2,
		DayOfWeek:  1,
		RoomID:     f.roomR1,
		TeacherIDs: []uuid.UUID{f.teacherT1},
	})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if !v.Valid {
		t.Fatalf("duplicate same-day must stay valid, got conflicts %+v", v.Conflicts)
	}
	if len(v.Warnings) != 1 || v.Warnings[0].Type != WarningDuplicateClass {
		t.Fatalf("expected one duplicate_class warning, got %+v", v.Warnings)
	}
	if v.Warnings[0].Count != 1 {
		t.Errorf("warning should carry the count, got %d", v.Warnings[0].Count)
	}
}

func TestEvaluate_ConflictsAreAdditive(t *testing.T) {
	// Satu penempatan bisa sekaligus bentrok guru DAN ruangan; caller harus
	// melihat semua alasan, bukan yang pertama saja.
	f := newFixture()
	clsA := f.addClass("A", nil)
	clsB := f.addClass("B", nil)
	f.addSession(clsA, f.blockB1, 1, f.roomR1, f.teacherT1)

	v, err := Evaluate(f.snap, Placement{
		ClassID:    clsB,
		BlockID:    f.blockB1,
		DayOfWeek:  1,
		RoomID:     f.roomR1,
		TeacherIDs: []uuid.UUID{f.teacherT1},
	})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if len(conflictsOfType(v, ConflictTeacher)) != 1 || len(conflictsOfType(v, ConflictRoom)) != 1 {
		t.Errorf("expected teacher + room conflicts together, got %+v", v.Conflicts)
	}
}

/* =======================================================
   NotFound & bad input
   ======================================================= */

func TestEvaluate_MissingReferencesAreErrorsNotConflicts(t *testing.T) {
	f := newFixture()
	cls := f.addClass("Math10", &f.grade10)

	cases := []struct {
		name string
		p    Placement
	}{
		{"missing class", Placement{ClassID: uuid.New(), BlockID: f.blockB1, DayOfWeek: 1, RoomID: f.roomR1}},
		{"missing block", Placement{ClassID: cls, BlockID: uuid.New(), DayOfWeek: 1, RoomID: f.roomR1}},
		{"missing room", Placement{ClassID: cls, BlockID: f.blockB1, DayOfWeek: 1, RoomID: uuid.New()}},
	}
	for _, tc := range cases {
		if _, err := Evaluate(f.snap, tc.p); !errors.Is(err, ErrNotFound) {
			t.Errorf("%s: expected ErrNotFound, got %v", tc.name, err)
		}
	}

	missing := uuid.New()
	if _, err := Evaluate(f.snap, Placement{SessionID: &missing, BlockID: f.blockB1, DayOfWeek: 1, RoomID: f.roomR1}); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing session: expected ErrNotFound, got %v", err)
	}
}

func TestEvaluate_DayOutOfRange(t *testing.T) {
	f := newFixture()
	cls := f.addClass("Math10", &f.grade10)

	var badReq *BadRequestError
	if _, err := Evaluate(f.snap, Placement{ClassID: cls, BlockID: f.blockB1, DayOfWeek: 6, RoomID: f.roomR1}); !errors.As(err, &badReq) {
		t.Errorf("day 6: expected BadRequestError, got %v", err)
	}
}

/* =======================================================
   Referential transparency
   ======================================================= */

func TestEvaluate_DoesNotMutateSnapshot(t *testing.T) {
	f := newFixture()
	math := f.addClass("Math10", &f.grade10)
	bio := f.addClass("Bio10", &f.grade10)
	f.addSession(math, f.blockB1, 1, f.roomR1, f.teacherT1)

	p := Placement{ClassID: bio, BlockID: f.blockB1, DayOfWeek: 1, RoomID: f.roomR2}
	v1, err := Evaluate(f.snap, p)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	v2, err := Evaluate(f.snap, p)
	if err != nil {
		t.Fatalf("Evaluate (repeat): %v", err)
	}
	if len(f.snap.Sessions) != 1 {
		t.Fatal("snapshot sessions mutated by Evaluate")
	}
	if v1.Valid != v2.Valid || len(v1.Conflicts) != len(v2.Conflicts) || len(v1.Warnings) != len(v2.Warnings) {
		t.Errorf("repeated evaluation diverged: %+v vs %+v", v1, v2)
	}
}
