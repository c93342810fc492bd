// file: internals/features/school/scheduling/service/evaluator.go
package service

import (
	"fmt"

	"github.com/google/uuid"

	"schedulr_backend/internals/constants"
)

/* =======================================================
   Conflict Evaluator — fungsi murni di atas Snapshot.
   Tidak menyentuh DB, aman dipanggil berulang dengan
   snapshot yang sama (hasil selalu identik).

   Semua check dijalankan (tidak short-circuit) supaya
   operator melihat SEMUA alasan sekaligus.
   ======================================================= */

// Placement: usulan penempatan — move session lama (SessionID terisi)
// atau create session baru untuk sebuah class (SessionID nil).
type Placement struct {
	SessionID  *uuid.UUID
	ClassID    uuid.UUID
	BlockID    uuid.UUID
	DayOfWeek  int
	RoomID     uuid.UUID
	TeacherIDs []uuid.UUID
}

// Evaluate menilai satu usulan penempatan terhadap snapshot.
// Konflik = data, bukan error; error hanya untuk referensi hilang.
func Evaluate(snap *Snapshot, p Placement) (*Verdict, error) {
	if !constants.ValidDayOfWeek(p.DayOfWeek) {
		return nil, &BadRequestError{Msg: fmt.Sprintf("day_of_week %d di luar rentang %d..%d", p.DayOfWeek, constants.MinDayOfWeek, constants.MaxDayOfWeek)}
	}

	// Move: lengkapi class + guru dari session yang dipindah (kalau caller tidak mengisi)
	if p.SessionID != nil {
		cur := findSession(snap, *p.SessionID)
		if cur == nil {
			return nil, fmt.Errorf("%w: session %s", ErrNotFound, *p.SessionID)
		}
		if p.ClassID == uuid.Nil {
			p.ClassID = cur.ClassID
		}
		if len(p.TeacherIDs) == 0 {
			p.TeacherIDs = cur.TeacherIDs
		}
	}

	cls, ok := snap.Classes[p.ClassID]
	if !ok {
		return nil, fmt.Errorf("%w: class %s", ErrNotFound, p.ClassID)
	}
	blockName, ok := snap.Blocks[p.BlockID]
	if !ok {
		return nil, fmt.Errorf("%w: block %s", ErrNotFound, p.BlockID)
	}
	if _, ok := snap.Rooms[p.RoomID]; !ok {
		return nil, fmt.Errorf("%w: room %s", ErrNotFound, p.RoomID)
	}

	verdict := &Verdict{Conflicts: []Conflict{}, Warnings: []Warning{}}
	slotLabel := fmt.Sprintf("%s %s", constants.DayName(p.DayOfWeek), blockName)

	teacherSet := map[uuid.UUID]bool{}
	for _, t := range p.TeacherIDs {
		teacherSet[t] = true
	}

	dupSameDay := 0
	var sameSlot []SessionView

	for i := range snap.Sessions {
		s := &snap.Sessions[i]
		// Self-exclusion: move ke slot sendiri tidak boleh lapor bentrok dengan dirinya
		if p.SessionID != nil && s.SessionID == *p.SessionID {
			continue
		}

		// Warning duplikat: class sama, hari sama (block apa pun)
		if s.ClassID == p.ClassID && s.DayOfWeek == p.DayOfWeek {
			dupSameDay++
		}

		if s.BlockID != p.BlockID || s.DayOfWeek != p.DayOfWeek {
			continue
		}
		sameSlot = append(sameSlot, *s)

		// 1) Guru double-book (vs session lain)
		for _, tid := range s.TeacherIDs {
			if teacherSet[tid] {
				sid := s.SessionID
				verdict.Conflicts = append(verdict.Conflicts, Conflict{
					Type:      ConflictTeacher,
					Message:   fmt.Sprintf("Guru sudah mengajar %s pada %s", s.ClassName, slotLabel),
					SessionID: &sid,
				})
			}
		}

		// 2) Ruangan double-book (vs session lain)
		if s.RoomID == p.RoomID {
			sid := s.SessionID
			verdict.Conflicts = append(verdict.Conflicts, Conflict{
				Type:      ConflictRoom,
				Message:   fmt.Sprintf("Ruangan sudah dipakai %s pada %s", s.ClassName, slotLabel),
				SessionID: &sid,
			})
		}
	}

	// 3+4) Aturan grade (same-grade & shared-vs-grade-specific) —
	// dipakai ulang persis oleh commit engine terhadap state in-transaction.
	verdict.Conflicts = append(verdict.Conflicts, GradeConflicts(cls, sameSlot)...)

	// Duties bersaing untuk guru dan ruangan
	for i := range snap.Duties {
		d := &snap.Duties[i]
		if d.BlockID != p.BlockID || d.DayOfWeek != p.DayOfWeek {
			continue
		}
		if teacherSet[d.TeacherID] {
			did := d.DutyID
			verdict.Conflicts = append(verdict.Conflicts, Conflict{
				Type:    ConflictTeacher,
				Message: fmt.Sprintf("Guru punya tugas %q pada %s", d.Name, slotLabel),
				DutyID:  &did,
			})
		}
		if d.RoomID == p.RoomID {
			did := d.DutyID
			verdict.Conflicts = append(verdict.Conflicts, Conflict{
				Type:    ConflictRoom,
				Message: fmt.Sprintf("Ruangan dipakai tugas %q pada %s", d.Name, slotLabel),
				DutyID:  &did,
			})
		}
	}

	// 5) Warning non-blocking: class yang sama sudah punya session lain di hari ini
	if dupSameDay > 0 {
		verdict.Warnings = append(verdict.Warnings, Warning{
			Type:    WarningDuplicateClass,
			Message: fmt.Sprintf("%s sudah punya %d session lain pada %s", cls.Name, dupSameDay, constants.DayName(p.DayOfWeek)),
			Count:   dupSameDay,
		})
	}

	verdict.Valid = len(verdict.Conflicts) == 0
	return verdict, nil
}

// GradeConflicts menerapkan dua aturan kohort pada satu slot:
//   - dua kelas dengan grade yang SAMA tidak boleh sejajar
//     (kohort yang sama tidak bisa hadir di dua kelas sekaligus);
//   - kelas shared (grade nil) eksklusif terhadap SEMUA kelas
//     grade-specific di slot itu, dua arah.
//
// Dua kelas shared di ruangan berbeda tidak pernah bentrok di aturan ini.
func GradeConflicts(target ClassInfo, sameSlot []SessionView) []Conflict {
	var out []Conflict
	for i := range sameSlot {
		s := &sameSlot[i]
		switch {
		case target.GradeID != nil && s.GradeID != nil && *target.GradeID == *s.GradeID:
			sid := s.SessionID
			out = append(out, Conflict{
				Type:      ConflictHomeroom,
				Message:   fmt.Sprintf("Grade yang sama sudah mengikuti %s pada slot ini", s.ClassName),
				SessionID: &sid,
			})
		case target.GradeID == nil && s.GradeID != nil:
			sid := s.SessionID
			out = append(out, Conflict{
				Type:      ConflictHomeroom,
				Message:   fmt.Sprintf("Kelas shared tidak bisa sejajar dengan kelas grade-specific %s", s.ClassName),
				SessionID: &sid,
			})
		case target.GradeID != nil && s.GradeID == nil:
			sid := s.SessionID
			out = append(out, Conflict{
				Type:      ConflictHomeroom,
				Message:   fmt.Sprintf("Kelas grade-specific tidak bisa sejajar dengan kelas shared %s", s.ClassName),
				SessionID: &sid,
			})
		}
	}
	return out
}

func findSession(snap *Snapshot, id uuid.UUID) *SessionView {
	for i := range snap.Sessions {
		if snap.Sessions[i].SessionID == id {
			return &snap.Sessions[i]
		}
	}
	return nil
}
