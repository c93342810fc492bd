// file: internals/features/school/scheduling/service/snapshot.go
package service

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	sm "schedulr_backend/internals/features/school/academics/semesters/model"
	cm "schedulr_backend/internals/features/school/classes/model"
	rm "schedulr_backend/internals/features/school/resources/model"
	m "schedulr_backend/internals/features/school/scheduling/model"
	stm "schedulr_backend/internals/features/school/structure/model"
)

/* =======================================================
   Snapshot — potret jadwal satu semester untuk evaluator.
   Read-only; evaluator tidak pernah menyentuh DB.
   ======================================================= */

type SessionView struct {
	SessionID  uuid.UUID
	ClassID    uuid.UUID
	ClassName  string
	GradeID    *uuid.UUID // nil = kelas shared
	BlockID    uuid.UUID
	DayOfWeek  int
	RoomID     uuid.UUID
	HomeroomID *uuid.UUID
	TeacherIDs []uuid.UUID
}

type DutyView struct {
	DutyID    uuid.UUID
	Name      string
	TeacherID uuid.UUID
	RoomID    uuid.UUID
	BlockID   uuid.UUID
	DayOfWeek int
}

type ClassInfo struct {
	ClassID   uuid.UUID
	Name      string
	SectionID uuid.UUID
	GradeID   *uuid.UUID // nil = shared
}

type Snapshot struct {
	SemesterID uuid.UUID
	Sessions   []SessionView
	Duties     []DutyView
	Classes    map[uuid.UUID]ClassInfo
	Blocks     map[uuid.UUID]string // block_id → nama
	Rooms      map[uuid.UUID]string // room_id → nama
}

// LoadSnapshot membangun snapshot satu semester: semua session + link guru,
// duties, dan lookup class/block/room yang dibutuhkan evaluator.
func LoadSnapshot(db *gorm.DB, semesterID uuid.UUID) (*Snapshot, error) {
	var semCnt int64
	if err := db.Model(&sm.SemesterModel{}).Where("semester_id = ?", semesterID).Count(&semCnt).Error; err != nil {
		return nil, err
	}
	if semCnt == 0 {
		return nil, fmt.Errorf("%w: semester %s", ErrNotFound, semesterID)
	}

	snap := &Snapshot{
		SemesterID: semesterID,
		Classes:    map[uuid.UUID]ClassInfo{},
		Blocks:     map[uuid.UUID]string{},
		Rooms:      map[uuid.UUID]string{},
	}

	var classes []cm.ClassModel
	if err := db.Where("class_semester_id = ?", semesterID).Find(&classes).Error; err != nil {
		return nil, err
	}
	for _, c := range classes {
		snap.Classes[c.ClassID] = ClassInfo{
			ClassID:   c.ClassID,
			Name:      c.ClassName,
			SectionID: c.ClassSectionID,
			GradeID:   c.ClassGradeID,
		}
	}

	var blocks []sm.BlockModel
	if err := db.Where("block_semester_id = ?", semesterID).Find(&blocks).Error; err != nil {
		return nil, err
	}
	for _, b := range blocks {
		snap.Blocks[b.BlockID] = b.BlockName
	}

	var rooms []rm.RoomModel
	if err := db.Find(&rooms).Error; err != nil {
		return nil, err
	}
	for _, r := range rooms {
		snap.Rooms[r.RoomID] = r.RoomName
	}

	var sessions []m.ClassSessionModel
	if err := db.Preload("Teachers").
		Where("class_session_semester_id = ?", semesterID).
		Find(&sessions).Error; err != nil {
		return nil, err
	}
	snap.Sessions = make([]SessionView, 0, len(sessions))
	for _, s := range sessions {
		view := SessionView{
			SessionID:  s.ClassSessionID,
			ClassID:    s.ClassSessionClassID,
			BlockID:    s.ClassSessionBlockID,
			DayOfWeek:  s.ClassSessionDayOfWeek,
			RoomID:     s.ClassSessionRoomID,
			HomeroomID: s.ClassSessionHomeroomID,
		}
		if info, ok := snap.Classes[s.ClassSessionClassID]; ok {
			view.ClassName = info.Name
			view.GradeID = info.GradeID
		}
		for _, t := range s.Teachers {
			view.TeacherIDs = append(view.TeacherIDs, t.ClassSessionTeacherTeacherID)
		}
		snap.Sessions = append(snap.Sessions, view)
	}

	var duties []m.DutyModel
	if err := db.Where("duty_semester_id = ?", semesterID).Find(&duties).Error; err != nil {
		return nil, err
	}
	snap.Duties = make([]DutyView, 0, len(duties))
	for _, d := range duties {
		snap.Duties = append(snap.Duties, DutyView{
			DutyID:    d.DutyID,
			Name:      d.DutyName,
			TeacherID: d.DutyTeacherID,
			RoomID:    d.DutyRoomID,
			BlockID:   d.DutyBlockID,
			DayOfWeek: d.DutyDayOfWeek,
		})
	}

	return snap, nil
}

/* =======================================================
   Query gateway — akses baca sempit untuk kolaborator luar.
   Tidak ada logika konflik di sini.
   ======================================================= */

type ScheduleItem struct {
	SessionID  uuid.UUID   `json:"session_id"`
	ClassID    uuid.UUID   `json:"class_id"`
	ClassName  string      `json:"class_name"`
	BlockID    uuid.UUID   `json:"block_id"`
	DayOfWeek  int         `json:"day_of_week"`
	RoomID     uuid.UUID   `json:"room_id"`
	HomeroomID *uuid.UUID  `json:"homeroom_id,omitempty"`
	TeacherIDs []uuid.UUID `json:"teacher_ids"`
}

type DutyItem struct {
	DutyID    uuid.UUID `json:"duty_id"`
	DutyName  string    `json:"duty_name"`
	TeacherID uuid.UUID `json:"teacher_id"`
	RoomID    uuid.UUID `json:"room_id"`
	BlockID   uuid.UUID `json:"block_id"`
	DayOfWeek int       `json:"day_of_week"`
}

type ResourceSchedule struct {
	Sessions []ScheduleItem `json:"sessions"`
	Duties   []DutyItem     `json:"duties"`
}

// ScheduleForHomeroom: session yang homeroom-nya = X, PLUS baris legacy
// (homeroom NULL) yang class-nya match salah satu grade X atau shared di
// section X. Fallback inferensi ini shim migrasi pra-backfill, bukan
// logika engine yang berlanjut.
func ScheduleForHomeroom(db *gorm.DB, homeroomID, semesterID uuid.UUID) ([]ScheduleItem, error) {
	var hr stm.HomeroomModel
	if err := db.Preload("Grades").First(&hr, "homeroom_id = ?", homeroomID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("%w: homeroom %s", ErrNotFound, homeroomID)
		}
		return nil, err
	}

	gradeIDs := make([]uuid.UUID, 0, len(hr.Grades))
	for _, g := range hr.Grades {
		gradeIDs = append(gradeIDs, g.GradeID)
	}
	if len(gradeIDs) == 0 {
		gradeIDs = append(gradeIDs, uuid.Nil) // hindari IN () kosong
	}

	var sessions []m.ClassSessionModel
	if err := db.Preload("Teachers").
		Joins("JOIN classes ON classes.class_id = class_sessions.class_session_class_id AND classes.class_deleted_at IS NULL").
		Where("class_session_semester_id = ?", semesterID).
		Where(`class_session_homeroom_id = ?
			OR (class_session_homeroom_id IS NULL
				AND (classes.class_grade_id IN ?
					OR (classes.class_grade_id IS NULL AND classes.class_section_id = ?)))`,
			homeroomID, gradeIDs, hr.HomeroomSectionID).
		Find(&sessions).Error; err != nil {
		return nil, err
	}

	return sessionsToItems(db, sessions)
}

// ScheduleForResource: jadwal satu resource (teacher/room) dalam semester,
// termasuk duties yang memakan slot resource itu.
func ScheduleForResource(db *gorm.DB, kind string, resourceID, semesterID uuid.UUID) (*ResourceSchedule, error) {
	var sessions []m.ClassSessionModel
	var duties []m.DutyModel

	switch kind {
	case "teacher":
		var cnt int64
		if err := db.Model(&rm.TeacherModel{}).Where("teacher_id = ?", resourceID).Count(&cnt).Error; err != nil {
			return nil, err
		}
		if cnt == 0 {
			return nil, fmt.Errorf("%w: teacher %s", ErrNotFound, resourceID)
		}
		if err := db.Preload("Teachers").
			Joins("JOIN class_session_teachers cst ON cst.class_session_teacher_session_id = class_sessions.class_session_id").
			Where("cst.class_session_teacher_teacher_id = ? AND class_session_semester_id = ?", resourceID, semesterID).
			Find(&sessions).Error; err != nil {
			return nil, err
		}
		if err := db.Where("duty_teacher_id = ? AND duty_semester_id = ?", resourceID, semesterID).
			Find(&duties).Error; err != nil {
			return nil, err
		}
	case "room":
		var cnt int64
		if err := db.Model(&rm.RoomModel{}).Where("room_id = ?", resourceID).Count(&cnt).Error; err != nil {
			return nil, err
		}
		if cnt == 0 {
			return nil, fmt.Errorf("%w: room %s", ErrNotFound, resourceID)
		}
		if err := db.Preload("Teachers").
			Where("class_session_room_id = ? AND class_session_semester_id = ?", resourceID, semesterID).
			Find(&sessions).Error; err != nil {
			return nil, err
		}
		if err := db.Where("duty_room_id = ? AND duty_semester_id = ?", resourceID, semesterID).
			Find(&duties).Error; err != nil {
			return nil, err
		}
	default:
		return nil, &BadRequestError{Msg: fmt.Sprintf("resource kind tidak dikenal: %q (teacher|room)", kind)}
	}

	items, err := sessionsToItems(db, sessions)
	if err != nil {
		return nil, err
	}
	out := &ResourceSchedule{Sessions: items, Duties: make([]DutyItem, 0, len(duties))}
	for _, d := range duties {
		out.Duties = append(out.Duties, DutyItem{
			DutyID:    d.DutyID,
			DutyName:  d.DutyName,
			TeacherID: d.DutyTeacherID,
			RoomID:    d.DutyRoomID,
			BlockID:   d.DutyBlockID,
			DayOfWeek: d.DutyDayOfWeek,
		})
	}
	return out, nil
}

func sessionsToItems(db *gorm.DB, sessions []m.ClassSessionModel) ([]ScheduleItem, error) {
	classIDs := make([]uuid.UUID, 0, len(sessions))
	for _, s := range sessions {
		classIDs = append(classIDs, s.ClassSessionClassID)
	}
	names := map[uuid.UUID]string{}
	if len(classIDs) > 0 {
		var classes []cm.ClassModel
		if err := db.Where("class_id IN ?", classIDs).Find(&classes).Error; err != nil {
			return nil, err
		}
		for _, c := range classes {
			names[c.ClassID] = c.ClassName
		}
	}

	items := make([]ScheduleItem, 0, len(sessions))
	for _, s := range sessions {
		item := ScheduleItem{
			SessionID:  s.ClassSessionID,
			ClassID:    s.ClassSessionClassID,
			ClassName:  names[s.ClassSessionClassID],
			BlockID:    s.ClassSessionBlockID,
			DayOfWeek:  s.ClassSessionDayOfWeek,
			RoomID:     s.ClassSessionRoomID,
			HomeroomID: s.ClassSessionHomeroomID,
			TeacherIDs: make([]uuid.UUID, 0, len(s.Teachers)),
		}
		for _, t := range s.Teachers {
			item.TeacherIDs = append(item.TeacherIDs, t.ClassSessionTeacherTeacherID)
		}
		items = append(items, item)
	}
	return items, nil
}
