package seeds

import (
	school "schedulr_backend/internals/seeds/school"

	"gorm.io/gorm"
)

func RunAllSeeds(db *gorm.DB) {

	//* Struktur sekolah (section → grades → homerooms)
	school.SeedStructureFromJSON(db, "internals/seeds/school/data_structure.json")

	//* Resources
	school.SeedTeachersFromJSON(db, "internals/seeds/school/data_teachers.json")
	school.SeedRoomsFromJSON(db, "internals/seeds/school/data_rooms.json")
}
