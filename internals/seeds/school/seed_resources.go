package school

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	"schedulr_backend/internals/features/school/resources/model"
)

type TeacherSeed struct {
	TeacherName string `json:"teacher_name"`
}

type RoomSeed struct {
	RoomName     string `json:"room_name"`
	RoomTypeName string `json:"room_type_name"`
}

func SeedTeachersFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var teachers []TeacherSeed
	if err := json.Unmarshal(file, &teachers); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, t := range teachers {
		var existing model.TeacherModel
		if err := db.Where("teacher_name = ?", t.TeacherName).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Guru %s sudah ada, lewati...", t.TeacherName)
			continue
		}
		newTeacher := model.TeacherModel{TeacherName: t.TeacherName}
		if err := db.Create(&newTeacher).Error; err != nil {
			log.Printf("❌ Gagal insert guru %s: %v", t.TeacherName, err)
		} else {
			log.Printf("✅ Berhasil insert guru %s", newTeacher.TeacherName)
		}
	}
}

func SeedRoomsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var rooms []RoomSeed
	if err := json.Unmarshal(file, &rooms); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, r := range rooms {
		var existing model.RoomModel
		if err := db.Where("room_name = ?", r.RoomName).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Ruangan %s sudah ada, lewati...", r.RoomName)
			continue
		}

		// room_type dibuat on-demand dari nama
		var roomType model.RoomTypeModel
		if err := db.Where("room_type_name = ?", r.RoomTypeName).First(&roomType).Error; err != nil {
			roomType = model.RoomTypeModel{RoomTypeName: r.RoomTypeName}
			if err := db.Create(&roomType).Error; err != nil {
				log.Printf("❌ Gagal insert room type %s: %v", r.RoomTypeName, err)
				continue
			}
		}

		newRoom := model.RoomModel{RoomName: r.RoomName, RoomRoomTypeID: roomType.RoomTypeID}
		if err := db.Create(&newRoom).Error; err != nil {
			log.Printf("❌ Gagal insert ruangan %s: %v", r.RoomName, err)
		} else {
			log.Printf("✅ Berhasil insert ruangan %s (%s)", newRoom.RoomName, r.RoomTypeName)
		}
	}
}
