package school

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	"schedulr_backend/internals/features/school/structure/model"
)

// Struktur sesuai dengan dto.CreateSectionRequest (plus grades & homerooms nested)
type SectionSeed struct {
	SectionName string `json:"section_name"`
	Grades      []struct {
		GradeName string `json:"grade_name"`
	} `json:"grades"`
	Homerooms []struct {
		HomeroomName string   `json:"homeroom_name"`
		GradeNames   []string `json:"grade_names"`
	} `json:"homerooms"`
}

func SeedStructureFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var sections []SectionSeed
	if err := json.Unmarshal(file, &sections); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, s := range sections {
		var existing model.SectionModel
		if err := db.Where("section_name = ?", s.SectionName).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Section %s sudah ada, lewati...", s.SectionName)
			continue
		}

		newSection := model.SectionModel{SectionName: s.SectionName}
		if err := db.Create(&newSection).Error; err != nil {
			log.Printf("❌ Gagal insert section %s: %v", s.SectionName, err)
			continue
		}

		gradeByName := map[string]model.GradeModel{}
		for _, g := range s.Grades {
			newGrade := model.GradeModel{GradeName: g.GradeName, GradeSectionID: newSection.SectionID}
			if err := db.Create(&newGrade).Error; err != nil {
				log.Printf("❌ Gagal insert grade %s: %v", g.GradeName, err)
				continue
			}
			gradeByName[g.GradeName] = newGrade
		}

		for _, h := range s.Homerooms {
			newHomeroom := model.HomeroomModel{HomeroomName: h.HomeroomName, HomeroomSectionID: newSection.SectionID}
			if err := db.Create(&newHomeroom).Error; err != nil {
				log.Printf("❌ Gagal insert homeroom %s: %v", h.HomeroomName, err)
				continue
			}
			for _, gn := range h.GradeNames {
				g, ok := gradeByName[gn]
				if !ok {
					log.Printf("⚠️ Homeroom %s menunjuk grade %s yang tidak ada di seed", h.HomeroomName, gn)
					continue
				}
				link := model.HomeroomGradeModel{
					HomeroomGradeHomeroomID: newHomeroom.HomeroomID,
					HomeroomGradeGradeID:    g.GradeID,
				}
				if err := db.Create(&link).Error; err != nil {
					log.Printf("❌ Gagal link homeroom %s ke grade %s: %v", h.HomeroomName, gn, err)
				}
			}
		}

		log.Printf("✅ Berhasil insert section %s (%d grade, %d homeroom)",
			newSection.SectionName, len(s.Grades), len(s.Homerooms))
	}
}
