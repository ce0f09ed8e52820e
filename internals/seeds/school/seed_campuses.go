package school

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	campusModel "schoolku_backend/internals/features/school/campuses/model"
	roomModel "schoolku_backend/internals/features/school/rooms/model"
)

type CampusSeed struct {
	Name    string   `json:"name"`
	Address *string  `json:"address"`
	Phone   *string  `json:"phone"`
	Rooms   []string `json:"rooms"`
}

// SeedCampusesFromJSON membuat campus beserta daftar ruangannya.
func SeedCampusesFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file campus:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var inputs []CampusSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, data := range inputs {
		var campus campusModel.CampusModel
		err := db.Where("campus_name = ?", data.Name).First(&campus).Error
		if err == nil {
			log.Printf("ℹ️ Campus '%s' sudah ada, dilewati.", data.Name)
		} else {
			campus = campusModel.CampusModel{
				CampusName:    data.Name,
				CampusAddress: data.Address,
				CampusPhone:   data.Phone,
			}
			if err := db.Create(&campus).Error; err != nil {
				log.Printf("❌ Gagal insert campus '%s': %v", data.Name, err)
				continue
			}
			log.Printf("✅ Campus '%s' berhasil dibuat.", data.Name)
		}

		for _, code := range data.Rooms {
			var room roomModel.RoomModel
			if err := db.Where("room_code = ? AND room_campus_id = ?", code, campus.CampusID).
				First(&room).Error; err == nil {
				continue
			}
			room = roomModel.RoomModel{
				RoomCode:     code,
				RoomCampusID: campus.CampusID,
			}
			if err := db.Create(&room).Error; err != nil {
				log.Printf("❌ Gagal insert room '%s': %v", code, err)
			}
		}
	}
}
