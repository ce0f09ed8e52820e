package seeds

import (
	"gorm.io/gorm"

	schoolSeeds "schoolku_backend/internals/seeds/school"
	userSeeds "schoolku_backend/internals/seeds/users"
)

// RunAllSeeds dipanggil manual saat setup environment baru
// (mis. lewat endpoint internal atau binary sekali jalan).
func RunAllSeeds(db *gorm.DB) {
	userSeeds.SeedUsersFromJSON(db, "internals/seeds/users/data_users.json")
	schoolSeeds.SeedCampusesFromJSON(db, "internals/seeds/school/data_campuses.json")
}
