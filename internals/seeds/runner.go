package seeds

import (
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	authModel "eduadmin_backend/internals/features/auth/model"
)

// RunAllSeeds dipanggil sekali saat startup ketika DB_SEED=true.
// Saat ini cuma bootstrap akun admin pertama; seeding master data lain
// (course, center) lewat API saja.
func RunAllSeeds(db *gorm.DB) {
	seedFirstAdmin(db)
}

// seedFirstAdmin membuat akun admin dari SEED_ADMIN_EMAIL/SEED_ADMIN_PASSWORD.
// Dilewati kalau email sudah terdaftar, jadi aman dipanggil berulang.
func seedFirstAdmin(db *gorm.DB) {
	email := os.Getenv("SEED_ADMIN_EMAIL")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("[INFO] SEED_ADMIN_EMAIL/SEED_ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	var existing authModel.AdminUser
	if err := db.Where("admin_user_email = ?", email).First(&existing).Error; err == nil {
		log.Printf("[INFO] admin %s already exists, skipping seed", email)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[ERROR] failed to hash seed admin password: %v", err)
		return
	}

	admin := authModel.AdminUser{
		AdminUserName:     "Administrator",
		AdminUserEmail:    email,
		AdminUserPassword: string(hashed),
		AdminUserRole:     authModel.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("[ERROR] failed to seed admin: %v", err)
		return
	}
	log.Printf("[INFO] seeded first admin %s", email)
}
