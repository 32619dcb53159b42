package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"eduadmin_backend/internals/configs"
	authModel "eduadmin_backend/internals/features/auth/model"
	certModel "eduadmin_backend/internals/features/certificates/model"
	cmsModel "eduadmin_backend/internals/features/cms/model"
	appModel "eduadmin_backend/internals/features/exams/applications/model"
	paperModel "eduadmin_backend/internals/features/exams/papers/model"
	paymentModel "eduadmin_backend/internals/features/finance/payments/model"
	centerModel "eduadmin_backend/internals/features/institute/centers/model"
	courseModel "eduadmin_backend/internals/features/institute/courses/model"
	studentModel "eduadmin_backend/internals/features/institute/students/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("[INFO] connecting to PostgreSQL...")

	sslmode := configs.GetEnv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=eduadmin&options=-c statement_timeout=5000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // PgBouncer transaction pooling
	}), &gorm.Config{
		Logger:         configs.NewGormLogger(),
		TranslateError: true, // unique violations surface as gorm.ErrDuplicatedKey
	})
	if err != nil {
		log.Fatalf("[ERROR] DB connection failed: %v", err)
	}
	DB = db
	log.Println("[INFO] DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("[WARN] pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// AutoMigrate runs schema migration when DB_AUTOMIGRATE=true. Hosted deployments
// run with it off and manage the schema out of band.
func AutoMigrate() {
	if configs.GetEnv("DB_AUTOMIGRATE", "true") != "true" {
		return
	}
	if err := DB.AutoMigrate(
		&authModel.AdminUser{},
		&authModel.RefreshToken{},
		&centerModel.Center{},
		&courseModel.Course{},
		&courseModel.Subject{},
		&studentModel.Student{},
		&paymentModel.Payment{},
		&paperModel.ExamPaper{},
		&paperModel.Question{},
		&appModel.ExamApplication{},
		&certModel.TemplateConfig{},
		&cmsModel.CmsContent{},
		&cmsModel.GalleryItem{},
		&cmsModel.LegalDocument{},
		&cmsModel.TeamMember{},
	); err != nil {
		log.Fatalf("[ERROR] automigrate failed: %v", err)
	}
	log.Println("[INFO] schema migrated.")
}

func WarmUpQueries() {
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("[WARN] warm-up ping err: %v", err)
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
