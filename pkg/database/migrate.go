package database

import (
	"gorm.io/gorm"

	"github.com/portfolio-studio/backend/internal/models"
)

func migratedModels() []any {
	return []any{
		&models.User{},
		&models.Profile{},
		&models.Skill{},
		&models.Experience{},
		&models.Education{},
		&models.Project{},
		&models.SocialLink{},
		&models.Message{},
		&models.Resume{},
		&models.ResumeLog{},
	}
}

// Migrate brings the schema up to date. AutoMigrate handles the tables;
// anything it cannot express runs as a custom step afterwards.
func Migrate(db *gorm.DB) error {
	if err := enableUUIDGeneration(db); err != nil {
		return err
	}
	if err := db.AutoMigrate(migratedModels()...); err != nil {
		return err
	}
	return addResumeLogIndex(db)
}

// gen_random_uuid needs pgcrypto on PostgreSQL < 13.
func enableUUIDGeneration(db *gorm.DB) error {
	return db.Exec(`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`).Error
}

func addResumeLogIndex(db *gorm.DB) error {
	return db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_resume_logs_user_created
		ON resume_logs(user_id, created_at DESC)
	`).Error
}
