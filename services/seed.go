package services

import (
	"log"

	"github.com/Nycksionia/atende50/models"
	"gorm.io/gorm"
)

// EnsureDefaultAdmin guarantees that exactly one admin with the default
// username exists. The check-then-create is idempotent across restarts;
// an existing record is never overwritten.
func EnsureDefaultAdmin(db *gorm.DB, username, password string) error {
	var existing models.Admin
	if err := db.Where("username = ?", username).First(&existing).Error; err == nil {
		return nil
	}

	hashedPassword, err := HashPassword(password)
	if err != nil {
		return err
	}

	admin := &models.Admin{
		Username: username,
		Password: hashedPassword,
	}

	if err := db.Create(admin).Error; err != nil {
		return err
	}

	log.Printf("[SEED] Created default admin: %s", username)
	return nil
}
