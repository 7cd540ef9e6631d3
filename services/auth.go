package services

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"time"

	"github.com/Nycksionia/atende50/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	// BcryptCost is the cost factor for bcrypt hashing
	BcryptCost = 10
	// SessionTokenLength is the length of the session token in bytes (64 chars hex)
	SessionTokenLength = 32
	// DefaultSessionDuration is the default session duration (7 days)
	DefaultSessionDuration = 7 * 24 * time.Hour
)

// dummyHash is compared against when the username does not exist, so
// that lookup failures and password failures take the same time.
var dummyHash string

func init() {
	hash, err := HashPassword("dummy_password_for_timing_mitigation")
	if err == nil {
		dummyHash = hash
	}
}

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(bytes), nil
}

// VerifyPassword verifies a password against a bcrypt hash
func VerifyPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}

// GenerateSessionToken generates a cryptographically secure random token
func GenerateSessionToken() (string, error) {
	bytes := make([]byte, SessionTokenLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}

// Authenticate checks an admin credential pair. The result is a single
// combined signal: it never reveals whether the username or the secret
// was wrong.
func Authenticate(db *gorm.DB, username, password string) (*models.Admin, bool) {
	var admin models.Admin
	if err := db.Where("username = ?", username).First(&admin).Error; err != nil {
		VerifyPassword(dummyHash, password)
		return nil, false
	}

	if !VerifyPassword(admin.Password, password) {
		return nil, false
	}

	return &admin, true
}

// LogSecurityEvent logs security-related events
func LogSecurityEvent(eventType, sessionID, details string) {
	log.Printf("[SECURITY] %s | Session: %s | Details: %s", eventType, sessionID, details)
}
