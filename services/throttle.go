package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Nycksionia/atende50/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LockoutThreshold is the number of consecutive failed login attempts
// after which the session is ejected from the login surface.
const LockoutThreshold = 3

// ErrLockedOut signals that the session reached the lockout threshold.
// The counter is already reset when this is returned: the lockout is a
// soft throttle that interrupts the current attempt streak, not a ban.
var ErrLockedOut = errors.New("too many failed login attempts")

// EnsureSession resolves the session for a browser token, creating a
// fresh unauthenticated one (counter at 0) when the token is absent or
// no longer valid. This is what the login page does on first view.
func EnsureSession(db *gorm.DB, token, ipAddress, userAgent string) (*models.Session, error) {
	if token != "" {
		var session models.Session
		err := db.Where("token = ?", token).First(&session).Error
		if err == nil && !session.IsExpired() {
			return &session, nil
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to look up session: %w", err)
		}
		// Expired rows are left for the cleanup job; fall through and
		// issue a new session.
	}

	newToken, err := GenerateSessionToken()
	if err != nil {
		return nil, err
	}

	session := &models.Session{
		ID:        uuid.New().String(),
		Token:     newToken,
		ExpiresAt: time.Now().Add(DefaultSessionDuration),
		IPAddress: ipAddress,
		UserAgent: userAgent,
	}

	if err := db.Create(session).Error; err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return session, nil
}

// GetSession looks up a session by token without creating one. Expired
// sessions are deleted on sight.
func GetSession(db *gorm.DB, token string) (*models.Session, error) {
	var session models.Session
	err := db.Preload("Admin").Where("token = ?", token).First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("session not found")
		}
		return nil, fmt.Errorf("failed to look up session: %w", err)
	}

	if session.IsExpired() {
		db.Delete(&session)
		return nil, fmt.Errorf("session expired")
	}

	return &session, nil
}

// RecordFailure increments the session's failed attempt counter. If the
// counter reaches LockoutThreshold it is reset to 0 and ErrLockedOut is
// returned; the caller must eject the session to a neutral page.
// Otherwise the attempts-so-far count is returned so the caller can
// render an "attempt N of 3" message.
func RecordFailure(db *gorm.DB, session *models.Session) (int, error) {
	session.FailedAttempts++

	if session.FailedAttempts >= LockoutThreshold {
		session.FailedAttempts = 0
		if err := db.Save(session).Error; err != nil {
			return 0, fmt.Errorf("failed to persist session: %w", err)
		}
		LogSecurityEvent("LOGIN_LOCKOUT", session.ID, "lockout threshold reached")
		return 0, ErrLockedOut
	}

	if err := db.Save(session).Error; err != nil {
		return 0, fmt.Errorf("failed to persist session: %w", err)
	}
	return session.FailedAttempts, nil
}

// RecordSuccess marks the session authenticated, binds it to the admin
// and resets the failed attempt counter.
func RecordSuccess(db *gorm.DB, session *models.Session, adminID string) error {
	session.Authenticated = true
	session.AdminID = &adminID
	session.FailedAttempts = 0
	if err := db.Save(session).Error; err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}

// IsAuthenticated reports whether the session holds a successful login.
func IsAuthenticated(session *models.Session) bool {
	return session != nil && session.Authenticated
}

// Logout deletes the session row, clearing both the authenticated flag
// and the attempt counter.
func Logout(db *gorm.DB, session *models.Session) error {
	if err := db.Delete(session).Error; err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// CleanupExpiredSessions removes all expired sessions from the database
func CleanupExpiredSessions(db *gorm.DB) error {
	result := db.Where("expires_at < ?", time.Now()).Delete(&models.Session{})
	if result.Error != nil {
		return fmt.Errorf("failed to cleanup expired sessions: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		log.Printf("Cleaned up %d expired sessions", result.RowsAffected)
	}
	return nil
}
