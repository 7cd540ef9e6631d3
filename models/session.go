package models

import (
	"time"
)

// Session holds the per-browser authentication state: the authenticated
// flag, the admin bound to it after a successful login, and the failed
// login attempt counter used by the login throttle. The counter lives on
// the session row so that no ambient process state is involved.
type Session struct {
	ID        string    `gorm:"primarykey;type:varchar(36)" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Token          string    `gorm:"uniqueIndex;not null;type:varchar(128)" json:"-"`
	Authenticated  bool      `gorm:"not null;default:false" json:"authenticated"`
	AdminID        *string   `gorm:"type:uuid;index" json:"admin_id,omitempty"`
	FailedAttempts int       `gorm:"not null;default:0" json:"failed_attempts"`
	ExpiresAt      time.Time `gorm:"not null;index" json:"expires_at"`
	IPAddress      string    `gorm:"type:varchar(45)" json:"ip_address"`
	UserAgent      string    `gorm:"type:text" json:"user_agent"`

	// Relationships
	Admin *Admin `gorm:"foreignKey:AdminID" json:"-"`
}

// TableName specifies the table name for Session model
func (Session) TableName() string {
	return "sessions"
}

// IsExpired checks if the session has expired
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}
