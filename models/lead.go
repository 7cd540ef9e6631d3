package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Lead is a customer's submitted service request. Leads are immutable
// after creation and own exactly one Case, created in the same
// transaction. The document number is intentionally not unique: the same
// customer may submit several requests.
type Lead struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name     string `gorm:"not null" json:"name"`
	Document string `gorm:"not null" json:"document"`
	Phone    string `gorm:"not null" json:"phone"`
	Address  string `json:"address,omitempty"`
	Problem  string `gorm:"type:text;not null" json:"problem"`

	// Relationships
	Cases []Case `gorm:"foreignKey:LeadID" json:"cases,omitempty"`
}

// BeforeCreate hook to generate UUID
func (l *Lead) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for Lead model
func (Lead) TableName() string {
	return "leads"
}
