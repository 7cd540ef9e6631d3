package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Case status constants
const (
	CaseStatusPending    = "PENDING"
	CaseStatusInProgress = "IN_PROGRESS"
	CaseStatusCompleted  = "COMPLETED"
	CaseStatusCancelled  = "CANCELLED"
)

// Case is the trackable unit of work opened from a Lead. It carries the
// status, the billed value and the professional assignment. The Lead
// reference is set at creation and never changes; the Professional
// reference is absent until assignment and, once set, is never cleared.
type Case struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// OpenedAt is set when the case is opened and is immutable.
	OpenedAt time.Time `gorm:"not null;index" json:"opened_at"`

	Status      string  `gorm:"not null;default:PENDING;index" json:"status"`
	BilledValue float64 `gorm:"not null;default:0" json:"billed_value"`

	// Lead relationship (required, immutable)
	LeadID string `gorm:"type:uuid;not null;index" json:"lead_id"`
	Lead   Lead   `gorm:"foreignKey:LeadID" json:"lead,omitempty"`

	// Professional assignment (optional until assigned)
	ProfessionalID *string       `gorm:"type:uuid;index" json:"professional_id,omitempty"`
	Professional   *Professional `gorm:"foreignKey:ProfessionalID" json:"professional,omitempty"`
}

// BeforeCreate hook to generate UUID and set OpenedAt
func (c *Case) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.OpenedAt.IsZero() {
		c.OpenedAt = time.Now()
	}
	return nil
}

// TableName specifies the table name for Case model
func (Case) TableName() string {
	return "cases"
}

// IsAssigned checks if a professional has been assigned
func (c *Case) IsAssigned() bool {
	return c.ProfessionalID != nil && *c.ProfessionalID != ""
}

// IsPending checks if the case is still awaiting assignment
func (c *Case) IsPending() bool {
	return c.Status == CaseStatusPending
}

// IsValidCaseStatus checks if the status belongs to the closed set.
// COMPLETED and CANCELLED are terminal by convention only; no transition
// ordering is enforced.
func IsValidCaseStatus(status string) bool {
	validStatuses := []string{
		CaseStatusPending,
		CaseStatusInProgress,
		CaseStatusCompleted,
		CaseStatusCancelled,
	}
	for _, s := range validStatuses {
		if s == status {
			return true
		}
	}
	return false
}
