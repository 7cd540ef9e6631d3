package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SkillSeparator joins the declared skill tags into the stored column.
const SkillSeparator = ", "

// Professional is a registered service provider. Professionals are never
// overwritten: a duplicate document number is rejected at registration.
type Professional struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name     string `gorm:"not null" json:"name"`
	Nickname string `json:"nickname,omitempty"`
	Document string `gorm:"uniqueIndex;not null" json:"document"` // national ID
	Phone    string `gorm:"not null" json:"phone"`
	Address  string `json:"address,omitempty"`
	City     string `json:"city,omitempty"`

	// Skills holds the declared skill tags as a normalized joined string.
	// Semantically a set; use SkillList/SetSkills.
	Skills string `json:"skills,omitempty"`

	// Relationships
	Cases []Case `gorm:"foreignKey:ProfessionalID" json:"cases,omitempty"`
}

// BeforeCreate hook to generate UUID
func (p *Professional) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for Professional model
func (Professional) TableName() string {
	return "professionals"
}

// SkillList returns the declared skill tags as a slice.
func (p *Professional) SkillList() []string {
	if p.Skills == "" {
		return nil
	}
	return strings.Split(p.Skills, SkillSeparator)
}

// SetSkills normalizes a list of skill tags into the stored column:
// tags are trimmed, empties dropped, and duplicates removed while
// preserving first-occurrence order.
func (p *Professional) SetSkills(skills []string) {
	seen := make(map[string]bool, len(skills))
	normalized := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		normalized = append(normalized, s)
	}
	p.Skills = strings.Join(normalized, SkillSeparator)
}
