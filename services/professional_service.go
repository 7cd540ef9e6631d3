package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Nycksionia/atende50/models"
	"gorm.io/gorm"
)

// Identity store errors
var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrDuplicateDocument     = errors.New("a professional with this document already exists")
	ErrProfessionalNotFound  = errors.New("professional not found")
	ErrProfessionalInUse     = errors.New("professional is referenced by existing cases")
)

// ProfessionalInput holds the registration form fields.
type ProfessionalInput struct {
	Name     string
	Nickname string
	Document string
	Phone    string
	Address  string
	City     string
	Skills   []string
}

// RegisterProfessional creates a new professional. Name, document and
// phone are required; the document must be unique across all
// professionals. A duplicate registration fails without touching the
// existing record.
func RegisterProfessional(db *gorm.DB, input ProfessionalInput) (*models.Professional, error) {
	name := strings.TrimSpace(input.Name)
	document := strings.TrimSpace(input.Document)
	phone := strings.TrimSpace(input.Phone)

	if name == "" || document == "" || phone == "" {
		return nil, ErrMissingRequiredFields
	}

	var count int64
	if err := db.Model(&models.Professional{}).Where("document = ?", document).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check document uniqueness: %w", err)
	}
	if count > 0 {
		return nil, ErrDuplicateDocument
	}

	professional := &models.Professional{
		Name:     name,
		Nickname: strings.TrimSpace(input.Nickname),
		Document: document,
		Phone:    phone,
		Address:  strings.TrimSpace(input.Address),
		City:     strings.TrimSpace(input.City),
	}
	professional.SetSkills(input.Skills)

	if err := db.Create(professional).Error; err != nil {
		return nil, fmt.Errorf("failed to create professional: %w", err)
	}

	return professional, nil
}

// GetProfessionalByID retrieves a professional by ID.
func GetProfessionalByID(db *gorm.DB, id string) (*models.Professional, error) {
	var professional models.Professional
	if err := db.First(&professional, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfessionalNotFound
		}
		return nil, err
	}
	return &professional, nil
}

// ListProfessionals returns all professionals ordered by name.
func ListProfessionals(db *gorm.DB) ([]models.Professional, error) {
	var professionals []models.Professional
	err := db.Order("name ASC").Find(&professionals).Error
	return professionals, err
}

// DeleteProfessional removes a professional. Deletion is disallowed
// while any case references the professional, so case history always
// resolves its assignment.
func DeleteProfessional(db *gorm.DB, id string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var professional models.Professional
		if err := tx.First(&professional, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProfessionalNotFound
			}
			return err
		}

		var referenced int64
		if err := tx.Model(&models.Case{}).Where("professional_id = ?", id).Count(&referenced).Error; err != nil {
			return fmt.Errorf("failed to check case references: %w", err)
		}
		if referenced > 0 {
			return ErrProfessionalInUse
		}

		return tx.Delete(&professional).Error
	})
}
