package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Nycksionia/atende50/models"
	"gorm.io/gorm"
)

// Case ledger errors
var (
	ErrLeadNotFound         = errors.New("lead not found")
	ErrCaseNotFound         = errors.New("case not found")
	ErrProfessionalRequired = errors.New("a professional must be selected")
	ErrNegativeBilledValue  = errors.New("billed value must not be negative")
	ErrInvalidStatus        = errors.New("invalid case status")
)

// ServiceRequestInput holds the public service request form fields.
type ServiceRequestInput struct {
	Name     string
	Document string
	Phone    string
	Address  string
	Problem  string
}

// SubmitServiceRequest creates a lead and opens its case in a single
// transaction. Either both records exist afterwards or neither does.
func SubmitServiceRequest(db *gorm.DB, input ServiceRequestInput) (*models.Lead, *models.Case, error) {
	name := strings.TrimSpace(input.Name)
	document := strings.TrimSpace(input.Document)
	phone := strings.TrimSpace(input.Phone)
	problem := strings.TrimSpace(input.Problem)

	if name == "" || document == "" || phone == "" || problem == "" {
		return nil, nil, ErrMissingRequiredFields
	}

	var lead *models.Lead
	var opened *models.Case

	err := db.Transaction(func(tx *gorm.DB) error {
		lead = &models.Lead{
			Name:     name,
			Document: document,
			Phone:    phone,
			Address:  strings.TrimSpace(input.Address),
			Problem:  problem,
		}
		if err := tx.Create(lead).Error; err != nil {
			return fmt.Errorf("failed to create lead: %w", err)
		}

		var err error
		opened, err = OpenCase(tx, lead.ID)
		return err
	})
	if err != nil {
		return nil, nil, err
	}

	return lead, opened, nil
}

// OpenCase opens a new case bound to an existing lead: status PENDING,
// no professional, billed value 0.
func OpenCase(tx *gorm.DB, leadID string) (*models.Case, error) {
	var count int64
	if err := tx.Model(&models.Lead{}).Where("id = ?", leadID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to look up lead: %w", err)
	}
	if count == 0 {
		return nil, ErrLeadNotFound
	}

	opened := &models.Case{
		LeadID:      leadID,
		Status:      models.CaseStatusPending,
		BilledValue: 0,
	}
	if err := tx.Create(opened).Error; err != nil {
		return nil, fmt.Errorf("failed to open case: %w", err)
	}

	return opened, nil
}

// AssignProfessional binds a professional to a case, records the billed
// value and moves the case to IN_PROGRESS. The whole update runs in one
// transaction: if the case or the professional cannot be resolved, or
// the billed value is negative, the case is left completely unchanged.
func AssignProfessional(db *gorm.DB, caseID, professionalID string, billedValue float64) (*models.Case, error) {
	if strings.TrimSpace(professionalID) == "" {
		return nil, ErrProfessionalRequired
	}
	if billedValue < 0 {
		return nil, ErrNegativeBilledValue
	}

	var assigned *models.Case
	err := db.Transaction(func(tx *gorm.DB) error {
		var c models.Case
		if err := tx.First(&c, "id = ?", caseID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCaseNotFound
			}
			return err
		}

		var count int64
		if err := tx.Model(&models.Professional{}).Where("id = ?", professionalID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to look up professional: %w", err)
		}
		if count == 0 {
			return ErrProfessionalNotFound
		}

		c.ProfessionalID = &professionalID
		c.BilledValue = billedValue
		c.Status = models.CaseStatusInProgress

		if err := tx.Save(&c).Error; err != nil {
			return fmt.Errorf("failed to update case: %w", err)
		}

		assigned = &c
		return nil
	})
	if err != nil {
		return nil, err
	}

	return assigned, nil
}

// UpdateCaseStatus sets the case status. Only the closed status set is
// accepted; no transition ordering is enforced, so any valid status may
// follow any other. Writing the same status twice is a harmless no-op.
func UpdateCaseStatus(db *gorm.DB, caseID, status string) (*models.Case, error) {
	if !models.IsValidCaseStatus(status) {
		return nil, ErrInvalidStatus
	}

	var updated *models.Case
	err := db.Transaction(func(tx *gorm.DB) error {
		var c models.Case
		if err := tx.First(&c, "id = ?", caseID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCaseNotFound
			}
			return err
		}

		c.Status = status
		if err := tx.Save(&c).Error; err != nil {
			return fmt.Errorf("failed to update case: %w", err)
		}

		updated = &c
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// GetCaseByID retrieves a case with its lead and professional preloaded.
func GetCaseByID(db *gorm.DB, id string) (*models.Case, error) {
	var c models.Case
	err := db.Preload("Lead").Preload("Professional").First(&c, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCaseNotFound
		}
		return nil, err
	}
	return &c, nil
}

// ListCases returns all cases newest-first by opening time, with lead
// and professional preloaded for the admin worklist.
func ListCases(db *gorm.DB) ([]models.Case, error) {
	var cases []models.Case
	err := db.Preload("Lead").Preload("Professional").
		Order("opened_at DESC").
		Find(&cases).Error
	return cases, err
}

// ListLeads returns all leads newest-first.
func ListLeads(db *gorm.DB) ([]models.Lead, error) {
	var leads []models.Lead
	err := db.Order("created_at DESC").Find(&leads).Error
	return leads, err
}
