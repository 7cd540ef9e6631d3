package services

import (
	"github.com/Nycksionia/atende50/models"
	"gorm.io/gorm"
)

// DashboardSummary holds the aggregate counters for the admin dashboard.
type DashboardSummary struct {
	ProfessionalCount int64   `json:"professional_count"`
	LeadCount         int64   `json:"lead_count"`
	CaseCount         int64   `json:"case_count"`
	TotalBilled       float64 `json:"total_billed"`
}

// ComputeDashboard derives the dashboard counters from the stores. An
// empty store yields all zeros: the billed sum is coalesced, never null.
func ComputeDashboard(db *gorm.DB) (*DashboardSummary, error) {
	summary := &DashboardSummary{}

	if err := db.Model(&models.Professional{}).Count(&summary.ProfessionalCount).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&models.Lead{}).Count(&summary.LeadCount).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&models.Case{}).Count(&summary.CaseCount).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&models.Case{}).
		Select("COALESCE(SUM(billed_value), 0)").
		Scan(&summary.TotalBilled).Error; err != nil {
		return nil, err
	}

	return summary, nil
}
