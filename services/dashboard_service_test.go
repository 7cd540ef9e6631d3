package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeDashboard(t *testing.T) {
	db := setupServiceTestDB()

	t.Run("Empty store yields all zeros", func(t *testing.T) {
		summary, err := ComputeDashboard(db)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), summary.ProfessionalCount)
		assert.Equal(t, int64(0), summary.LeadCount)
		assert.Equal(t, int64(0), summary.CaseCount)
		assert.Equal(t, 0.0, summary.TotalBilled)
	})

	t.Run("Counts and billed sum", func(t *testing.T) {
		prof, err := RegisterProfessional(db, ProfessionalInput{
			Name: "Gina", Document: "10", Phone: "10",
		})
		assert.NoError(t, err)

		_, c1, err := SubmitServiceRequest(db, ServiceRequestInput{
			Name: "Hugo", Document: "11", Phone: "11", Problem: "vazamento",
		})
		assert.NoError(t, err)
		_, c2, err := SubmitServiceRequest(db, ServiceRequestInput{
			Name: "Iris", Document: "12", Phone: "12", Problem: "curto",
		})
		assert.NoError(t, err)

		_, err = AssignProfessional(db, c1.ID, prof.ID, 120.5)
		assert.NoError(t, err)
		_, err = AssignProfessional(db, c2.ID, prof.ID, 79.5)
		assert.NoError(t, err)

		summary, err := ComputeDashboard(db)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), summary.ProfessionalCount)
		assert.Equal(t, int64(2), summary.LeadCount)
		assert.Equal(t, int64(2), summary.CaseCount)
		assert.Equal(t, 200.0, summary.TotalBilled)
	})
}
