package workload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/workload/internal/app/models"
)

func assignment(hours float64, confirmed bool) *models.WorkloadAssignment {
	return &models.WorkloadAssignment{TotalHours: hours, IsConfirmed: confirmed}
}

func TestSummarize_Overload(t *testing.T) {
	policy := Policy{MaxHours: 200, UnderloadHours: 96, TPGroupCeilingFactor: 4}
	list := []*models.WorkloadAssignment{assignment(63, true), assignment(42, false), assignment(115, false)}

	w := policy.Summarize(7, "2024-2025", models.SemesterOne, list, 0)

	assert.Equal(t, 220.0, w.TotalHours)
	assert.Equal(t, models.StatusOverload, w.Status)
	assert.Equal(t, 20.0, w.OverloadHours)
	assert.Equal(t, 0.0, w.UnderloadHours)
	assert.Equal(t, 63.0, w.ConfirmedHours)
	assert.Equal(t, 3, w.AssignmentCount)
	assert.Equal(t, int64(7), w.TeacherID)
}

func TestSummarize_StatusBoundaries(t *testing.T) {
	policy := Policy{MaxHours: 200, UnderloadHours: 100, TPGroupCeilingFactor: 4}

	tests := []struct {
		total  float64
		status models.WorkloadStatus
	}{
		{0, models.StatusUnderload},
		{99.5, models.StatusUnderload},
		{100, models.StatusNormal},
		{200, models.StatusNormal},
		{200.5, models.StatusOverload},
	}
	for _, tt := range tests {
		w := policy.Summarize(1, "2024-2025", models.SemesterTwo, []*models.WorkloadAssignment{assignment(tt.total, false)}, 0)
		assert.Equal(t, tt.status, w.Status, "total %v", tt.total)
		assert.GreaterOrEqual(t, w.OverloadHours, 0.0)
	}
}

func TestSummarize_UnderloadHours(t *testing.T) {
	policy := Policy{MaxHours: 192, UnderloadHours: 96, TPGroupCeilingFactor: 4}

	w := policy.Summarize(1, "2024-2025", models.SemesterOne, []*models.WorkloadAssignment{assignment(60, false)}, 0)
	assert.Equal(t, models.StatusUnderload, w.Status)
	assert.Equal(t, 36.0, w.UnderloadHours)
}

func TestSummarize_TeacherOverride(t *testing.T) {
	policy := DefaultPolicy()

	w := policy.Summarize(1, "2024-2025", models.SemesterOne, []*models.WorkloadAssignment{assignment(150, false)}, 120)
	assert.Equal(t, 120.0, w.MaxHours)
	assert.Equal(t, models.StatusOverload, w.Status)
	assert.Equal(t, 30.0, w.OverloadHours)
}

func TestSummarize_EmptyList(t *testing.T) {
	w := DefaultPolicy().Summarize(1, "2024-2025", models.SemesterOne, nil, 0)

	require.NotNil(t, w)
	assert.Equal(t, 0.0, w.TotalHours)
	assert.Equal(t, 0, w.AssignmentCount)
	assert.Equal(t, models.StatusUnderload, w.Status)
}

func TestPolicyValidate(t *testing.T) {
	assert.NoError(t, DefaultPolicy().Validate())
	assert.Error(t, Policy{MaxHours: 0, TPGroupCeilingFactor: 4}.Validate())
	assert.Error(t, Policy{MaxHours: 100, UnderloadHours: -1, TPGroupCeilingFactor: 4}.Validate())
	assert.Error(t, Policy{MaxHours: 100, UnderloadHours: 150, TPGroupCeilingFactor: 4}.Validate())
	assert.Error(t, Policy{MaxHours: 100, UnderloadHours: 50, TPGroupCeilingFactor: 0}.Validate())
}
