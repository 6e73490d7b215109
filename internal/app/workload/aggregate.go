package workload

import (
	"time"

	"github.com/yigit/workload/internal/app/models"
)

// Summarize recomputes a teacher's workload for one term from the full
// assignment list. maxHoursOverride replaces the policy ceiling when positive.
func (p Policy) Summarize(teacherID int64, academicYear string, semester models.Semester, assignments []*models.WorkloadAssignment, maxHoursOverride float64) *models.TeacherWorkload {
	w := &models.TeacherWorkload{
		TeacherID:    teacherID,
		AcademicYear: academicYear,
		Semester:     semester,
		MaxHours:     p.MaxHours,
		Assignments:  assignments,
		UpdatedAt:    time.Now().UTC(),
	}
	if maxHoursOverride > 0 {
		w.MaxHours = maxHoursOverride
	}

	for _, a := range assignments {
		if a == nil {
			continue
		}
		w.TotalHours += a.TotalHours
		if a.IsConfirmed {
			w.ConfirmedHours += a.TotalHours
		}
		w.AssignmentCount++
	}

	w.Status = p.StatusFor(w.TotalHours, w.MaxHours)
	if w.TotalHours > w.MaxHours {
		w.OverloadHours = w.TotalHours - w.MaxHours
	}
	if w.Status == models.StatusUnderload {
		w.UnderloadHours = p.UnderloadHours - w.TotalHours
	}
	return w
}

// StatusFor classifies a total against a ceiling and the policy's minimum service
func (p Policy) StatusFor(totalHours, maxHours float64) models.WorkloadStatus {
	switch {
	case totalHours > maxHours:
		return models.StatusOverload
	case totalHours < p.UnderloadHours:
		return models.StatusUnderload
	default:
		return models.StatusNormal
	}
}
