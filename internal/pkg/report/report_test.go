package report

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/yigit/workload/internal/app/models"
	"github.com/yigit/workload/internal/app/workload"
)

func init() {
	color.NoColor = true
}

func TestWorkloads(t *testing.T) {
	var buf bytes.Buffer
	Workloads(&buf, "2024-2025", models.SemesterOne, []*models.TeacherWorkload{
		{
			TeacherID: 1, TotalHours: 210, ConfirmedHours: 42, MaxHours: 192, OverloadHours: 18,
			Status: models.StatusOverload, AssignmentCount: 5,
			Teacher: &models.Teacher{FirstName: "Amina", LastName: "Haddad", Department: "Computer Science"},
		},
		{TeacherID: 7, TotalHours: 60, MaxHours: 192, UnderloadHours: 36, Status: models.StatusUnderload, AssignmentCount: 1},
	})

	out := buf.String()
	assert.Contains(t, out, "Teaching workload 2024-2025 S1")
	assert.Contains(t, out, "Amina Haddad")
	assert.Contains(t, out, "Computer Science")
	assert.Contains(t, out, "Overload")
	assert.Contains(t, out, "Underload")
	assert.Contains(t, out, "270")
	assert.Contains(t, out, "2 teachers")
	assert.Contains(t, out, "1 overloaded")
}

func TestWorkloadsEmpty(t *testing.T) {
	var buf bytes.Buffer
	Workloads(&buf, "2024-2025", models.SemesterTwo, nil)
	assert.Contains(t, buf.String(), "No workload recorded")
}

func TestHours(t *testing.T) {
	var buf bytes.Buffer
	atom := models.PedagogicalAtom{Type: models.AtomTutorial, Hours: 21, TotalWeeks: 14, GroupSize: 30}
	Hours(&buf, atom, 65, workload.HoursBreakdown{HoursPerWeek: 4.5, TotalWeeks: 14, TotalHours: 63, GroupsNeeded: 3})

	out := buf.String()
	assert.Contains(t, out, "td atom (21 h over 14 weeks, 65 students)")
	assert.Contains(t, out, "4.5")
	assert.Contains(t, out, "63")
}

func TestVerdict(t *testing.T) {
	var buf bytes.Buffer
	Verdict(&buf, workload.Verdict{Valid: true})
	assert.Equal(t, "Assignment accepted\n", buf.String())

	buf.Reset()
	Verdict(&buf, workload.Verdict{Rule: workload.RuleLectureOnGroup, Message: "a lecture cannot be assigned to a specific group"})
	assert.Equal(t, "Assignment refused [LECTURE_ON_GROUP]: a lecture cannot be assigned to a specific group\n", buf.String())
}
