package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/workload/internal/app/models"
)

func TestModulePayloadToModel(t *testing.T) {
	p := ModulePayload{
		ID:    10,
		Code:  "ALGO3",
		Atoms: []AtomPayload{{ID: 1, Type: "cours", Hours: 42, TotalWeeks: 14, GroupSize: 120}},
	}

	m := p.ToModel()
	require.Len(t, m.Atoms, 1)
	assert.Equal(t, models.AtomLecture, m.Atoms[0].Type)
	assert.True(t, m.HasAtom(1))
}

func TestSectionPayloadToModel(t *testing.T) {
	p := SectionPayload{ID: 5, Capacity: 65, Groups: []GroupPayload{{ID: 101, SectionID: 5, Type: "tp", Capacity: 20}}}

	s := p.ToModel()
	g, ok := s.FindGroup(101)
	require.True(t, ok)
	assert.Equal(t, models.GroupLab, g.Type)
}

func TestHandleValidationError(t *testing.T) {
	v := validator.New()
	v.SetTagName("binding")

	err := v.Struct(CheckAssignmentRequest{ModuleID: 1, AtomID: 2, SectionID: 3, TargetType: "room"})
	require.Error(t, err)

	detail := HandleValidationError(err)
	assert.Equal(t, ErrorCodeValidationFailed, detail.Code)
	assert.Equal(t, "targetType", detail.Field)
	assert.Equal(t, "targetType must be one of: section group", detail.Message)
}

func TestFromWorkloadResolvesLabels(t *testing.T) {
	w := &models.TeacherWorkload{
		TeacherID: 4,
		Status:    models.StatusOverload,
		Teacher:   &models.Teacher{ID: 4, FirstName: "Amina", LastName: "Benali", Role: models.RoleHeadOfDepartment},
	}

	resp := FromWorkload(w)
	assert.Equal(t, "Overload", resp.StatusLabel)
	require.NotNil(t, resp.Teacher)
	assert.Equal(t, "Head of Department", resp.Teacher.RoleLabel)
	assert.Equal(t, "Amina Benali", resp.Teacher.FullName)
}
