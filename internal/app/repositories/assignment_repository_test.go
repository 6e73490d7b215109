package repositories

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/workload/internal/app/models"
)

// fieldByColumn returns the address of the struct field tagged db:"column"
func fieldByColumn(t *testing.T, structPtr interface{}, column string) reflect.Value {
	t.Helper()
	v := reflect.ValueOf(structPtr).Elem()
	for i := 0; i < v.NumField(); i++ {
		if v.Type().Field(i).Tag.Get("db") == column {
			return v.Field(i).Addr()
		}
	}
	t.Fatalf("no field tagged db:%q in %T", column, structPtr)
	return reflect.Value{}
}

// assertScanOrder checks that every scan target lands in the field named by its column
func assertScanOrder(t *testing.T, structPtr interface{}, columns []string, fields []interface{}) {
	t.Helper()
	require.Len(t, fields, len(columns))
	for i, column := range columns {
		want := fieldByColumn(t, structPtr, column)
		got := reflect.ValueOf(fields[i])
		assert.Equal(t, want.Type(), got.Type(), "column %s", column)
		assert.Equal(t, want.Pointer(), got.Pointer(), "column %s", column)
	}
}

// assertInsertOrder checks that every insert argument carries the field named by its column
func assertInsertOrder(t *testing.T, structPtr interface{}, columns []string, args []interface{}) {
	t.Helper()
	require.Len(t, args, len(columns))
	for i, column := range columns {
		want := fieldByColumn(t, structPtr, column).Elem().Interface()
		assert.Equal(t, want, args[i], "column %s", column)
	}
}

func sampleWorkload() *models.TeacherWorkload {
	return &models.TeacherWorkload{
		TeacherID: 4, AcademicYear: "2024-2025", Semester: models.SemesterTwo,
		TotalHours: 210, ConfirmedHours: 63, MaxHours: 192, OverloadHours: 18, UnderloadHours: 0,
		Status: models.StatusOverload, AssignmentCount: 5,
		UpdatedAt: time.Date(2025, 2, 3, 10, 0, 0, 0, time.UTC),
	}
}

func TestScannersFollowColumnOrder(t *testing.T) {
	t.Run("assignment", func(t *testing.T) {
		var a models.WorkloadAssignment
		assertScanOrder(t, &a, assignmentColumns, assignmentFields(&a))
	})

	t.Run("workload", func(t *testing.T) {
		var w models.TeacherWorkload
		assertScanOrder(t, &w, workloadColumns, workloadFields(&w))
	})

	t.Run("teacher", func(t *testing.T) {
		var tr models.Teacher
		assertScanOrder(t, &tr, teacherColumns, teacherFields(&tr))
	})
}

func TestLockTeacherQuery(t *testing.T) {
	sql, args, err := lockTeacherQuery(4).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM teachers WHERE id = $1 FOR UPDATE", sql)
	assert.Equal(t, []interface{}{int64(4)}, args)
}

func TestCreateAssignmentQuery(t *testing.T) {
	groupID := int64(101)
	a := &models.WorkloadAssignment{
		ID: uuid.New(), TeacherID: 4, ModuleID: 10, AtomID: 2, AtomType: models.AtomTutorial,
		SectionID: 5, TargetType: models.TargetGroup, TargetID: &groupID,
		AcademicYear: "2024-2025", Semester: models.SemesterOne,
		HoursPerWeek: 1.5, TotalWeeks: 14, TotalHours: 21, GroupsNeeded: 1, Coefficient: 3,
		CreatedAt: time.Date(2024, 9, 2, 8, 0, 0, 0, time.UTC),
	}

	sql, args, err := createAssignmentQuery(a).ToSql()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(sql, "INSERT INTO workload_assignments ("+strings.Join(assignmentColumns, ",")+") VALUES ($1,"), sql)
	assert.True(t, strings.HasSuffix(sql, "$18)"), sql)
	assertInsertOrder(t, a, assignmentColumns, args)
}

func TestSaveWorkloadQuery(t *testing.T) {
	w := sampleWorkload()

	sql, args, err := saveWorkloadQuery(w).ToSql()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(sql, "INSERT INTO teacher_workloads ("+strings.Join(workloadColumns, ",")+") VALUES ($1,"), sql)
	assert.Contains(t, sql, "$11) ON CONFLICT (teacher_id, academic_year, semester) DO UPDATE SET")
	assertInsertOrder(t, w, workloadColumns, args)

	// every non-key column is refreshed on conflict
	for _, column := range workloadColumns[3:] {
		assert.Contains(t, sql, column+" = EXCLUDED."+column)
	}
	for _, key := range workloadColumns[:3] {
		assert.NotContains(t, sql, key+" = EXCLUDED.")
	}
}

func TestListWorkloadsQueries(t *testing.T) {
	cols := make([]string, 0, len(workloadColumns)+len(teacherColumns))
	for _, c := range workloadColumns {
		cols = append(cols, "w."+c)
	}
	for _, c := range teacherColumns {
		cols = append(cols, "t."+c)
	}
	selectList := "SELECT " + strings.Join(cols, ", ") + " FROM teacher_workloads w JOIN teachers t ON t.id = w.teacher_id"
	order := " ORDER BY w.total_hours DESC, t.last_name, t.id"

	tests := []struct {
		name      string
		filter    WorkloadFilter
		wantWhere string
		wantArgs  []interface{}
		wantPage  string
	}{
		{
			name:     "no filter",
			filter:   WorkloadFilter{Limit: 20},
			wantPage: " LIMIT 20 OFFSET 0",
		},
		{
			name:      "year only",
			filter:    WorkloadFilter{AcademicYear: "2024-2025", Offset: 40, Limit: 20},
			wantWhere: " WHERE (w.academic_year = $1)",
			wantArgs:  []interface{}{"2024-2025"},
			wantPage:  " LIMIT 20 OFFSET 40",
		},
		{
			name: "term and status",
			filter: WorkloadFilter{
				AcademicYear: "2024-2025", Semester: models.SemesterOne, Status: models.StatusOverload, Limit: 10,
			},
			wantWhere: " WHERE (w.academic_year = $1 AND w.semester = $2 AND w.status = $3)",
			wantArgs:  []interface{}{"2024-2025", models.SemesterOne, models.StatusOverload},
			wantPage:  " LIMIT 10 OFFSET 0",
		},
		{
			name:      "status without limit",
			filter:    WorkloadFilter{Status: models.StatusUnderload},
			wantWhere: " WHERE (w.status = $1)",
			wantArgs:  []interface{}{models.StatusUnderload},
			wantPage:  " OFFSET 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			countQuery, listQuery := listWorkloadsQueries(tt.filter)

			countSQL, countArgs, err := countQuery.ToSql()
			require.NoError(t, err)
			assert.Equal(t, "SELECT count(*) FROM teacher_workloads w"+tt.wantWhere, countSQL)

			sql, args, err := listQuery.ToSql()
			require.NoError(t, err)
			assert.Equal(t, selectList+tt.wantWhere+order+tt.wantPage, sql)

			if tt.wantArgs == nil {
				assert.Empty(t, countArgs)
				assert.Empty(t, args)
				return
			}
			assert.Equal(t, tt.wantArgs, countArgs)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
