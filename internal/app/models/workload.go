package models

import (
	"time"

	"github.com/google/uuid"
)

// Teacher is a staff member who can receive teaching assignments
type Teacher struct {
	ID         int64    `json:"id" db:"id"`
	FirstName  string   `json:"firstName" db:"first_name"`
	LastName   string   `json:"lastName" db:"last_name"`
	Email      string   `json:"email" db:"email"`
	Grade      string   `json:"grade" db:"grade"` // academic rank
	Department string   `json:"department" db:"department"`
	Role       Role     `json:"role" db:"role"`
	MaxHours   *float64 `json:"maxHours,omitempty" db:"max_hours"` // overrides the institutional ceiling
}

// FullName returns "First Last"
func (t *Teacher) FullName() string {
	return t.FirstName + " " + t.LastName
}

// WorkloadAssignment binds one module atom to one audience for a teacher
type WorkloadAssignment struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	TeacherID    int64      `json:"teacherId" db:"teacher_id"`
	ModuleID     int64      `json:"moduleId" db:"module_id"`
	AtomID       int64      `json:"atomId" db:"atom_id"`
	AtomType     AtomType   `json:"atomType" db:"atom_type"`
	SectionID    int64      `json:"sectionId" db:"section_id"`
	TargetType   TargetType `json:"targetType" db:"target_type"`
	TargetID     *int64     `json:"targetId,omitempty" db:"target_id"`
	AcademicYear string     `json:"academicYear" db:"academic_year"`
	Semester     Semester   `json:"semester" db:"semester"`
	HoursPerWeek float64    `json:"hoursPerWeek" db:"hours_per_week"`
	TotalWeeks   int        `json:"totalWeeks" db:"total_weeks"`
	TotalHours   float64    `json:"totalHours" db:"total_hours"`
	GroupsNeeded int        `json:"groupsNeeded" db:"groups_needed"`
	Coefficient  float64    `json:"coefficient" db:"coefficient"`
	IsConfirmed  bool       `json:"isConfirmed" db:"is_confirmed"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
	ConfirmedAt  *time.Time `json:"confirmedAt,omitempty" db:"confirmed_at"`
}

// TeacherWorkload aggregates one teacher's assignments for one term
type TeacherWorkload struct {
	TeacherID       int64                 `json:"teacherId" db:"teacher_id"`
	AcademicYear    string                `json:"academicYear" db:"academic_year"`
	Semester        Semester              `json:"semester" db:"semester"`
	TotalHours      float64               `json:"totalHours" db:"total_hours"`
	ConfirmedHours  float64               `json:"confirmedHours" db:"confirmed_hours"`
	MaxHours        float64               `json:"maxHours" db:"max_hours"`
	OverloadHours   float64               `json:"overloadHours" db:"overload_hours"`
	UnderloadHours  float64               `json:"underloadHours" db:"underload_hours"`
	Status          WorkloadStatus        `json:"status" db:"status"`
	AssignmentCount int                   `json:"assignmentCount" db:"assignment_count"`
	UpdatedAt       time.Time             `json:"updatedAt" db:"updated_at"`
	Teacher         *Teacher              `json:"teacher,omitempty"`     // Relation, no db tag
	Assignments     []*WorkloadAssignment `json:"assignments,omitempty"` // Relation, no db tag
}
