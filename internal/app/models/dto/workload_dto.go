package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/yigit/workload/internal/app/models"
)

// AtomPayload describes a pedagogical atom sent by the client
type AtomPayload struct {
	ID         int64   `json:"id" example:"2"`
	ModuleID   int64   `json:"moduleId" example:"10"`
	Type       string  `json:"type" binding:"required,oneof=cours td tp stage" example:"td"`
	Hours      float64 `json:"hours" binding:"gte=0" example:"21"`
	TotalWeeks int     `json:"totalWeeks" binding:"gt=0" example:"14"`
	GroupSize  int     `json:"groupSize" example:"30"`
}

// ToModel converts the payload into a domain atom
func (p AtomPayload) ToModel() models.PedagogicalAtom {
	return models.PedagogicalAtom{
		ID:         p.ID,
		ModuleID:   p.ModuleID,
		Type:       models.AtomType(p.Type),
		Hours:      p.Hours,
		TotalWeeks: p.TotalWeeks,
		GroupSize:  p.GroupSize,
	}
}

// ModulePayload describes a module and its atoms
type ModulePayload struct {
	ID          int64         `json:"id" example:"10"`
	Code        string        `json:"code" example:"ALGO3"`
	Name        string        `json:"name" example:"Algorithms"`
	Coefficient float64       `json:"coefficient" example:"3"`
	Credits     int           `json:"credits" example:"6"`
	Semester    string        `json:"semester" example:"S1"`
	Atoms       []AtomPayload `json:"atoms" binding:"dive"`
}

// ToModel converts the payload into a domain module
func (p ModulePayload) ToModel() *models.Module {
	m := &models.Module{
		ID:          p.ID,
		Code:        p.Code,
		Name:        p.Name,
		Coefficient: p.Coefficient,
		Credits:     p.Credits,
		Semester:    models.Semester(p.Semester),
		Atoms:       make([]models.PedagogicalAtom, 0, len(p.Atoms)),
	}
	for _, a := range p.Atoms {
		m.Atoms = append(m.Atoms, a.ToModel())
	}
	return m
}

// GroupPayload describes a student group
type GroupPayload struct {
	ID        int64  `json:"id" example:"101"`
	SectionID int64  `json:"sectionId" example:"5"`
	Name      string `json:"name" example:"G1"`
	Type      string `json:"type" binding:"required,oneof=td tp" example:"td"`
	Capacity  int    `json:"capacity" binding:"gte=0" example:"30"`
}

// SectionPayload describes a section and its groups
type SectionPayload struct {
	ID       int64          `json:"id" example:"5"`
	Name     string         `json:"name" example:"Section A"`
	Capacity int            `json:"capacity" binding:"gte=0" example:"65"`
	Groups   []GroupPayload `json:"groups" binding:"dive"`
}

// ToModel converts the payload into a domain section
func (p SectionPayload) ToModel() *models.Section {
	s := &models.Section{
		ID:       p.ID,
		Name:     p.Name,
		Capacity: p.Capacity,
		Groups:   make([]models.Group, 0, len(p.Groups)),
	}
	for _, g := range p.Groups {
		s.Groups = append(s.Groups, models.Group{
			ID:        g.ID,
			SectionID: g.SectionID,
			Name:      g.Name,
			Type:      models.GroupType(g.Type),
			Capacity:  g.Capacity,
		})
	}
	return s
}

// CalculateHoursRequest asks for the hour cost of an atom for an audience
type CalculateHoursRequest struct {
	Atom           *AtomPayload `json:"atom" binding:"required"`
	TargetCapacity int          `json:"targetCapacity" binding:"required,gt=0" example:"65"`
}

// ValidateAssignmentRequest carries the full objects of a proposed assignment
type ValidateAssignmentRequest struct {
	Module     *ModulePayload  `json:"module" binding:"required"`
	Atom       *AtomPayload    `json:"atom" binding:"required"`
	Section    *SectionPayload `json:"section" binding:"required"`
	TargetType string          `json:"targetType" binding:"required,oneof=section group" example:"group"`
	TargetID   *int64          `json:"targetId,omitempty" binding:"required_if=TargetType group" example:"101"`
}

// CheckAssignmentRequest references a proposed assignment by IDs
type CheckAssignmentRequest struct {
	ModuleID   int64  `json:"moduleId" binding:"required,gt=0" example:"10"`
	AtomID     int64  `json:"atomId" binding:"required,gt=0" example:"2"`
	SectionID  int64  `json:"sectionId" binding:"required,gt=0" example:"5"`
	TargetType string `json:"targetType" binding:"required,oneof=section group" example:"group"`
	TargetID   *int64 `json:"targetId,omitempty" binding:"required_if=TargetType group" example:"101"`
}

// CreateAssignmentRequest creates an assignment for a teacher
type CreateAssignmentRequest struct {
	CheckAssignmentRequest
	AcademicYear string `json:"academicYear" binding:"required" example:"2024-2025"`
	Semester     string `json:"semester" binding:"required,oneof=S1 S2" example:"S1"`
}

// VerdictResponse is the outcome of an assignment check
type VerdictResponse struct {
	Valid   bool   `json:"valid" example:"false"`
	Rule    string `json:"rule,omitempty" example:"LECTURE_ON_GROUP"`
	Message string `json:"message,omitempty" example:"a lecture cannot be assigned to a specific group"`
}

// HoursResponse is the hour cost of an atom for an audience
type HoursResponse struct {
	HoursPerWeek float64 `json:"hoursPerWeek" example:"4.5"`
	TotalWeeks   int     `json:"totalWeeks" example:"14"`
	TotalHours   float64 `json:"totalHours" example:"63"`
	GroupsNeeded int     `json:"groupsNeeded" example:"3"`
}

// AssignmentResponse represents a workload assignment
type AssignmentResponse struct {
	ID           uuid.UUID  `json:"id"`
	TeacherID    int64      `json:"teacherId"`
	ModuleID     int64      `json:"moduleId"`
	AtomID       int64      `json:"atomId"`
	AtomType     string     `json:"atomType" example:"td"`
	SectionID    int64      `json:"sectionId"`
	TargetType   string     `json:"targetType" example:"group"`
	TargetID     *int64     `json:"targetId,omitempty"`
	AcademicYear string     `json:"academicYear" example:"2024-2025"`
	Semester     string     `json:"semester" example:"S1"`
	HoursPerWeek float64    `json:"hoursPerWeek" example:"1.5"`
	TotalWeeks   int        `json:"totalWeeks" example:"14"`
	TotalHours   float64    `json:"totalHours" example:"21"`
	GroupsNeeded int        `json:"groupsNeeded" example:"1"`
	Coefficient  float64    `json:"coefficient" example:"3"`
	IsConfirmed  bool       `json:"isConfirmed"`
	CreatedAt    time.Time  `json:"createdAt"`
	ConfirmedAt  *time.Time `json:"confirmedAt,omitempty"`
}

// FromAssignment converts a model into its response form
func FromAssignment(a *models.WorkloadAssignment) AssignmentResponse {
	return AssignmentResponse{
		ID:           a.ID,
		TeacherID:    a.TeacherID,
		ModuleID:     a.ModuleID,
		AtomID:       a.AtomID,
		AtomType:     string(a.AtomType),
		SectionID:    a.SectionID,
		TargetType:   string(a.TargetType),
		TargetID:     a.TargetID,
		AcademicYear: a.AcademicYear,
		Semester:     string(a.Semester),
		HoursPerWeek: a.HoursPerWeek,
		TotalWeeks:   a.TotalWeeks,
		TotalHours:   a.TotalHours,
		GroupsNeeded: a.GroupsNeeded,
		Coefficient:  a.Coefficient,
		IsConfirmed:  a.IsConfirmed,
		CreatedAt:    a.CreatedAt,
		ConfirmedAt:  a.ConfirmedAt,
	}
}

// WorkloadResponse represents a teacher's aggregate for one term
type WorkloadResponse struct {
	TeacherID       int64                `json:"teacherId" example:"4"`
	Teacher         *TeacherResponse     `json:"teacher,omitempty"`
	AcademicYear    string               `json:"academicYear" example:"2024-2025"`
	Semester        string               `json:"semester" example:"S1"`
	TotalHours      float64              `json:"totalHours" example:"220"`
	ConfirmedHours  float64              `json:"confirmedHours" example:"63"`
	MaxHours        float64              `json:"maxHours" example:"200"`
	OverloadHours   float64              `json:"overloadHours" example:"20"`
	UnderloadHours  float64              `json:"underloadHours" example:"0"`
	Status          string               `json:"status" example:"overload"`
	StatusLabel     string               `json:"statusLabel" example:"Overload"`
	AssignmentCount int                  `json:"assignmentCount" example:"3"`
	UpdatedAt       time.Time            `json:"updatedAt"`
	Assignments     []AssignmentResponse `json:"assignments,omitempty"`
}

// FromWorkload converts a model into its response form
func FromWorkload(w *models.TeacherWorkload) WorkloadResponse {
	resp := WorkloadResponse{
		TeacherID:       w.TeacherID,
		AcademicYear:    w.AcademicYear,
		Semester:        string(w.Semester),
		TotalHours:      w.TotalHours,
		ConfirmedHours:  w.ConfirmedHours,
		MaxHours:        w.MaxHours,
		OverloadHours:   w.OverloadHours,
		UnderloadHours:  w.UnderloadHours,
		Status:          string(w.Status),
		StatusLabel:     w.Status.Label(),
		AssignmentCount: w.AssignmentCount,
		UpdatedAt:       w.UpdatedAt,
	}
	if w.Teacher != nil {
		t := FromTeacher(w.Teacher)
		resp.Teacher = &t
	}
	for _, a := range w.Assignments {
		resp.Assignments = append(resp.Assignments, FromAssignment(a))
	}
	return resp
}

// AssignmentChangeResponse is returned after an assignment mutation
type AssignmentChangeResponse struct {
	Assignment *AssignmentResponse `json:"assignment,omitempty"`
	Workload   WorkloadResponse    `json:"workload"`
}

// WorkloadListResponse is a page of teacher workloads
type WorkloadListResponse struct {
	Workloads  []WorkloadResponse `json:"workloads"`
	Pagination PaginationInfo     `json:"pagination"`
}
