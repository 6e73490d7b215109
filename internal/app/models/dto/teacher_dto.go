package dto

import "github.com/yigit/workload/internal/app/models"

// TeacherResponse represents a teacher with display labels resolved
type TeacherResponse struct {
	ID         int64    `json:"id" example:"4"`
	FullName   string   `json:"fullName" example:"Amina Benali"`
	Email      string   `json:"email" example:"a.benali@univ.example"`
	Grade      string   `json:"grade" example:"MCA"`
	Department string   `json:"department" example:"Computer Science"`
	Role       string   `json:"role" example:"TEACHER"`
	RoleLabel  string   `json:"roleLabel" example:"Teacher"`
	MaxHours   *float64 `json:"maxHours,omitempty"`
}

// FromTeacher converts a model into its response form
func FromTeacher(t *models.Teacher) TeacherResponse {
	return TeacherResponse{
		ID:         t.ID,
		FullName:   t.FullName(),
		Email:      t.Email,
		Grade:      t.Grade,
		Department: t.Department,
		Role:       string(t.Role),
		RoleLabel:  t.Role.Label(),
		MaxHours:   t.MaxHours,
	}
}

// TeacherListResponse is a page of teachers
type TeacherListResponse struct {
	Teachers   []TeacherResponse `json:"teachers"`
	Pagination PaginationInfo    `json:"pagination"`
}

// RoleResponse pairs a role with its display label
type RoleResponse struct {
	Role  string `json:"role" example:"HEAD_OF_DEPARTMENT"`
	Label string `json:"label" example:"Head of Department"`
}
