package models

// Role is the administrative role held by a staff member
type Role string

const (
	RoleAdmin            Role = "ADMIN"
	RoleHeadOfDepartment Role = "HEAD_OF_DEPARTMENT"
	RoleTeacher          Role = "TEACHER"
	RoleHROfficer        Role = "HR_OFFICER"
	RoleRecordsAgent     Role = "RECORDS_AGENT"
)

// roleLabels is the only place role display names live.
var roleLabels = []struct {
	role  Role
	label string
}{
	{RoleAdmin, "Administrator"},
	{RoleHeadOfDepartment, "Head of Department"},
	{RoleTeacher, "Teacher"},
	{RoleHROfficer, "Human Resources Officer"},
	{RoleRecordsAgent, "Academic Records Agent"},
}

// Label returns the display label of the role, or the raw value for unknown roles
func (r Role) Label() string {
	for _, rl := range roleLabels {
		if rl.role == r {
			return rl.label
		}
	}
	return string(r)
}

// IsValid reports whether the role is a known value
func (r Role) IsValid() bool {
	for _, rl := range roleLabels {
		if rl.role == r {
			return true
		}
	}
	return false
}

// AllRoles returns every known role in display order
func AllRoles() []Role {
	roles := make([]Role, 0, len(roleLabels))
	for _, rl := range roleLabels {
		roles = append(roles, rl.role)
	}
	return roles
}
