package models

// Semester identifies a half of the academic year
type Semester string

// Semester constants
const (
	SemesterOne Semester = "S1"
	SemesterTwo Semester = "S2"
)

// IsValid reports whether the semester is a known value
func (s Semester) IsValid() bool {
	return s == SemesterOne || s == SemesterTwo
}

// AtomType is the kind of teaching session a pedagogical atom describes
type AtomType string

const (
	AtomLecture    AtomType = "cours" // whole-section lecture
	AtomTutorial   AtomType = "td"
	AtomLab        AtomType = "tp"
	AtomInternship AtomType = "stage"
)

// IsValid reports whether the atom type is a known value
func (t AtomType) IsValid() bool {
	switch t {
	case AtomLecture, AtomTutorial, AtomLab, AtomInternship:
		return true
	}
	return false
}

// SplitsIntoGroups reports whether sessions of this type are repeated once per parallel group
func (t AtomType) SplitsIntoGroups() bool {
	return t == AtomTutorial || t == AtomLab
}

// GroupType is the kind of session a student group is formed for
type GroupType string

const (
	GroupTutorial GroupType = "td"
	GroupLab      GroupType = "tp"
)

// TargetType says whether an assignment addresses a whole section or one of its groups
type TargetType string

const (
	TargetSection TargetType = "section"
	TargetGroup   TargetType = "group"
)

// IsValid reports whether the target type is a known value
func (t TargetType) IsValid() bool {
	return t == TargetSection || t == TargetGroup
}

// WorkloadStatus is derived from a teacher's total hours
type WorkloadStatus string

const (
	StatusNormal    WorkloadStatus = "normal"
	StatusOverload  WorkloadStatus = "overload"
	StatusUnderload WorkloadStatus = "underload"
)

var workloadStatusLabels = map[WorkloadStatus]string{
	StatusNormal:    "Normal load",
	StatusOverload:  "Overload",
	StatusUnderload: "Underload",
}

// Label returns the display label of the status
func (s WorkloadStatus) Label() string {
	if label, ok := workloadStatusLabels[s]; ok {
		return label
	}
	return string(s)
}
