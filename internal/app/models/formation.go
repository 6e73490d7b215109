package models

// FormationOffer is a degree programme opened for one academic year
type FormationOffer struct {
	ID           int64     `json:"id" db:"id"`
	Code         string    `json:"code" db:"code"`
	Name         string    `json:"name" db:"name"`
	Level        string    `json:"level" db:"level"`
	AcademicYear string    `json:"academicYear" db:"academic_year"`
	Modules      []*Module `json:"modules,omitempty"` // Relation, no db tag
}

// Module is a course unit taught within a formation offer
type Module struct {
	ID          int64             `json:"id" db:"id"`
	FormationID int64             `json:"formationId" db:"formation_id"`
	Code        string            `json:"code" db:"code"`
	Name        string            `json:"name" db:"name"`
	Coefficient float64           `json:"coefficient" db:"coefficient"`
	Credits     int               `json:"credits" db:"credits"`
	Semester    Semester          `json:"semester" db:"semester"`
	Atoms       []PedagogicalAtom `json:"atoms"` // Relation, no db tag
}

// HasAtom reports whether an atom with the given ID belongs to the module
func (m *Module) HasAtom(atomID int64) bool {
	for _, a := range m.Atoms {
		if a.ID == atomID {
			return true
		}
	}
	return false
}

// PedagogicalAtom is one kind of teaching session of a module
type PedagogicalAtom struct {
	ID         int64    `json:"id" db:"id"`
	ModuleID   int64    `json:"moduleId" db:"module_id"`
	Type       AtomType `json:"type" db:"type"`
	Hours      float64  `json:"hours" db:"hours"`            // contact hours over the whole term
	TotalWeeks int      `json:"totalWeeks" db:"total_weeks"` // term length
	GroupSize  int      `json:"groupSize" db:"group_size"`   // max audience per parallel group
}
