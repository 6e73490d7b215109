package models

// Section is a cohort of students following a formation together
type Section struct {
	ID          int64   `json:"id" db:"id"`
	FormationID int64   `json:"formationId" db:"formation_id"`
	Name        string  `json:"name" db:"name"`
	Capacity    int     `json:"capacity" db:"capacity"`
	Groups      []Group `json:"groups"` // Relation, no db tag
}

// FindGroup returns the group of the section with the given ID
func (s *Section) FindGroup(groupID int64) (*Group, bool) {
	for i := range s.Groups {
		if s.Groups[i].ID == groupID {
			return &s.Groups[i], true
		}
	}
	return nil, false
}

// Group is a subdivision of a section used for tutorials or labs
type Group struct {
	ID        int64     `json:"id" db:"id"`
	SectionID int64     `json:"sectionId" db:"section_id"`
	Name      string    `json:"name" db:"name"`
	Type      GroupType `json:"type" db:"type"`
	Capacity  int       `json:"capacity" db:"capacity"`
}
