package workload

import (
	"fmt"
	"math"

	"github.com/yigit/workload/internal/app/models"
	"github.com/yigit/workload/internal/pkg/apperrors"
)

// HoursBreakdown is the cost of teaching one atom to one audience
type HoursBreakdown struct {
	HoursPerWeek float64 `json:"hoursPerWeek"`
	TotalWeeks   int     `json:"totalWeeks"`
	TotalHours   float64 `json:"totalHours"`
	GroupsNeeded int     `json:"groupsNeeded"`
}

// CalculateAtomHours computes the weekly and term hours a teacher spends on atom
// for an audience of targetCapacity students.
//
// Tutorials and labs are repeated once per parallel group of at most
// atom.GroupSize students; lectures and internships are never split.
//
// When a tutorial or lab atom has a non-positive group size the breakdown is
// still computed with a single group, and an ErrDataIntegrity error is returned
// next to it so the caller can surface the corrupt record.
func CalculateAtomHours(atom models.PedagogicalAtom, targetCapacity int) (HoursBreakdown, error) {
	if targetCapacity <= 0 {
		return HoursBreakdown{}, apperrors.NewValidationError("targetCapacity",
			fmt.Sprintf("target capacity must be a positive number of students, got %d", targetCapacity))
	}
	if !atom.Type.IsValid() {
		return HoursBreakdown{}, atomIntegrityError(atom, fmt.Sprintf("unknown atom type %q", atom.Type))
	}
	if atom.TotalWeeks <= 0 {
		return HoursBreakdown{}, atomIntegrityError(atom, fmt.Sprintf("atom term length must be positive, got %d weeks", atom.TotalWeeks))
	}
	if atom.Hours < 0 || math.IsNaN(atom.Hours) || math.IsInf(atom.Hours, 0) {
		return HoursBreakdown{}, atomIntegrityError(atom, fmt.Sprintf("atom hours must be a non-negative number, got %v", atom.Hours))
	}

	baseWeekly := atom.Hours / float64(atom.TotalWeeks)
	groups := 1
	var dataErr error

	if atom.Type.SplitsIntoGroups() {
		if atom.GroupSize <= 0 {
			dataErr = atomIntegrityError(atom, fmt.Sprintf("group size must be positive for %s atoms, got %d", atom.Type, atom.GroupSize))
		} else {
			groups = groupsFor(targetCapacity, atom.GroupSize)
		}
	}

	perWeek := baseWeekly * float64(groups)
	return HoursBreakdown{
		HoursPerWeek: perWeek,
		TotalWeeks:   atom.TotalWeeks,
		TotalHours:   perWeek * float64(atom.TotalWeeks),
		GroupsNeeded: groups,
	}, dataErr
}

// groupsFor is ceil(capacity / size) on integers.
func groupsFor(capacity, size int) int {
	return (capacity + size - 1) / size
}

func atomIntegrityError(atom models.PedagogicalAtom, msg string) error {
	return apperrors.NewDataIntegrityError(msg).WithDetail("atomId", atom.ID)
}
