package workload

import (
	"fmt"

	"github.com/yigit/workload/internal/app/models"
	"github.com/yigit/workload/internal/pkg/apperrors"
)

// RuleCode names the allocation rule that rejected an assignment
type RuleCode string

const (
	RuleAtomNotInModule       RuleCode = "ATOM_NOT_IN_MODULE"
	RuleInvalidGroup          RuleCode = "INVALID_GROUP"
	RuleIncompatibleGroupType RuleCode = "INCOMPATIBLE_GROUP_TYPE"
	RuleSectionTooLargeForLab RuleCode = "SECTION_TOO_LARGE_FOR_LAB"
	RuleLectureOnGroup        RuleCode = "LECTURE_ON_GROUP"
)

// Verdict is the outcome of checking an assignment against the allocation rules
type Verdict struct {
	Valid   bool     `json:"valid"`
	Rule    RuleCode `json:"rule,omitempty"`
	Message string   `json:"message,omitempty"`
}

// Err converts a refused verdict into an ErrRuleViolation error, nil when valid
func (v Verdict) Err() error {
	if v.Valid {
		return nil
	}
	return apperrors.NewRuleViolationError(string(v.Rule), v.Message)
}

func accept() Verdict {
	return Verdict{Valid: true}
}

func refuse(rule RuleCode, msg string) Verdict {
	return Verdict{Rule: rule, Message: msg}
}

// ValidateAssignment checks whether atom of module may be taught to the given
// audience of section. Rules are evaluated in order and the first failure wins:
//
//  1. the atom belongs to the module
//  2. a group target exists in the section and, unless the atom is a lecture,
//     has the atom's type
//  3. a lab section holds at most groupSize × TPGroupCeilingFactor students
//  4. a lecture is never assigned to a group
//
// A refused assignment is a Verdict, not an error. Errors are reserved for
// malformed input (ErrValidationFailed) and inconsistent reference data
// (ErrDataIntegrity).
func (p Policy) ValidateAssignment(module *models.Module, atom *models.PedagogicalAtom, section *models.Section, targetType models.TargetType, targetID *int64) (Verdict, error) {
	switch {
	case module == nil:
		return Verdict{}, apperrors.NewValidationError("module", "module is required")
	case atom == nil:
		return Verdict{}, apperrors.NewValidationError("atom", "atom is required")
	case section == nil:
		return Verdict{}, apperrors.NewValidationError("section", "section is required")
	case !targetType.IsValid():
		return Verdict{}, apperrors.NewValidationError("targetType", fmt.Sprintf("target type must be %q or %q", models.TargetSection, models.TargetGroup))
	case targetType == models.TargetGroup && targetID == nil:
		return Verdict{}, apperrors.NewValidationError("targetId", "targetId is required when targeting a group")
	}
	if !atom.Type.IsValid() {
		return Verdict{}, atomIntegrityError(*atom, fmt.Sprintf("unknown atom type %q", atom.Type))
	}
	if err := checkSectionIntegrity(section); err != nil {
		return Verdict{}, err
	}

	// Rule 1
	if !module.HasAtom(atom.ID) {
		return refuse(RuleAtomNotInModule, "atom does not belong to the selected module"), nil
	}

	// Rule 2
	if targetType == models.TargetGroup {
		group, ok := section.FindGroup(*targetID)
		if !ok {
			return refuse(RuleInvalidGroup, "invalid group for this section"), nil
		}
		if atom.Type != models.AtomLecture && string(group.Type) != string(atom.Type) {
			return refuse(RuleIncompatibleGroupType, fmt.Sprintf(
				"incompatible atom type for this group type: a %s atom cannot be taught to %s group %q",
				atom.Type, group.Type, group.Name)), nil
		}
	}

	// Rule 3
	if atom.Type == models.AtomLab {
		if atom.GroupSize <= 0 {
			return Verdict{}, atomIntegrityError(*atom, fmt.Sprintf("group size must be positive for tp atoms, got %d", atom.GroupSize))
		}
		ceiling := atom.GroupSize * p.tpFactor()
		if section.Capacity > ceiling {
			return refuse(RuleSectionTooLargeForLab, fmt.Sprintf(
				"section capacity too large for this lab type: %d students exceeds the limit of %d",
				section.Capacity, ceiling)), nil
		}
	}

	// Rule 4
	if atom.Type == models.AtomLecture && targetType == models.TargetGroup {
		return refuse(RuleLectureOnGroup, "a lecture cannot be assigned to a specific group"), nil
	}

	return accept(), nil
}

// TargetCapacity returns the number of students an assignment addresses
func TargetCapacity(section *models.Section, targetType models.TargetType, targetID *int64) (int, error) {
	if targetType != models.TargetGroup {
		return section.Capacity, nil
	}
	if targetID == nil {
		return 0, apperrors.NewValidationError("targetId", "targetId is required when targeting a group")
	}
	group, ok := section.FindGroup(*targetID)
	if !ok {
		return 0, apperrors.NewValidationError("targetId", "invalid group for this section")
	}
	return group.Capacity, nil
}

func (p Policy) tpFactor() int {
	if p.TPGroupCeilingFactor < 1 {
		return DefaultTPGroupCeilingFactor
	}
	return p.TPGroupCeilingFactor
}

// checkSectionIntegrity rejects sections whose groups do not fit them.
func checkSectionIntegrity(section *models.Section) error {
	for _, g := range section.Groups {
		if g.SectionID != 0 && g.SectionID != section.ID {
			return apperrors.NewDataIntegrityError(fmt.Sprintf(
				"group %d is listed in section %d but belongs to section %d", g.ID, section.ID, g.SectionID)).
				WithDetail("groupId", g.ID)
		}
		if g.Capacity > section.Capacity {
			return apperrors.NewDataIntegrityError(fmt.Sprintf(
				"group %d has capacity %d, above its section's %d", g.ID, g.Capacity, section.Capacity)).
				WithDetail("groupId", g.ID)
		}
	}
	return nil
}
