// Package seed loads a small demo catalogue: one formation with modules of
// every atom type, two sections with tutorial and lab groups, and teachers.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	appModels "github.com/yigit/workload/internal/app/models"
	appRepos "github.com/yigit/workload/internal/app/repositories"
	"github.com/yigit/workload/internal/pkg/apperrors"
)

// DemoFormationCode identifies the seeded formation within an academic year
const DemoFormationCode = "L3-INFO"

type moduleSeed struct {
	module appModels.Module
	atoms  []appModels.PedagogicalAtom
}

type sectionSeed struct {
	section appModels.Section
	groups  []appModels.Group
}

func demoModules() []moduleSeed {
	return []moduleSeed{
		{
			module: appModels.Module{Code: "ALGO3", Name: "Advanced Algorithms", Coefficient: 3, Credits: 6, Semester: appModels.SemesterOne},
			atoms: []appModels.PedagogicalAtom{
				{Type: appModels.AtomLecture, Hours: 42, TotalWeeks: 14},
				{Type: appModels.AtomTutorial, Hours: 21, TotalWeeks: 14, GroupSize: 33},
				{Type: appModels.AtomLab, Hours: 28, TotalWeeks: 14, GroupSize: 20},
			},
		},
		{
			module: appModels.Module{Code: "BDD", Name: "Databases", Coefficient: 2, Credits: 5, Semester: appModels.SemesterOne},
			atoms: []appModels.PedagogicalAtom{
				{Type: appModels.AtomLecture, Hours: 21, TotalWeeks: 14},
				{Type: appModels.AtomLab, Hours: 42, TotalWeeks: 14, GroupSize: 16},
			},
		},
		{
			module: appModels.Module{Code: "RES", Name: "Computer Networks", Coefficient: 2, Credits: 5, Semester: appModels.SemesterTwo},
			atoms: []appModels.PedagogicalAtom{
				{Type: appModels.AtomLecture, Hours: 42, TotalWeeks: 14},
				{Type: appModels.AtomTutorial, Hours: 21, TotalWeeks: 14, GroupSize: 35},
			},
		},
		{
			module: appModels.Module{Code: "STAGE", Name: "Industrial Internship", Coefficient: 4, Credits: 10, Semester: appModels.SemesterTwo},
			atoms: []appModels.PedagogicalAtom{
				{Type: appModels.AtomInternship, Hours: 60, TotalWeeks: 6},
			},
		},
	}
}

func demoSections() []sectionSeed {
	return []sectionSeed{
		{
			section: appModels.Section{Name: "Section A", Capacity: 65},
			groups: []appModels.Group{
				{Name: "TD1", Type: appModels.GroupTutorial, Capacity: 33},
				{Name: "TD2", Type: appModels.GroupTutorial, Capacity: 32},
				{Name: "TP1", Type: appModels.GroupLab, Capacity: 17},
				{Name: "TP2", Type: appModels.GroupLab, Capacity: 16},
				{Name: "TP3", Type: appModels.GroupLab, Capacity: 16},
				{Name: "TP4", Type: appModels.GroupLab, Capacity: 16},
			},
		},
		{
			section: appModels.Section{Name: "Section B", Capacity: 40},
			groups: []appModels.Group{
				{Name: "TD3", Type: appModels.GroupTutorial, Capacity: 40},
				{Name: "TP5", Type: appModels.GroupLab, Capacity: 20},
				{Name: "TP6", Type: appModels.GroupLab, Capacity: 20},
			},
		},
	}
}

func demoTeachers() []appModels.Teacher {
	reduced := 150.0
	return []appModels.Teacher{
		{FirstName: "Amina", LastName: "Benali", Email: "a.benali@univ.example", Grade: "MCA", Department: "Computer Science", Role: appModels.RoleTeacher},
		{FirstName: "Karim", LastName: "Haddad", Email: "k.haddad@univ.example", Grade: "Professor", Department: "Computer Science", Role: appModels.RoleHeadOfDepartment, MaxHours: &reduced},
		{FirstName: "Lina", LastName: "Mansouri", Email: "l.mansouri@univ.example", Grade: "MAA", Department: "Computer Science", Role: appModels.RoleTeacher},
		{FirstName: "Yacine", LastName: "Ferhat", Email: "y.ferhat@univ.example", Grade: "MCB", Department: "Networks", Role: appModels.RoleTeacher},
	}
}

// CreateDemoData seeds the demo catalogue for academicYear. It is safe to run
// repeatedly: an existing demo formation and existing teacher emails are skipped.
func CreateDemoData(ctx context.Context, formations appRepos.FormationStore, sections appRepos.SectionStore, teachers appRepos.TeacherStore, academicYear string, lgr zerolog.Logger) error {
	lgr.Info().Str("academicYear", academicYear).Msg("Checking/Creating demo data...")
	var finalErr error // collects errors without stopping the process

	if err := seedFormation(ctx, formations, sections, academicYear, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	for _, t := range demoTeachers() {
		teacher := t
		err := teachers.Create(ctx, &teacher)
		switch {
		case err == nil:
			lgr.Debug().Str("email", teacher.Email).Int64("id", teacher.ID).Msg("Teacher created")
		case errors.Is(err, apperrors.ErrResourceAlreadyExists):
			lgr.Debug().Str("email", teacher.Email).Msg("Teacher already exists")
		default:
			lgr.Error().Err(err).Str("email", teacher.Email).Msg("Error creating teacher")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr == nil {
		lgr.Info().Msg("Demo data ready")
	}
	return finalErr
}

func seedFormation(ctx context.Context, formations appRepos.FormationStore, sections appRepos.SectionStore, academicYear string, lgr zerolog.Logger) error {
	existing, err := formations.ListFormations(ctx, academicYear)
	if err != nil {
		return fmt.Errorf("error listing formations: %w", err)
	}
	for _, f := range existing {
		if f.Code == DemoFormationCode {
			lgr.Info().Int64("formationId", f.ID).Msg("Demo formation already exists, skipping catalogue")
			return nil
		}
	}

	formation := &appModels.FormationOffer{
		Code:         DemoFormationCode,
		Name:         "Licence 3 Computer Science",
		Level:        "L3",
		AcademicYear: academicYear,
	}
	if err := formations.CreateFormation(ctx, formation); err != nil {
		return fmt.Errorf("error creating demo formation: %w", err)
	}

	for _, ms := range demoModules() {
		module := ms.module
		module.FormationID = formation.ID
		if err := formations.CreateModule(ctx, &module); err != nil {
			return fmt.Errorf("error creating module %s: %w", module.Code, err)
		}
		for _, a := range ms.atoms {
			atom := a
			atom.ModuleID = module.ID
			if err := formations.CreateAtom(ctx, &atom); err != nil {
				return fmt.Errorf("error creating %s atom of %s: %w", atom.Type, module.Code, err)
			}
		}
	}

	for _, ss := range demoSections() {
		section := ss.section
		section.FormationID = formation.ID
		if err := sections.CreateSection(ctx, &section); err != nil {
			return fmt.Errorf("error creating %s: %w", section.Name, err)
		}
		for _, g := range ss.groups {
			group := g
			group.SectionID = section.ID
			if err := sections.CreateGroup(ctx, &group); err != nil {
				return fmt.Errorf("error creating group %s: %w", group.Name, err)
			}
		}
	}

	lgr.Info().Int64("formationId", formation.ID).Msg("Demo formation created")
	return nil
}
