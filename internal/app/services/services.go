// Package services orchestrates the workload rules over the stores.
//
// Services defined in this package:
// - WorkloadService: hour calculation, assignment checks and the assignment lifecycle
// - CatalogService: read access to formations, sections, teachers and roles
package services

import (
	"github.com/yigit/workload/internal/app/repositories"
	"github.com/yigit/workload/internal/app/workload"
	"github.com/yigit/workload/internal/pkg/logger"
)

// Services holds all the service instances
type Services struct {
	WorkloadService *WorkloadService
	CatalogService  *CatalogService
}

// NewServices wires the services over the given repositories. Call it after
// logger.Configure: services log through component loggers of the global logger.
func NewServices(repos *repositories.Repositories, policy workload.Policy) *Services {
	return &Services{
		WorkloadService: NewWorkloadService(
			repos.FormationRepository,
			repos.SectionRepository,
			repos.TeacherRepository,
			repos.AssignmentRepository,
			policy,
			logger.Component("workload"),
		),
		CatalogService: NewCatalogService(
			repos.FormationRepository,
			repos.SectionRepository,
			repos.TeacherRepository,
		),
	}
}
