package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/workload/internal/app/models/dto"
	"github.com/yigit/workload/internal/middleware"
)

// CatalogController serves formations, modules and sections
type CatalogController struct {
	catalogService CatalogService
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalogService CatalogService) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

// ListFormations lists formation offers
// @Summary List formation offers
// @Tags catalog
// @Produce json
// @Param year query string false "Academic year" example(2024-2025)
// @Success 200 {object} dto.APIResponse{data=[]models.FormationOffer} "Formation offers"
// @Failure 400 {object} dto.ErrorResponse "Invalid year"
// @Router /formations [get]
func (c *CatalogController) ListFormations(ctx *gin.Context) {
	formations, err := c.catalogService.ListFormations(ctx, ctx.Query("year"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(formations))
}

// ListModules lists the modules of a formation
// @Summary List formation modules
// @Tags catalog
// @Produce json
// @Param id path int true "Formation ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]models.Module} "Modules with their atoms"
// @Failure 404 {object} dto.ErrorResponse "Formation not found"
// @Router /formations/{id}/modules [get]
func (c *CatalogController) ListModules(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	modules, err := c.catalogService.ListModules(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(modules))
}

// ListSections lists the sections of a formation
// @Summary List formation sections
// @Tags catalog
// @Produce json
// @Param id path int true "Formation ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]models.Section} "Sections with their groups"
// @Failure 404 {object} dto.ErrorResponse "Formation not found"
// @Router /formations/{id}/sections [get]
func (c *CatalogController) ListSections(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	sections, err := c.catalogService.ListSections(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(sections))
}

// GetModule returns a module with its atoms
// @Summary Get module
// @Tags catalog
// @Produce json
// @Param id path int true "Module ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Module} "Module"
// @Failure 404 {object} dto.ErrorResponse "Module not found"
// @Router /modules/{id} [get]
func (c *CatalogController) GetModule(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	module, err := c.catalogService.GetModule(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(module))
}

// GetSection returns a section with its groups
// @Summary Get section
// @Tags catalog
// @Produce json
// @Param id path int true "Section ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Section} "Section"
// @Failure 404 {object} dto.ErrorResponse "Section not found"
// @Router /sections/{id} [get]
func (c *CatalogController) GetSection(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	section, err := c.catalogService.GetSection(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(section))
}
