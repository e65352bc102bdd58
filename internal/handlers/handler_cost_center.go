package handlers

import (
	"net/http"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/gin-gonic/gin"
)

type costCenterHandler struct {
	costCenterService portssvc.CostCenterSvcFacade
}

func registerCostCenterRoutes(rg *gin.RouterGroup, costCenterService portssvc.CostCenterSvcFacade) {
	h := &costCenterHandler{costCenterService: costCenterService}

	costCenters := rg.Group("/cost-centers")
	{
		costCenters.POST("", h.createCostCenter)
		costCenters.GET("", h.listCostCenters)
		costCenters.PUT("/:id", h.updateCostCenter)
		costCenters.DELETE("/:id", h.deleteCostCenter)
	}
}

// createCostCenter godoc
// @Summary Create a cost center
// @Tags cost-centers
// @Accept  json
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   costCenter body dto.CostCenterRequest true "Cost center"
// @Success 201 {object} domain.CostCenter
// @Security BearerAuth
// @Router /api/v1/tenants/{tenant_id}/cost-centers [post]
func (h *costCenterHandler) createCostCenter(c *gin.Context) {
	var req dto.CostCenterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format", err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	cc, err := h.costCenterService.CreateCostCenter(c.Request.Context(), tenantID(c), req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to create cost center")
		return
	}
	c.JSON(http.StatusCreated, cc)
}

// listCostCenters godoc
// @Summary List cost centers ordered by name
// @Tags cost-centers
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Success 200 {object} dto.ListCostCentersResponse
// @Security BearerAuth
// @Router /api/v1/tenants/{tenant_id}/cost-centers [get]
func (h *costCenterHandler) listCostCenters(c *gin.Context) {
	ccs, err := h.costCenterService.ListCostCenters(c.Request.Context(), tenantID(c))
	if err != nil {
		respondWithError(c, err, "Failed to list cost centers")
		return
	}
	if ccs == nil {
		ccs = []domain.CostCenter{}
	}
	c.JSON(http.StatusOK, dto.ListCostCentersResponse{CostCenters: ccs})
}

// updateCostCenter godoc
// @Summary Rename a cost center
// @Tags cost-centers
// @Accept  json
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   id path string true "Cost center ID"
// @Param   strict query bool false "Answer 404 when nothing was updated"
// @Param   costCenter body dto.CostCenterRequest true "Cost center"
// @Success 200 {object} dto.MutationResponse
// @Security BearerAuth
// @Router /api/v1/tenants/{tenant_id}/cost-centers/{id} [put]
func (h *costCenterHandler) updateCostCenter(c *gin.Context) {
	var req dto.CostCenterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format", err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	res, err := h.costCenterService.UpdateCostCenter(c.Request.Context(), tenantID(c), c.Param("id"), req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to update cost center")
		return
	}
	respondUpdated(c, res, "Cost center")
}

// deleteCostCenter godoc
// @Summary Delete a cost center
// @Tags cost-centers
// @Param   tenant_id path string true "Tenant ID"
// @Param   id path string true "Cost center ID"
// @Param   strict query bool false "Answer 404 when nothing was deleted"
// @Success 204 "No Content"
// @Security BearerAuth
// @Router /api/v1/tenants/{tenant_id}/cost-centers/{id} [delete]
func (h *costCenterHandler) deleteCostCenter(c *gin.Context) {
	res, err := h.costCenterService.DeleteCostCenter(c.Request.Context(), tenantID(c), c.Param("id"))
	if err != nil {
		respondWithError(c, err, "Failed to delete cost center")
		return
	}
	respondDeleted(c, res, "Cost center")
}
