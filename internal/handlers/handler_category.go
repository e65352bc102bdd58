package handlers

import (
	"net/http"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/gin-gonic/gin"
)

type categoryHandler struct {
	categoryService portssvc.CategorySvcFacade
}

func registerCategoryRoutes(rg *gin.RouterGroup, categoryService portssvc.CategorySvcFacade) {
	h := &categoryHandler{categoryService: categoryService}

	categories := rg.Group("/categories")
	{
		categories.POST("", h.createCategory)
		categories.GET("", h.listCategoryTree)
		categories.DELETE("/:id", h.deleteCategory)
	}
}

// createCategory godoc
// @Summary Create a category
// @Description Creates a root category, or a child when parentID is given. The parent must belong to the tenant.
// @Tags categories
// @Accept  json
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   category body dto.CreateCategoryRequest true "Category details"
// @Success 201 {object} domain.Category
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Parent not found"
// @Failure 422 {object} ErrorResponse "Parent belongs to another tenant"
// @Security BearerAuth
// @Router /api/v1/tenants/{tenant_id}/categories [post]
func (h *categoryHandler) createCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format", err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), tenantID(c), req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to create category")
		return
	}
	c.JSON(http.StatusCreated, category)
}

// listCategoryTree godoc
// @Summary List categories as a tree
// @Description Root categories with nested children, siblings ordered by name
// @Tags categories
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Success 200 {object} dto.CategoryTreeResponse
// @Security BearerAuth
// @Router /api/v1/tenants/{tenant_id}/categories [get]
func (h *categoryHandler) listCategoryTree(c *gin.Context) {
	tree, err := h.categoryService.ListCategoryTree(c.Request.Context(), tenantID(c))
	if err != nil {
		respondWithError(c, err, "Failed to list categories")
		return
	}
	if tree == nil {
		tree = []*domain.CategoryNode{}
	}
	c.JSON(http.StatusOK, dto.CategoryTreeResponse{Categories: tree})
}

// deleteCategory godoc
// @Summary Delete a category
// @Tags categories
// @Param   tenant_id path string true "Tenant ID"
// @Param   id path string true "Category ID"
// @Param   strict query bool false "Answer 404 when nothing was deleted"
// @Success 204 "No Content"
// @Failure 409 {object} ErrorResponse "Category has children or transactions"
// @Security BearerAuth
// @Router /api/v1/tenants/{tenant_id}/categories/{id} [delete]
func (h *categoryHandler) deleteCategory(c *gin.Context) {
	res, err := h.categoryService.DeleteCategory(c.Request.Context(), tenantID(c), c.Param("id"))
	if err != nil {
		respondWithError(c, err, "Failed to delete category")
		return
	}
	respondDeleted(c, res, "Category")
}
