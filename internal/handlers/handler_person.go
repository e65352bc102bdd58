package handlers

import (
	"net/http"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/gin-gonic/gin"
)

// personHandler serves the counterparties a transaction may reference.
type personHandler struct {
	personService portssvc.PersonSvcFacade
}

func registerPersonRoutes(rg *gin.RouterGroup, personService portssvc.PersonSvcFacade) {
	h := &personHandler{personService: personService}

	people := rg.Group("/people")
	{
		people.POST("", h.createPerson)
		people.GET("", h.listPeople)
		people.GET("/:id", h.getPerson)
		people.PUT("/:id", h.updatePerson)
		people.DELETE("/:id", h.deletePerson)
	}
}

// createPerson godoc
// @Summary Create a person
// @Tags people
// @Accept  json
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   person body dto.PersonRequest true "Person details"
// @Success 201 {object} domain.Person
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/tenants/{tenant_id}/people [post]
func (h *personHandler) createPerson(c *gin.Context) {
	var req dto.PersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format", err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	person, err := h.personService.CreatePerson(c.Request.Context(), tenantID(c), req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to create person")
		return
	}
	c.JSON(http.StatusCreated, person)
}

// listPeople godoc
// @Summary List people ordered by name
// @Tags people
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Success 200 {object} dto.ListPeopleResponse
// @Security BearerAuth
// @Router /api/v1/tenants/{tenant_id}/people [get]
func (h *personHandler) listPeople(c *gin.Context) {
	people, err := h.personService.ListPeople(c.Request.Context(), tenantID(c))
	if err != nil {
		respondWithError(c, err, "Failed to list people")
		return
	}
	if people == nil {
		people = []domain.Person{}
	}
	c.JSON(http.StatusOK, dto.ListPeopleResponse{People: people})
}

// getPerson godoc
// @Summary Get a person by ID
// @Tags people
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   id path string true "Person ID"
// @Success 200 {object} domain.Person
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/tenants/{tenant_id}/people/{id} [get]
func (h *personHandler) getPerson(c *gin.Context) {
	person, err := h.personService.GetPersonByID(c.Request.Context(), tenantID(c), c.Param("id"))
	if err != nil {
		respondWithError(c, err, "Failed to retrieve person")
		return
	}
	c.JSON(http.StatusOK, person)
}

// updatePerson godoc
// @Summary Replace a person's details
// @Tags people
// @Accept  json
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   id path string true "Person ID"
// @Param   strict query bool false "Answer 404 when nothing was updated"
// @Param   person body dto.PersonRequest true "Person details"
// @Success 200 {object} dto.MutationResponse
// @Security BearerAuth
// @Router /api/v1/tenants/{tenant_id}/people/{id} [put]
func (h *personHandler) updatePerson(c *gin.Context) {
	var req dto.PersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format", err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	res, err := h.personService.UpdatePerson(c.Request.Context(), tenantID(c), c.Param("id"), req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to update person")
		return
	}
	respondUpdated(c, res, "Person")
}

// deletePerson godoc
// @Summary Delete a person
// @Description Transactions tagged with the person keep existing with the tag cleared
// @Tags people
// @Param   tenant_id path string true "Tenant ID"
// @Param   id path string true "Person ID"
// @Param   strict query bool false "Answer 404 when nothing was deleted"
// @Success 204 "No Content"
// @Security BearerAuth
// @Router /api/v1/tenants/{tenant_id}/people/{id} [delete]
func (h *personHandler) deletePerson(c *gin.Context) {
	res, err := h.personService.DeletePerson(c.Request.Context(), tenantID(c), c.Param("id"))
	if err != nil {
		respondWithError(c, err, "Failed to delete person")
		return
	}
	respondDeleted(c, res, "Person")
}
