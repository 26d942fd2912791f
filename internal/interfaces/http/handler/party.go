package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	partyapp "github.com/partysvc/backend/internal/application/party"
	"github.com/partysvc/backend/internal/interfaces/http/dto"
	"github.com/partysvc/backend/internal/interfaces/http/middleware"
)

// PartyHandler handles party-related API endpoints
type PartyHandler struct {
	BaseHandler
	partyService *partyapp.PartyService
}

// NewPartyHandler creates a new PartyHandler
func NewPartyHandler(partyService *partyapp.PartyService) *PartyHandler {
	return &PartyHandler{
		partyService: partyService,
	}
}

// Create handles POST /api/v1/parties. The request body carries the person
// fields plus a full address block; the address is deduplicated against
// existing rows before the party row is written.
func (h *PartyHandler) Create(c *gin.Context) {
	var req partyapp.CreatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindingError(c, err)
		return
	}

	resp, err := h.partyService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, resp)
}

// Get handles GET /api/v1/parties/:id.
func (h *PartyHandler) Get(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid party ID")
		return
	}

	resp, err := h.partyService.Get(c.Request.Context(), uri.ID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Update handles PATCH /api/v1/parties/:id. Absent fields keep their current
// values; a null street_two or middle_name clears the column.
func (h *PartyHandler) Update(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid party ID")
		return
	}

	var req partyapp.UpdatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindingError(c, err)
		return
	}

	resp, err := h.partyService.Update(c.Request.Context(), uri.ID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// GetHistory handles GET /api/v1/parties/:id/history. Snapshots are returned
// oldest first, one per completed create or update of the party.
func (h *PartyHandler) GetHistory(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid party ID")
		return
	}

	history, err := h.partyService.GetHistory(c.Request.Context(), uri.ID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, history)
}

// bindingError maps a body binding failure to the error envelope: per-field
// details for validation failures, a plain 400 for malformed JSON.
func (h *PartyHandler) bindingError(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		middleware.HandleValidationError(c, ve)
		return
	}
	h.BadRequest(c, err.Error())
}
