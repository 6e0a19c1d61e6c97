package handler

import (
	"net/http"

	"axonet/internal/dto"
	"axonet/internal/middleware"
	"axonet/internal/service"

	"github.com/gin-gonic/gin"
)

type RFQsHandler struct{ svc service.RFQService }

func NewRFQsHandler(svc service.RFQService) *RFQsHandler { return &RFQsHandler{svc: svc} }

// Create godoc
// @Summary      Create an RFQ
// @Description  Creates a request for quotation. Defaults to draft unless an initial status of active is given. The owner is always the authenticated buyer.
// @Tags         rfqs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateRFQRequest true "RFQ details"
// @Success      201  {object} dto.RFQResponse
// @Failure      422  {object} apierror.ValidationError
// @Router       /v1/rfqs [post]
func (h *RFQsHandler) Create(c *gin.Context) {
	var req dto.CreateRFQRequest
	if !bindAndValidate(c, &req) {
		return
	}
	actor := middleware.GetActor(c)

	resp, err := h.svc.Create(c.Request.Context(), actor, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListMine godoc
// @Summary      List the buyer's own RFQs
// @Description  Returns all RFQs owned by the authenticated buyer, newest first, with quote counts and derived display status.
// @Tags         rfqs
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.RFQResponse
// @Router       /v1/rfqs/mine [get]
func (h *RFQsHandler) ListMine(c *gin.Context) {
	actor := middleware.GetActor(c)
	resp, err := h.svc.ListMine(c.Request.Context(), actor)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListAvailable godoc
// @Summary      List RFQs open to suppliers
// @Description  Returns non-draft RFQs with per-supplier flags: whether this supplier has quoted and whether a purchase order was already issued.
// @Tags         rfqs
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.AvailableRFQ
// @Router       /v1/rfqs/available [get]
func (h *RFQsHandler) ListAvailable(c *gin.Context) {
	actor := middleware.GetActor(c)
	resp, err := h.svc.ListAvailable(c.Request.Context(), actor)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary      Fetch one RFQ
// @Tags         rfqs
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "RFQ UUID"
// @Success      200 {object} dto.RFQResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/rfqs/{id} [get]
func (h *RFQsHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	actor := middleware.GetActor(c)
	resp, err := h.svc.Get(c.Request.Context(), actor, id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
