package handler

import (
	"net/http"

	"axonet/internal/dto"
	"axonet/internal/middleware"
	"axonet/internal/service"

	"github.com/gin-gonic/gin"
)

type NetworkRequestsHandler struct{ svc service.OnboardingService }

func NewNetworkRequestsHandler(svc service.OnboardingService) *NetworkRequestsHandler {
	return &NetworkRequestsHandler{svc: svc}
}

// Submit godoc
// @Summary      Apply for network access
// @Description  Public onboarding form. The application lands in the pending queue for admin review.
// @Tags         network-requests
// @Accept       json
// @Produce      json
// @Param        body body dto.SubmitNetworkRequest true "Application"
// @Success      201  {object} dto.NetworkRequestResponse
// @Failure      422  {object} apierror.ValidationError
// @Router       /v1/network-requests [post]
func (h *NetworkRequestsHandler) Submit(c *gin.Context) {
	var req dto.SubmitNetworkRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Submit(c.Request.Context(), &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List godoc
// @Summary      List network access requests (admin)
// @Tags         network-requests
// @Produce      json
// @Security     BearerAuth
// @Param        status query string false "pending | approved | rejected"
// @Success      200 {array} dto.NetworkRequestResponse
// @Failure      403 {object} apierror.APIError
// @Router       /v1/network-requests [get]
func (h *NetworkRequestsHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary      Fetch one network access request (admin)
// @Tags         network-requests
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Request UUID"
// @Success      200 {object} dto.NetworkRequestResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/network-requests/{id} [get]
func (h *NetworkRequestsHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Approve godoc
// @Summary      Approve a request and provision the account (admin)
// @Description  Idempotent per email: re-approving when the account already exists links it and reports already_provisioned without new credentials.
// @Tags         network-requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                 true  "Request UUID"
// @Param        body body dto.ApproveRequestBody false "Optional admin notes"
// @Success      200  {object} dto.ApprovalResult
// @Failure      409  {object} apierror.APIError
// @Router       /v1/network-requests/{id}/approve [post]
func (h *NetworkRequestsHandler) Approve(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.ApproveRequestBody
	if c.Request.ContentLength > 0 && !bindAndValidate(c, &req) {
		return
	}
	actor := middleware.GetActor(c)
	resp, err := h.svc.Approve(c.Request.Context(), actor, id, req.AdminNotes)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Reject godoc
// @Summary      Reject a network access request (admin)
// @Tags         network-requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                true  "Request UUID"
// @Param        body body dto.RejectRequestBody false "Optional admin notes"
// @Success      200  {object} dto.NetworkRequestResponse
// @Failure      409  {object} apierror.APIError
// @Router       /v1/network-requests/{id}/reject [post]
func (h *NetworkRequestsHandler) Reject(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.RejectRequestBody
	if c.Request.ContentLength > 0 && !bindAndValidate(c, &req) {
		return
	}
	actor := middleware.GetActor(c)
	resp, err := h.svc.Reject(c.Request.Context(), actor, id, req.AdminNotes)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
