package handler

import (
	"net/http"

	"axonet/internal/dto"
	"axonet/internal/middleware"
	"axonet/internal/service"

	"github.com/gin-gonic/gin"
)

type QuotesHandler struct{ svc service.QuoteService }

func NewQuotesHandler(svc service.QuoteService) *QuotesHandler { return &QuotesHandler{svc: svc} }

// Submit godoc
// @Summary      Submit a quote against an RFQ
// @Description  One quote per supplier per RFQ. The RFQ must be active; a buyer cannot quote their own RFQ.
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.SubmitQuoteRequest true "Quote terms"
// @Success      201  {object} dto.QuoteResponse
// @Failure      409  {object} apierror.APIError
// @Router       /v1/quotes [post]
func (h *QuotesHandler) Submit(c *gin.Context) {
	var req dto.SubmitQuoteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	actor := middleware.GetActor(c)

	resp, err := h.svc.Submit(c.Request.Context(), actor, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListForRFQ godoc
// @Summary      List quotes on an RFQ
// @Description  Visible to the RFQ's owning buyer and admins.
// @Tags         quotes
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "RFQ UUID"
// @Success      200 {array} dto.QuoteResponse
// @Failure      403 {object} apierror.APIError
// @Router       /v1/rfqs/{id}/quotes [get]
func (h *QuotesHandler) ListForRFQ(c *gin.Context) {
	rfqID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	actor := middleware.GetActor(c)
	resp, err := h.svc.ListForRFQ(c.Request.Context(), actor, rfqID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary      Fetch one quote
// @Tags         quotes
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Quote UUID"
// @Success      200 {object} dto.QuoteResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/quotes/{id} [get]
func (h *QuotesHandler) Get(c *gin.Context) {
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

// Accept godoc
// @Summary      Accept a quote
// @Description  Atomically accepts the quote, rejects all sibling quotes, closes the RFQ and issues the purchase order. At most one quote per RFQ can ever be accepted.
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.AcceptQuoteRequest true "RFQ and quote to accept"
// @Success      201  {object} dto.PurchaseOrderResponse
// @Failure      409  {object} apierror.APIError
// @Router       /v1/quotes/accept [post]
func (h *QuotesHandler) Accept(c *gin.Context) {
	var req dto.AcceptQuoteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	actor := middleware.GetActor(c)

	resp, err := h.svc.Accept(c.Request.Context(), actor, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}
