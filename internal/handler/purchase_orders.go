package handler

import (
	"fmt"
	"net/http"

	"axonet/internal/dto"
	"axonet/internal/middleware"
	"axonet/internal/service"

	"github.com/gin-gonic/gin"
)

// PORenderer turns a purchase order into a downloadable PDF confirmation.
type PORenderer interface {
	Render(po *dto.PurchaseOrderResponse) ([]byte, error)
}

type PurchaseOrdersHandler struct {
	svc service.PurchaseOrderService
	pdf PORenderer
}

func NewPurchaseOrdersHandler(svc service.PurchaseOrderService, pdf PORenderer) *PurchaseOrdersHandler {
	return &PurchaseOrdersHandler{svc: svc, pdf: pdf}
}

// ListMine godoc
// @Summary      List purchase orders for the caller
// @Description  Buyers see POs they issued; suppliers see POs issued to them. A "both" account sees each side under its respective route.
// @Tags         purchase-orders
// @Produce      json
// @Security     BearerAuth
// @Param        side query string false "buyer | supplier (default by role)"
// @Success      200 {array} dto.PurchaseOrderResponse
// @Router       /v1/purchase-orders [get]
func (h *PurchaseOrdersHandler) ListMine(c *gin.Context) {
	actor := middleware.GetActor(c)

	var (
		resp []dto.PurchaseOrderResponse
		err  error
	)
	if c.Query("side") == "supplier" {
		resp, err = h.svc.ListForSupplier(c.Request.Context(), actor)
	} else {
		resp, err = h.svc.ListForBuyer(c.Request.Context(), actor)
	}
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary      Fetch one purchase order
// @Tags         purchase-orders
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Purchase order UUID"
// @Success      200 {object} dto.PurchaseOrderResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/purchase-orders/{id} [get]
func (h *PurchaseOrdersHandler) Get(c *gin.Context) {
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

// DownloadPDF godoc
// @Summary      Download the PO confirmation as PDF
// @Tags         purchase-orders
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id path string true "Purchase order UUID"
// @Success      200 {file} binary
// @Failure      404 {object} apierror.APIError
// @Router       /v1/purchase-orders/{id}/pdf [get]
func (h *PurchaseOrdersHandler) DownloadPDF(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	actor := middleware.GetActor(c)
	po, err := h.svc.Get(c.Request.Context(), actor, id)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	buf, err := h.pdf.Render(po)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=po-%s.pdf", po.ID))
	c.Data(http.StatusOK, "application/pdf", buf)
}
