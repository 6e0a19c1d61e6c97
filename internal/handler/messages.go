package handler

import (
	"net/http"

	"axonet/internal/dto"
	"axonet/internal/middleware"
	"axonet/internal/service"

	"github.com/gin-gonic/gin"
)

type MessagesHandler struct{ svc service.MessageService }

func NewMessagesHandler(svc service.MessageService) *MessagesHandler {
	return &MessagesHandler{svc: svc}
}

// Send godoc
// @Summary      Post a message on an RFQ thread
// @Description  Sender identity always comes from the authenticated user.
// @Tags         messages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                 true "RFQ UUID"
// @Param        body body dto.SendMessageRequest true "Message text"
// @Success      201  {object} dto.RFQMessageResponse
// @Failure      403  {object} apierror.APIError
// @Router       /v1/rfqs/{id}/messages [post]
func (h *MessagesHandler) Send(c *gin.Context) {
	rfqID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.SendMessageRequest
	if !bindAndValidate(c, &req) {
		return
	}
	actor := middleware.GetActor(c)

	resp, err := h.svc.Send(c.Request.Context(), actor, rfqID, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List godoc
// @Summary      List the RFQ message thread
// @Description  Messages in chronological order, oldest first.
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "RFQ UUID"
// @Success      200 {array} dto.RFQMessageResponse
// @Failure      403 {object} apierror.APIError
// @Router       /v1/rfqs/{id}/messages [get]
func (h *MessagesHandler) List(c *gin.Context) {
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
