package handler

import (
	"net/http"

	"axonet/internal/apierror"
	"axonet/internal/middleware"
	"axonet/internal/service"

	"github.com/gin-gonic/gin"
)

// maxUploadSize caps attachment uploads at 20 MiB.
const maxUploadSize = 20 << 20

type FilesHandler struct{ svc service.FileService }

func NewFilesHandler(svc service.FileService) *FilesHandler { return &FilesHandler{svc: svc} }

// Upload godoc
// @Summary      Attach a file to an RFQ
// @Description  Multipart upload under the "file" field. The descriptor is stored; contents are never inspected.
// @Tags         files
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id   path     string true "RFQ UUID"
// @Param        file formData file   true "Attachment"
// @Success      201  {object} dto.RFQFileResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/rfqs/{id}/files [post]
func (h *FilesHandler) Upload(c *gin.Context) {
	rfqID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("A multipart \"file\" field is required"))
		return
	}
	src, err := fileHeader.Open()
	if err != nil {
		_ = c.Error(err)
		return
	}
	defer src.Close()

	actor := middleware.GetActor(c)
	resp, err := h.svc.Upload(c.Request.Context(), actor, rfqID, fileHeader.Filename, src)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List godoc
// @Summary      List RFQ attachments
// @Tags         files
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "RFQ UUID"
// @Success      200 {array} dto.RFQFileResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/rfqs/{id}/files [get]
func (h *FilesHandler) List(c *gin.Context) {
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
