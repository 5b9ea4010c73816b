package documents

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/metrorail/docudesk/app/api"
	"github.com/metrorail/docudesk/app/user"
	"github.com/metrorail/docudesk/internal/sanitizer"
	"github.com/metrorail/docudesk/models"
)

// Handler handles HTTP requests for documents
type Handler struct {
	service   Service
	sanitizer sanitizer.HTMLStripperer
}

// NewHandler creates a new document handler
func NewHandler(service Service, sanitizer sanitizer.HTMLStripperer) *Handler {
	return &Handler{
		service:   service,
		sanitizer: sanitizer,
	}
}

// Upload godoc
// @Summary Upload a document to temporary storage
// @Description Store a base64-encoded file in the temporary folder pending save
// @Tags documents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UploadDocumentRequest true "Document upload request"
// @Success 200 {object} api.Response{data=UploadDocumentResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 401 {object} api.Response{error=api.ErrorInfo}
// @Failure 502 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/documents/upload [post]
func (h *Handler) Upload(c *gin.Context) {
	var req UploadDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.ValidationErrorResponse(c, err.Error())
		return
	}

	res, err := h.service.UploadTemp(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, models.ErrUnsupportedFileType) ||
			errors.Is(err, models.ErrInvalidFileName) ||
			errors.Is(err, models.ErrInvalidFilePayload) ||
			errors.Is(err, models.ErrEmptyFile) {
			api.ValidationErrorResponse(c, err.Error())
			return
		}
		if errors.Is(err, models.ErrUploadFailed) {
			api.UpstreamErrorResponse(c, "UPLOAD_ERROR", "Failed to upload document to storage")
			return
		}
		api.InternalErrorResponse(c, "Failed to upload document")
		return
	}

	api.SuccessResponse(c, 200, "Document uploaded successfully", res)
}

// AiReport godoc
// @Summary Classify an uploaded document
// @Description Request an advisory AI classification for an uploaded file.
// @Description A classifier outage returns 502; the document can still be saved manually.
// @Tags documents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ClassifyDocumentRequest true "Classification request"
// @Success 200 {object} api.Response{data=ClassifyDocumentResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 401 {object} api.Response{error=api.ErrorInfo}
// @Failure 502 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/documents/ai-report [post]
func (h *Handler) AiReport(c *gin.Context) {
	var req ClassifyDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.ValidationErrorResponse(c, err.Error())
		return
	}

	report, err := h.service.Classify(c.Request.Context(), req.URL)
	if err != nil {
		if errors.Is(err, models.ErrClassificationFailed) {
			api.UpstreamErrorResponse(c, "CLASSIFICATION_ERROR", "Failed to classify document")
			return
		}
		api.InternalErrorResponse(c, "Failed to classify document")
		return
	}

	api.SuccessResponse(c, 200, "Document classified successfully", report)
}

// Save godoc
// @Summary Save uploaded documents
// @Description Promote uploaded files to their permanent path and record them.
// @Description Entries settle independently; the response lists per-entry outcomes.
// @Tags documents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SaveDocumentsRequest true "Documents to save"
// @Success 200 {object} api.Response{data=[]SaveDocumentResult}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 401 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/documents [post]
func (h *Handler) Save(c *gin.Context) {
	var req SaveDocumentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.ValidationErrorResponse(c, err.Error())
		return
	}

	for i := range req.Documents {
		req.Documents[i].Title = h.sanitizer.StripHTML(req.Documents[i].Title)
		req.Documents[i].Summary = h.sanitizer.StripHTML(req.Documents[i].Summary)
	}

	uploadedBy := user.ContextGetUser(c).ID
	results := h.service.SaveDocuments(c.Request.Context(), &req, uploadedBy)

	saved := 0
	for i := range results {
		if results[i].Success {
			saved++
		}
	}

	api.SuccessResponseWithMeta(c, 200, "Documents processed", results, map[string]interface{}{
		"total": len(results),
		"saved": saved,
	})
}

// GetDocument godoc
// @Summary Get document by ID
// @Description Get a saved document with its uploader
// @Tags documents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Document ID"
// @Success 200 {object} api.Response{data=DocumentResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/documents/{id} [get]
func (h *Handler) GetDocument(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		api.ValidationErrorResponse(c, "Invalid document ID format")
		return
	}

	doc, err := h.service.GetDocument(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrRecordNotFound) {
			api.NotFoundResponse(c, "Document")
			return
		}
		api.InternalErrorResponse(c, "Failed to fetch document")
		return
	}

	api.SuccessResponse(c, 200, "Document retrieved successfully", ToDocumentResponse(doc))
}

// ListDocuments godoc
// @Summary List documents
// @Description List saved documents newest first, optionally filtered by substring search
// @Tags documents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param query query string false "Search term"
// @Success 200 {object} api.Response{data=[]DocumentResponse}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/documents [get]
func (h *Handler) ListDocuments(c *gin.Context) {
	var req ListDocumentsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		api.ValidationErrorResponse(c, err.Error())
		return
	}
	req.Query = h.sanitizer.StripHTML(req.Query)

	docs, err := h.service.ListDocuments(c.Request.Context(), req.Query)
	if err != nil {
		api.InternalErrorResponse(c, "Failed to fetch documents")
		return
	}

	api.ListResponse(c, "Documents retrieved successfully", ToDocumentResponseList(docs), len(docs))
}
