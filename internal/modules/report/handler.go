package report

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"attareports/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service *Service
	log     *zap.Logger
}

func NewHandler(service *Service, log *zap.Logger) *Handler {
	return &Handler{service: service, log: log}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/service-reports", h.List)
	rg.POST("/service-reports", h.Create)
	rg.GET("/service-reports/statistics/dashboard", h.DashboardStats)
	rg.GET("/service-reports/:id", h.Get)
	rg.PUT("/service-reports/:id", h.Update)
	rg.DELETE("/service-reports/:id", h.Delete)
	rg.GET("/service-reports/:id/pdf", h.DownloadPDF)
	rg.POST("/service-reports/:id/upload-signature", h.UploadSignature)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	r, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), c.GetString("role"), req)
	if err != nil {
		h.writeError(c, err, "Failed to create report")
		return
	}
	response.Success(c, http.StatusCreated, r)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	r, err := h.service.Get(c.Request.Context(), c.GetInt64("user_id"), c.GetString("role"), id)
	if err != nil {
		h.writeError(c, err, "Failed to load report")
		return
	}
	response.Success(c, http.StatusOK, r)
}

func (h *Handler) List(c *gin.Context) {
	var q ListReportsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}
	reports, err := h.service.List(c.Request.Context(), c.GetInt64("user_id"), c.GetString("role"), q)
	if err != nil {
		h.writeError(c, err, "Failed to list reports")
		return
	}
	response.Success(c, http.StatusOK, reports)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req UpdateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	r, err := h.service.Update(c.Request.Context(), c.GetInt64("user_id"), c.GetString("role"), id, req)
	if err != nil {
		h.writeError(c, err, "Failed to update report")
		return
	}
	response.Success(c, http.StatusOK, r)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), c.GetInt64("user_id"), c.GetString("role"), id); err != nil {
		h.writeError(c, err, "Failed to delete report")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Report deleted"})
}

func (h *Handler) DashboardStats(c *gin.Context) {
	stats, err := h.service.DashboardStats(c.Request.Context(), c.GetInt64("user_id"), c.GetString("role"))
	if err != nil {
		h.writeError(c, err, "Failed to load statistics")
		return
	}
	response.Success(c, http.StatusOK, stats)
}

func (h *Handler) DownloadPDF(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	data, filename, err := h.service.RenderPDF(c.Request.Context(), c.GetInt64("user_id"), c.GetString("role"), id)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			h.log.Error("pdf export failed", zap.Int64("report_id", id), zap.Error(err))
		}
		h.writeError(c, err, "Failed to generate PDF")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
	c.Header("Pragma", "no-cache")
	c.Header("Expires", "0")
	c.Data(http.StatusOK, "application/pdf", data)
}

func (h *Handler) UploadSignature(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	sigRole := c.Query("signature_type")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Signature file is required")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Could not read the uploaded file")
		return
	}
	defer file.Close()

	r, err := h.service.AttachSignature(
		c.Request.Context(),
		c.GetInt64("user_id"),
		c.GetString("role"),
		id,
		sigRole,
		file,
		fileHeader.Size,
		fileHeader.Header.Get("Content-Type"),
	)
	if err != nil {
		h.writeError(c, err, "Failed to upload signature")
		return
	}
	response.Success(c, http.StatusOK, r)
}

func (h *Handler) pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid report id")
		return 0, false
	}
	return id, true
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "REPORT_NOT_FOUND", "Report not found")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Insufficient permissions")
	case errors.Is(err, ErrReportLocked):
		response.Error(c, http.StatusForbidden, "REPORT_LOCKED", "Completed reports cannot be modified")
	case errors.Is(err, ErrTerminalStatusLock):
		response.Error(c, http.StatusBadRequest, "STATUS_LOCKED", "Completed reports cannot be reopened")
	case errors.Is(err, ErrMissingPendingReason):
		response.Error(c, http.StatusBadRequest, "PENDING_REASON_REQUIRED", "Pending status requires a reason")
	case errors.Is(err, ErrContactClientMismatch):
		response.Error(c, http.StatusBadRequest, "CONTACT_CLIENT_MISMATCH", "Contact does not belong to the given client")
	case errors.Is(err, ErrClientNotFound):
		response.Error(c, http.StatusNotFound, "CLIENT_NOT_FOUND", "Client not found")
	case errors.Is(err, ErrContactNotFound):
		response.Error(c, http.StatusNotFound, "CONTACT_NOT_FOUND", "Contact not found")
	case errors.Is(err, ErrEquipmentNotFound):
		response.Error(c, http.StatusNotFound, "EQUIPMENT_NOT_FOUND", "Equipment not found")
	case errors.Is(err, ErrTechnicianNotFound):
		response.Error(c, http.StatusNotFound, "TECHNICIAN_NOT_FOUND", "Technician not found")
	case errors.Is(err, ErrInvalidServiceType):
		response.Error(c, http.StatusBadRequest, "INVALID_SERVICE_TYPE", "Unknown service type")
	case errors.Is(err, ErrInvalidBillingType):
		response.Error(c, http.StatusBadRequest, "INVALID_BILLING_TYPE", "Unknown billing type")
	case errors.Is(err, ErrInvalidStatus):
		response.Error(c, http.StatusBadRequest, "INVALID_STATUS", "Status must be pending or completed")
	case errors.Is(err, ErrBatteryOutOfRange):
		response.Error(c, http.StatusBadRequest, "BATTERY_OUT_OF_RANGE", "Battery percentage must be between 0 and 100")
	case errors.Is(err, ErrInvalidSignatureRole):
		response.Error(c, http.StatusBadRequest, "INVALID_SIGNATURE_TYPE", "Signature type must be client or technician")
	case errors.Is(err, ErrUnsupportedMediaType):
		response.Error(c, http.StatusUnsupportedMediaType, "UNSUPPORTED_MEDIA_TYPE", "Only JPEG and PNG images are accepted")
	case errors.Is(err, ErrFileTooLarge):
		response.Error(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "File exceeds the size limit")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
