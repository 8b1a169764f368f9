package inspection

import (
	"net/http"
	"strconv"

	"attareports/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/inspection/categories", h.ListCategories)
	rg.POST("/inspection/categories", h.CreateCategory)
	rg.GET("/inspection/categories/:id/items", h.ListItems)
	rg.POST("/inspection/categories/:id/items", h.CreateItem)
	rg.GET("/inspection/items", h.ListAllItems)
	rg.POST("/inspection/items", h.CreateItemFlat)
	rg.GET("/inspection/operation-points", h.ListOperationPoints)
	rg.POST("/inspection/operation-points", h.CreateOperationPoint)
	rg.GET("/inspection/templates/service-report", h.ServiceReportTemplate)
}

func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.service.ListCategories(c.Request.Context())
	if err != nil {
		h.writeError(c, err, "Failed to list categories")
		return
	}
	response.Success(c, http.StatusOK, categories)
}

func (h *Handler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	category, err := h.service.CreateCategory(c.Request.Context(), c.GetString("role"), req)
	if err != nil {
		h.writeError(c, err, "Failed to create category")
		return
	}
	response.Success(c, http.StatusCreated, category)
}

func (h *Handler) ListItems(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid category id")
		return
	}
	items, err := h.service.ListItems(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "Failed to list items")
		return
	}
	response.Success(c, http.StatusOK, items)
}

func (h *Handler) CreateItem(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid category id")
		return
	}
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	item, err := h.service.CreateItem(c.Request.Context(), c.GetString("role"), id, req)
	if err != nil {
		h.writeError(c, err, "Failed to create item")
		return
	}
	response.Success(c, http.StatusCreated, item)
}

func (h *Handler) ListAllItems(c *gin.Context) {
	items, err := h.service.ListAllItems(c.Request.Context())
	if err != nil {
		h.writeError(c, err, "Failed to list items")
		return
	}
	response.Success(c, http.StatusOK, items)
}

func (h *Handler) CreateItemFlat(c *gin.Context) {
	var req CreateItemFlatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	item, err := h.service.CreateItem(c.Request.Context(), c.GetString("role"), req.CategoryID, CreateItemRequest{
		Name:        req.Name,
		Description: req.Description,
		OrderIndex:  req.OrderIndex,
	})
	if err != nil {
		h.writeError(c, err, "Failed to create item")
		return
	}
	response.Success(c, http.StatusCreated, item)
}

func (h *Handler) ListOperationPoints(c *gin.Context) {
	points, err := h.service.ListOperationPoints(c.Request.Context())
	if err != nil {
		h.writeError(c, err, "Failed to list operation points")
		return
	}
	response.Success(c, http.StatusOK, points)
}

func (h *Handler) CreateOperationPoint(c *gin.Context) {
	var req CreateOperationPointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	point, err := h.service.CreateOperationPoint(c.Request.Context(), c.GetString("role"), req)
	if err != nil {
		h.writeError(c, err, "Failed to create operation point")
		return
	}
	response.Success(c, http.StatusCreated, point)
}

func (h *Handler) ServiceReportTemplate(c *gin.Context) {
	template, err := h.service.ServiceReportTemplate(c.Request.Context())
	if err != nil {
		h.writeError(c, err, "Failed to build template")
		return
	}
	response.Success(c, http.StatusOK, template)
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch err {
	case ErrCategoryNotFound:
		response.Error(c, http.StatusNotFound, "CATEGORY_NOT_FOUND", "Inspection category not found")
	case ErrDuplicateCategory:
		response.Error(c, http.StatusConflict, "DUPLICATE_CATEGORY", "Inspection category already exists")
	case ErrInvalidFieldType:
		response.Error(c, http.StatusBadRequest, "INVALID_FIELD_TYPE", "Field type must be number, select or text")
	case ErrForbidden:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Insufficient permissions")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
