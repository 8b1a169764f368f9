package catalog

import (
	"errors"
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
	rg.GET("/clients", h.ListClients)
	rg.POST("/clients", h.CreateClient)
	rg.GET("/clients/:id", h.GetClient)
	rg.PUT("/clients/:id", h.UpdateClient)
	rg.DELETE("/clients/:id", h.DeleteClient)
	rg.GET("/clients/:id/contacts", h.ListContacts)
	rg.POST("/clients/:id/contacts", h.CreateContact)

	rg.GET("/equipment", h.ListEquipment)
	rg.POST("/equipment", h.CreateEquipment)
	rg.GET("/equipment/types/list", h.EquipmentTypes)
	rg.GET("/equipment/:id", h.GetEquipment)
	rg.PUT("/equipment/:id", h.UpdateEquipment)
	rg.DELETE("/equipment/:id", h.DeleteEquipment)
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid id")
		return 0, false
	}
	return id, true
}

func (h *Handler) ListClients(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}
	clients, err := h.service.ListClients(c.Request.Context(), q)
	if err != nil {
		h.writeError(c, err, "Failed to list clients")
		return
	}
	response.Success(c, http.StatusOK, clients)
}

func (h *Handler) GetClient(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	client, err := h.service.GetClient(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "Failed to load client")
		return
	}
	response.Success(c, http.StatusOK, client)
}

func (h *Handler) CreateClient(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	client, err := h.service.CreateClient(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err, "Failed to create client")
		return
	}
	response.Success(c, http.StatusCreated, client)
}

func (h *Handler) UpdateClient(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	client, err := h.service.UpdateClient(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err, "Failed to update client")
		return
	}
	response.Success(c, http.StatusOK, client)
}

func (h *Handler) DeleteClient(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteClient(c.Request.Context(), c.GetString("role"), id); err != nil {
		h.writeError(c, err, "Failed to delete client")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Client deleted"})
}

func (h *Handler) ListContacts(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	contacts, err := h.service.ListContacts(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "Failed to list contacts")
		return
	}
	response.Success(c, http.StatusOK, contacts)
}

func (h *Handler) CreateContact(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	contact, err := h.service.CreateContact(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err, "Failed to create contact")
		return
	}
	response.Success(c, http.StatusCreated, contact)
}

func (h *Handler) ListEquipment(c *gin.Context) {
	var q ListEquipmentQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}
	list, err := h.service.ListEquipment(c.Request.Context(), q)
	if err != nil {
		h.writeError(c, err, "Failed to list equipment")
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *Handler) GetEquipment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	e, err := h.service.GetEquipment(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "Failed to load equipment")
		return
	}
	response.Success(c, http.StatusOK, e)
}

func (h *Handler) CreateEquipment(c *gin.Context) {
	var req CreateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	e, err := h.service.CreateEquipment(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err, "Failed to create equipment")
		return
	}
	response.Success(c, http.StatusCreated, e)
}

func (h *Handler) UpdateEquipment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req UpdateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	e, err := h.service.UpdateEquipment(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err, "Failed to update equipment")
		return
	}
	response.Success(c, http.StatusOK, e)
}

func (h *Handler) DeleteEquipment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteEquipment(c.Request.Context(), c.GetString("role"), id); err != nil {
		h.writeError(c, err, "Failed to delete equipment")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Equipment deleted"})
}

func (h *Handler) EquipmentTypes(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"types": h.service.EquipmentTypes()})
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid payload", ve.Fields)
		return
	}
	switch err {
	case ErrClientNotFound:
		response.Error(c, http.StatusNotFound, "CLIENT_NOT_FOUND", "Client not found")
	case ErrEquipmentNotFound:
		response.Error(c, http.StatusNotFound, "EQUIPMENT_NOT_FOUND", "Equipment not found")
	case ErrDuplicateSerial:
		response.Error(c, http.StatusConflict, "DUPLICATE_SERIAL", "Serial number already registered")
	case ErrInvalidEquipmentType:
		response.Error(c, http.StatusBadRequest, "INVALID_EQUIPMENT_TYPE", "Unknown equipment type")
	case ErrForbidden:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Insufficient permissions")
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid payload")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
