package handlers

import (
	"net/http"

	"gym_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// EquipmentHandler holds the equipment service.
type EquipmentHandler struct {
	equipmentService services.EquipmentService
}

// NewEquipmentHandler creates a new EquipmentHandler.
func NewEquipmentHandler(es services.EquipmentService) *EquipmentHandler {
	return &EquipmentHandler{equipmentService: es}
}

func (h *EquipmentHandler) CreateEquipment(c *gin.Context) {
	var req services.CreateEquipmentRequest
	if !bindJSON(c, &req, "CreateEquipment") {
		return
	}

	equipment, err := h.equipmentService.CreateEquipment(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "CreateEquipment: Error from equipmentService.CreateEquipment", "Failed to create equipment.")
		return
	}
	c.JSON(http.StatusCreated, equipment)
}

// GetEquipment lists equipment, optionally filtered by ?search= on the name.
func (h *EquipmentHandler) GetEquipment(c *gin.Context) {
	equipment, err := h.equipmentService.GetEquipment(c.Request.Context(), searchQuery(c))
	if err != nil {
		respondServiceError(c, err, "GetEquipment: Error from equipmentService.GetEquipment", "Failed to fetch equipment.")
		return
	}
	c.JSON(http.StatusOK, equipment)
}

func (h *EquipmentHandler) GetEquipmentByID(c *gin.Context) {
	equipmentID, ok := pathID(c, "equipment")
	if !ok {
		return
	}

	equipment, err := h.equipmentService.GetEquipmentByID(c.Request.Context(), equipmentID)
	if err != nil {
		respondServiceError(c, err, "GetEquipmentByID: Error from equipmentService.GetEquipmentByID", "Failed to fetch equipment.")
		return
	}
	c.JSON(http.StatusOK, equipment)
}

func (h *EquipmentHandler) UpdateEquipmentStatus(c *gin.Context) {
	equipmentID, ok := pathID(c, "equipment")
	if !ok {
		return
	}
	var req services.UpdateEquipmentStatusRequest
	if !bindJSON(c, &req, "UpdateEquipmentStatus") {
		return
	}

	equipment, err := h.equipmentService.UpdateEquipmentStatus(c.Request.Context(), equipmentID, req.Status)
	if err != nil {
		respondServiceError(c, err, "UpdateEquipmentStatus: Error from equipmentService.UpdateEquipmentStatus", "Failed to update equipment status.")
		return
	}
	c.JSON(http.StatusOK, equipment)
}

func (h *EquipmentHandler) DeleteEquipment(c *gin.Context) {
	equipmentID, ok := pathID(c, "equipment")
	if !ok {
		return
	}

	if err := h.equipmentService.DeleteEquipment(c.Request.Context(), equipmentID); err != nil {
		respondServiceError(c, err, "DeleteEquipment: Error from equipmentService.DeleteEquipment", "Failed to delete equipment.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Equipment deleted successfully"})
}
