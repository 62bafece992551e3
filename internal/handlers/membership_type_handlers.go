package handlers

import (
	"net/http"

	"gym_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// MembershipTypeHandler holds the membership type service.
type MembershipTypeHandler struct {
	typeService services.MembershipTypeService
}

// NewMembershipTypeHandler creates a new MembershipTypeHandler.
func NewMembershipTypeHandler(ts services.MembershipTypeService) *MembershipTypeHandler {
	return &MembershipTypeHandler{typeService: ts}
}

func (h *MembershipTypeHandler) CreateMembershipType(c *gin.Context) {
	var req services.CreateMembershipTypeRequest
	if !bindJSON(c, &req, "CreateMembershipType") {
		return
	}

	membershipType, err := h.typeService.CreateMembershipType(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "CreateMembershipType: Error from typeService.CreateMembershipType", "Failed to create membership type.")
		return
	}
	c.JSON(http.StatusCreated, membershipType)
}

// GetMembershipTypes lists the catalog by ascending price.
func (h *MembershipTypeHandler) GetMembershipTypes(c *gin.Context) {
	types, err := h.typeService.GetMembershipTypes(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "GetMembershipTypes: Error from typeService.GetMembershipTypes", "Failed to fetch membership types.")
		return
	}
	c.JSON(http.StatusOK, types)
}

func (h *MembershipTypeHandler) GetMembershipTypeByID(c *gin.Context) {
	typeID, ok := pathID(c, "membership type")
	if !ok {
		return
	}

	membershipType, err := h.typeService.GetMembershipTypeByID(c.Request.Context(), typeID)
	if err != nil {
		respondServiceError(c, err, "GetMembershipTypeByID: Error from typeService.GetMembershipTypeByID", "Failed to fetch membership type.")
		return
	}
	c.JSON(http.StatusOK, membershipType)
}

func (h *MembershipTypeHandler) UpdateMembershipType(c *gin.Context) {
	typeID, ok := pathID(c, "membership type")
	if !ok {
		return
	}
	var req services.UpdateMembershipTypeRequest
	if !bindJSON(c, &req, "UpdateMembershipType") {
		return
	}

	membershipType, err := h.typeService.UpdateMembershipType(c.Request.Context(), typeID, req)
	if err != nil {
		respondServiceError(c, err, "UpdateMembershipType: Error from typeService.UpdateMembershipType", "Failed to update membership type.")
		return
	}
	c.JSON(http.StatusOK, membershipType)
}

func (h *MembershipTypeHandler) DeleteMembershipType(c *gin.Context) {
	typeID, ok := pathID(c, "membership type")
	if !ok {
		return
	}

	if err := h.typeService.DeleteMembershipType(c.Request.Context(), typeID); err != nil {
		respondServiceError(c, err, "DeleteMembershipType: Error from typeService.DeleteMembershipType", "Failed to delete membership type.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Membership type deleted successfully"})
}
