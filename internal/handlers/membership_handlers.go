package handlers

import (
	"net/http"

	"gym_backend/internal/models"
	"gym_backend/internal/services"
	"gym_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// MembershipHandler holds the membership and payment services.
type MembershipHandler struct {
	membershipService services.MembershipService
	paymentService    services.PaymentService
}

// NewMembershipHandler creates a new MembershipHandler.
func NewMembershipHandler(ms services.MembershipService, ps services.PaymentService) *MembershipHandler {
	return &MembershipHandler{membershipService: ms, paymentService: ps}
}

// CreateMembership starts a membership for a client and records its payment.
func (h *MembershipHandler) CreateMembership(c *gin.Context) {
	var req services.CreateMembershipRequest
	if !bindJSON(c, &req, "CreateMembership") {
		return
	}

	ctx := c.Request.Context()
	membershipID, err := h.membershipService.CreateMembership(ctx, req.ClientID, req.MembershipTypeID)
	if err != nil {
		respondServiceError(c, err, "CreateMembership: Error from membershipService.CreateMembership", "Failed to create membership.")
		return
	}
	h.respondWithMembership(c, http.StatusCreated, membershipID)
}

// RenewMembership starts a new period for the client owning :id.
// The body is optional; membership_type_id switches the type.
func (h *MembershipHandler) RenewMembership(c *gin.Context) {
	membershipID, ok := pathID(c, "membership")
	if !ok {
		return
	}
	var req services.RenewMembershipRequest
	if !bindOptionalJSON(c, &req, "RenewMembership") {
		return
	}

	renewedID, err := h.membershipService.RenewMembership(c.Request.Context(), membershipID, req.MembershipTypeID)
	if err != nil {
		respondServiceError(c, err, "RenewMembership: Error from membershipService.RenewMembership", "Failed to renew membership.")
		return
	}
	h.respondWithMembership(c, http.StatusCreated, renewedID)
}

func (h *MembershipHandler) respondWithMembership(c *gin.Context, status int, membershipID int64) {
	membership, err := h.membershipService.GetMembershipByID(c.Request.Context(), membershipID)
	if err != nil {
		respondServiceError(c, err, "Error reloading membership", "Failed to fetch membership.")
		return
	}
	c.JSON(status, membership)
}

// GetMemberships lists memberships, optionally filtered by ?status= and ?client_id=.
func (h *MembershipHandler) GetMemberships(c *gin.Context) {
	var clientID *int64
	if raw := c.Query("client_id"); raw != "" {
		id, err := utils.ParseID(raw)
		if err != nil {
			utils.RespondValidationFailed(c, err.Error())
			return
		}
		clientID = &id
	}

	ctx := c.Request.Context()
	var memberships []models.MembershipWithStatus
	var err error
	if status := c.Query("status"); status != "" {
		memberships, err = h.membershipService.ListByStatus(ctx, models.MembershipStatus(status), clientID)
	} else {
		memberships, err = h.membershipService.ListMemberships(ctx, clientID)
	}
	if err != nil {
		respondServiceError(c, err, "GetMemberships: Error from membershipService", "Failed to fetch memberships.")
		return
	}
	c.JSON(http.StatusOK, memberships)
}

func (h *MembershipHandler) GetMembershipByID(c *gin.Context) {
	membershipID, ok := pathID(c, "membership")
	if !ok {
		return
	}
	h.respondWithMembership(c, http.StatusOK, membershipID)
}

// GetMembershipStatus returns only the derived status of a membership.
func (h *MembershipHandler) GetMembershipStatus(c *gin.Context) {
	membershipID, ok := pathID(c, "membership")
	if !ok {
		return
	}

	status, err := h.membershipService.StatusOf(c.Request.Context(), membershipID)
	if err != nil {
		respondServiceError(c, err, "GetMembershipStatus: Error from membershipService.StatusOf", "Failed to fetch membership status.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"membership_id": membershipID, "status": status})
}

func (h *MembershipHandler) GetMembershipPayments(c *gin.Context) {
	membershipID, ok := pathID(c, "membership")
	if !ok {
		return
	}

	payments, err := h.paymentService.GetPaymentsByMembership(c.Request.Context(), membershipID)
	if err != nil {
		respondServiceError(c, err, "GetMembershipPayments: Error from paymentService.GetPaymentsByMembership", "Failed to fetch payments.")
		return
	}
	c.JSON(http.StatusOK, payments)
}

func (h *MembershipHandler) DeleteMembership(c *gin.Context) {
	membershipID, ok := pathID(c, "membership")
	if !ok {
		return
	}

	if err := h.membershipService.DeleteMembership(c.Request.Context(), membershipID); err != nil {
		respondServiceError(c, err, "DeleteMembership: Error from membershipService.DeleteMembership", "Failed to delete membership.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Membership deleted successfully"})
}
