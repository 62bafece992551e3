package handlers

import (
	"net/http"

	"gym_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// ClientHandler holds the client and membership services.
type ClientHandler struct {
	clientService     services.ClientService
	membershipService services.MembershipService
}

// NewClientHandler creates a new ClientHandler.
func NewClientHandler(cs services.ClientService, ms services.MembershipService) *ClientHandler {
	return &ClientHandler{clientService: cs, membershipService: ms}
}

// CreateClient handles the creation of a new client.
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req services.CreateClientRequest
	if !bindJSON(c, &req, "CreateClient") {
		return
	}

	client, err := h.clientService.CreateClient(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "CreateClient: Error from clientService.CreateClient", "Failed to create client.")
		return
	}
	c.JSON(http.StatusCreated, client)
}

// GetClients handles fetching all clients, optionally filtered by ?search= on the name.
func (h *ClientHandler) GetClients(c *gin.Context) {
	clients, err := h.clientService.GetClients(c.Request.Context(), searchQuery(c))
	if err != nil {
		respondServiceError(c, err, "GetClients: Error from clientService.GetClients", "Failed to fetch clients.")
		return
	}
	c.JSON(http.StatusOK, clients)
}

// GetClientByID handles fetching a single client by ID.
func (h *ClientHandler) GetClientByID(c *gin.Context) {
	clientID, ok := pathID(c, "client")
	if !ok {
		return
	}

	client, err := h.clientService.GetClientByID(c.Request.Context(), clientID)
	if err != nil {
		respondServiceError(c, err, "GetClientByID: Error from clientService.GetClientByID", "Failed to fetch client.")
		return
	}
	c.JSON(http.StatusOK, client)
}

// GetClientByPhoneNumber handles an exact phone number lookup.
func (h *ClientHandler) GetClientByPhoneNumber(c *gin.Context) {
	client, err := h.clientService.GetClientByPhoneNumber(c.Request.Context(), c.Param("phone"))
	if err != nil {
		respondServiceError(c, err, "GetClientByPhoneNumber: Error from clientService.GetClientByPhoneNumber", "Failed to fetch client.")
		return
	}
	c.JSON(http.StatusOK, client)
}

// UpdateClientNotes replaces a client's notes.
func (h *ClientHandler) UpdateClientNotes(c *gin.Context) {
	clientID, ok := pathID(c, "client")
	if !ok {
		return
	}
	var req services.UpdateClientNotesRequest
	if !bindJSON(c, &req, "UpdateClientNotes") {
		return
	}

	client, err := h.clientService.UpdateClientNotes(c.Request.Context(), clientID, req.Notes)
	if err != nil {
		respondServiceError(c, err, "UpdateClientNotes: Error from clientService.UpdateClientNotes", "Failed to update client notes.")
		return
	}
	c.JSON(http.StatusOK, client)
}

// GetClientMemberships returns the client's membership history with statuses.
func (h *ClientHandler) GetClientMemberships(c *gin.Context) {
	clientID, ok := pathID(c, "client")
	if !ok {
		return
	}

	memberships, err := h.membershipService.GetClientMemberships(c.Request.Context(), clientID)
	if err != nil {
		respondServiceError(c, err, "GetClientMemberships: Error from membershipService.GetClientMemberships", "Failed to fetch client memberships.")
		return
	}
	c.JSON(http.StatusOK, memberships)
}

// DeleteClient handles deleting a client.
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	clientID, ok := pathID(c, "client")
	if !ok {
		return
	}

	if err := h.clientService.DeleteClient(c.Request.Context(), clientID); err != nil {
		respondServiceError(c, err, "DeleteClient: Error from clientService.DeleteClient", "Failed to delete client.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Client deleted successfully"})
}
