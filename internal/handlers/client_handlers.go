package handlers

import (
	"net/http"
	"strconv"

	"fitclub_backend/internal/services"
	"fitclub_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ClientHandler handles client registration and lookup endpoints.
type ClientHandler struct {
	clientService *services.ClientService
}

// NewClientHandler creates a new ClientHandler.
func NewClientHandler(clientService *services.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// CreateClient handles POST /api/v1/clients.
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req services.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	client, err := h.clientService.RegisterClient(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, client)
}

// GetClient handles GET /api/v1/clients/:id, returning the client with full
// membership and payment history.
func (h *ClientHandler) GetClient(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	client, err := h.clientService.GetClientDetails(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

// LookupClient handles GET /api/v1/clients/lookup?query=, resolving an ID or
// a name fragment to a single client with history.
func (h *ClientHandler) LookupClient(c *gin.Context) {
	client, err := h.clientService.LookupClient(c.Query("query"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

// ListClients handles GET /api/v1/clients with page, page_size and search.
func (h *ClientHandler) ListClients(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	var search *string
	if s := c.Query("search"); s != "" {
		search = &s
	}

	result, err := h.clientService.ListClients(page, pageSize, search)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// UpdateClient handles PUT /api/v1/clients/:id.
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req services.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	client, err := h.clientService.UpdateClient(id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

// DeactivateClient handles DELETE /api/v1/clients/:id (soft delete).
func (h *ClientHandler) DeactivateClient(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.clientService.DeactivateClient(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Client deactivated"})
}
