package handlers

import (
	"net/http"

	"fitclub_backend/internal/services"
	"fitclub_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler handles the club, trainer and room reference endpoints.
type CatalogHandler struct {
	catalogService *services.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// CreateClub handles POST /api/v1/clubs.
func (h *CatalogHandler) CreateClub(c *gin.Context) {
	var req services.CreateClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	club, err := h.catalogService.CreateClub(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, club)
}

// GetClub handles GET /api/v1/clubs/:id.
func (h *CatalogHandler) GetClub(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	club, err := h.catalogService.GetClub(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, club)
}

// ListClubs handles GET /api/v1/clubs with an optional search term.
func (h *CatalogHandler) ListClubs(c *gin.Context) {
	var search *string
	if s := c.Query("search"); s != "" {
		search = &s
	}

	clubs, err := h.catalogService.ListClubs(search)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, clubs)
}

// UpdateClub handles PUT /api/v1/clubs/:id.
func (h *CatalogHandler) UpdateClub(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req services.CreateClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	club, err := h.catalogService.UpdateClub(id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, club)
}

// DeactivateClub handles DELETE /api/v1/clubs/:id (soft delete).
func (h *CatalogHandler) DeactivateClub(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.catalogService.DeactivateClub(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Club deactivated"})
}

// CreateTrainer handles POST /api/v1/trainers.
func (h *CatalogHandler) CreateTrainer(c *gin.Context) {
	var req services.CreateTrainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	trainer, err := h.catalogService.CreateTrainer(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, trainer)
}

// ListTrainers handles GET /api/v1/trainers.
func (h *CatalogHandler) ListTrainers(c *gin.Context) {
	trainers, err := h.catalogService.ListTrainers()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, trainers)
}

// CreateRoom handles POST /api/v1/rooms.
func (h *CatalogHandler) CreateRoom(c *gin.Context) {
	var req services.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	room, err := h.catalogService.CreateRoom(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, room)
}

// ListRooms handles GET /api/v1/rooms.
func (h *CatalogHandler) ListRooms(c *gin.Context) {
	rooms, err := h.catalogService.ListRooms()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}
