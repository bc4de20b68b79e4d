package handlers

import (
	"net/http"

	"fitclub_backend/internal/models"
	"fitclub_backend/internal/services"
	"fitclub_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AttendanceHandler handles the check-in desk endpoints.
type AttendanceHandler struct {
	attendanceService *services.AttendanceService
}

// NewAttendanceHandler creates a new AttendanceHandler.
func NewAttendanceHandler(attendanceService *services.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService}
}

// CheckIn handles POST /api/v1/attendance/check-in.
func (h *AttendanceHandler) CheckIn(c *gin.Context) {
	var req services.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	result, err := h.attendanceService.CheckIn(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if result.AlreadyPresent {
		c.JSON(http.StatusOK, result)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// CheckOut handles POST /api/v1/attendance/:id/check-out, where :id is the
// membership ID. Undoing an absent check-in is not an error.
func (h *AttendanceHandler) CheckOut(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.attendanceService.CheckOut(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Check-in undone"})
}

type updateNotesRequest struct {
	Notes string `json:"notes"`
}

// UpdateNotes handles PUT /api/v1/attendance/:id/notes, where :id is the
// membership ID. The notes land on today's visit.
func (h *AttendanceHandler) UpdateNotes(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req updateNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	if err := h.attendanceService.UpdateNotes(id, req.Notes); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notes updated"})
}

// Search handles GET /api/v1/attendance/search with client_id or name.
func (h *AttendanceHandler) Search(c *gin.Context) {
	var clientID *int64
	if raw := c.Query("client_id"); raw != "" {
		id, ok := utils.ParseID(raw)
		if !ok {
			utils.RespondValidationFailed(c, "client_id must be a positive integer")
			return
		}
		clientID = &id
	}
	var name *string
	if raw := c.Query("name"); raw != "" {
		name = &raw
	}

	entries, err := h.attendanceService.Search(clientID, name)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	visitsToday, err := h.attendanceService.TotalVisitsToday()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries, "visits_today": visitsToday})
}

// ListVisits handles GET /api/v1/visits with optional date and search filters.
func (h *AttendanceHandler) ListVisits(c *gin.Context) {
	filters := models.VisitFilters{
		Date:   c.Query("date"),
		Search: c.Query("search"),
	}

	visits, err := h.attendanceService.ListVisits(filters)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, visits)
}
