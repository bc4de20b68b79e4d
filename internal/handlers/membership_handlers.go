package handlers

import (
	"net/http"

	"fitclub_backend/internal/services"
	"fitclub_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// MembershipHandler handles membership sale and lifecycle endpoints.
type MembershipHandler struct {
	membershipService *services.MembershipService
}

// NewMembershipHandler creates a new MembershipHandler.
func NewMembershipHandler(membershipService *services.MembershipService) *MembershipHandler {
	return &MembershipHandler{membershipService: membershipService}
}

// Purchase handles POST /api/v1/memberships.
func (h *MembershipHandler) Purchase(c *gin.Context) {
	var req services.PurchaseMembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	membership, err := h.membershipService.Purchase(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, membership)
}

// Freeze handles POST /api/v1/memberships/:id/freeze.
func (h *MembershipHandler) Freeze(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req services.FreezeMembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	membership, err := h.membershipService.Freeze(id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, membership)
}

// GetMembership handles GET /api/v1/memberships/:id.
func (h *MembershipHandler) GetMembership(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	membership, err := h.membershipService.GetMembership(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, membership)
}

// GetClientMemberships handles GET /api/v1/clients/:id/memberships.
func (h *MembershipHandler) GetClientMemberships(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	memberships, err := h.membershipService.GetClientMemberships(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, memberships)
}
