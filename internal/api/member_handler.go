package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"gym-api/internal/domain"
	"gym-api/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemberHandler holds the member service dependency.
type MemberHandler struct {
	memberService service.MemberService
}

// NewMemberHandler creates a new MemberHandler.
func NewMemberHandler(memberService service.MemberService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

// --- Request/Response Structs ---

type CreateMemberRequest struct {
	FirstName             string    `json:"firstName" binding:"required"`
	LastName              string    `json:"lastName" binding:"required"`
	Email                 string    `json:"email" binding:"required,email"`
	PhoneNumber           string    `json:"phoneNumber"`
	DateOfBirth           time.Time `json:"dateOfBirth" binding:"required"`
	Gender                string    `json:"gender" binding:"required,oneof=Male Female"`
	EmergencyContactName  string    `json:"emergencyContactName"`
	EmergencyContactPhone string    `json:"emergencyContactPhone"`
}

// --- Handler Methods ---

// CreateMember godoc
// @Summary Register a new gym member
// @Tags Members
// @Accept json
// @Produce json
// @Param member body CreateMemberRequest true "Member details"
// @Success 201 {object} domain.Member
// @Failure 400 {object} gin.H "Invalid input"
// @Router /members [post]
func (h *MemberHandler) CreateMember(c *gin.Context) {
	var req CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	member := &domain.Member{
		FirstName:             req.FirstName,
		LastName:              req.LastName,
		Email:                 req.Email,
		PhoneNumber:           req.PhoneNumber,
		DateOfBirth:           req.DateOfBirth,
		Gender:                domain.Gender(req.Gender),
		EmergencyContactName:  req.EmergencyContactName,
		EmergencyContactPhone: req.EmergencyContactPhone,
	}

	created, err := h.memberService.CreateMember(c.Request.Context(), member)
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create member")
		}
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetMemberByID godoc
// @Summary Get a member by ID
// @Tags Members
// @Produce json
// @Param id path string true "Member ID"
// @Success 200 {object} domain.Member
// @Failure 404 {object} gin.H "Member not found"
// @Router /members/{id} [get]
func (h *MemberHandler) GetMemberByID(c *gin.Context) {
	memberID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid member ID format")
		return
	}

	member, err := h.memberService.GetMemberByID(c.Request.Context(), memberID)
	if err != nil {
		if errors.Is(err, service.ErrMemberNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve member")
		}
		return
	}

	c.JSON(http.StatusOK, member)
}

// GetMembers godoc
// @Summary List all active members
// @Tags Members
// @Produce json
// @Success 200 {array} domain.Member
// @Router /members [get]
func (h *MemberHandler) GetMembers(c *gin.Context) {
	members, err := h.memberService.GetMembers(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve members")
		return
	}

	c.JSON(http.StatusOK, members)
}

// DeleteMember godoc
// @Summary Remove a member
// @Tags Members
// @Param id path string true "Member ID"
// @Success 204 "Member removed"
// @Failure 404 {object} gin.H "Member not found"
// @Router /members/{id} [delete]
func (h *MemberHandler) DeleteMember(c *gin.Context) {
	memberID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid member ID format")
		return
	}

	if err := h.memberService.DeleteMember(c.Request.Context(), memberID); err != nil {
		if errors.Is(err, service.ErrMemberNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to remove member")
		}
		return
	}

	c.Status(http.StatusNoContent)
}
