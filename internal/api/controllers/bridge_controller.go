package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gymgate/internal/models/request_models"
	"gymgate/internal/services"
	"gymgate/pkg/utils"
)

// BridgeController serves the /api/user resource the fingerprint
// scanner workflow talks to. Its response bodies follow the scanner's
// wire format, not the management API envelope.
type BridgeController struct {
	bridgeService services.BridgeServiceInterface
}

func NewBridgeController(bridgeService services.BridgeServiceInterface) *BridgeController {
	return &BridgeController{
		bridgeService: bridgeService,
	}
}

// Status is the health probe; it always reports success.
func (b *BridgeController) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// Post handles enroll and checkin intents.
func (b *BridgeController) Post(c *gin.Context) {
	var req request_models.BridgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid operation."})
		return
	}

	switch req.Operation {
	case services.OperationEnroll:
		if err := b.bridgeService.Enroll(c.Request.Context(), req.UserID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to enroll user."})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "User enrolled successfully."})

	case services.OperationCheckIn:
		member, outcome, err := b.bridgeService.CheckIn(c.Request.Context(), req.UserID)
		if err != nil {
			if errors.Is(err, utils.ErrMemberNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "User not found."})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error."})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"user_id":    req.UserID,
			"first_name": member.FirstName,
			"status":     string(outcome),
		})

	default:
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid operation."})
	}
}

// Delete forwards a delete intent to the scanner.
func (b *BridgeController) Delete(c *gin.Context) {
	var req request_models.BridgeDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid operation."})
		return
	}

	if req.Operation != services.OperationDelete {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid operation."})
		return
	}

	if err := b.bridgeService.Delete(c.Request.Context(), req.UserID, req.FirstName); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete user."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully."})
}
