package controllers

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/leadflowbr/leadflow_end/models"
	"github.com/leadflowbr/leadflow_end/repository"
	"github.com/leadflowbr/leadflow_end/utils"
)

// CreateCheckout asks the payment gateway for a checkout session and returns
// the redirect URL.
func CreateCheckout(c *gin.Context) {
	user, err := utils.GetUser(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Amount <= 0 {
		utils.HandleError(c, utils.CreateValidationError("a positive amount is required"))
		return
	}

	resp, err := checkoutClient.CreateSession(c.Request.Context(), user.ID, req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, resp, "")
}

// ConfirmCheckout gateway callback that upgrades the paid account to premium.
// Guarded by the shared webhook secret.
func ConfirmCheckout(c *gin.Context) {
	var req models.CheckoutConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.CreateValidationError("userId, reference and secret are required"))
		return
	}

	if checkoutSecret == "" ||
		subtle.ConstantTimeCompare([]byte(req.Secret), []byte(checkoutSecret)) != 1 {
		utils.ErrorResponse(c, "invalid webhook secret", http.StatusUnauthorized)
		return
	}

	objID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		utils.HandleError(c, utils.CreateValidationError("invalid user id"))
		return
	}

	if err := repository.UpgradeUserToPremium(objID); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.Logger.Info().
		Str("user", req.UserID).
		Str("reference", req.Reference).
		Msg("account upgraded to premium")

	utils.SuccessResponse(c, nil, "subscription activated")
}
