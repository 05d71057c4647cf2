package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/leadflowbr/leadflow_end/models"
	"github.com/leadflowbr/leadflow_end/repository"
	"github.com/leadflowbr/leadflow_end/service"
	"github.com/leadflowbr/leadflow_end/utils"
)

// Register creates an account. New accounts start on a trial.
func Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, "email, password and name are required", http.StatusBadRequest)
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if !utils.IsValidEmail(req.Email) {
		utils.HandleError(c, utils.CreateValidationError("invalid email address"))
		return
	}
	if len(req.Password) < 6 {
		utils.HandleError(c, utils.CreateValidationError("password must have at least 6 characters"))
		return
	}

	existing, err := repository.FindUserByEmail(req.Email)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	if existing != nil {
		utils.ErrorResponse(c, "an account with this email already exists", http.StatusConflict)
		return
	}

	now := time.Now()
	user := models.User{
		Email:               req.Email,
		Password:            utils.HashPassword(req.Password),
		Name:                strings.TrimSpace(req.Name),
		SubscriptionType:    models.SubscriptionTRIAL,
		TrialStartDate:      now,
		ExtractedLeadsCount: 0,
		LastExtractionReset: now,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	result, err := repository.Collection(repository.UsersCollection).
		InsertOne(repository.GetContext(), user)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	utils.Logger.Info().Str("user", user.ID.Hex()).Msg("account created")

	token, err := utils.GenerateToken(&user)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"token": token,
		"user":  user,
	}, "account created", http.StatusCreated)
}

// Login authenticates and issues a JWT.
func Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, "email and password are required", http.StatusBadRequest)
		return
	}

	user, err := repository.FindUserByEmail(strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	if user == nil || !utils.VerifyPassword(req.Password, user.Password) {
		utils.ErrorResponse(c, "invalid email or password", http.StatusUnauthorized)
		return
	}

	token, err := utils.GenerateToken(user)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"token": token,
		"user":  user,
	}, "")
}

// GetCurrentUser returns the profile plus the computed trial and quota state.
func GetCurrentUser(c *gin.Context) {
	login, err := utils.GetUser(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	user, err := repository.FindUserByID(login.ID)
	if err != nil {
		utils.HandleError(c, utils.CreateNotFoundError("user"))
		return
	}

	profile := user.Profile()
	now := time.Now()

	utils.SuccessResponse(c, gin.H{
		"user":             user,
		"trialActive":      service.IsTrialActive(&profile, planLimits, now),
		"remainingSearch":  service.RemainingQuota(&profile, planLimits, models.ImportSourceSEARCH, now),
		"remainingCrawler": service.RemainingQuota(&profile, planLimits, models.ImportSourceCRAWLER, now),
	}, "")
}
