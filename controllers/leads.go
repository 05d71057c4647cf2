package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/leadflowbr/leadflow_end/models"
	"github.com/leadflowbr/leadflow_end/repository"
	"github.com/leadflowbr/leadflow_end/service"
	"github.com/leadflowbr/leadflow_end/utils"
)

// fetchOwnerLeads loads the caller's full lead collection, newest first.
func fetchOwnerLeads(userID string) ([]models.Lead, error) {
	ctx := repository.GetContext()
	collection := repository.Collection(repository.LeadsCollection)

	findOptions := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := collection.Find(ctx, bson.M{"userId": userID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var leads []models.Lead
	if err := cursor.All(ctx, &leads); err != nil {
		return nil, err
	}

	// leads persisted before the pipeline existed read as stage "new"
	for i := range leads {
		leads[i].Stage = leads[i].EffectiveStage()
	}

	return leads, nil
}

// findOwnedLead loads one lead and checks ownership.
func findOwnedLead(c *gin.Context, user *utils.LoginUser) (*models.Lead, primitive.ObjectID, bool) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.HandleError(c, utils.CreateValidationError("invalid lead id"))
		return nil, primitive.NilObjectID, false
	}

	var lead models.Lead
	err = repository.Collection(repository.LeadsCollection).
		FindOne(repository.GetContext(), bson.M{"_id": objID, "userId": user.ID}).
		Decode(&lead)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.HandleError(c, utils.CreateNotFoundError("lead"))
		} else {
			utils.HandleError(c, err)
		}
		return nil, primitive.NilObjectID, false
	}

	return &lead, objID, true
}

// GetLeadList lists the caller's leads with search, filters and sorting.
func GetLeadList(c *gin.Context) {
	user, err := utils.GetUser(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	leads, err := fetchOwnerLeads(user.ID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	filters := service.FieldFilters{
		Status:   c.Query("status"),
		Industry: c.Query("industry"),
		Location: c.Query("location"),
		Phone:    c.Query("phone"),
		Email:    c.Query("email"),
	}
	if tags := c.Query("tags"); tags != "" {
		filters.Tags = strings.Split(tags, ",")
	}

	leads = service.FilterLeads(leads, c.Query("search"), filters)
	leads = service.SortLeads(leads, c.Query("sortBy"), service.SortDirection(c.Query("sortDir")))

	scored := make([]service.ScoredLead, 0, len(leads))
	for _, lead := range leads {
		scored = append(scored, service.WithScore(lead))
	}

	// pagination is opt-in; the table view consumes the full collection
	if pageStr := c.Query("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil || page < 1 {
			page = 1
		}
		limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
		if err != nil || limit < 1 {
			limit = 50
		}

		total := int64(len(scored))
		start := (page - 1) * limit
		if start > len(scored) {
			start = len(scored)
		}
		end := start + limit
		if end > len(scored) {
			end = len(scored)
		}

		utils.PaginatedResponse(c, scored[start:end], total, int64(page), int64(limit))
		return
	}

	utils.SuccessResponse(c, scored, "")
}

// CreateLead creates a lead from the manual form.
func CreateLead(c *gin.Context) {
	user, err := utils.GetUser(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	var req models.LeadCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.CreateValidationError("company name is required"))
		return
	}

	if strings.TrimSpace(req.CompanyName) == "" {
		utils.HandleError(c, utils.CreateValidationError("company name must not be empty"))
		return
	}
	if req.Email != "" && !utils.IsValidEmail(req.Email) {
		utils.HandleError(c, utils.CreateValidationError("invalid email address"))
		return
	}
	if req.Website != "" && !utils.IsValidURL(req.Website) {
		utils.HandleError(c, utils.CreateValidationError("invalid website url"))
		return
	}
	if req.Phone != "" && !utils.IsValidPhone(req.Phone) {
		utils.HandleError(c, utils.CreateValidationError("invalid phone number"))
		return
	}

	status := models.LeadStatusNEW
	if req.Status != "" {
		if !models.ValidLeadStatus(req.Status) {
			utils.HandleError(c, utils.CreateValidationError("invalid status"))
			return
		}
		status = models.LeadStatus(req.Status)
	}

	dealValue := 0.0
	if req.DealValue != nil {
		if *req.DealValue < 0 {
			utils.HandleError(c, utils.CreateValidationError("deal value must not be negative"))
			return
		}
		dealValue = *req.DealValue
	}

	// quota gate runs before any persistence
	profile, dbUser, err := loadProfile(user.ID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	now := time.Now()
	if !service.CanAddLead(profile, planLimits, models.ImportSourceSEARCH, now) {
		mailer.SendQuotaReachedEmail(dbUser.Email, dbUser.Name)
		utils.HandleError(c, utils.CreateLeadLimitError(0))
		return
	}

	lead := models.Lead{
		UserID:      user.ID,
		CompanyName: strings.TrimSpace(req.CompanyName),
		ContactName: req.ContactName,
		Industry:    req.Industry,
		Location:    req.Location,
		Website:     req.Website,
		Phone:       req.Phone,
		Email:       req.Email,
		Type:        models.LeadTypeMANUAL,
		Status:      status,
		DealValue:   dealValue,
		Tags:        dedupeTags(req.Tags),
		Notes:       req.Notes,
		Stage:       models.StageNEW,
		CreatedAt:   now,
	}

	result, err := repository.Collection(repository.LeadsCollection).
		InsertOne(repository.GetContext(), lead)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		lead.ID = oid
	}

	utils.SuccessResponse(c, service.WithScore(lead), "lead created", http.StatusCreated)
}

// GetLeadDetail returns one lead with its score.
func GetLeadDetail(c *gin.Context) {
	user, err := utils.GetUser(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	lead, _, ok := findOwnedLead(c, user)
	if !ok {
		return
	}

	utils.SuccessResponse(c, service.WithScore(*lead), "")
}

// GetLeadScore returns the derived score and temperature labels only.
func GetLeadScore(c *gin.Context) {
	user, err := utils.GetUser(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	lead, _, ok := findOwnedLead(c, user)
	if !ok {
		return
	}

	score := service.ScoreLead(lead)
	temp := service.TemperatureFor(score)

	utils.SuccessResponse(c, gin.H{
		"score":       score,
		"temperature": temp.Label,
		"priority":    temp.Priority,
	}, "")
}

// UpdateLead applies a partial update. The type field is immutable.
func UpdateLead(c *gin.Context) {
	user, err := utils.GetUser(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	var req models.LeadUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.CreateValidationError("invalid request body"))
		return
	}

	if req.Type != nil {
		utils.HandleError(c, utils.CreateValidationError("lead type is immutable"))
		return
	}

	lead, objID, ok := findOwnedLead(c, user)
	if !ok {
		return
	}

	update := bson.M{}

	if req.CompanyName != nil {
		if strings.TrimSpace(*req.CompanyName) == "" {
			utils.HandleError(c, utils.CreateValidationError("company name must not be empty"))
			return
		}
		update["companyName"] = strings.TrimSpace(*req.CompanyName)
	}
	if req.ContactName != nil {
		update["contactName"] = *req.ContactName
	}
	if req.Industry != nil {
		update["industry"] = *req.Industry
	}
	if req.Location != nil {
		update["location"] = *req.Location
	}
	if req.Website != nil {
		if *req.Website != "" && !utils.IsValidURL(*req.Website) {
			utils.HandleError(c, utils.CreateValidationError("invalid website url"))
			return
		}
		update["website"] = *req.Website
	}
	if req.Phone != nil {
		update["phone"] = *req.Phone
	}
	if req.Email != nil {
		if *req.Email != "" && !utils.IsValidEmail(*req.Email) {
			utils.HandleError(c, utils.CreateValidationError("invalid email address"))
			return
		}
		update["email"] = *req.Email
	}
	if req.Status != nil {
		if !models.ValidLeadStatus(*req.Status) {
			utils.HandleError(c, utils.CreateValidationError("invalid status"))
			return
		}
		update["status"] = *req.Status
	}
	if req.DealValue != nil {
		if *req.DealValue < 0 {
			utils.HandleError(c, utils.CreateValidationError("deal value must not be negative"))
			return
		}
		update["dealValue"] = *req.DealValue
	}
	if req.Notes != nil {
		update["notes"] = *req.Notes
	}

	if len(update) == 0 {
		utils.SuccessResponse(c, service.WithScore(*lead), "")
		return
	}

	_, err = repository.Collection(repository.LeadsCollection).
		UpdateByID(repository.GetContext(), objID, bson.M{"$set": update})
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	updated, _, ok := findOwnedLead(c, user)
	if !ok {
		return
	}

	utils.SuccessResponse(c, service.WithScore(*updated), "lead updated")
}

// DeleteLead removes a lead.
func DeleteLead(c *gin.Context) {
	user, err := utils.GetUser(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	_, objID, ok := findOwnedLead(c, user)
	if !ok {
		return
	}

	_, err = repository.Collection(repository.LeadsCollection).
		DeleteOne(repository.GetContext(), bson.M{"_id": objID, "userId": user.ID})
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, nil, "lead deleted")
}

// AddTag appends a tag. Adding an existing tag is a conflict, not a merge.
func AddTag(c *gin.Context) {
	user, err := utils.GetUser(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	var req models.TagRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Tag) == "" {
		utils.HandleError(c, utils.CreateValidationError("tag is required"))
		return
	}
	tag := strings.TrimSpace(req.Tag)

	lead, objID, ok := findOwnedLead(c, user)
	if !ok {
		return
	}

	for _, existing := range lead.Tags {
		if existing == tag {
			utils.HandleError(c, utils.CreateDuplicateTagError(tag))
			return
		}
	}

	_, err = repository.Collection(repository.LeadsCollection).
		UpdateByID(repository.GetContext(), objID, bson.M{"$push": bson.M{"tags": tag}})
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	lead.Tags = append(lead.Tags, tag)
	utils.SuccessResponse(c, service.WithScore(*lead), "tag added")
}

// RemoveTag removes a tag if present.
func RemoveTag(c *gin.Context) {
	user, err := utils.GetUser(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	tag := c.Param("tag")
	if tag == "" {
		utils.HandleError(c, utils.CreateValidationError("tag is required"))
		return
	}

	lead, objID, ok := findOwnedLead(c, user)
	if !ok {
		return
	}

	_, err = repository.Collection(repository.LeadsCollection).
		UpdateByID(repository.GetContext(), objID, bson.M{"$pull": bson.M{"tags": tag}})
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	remaining := make([]string, 0, len(lead.Tags))
	for _, t := range lead.Tags {
		if t != tag {
			remaining = append(remaining, t)
		}
	}
	lead.Tags = remaining

	utils.SuccessResponse(c, service.WithScore(*lead), "tag removed")
}

// loadProfile fetches the caller's plan/quota profile.
func loadProfile(userID string) (*models.Profile, *models.User, error) {
	user, err := repository.FindUserByID(userID)
	if err != nil {
		return nil, nil, err
	}
	profile := user.Profile()
	return &profile, user, nil
}

// dedupeTags drops duplicate tags, keeping first occurrence order.
func dedupeTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
