package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/leadflowbr/leadflow_end/models"
	"github.com/leadflowbr/leadflow_end/repository"
	"github.com/leadflowbr/leadflow_end/service"
	"github.com/leadflowbr/leadflow_end/utils"
)

// SearchPlaces runs a places-style prospecting search.
func SearchPlaces(c *gin.Context) {
	var req models.ProspectSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.CreateValidationError("query is required"))
		return
	}

	// request ctx propagates cancellation when the client abandons the search
	results, err := placesClient.Search(c.Request.Context(), req.Query, req.Location)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, models.ProspectSearchResponse{Results: results}, "")
}

// SearchWeb runs a generic web prospecting search.
func SearchWeb(c *gin.Context) {
	var req models.ProspectSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.CreateValidationError("query is required"))
		return
	}

	results, err := webSearch.Search(c.Request.Context(), req.Query, req.Location)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, models.ProspectSearchResponse{Results: results}, "")
}

// CrawlSite extracts contacts from a URL.
func CrawlSite(c *gin.Context) {
	var req models.CrawlRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.CreateValidationError("url is required"))
		return
	}

	resp, err := crawler.Extract(c.Request.Context(), req.URL)
	if err != nil {
		utils.Logger.Warn().Err(err).Str("url", req.URL).Msg("crawl failed")
		c.JSON(http.StatusOK, models.CrawlResponse{Success: false, Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ImportProspects persists selected search/crawl results as leads, honoring
// the monthly quota. Oversized batches are truncated to the remaining quota
// rather than rejected.
func ImportProspects(c *gin.Context) {
	user, err := utils.GetUser(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	var req models.ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.CreateValidationError("source and candidates are required"))
		return
	}

	if req.Source != models.ImportSourceSEARCH && req.Source != models.ImportSourceCRAWLER {
		utils.HandleError(c, utils.CreateValidationError("unknown import source"))
		return
	}

	candidates := make([]models.ImportCandidate, 0, len(req.Candidates))
	for _, cand := range req.Candidates {
		if strings.TrimSpace(cand.CompanyName) == "" {
			continue
		}
		candidates = append(candidates, cand)
	}
	if len(candidates) == 0 {
		utils.HandleError(c, utils.CreateValidationError("no valid candidates"))
		return
	}

	profile, dbUser, err := loadProfile(user.ID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	now := time.Now()
	remaining := service.RemainingQuota(profile, planLimits, req.Source, now)
	if remaining == 0 {
		mailer.SendQuotaReachedEmail(dbUser.Email, dbUser.Name)
		utils.HandleError(c, utils.CreateLeadLimitError(0))
		return
	}

	truncated := service.TruncateToQuota(candidates, remaining)

	leadType := models.LeadTypePLACE
	if req.Source == models.ImportSourceCRAWLER {
		leadType = models.LeadTypeWEBSITE
	}

	docs := make([]interface{}, 0, len(truncated))
	for _, cand := range truncated {
		docs = append(docs, models.Lead{
			UserID:           user.ID,
			CompanyName:      strings.TrimSpace(cand.CompanyName),
			Location:         cand.Address,
			Website:          cand.Website,
			Phone:            cand.Phone,
			Email:            cand.Email,
			Type:             leadType,
			Status:           models.LeadStatusNEW,
			Tags:             []string{},
			Stage:            models.StageNEW,
			Rating:           cand.Rating,
			UserRatingsTotal: cand.UserRatingsTotal,
			ExtractionDate:   now,
			CreatedAt:        now,
		})
	}

	ctx := repository.GetContext()
	result, err := repository.Collection(repository.LeadsCollection).InsertMany(ctx, docs)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	if err := bumpExtractionCounter(user.ID, profile, len(result.InsertedIDs), now); err != nil {
		utils.Logger.Error().Err(err).Str("user", user.ID).Msg("extraction counter update failed")
	}

	utils.SuccessResponse(c, gin.H{
		"imported":  len(result.InsertedIDs),
		"requested": len(req.Candidates),
		"truncated": len(req.Candidates) - len(truncated),
	}, "leads imported", http.StatusCreated)
}

// bumpExtractionCounter advances the monthly counter, applying the lazy
// calendar-month reset on write.
func bumpExtractionCounter(userID string, profile *models.Profile, added int, now time.Time) error {
	user, err := repository.FindUserByID(userID)
	if err != nil {
		return err
	}

	count := profile.ExtractedLeadsCount
	reset := profile.LastExtractionReset
	if reset.IsZero() || reset.Year() != now.Year() || reset.Month() != now.Month() {
		count = 0
		reset = now
	}

	return repository.UpdateUserQuota(user.ID, count+added, reset)
}
