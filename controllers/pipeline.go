package controllers

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/leadflowbr/leadflow_end/models"
	"github.com/leadflowbr/leadflow_end/repository"
	"github.com/leadflowbr/leadflow_end/service"
	"github.com/leadflowbr/leadflow_end/utils"
)

// GetKanbanBoard returns the caller's leads bucketed into pipeline columns.
func GetKanbanBoard(c *gin.Context) {
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

	board := service.GroupByStage(leads)

	columns := make([]gin.H, 0, len(service.PipelineStages))
	for _, stage := range service.PipelineStages {
		cards := make([]service.ScoredLead, 0, len(board[stage]))
		for _, lead := range board[stage] {
			cards = append(cards, service.WithScore(lead))
		}
		columns = append(columns, gin.H{
			"stage": stage,
			"leads": cards,
		})
	}

	utils.SuccessResponse(c, columns, "")
}

// ChangeLeadStage moves a lead to another pipeline column. One atomic partial
// update keyed by lead id, last writer wins; lastInteractionAt is stamped
// with the transition time.
func ChangeLeadStage(c *gin.Context) {
	user, err := utils.GetUser(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	var req models.StageChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.CreateValidationError("stage is required"))
		return
	}

	if !models.ValidLeadStage(req.Stage) {
		utils.HandleError(c, utils.CreateValidationError("unknown stage"))
		return
	}
	target := models.LeadStage(req.Stage)

	lead, objID, ok := findOwnedLead(c, user)
	if !ok {
		return
	}

	if !service.CanTransition(lead.EffectiveStage(), target) {
		utils.HandleError(c, utils.CreateValidationError("stage transition not allowed"))
		return
	}

	now := time.Now()
	update := bson.M{
		"stage":             target,
		"lastInteractionAt": now,
	}
	if req.KanbanOrder != nil {
		update["kanbanOrder"] = *req.KanbanOrder
	}

	_, err = repository.Collection(repository.LeadsCollection).
		UpdateByID(repository.GetContext(), objID, bson.M{"$set": update})
	if err != nil {
		// the client reverts the visual move and may retry
		utils.HandleError(c, err)
		return
	}

	lead.Stage = target
	lead.LastInteraction = now
	if req.KanbanOrder != nil {
		lead.KanbanOrder = *req.KanbanOrder
	}

	utils.SuccessResponse(c, service.WithScore(*lead), "stage updated")
}
