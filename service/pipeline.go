package service

import (
	"sort"

	"github.com/leadflowbr/leadflow_end/models"
)

// PipelineStages column order of the kanban board.
var PipelineStages = []models.LeadStage{
	models.StageNEW,
	models.StageFIRSTCONTACT,
	models.StagePROPOSAL,
	models.StageNEGOTIATION,
	models.StageWON,
	models.StageLOST,
}

// stageTransitions explicit transition policy. Every stage is currently
// reachable from every other stage (cards can be dropped into any column);
// tightening the pipeline later is a change to this table only.
var stageTransitions = map[models.LeadStage][]models.LeadStage{
	models.StageNEW:          {models.StageNEW, models.StageFIRSTCONTACT, models.StagePROPOSAL, models.StageNEGOTIATION, models.StageWON, models.StageLOST},
	models.StageFIRSTCONTACT: {models.StageNEW, models.StageFIRSTCONTACT, models.StagePROPOSAL, models.StageNEGOTIATION, models.StageWON, models.StageLOST},
	models.StagePROPOSAL:     {models.StageNEW, models.StageFIRSTCONTACT, models.StagePROPOSAL, models.StageNEGOTIATION, models.StageWON, models.StageLOST},
	models.StageNEGOTIATION:  {models.StageNEW, models.StageFIRSTCONTACT, models.StagePROPOSAL, models.StageNEGOTIATION, models.StageWON, models.StageLOST},
	models.StageWON:          {models.StageNEW, models.StageFIRSTCONTACT, models.StagePROPOSAL, models.StageNEGOTIATION, models.StageWON, models.StageLOST},
	models.StageLOST:         {models.StageNEW, models.StageFIRSTCONTACT, models.StagePROPOSAL, models.StageNEGOTIATION, models.StageWON, models.StageLOST},
}

// CanTransition reports whether the policy allows moving from one stage to
// another.
func CanTransition(from, to models.LeadStage) bool {
	targets, ok := stageTransitions[from]
	if !ok {
		return false
	}
	for _, t := range targets {
		if t == to {
			return true
		}
	}
	return false
}

// GroupByStage buckets leads into kanban columns, ordered by kanbanOrder
// within each column. Leads without a stage land in the "new" column.
func GroupByStage(leads []models.Lead) map[models.LeadStage][]models.Lead {
	board := make(map[models.LeadStage][]models.Lead, len(PipelineStages))
	for _, stage := range PipelineStages {
		board[stage] = []models.Lead{}
	}

	for _, lead := range leads {
		stage := lead.EffectiveStage()
		board[stage] = append(board[stage], lead)
	}

	for stage := range board {
		column := board[stage]
		// kanbanOrder is advisory, stable sort keeps insertion order on ties
		sort.SliceStable(column, func(i, j int) bool {
			return column[i].KanbanOrder < column[j].KanbanOrder
		})
		board[stage] = column
	}

	return board
}
