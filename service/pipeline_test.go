package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadflowbr/leadflow_end/models"
)

func TestAnyStageReachableFromAnyStage(t *testing.T) {
	for _, from := range PipelineStages {
		for _, to := range PipelineStages {
			assert.True(t, CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestDirectNewToLostAllowed(t *testing.T) {
	assert.True(t, CanTransition(models.StageNEW, models.StageLOST))
}

func TestUnknownStageRejected(t *testing.T) {
	assert.False(t, CanTransition(models.LeadStage("archived"), models.StageNEW))
}

func TestGroupByStageDefaultsMissingStageToNew(t *testing.T) {
	leads := []models.Lead{
		{CompanyName: "Acme"},                                 // no stage persisted
		{CompanyName: "Globex", Stage: models.StagePROPOSAL},
		{CompanyName: "Initech", Stage: models.StageNEW},
	}

	board := GroupByStage(leads)

	require.Len(t, board[models.StageNEW], 2)
	assert.Equal(t, "Acme", board[models.StageNEW][0].CompanyName)
	require.Len(t, board[models.StagePROPOSAL], 1)
	assert.Empty(t, board[models.StageWON])
}

func TestGroupByStageOrdersByKanbanOrder(t *testing.T) {
	leads := []models.Lead{
		{CompanyName: "second", Stage: models.StageWON, KanbanOrder: 2},
		{CompanyName: "first", Stage: models.StageWON, KanbanOrder: 1},
		{CompanyName: "also-first", Stage: models.StageWON, KanbanOrder: 1},
	}

	board := GroupByStage(leads)
	column := board[models.StageWON]

	require.Len(t, column, 3)
	assert.Equal(t, "first", column[0].CompanyName)
	assert.Equal(t, "also-first", column[1].CompanyName, "ties keep insertion order")
	assert.Equal(t, "second", column[2].CompanyName)
}

func TestEffectiveStage(t *testing.T) {
	lead := models.Lead{}
	assert.Equal(t, models.StageNEW, lead.EffectiveStage())

	lead.Stage = models.StageLOST
	assert.Equal(t, models.StageLOST, lead.EffectiveStage())
}
