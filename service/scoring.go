package service

import (
	"github.com/leadflowbr/leadflow_end/models"
)

// Temperature display label derived from the score, in both vocabularies.
type Temperature struct {
	Label    string `json:"label"`
	Priority string `json:"priority"`
}

// ScoreLead computes the 0-100 completeness score.
// Additive over field presence only; the content of a field never matters.
func ScoreLead(lead *models.Lead) int {
	score := 0

	if lead.CompanyName != "" {
		score += 10
	}
	if lead.ContactName != "" {
		score += 10
	}
	if lead.Email != "" {
		score += 15
	}
	if lead.Phone != "" {
		score += 15
	}
	if lead.Website != "" {
		score += 10
	}
	if lead.Industry != "" {
		score += 10
	}
	if lead.Location != "" {
		score += 10
	}
	if lead.DealValue > 0 {
		score += 10
	}
	if len(lead.Tags) > 0 {
		score += 10
	}

	return score
}

// TemperatureFor maps a score to its band. The single source for both the
// Hot/Warm/Cool/Cold and Alta/Media/Baixa vocabularies; boundaries 40, 60 and
// 80 belong to the higher band.
func TemperatureFor(score int) Temperature {
	switch {
	case score >= 80:
		return Temperature{Label: "Hot", Priority: "Alta"}
	case score >= 60:
		return Temperature{Label: "Warm", Priority: "Média"}
	case score >= 40:
		return Temperature{Label: "Cool", Priority: "Baixa"}
	default:
		return Temperature{Label: "Cold", Priority: ""}
	}
}

// ScoredLead a lead with its derived score and labels, for list/kanban/score views.
type ScoredLead struct {
	models.Lead
	Score       int    `json:"score"`
	Temperature string `json:"temperature"`
	Priority    string `json:"priority,omitempty"`
}

// WithScore decorates a lead with its score and temperature labels.
func WithScore(lead models.Lead) ScoredLead {
	score := ScoreLead(&lead)
	temp := TemperatureFor(score)
	return ScoredLead{
		Lead:        lead,
		Score:       score,
		Temperature: temp.Label,
		Priority:    temp.Priority,
	}
}
