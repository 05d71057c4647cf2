package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leadflowbr/leadflow_end/models"
)

func fullLead() models.Lead {
	return models.Lead{
		CompanyName: "Acme",
		ContactName: "Jane Roe",
		Email:       "jane@acme.com",
		Phone:       "+55 11 91234-5678",
		Website:     "https://acme.com",
		Industry:    "Manufacturing",
		Location:    "São Paulo",
		DealValue:   1500,
		Tags:        []string{"priority"},
	}
}

func TestScoreLeadBounds(t *testing.T) {
	lead := fullLead()
	assert.Equal(t, 100, ScoreLead(&lead))

	empty := models.Lead{}
	assert.Equal(t, 0, ScoreLead(&empty))
}

func TestScoreLeadIsPure(t *testing.T) {
	lead := fullLead()
	before := lead

	first := ScoreLead(&lead)
	second := ScoreLead(&lead)

	assert.Equal(t, first, second)
	assert.Equal(t, before, lead, "scoring must not mutate the lead")
}

func TestScoreDependsOnPresenceNotContent(t *testing.T) {
	a := models.Lead{
		CompanyName: "Acme",
		Email:       "a@acme.com",
		Phone:       "123",
		Industry:    "Retail",
		Location:    "Lisboa",
	}
	b := models.Lead{
		CompanyName: "Globex Corporation",
		Email:       "sales@globex.example",
		Phone:       "+1 555 0100 9999",
		Industry:    "Aerospace",
		Location:    "Porto Alegre",
	}

	assert.Equal(t, ScoreLead(&a), ScoreLead(&b))
}

func TestScenarioAcmeScoresCool(t *testing.T) {
	lead := models.Lead{
		CompanyName: "Acme",
		Email:       "a@acme.com",
		Phone:       "123",
		Tags:        []string{},
	}

	score := ScoreLead(&lead)
	assert.Equal(t, 40, score)

	temp := TemperatureFor(score)
	assert.Equal(t, "Cool", temp.Label)
	assert.Equal(t, "Baixa", temp.Priority)
}

func TestTemperatureBands(t *testing.T) {
	cases := []struct {
		score    int
		label    string
		priority string
	}{
		{0, "Cold", ""},
		{39, "Cold", ""},
		{40, "Cool", "Baixa"},
		{59, "Cool", "Baixa"},
		{60, "Warm", "Média"},
		{79, "Warm", "Média"},
		{80, "Hot", "Alta"},
		{100, "Hot", "Alta"},
	}

	for _, tc := range cases {
		temp := TemperatureFor(tc.score)
		assert.Equal(t, tc.label, temp.Label, "score %d", tc.score)
		assert.Equal(t, tc.priority, temp.Priority, "score %d", tc.score)
	}
}

func TestTemperatureMonotonic(t *testing.T) {
	rank := map[string]int{"Cold": 0, "Cool": 1, "Warm": 2, "Hot": 3}

	prev := -1
	for score := 0; score <= 100; score++ {
		r := rank[TemperatureFor(score).Label]
		assert.GreaterOrEqual(t, r, prev, "label rank dropped at score %d", score)
		prev = r
	}
}
