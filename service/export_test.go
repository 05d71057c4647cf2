package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadflowbr/leadflow_end/models"
)

func TestLeadsToCSVHeader(t *testing.T) {
	out := LeadsToCSV(nil)
	assert.Equal(t,
		`"Company Name","Industry","Location","Contact Name","Email","Phone","Status","Tags","Notes"`+"\n",
		out)
}

func TestLeadsToCSVQuotingAndTags(t *testing.T) {
	leads := []models.Lead{
		{
			CompanyName: "Acme",
			Industry:    "Retail",
			Status:      models.LeadStatusNEW,
			Tags:        []string{"a", "b"},
		},
	}

	out := LeadsToCSV(leads)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)

	assert.Equal(t, `"Acme","Retail","","","","","new","a;b",""`, lines[1])
}

func TestLeadsToCSVEscapesEmbeddedQuotes(t *testing.T) {
	leads := []models.Lead{
		{CompanyName: `Acme "The Best"`, Status: models.LeadStatusNEW, Notes: "call\nlater"},
	}

	out := LeadsToCSV(leads)
	assert.Contains(t, out, `"Acme ""The Best"""`)
}

func TestLeadsToCSVEmptyFieldsQuoted(t *testing.T) {
	leads := []models.Lead{{CompanyName: "Solo", Status: models.LeadStatusOPEN}}

	out := LeadsToCSV(leads)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	// every empty field still renders as an empty quoted string
	assert.Equal(t, `"Solo","","","","","","open","",""`, lines[1])
}
