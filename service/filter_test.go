package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadflowbr/leadflow_end/models"
)

func sampleLeads() []models.Lead {
	return []models.Lead{
		{CompanyName: "Acme", ContactName: "Jane", Email: "jane@acme.com", Industry: "Retail", Location: "são paulo", Status: models.LeadStatusNEW, Tags: []string{"vip", "b2b"}},
		{CompanyName: "Globex", ContactName: "John", Email: "john@globex.io", Industry: "Tech", Location: "rio de janeiro", Status: models.LeadStatusQUALIFIED, Tags: []string{"b2b"}},
		{CompanyName: "Initech", ContactName: "", Email: "", Industry: "Tech", Location: "", Status: models.LeadStatusOPEN, Tags: nil},
	}
}

func TestFilterEmptyIsIdentity(t *testing.T) {
	leads := sampleLeads()
	out := FilterLeads(leads, "", FieldFilters{})

	require.Len(t, out, len(leads))
	for i := range leads {
		assert.Equal(t, leads[i].CompanyName, out[i].CompanyName, "order must be preserved")
	}
}

func TestFreeTextSearchIsCaseInsensitiveOR(t *testing.T) {
	leads := sampleLeads()

	out := FilterLeads(leads, "ACME", FieldFilters{})
	require.Len(t, out, 1)
	assert.Equal(t, "Acme", out[0].CompanyName)

	// matches contact name on one lead, company name on another
	out = FilterLeads(leads, "j", FieldFilters{})
	assert.Len(t, out, 2)

	out = FilterLeads(leads, "globex.io", FieldFilters{})
	require.Len(t, out, 1)
	assert.Equal(t, "Globex", out[0].CompanyName)
}

func TestFieldFiltersAreANDed(t *testing.T) {
	leads := sampleLeads()

	out := FilterLeads(leads, "", FieldFilters{Industry: "tech", Status: "qualified"})
	require.Len(t, out, 1)
	assert.Equal(t, "Globex", out[0].CompanyName)

	// status is exact, not substring
	out = FilterLeads(leads, "", FieldFilters{Status: "qual"})
	assert.Empty(t, out)
}

func TestTagsFilterRequiresAll(t *testing.T) {
	leads := sampleLeads()

	out := FilterLeads(leads, "", FieldFilters{Tags: []string{"b2b"}})
	assert.Len(t, out, 2)

	out = FilterLeads(leads, "", FieldFilters{Tags: []string{"b2b", "vip"}})
	require.Len(t, out, 1)
	assert.Equal(t, "Acme", out[0].CompanyName)
}

func TestSortTriStateCycleRestoresOrder(t *testing.T) {
	leads := sampleLeads()

	asc := SortLeads(leads, "companyName", SortAsc)
	require.Len(t, asc, 3)
	assert.Equal(t, "Acme", asc[0].CompanyName)
	assert.Equal(t, "Globex", asc[1].CompanyName)
	assert.Equal(t, "Initech", asc[2].CompanyName)

	desc := SortLeads(leads, "companyName", SortDesc)
	assert.Equal(t, "Initech", desc[0].CompanyName)

	// third click: no sort, original relative order
	none := SortLeads(leads, "companyName", SortNone)
	for i := range leads {
		assert.Equal(t, leads[i].CompanyName, none[i].CompanyName)
	}
}

func TestSortNullsLastBothDirections(t *testing.T) {
	leads := sampleLeads() // Initech has empty email

	asc := SortLeads(leads, "email", SortAsc)
	assert.Equal(t, "Initech", asc[len(asc)-1].CompanyName)

	desc := SortLeads(leads, "email", SortDesc)
	assert.Equal(t, "Initech", desc[len(desc)-1].CompanyName)
}

func TestSortLocationUsesTitleCasedCopy(t *testing.T) {
	leads := []models.Lead{
		{CompanyName: "B", Location: "rio de janeiro"},
		{CompanyName: "A", Location: "SÃO PAULO"},
	}

	out := SortLeads(leads, "location", SortAsc)
	require.Len(t, out, 2)
	assert.Equal(t, "B", out[0].CompanyName, "Rio De Janeiro sorts before São Paulo")

	// stored values untouched
	assert.Equal(t, "rio de janeiro", out[0].Location)
	assert.Equal(t, "SÃO PAULO", out[1].Location)
}

func TestSortDoesNotMutateInput(t *testing.T) {
	leads := sampleLeads()
	original := make([]models.Lead, len(leads))
	copy(original, leads)

	_ = SortLeads(leads, "companyName", SortDesc)

	for i := range original {
		assert.Equal(t, original[i].CompanyName, leads[i].CompanyName)
	}
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "São Paulo", TitleCase("são paulo"))
	assert.Equal(t, "Rio De Janeiro", TitleCase("RIO DE JANEIRO"))
	assert.Equal(t, "", TitleCase(""))
}
