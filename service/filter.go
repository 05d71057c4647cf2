package service

import (
	"sort"
	"strings"

	"github.com/leadflowbr/leadflow_end/models"
)

// FieldFilters per-field lead filters, ANDed together.
type FieldFilters struct {
	Status   string
	Industry string
	Location string
	Phone    string
	Email    string
	Tags     []string
}

// SortDirection tri-state sort direction
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
	SortNone SortDirection = ""
)

// FilterLeads applies the free-text search and the field filters.
// The search term matches case-insensitively against company name, contact
// name and email (OR); field filters are ANDed. Input order is preserved and
// the input slice is never mutated.
func FilterLeads(leads []models.Lead, searchTerm string, filters FieldFilters) []models.Lead {
	out := make([]models.Lead, 0, len(leads))

	term := strings.ToLower(strings.TrimSpace(searchTerm))

	for _, lead := range leads {
		if term != "" && !matchesSearchTerm(&lead, term) {
			continue
		}
		if !matchesFilters(&lead, filters) {
			continue
		}
		out = append(out, lead)
	}

	return out
}

func matchesSearchTerm(lead *models.Lead, term string) bool {
	return strings.Contains(strings.ToLower(lead.CompanyName), term) ||
		strings.Contains(strings.ToLower(lead.ContactName), term) ||
		strings.Contains(strings.ToLower(lead.Email), term)
}

func matchesFilters(lead *models.Lead, filters FieldFilters) bool {
	// status is an enum: exact equality
	if filters.Status != "" && string(lead.Status) != filters.Status {
		return false
	}
	if !containsFold(lead.Industry, filters.Industry) {
		return false
	}
	if !containsFold(lead.Location, filters.Location) {
		return false
	}
	if !containsFold(lead.Phone, filters.Phone) {
		return false
	}
	if !containsFold(lead.Email, filters.Email) {
		return false
	}

	// every filter tag must be present, not just any
	for _, want := range filters.Tags {
		if !hasTag(lead.Tags, want) {
			return false
		}
	}

	return true
}

// containsFold case-insensitive substring match; an empty filter always matches.
func containsFold(value, filter string) bool {
	if filter == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(filter))
}

func hasTag(tags []string, want string) bool {
	for _, t := range tags {
		if t == want {
			return true
		}
	}
	return false
}

// SortLeads sorts by a single key. Direction "" returns the input order
// untouched (the third click of the tri-state cycle). Null/empty values sort
// last regardless of direction; the sort is stable; the input slice is not
// mutated.
func SortLeads(leads []models.Lead, key string, direction SortDirection) []models.Lead {
	out := make([]models.Lead, len(leads))
	copy(out, leads)

	if direction == SortNone || key == "" {
		return out
	}

	asc := direction == SortAsc

	sort.SliceStable(out, func(i, j int) bool {
		return lessLeads(&out[i], &out[j], key, asc)
	})

	return out
}

func lessLeads(a, b *models.Lead, key string, asc bool) bool {
	aNull, bNull := isNullKey(a, key), isNullKey(b, key)
	if aNull || bNull {
		// nulls always last, whatever the direction
		return !aNull && bNull
	}

	switch key {
	case "dealValue":
		av, bv := a.DealValue, b.DealValue
		if av == bv {
			return false
		}
		if asc {
			return av < bv
		}
		return av > bv
	case "createdAt":
		if a.CreatedAt.Equal(b.CreatedAt) {
			return false
		}
		if asc {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.CreatedAt.After(b.CreatedAt)
	case "score":
		av, bv := ScoreLead(a), ScoreLead(b)
		if av == bv {
			return false
		}
		if asc {
			return av < bv
		}
		return av > bv
	default:
		av, bv := stringKey(a, key), stringKey(b, key)
		if av == bv {
			return false
		}
		if asc {
			return av < bv
		}
		return av > bv
	}
}

func isNullKey(l *models.Lead, key string) bool {
	switch key {
	case "dealValue":
		return false
	case "createdAt":
		return l.CreatedAt.IsZero()
	case "score":
		return false
	default:
		return stringKey(l, key) == ""
	}
}

// stringKey extracts the comparable string for a key. Location is compared on
// a title-cased copy without touching the stored value.
func stringKey(l *models.Lead, key string) string {
	switch key {
	case "companyName":
		return l.CompanyName
	case "contactName":
		return l.ContactName
	case "industry":
		return l.Industry
	case "location":
		return TitleCase(l.Location)
	case "email":
		return l.Email
	case "phone":
		return l.Phone
	case "website":
		return l.Website
	case "status":
		return string(l.Status)
	case "stage":
		return string(l.EffectiveStage())
	default:
		return ""
	}
}

// TitleCase capitalizes the first letter of each space-separated word and
// lowercases the rest.
func TitleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		if len(runes) > 0 {
			runes[0] = []rune(strings.ToUpper(string(runes[0])))[0]
		}
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
