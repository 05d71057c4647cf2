package service

import (
	"time"

	"github.com/leadflowbr/leadflow_end/config"
	"github.com/leadflowbr/leadflow_end/models"
)

// IsTrialActive reports whether the profile is inside its trial window.
func IsTrialActive(profile *models.Profile, limits config.PlanLimits, now time.Time) bool {
	if profile.SubscriptionType != models.SubscriptionTRIAL {
		return false
	}
	if profile.TrialStartDate.IsZero() {
		return false
	}
	return now.Before(profile.TrialStartDate.AddDate(0, 0, limits.TrialDays))
}

// monthlyCount returns the counter value after the lazy calendar-month reset:
// a reset stamp from a prior month or year zeroes the counter at read time.
func monthlyCount(profile *models.Profile, now time.Time) int {
	reset := profile.LastExtractionReset
	if reset.IsZero() {
		return 0
	}
	if reset.Year() != now.Year() || reset.Month() != now.Month() {
		return 0
	}
	return profile.ExtractedLeadsCount
}

// capFor looks up the per-flow cap for free accounts.
func capFor(limits config.PlanLimits, source models.ImportSource) int {
	if source == models.ImportSourceCRAWLER {
		return limits.FreeCrawlerCap
	}
	return limits.FreeSearchCap
}

// RemainingQuota returns how many leads the profile may still add this month.
// Unlimited plans report -1.
func RemainingQuota(profile *models.Profile, limits config.PlanLimits, source models.ImportSource, now time.Time) int {
	switch profile.SubscriptionType {
	case models.SubscriptionADMIN, models.SubscriptionPREMIUM:
		return -1
	}

	if IsTrialActive(profile, limits, now) {
		return -1
	}

	remaining := capFor(limits, source) - monthlyCount(profile, now)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// CanAddLead reports whether the profile may add at least one more lead.
func CanAddLead(profile *models.Profile, limits config.PlanLimits, source models.ImportSource, now time.Time) bool {
	remaining := RemainingQuota(profile, limits, source, now)
	return remaining == -1 || remaining > 0
}

// TruncateToQuota trims a candidate batch to the remaining quota. A batch
// larger than the remainder persists only the first leads that still fit; it
// never fails outright unless the quota is already exhausted.
func TruncateToQuota[T any](candidates []T, remaining int) []T {
	if remaining == -1 || remaining >= len(candidates) {
		return candidates
	}
	return candidates[:remaining]
}
