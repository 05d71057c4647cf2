package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/leadflowbr/leadflow_end/config"
	"github.com/leadflowbr/leadflow_end/models"
)

var testLimits = config.PlanLimits{
	TrialDays:      14,
	FreeSearchCap:  10,
	FreeCrawlerCap: 50,
}

func TestPremiumAndAdminAreUnlimited(t *testing.T) {
	now := time.Now()

	for _, plan := range []models.SubscriptionType{models.SubscriptionPREMIUM, models.SubscriptionADMIN} {
		profile := &models.Profile{SubscriptionType: plan, ExtractedLeadsCount: 9999, LastExtractionReset: now}
		assert.True(t, CanAddLead(profile, testLimits, models.ImportSourceSEARCH, now))
		assert.Equal(t, -1, RemainingQuota(profile, testLimits, models.ImportSourceSEARCH, now))
	}
}

func TestActiveTrialIsUnlimited(t *testing.T) {
	now := time.Now()
	profile := &models.Profile{
		SubscriptionType:    models.SubscriptionTRIAL,
		TrialStartDate:      now.AddDate(0, 0, -13),
		ExtractedLeadsCount: 500,
		LastExtractionReset: now,
	}

	assert.True(t, IsTrialActive(profile, testLimits, now))
	assert.Equal(t, -1, RemainingQuota(profile, testLimits, models.ImportSourceSEARCH, now))
}

func TestExpiredTrialFallsBackToFreeCap(t *testing.T) {
	now := time.Now()
	profile := &models.Profile{
		SubscriptionType:    models.SubscriptionTRIAL,
		TrialStartDate:      now.AddDate(0, 0, -15),
		ExtractedLeadsCount: 10,
		LastExtractionReset: now,
	}

	assert.False(t, IsTrialActive(profile, testLimits, now))
	assert.False(t, CanAddLead(profile, testLimits, models.ImportSourceSEARCH, now))
}

func TestFreePlanBatchTruncation(t *testing.T) {
	now := time.Now()
	profile := &models.Profile{
		SubscriptionType:    models.SubscriptionFREE,
		ExtractedLeadsCount: 8,
		LastExtractionReset: now,
	}

	assert.True(t, CanAddLead(profile, testLimits, models.ImportSourceSEARCH, now))

	remaining := RemainingQuota(profile, testLimits, models.ImportSourceSEARCH, now)
	assert.Equal(t, 2, remaining)

	batch := []models.ImportCandidate{
		{CompanyName: "a"}, {CompanyName: "b"}, {CompanyName: "c"},
		{CompanyName: "d"}, {CompanyName: "e"},
	}
	kept := TruncateToQuota(batch, remaining)
	assert.Len(t, kept, 2, "a batch of 5 with 2 remaining persists exactly 2")
	assert.Equal(t, "a", kept[0].CompanyName)
}

func TestMonthlyCounterLazyReset(t *testing.T) {
	now := time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC)
	profile := &models.Profile{
		SubscriptionType:    models.SubscriptionFREE,
		ExtractedLeadsCount: 10,
		LastExtractionReset: time.Date(2026, time.August, 20, 0, 0, 0, 0, time.UTC),
	}

	// counter from a prior month reads as zero
	assert.Equal(t, 10, RemainingQuota(profile, testLimits, models.ImportSourceSEARCH, now))
	assert.True(t, CanAddLead(profile, testLimits, models.ImportSourceSEARCH, now))
}

func TestCrawlerCapIsSeparate(t *testing.T) {
	now := time.Now()
	profile := &models.Profile{
		SubscriptionType:    models.SubscriptionFREE,
		ExtractedLeadsCount: 10,
		LastExtractionReset: now,
	}

	assert.False(t, CanAddLead(profile, testLimits, models.ImportSourceSEARCH, now))
	assert.Equal(t, 40, RemainingQuota(profile, testLimits, models.ImportSourceCRAWLER, now))
}

func TestTruncateUnlimitedKeepsAll(t *testing.T) {
	batch := []models.ImportCandidate{{CompanyName: "a"}, {CompanyName: "b"}}
	assert.Len(t, TruncateToQuota(batch, -1), 2)
	assert.Empty(t, TruncateToQuota(batch, 0))
}
