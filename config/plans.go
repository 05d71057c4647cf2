package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PlanLimits per-plan quota settings loaded from the plans file.
type PlanLimits struct {
	TrialDays        int `yaml:"trialDays"`
	FreeSearchCap    int `yaml:"freeSearchCap"`
	FreeCrawlerCap   int `yaml:"freeCrawlerCap"`
	UpgradeAmountBRL int `yaml:"upgradeAmountBRL"`
}

// DefaultPlanLimits values used when no plans file is present.
func DefaultPlanLimits() PlanLimits {
	return PlanLimits{
		TrialDays:        14,
		FreeSearchCap:    10,
		FreeCrawlerCap:   50,
		UpgradeAmountBRL: 49,
	}
}

// LoadPlanLimits reads the YAML plans file; a missing file yields the defaults.
func LoadPlanLimits(path string) (PlanLimits, error) {
	limits := DefaultPlanLimits()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return limits, nil
		}
		return limits, fmt.Errorf("read plans file: %w", err)
	}

	if err := yaml.Unmarshal(data, &limits); err != nil {
		return limits, fmt.Errorf("parse plans file: %w", err)
	}

	if limits.TrialDays <= 0 {
		limits.TrialDays = 14
	}
	if limits.FreeSearchCap <= 0 {
		limits.FreeSearchCap = 10
	}
	if limits.FreeCrawlerCap <= 0 {
		limits.FreeCrawlerCap = 50
	}

	return limits, nil
}
