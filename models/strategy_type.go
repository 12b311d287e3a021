package models

import "strings"

// StrategyType define the rule set used to annotate a series
type StrategyType string

const (
	StrategyTypeMomentum      StrategyType = "momentum"
	StrategyTypeMeanReversion StrategyType = "mean-reversion"
	StrategyTypeBreakout      StrategyType = "breakout"
	StrategyTypeScalping      StrategyType = "scalping"
	StrategyTypeSwing         StrategyType = "swing"
)

var StrategyTypes = []StrategyType{
	StrategyTypeMomentum,
	StrategyTypeMeanReversion,
	StrategyTypeBreakout,
	StrategyTypeScalping,
	StrategyTypeSwing,
}

// ParseStrategyType accepts the spellings found on strategy rows ("Mean Reversion", "mean_reversion")
// and falls back to swing for anything unknown.
func ParseStrategyType(s string) StrategyType {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.NewReplacer("_", "-", " ", "-").Replace(normalized)
	for _, strategyType := range StrategyTypes {
		if string(strategyType) == normalized {
			return strategyType
		}
	}
	if normalized == "meanreversion" {
		return StrategyTypeMeanReversion
	}
	return StrategyTypeSwing
}

func (s StrategyType) String() string {
	return string(s)
}
