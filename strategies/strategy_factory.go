package strategies

import (
	"gitlab.com/aoterocom/AOStrategyPreview/interfaces"
	"gitlab.com/aoterocom/AOStrategyPreview/models"
)

// StrategyFactory returns the rule set of strategyType. Unknown types get the swing rules.
func StrategyFactory(strategyType models.StrategyType) interfaces.Strategy {

	switch strategyType {
	case models.StrategyTypeMomentum:
		momentumStrategy := NewMomentumStrategy()
		return interfaces.Strategy(&momentumStrategy)
	case models.StrategyTypeMeanReversion:
		meanReversionStrategy := NewMeanReversionStrategy()
		return interfaces.Strategy(&meanReversionStrategy)
	case models.StrategyTypeBreakout:
		breakoutStrategy := NewBreakoutStrategy()
		return interfaces.Strategy(&breakoutStrategy)
	case models.StrategyTypeScalping:
		scalpingStrategy := NewScalpingStrategy()
		return interfaces.Strategy(&scalpingStrategy)
	default:
		swingStrategy := NewSwingStrategy()
		return interfaces.Strategy(&swingStrategy)
	}

}
