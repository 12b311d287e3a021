package strategies

import (
	"gitlab.com/aoterocom/AOStrategyPreview/models"
)

// MomentumStrategy follows EMA 20 / EMA 50 golden and death crosses
type MomentumStrategy struct{}

func NewMomentumStrategy() MomentumStrategy {
	return MomentumStrategy{}
}

func (s *MomentumStrategy) Type() models.StrategyType {
	return models.StrategyTypeMomentum
}

func (s *MomentumStrategy) MaxSignals() int {
	return 4
}

func (s *MomentumStrategy) ShouldEnter(ctx *models.SignalContext, index int) bool {
	return index > 0 &&
		ctx.EMAFast[index-1] <= ctx.EMASlow[index-1] &&
		ctx.EMAFast[index] > ctx.EMASlow[index]
}

func (s *MomentumStrategy) ShouldExit(ctx *models.SignalContext, index int) bool {
	return index > 0 &&
		ctx.EMAFast[index-1] >= ctx.EMASlow[index-1] &&
		ctx.EMAFast[index] < ctx.EMASlow[index]
}

func (s *MomentumStrategy) EntryReason() string {
	return "EMA 20 crosses above EMA 50"
}

func (s *MomentumStrategy) ExitReason() string {
	return "EMA 20 crosses below EMA 50"
}
