package strategies

import (
	"gitlab.com/aoterocom/AOStrategyPreview/models"
)

// SwingStrategy buys pullbacks under the slow EMA with RSI turning up and sells extensions over the fast EMA
// with RSI rolling over. It is also the rule set for unknown strategy types.
type SwingStrategy struct {
	EntryRSI float64
	ExitRSI  float64
}

func NewSwingStrategy() SwingStrategy {
	return SwingStrategy{
		EntryRSI: 40,
		ExitRSI:  65,
	}
}

func (s *SwingStrategy) Type() models.StrategyType {
	return models.StrategyTypeSwing
}

func (s *SwingStrategy) MaxSignals() int {
	return 5
}

func (s *SwingStrategy) ShouldEnter(ctx *models.SignalContext, index int) bool {
	return ctx.Close(index) < ctx.EMASlow[index] && ctx.RSI[index] < s.EntryRSI && ctx.RSIRising(index)
}

func (s *SwingStrategy) ShouldExit(ctx *models.SignalContext, index int) bool {
	return ctx.Close(index) > ctx.EMAFast[index] && ctx.RSI[index] > s.ExitRSI && ctx.RSIFalling(index)
}

func (s *SwingStrategy) EntryReason() string {
	return "Pullback under EMA 50 with RSI turning up"
}

func (s *SwingStrategy) ExitReason() string {
	return "Extension over EMA 20 with RSI rolling over"
}
