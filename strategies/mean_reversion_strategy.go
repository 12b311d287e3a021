package strategies

import (
	"gitlab.com/aoterocom/AOStrategyPreview/models"
)

// MeanReversionStrategy fades closes outside the envelope once RSI confirms the stretch
type MeanReversionStrategy struct {
	Oversold   float64
	Overbought float64
}

func NewMeanReversionStrategy() MeanReversionStrategy {
	return MeanReversionStrategy{
		Oversold:   35,
		Overbought: 65,
	}
}

func (s *MeanReversionStrategy) Type() models.StrategyType {
	return models.StrategyTypeMeanReversion
}

func (s *MeanReversionStrategy) MaxSignals() int {
	return 6
}

func (s *MeanReversionStrategy) ShouldEnter(ctx *models.SignalContext, index int) bool {
	return ctx.Close(index) < ctx.Bars[index].LowerBand && ctx.RSI[index] < s.Oversold
}

func (s *MeanReversionStrategy) ShouldExit(ctx *models.SignalContext, index int) bool {
	return ctx.Close(index) > ctx.Bars[index].UpperBand && ctx.RSI[index] > s.Overbought
}

func (s *MeanReversionStrategy) EntryReason() string {
	return "Price below lower band + RSI oversold"
}

func (s *MeanReversionStrategy) ExitReason() string {
	return "Price above upper band + RSI overbought"
}
