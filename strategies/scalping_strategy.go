package strategies

import (
	"gitlab.com/aoterocom/AOStrategyPreview/models"
)

// ScalpingStrategy takes quick RSI extremes when volume backs them
type ScalpingStrategy struct {
	Oversold        float64
	Overbought      float64
	VolumeThreshold float64
}

func NewScalpingStrategy() ScalpingStrategy {
	return ScalpingStrategy{
		Oversold:        30,
		Overbought:      70,
		VolumeThreshold: 1300,
	}
}

func (s *ScalpingStrategy) Type() models.StrategyType {
	return models.StrategyTypeScalping
}

func (s *ScalpingStrategy) MaxSignals() int {
	return 8
}

func (s *ScalpingStrategy) ShouldEnter(ctx *models.SignalContext, index int) bool {
	return ctx.RSI[index] < s.Oversold && ctx.Volume(index) > s.VolumeThreshold
}

func (s *ScalpingStrategy) ShouldExit(ctx *models.SignalContext, index int) bool {
	return ctx.RSI[index] > s.Overbought && ctx.Volume(index) > s.VolumeThreshold
}

func (s *ScalpingStrategy) EntryReason() string {
	return "RSI oversold + volume spike"
}

func (s *ScalpingStrategy) ExitReason() string {
	return "RSI overbought + volume spike"
}
