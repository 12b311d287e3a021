package strategies

import (
	"fmt"

	"github.com/sdcoffey/techan"
	"gitlab.com/aoterocom/AOStrategyPreview/models"
)

// BreakoutStrategy trades closes escaping the trailing high/low channel on heavy volume
type BreakoutStrategy struct {
	Window          int
	VolumeThreshold float64
}

func NewBreakoutStrategy() BreakoutStrategy {
	return BreakoutStrategy{
		Window:          12,
		VolumeThreshold: 1500,
	}
}

func (s *BreakoutStrategy) Type() models.StrategyType {
	return models.StrategyTypeBreakout
}

func (s *BreakoutStrategy) MaxSignals() int {
	return 5
}

func (s *BreakoutStrategy) ShouldEnter(ctx *models.SignalContext, index int) bool {
	if index < s.Window || ctx.Volume(index) <= s.VolumeThreshold {
		return false
	}
	channelHigh := techan.NewMaximumValueIndicator(techan.NewHighPriceIndicator(ctx.TimeSeries), s.Window)
	return ctx.Close(index) > channelHigh.Calculate(index-1).Float()
}

func (s *BreakoutStrategy) ShouldExit(ctx *models.SignalContext, index int) bool {
	if index < s.Window || ctx.Volume(index) <= s.VolumeThreshold {
		return false
	}
	channelLow := techan.NewMinimumValueIndicator(techan.NewLowPriceIndicator(ctx.TimeSeries), s.Window)
	return ctx.Close(index) < channelLow.Calculate(index-1).Float()
}

func (s *BreakoutStrategy) EntryReason() string {
	return fmt.Sprintf("Breakout above %d-bar high on volume", s.Window)
}

func (s *BreakoutStrategy) ExitReason() string {
	return fmt.Sprintf("Breakdown below %d-bar low on volume", s.Window)
}
