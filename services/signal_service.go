package services

import (
	"gitlab.com/aoterocom/AOStrategyPreview/models"
	"gitlab.com/aoterocom/AOStrategyPreview/series"
	"gitlab.com/aoterocom/AOStrategyPreview/strategies"
)

const (
	// WarmUp is the first bar evaluated, enough for EMA 20 to settle
	WarmUp = 20
	// TrailingBars are left unevaluated at the end of the series
	TrailingBars = 2

	FallbackEntryReason = "Entry signal triggered"
	FallbackExitReason  = "Exit signal triggered"
)

// GenerateSignals scans the bars with the rule set of strategyType and returns its signals in bar order.
// A signal is emitted on the bar its condition becomes true, up to the rule set cap per side.
// When the rules do not give at least one buy and one sell, a single buy at a third of the series and a single
// sell at two thirds are returned instead.
func GenerateSignals(bars []models.Bar, emaFast []float64, emaSlow []float64, rsi []float64,
	strategyType models.StrategyType) []models.Signal {

	n := minLength(len(bars), len(emaFast), len(emaSlow), len(rsi))
	if n == 0 {
		return []models.Signal{}
	}
	bars = bars[:n]

	strategy := strategies.StrategyFactory(strategyType)
	ctx := &models.SignalContext{
		Bars:       bars,
		EMAFast:    emaFast[:n],
		EMASlow:    emaSlow[:n],
		RSI:        rsi[:n],
		TimeSeries: series.ToTimeSeries(bars, series.DefaultStart, series.DefaultTimeframe),
	}

	signals := make([]models.Signal, 0)
	buys, sells := 0, 0
	wasEntering, wasExiting := false, false
	if WarmUp > 0 && WarmUp-1 < n {
		wasEntering = strategy.ShouldEnter(ctx, WarmUp-1)
		wasExiting = strategy.ShouldExit(ctx, WarmUp-1)
	}

	for i := WarmUp; i < n-TrailingBars; i++ {
		entering := strategy.ShouldEnter(ctx, i)
		exiting := strategy.ShouldExit(ctx, i)

		if entering && !wasEntering && buys < strategy.MaxSignals() {
			signals = append(signals, newSignal(bars[i], models.SideTypeBuy, strategy.EntryReason()))
			buys++
		}
		if exiting && !wasExiting && sells < strategy.MaxSignals() {
			signals = append(signals, newSignal(bars[i], models.SideTypeSell, strategy.ExitReason()))
			sells++
		}
		wasEntering, wasExiting = entering, exiting
	}

	if len(signals) < 2 || buys == 0 || sells == 0 {
		return FallbackSignals(bars)
	}
	return signals
}

// FallbackSignals is the minimal round trip shown when the rules stay silent
func FallbackSignals(bars []models.Bar) []models.Signal {
	if len(bars) == 0 {
		return []models.Signal{}
	}
	entry := len(bars) / 3
	exit := 2 * len(bars) / 3
	return []models.Signal{
		newSignal(bars[entry], models.SideTypeBuy, FallbackEntryReason),
		newSignal(bars[exit], models.SideTypeSell, FallbackExitReason),
	}
}

func newSignal(bar models.Bar, side models.SideType, reason string) models.Signal {
	return models.Signal{
		Index:  bar.Index,
		Label:  bar.Label,
		Side:   side,
		Price:  bar.Close,
		Reason: reason,
	}
}

func minLength(lengths ...int) int {
	n := lengths[0]
	for _, length := range lengths[1:] {
		if length < n {
			n = length
		}
	}
	return n
}
