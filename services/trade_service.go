package services

import (
	"sort"

	"gitlab.com/aoterocom/AOStrategyPreview/helpers"
	"gitlab.com/aoterocom/AOStrategyPreview/models"
	"gitlab.com/aoterocom/AOStrategyPreview/models/analytics"
)

// PairTrades closes every buy, taken in bar order, with the earliest unconsumed sell on a strictly later bar.
// A sell listed after a signal on a later bar is out of order and never closes a trade. Buys without a sell are
// dropped, short trades are not modelled.
func PairTrades(signals []models.Signal) []models.Trade {
	trades := make([]models.Trade, 0)

	entries := make([]models.Signal, 0)
	exits := make([]models.Signal, 0)
	latest := -1
	for _, signal := range signals {
		switch {
		case signal.IsBuy():
			entries = append(entries, signal)
		case signal.IsSell() && signal.Index >= latest:
			exits = append(exits, signal)
		}
		if signal.Index > latest {
			latest = signal.Index
		}
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Index < entries[j].Index })

	consumed := make([]bool, len(exits))
	for _, entry := range entries {
		match := -1
		for j, exit := range exits {
			if consumed[j] || exit.Index <= entry.Index {
				continue
			}
			if match == -1 || exit.Index < exits[match].Index {
				match = j
			}
		}
		if match == -1 {
			continue
		}
		consumed[match] = true
		trades = append(trades, models.NewTrade(entry, exits[match]))
	}
	return trades
}

// Summarize rolls up the simulated trades. Every ratio is zero when there is nothing to divide by.
func Summarize(trades []models.Trade) analytics.Summary {
	summary := analytics.Summary{}
	summary.TotalTrades = len(trades)
	if len(trades) == 0 {
		return summary
	}

	pnlPctList := make([]float64, len(trades))
	for i, trade := range trades {
		summary.TotalPnL += trade.PnL
		if trade.IsWin() {
			summary.WinCount++
		}
		pnlPctList[i] = trade.PnLPct
	}

	summary.WinRate = float64(summary.WinCount) / float64(summary.TotalTrades) * 100
	summary.MeanPnLPct = helpers.Mean(pnlPctList)
	summary.StdDevPnLPct = helpers.StdDev(pnlPctList, summary.MeanPnLPct)
	summary.PositiveNegativeRatio = helpers.PositiveNegativeRatio(pnlPctList)
	return summary
}
