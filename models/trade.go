package models

// Trade is a simulated long round trip made of a buy signal and the next available sell signal
type Trade struct {
	EntryIndex int     `json:"entryIndex"`
	ExitIndex  int     `json:"exitIndex"`
	EntryPrice float64 `json:"entryPrice"`
	ExitPrice  float64 `json:"exitPrice"`
	PnL        float64 `json:"pnl"`
	PnLPct     float64 `json:"pnlPct"`
}

// NewTrade returns the round trip opened at entry and closed at exit
func NewTrade(entry Signal, exit Signal) Trade {
	pnl := exit.Price - entry.Price
	pnlPct := 0.0
	if entry.Price != 0 {
		pnlPct = pnl / entry.Price * 100
	}
	return Trade{
		EntryIndex: entry.Index,
		ExitIndex:  exit.Index,
		EntryPrice: entry.Price,
		ExitPrice:  exit.Price,
		PnL:        pnl,
		PnLPct:     pnlPct,
	}
}

// IsWin returns true if the trade closed above its entry price
func (t Trade) IsWin() bool {
	return t.PnL > 0
}
