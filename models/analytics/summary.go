package analytics

// Summary aggregates the simulated trades of a preview
type Summary struct {
	TotalTrades           int     `json:"totalTrades"`
	WinCount              int     `json:"winCount"`
	WinRate               float64 `json:"winRate"`
	TotalPnL              float64 `json:"totalPnl"`
	MeanPnLPct            float64 `json:"meanPnlPct"`
	StdDevPnLPct          float64 `json:"stdDevPnlPct"`
	PositiveNegativeRatio float64 `json:"positiveNegativeRatio"`
}
