package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/aoterocom/AOStrategyPreview/models"
	"gitlab.com/aoterocom/AOStrategyPreview/models/analytics"
)

func TestPlotData(t *testing.T) {
	bars := []models.Bar{
		{Close: 100, EMA20: 100, EMA50: 100},
		{Close: 102, EMA20: 100.2, EMA50: 100.1},
	}

	data := PlotData(bars)

	require.Len(t, data, 3)
	assert.Equal(t, []float64{100, 102}, data[0])
	assert.Equal(t, []float64{100, 100.2}, data[1])
	assert.Equal(t, []float64{100, 100.1}, data[2])
}

func TestSignalRows(t *testing.T) {
	rows := SignalRows([]models.Signal{
		{Label: "2024-01-03", Side: models.SideTypeBuy, Price: 101.5, Reason: "RSI oversold + volume spike"},
		{Label: "2024-01-09", Side: models.SideTypeSell, Price: 104, Reason: "RSI overbought + volume spike"},
	})

	require.Len(t, rows, 2)
	assert.Equal(t, "[buy ](fg:green) 2024-01-03 @ 101.50  RSI oversold + volume spike", rows[0])
	assert.Contains(t, rows[1], "(fg:red)")
}

func TestSummaryText(t *testing.T) {
	text := SummaryText(analytics.Summary{TotalTrades: 3, WinCount: 2, WinRate: 66.6666, TotalPnL: 10})

	assert.Contains(t, text, "Trades: 3\n")
	assert.Contains(t, text, "Win rate: 66.67%\n")
	assert.Contains(t, text, "Total P&L: 10.00\n")
}

func TestReportHeader(t *testing.T) {
	report := analytics.Report{
		Name:         "Dip Buyer",
		Seed:         42,
		StrategyType: models.StrategyTypeMeanReversion,
		Bars:         []models.Bar{{Close: 101.5}, {Close: 97.25}, {Close: 104}},
		Signals: []models.Signal{
			{Side: models.SideTypeBuy}, {Side: models.SideTypeSell}, {Side: models.SideTypeBuy},
		},
	}

	assert.Equal(t, "Dip Buyer seed 42 (mean-reversion, 3 bars) close 97.25-104.00, 2 buys / 1 sells", ReportHeader(report))
	assert.Equal(t, "empty seed 0 (swing, 0 bars), 0 buys / 0 sells",
		ReportHeader(analytics.Report{Name: "empty", StrategyType: models.StrategyTypeSwing}))
}
