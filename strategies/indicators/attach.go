package indicators

import "gitlab.com/aoterocom/AOStrategyPreview/models"

const (
	FastPeriod = 20
	SlowPeriod = 50
	RSIPeriod  = 14
)

// Attach computes EMA 20, EMA 50, RSI 14 and the spread envelope over the bar closes and stores them on the bars
func Attach(bars []models.Bar, spreads []float64) {
	closes := models.Closes(bars)
	emaFast := EMA(closes, FastPeriod)
	emaSlow := EMA(closes, SlowPeriod)
	rsi := RSI(closes, RSIPeriod)
	upper, lower := Envelope(emaFast, spreads)

	for i := range bars {
		bars[i].EMA20 = emaFast[i]
		bars[i].EMA50 = emaSlow[i]
		bars[i].RSI = rsi[i]
		bars[i].UpperBand = upper[i]
		bars[i].LowerBand = lower[i]
	}
}
