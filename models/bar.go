package models

// Bar is one synthetic time step with its indicator values attached.
// Line shaped bars carry the same value on Open, High, Low and Close.
type Bar struct {
	Index     int     `json:"index"`
	Label     string  `json:"label"`
	Open      float64 `json:"open"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Close     float64 `json:"close"`
	EMA20     float64 `json:"ema20"`
	EMA50     float64 `json:"ema50"`
	RSI       float64 `json:"rsi"`
	Volume    float64 `json:"volume"`
	UpperBand float64 `json:"upperBand"`
	LowerBand float64 `json:"lowerBand"`
}

// Shape selects the output layout of a generated series
type Shape string

const (
	ShapeLine   Shape = "line"
	ShapeCandle Shape = "candle"
)

func ParseShape(s string) Shape {
	if Shape(s) == ShapeCandle {
		return ShapeCandle
	}
	return ShapeLine
}

func Closes(bars []Bar) []float64 {
	closes := make([]float64, len(bars))
	for i, bar := range bars {
		closes[i] = bar.Close
	}
	return closes
}
