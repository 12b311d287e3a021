package models

import "github.com/sdcoffey/techan"

// SignalContext is the read only view a rule set evaluates bar by bar
type SignalContext struct {
	Bars       []Bar
	EMAFast    []float64
	EMASlow    []float64
	RSI        []float64
	TimeSeries *techan.TimeSeries
}

func (c *SignalContext) Len() int {
	return len(c.Bars)
}

func (c *SignalContext) Close(index int) float64 {
	return c.Bars[index].Close
}

func (c *SignalContext) Volume(index int) float64 {
	return c.Bars[index].Volume
}

// RSIRising returns true if RSI did not fall on index
func (c *SignalContext) RSIRising(index int) bool {
	return index > 0 && c.RSI[index] >= c.RSI[index-1]
}

// RSIFalling returns true if RSI did not rise on index
func (c *SignalContext) RSIFalling(index int) bool {
	return index > 0 && c.RSI[index] <= c.RSI[index-1]
}
