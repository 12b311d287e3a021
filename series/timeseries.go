package series

import (
	"fmt"
	"time"

	"github.com/sdcoffey/big"
	"github.com/sdcoffey/techan"
	"github.com/xhit/go-str2duration/v2"
	"gitlab.com/aoterocom/AOStrategyPreview/models"
)

const DefaultTimeframe = 24 * time.Hour

// ParseTimeframe converts a strategy timeframe such as "15m", "4h" or "1d" into a bar period
func ParseTimeframe(timeframe string) (time.Duration, error) {
	if timeframe == "" {
		return DefaultTimeframe, nil
	}
	period, err := str2duration.ParseDuration(timeframe)
	if err != nil {
		return 0, fmt.Errorf("invalid timeframe %q: %w", timeframe, err)
	}
	if period <= 0 {
		return 0, fmt.Errorf("invalid timeframe %q: must be positive", timeframe)
	}
	return period, nil
}

// ToTimeSeries exports bars as techan candles. Dated bars are daily candles on their own date, index labelled
// bars are laid out every period from start.
func ToTimeSeries(bars []models.Bar, start time.Time, period time.Duration) *techan.TimeSeries {
	if start.IsZero() {
		start = DefaultStart
	}
	if period <= 0 {
		period = DefaultTimeframe
	}

	timeSeries := techan.NewTimeSeries()
	for i, bar := range bars {
		candleStart := start.Add(time.Duration(i) * period)
		candlePeriod := period
		if date, err := time.Parse(DateLayout, bar.Label); err == nil {
			candleStart = date
			candlePeriod = DefaultTimeframe
		}

		candle := techan.NewCandle(techan.NewTimePeriod(candleStart, candlePeriod))
		candle.OpenPrice = big.NewDecimal(bar.Open)
		candle.ClosePrice = big.NewDecimal(bar.Close)
		candle.MaxPrice = big.NewDecimal(bar.High)
		candle.MinPrice = big.NewDecimal(bar.Low)
		candle.Volume = big.NewDecimal(bar.Volume)
		timeSeries.AddCandle(candle)
	}
	return timeSeries
}
