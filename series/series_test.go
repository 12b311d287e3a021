package series

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/aoterocom/AOStrategyPreview/models"
)

func TestSeedSumsCharacterCodes(t *testing.T) {
	assert.Equal(t, int64('A'+'B'+'C'), Seed("ABC"))
	assert.Equal(t, int64(0), Seed(""))
	assert.Equal(t, Seed("Golden Cross Bot"), Seed("Golden Cross Bot"))
	// surrogate pairs count twice
	assert.Equal(t, int64(0xD83D+0xDE80), Seed("🚀"))
}

func TestGenerateIsDeterministic(t *testing.T) {
	for _, shape := range []models.Shape{models.ShapeLine, models.ShapeCandle} {
		for _, seed := range []int64{42, 0, -17, 1234567} {
			first := Generate(120, seed, Options{Shape: shape})
			second := Generate(120, seed, Options{Shape: shape})
			assert.Equal(t, first, second, "shape %s seed %d", shape, seed)
		}
	}
}

func TestGenerateDiffersBySeed(t *testing.T) {
	assert.NotEqual(t, Generate(30, 1, Options{}), Generate(30, 2, Options{}))
	assert.NotEqual(t, Generate(30, 5, Options{}), Generate(30, -5, Options{}))
}

func TestGenerateClampsLength(t *testing.T) {
	assert.Len(t, Generate(0, 42, Options{}), 1)
	assert.Len(t, Generate(-10, 42, Options{Shape: models.ShapeCandle}), 1)
	assert.Len(t, Generate(180, 42, Options{}), 180)
}

func TestCandleOHLCInvariant(t *testing.T) {
	for seed := int64(-50); seed < 50; seed++ {
		for _, bar := range Generate(180, seed, Options{Shape: models.ShapeCandle}) {
			assert.LessOrEqual(t, bar.Low, math.Min(bar.Open, bar.Close))
			assert.LessOrEqual(t, math.Max(bar.Open, bar.Close), bar.High)
		}
	}
}

func TestCandleOpenIsPreviousClose(t *testing.T) {
	bars := Generate(60, 7, Options{Shape: models.ShapeCandle})
	assert.Equal(t, StartPrice, bars[0].Open)
	for i := 1; i < len(bars); i++ {
		assert.Equal(t, bars[i-1].Close, bars[i].Open)
	}
}

func TestPriceFloor(t *testing.T) {
	for seed := int64(0); seed < 200; seed++ {
		for _, bar := range Generate(180, seed, Options{Shape: models.ShapeCandle}) {
			assert.GreaterOrEqual(t, bar.Low, CandleFloor)
		}
		for _, bar := range Generate(180, seed, Options{Shape: models.ShapeLine}) {
			assert.GreaterOrEqual(t, bar.Close, LineFloor)
		}
	}
}

func TestLineShape(t *testing.T) {
	bars := Generate(25, 42, Options{})
	for i, bar := range bars {
		assert.Equal(t, i, bar.Index)
		assert.Equal(t, bar.Close, bar.Open)
		assert.Equal(t, bar.Close, bar.High)
		assert.Equal(t, bar.Close, bar.Low)
	}
	assert.Equal(t, "0", bars[0].Label)
	assert.Equal(t, "24", bars[24].Label)
}

func TestShapesShareDriver(t *testing.T) {
	line := Generate(40, 42, Options{Shape: models.ShapeLine})
	candle := Generate(40, 42, Options{Shape: models.ShapeCandle})
	for i := range line {
		assert.Equal(t, line[i].Close, candle[i].Close)
		assert.Equal(t, line[i].Volume, candle[i].Volume)
	}
}

func TestIndicatorsAttached(t *testing.T) {
	bars := Generate(60, 42, Options{})
	assert.Equal(t, bars[0].Close, bars[0].EMA20)
	assert.Equal(t, bars[0].Close, bars[0].EMA50)
	for _, bar := range bars {
		spread := bar.UpperBand - bar.EMA20
		assert.GreaterOrEqual(t, spread, minSpread-1e-9)
		assert.Less(t, spread, maxSpread+1e-9)
		assert.InDelta(t, bar.EMA20-spread, bar.LowerBand, 1e-9)
		assert.GreaterOrEqual(t, bar.Volume, baseVolume)
		assert.GreaterOrEqual(t, bar.RSI, 0.0)
		assert.LessOrEqual(t, bar.RSI, 100.0)
	}
}

func TestTradingDaysSkipWeekends(t *testing.T) {
	// 2024-01-06 is a Saturday
	days := TradingDays(time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC), 6)
	require.Len(t, days, 6)
	assert.Equal(t, "2024-01-08", days[0].Format(DateLayout))
	assert.Equal(t, "2024-01-12", days[4].Format(DateLayout))
	assert.Equal(t, "2024-01-15", days[5].Format(DateLayout))
	for _, day := range days {
		assert.NotEqual(t, time.Saturday, day.Weekday())
		assert.NotEqual(t, time.Sunday, day.Weekday())
	}
}

func TestCandleLabelsAreDates(t *testing.T) {
	bars := Generate(10, 42, Options{Shape: models.ShapeCandle, Start: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)})
	assert.Equal(t, "2024-03-01", bars[0].Label)
	assert.Equal(t, "2024-03-04", bars[1].Label)
}

func TestParseTimeframe(t *testing.T) {
	period, err := ParseTimeframe("4h")
	require.NoError(t, err)
	assert.Equal(t, 4*time.Hour, period)

	period, err = ParseTimeframe("1d")
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, period)

	period, err = ParseTimeframe("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTimeframe, period)

	_, err = ParseTimeframe("daily")
	assert.Error(t, err)
}

func TestToTimeSeries(t *testing.T) {
	bars := Generate(30, 42, Options{Shape: models.ShapeCandle})
	timeSeries := ToTimeSeries(bars, time.Time{}, 24*time.Hour)

	require.Len(t, timeSeries.Candles, len(bars))
	assert.InDelta(t, bars[3].Close, timeSeries.Candles[3].ClosePrice.Float(), 1e-9)
	assert.InDelta(t, bars[3].High, timeSeries.Candles[3].MaxPrice.Float(), 1e-9)
	assert.Equal(t, bars[3].Label, timeSeries.Candles[3].Period.Start.Format(DateLayout))

	line := Generate(10, 42, Options{})
	lineSeries := ToTimeSeries(line, DefaultStart, time.Hour)
	require.Len(t, lineSeries.Candles, len(line))
	assert.Equal(t, DefaultStart.Add(9*time.Hour), lineSeries.Candles[9].Period.Start)
}
