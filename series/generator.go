package series

import (
	"math"
	"strconv"
	"time"

	"gitlab.com/aoterocom/AOStrategyPreview/models"
	"gitlab.com/aoterocom/AOStrategyPreview/strategies/indicators"
)

const (
	StartPrice  = 100.0
	LineFloor   = 50.0
	CandleFloor = 40.0

	volatility     = 4.0
	driftAmplitude = 1.0
	driftFrequency = 0.2
	wickAmplitude  = 2.0

	baseVolume     = 1000.0
	volumeNoise    = 500.0
	volumeSpike    = 800.0
	spikeThreshold = 1.5
	minSpread      = 4.0
	maxSpread      = 7.0

	MinLength = 1
)

type Options struct {
	Shape models.Shape
	Start time.Time
}

func (o Options) floor() float64 {
	if o.Shape == models.ShapeCandle {
		return CandleFloor
	}
	return LineFloor
}

// Generate builds length bars from seed. The same length, seed and options always produce the same bars.
// A non positive length is clamped to a single bar.
func Generate(length int, seed int64, opts Options) []models.Bar {
	if length < MinLength {
		length = MinLength
	}
	if opts.Start.IsZero() {
		opts.Start = DefaultStart
	}

	random := NewRandom(seed)
	floor := opts.floor()
	bars := make([]models.Bar, length)
	spreads := make([]float64, length)

	var days []time.Time
	if opts.Shape == models.ShapeCandle {
		days = TradingDays(opts.Start, length)
	}

	price := StartPrice
	for i := 0; i < length; i++ {
		delta := random.Noise(volatility) + math.Sin(float64(i)*driftFrequency)*driftAmplitude
		open := price
		price = math.Max(floor, price+delta)

		bar := models.Bar{Index: i, Close: price}
		if opts.Shape == models.ShapeCandle {
			bar.Label = days[i].Format(DateLayout)
			bar.Open = open
			bar.High = math.Max(open, price) + random.Float()*wickAmplitude
			bar.Low = math.Max(floor, math.Min(open, price)-random.Float()*wickAmplitude)
		} else {
			bar.Label = strconv.Itoa(i)
			bar.Open = price
			bar.High = price
			bar.Low = price
			// keep the draw order aligned with the candle shape
			random.Float()
			random.Float()
		}

		bar.Volume = baseVolume + random.Float()*volumeNoise
		if math.Abs(delta) > spikeThreshold {
			bar.Volume += volumeSpike
		}
		spreads[i] = random.Between(minSpread, maxSpread)
		bars[i] = bar
	}

	indicators.Attach(bars, spreads)
	return bars
}
