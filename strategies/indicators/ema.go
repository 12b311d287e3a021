package indicators

// ExponentialAverage is a running EMA seeded with the first value it receives
type ExponentialAverage struct {
	k      float64
	value  float64
	seeded bool
}

func NewExponentialAverage(period int) *ExponentialAverage {
	if period < 1 {
		period = 1
	}
	return &ExponentialAverage{k: 2.0 / float64(period+1)}
}

func (e *ExponentialAverage) Update(value float64) float64 {
	if !e.seeded {
		e.value = value
		e.seeded = true
		return e.value
	}
	e.value += (value - e.value) * e.k
	return e.value
}

func (e *ExponentialAverage) Value() float64 {
	return e.value
}

// EMA returns one smoothed value per input value, the first one being the first input
func EMA(values []float64, period int) []float64 {
	out := make([]float64, len(values))
	ema := NewExponentialAverage(period)
	for i, value := range values {
		out[i] = ema.Update(value)
	}
	return out
}
