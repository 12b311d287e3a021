package indicators

// Envelope places upper and lower bands at a per bar spread around mid.
// The spread comes from the series generator rather than a rolling standard deviation, so this is an
// approximation of Bollinger bands and not the real thing.
func Envelope(mid []float64, spreads []float64) (upper []float64, lower []float64) {
	upper = make([]float64, len(mid))
	lower = make([]float64, len(mid))
	for i := range mid {
		spread := 0.0
		if i < len(spreads) {
			spread = spreads[i]
		}
		upper[i] = mid[i] + spread
		lower[i] = mid[i] - spread
	}
	return upper, lower
}
