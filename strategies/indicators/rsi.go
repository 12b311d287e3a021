package indicators

const neutralRSI = 50.0

// RSI is Wilder's relative strength index. Values before period changes are available are neutral (50).
// A zero average loss yields RS = 100 instead of an infinite ratio.
func RSI(values []float64, period int) []float64 {
	if period < 1 {
		period = 14
	}
	out := make([]float64, len(values))
	for i := range out {
		out[i] = neutralRSI
	}
	if len(values) <= period {
		return out
	}

	var avgGain, avgLoss float64
	for i := 1; i <= period; i++ {
		gain, loss := split(values[i] - values[i-1])
		avgGain += gain
		avgLoss += loss
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)
	out[period] = rsiFromAverages(avgGain, avgLoss)

	for i := period + 1; i < len(values); i++ {
		gain, loss := split(values[i] - values[i-1])
		avgGain = (avgGain*float64(period-1) + gain) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + loss) / float64(period)
		out[i] = rsiFromAverages(avgGain, avgLoss)
	}
	return out
}

func split(change float64) (gain float64, loss float64) {
	if change > 0 {
		return change, 0
	}
	return 0, -change
}

func rsiFromAverages(avgGain float64, avgLoss float64) float64 {
	rs := 100.0
	if avgLoss != 0 {
		rs = avgGain / avgLoss
	}
	return 100 - 100/(1+rs)
}
