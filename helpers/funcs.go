package helpers

import "math"

// PositiveNegativeRatio returns how many values are positive per non positive value.
// Zero when there are no non positive values.
func PositiveNegativeRatio(list []float64) float64 {
	countPositive := 0
	countNegative := 0
	for _, item := range list {
		if item > 0 {
			countPositive++
		} else {
			countNegative++
		}
	}

	if countNegative == 0 {
		return 0
	}
	return float64(countPositive) / float64(countNegative)
}

// StdDev is the sample standard deviation, zero with fewer than two values
func StdDev(numbers []float64, mean float64) float64 {
	if len(numbers) < 2 {
		return 0
	}
	total := 0.0
	for _, number := range numbers {
		total += math.Pow(number-mean, 2)
	}
	variance := total / float64(len(numbers)-1)
	return math.Sqrt(variance)
}

func Sum(numbers []float64) (total float64) {
	for _, x := range numbers {
		total += x
	}
	return total
}

func Mean(numbers []float64) float64 {
	if len(numbers) == 0 {
		return 0
	}
	return Sum(numbers) / float64(len(numbers))
}

func Max(numbers []float64) float64 {
	max := math.Inf(-1)
	for _, x := range numbers {
		if x > max {
			max = x
		}
	}
	return max
}

func Min(numbers []float64) float64 {
	min := math.Inf(1)
	for _, x := range numbers {
		if x < min {
			min = x
		}
	}
	return min
}
