package series

import "time"

const DateLayout = "2006-01-02"

// DefaultStart is the first candle date when none is configured
var DefaultStart = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// TradingDays returns count consecutive weekday dates, the first one being start or the weekday after it
func TradingDays(start time.Time, count int) []time.Time {
	days := make([]time.Time, 0, count)
	day := skipWeekend(start)
	for len(days) < count {
		days = append(days, day)
		day = skipWeekend(day.AddDate(0, 0, 1))
	}
	return days
}

func skipWeekend(day time.Time) time.Time {
	for day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
		day = day.AddDate(0, 0, 1)
	}
	return day
}
