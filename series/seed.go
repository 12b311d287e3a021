package series

import "unicode/utf16"

// Seed derives the series seed of a strategy from its display name as the sum of its UTF-16 code units.
// Same name, same series.
func Seed(name string) int64 {
	var seed int64
	for _, unit := range utf16.Encode([]rune(name)) {
		seed += int64(unit)
	}
	return seed
}
