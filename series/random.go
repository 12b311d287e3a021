package series

// Random is the reproducible noise driver shared by every series shape.
// It is a splitmix64 sequence keyed on the seed, so its output is fixed for a given seed on every platform.
type Random struct {
	state uint64
}

// NewRandom keys the driver on seed. Negative seeds are valid and distinct from their absolute value.
func NewRandom(seed int64) *Random {
	return &Random{state: uint64(seed)}
}

func (r *Random) Uint64() uint64 {
	r.state += 0x9e3779b97f4a7c15
	z := r.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// Float returns a value in [0, 1)
func (r *Random) Float() float64 {
	return float64(r.Uint64()>>11) / (1 << 53)
}

// Between returns a value in [lo, hi)
func (r *Random) Between(lo float64, hi float64) float64 {
	return lo + r.Float()*(hi-lo)
}

// Noise returns a value centered on zero in [-amplitude/2, amplitude/2)
func (r *Random) Noise(amplitude float64) float64 {
	return (r.Float() - 0.5) * amplitude
}
