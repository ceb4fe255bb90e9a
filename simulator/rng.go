package simulator

const (
	lcgMultiplier = 1103515245
	lcgIncrement  = 12345
	lcgModulus    = 1 << 31
)

// SeededRandom is a linear congruential generator:
//
//	state(n+1) = (state(n)*1103515245 + 12345) mod 2^31
//
// Each draw returns state/2^31 in [0,1). The arithmetic is exact integer math,
// so a seed always yields the same sequence.
type SeededRandom struct {
	state uint64
}

func NewSeededRandom(seed uint64) *SeededRandom {
	return &SeededRandom{state: seed}
}

// Next advances the generator and returns the new draw.
func (r *SeededRandom) Next() float64 {
	// 2^31 divides 2^64, so wrapping uint64 arithmetic keeps the low 31 bits exact.
	r.state = (r.state*lcgMultiplier + lcgIncrement) & (lcgModulus - 1)
	return float64(r.state) / lcgModulus
}

// State exposes the raw generator state.
func (r *SeededRandom) State() uint64 {
	return r.state
}
