package bdmv

// PTS is the internal presentation-time unit: one second is 20,000,000
// units (a 90 kHz clock tick scaled by 20000/90). Divide by 10000 for
// milliseconds.
type PTS uint64

const (
	// PTSPerSecond is the number of PTS units in one second.
	PTSPerSecond PTS = 20000000

	// PTSPerMillisecond is the number of PTS units in one millisecond.
	PTSPerMillisecond PTS = 10000
)

// ptsFromTicks converts a 90 kHz clock value to PTS. The conversion goes
// through float64 on purpose: consumers of the original decoder depend on
// its rounding, so the multiply-then-truncate order must not change.
func ptsFromTicks(ticks uint32) PTS {
	return PTS(20000.0 * float64(ticks) / 90.0)
}

// Milliseconds returns the duration in whole milliseconds.
func (p PTS) Milliseconds() uint64 {
	return uint64(p / PTSPerMillisecond)
}
