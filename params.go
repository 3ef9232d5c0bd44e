package mino

// TopOutFlag selects which top-out conditions end the game at Lock time.
type TopOutFlag uint8

const (
	TopOutLockOut TopOutFlag = 1 << iota
	TopOutPartialLockOut
	TopOutGarbageOut
)

// Has reports whether flag is set in f.
func (f TopOutFlag) Has(flag TopOutFlag) bool { return f&flag != 0 }

// GameParams is the fixed tuning for one game: gravity, lock/line-clear
// timing, DAS/ARR, and which top-out conditions apply. It never changes
// once a Game is constructed.
type GameParams struct {
	// Gravity and SoftDropGravity are in cells/frame.
	Gravity         float64
	SoftDropGravity float64
	// LockDelay is the number of grounded frames tolerated before a forced
	// lock, in frames.
	LockDelay uint32
	// LockDelayCancel, when set, forces an immediate lock on a fresh
	// SOFT_DROP press while grounded, instead of waiting out LockDelay.
	LockDelayCancel bool
	// DAS and ARR parameterize the horizontal-movement debouncer:
	// first-delay and repeat, respectively.
	DAS uint32
	ARR uint32
	// ARE is the spawn delay after a lock, in frames.
	ARE uint32
	// LineClearDelay is how long the engine dwells in LineClear, in frames.
	LineClearDelay uint32
	// TopOutCondition selects which top-out checks Lock performs.
	TopOutCondition TopOutFlag
	// Rules supplies the spawn-position policy. Defaults to WorldRules.
	Rules Rules
}

// DefaultGameParams mirrors the World-rule Guideline defaults: a 10x40
// playfield (not configured here, see NewPlayfield) with gravity=1/60,
// lock_delay=60, das=11, arr=2, are=40, line_clear_delay=40.
func DefaultGameParams() GameParams {
	return GameParams{
		Gravity:          1.0 / 60.0,
		SoftDropGravity:  1.0,
		LockDelay:        60,
		LockDelayCancel:  true,
		DAS:              11,
		ARR:              2,
		ARE:              40,
		LineClearDelay:   40,
		TopOutCondition:  TopOutLockOut | TopOutPartialLockOut | TopOutGarbageOut,
		Rules:            WorldRules{},
	}
}
