// Package whirl is a toolkit of deterministic, seedable pseudorandom
// generators. Every generator implements the minimal Source contract;
// all derived operations (bounded integers, floats, the Gaussian
// transform, shuffling) are package-level functions over Source, so a
// new generator only has to supply its raw state transition.
//
// Generators here are tuned for statistical quality and speed, not for
// unpredictability against an adversary. Nothing in this package is
// safe for concurrent use without external synchronization.
package whirl

import "errors"

var (
	ErrUnsupported = errors.New("whirl: unsupported operation")
	ErrStateIndex  = errors.New("whirl: state index out of range")
	ErrUnknownTag  = errors.New("whirl: tag not registered")
	ErrMalformed   = errors.New("whirl: malformed serialized state")
)

// Caps declares which optional Source operations a generator type
// implements. The value is fixed per concrete type; callers check it
// before using an operation that would otherwise fail.
type Caps uint8

const (
	CapReadState Caps = 1 << iota
	CapWriteState
	CapSkip
	CapPrevious
)

func (c Caps) Has(want Caps) bool { return c&want == want }

// Source is the capability contract every concrete generator
// implements. Uint64 advances the state exactly once per call and is a
// pure function of the state words. Operations not covered by Caps
// report ErrUnsupported.
type Source interface {
	// Seed reinitializes every state word from one 64-bit seed. The
	// mixing scheme is generator-specific; no state word is required to
	// equal the seed verbatim.
	Seed(seed uint64)

	// Uint64 returns the next raw 64-bit output, advancing the state
	// exactly once.
	Uint64() uint64

	// StateCount reports the number of addressable 64-bit state words.
	StateCount() int

	// Caps reports the optional operations this type implements.
	Caps() Caps

	// State returns state word index, for index in [0, StateCount()).
	State(index int) (uint64, error)

	// SetState assigns state word index. Generators with a validity
	// invariant may store an adjusted value; the adjustment is
	// observable through State.
	SetState(index int, value uint64) error

	// Skip moves the state by distance steps (negative rewinds) in
	// constant work and returns the output at the new position.
	Skip(distance int64) (uint64, error)

	// Previous steps the state back once and returns the output at
	// that position, undoing one Uint64 call.
	Previous() (uint64, error)

	// Copy returns an independently mutable generator with identical
	// state words.
	Copy() Source

	// AppendState appends this generator's serialized state body:
	// each word as uppercase hex, '~'-separated.
	AppendState(dst []byte) []byte

	// LoadState parses a state body produced by AppendState.
	LoadState(body string) error
}

// UnsupportedError reports a call to an optional operation on a
// generator whose Caps exclude it. errors.Is(err, ErrUnsupported)
// holds for every UnsupportedError.
type UnsupportedError struct {
	Op string
}

func (e *UnsupportedError) Error() string {
	return "whirl: " + e.Op + ": unsupported operation"
}

func (e *UnsupportedError) Is(target error) bool {
	return target == ErrUnsupported
}

func unsupported(op string) error {
	return &UnsupportedError{Op: op}
}
