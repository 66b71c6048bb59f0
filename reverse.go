package whirl

import "fmt"

// Wrapper is a Source decorating another Source. Wrappers serialize as
// '#', their marker byte, then the inner generator's serialized form.
type Wrapper interface {
	Source
	Unwrap() Source
	Marker() byte
}

// ReverserMarker identifies Reverser in serialized form.
const ReverserMarker = 'r'

// Reverser emits the wrapped generator's stream in reverse order: each
// draw steps the inner state backwards. Requires an inner source with
// skip support.
type Reverser struct {
	inner Source
}

func NewReverser(inner Source) (*Reverser, error) {
	if !inner.Caps().Has(CapSkip) {
		return nil, fmt.Errorf("whirl: Reverser needs a skip-capable source: %w", ErrUnsupported)
	}
	return &Reverser{inner: inner}, nil
}

func (r *Reverser) Unwrap() Source { return r.inner }

func (r *Reverser) Marker() byte { return ReverserMarker }

func (r *Reverser) Seed(seed uint64) { r.inner.Seed(seed) }

func (r *Reverser) Uint64() uint64 {
	v, _ := r.inner.Skip(-1)
	return v
}

func (r *Reverser) StateCount() int { return r.inner.StateCount() }

func (r *Reverser) Caps() Caps { return r.inner.Caps() }

func (r *Reverser) State(index int) (uint64, error) {
	return r.inner.State(index)
}

func (r *Reverser) SetState(index int, value uint64) error {
	return r.inner.SetState(index, value)
}

func (r *Reverser) Skip(distance int64) (uint64, error) {
	return r.inner.Skip(-distance)
}

func (r *Reverser) Previous() (uint64, error) {
	return r.inner.Skip(1)
}

func (r *Reverser) Copy() Source {
	return &Reverser{inner: r.inner.Copy()}
}

func (r *Reverser) AppendState(dst []byte) []byte {
	return r.inner.AppendState(dst)
}

func (r *Reverser) LoadState(body string) error {
	return r.inner.LoadState(body)
}
