package whirl

// Distinct is a one-word additive generator: each draw adds a fixed
// odd constant to the accumulator and returns a MixStrong avalanche of
// it. Over its 2^64 period every 64-bit output occurs exactly once,
// which is the property the name refers to. Supports all optional
// operations; Skip is a single multiply.
type Distinct struct {
	state uint64
}

// NewDistinct returns a Distinct seeded with seed. Pass RandomSeed()
// for a non-reproducible instance.
func NewDistinct(seed uint64) *Distinct {
	g := &Distinct{}
	g.Seed(seed)
	return g
}

// NewDistinctState returns a Distinct with the given accumulator word.
func NewDistinctState(state uint64) *Distinct {
	return &Distinct{state: state}
}

// Seed stores the seed verbatim; any accumulator value is valid.
func (g *Distinct) Seed(seed uint64) { g.state = seed }

func (g *Distinct) Uint64() uint64 {
	g.state += gamma
	return MixStrong(g.state)
}

func (g *Distinct) StateCount() int { return 1 }

func (g *Distinct) Caps() Caps {
	return CapReadState | CapWriteState | CapSkip | CapPrevious
}

func (g *Distinct) State(index int) (uint64, error) {
	if index != 0 {
		return 0, ErrStateIndex
	}
	return g.state, nil
}

func (g *Distinct) SetState(index int, value uint64) error {
	if index != 0 {
		return ErrStateIndex
	}
	g.state = value
	return nil
}

func (g *Distinct) Skip(distance int64) (uint64, error) {
	g.state += gamma * uint64(distance)
	return MixStrong(g.state), nil
}

func (g *Distinct) Previous() (uint64, error) {
	return g.Skip(-1)
}

func (g *Distinct) Copy() Source {
	c := *g
	return &c
}

func (g *Distinct) AppendState(dst []byte) []byte {
	return appendStateWords(dst, g.state)
}

func (g *Distinct) LoadState(body string) error {
	words, err := parseStateWords(body, 1)
	if err != nil {
		return err
	}
	g.state = words[0]
	return nil
}
