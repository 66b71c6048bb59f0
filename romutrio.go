package whirl

import "math/bits"

const romuTrioMul = 0xD3833E804F4C574B

// RomuTrio is a three-word subtract-rotate generator. Each draw emits
// the old first word, then rebuilds the state with one multiply, two
// subtractions and two rotations. Very fast, but the transition has no
// closed-form jump, so Skip and Previous are unsupported, and outputs
// revisit identical values within a period.
//
// The all-zero state is absorbing and therefore disallowed: writing
// word 2 such that all three words would become zero stores all-ones
// in word 2 instead.
type RomuTrio struct {
	a uint64
	b uint64
	c uint64
}

// NewRomuTrio returns a RomuTrio seeded with seed.
func NewRomuTrio(seed uint64) *RomuTrio {
	g := &RomuTrio{}
	g.Seed(seed)
	return g
}

// NewRomuTrioState returns a RomuTrio with the given words, applying
// the all-zero adjustment to c.
func NewRomuTrioState(a, b, c uint64) *RomuTrio {
	if a|b|c == 0 {
		c = ^uint64(0)
	}
	return &RomuTrio{a: a, b: b, c: c}
}

func (g *RomuTrio) Seed(seed uint64) {
	seed += gamma
	g.a = MixStrong(seed)
	seed += gamma
	g.b = MixStrong(seed)
	seed += gamma
	g.c = MixStrong(seed)
	if g.a|g.b|g.c == 0 {
		g.c = ^uint64(0)
	}
}

func (g *RomuTrio) Uint64() uint64 {
	a, b, c := g.a, g.b, g.c
	g.a = romuTrioMul * c
	g.b = bits.RotateLeft64(b-a, 12)
	g.c = bits.RotateLeft64(c-b, 44)
	return a
}

func (g *RomuTrio) StateCount() int { return 3 }

func (g *RomuTrio) Caps() Caps {
	return CapReadState | CapWriteState
}

func (g *RomuTrio) State(index int) (uint64, error) {
	switch index {
	case 0:
		return g.a, nil
	case 1:
		return g.b, nil
	case 2:
		return g.c, nil
	}
	return 0, ErrStateIndex
}

func (g *RomuTrio) SetState(index int, value uint64) error {
	switch index {
	case 0:
		g.a = value
	case 1:
		g.b = value
	case 2:
		if value == 0 && g.a == 0 && g.b == 0 {
			value = ^uint64(0)
		}
		g.c = value
	default:
		return ErrStateIndex
	}
	return nil
}

func (g *RomuTrio) Skip(distance int64) (uint64, error) {
	return 0, unsupported("RomuTrio.Skip")
}

func (g *RomuTrio) Previous() (uint64, error) {
	return 0, unsupported("RomuTrio.Previous")
}

func (g *RomuTrio) Copy() Source {
	c := *g
	return &c
}

func (g *RomuTrio) AppendState(dst []byte) []byte {
	return appendStateWords(dst, g.a, g.b, g.c)
}

func (g *RomuTrio) LoadState(body string) error {
	words, err := parseStateWords(body, 3)
	if err != nil {
		return err
	}
	g.a, g.b = words[0], words[1]
	if words[2] == 0 && g.a == 0 && g.b == 0 {
		words[2] = ^uint64(0)
	}
	g.c = words[2]
	return nil
}
