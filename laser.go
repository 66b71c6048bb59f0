package whirl

const (
	laserStepA = 0xC6BC279692B5C323
	laserStepB = 0x9E3779B97F4A7C16
)

// Laser is a two-word generator: two additive accumulators, the first
// xorshifted and multiplied by the second, with a final xorshift.
// Word 1 must stay odd; every write path forces the low bit, and the
// read-back shows the adjusted value. Outputs can repeat within the
// 2^64 period. Supports all optional operations with closed-form Skip.
type Laser struct {
	a uint64
	b uint64
}

// NewLaser returns a Laser seeded with seed.
func NewLaser(seed uint64) *Laser {
	g := &Laser{}
	g.Seed(seed)
	return g
}

// NewLaserState returns a Laser with the given words; b is forced odd.
func NewLaserState(a, b uint64) *Laser {
	return &Laser{a: a, b: b | 1}
}

func (g *Laser) Seed(seed uint64) {
	g.a = MixStrong(seed)
	g.b = MixStrong(seed+gamma) | 1
}

func (g *Laser) Uint64() uint64 {
	g.a += laserStepA
	g.b += laserStepB
	return g.out()
}

func (g *Laser) out() uint64 {
	z := (g.a ^ g.a>>31) * g.b
	return z ^ z>>26
}

func (g *Laser) StateCount() int { return 2 }

func (g *Laser) Caps() Caps {
	return CapReadState | CapWriteState | CapSkip | CapPrevious
}

func (g *Laser) State(index int) (uint64, error) {
	switch index {
	case 0:
		return g.a, nil
	case 1:
		return g.b, nil
	}
	return 0, ErrStateIndex
}

func (g *Laser) SetState(index int, value uint64) error {
	switch index {
	case 0:
		g.a = value
	case 1:
		g.b = value | 1
	default:
		return ErrStateIndex
	}
	return nil
}

// Skip advances both accumulators by distance steps at once. laserStepB
// is even, so the parity invariant on word 1 survives any distance.
func (g *Laser) Skip(distance int64) (uint64, error) {
	g.a += laserStepA * uint64(distance)
	g.b += laserStepB * uint64(distance)
	return g.out(), nil
}

func (g *Laser) Previous() (uint64, error) {
	return g.Skip(-1)
}

func (g *Laser) Copy() Source {
	c := *g
	return &c
}

func (g *Laser) AppendState(dst []byte) []byte {
	return appendStateWords(dst, g.a, g.b)
}

func (g *Laser) LoadState(body string) error {
	words, err := parseStateWords(body, 2)
	if err != nil {
		return err
	}
	g.a = words[0]
	g.b = words[1] | 1
	return nil
}
