package whirl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMixFast(t *testing.T) {
	require.Equal(t, uint64(0x5692161D100B05E5), MixFast(1))
	require.Equal(t, uint64(0xDBD238973A2B148A), MixFast(2))
	require.Equal(t, uint64(0x1E535EEDE31428F0), MixFast(3))
}

func TestMixStrong(t *testing.T) {
	require.Equal(t, uint64(0x3C02AA47758292BD), MixStrong(1))
	require.Equal(t, uint64(0x946F086BBB956C5D), MixStrong(2))
	require.Equal(t, uint64(0x850163E6BA26A867), MixStrong(3))
}

func TestMixMX(t *testing.T) {
	require.Equal(t, uint64(0x071894DE00D9981F), MixMX(1))
	require.Equal(t, uint64(0xEF9D98262A1B46CB), MixMX(2))
	require.Equal(t, uint64(0x1DCEEE2CE9E92B7C), MixMX(3))
}

func TestMixersDiffer(t *testing.T) {
	for _, x := range []uint64{1, 42, 0xDEADBEEF, ^uint64(0)} {
		require.NotEqual(t, MixFast(x), MixStrong(x))
		require.NotEqual(t, MixStrong(x), MixMX(x))
		require.NotEqual(t, MixFast(x), MixMX(x))
	}
}
