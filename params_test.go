package eliasfano

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeriveParamsDense(t *testing.T) {
	p := DeriveParams(8, 8)
	require.Equal(t, uint8(0), p.L)
	require.Equal(t, uint32(5), p.LowStart)
	require.Equal(t, uint32(6), p.HighStart)
}

func TestDeriveParamsSingleElement(t *testing.T) {
	p := DeriveParams(1, 1)
	require.Equal(t, uint8(0), p.L)

	p = DeriveParams(1, 1<<31)
	require.Equal(t, uint8(31), p.L)
}

func TestDeriveParamsSparse(t *testing.T) {
	// max/n = 11/5 = 2, floor(log2(2)) = 1.
	p := DeriveParams(5, 11)
	require.Equal(t, uint8(1), p.L)
}

func TestDeriveParamsClampsToThirtyOne(t *testing.T) {
	p := DeriveParamsWithUniverse(1, 0xFFFFFFFF)
	require.LessOrEqual(t, p.L, uint8(31))
}

func TestLowMask(t *testing.T) {
	require.Equal(t, uint64(0), Params{L: 0}.LowMask())
	require.Equal(t, uint64(1), Params{L: 1}.LowMask())
	require.Equal(t, uint64(0x7FFFFFFF), Params{L: 31}.LowMask())
}

func TestMaxEncodedSizeCoversHeuristicCase(t *testing.T) {
	n := uint32(10000)
	max := uint32(1e9)
	require.LessOrEqual(t, MaxEncodedSize(n, max), MaxEncodedSizeHeuristic(n))
}

func TestMaxEncodedSizeZeroElements(t *testing.T) {
	require.Equal(t, uint32(6), MaxEncodedSize(0, 0))
}
