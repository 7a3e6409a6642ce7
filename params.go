package eliasfano

import "math/bits"

// maxLowBits is the largest low-bits width the codec will ever choose.
// Safe for values up to 2^32-1 (see spec §4.A).
const maxLowBits = 31

// maxValue is the largest value the codec accepts, 2^32-1.
const maxValue = uint64(1)<<32 - 1

// headerLowStart is the fixed byte offset at which the low stream begins.
const headerLowStart = 5

// Params carries the layout derived from (n, max) that the encoder and
// decoder both need to agree on: the low-bits width and the two stream
// offsets into the wire buffer.
type Params struct {
	// N is the element count.
	N uint32
	// L is the low-bits width, 0 <= L <= 31.
	L uint8
	// LowStart is the byte offset at which the low stream begins.
	LowStart uint32
	// HighStart is the byte offset at which the high stream begins.
	HighStart uint32
}

// LowMask returns (1<<L)-1, the mask that isolates the low L bits of a gap.
func (p Params) LowMask() uint64 {
	if p.L == 0 {
		return 0
	}
	return uint64(1)<<p.L - 1
}

// DeriveParams computes the wire layout for n elements whose largest value
// is max, following spec §4.A: L = floor(log2(max/n)), clamped to [0, 31].
//
// This derives L from the sequence's own maximum, matching the source's
// convention of sizing off postingList[Count-1] rather than a separately
// supplied universe. Use DeriveParamsWithUniverse when max and the true
// universe diverge.
func DeriveParams(n uint32, max uint32) Params {
	return DeriveParamsWithUniverse(n, max)
}

// DeriveParamsWithUniverse computes the wire layout for n elements drawn
// from a universe of size u, following spec §4.A: L = floor(log2(u/n)),
// clamped to [0, 31].
//
// u need not equal the sequence's maximum value; callers that know the
// true universe bound (rather than relying on the largest observed value)
// should use this instead of DeriveParams. Encode does not take a
// universe: it always derives its layout through DeriveParams, from the
// sequence's largest value.
func DeriveParamsWithUniverse(n uint32, u uint32) Params {
	l := 0
	if n > 0 && u > n {
		avg := u / n
		l = bits.Len32(avg) - 1
		if l < 0 {
			l = 0
		}
	}
	if l > maxLowBits {
		l = maxLowBits
	}

	lowStart := uint32(headerLowStart)
	lowLenBytes := uint32(n) * uint32(l) / 8
	highStart := lowLenBytes + 6

	return Params{
		N:         n,
		L:         uint8(l),
		LowStart:  lowStart,
		HighStart: highStart,
	}
}

// MaxEncodedSizeHeuristic returns the source's original estimate of
// encoded size: 5 bytes per element. It is not an upper bound for every
// input: for small n it is below MaxEncodedSize, which Encode requires of
// dst (n=1, max=1 needs 8 bytes against an estimate of 5). For large n it
// is typically well above MaxEncodedSize.
func MaxEncodedSizeHeuristic(n uint32) uint32 {
	return 5 * n
}

// MaxEncodedSize returns the tight upper bound on encoded size in bytes
// for a sequence of n elements with maximum value max, per spec §4.B and
// the Open Questions in spec §9: 6 + ceil(n*L/8) + ceil((n+sumQ)/8) + 1,
// where sumQ is bounded using the worst case gap (max itself, when n=1)
// together with the chosen L.
func MaxEncodedSize(n uint32, max uint32) uint32 {
	if n == 0 {
		return 6
	}
	p := DeriveParams(n, max)
	lowBits := uint64(n) * uint64(p.L)
	lowBytes := (lowBits + 7) / 8

	// Worst case: a single element carries the entire gap budget, so
	// sumQ is bounded by max>>L; every other element contributes only
	// its terminating 1-bit.
	sumQBound := uint64(max) >> p.L
	highBits := uint64(n) + sumQBound
	highBytes := (highBits + 7) / 8

	return uint32(6 + lowBytes + highBytes + 1)
}
