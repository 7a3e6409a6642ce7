package eliasfano

import "github.com/m3db/eliasfano/internal/bitstream"

// Encode serialises the strictly increasing sequence seq into dst using
// the wire layout derived by DeriveParams, and returns the number of
// bytes of dst that make up the encoding (spec §4.B's usedBytes).
//
// seq must be non-empty, strictly increasing, free of zeros, and bounded
// by 2^32-1; violating any of these returns an InvalidInput-class error.
// dst must be at least MaxEncodedSize(len(seq), seq[len(seq)-1]) bytes;
// a smaller dst returns a BufferTooSmall-class error. Encode performs no
// allocation and touches only seq and dst.
func Encode(seq []uint32, dst []byte) (usedBytes uint32, err error) {
	if err := validateSequence(seq); err != nil {
		return 0, err
	}

	n := uint32(len(seq))
	max := seq[n-1]
	params := DeriveParams(n, max)

	need := MaxEncodedSize(n, max)
	if uint32(len(dst)) < need {
		return 0, newBufferTooSmallError(
			"dst has %d bytes, need at least %d for n=%d max=%d", len(dst), need, n, max)
	}

	low := bitstream.NewWriter(dst, params.LowStart)
	high := bitstream.NewWriter(dst, params.HighStart)

	var last uint64
	lowMask := params.LowMask()
	l := params.L
	for _, v := range seq {
		d := uint64(v) - last - 1
		last = uint64(v)

		if l > 0 {
			low.Push(d&lowMask, l)
		}
		q := d >> l
		high.PushUnary(uint32(q))
	}

	low.Flush()
	high.Flush()

	putUint32LE(dst[0:4], n)
	dst[4] = params.L

	// The low cursor must never cross into the high stream's territory;
	// the reserved byte at lowStart+floor(n*L/8) absorbs its final padded
	// byte and keeps the two regions from overlapping.
	if low.Cursor() > params.HighStart {
		return 0, newBufferTooSmallError(
			"low stream cursor %d crossed high stream start %d", low.Cursor(), params.HighStart)
	}

	usedBytes = high.Cursor()
	return usedBytes, nil
}

// validateSequence checks the constraints spec §4.B places on the input:
// non-empty, zero-free, and strictly increasing. The upper bound of
// 2^32-1 from spec §7's InvalidInput is enforced by seq's uint32 element
// type itself and needs no runtime check.
func validateSequence(seq []uint32) error {
	if len(seq) == 0 {
		return newInvalidInputError("sequence is empty")
	}
	prev := uint32(0)
	for i, v := range seq {
		if v == 0 {
			return newInvalidInputError("element %d is zero, which is not a legal value", i)
		}
		if i > 0 && v <= prev {
			return newInvalidInputError("sequence not strictly increasing at index %d: %d <= %d", i, v, prev)
		}
		prev = v
	}
	return nil
}

func putUint32LE(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}
