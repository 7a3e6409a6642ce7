package eliasfano

import "github.com/m3db/eliasfano/internal/bitstream"

// Decode reconstructs the sequence encoded by Encode into dst, which must
// have capacity for at least as many elements as the header declares.
// usedBytes must be exactly the value Encode returned; decoding with any
// other length is undefined per spec §6 ("decoders must be given this
// exact length").
//
// It returns the number of elements written (equal to the header's n).
// BuildDecodingTables is called internally, so callers never need to
// invoke it themselves.
func Decode(src []byte, usedBytes uint32, dst []uint32) (writtenCount uint32, err error) {
	BuildDecodingTables()

	if uint32(len(src)) < usedBytes || usedBytes < headerLowStart+1 {
		return 0, newTruncatedError("src has %d bytes, usedBytes=%d is not a valid encoding length", len(src), usedBytes)
	}

	n := uint32(src[0]) | uint32(src[1])<<8 | uint32(src[2])<<16 | uint32(src[3])<<24
	l := src[4]
	if l > maxLowBits {
		return 0, newTruncatedError("header L=%d exceeds the maximum of %d", l, maxLowBits)
	}

	highStart := uint32(n)*uint32(l)/8 + 6
	if usedBytes < highStart {
		return 0, newTruncatedError("usedBytes=%d is shorter than the declared high-stream start %d", usedBytes, highStart)
	}
	if uint32(len(dst)) < n {
		return 0, newBufferTooSmallError("dst has %d elements, need %d", len(dst), n)
	}

	low := bitstream.NewReader(src, headerLowStart, highStart)

	var (
		last         uint64
		pendingCarry uint64
		written      uint32
	)

	for cursor := highStart; cursor < usedBytes; cursor++ {
		b := src[cursor]
		k := dnum[b]

		for i := uint8(0); i < k; i++ {
			if written >= n {
				return 0, newDecodeOverflowError("high stream encodes more than n=%d terminators", n)
			}

			var lo uint64
			if l > 0 {
				v, ok := low.Pull(l)
				if !ok {
					return 0, newTruncatedError("low stream exhausted before n=%d elements were decoded", n)
				}
				lo = v
			}

			h := uint64(hi[b][i])
			if i == 0 {
				h += pendingCarry
			}

			value := (h<<l | lo) + last + 1
			if value > maxValue {
				return 0, newDecodeOverflowError("reconstructed value would exceed 2^32-1 at element %d", written)
			}

			dst[written] = uint32(value)
			last = value
			written++
		}

		if k == 0 {
			// No terminator in this byte: its zero bits extend the unary
			// code already in flight, so the carry accumulates instead
			// of being replaced.
			pendingCarry += uint64(carry[b])
		} else {
			pendingCarry = uint64(carry[b])
		}
	}

	if written != n {
		return 0, newTruncatedError("high stream terminated %d elements, header declared n=%d", written, n)
	}

	return written, nil
}
