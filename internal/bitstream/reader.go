package bitstream

// Reader unpacks MSB-first bits from a caller-owned byte slice, the
// inverse of Writer. It is used for the Elias-Fano low stream only — the
// high stream is decoded entirely through table lookups, never through a
// bit-at-a-time reader (see package eliasfano's decode.go).
type Reader struct {
	buf    []byte
	cursor uint32
	limit  uint32
	acc    uint64
	bits   uint8
}

// NewReader returns a Reader over buf[start:limit].
func NewReader(buf []byte, start, limit uint32) *Reader {
	return &Reader{buf: buf, cursor: start, limit: limit}
}

// Cursor returns the index of the next unread byte.
func (r *Reader) Cursor() uint32 { return r.cursor }

// Pull refills the accumulator from the underlying buffer until at least
// n bits are available, then returns the next n bits MSB-first and
// discards them. n must be <= 31 (the codec's low-bits width never
// exceeds that). ok is false if the buffer is exhausted before n bits
// could be assembled.
func (r *Reader) Pull(n uint8) (v uint64, ok bool) {
	for r.bits < n {
		if r.cursor >= r.limit {
			return 0, false
		}
		r.acc = (r.acc << 8) | uint64(r.buf[r.cursor])
		r.cursor++
		r.bits += 8
	}
	shift := r.bits - n
	v = (r.acc >> shift) & (uint64(1)<<n - 1)
	r.bits -= n
	r.acc &= uint64(1)<<r.bits - 1
	return v, true
}
