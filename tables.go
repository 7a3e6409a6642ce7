package eliasfano

import "sync"

// maxOnesPerByte bounds hi[b]'s second dimension: a byte holds at most 8
// one-bits.
const maxOnesPerByte = 8

var (
	tablesOnce sync.Once

	// dnum[b] is popcount(b): how many unary codes terminate within byte b.
	dnum [256]uint8

	// hi[b][k] is the number of zero bits preceding the k-th one-bit in
	// byte b, scanning MSB to LSB. Only hi[b][0:dnum[b]] is meaningful.
	hi [256][maxOnesPerByte]uint8

	// carry[b] is the number of trailing zero bits after the last one-bit
	// in byte b (MSB->LSB scan); carry[0] == 8.
	carry [256]uint8
)

// BuildDecodingTables builds the process-wide decoding tables used by
// Decode. It is idempotent and safe to call from multiple goroutines;
// the tables are built at most once and are read-only afterward, so
// concurrent decoders never need to synchronize on them. Decode calls
// this itself, so most callers never need to invoke it directly.
func BuildDecodingTables() {
	tablesOnce.Do(buildDecodingTables)
}

func buildDecodingTables() {
	for b := 0; b < 256; b++ {
		zeros := uint8(0)
		var n uint8
		for bit := 7; bit >= 0; bit-- {
			if b&(1<<bit) != 0 {
				hi[b][n] = zeros
				n++
				zeros = 0
			} else {
				zeros++
			}
		}
		dnum[b] = n
		carry[b] = zeros
	}
}
