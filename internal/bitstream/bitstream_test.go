package bitstream

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriterReaderRoundTrip(t *testing.T) {
	buf := make([]byte, 16)
	w := NewWriter(buf, 0)
	w.Push(0b101, 3)
	w.Push(0b11001, 5)
	w.Push(0b0, 4)
	w.Flush()

	r := NewReader(buf, 0, w.Cursor())
	v, ok := r.Pull(3)
	require.True(t, ok)
	require.Equal(t, uint64(0b101), v)

	v, ok = r.Pull(5)
	require.True(t, ok)
	require.Equal(t, uint64(0b11001), v)

	v, ok = r.Pull(4)
	require.True(t, ok)
	require.Equal(t, uint64(0), v)
}

func TestWriterPushUnarySmall(t *testing.T) {
	buf := make([]byte, 4)
	w := NewWriter(buf, 0)
	w.PushUnary(3) // "0001"
	w.Flush()
	require.Equal(t, byte(0b00010000), buf[0])
}

func TestWriterPushUnaryAcrossBytes(t *testing.T) {
	buf := make([]byte, 4)
	w := NewWriter(buf, 0)
	w.PushUnary(10) // 10 zeros then a 1: spans two bytes
	w.Flush()
	require.Equal(t, byte(0x00), buf[0])
	require.Equal(t, byte(0b00100000), buf[1])
}

func TestWriterPushUnaryLargeRun(t *testing.T) {
	buf := make([]byte, 32)
	w := NewWriter(buf, 0)
	w.PushUnary(200)
	w.Flush()

	r := NewReader(buf, 0, w.Cursor())
	zeros := 0
	for {
		v, ok := r.Pull(1)
		require.True(t, ok)
		if v == 1 {
			break
		}
		zeros++
	}
	require.Equal(t, 200, zeros)
}

func TestWriterFlushReturnsResidualBitCount(t *testing.T) {
	buf := make([]byte, 4)
	w := NewWriter(buf, 0)
	w.Push(1, 3)
	require.Equal(t, uint8(3), w.Flush())
}

func TestReaderExhaustion(t *testing.T) {
	buf := []byte{0xFF}
	r := NewReader(buf, 0, 1)
	_, ok := r.Pull(8)
	require.True(t, ok)
	_, ok = r.Pull(1)
	require.False(t, ok)
}
