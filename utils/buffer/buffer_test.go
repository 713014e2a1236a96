package buffer

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuffer(t *testing.T) {

	u8 := uint8(0xff)
	u8s := []uint8("some metadata")
	u64 := uint64(1) << 42
	f64 := -0.5
	f64s := []float64{-1.5, -0.25, 0, 0.25, 1.5}

	size := 1 + len(u8s) + 8 + 8 + len(f64s)<<3

	t.Run("Buffer", func(t *testing.T) {

		b := NewBufferSize(size)

		_, err := WriteUint8(b, u8)
		require.NoError(t, err)
		_, err = WriteUint8Slice(b, u8s)
		require.NoError(t, err)
		_, err = WriteUint64(b, u64)
		require.NoError(t, err)
		_, err = WriteFloat64(b, f64)
		require.NoError(t, err)
		_, err = WriteFloat64Slice(b, f64s)
		require.NoError(t, err)

		var cu8 uint8
		cu8s := make([]uint8, len(u8s))
		var cu64 uint64
		var cf64 float64
		cf64s := make([]float64, len(f64s))

		_, err = ReadUint8(b, &cu8)
		require.NoError(t, err)
		_, err = ReadUint8Slice(b, cu8s)
		require.NoError(t, err)
		_, err = ReadUint64(b, &cu64)
		require.NoError(t, err)
		_, err = ReadFloat64(b, &cf64)
		require.NoError(t, err)
		_, err = ReadFloat64Slice(b, cf64s)
		require.NoError(t, err)

		require.Equal(t, u8, cu8)
		require.Equal(t, u8s, cu8s)
		require.Equal(t, u64, cu64)
		require.Equal(t, f64, cf64)
		require.Equal(t, f64s, cf64s)
	})

	t.Run("Bufio", func(t *testing.T) {

		// A 16-byte internal buffer forces the chunked write and
		// read paths on slices larger than the buffer.
		data := new(bytes.Buffer)

		w := bufio.NewWriterSize(data, 16)

		long := make([]float64, 64)
		for i := range long {
			long[i] = float64(i) * 0.5
		}

		_, err := WriteUint8Slice(w, u8s)
		require.NoError(t, err)
		_, err = WriteFloat64Slice(w, long)
		require.NoError(t, err)
		require.NoError(t, w.Flush())

		r := bufio.NewReaderSize(data, 16)

		cu8s := make([]uint8, len(u8s))
		clong := make([]float64, len(long))

		_, err = ReadUint8Slice(r, cu8s)
		require.NoError(t, err)
		_, err = ReadFloat64Slice(r, clong)
		require.NoError(t, err)

		require.Equal(t, u8s, cu8s)
		require.Equal(t, long, clong)
	})

	t.Run("Truncated", func(t *testing.T) {

		b := NewBufferSize(16)

		_, err := WriteFloat64Slice(b, []float64{1, 2})
		require.NoError(t, err)

		c := make([]float64, 4)
		_, err = ReadFloat64Slice(b, c)
		require.Error(t, err)
	})
}
