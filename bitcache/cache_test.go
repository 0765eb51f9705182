package bitcache

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xrbengine/xrb/endian"
)

type field struct {
	v uint32
	n int
}

func randomFields(count int) []field {
	r := rand.New(rand.NewPCG(1, 2))
	res := make([]field, count)
	for i := range res {
		n := 1 + r.IntN(32)
		v := r.Uint32()
		if n < 32 {
			v &= 1<<n - 1
		}
		res[i] = field{v: v, n: n}
	}
	return res
}

func TestBitExactRoundTrip(t *testing.T) {
	fields := randomFields(2000)
	buf := &Buffer{}
	w := New(MinCapacity)
	require.NoError(t, w.OpenForWriting(buf))
	for _, f := range fields {
		require.NoError(t, w.WriteUnsignedBits(f.v, f.n))
	}
	require.NoError(t, w.Close())

	r := New(MinCapacity + 1)
	require.NoError(t, r.OpenForReading(buf))
	for i, f := range fields {
		got, err := r.ReadUnsignedBits(f.n)
		require.NoError(t, err, "field %d", i)
		require.Equal(t, f.v, got, "field %d width %d", i, f.n)
	}
	// at most 7 bits of padding remain
	assert.True(t, r.HasFewerThan8BitsLeft())
	require.NoError(t, r.Close())
}

func TestBitLayoutMSBFirst(t *testing.T) {
	buf := &Buffer{}
	c := New(16)
	require.NoError(t, c.OpenForWriting(buf))
	require.NoError(t, c.WriteUnsignedBits(0b101, 3))
	require.NoError(t, c.WriteUnsignedBits(0b00011, 5))
	require.NoError(t, c.WriteUnsignedBits(0xF, 4))
	require.NoError(t, c.WriteUnsignedBits(0x123, 12))
	require.NoError(t, c.WriteBool(true))
	require.NoError(t, c.Close())
	assert.Equal(t, []byte{0xA3, 0xF1, 0x23, 0x80}, buf.Bytes())
}

func TestStraddlingWindowBoundary(t *testing.T) {
	buf := &Buffer{}
	c := New(MinCapacity)
	require.NoError(t, c.OpenForWriting(buf))
	// 63 bits then a 32 bit field crossing the window edge
	require.NoError(t, c.WriteUnsignedBits(0x7FFFFFFF, 31))
	require.NoError(t, c.WriteUnsignedBits(0, 32))
	require.NoError(t, c.WriteUnsignedBits(0xCAFEBABE, 32))
	require.NoError(t, c.WriteBool(false))
	require.NoError(t, c.Close())
	require.Equal(t, 12, buf.Len())

	require.NoError(t, c.OpenForReading(buf))
	v, err := c.ReadUnsignedBits(31)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x7FFFFFFF), v)
	v, err = c.ReadUnsignedBits(32)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), v)
	v, err = c.ReadUnsignedBits(32)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xCAFEBABE), v)
	b, err := c.ReadBool()
	require.NoError(t, err)
	assert.False(t, b)
}

func TestSignedBits(t *testing.T) {
	tests := []struct {
		v int32
		n int
	}{
		{v: -1, n: 1},
		{v: 0, n: 1},
		{v: -4, n: 3},
		{v: 3, n: 3},
		{v: -100, n: 8},
		{v: math.MinInt32, n: 32},
		{v: math.MaxInt32, n: 32},
		{v: -70000, n: 18},
	}
	buf := &Buffer{}
	c := New(32)
	require.NoError(t, c.OpenForWriting(buf))
	for _, tt := range tests {
		require.NoError(t, c.WriteSignedBits(tt.v, tt.n), "%d/%d", tt.v, tt.n)
	}
	require.NoError(t, c.Close())
	require.NoError(t, c.OpenForReading(buf))
	for _, tt := range tests {
		got, err := c.ReadSignedBits(tt.n)
		require.NoError(t, err)
		assert.Equal(t, tt.v, got, "width %d", tt.n)
	}
}

func TestValueRange(t *testing.T) {
	c := New(MinCapacity)
	require.NoError(t, c.OpenForWriting(&Buffer{}))
	require.ErrorIs(t, c.WriteUnsignedBits(8, 3), ErrValueOutOfRange)
	require.ErrorIs(t, c.WriteSignedBits(4, 3), ErrValueOutOfRange)
	require.ErrorIs(t, c.WriteSignedBits(-5, 3), ErrValueOutOfRange)
	require.ErrorIs(t, c.WriteUnsignedBits(0, 0), ErrBitCount)
	require.ErrorIs(t, c.WriteUnsignedBits(0, 33), ErrBitCount)
	require.ErrorIs(t, c.Err(), ErrBitCount)
	require.NoError(t, c.WriteUnsignedBits(7, 3))
	require.NoError(t, c.Err())
}

func TestWordsEndianness(t *testing.T) {
	tests := []struct {
		order endian.Endianness
		want  []byte
	}{
		{order: endian.BigEndian, want: []byte{0x01, 0x02, 0x03, 0x04}},
		{order: endian.LittleEndian, want: []byte{0x04, 0x03, 0x02, 0x01}},
	}
	for _, tt := range tests {
		t.Run(tt.order.String(), func(t *testing.T) {
			buf := &Buffer{}
			c := New(MinCapacity, WithEndianness(tt.order))
			require.NoError(t, c.OpenForWriting(buf))
			require.NoError(t, c.WriteUint32(0x01020304))
			require.NoError(t, c.Close())
			assert.Equal(t, tt.want, buf.Bytes())
		})
	}
}

func TestWordsRoundTrip(t *testing.T) {
	for _, order := range []endian.Endianness{endian.BigEndian, endian.LittleEndian} {
		buf := &Buffer{}
		c := New(MinCapacity, WithEndianness(order))
		require.NoError(t, c.OpenForWriting(buf))
		require.NoError(t, c.WriteUint8(0xAB))
		require.NoError(t, c.WriteUint16(0xBEEF))
		require.NoError(t, c.WriteUint64(0x0123456789ABCDEF))
		require.NoError(t, c.WriteSint8(-2))
		require.NoError(t, c.WriteSint16(-300))
		require.NoError(t, c.WriteSint32(-70000))
		require.NoError(t, c.WriteSint64(math.MinInt64))
		require.NoError(t, c.WriteFloat32(1.5))
		require.NoError(t, c.WriteFloat64(-math.Pi))
		require.NoError(t, c.Close())

		require.NoError(t, c.OpenForReading(buf))
		u8, err := c.ReadUint8()
		require.NoError(t, err)
		assert.Equal(t, uint8(0xAB), u8)
		u16, err := c.ReadUint16()
		require.NoError(t, err)
		assert.Equal(t, uint16(0xBEEF), u16)
		u64, err := c.ReadUint64()
		require.NoError(t, err)
		assert.Equal(t, uint64(0x0123456789ABCDEF), u64)
		s8, err := c.ReadSint8()
		require.NoError(t, err)
		assert.Equal(t, int8(-2), s8)
		s16, err := c.ReadSint16()
		require.NoError(t, err)
		assert.Equal(t, int16(-300), s16)
		s32, err := c.ReadSint32()
		require.NoError(t, err)
		assert.Equal(t, int32(-70000), s32)
		s64, err := c.ReadSint64()
		require.NoError(t, err)
		assert.Equal(t, int64(math.MinInt64), s64)
		f32, err := c.ReadFloat32()
		require.NoError(t, err)
		assert.Equal(t, float32(1.5), f32)
		f64, err := c.ReadFloat64()
		require.NoError(t, err)
		assert.Equal(t, -math.Pi, f64)
		assert.True(t, c.IsAtEnd())
	}
}

func TestByteAlignment(t *testing.T) {
	buf := &Buffer{}
	c := New(MinCapacity)
	require.NoError(t, c.OpenForWriting(buf))
	require.NoError(t, c.WriteBool(true))
	require.ErrorIs(t, c.WriteUint16(1), ErrNotByteAligned)
	require.ErrorIs(t, c.WriteBytes([]byte{1}), ErrNotByteAligned)
	require.NoError(t, c.AlignToByte())
	assert.True(t, c.IsByteAligned())
	require.NoError(t, c.WriteUint16(0x0102))
	require.NoError(t, c.Close())
	assert.Equal(t, []byte{0x80, 0x01, 0x02}, buf.Bytes())

	require.NoError(t, c.OpenForReading(buf))
	_, err := c.ReadUnsignedBits(2)
	require.NoError(t, err)
	_, err = c.ReadUint8()
	require.ErrorIs(t, err, ErrNotByteAligned)
	require.NoError(t, c.AlignToByte())
	v, err := c.ReadUint16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0102), v)
}

func TestModeErrors(t *testing.T) {
	c := New(MinCapacity)
	_, err := c.ReadUint8()
	require.ErrorIs(t, err, ErrNotOpen)
	require.ErrorIs(t, c.Close(), ErrNotOpen)
	require.ErrorIs(t, c.OpenForReading(nil), ErrNoChannel)
	assert.False(t, c.IsOpen())

	require.NoError(t, c.OpenForReading(&Buffer{}))
	require.ErrorIs(t, c.OpenForReading(&Buffer{}), ErrAlreadyOpen)
	require.ErrorIs(t, c.OpenForWriting(&Buffer{}), ErrAlreadyOpen)
	require.ErrorIs(t, c.WriteBool(true), ErrWrongDirection)
	require.ErrorIs(t, c.Flush(), ErrWrongDirection)
	assert.True(t, c.IsOpenForReading())
	require.NoError(t, c.Close())

	require.NoError(t, c.OpenForWriting(&Buffer{}))
	_, err = c.ReadBool()
	require.ErrorIs(t, err, ErrWrongDirection)
	assert.True(t, c.IsOpenForWriting())
	assert.False(t, c.IsAtEnd())
	require.NoError(t, c.Close())
}

func TestInsufficientAvailableData(t *testing.T) {
	c := New(MinCapacity)
	require.NoError(t, c.OpenForReading(NewBuffer([]byte{0x7F})))
	_, err := c.ReadUint16()
	require.ErrorIs(t, err, ErrInsufficientAvailableData)
	require.ErrorIs(t, c.Err(), ErrInsufficientAvailableData)
	// the cache stays usable
	v, err := c.ReadUint8()
	require.NoError(t, err)
	assert.Equal(t, uint8(0x7F), v)
	_, err = c.ReadUint8()
	require.ErrorIs(t, err, ErrIsAtEnd)
}

func TestInsufficientStorage(t *testing.T) {
	buf := &Buffer{Limit: 2}
	c := New(MinCapacity)
	require.NoError(t, c.OpenForWriting(buf))
	require.NoError(t, c.WriteUint64(1))
	err := c.WriteUint64(2)
	require.ErrorIs(t, err, ErrInsufficientStorage)
	require.ErrorIs(t, c.Err(), ErrInsufficientStorage)
	assert.Equal(t, 2, buf.Len())
	require.NoError(t, c.Close())
}

func TestFlushKeepsPartialByte(t *testing.T) {
	buf := &Buffer{}
	c := New(MinCapacity)
	require.NoError(t, c.OpenForWriting(buf))
	require.NoError(t, c.WriteUnsignedBits(0xABC, 12))
	require.NoError(t, c.Flush())
	assert.Equal(t, []byte{0xAB}, buf.Bytes())
	require.NoError(t, c.WriteUnsignedBits(0xD, 4))
	require.NoError(t, c.Close())
	assert.Equal(t, []byte{0xAB, 0xCD}, buf.Bytes())
}

func TestBytesTransfer(t *testing.T) {
	buf := &Buffer{}
	c := New(MinCapacity)
	require.NoError(t, c.OpenForWriting(buf))
	require.ErrorIs(t, c.WriteBytes(make([]byte, MinCapacity+1)), ErrTransferTooLarge)
	for i := range 5 {
		require.NoError(t, c.WriteBytes([]byte{byte(i), 1, 2, 3, 4, 5, 6, 7}))
	}
	require.NoError(t, c.Close())
	require.Equal(t, 40, buf.Len())

	require.NoError(t, c.OpenForReading(buf))
	p := make([]byte, MinCapacity)
	for i := range 5 {
		require.NoError(t, c.ReadBytes(p))
		assert.Equal(t, []byte{byte(i), 1, 2, 3, 4, 5, 6, 7}, p)
	}
	require.ErrorIs(t, c.ReadBytes(p), ErrIsAtEnd)
	require.ErrorIs(t, c.ReadBytes(make([]byte, MinCapacity+1)), ErrTransferTooLarge)
}
