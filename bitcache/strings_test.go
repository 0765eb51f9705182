package bitcache

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferString(t *testing.T) {
	buf := &Buffer{}
	c := New(MinCapacity)
	require.NoError(t, c.OpenForWriting(buf))
	require.NoError(t, c.WriteBufferString("hello"))
	require.NoError(t, c.WriteBufferString("cut\x00off"))
	require.NoError(t, c.WriteBufferString(""))
	require.NoError(t, c.WriteBufferString("a somewhat longer string"))
	require.NoError(t, c.Close())
	assert.Equal(t, "hello\x00cut\x00\x00a somewhat longer string\x00", string(buf.Bytes()))

	require.NoError(t, c.OpenForReading(buf))
	s, err := c.ReadBufferString(6)
	require.NoError(t, err)
	assert.Equal(t, "hello", s)
	s, err = c.ReadBufferString(64)
	require.NoError(t, err)
	assert.Equal(t, "cut", s)
	s, err = c.ReadBufferString(1)
	require.NoError(t, err)
	assert.Equal(t, "", s)
	s, err = c.ReadBufferString(64)
	require.NoError(t, err)
	assert.Equal(t, "a somewhat longer string", s)
	assert.True(t, c.IsAtEnd())
}

func TestBufferStringOversized(t *testing.T) {
	c := New(MinCapacity)
	require.NoError(t, c.OpenForReading(NewBuffer([]byte("hello\x00"))))
	s, err := c.ReadBufferString(5)
	require.ErrorIs(t, err, ErrOversizedString)
	assert.Equal(t, "hell", s)
	require.ErrorIs(t, c.Err(), ErrOversizedString)
}

func TestBufferStringUnterminated(t *testing.T) {
	c := New(MinCapacity)
	require.NoError(t, c.OpenForReading(NewBuffer([]byte("abc"))))
	_, err := c.ReadBufferString(16)
	require.ErrorIs(t, err, ErrInsufficientAvailableData)
}

func TestLengthPrefixedString(t *testing.T) {
	long := strings.Repeat("xrb", 100)
	buf := &Buffer{}
	c := New(MinCapacity)
	require.NoError(t, c.OpenForWriting(buf))
	require.NoError(t, c.WriteString("short"))
	require.NoError(t, c.WriteString(""))
	require.NoError(t, c.WriteString(long))
	require.NoError(t, c.WriteString(long))
	require.NoError(t, c.Close())
	assert.Equal(t, 4+5+4+4+len(long)+4+len(long), buf.Len())

	require.NoError(t, c.OpenForReading(buf))
	s, err := c.ReadString(16)
	require.NoError(t, err)
	assert.Equal(t, "short", s)
	s, err = c.ReadString(16)
	require.NoError(t, err)
	assert.Equal(t, "", s)
	s, err = c.ReadString(len(long))
	require.NoError(t, err)
	assert.Equal(t, long, s)
	_, err = c.ReadString(10)
	require.ErrorIs(t, err, ErrOversizedString)
}

func TestStringNeedsAlignment(t *testing.T) {
	c := New(MinCapacity)
	require.NoError(t, c.OpenForWriting(&Buffer{}))
	require.NoError(t, c.WriteBool(false))
	require.ErrorIs(t, c.WriteString("x"), ErrNotByteAligned)
	require.ErrorIs(t, c.WriteBufferString("x"), ErrNotByteAligned)
}
