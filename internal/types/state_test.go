package types

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState(t *testing.T) {
	s := NewState()
	s.Write8(0x12)
	s.Write16(0x3456)
	s.Write64(0x0123456789ABCDEF)
	s.WriteBool(true)
	s.WriteData([]byte{1, 2, 3})

	r := StateFromBytes(s.Bytes())
	assert.Equal(t, uint8(0x12), r.Read8())
	assert.Equal(t, uint16(0x3456), r.Read16())
	assert.Equal(t, uint64(0x0123456789ABCDEF), r.Read64())
	assert.True(t, r.ReadBool())
	data := make([]byte, 3)
	r.ReadData(data)
	assert.Equal(t, []byte{1, 2, 3}, data)
	assert.NoError(t, r.Err())

	t.Run("short", func(t *testing.T) {
		assert.Equal(t, uint16(0), r.Read16())
		assert.ErrorIs(t, r.Err(), ErrStateShort)

		r.ResetPosition()
		assert.NoError(t, r.Err())
		assert.Equal(t, uint8(0x12), r.Read8())
	})
}

func TestState_Snapshot(t *testing.T) {
	s := NewState()
	for i := 0; i < 0x4000; i++ {
		s.Write8(uint8(i % 7))
	}

	snapshot, err := s.Compress()
	require.NoError(t, err)
	assert.Less(t, len(snapshot), len(s.Bytes()))

	restored, err := StateFromSnapshot(snapshot)
	require.NoError(t, err)
	assert.Equal(t, s.Bytes(), restored.Bytes())

	t.Run("checksum", func(t *testing.T) {
		corrupt := append([]byte(nil), snapshot...)
		corrupt[5] ^= 0xFF
		_, err := StateFromSnapshot(corrupt)
		assert.ErrorIs(t, err, ErrStateChecksum)
	})
	t.Run("format", func(t *testing.T) {
		_, err := StateFromSnapshot([]byte("not a snapshot"))
		assert.ErrorIs(t, err, ErrStateFormat)

		wrongVersion := append([]byte(nil), snapshot...)
		wrongVersion[4] = 0xFF
		_, err = StateFromSnapshot(wrongVersion)
		assert.ErrorIs(t, err, ErrStateFormat)
	})
	t.Run("file", func(t *testing.T) {
		filename := filepath.Join(t.TempDir(), "state.sav")
		require.NoError(t, s.SaveToFile(filename))

		loaded, err := LoadStateFile(filename)
		require.NoError(t, err)
		assert.Equal(t, s.Bytes(), loaded.Bytes())
	})
}

func TestState_Invalid(t *testing.T) {
	s := StateFromBytes([]byte{0x01})
	s.Invalid(ErrStateFormat)
	s.Invalid(ErrStateChecksum)
	assert.ErrorIs(t, s.Err(), ErrStateFormat)
	assert.NotErrorIs(t, s.Err(), ErrStateChecksum)

	s.ResetPosition()
	assert.NoError(t, s.Err())
}
