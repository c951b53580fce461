package types

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/andybalholm/brotli"
	"github.com/cespare/xxhash"
)

var (
	// ErrStateFormat is returned when a snapshot does not start with
	// the expected header.
	ErrStateFormat = errors.New("state: unrecognised snapshot format")
	// ErrStateChecksum is returned when the decompressed snapshot does
	// not match the checksum stored in its header.
	ErrStateChecksum = errors.New("state: checksum mismatch")
	// ErrStateShort is returned when a read runs past the end of the
	// state data.
	ErrStateShort = errors.New("state: unexpected end of data")
)

// snapshotMagic prefixes every compressed snapshot, followed by a
// version byte and the xxhash of the uncompressed state.
var snapshotMagic = [4]byte{'S', 'M', '8', '3'}

const snapshotVersion = 1

// Resettable is an interface that allows an object to be reset.
type Resettable interface {
	Reset() // Reset the state of the object
}

// State represents the machine state. This is used to save and load
// states between runs, and by test harnesses to capture a machine at a
// given instruction.
type State struct {
	raw          []byte // raw state data (for serialization)
	readPosition int    // current read position
	err          error  // first read error
}

// Stater is an interface that allows an object to be saved
// and loaded from a state.
type Stater interface {
	Load(*State) // Load the state of the object
	Save(*State) // Save the state of the object
}

// NewState creates a new state.
func NewState() *State {
	return &State{
		raw: make([]byte, 0),
	}
}

// StateFromBytes creates a new state from the given bytes.
func StateFromBytes(raw []byte) *State {
	return &State{
		raw: raw,
	}
}

// ResetPosition resets the read position, allowing the state to be
// read from the beginning.
func (s *State) ResetPosition() {
	s.readPosition = 0
	s.err = nil
}

// Err returns the first error encountered while reading, if any.
// Reads past the end of the data return zero values.
func (s *State) Err() error {
	return s.err
}

// Invalid records err as the read error, unless an earlier one was
// recorded. Loaders call it when a value they read is out of range.
func (s *State) Invalid(err error) {
	if s.err == nil {
		s.err = err
	}
}

func (s *State) Write8(value uint8) {
	s.raw = append(s.raw, value)
}

func (s *State) Write16(value uint16) {
	s.raw = binary.LittleEndian.AppendUint16(s.raw, value)
}

func (s *State) Write64(value uint64) {
	s.raw = binary.LittleEndian.AppendUint64(s.raw, value)
}

func (s *State) WriteBool(value bool) {
	if value {
		s.raw = append(s.raw, 1)
	} else {
		s.raw = append(s.raw, 0)
	}
}

func (s *State) WriteData(data []byte) {
	s.raw = append(s.raw, data...)
}

// take returns the next n bytes, or nil if the data is exhausted.
func (s *State) take(n int) []byte {
	if s.readPosition+n > len(s.raw) {
		if s.err == nil {
			s.err = fmt.Errorf("%w: need %d bytes at offset %d", ErrStateShort, n, s.readPosition)
		}
		s.readPosition = len(s.raw)
		return nil
	}
	b := s.raw[s.readPosition : s.readPosition+n]
	s.readPosition += n
	return b
}

func (s *State) Read8() uint8 {
	if b := s.take(1); b != nil {
		return b[0]
	}
	return 0
}

func (s *State) Read16() uint16 {
	if b := s.take(2); b != nil {
		return binary.LittleEndian.Uint16(b)
	}
	return 0
}

func (s *State) Read64() uint64 {
	if b := s.take(8); b != nil {
		return binary.LittleEndian.Uint64(b)
	}
	return 0
}

func (s *State) ReadBool() bool {
	return s.Read8() != 0
}

func (s *State) ReadData(p []byte) {
	if b := s.take(len(p)); b != nil {
		copy(p, b)
	}
}

func (s *State) Bytes() []byte {
	return s.raw
}

// Compress encodes the state as a snapshot: a short header carrying
// the xxhash of the raw state, followed by the brotli compressed data.
func (s *State) Compress() ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(snapshotMagic[:])
	buf.WriteByte(snapshotVersion)
	buf.Write(binary.LittleEndian.AppendUint64(nil, xxhash.Sum64(s.raw)))

	w := brotli.NewWriterLevel(&buf, brotli.DefaultCompression)
	if _, err := w.Write(s.raw); err != nil {
		return nil, fmt.Errorf("state: compressing: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("state: compressing: %w", err)
	}

	return buf.Bytes(), nil
}

// StateFromSnapshot decodes a snapshot produced by Compress,
// verifying its checksum.
func StateFromSnapshot(snapshot []byte) (*State, error) {
	const headerSize = len(snapshotMagic) + 1 + 8
	if len(snapshot) < headerSize || !bytes.Equal(snapshot[:4], snapshotMagic[:]) {
		return nil, ErrStateFormat
	}
	if v := snapshot[4]; v != snapshotVersion {
		return nil, fmt.Errorf("%w: version %d", ErrStateFormat, v)
	}
	sum := binary.LittleEndian.Uint64(snapshot[5:headerSize])

	raw, err := io.ReadAll(brotli.NewReader(bytes.NewReader(snapshot[headerSize:])))
	if err != nil {
		return nil, fmt.Errorf("state: decompressing: %w", err)
	}
	if xxhash.Sum64(raw) != sum {
		return nil, ErrStateChecksum
	}

	return StateFromBytes(raw), nil
}

// SaveToFile writes the state to filename as a compressed snapshot.
func (s *State) SaveToFile(filename string) error {
	b, err := s.Compress()
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}

// LoadStateFile reads a snapshot written by SaveToFile.
func LoadStateFile(filename string) (*State, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return StateFromSnapshot(b)
}
