package widget

import (
	"encoding/binary"
	"hash"
	"hash/fnv"
	"math"
)

// Hasher accumulates a structural hash over a widget subtree. The host
// compares the resulting sum across frames to decide whether a cached
// layout can be reused, so elements must feed it everything that affects
// their layout and nothing that doesn't.
type Hasher struct {
	h   hash.Hash64
	buf [8]byte
}

// NewHasher creates a structural hasher backed by FNV-1a.
func NewHasher() *Hasher {
	return &Hasher{h: fnv.New64a()}
}

// WriteString mixes a string into the hash.
func (s *Hasher) WriteString(v string) {
	s.h.Write([]byte(v))
}

// WriteUint64 mixes an unsigned integer into the hash.
func (s *Hasher) WriteUint64(v uint64) {
	binary.LittleEndian.PutUint64(s.buf[:], v)
	s.h.Write(s.buf[:])
}

// WriteInt mixes a signed integer into the hash.
func (s *Hasher) WriteInt(v int) {
	s.WriteUint64(uint64(v))
}

// WriteFloat32 mixes a float into the hash by its bit pattern.
func (s *Hasher) WriteFloat32(v float32) {
	binary.LittleEndian.PutUint32(s.buf[:4], math.Float32bits(v))
	s.h.Write(s.buf[:4])
}

// Sum64 returns the accumulated hash value.
func (s *Hasher) Sum64() uint64 {
	return s.h.Sum64()
}
