package csg

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"hash"
	"math"
)

// Hash is a content address of a solid expression tree. Two trees with
// identical structure and parameters have identical hashes, so a
// re-run of the same configuration can be checked for determinism
// without evaluating any geometry.
type Hash [sha256.Size]byte

// Short returns an abbreviated hex form for logs and error messages.
func (h Hash) Short() string {
	return fmt.Sprintf("%x", h[:6])
}

// ContentHash computes the content address of the tree rooted at s.
func (s *Solid) ContentHash() Hash {
	h := sha256.New()
	hashNode(h, s)
	var out Hash
	copy(out[:], h.Sum(nil))
	return out
}

func hashNode(h hash.Hash, s *Solid) {
	if s == nil {
		h.Write([]byte{0xff})
		return
	}
	writeU64(h, uint64(s.Kind))
	h.Write([]byte(s.Name))
	h.Write([]byte{0})

	switch d := s.Data.(type) {
	case ExtrudeData:
		writeF64(h, d.Height)
		for _, p := range d.Profile {
			writeF64(h, p.X)
			writeF64(h, p.Y)
		}
	case LoftData:
		writeF64(h, d.Height)
		for _, p := range d.Bottom {
			writeF64(h, p.X)
			writeF64(h, p.Y)
		}
		for _, p := range d.Top {
			writeF64(h, p.X)
			writeF64(h, p.Y)
		}
	case CylinderData:
		writeF64(h, d.Height)
		writeF64(h, d.Radius)
	case BoxData:
		writeF64(h, d.X)
		writeF64(h, d.Y)
		writeF64(h, d.Z)
	case TranslateData:
		writeF64(h, d.Offset.X)
		writeF64(h, d.Offset.Y)
		writeF64(h, d.Offset.Z)
	case RotateZData:
		writeF64(h, d.Degrees)
	}

	writeU64(h, uint64(len(s.Args)))
	for _, a := range s.Args {
		hashNode(h, a)
	}
}

func writeU64(h hash.Hash, v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	h.Write(buf[:])
}

func writeF64(h hash.Hash, v float64) {
	writeU64(h, math.Float64bits(v))
}
