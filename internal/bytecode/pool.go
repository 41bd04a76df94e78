package bytecode

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/klauspost/compress/s2"

	"github.com/alexparlett/angelscript-go/internal/ident"
)

// ConstKind discriminates a Constant's payload.
type ConstKind uint8

const (
	ConstInt ConstKind = iota
	ConstFloat
	ConstString
	ConstTypeHash
)

// Constant is one entry of a function's constant pool. It is
// comparable (no slice/map fields) so the pool can dedup by value
// using a plain Go map.
type Constant struct {
	Kind  ConstKind
	Int   int64
	Float float64
	Str   string
	Hash  ident.TypeHash
}

// ConstantPool holds one compilation unit's deduplicated constants.
// Entries are built up during emission; once the raw encoding grows
// past compactAt bytes, Intern also keeps an s2-compressed blob of
// them, re-encoded on every later Intern. The live entry slice is kept
// beside the blob, so compaction does not shrink the resident size
// (spec §4.6
// is silent on a representation for this - see DESIGN.md for why this
// stays in-memory only and never touches spec §1's out-of-scope
// on-disk module format).
type ConstantPool struct {
	entries   []Constant
	index     map[Constant]int
	compactAt int

	compacted   []byte
	rawLen      int
	isCompacted bool
	sealed      bool
}

// NewConstantPool creates a pool that compacts once its raw encoding
// would exceed compactAtBytes. A non-positive threshold disables
// compaction.
func NewConstantPool(compactAtBytes int) *ConstantPool {
	return &ConstantPool{index: map[Constant]int{}, compactAt: compactAtBytes}
}

// Intern returns c's index, adding it if not already present.
func (p *ConstantPool) Intern(c Constant) int {
	if p.sealed {
		panic("bytecode: Intern called on a compacted ConstantPool")
	}
	if i, ok := p.index[c]; ok {
		return i
	}
	i := len(p.entries)
	p.entries = append(p.entries, c)
	p.index[c] = i
	p.rawLen += encodedLen(c)
	if p.compactAt > 0 && p.rawLen > p.compactAt {
		p.compacted = s2.Encode(nil, encodeConstants(p.entries))
		p.isCompacted = true
	}
	return i
}

func encodedLen(c Constant) int {
	switch c.Kind {
	case ConstString:
		return len(c.Str) + 2
	default:
		return 9
	}
}

// Compact folds all entries into a single s2-compressed blob and seals
// the pool: further Intern calls panic, since a unit's constant pool is
// sealed at end-of-emission. The live entry slice is kept, so Len and
// the dedup index are unaffected.
func (p *ConstantPool) Compact() {
	p.sealed = true
	if p.isCompacted {
		return
	}
	raw := encodeConstants(p.entries)
	p.compacted = s2.Encode(nil, raw)
	p.isCompacted = true
}

// Len reports the number of constants in the pool.
func (p *ConstantPool) Len() int { return len(p.entries) }

// Get returns the constant at index i, decompressing the pool on
// first access after Compact.
func (p *ConstantPool) Get(i int) (Constant, error) {
	if p.isCompacted {
		raw, err := s2.Decode(nil, p.compacted)
		if err != nil {
			return Constant{}, fmt.Errorf("bytecode: decompress constant pool: %w", err)
		}
		p.entries = decodeConstants(raw)
		p.isCompacted = false
		p.compacted = nil
	}
	if i < 0 || i >= len(p.entries) {
		return Constant{}, fmt.Errorf("bytecode: constant index %d out of range", i)
	}
	return p.entries[i], nil
}

func encodeConstants(cs []Constant) []byte {
	var buf []byte
	var scratch [binary.MaxVarintLen64]byte
	for _, c := range cs {
		buf = append(buf, byte(c.Kind))
		switch c.Kind {
		case ConstInt:
			n := binary.PutVarint(scratch[:], c.Int)
			buf = append(buf, scratch[:n]...)
		case ConstFloat:
			n := binary.PutUvarint(scratch[:], math.Float64bits(c.Float))
			buf = append(buf, scratch[:n]...)
		case ConstString:
			n := binary.PutUvarint(scratch[:], uint64(len(c.Str)))
			buf = append(buf, scratch[:n]...)
			buf = append(buf, c.Str...)
		case ConstTypeHash:
			n := binary.PutUvarint(scratch[:], uint64(c.Hash))
			buf = append(buf, scratch[:n]...)
		}
	}
	return buf
}

func decodeConstants(b []byte) []Constant {
	var out []Constant
	for len(b) > 0 {
		kind := ConstKind(b[0])
		b = b[1:]
		switch kind {
		case ConstInt:
			v, n := binary.Varint(b)
			b = b[n:]
			out = append(out, Constant{Kind: kind, Int: v})
		case ConstFloat:
			v, n := binary.Uvarint(b)
			b = b[n:]
			out = append(out, Constant{Kind: kind, Float: math.Float64frombits(v)})
		case ConstString:
			l, n := binary.Uvarint(b)
			b = b[n:]
			s := string(b[:l])
			b = b[l:]
			out = append(out, Constant{Kind: kind, Str: s})
		case ConstTypeHash:
			v, n := binary.Uvarint(b)
			b = b[n:]
			out = append(out, Constant{Kind: kind, Hash: ident.TypeHash(v)})
		}
	}
	return out
}
