// Package bitutil provides the candidate-mask population count and the
// subset-enumeration table the elimination rule families (region, line, and
// intersection rules) are driven from. A mask of order N packs the digits
// 1..N into bits 0..N-1; the same Mask type doubles as a set of cell
// positions (0..N-1) within a region when the rule engines reinterpret a
// subset as "these cells" rather than "these values" (spec.md §4.3).
package bitutil

import "math/bits"

// Mask is a bitset over {0, 1, ..., N-1} for some N <= MaxN. Bit i represents
// either digit i+1 or region-position i, depending on context.
type Mask = uint32

// MaxN is the largest supported grid order (S=5 => N=25), chosen so that a
// Mask always fits in a uint32.
const MaxN = 25

// popcountLUT is a byte-wise population-count lookup table — the classic
// bit-hack form of "a population count table" from spec.md §4.1, sized for a
// single byte rather than the full 2^N domain. A table indexed by the whole
// mask would need 2^25 entries at S=5 (hundreds of megabytes); splitting the
// mask into four byte lookups keeps the table at a fixed 256 entries while
// still avoiding a runtime popcount instruction per call on platforms where
// the compiler can't intrinsic it.
var popcountLUT [256]uint8

func init() {
	for i := range popcountLUT {
		popcountLUT[i] = uint8(bits.OnesCount8(uint8(i)))
	}
}

// PopCount returns the number of set bits in m.
func PopCount(m Mask) int {
	return int(popcountLUT[byte(m)]) +
		int(popcountLUT[byte(m>>8)]) +
		int(popcountLUT[byte(m>>16)]) +
		int(popcountLUT[byte(m>>24)])
}

// Full returns the mask with the low n bits set, i.e. the full candidate set
// for an order-n grid.
func Full(n int) Mask {
	if n >= 32 {
		return ^Mask(0)
	}
	return Mask(1)<<uint(n) - 1
}
