package signedext

import "math"

// mortalEraPeriod mirrors the teacher's fixed 64-block mortality window;
// must be a power of two between 4 and 65536.
const mortalEraPeriod = uint64(64)

// Era is the wire form of CheckMortality/CheckEra's `extra` contribution:
// either the single Immortal byte, or a 2-byte mortal era descriptor
// encoding a (period, phase) pair per sp_runtime's generic Era encoding.
type Era struct {
	mortal bool
	first  byte
	second byte
}

// Immortal is this core's default era: the transaction never expires.
func Immortal() Era { return Era{} }

// NewMortalEra derives a mortal Era valid for mortalEraPeriod blocks
// starting near currentBlockNumber, following the same phase/quantization
// rule sp_runtime's Era::mortal uses.
func NewMortalEra(currentBlockNumber uint64) Era {
	phase := currentBlockNumber % mortalEraPeriod

	quantizeFactor := mortalEraPeriod >> 12
	if quantizeFactor < 1 {
		quantizeFactor = 1
	}
	quantizedPhase := phase / quantizeFactor * quantizeFactor

	encoded := uint16(math.Log2(float64(mortalEraPeriod))-1) | uint16((quantizedPhase/quantizeFactor)<<4)

	return Era{mortal: true, first: byte(encoded), second: byte(encoded >> 8)}
}

// Encode returns the `extra` bytes CheckMortality/CheckEra contributes.
func (e Era) Encode() []byte {
	if !e.mortal {
		return []byte{0x00}
	}
	return []byte{e.first, e.second}
}
