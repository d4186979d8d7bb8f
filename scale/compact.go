package scale

import "math/big"

const (
	compactModeSingle uint64 = 0
	compactModeTwo    uint64 = 1
	compactModeFour   uint64 = 2
	compactModeBig    uint64 = 3
)

// EncodeCompact encodes a non-negative integer per the Compact<N> rules:
// values under 2^6 in one byte, under 2^14 in two, under 2^30 in four,
// and anything larger as a length byte followed by the minimal
// little-endian representation.
func EncodeCompact(n *big.Int) ([]byte, error) {
	if n.Sign() < 0 {
		return nil, errOutOfRange("compact: negative value")
	}

	if n.IsUint64() {
		v := n.Uint64()
		switch {
		case v < 1<<6:
			return []byte{byte(v<<2) | byte(compactModeSingle)}, nil
		case v < 1<<14:
			x := uint16(v<<2) | uint16(compactModeTwo)
			return EncodeU16(x), nil
		case v < 1<<30:
			x := uint32(v<<2) | uint32(compactModeFour)
			return EncodeU32(x), nil
		}
	}

	be := n.Bytes() // big-endian, minimal
	k := len(be)
	if k < 4 {
		k = 4
	}
	out := make([]byte, 1+k)
	out[0] = byte((k-4)<<2) | byte(compactModeBig)
	for i, c := range be {
		out[1+k-len(be)+i] = c
	}
	// reverse the little-endian payload into place
	payload := out[1:]
	for i, j := 0, len(payload)-1; i < j; i, j = i+1, j-1 {
		payload[i], payload[j] = payload[j], payload[i]
	}
	return out, nil
}

// EncodeCompactUint64 is a convenience wrapper over EncodeCompact for
// values that fit in a uint64.
func EncodeCompactUint64(n uint64) []byte {
	b, err := EncodeCompact(new(big.Int).SetUint64(n))
	if err != nil {
		// unreachable: n is always non-negative
		panic(err)
	}
	return b
}

// DecodeCompact reads a Compact<N> value at the start of b, returning the
// value and the number of bytes consumed.
func DecodeCompact(b []byte) (*big.Int, int, error) {
	if len(b) == 0 {
		return nil, 0, errTruncated("compact: empty input")
	}

	mode := uint64(b[0]) & 0x03
	switch mode {
	case compactModeSingle:
		return new(big.Int).SetUint64(uint64(b[0]) >> 2), 1, nil

	case compactModeTwo:
		v, _, err := DecodeU16(b)
		if err != nil {
			return nil, 0, errTruncated("compact: two-byte mode")
		}
		return new(big.Int).SetUint64(uint64(v) >> 2), 2, nil

	case compactModeFour:
		v, _, err := DecodeU32(b)
		if err != nil {
			return nil, 0, errTruncated("compact: four-byte mode")
		}
		return new(big.Int).SetUint64(uint64(v) >> 2), 4, nil

	case compactModeBig:
		k := int(b[0]>>2) + 4
		if len(b) < 1+k {
			return nil, 0, errTruncated("compact: big-integer mode")
		}
		le := b[1 : 1+k]
		be := make([]byte, k)
		for i, c := range le {
			be[k-1-i] = c
		}
		return new(big.Int).SetBytes(be), 1 + k, nil

	default:
		return nil, 0, errBadCompactPrefix("unsupported mode")
	}
}

// DecodeCompactUint64 decodes a Compact<N> value that is known to fit in
// a uint64, failing with KindOutOfRange otherwise.
func DecodeCompactUint64(b []byte) (uint64, int, error) {
	v, n, err := DecodeCompact(b)
	if err != nil {
		return 0, 0, err
	}
	if !v.IsUint64() {
		return 0, 0, errOutOfRange("compact: value exceeds 64 bits")
	}
	return v.Uint64(), n, nil
}
