package scale

import "math/big"

// EncodeU16 writes v little-endian.
func EncodeU16(v uint16) []byte {
	return []byte{byte(v), byte(v >> 8)}
}

// EncodeU32 writes v little-endian.
func EncodeU32(v uint32) []byte {
	return []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
}

// EncodeU64 writes v little-endian.
func EncodeU64(v uint64) []byte {
	out := make([]byte, 8)
	for i := 0; i < 8; i++ {
		out[i] = byte(v >> (8 * i))
	}
	return out
}

// EncodeU128 writes v little-endian over 16 bytes. v must be non-negative
// and fit in 128 bits.
func EncodeU128(v *big.Int) ([]byte, error) {
	if v.Sign() < 0 {
		return nil, errOutOfRange("u128: negative value")
	}
	b := v.Bytes() // big-endian, minimal length
	if len(b) > 16 {
		return nil, errOutOfRange("u128: value exceeds 128 bits")
	}
	out := make([]byte, 16)
	for i, c := range b {
		out[16-len(b)+i] = c
	}
	// reverse to little-endian
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

// DecodeU16 reads a little-endian u16 at the cursor.
func DecodeU16(b []byte) (uint16, int, error) {
	if len(b) < 2 {
		return 0, 0, errTruncated("u16")
	}
	return uint16(b[0]) | uint16(b[1])<<8, 2, nil
}

// DecodeU32 reads a little-endian u32 at the cursor.
func DecodeU32(b []byte) (uint32, int, error) {
	if len(b) < 4 {
		return 0, 0, errTruncated("u32")
	}
	v := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	return v, 4, nil
}

// DecodeU64 reads a little-endian u64 at the cursor.
func DecodeU64(b []byte) (uint64, int, error) {
	if len(b) < 8 {
		return 0, 0, errTruncated("u64")
	}
	var v uint64
	for i := 0; i < 8; i++ {
		v |= uint64(b[i]) << (8 * i)
	}
	return v, 8, nil
}

// DecodeU128 reads a little-endian u128 at the cursor, returning a *big.Int.
func DecodeU128(b []byte) (*big.Int, int, error) {
	if len(b) < 16 {
		return nil, 0, errTruncated("u128")
	}
	be := make([]byte, 16)
	for i := 0; i < 16; i++ {
		be[15-i] = b[i]
	}
	return new(big.Int).SetBytes(be), 16, nil
}
