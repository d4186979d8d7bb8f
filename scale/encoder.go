package scale

import "math/big"

// Encoder accumulates SCALE-encoded output. Its methods return no error:
// U128 and Compact panic on a negative or out-of-range value, while the
// function forms EncodeU128 and EncodeCompact return that failure as an
// error for callers that need to handle it.
type Encoder struct {
	buf []byte
}

// NewEncoder returns an empty encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Bytes returns the accumulated output.
func (e *Encoder) Bytes() []byte {
	return e.buf
}

// Append writes raw bytes verbatim.
func (e *Encoder) Append(b []byte) *Encoder {
	e.buf = append(e.buf, b...)
	return e
}

// Byte writes a single raw byte.
func (e *Encoder) Byte(b byte) *Encoder {
	e.buf = append(e.buf, b)
	return e
}

// U16 writes a little-endian u16.
func (e *Encoder) U16(v uint16) *Encoder { return e.Append(EncodeU16(v)) }

// U32 writes a little-endian u32.
func (e *Encoder) U32(v uint32) *Encoder { return e.Append(EncodeU32(v)) }

// U64 writes a little-endian u64.
func (e *Encoder) U64(v uint64) *Encoder { return e.Append(EncodeU64(v)) }

// U128 writes a little-endian u128; panics if v is out of range. Use
// EncodeU128 to get the range failure as an error instead.
func (e *Encoder) U128(v *big.Int) *Encoder {
	b, err := EncodeU128(v)
	if err != nil {
		panic(err)
	}
	return e.Append(b)
}

// Bool writes a SCALE bool.
func (e *Encoder) Bool(v bool) *Encoder {
	if v {
		return e.Byte(0x01)
	}
	return e.Byte(0x00)
}

// Compact writes a Compact<N> integer.
func (e *Encoder) Compact(n *big.Int) *Encoder {
	b, err := EncodeCompact(n)
	if err != nil {
		panic(err)
	}
	return e.Append(b)
}

// CompactUint64 writes a Compact<N> integer from a uint64.
func (e *Encoder) CompactUint64(n uint64) *Encoder {
	return e.Append(EncodeCompactUint64(n))
}

// OptionNone writes the None tag for Option<T>.
func (e *Encoder) OptionNone() *Encoder { return e.Byte(0x00) }

// OptionSomePrefix writes the Some tag; the caller appends enc(T) after.
func (e *Encoder) OptionSomePrefix() *Encoder { return e.Byte(0x01) }

// ByteVec writes a Vec<u8> (Compact<len> || raw).
func (e *Encoder) ByteVec(b []byte) *Encoder {
	return e.CompactUint64(uint64(len(b))).Append(b)
}

// VecLenPrefix writes the Compact<len> prefix for a Vec<T> of n elements;
// the caller appends each enc(T) after.
func (e *Encoder) VecLenPrefix(n int) *Encoder {
	return e.CompactUint64(uint64(n))
}
