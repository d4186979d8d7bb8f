package scale

import "math/big"

// Decoder is an explicit cursor over a byte buffer. It borrows the input
// and never retains references past the lifetime of the call that owns
// it; the cursor only ever advances.
type Decoder struct {
	buf []byte
	pos int
}

// NewDecoder wraps b for sequential decoding starting at offset 0.
func NewDecoder(b []byte) *Decoder {
	return &Decoder{buf: b}
}

// Offset returns the current cursor position.
func (d *Decoder) Offset() int { return d.pos }

// Remaining returns the number of unread bytes.
func (d *Decoder) Remaining() int { return len(d.buf) - d.pos }

func (d *Decoder) take(n int) ([]byte, error) {
	if n < 0 || d.pos+n > len(d.buf) {
		return nil, errTruncated("decoder: not enough bytes")
	}
	out := d.buf[d.pos : d.pos+n]
	d.pos += n
	return out, nil
}

// Byte reads a single raw byte.
func (d *Decoder) Byte() (byte, error) {
	b, err := d.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// Bytes reads n raw bytes verbatim (fixed array of u8, no length prefix).
func (d *Decoder) Bytes(n int) ([]byte, error) {
	b, err := d.take(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}

// U8 reads a raw u8.
func (d *Decoder) U8() (uint8, error) {
	b, err := d.Byte()
	return uint8(b), err
}

// U16 reads a little-endian u16.
func (d *Decoder) U16() (uint16, error) {
	b, err := d.take(2)
	if err != nil {
		return 0, err
	}
	v, _, err := DecodeU16(b)
	return v, err
}

// U32 reads a little-endian u32.
func (d *Decoder) U32() (uint32, error) {
	b, err := d.take(4)
	if err != nil {
		return 0, err
	}
	v, _, err := DecodeU32(b)
	return v, err
}

// U64 reads a little-endian u64.
func (d *Decoder) U64() (uint64, error) {
	b, err := d.take(8)
	if err != nil {
		return 0, err
	}
	v, _, err := DecodeU64(b)
	return v, err
}

// U128 reads a little-endian u128.
func (d *Decoder) U128() (*big.Int, error) {
	b, err := d.take(16)
	if err != nil {
		return nil, err
	}
	v, _, err := DecodeU128(b)
	return v, err
}

// Compact reads a Compact<N> integer.
func (d *Decoder) Compact() (*big.Int, error) {
	v, n, err := DecodeCompact(d.buf[d.pos:])
	if err != nil {
		return nil, err
	}
	d.pos += n
	return v, nil
}

// CompactUint64 reads a Compact<N> integer known to fit in 64 bits.
func (d *Decoder) CompactUint64() (uint64, error) {
	v, n, err := DecodeCompactUint64(d.buf[d.pos:])
	if err != nil {
		return 0, err
	}
	d.pos += n
	return v, nil
}

// Bool reads a SCALE-encoded bool (0x00/0x01).
func (d *Decoder) Bool() (bool, error) {
	b, err := d.Byte()
	if err != nil {
		return false, err
	}
	switch b {
	case 0x00:
		return false, nil
	case 0x01:
		return true, nil
	default:
		return false, errBadVariant("bool", b)
	}
}

// OptionSome peeks the Option<T> tag and reports whether the value is
// present, consuming only the tag byte.
func (d *Decoder) OptionSome() (bool, error) {
	b, err := d.Byte()
	if err != nil {
		return false, err
	}
	switch b {
	case 0x00:
		return false, nil
	case 0x01:
		return true, nil
	default:
		return false, errBadVariant("Option", b)
	}
}

// VecLen reads the Compact<len> prefix of a Vec<T> or byte string.
func (d *Decoder) VecLen() (int, error) {
	n, err := d.CompactUint64()
	if err != nil {
		return 0, err
	}
	if n > uint64(d.Remaining()) {
		return 0, errTruncated("vec: declared length exceeds remaining input")
	}
	return int(n), nil
}

// ByteVec reads a Vec<u8> (Compact<len> || raw).
func (d *Decoder) ByteVec() ([]byte, error) {
	n, err := d.VecLen()
	if err != nil {
		return nil, err
	}
	return d.Bytes(n)
}
