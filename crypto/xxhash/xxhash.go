// Package xxhash implements Substrate's twox64/twox128 storage-key
// hashing: each 64-bit half is XXH64(input, seed) for seed = 0, 1, 2, ...
// concatenated little-endian.
package xxhash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

func half(input []byte, seed uint64) uint64 {
	d := xxhash.NewWithSeed(seed)
	_, _ = d.Write(input)
	return d.Sum64()
}

// Twox64 returns XXH64(input, seed=0) as 8 little-endian bytes.
func Twox64(input []byte) [8]byte {
	var out [8]byte
	binary.LittleEndian.PutUint64(out[:], half(input, 0))
	return out
}

// Twox128 returns XXH64(input, seed=0) || XXH64(input, seed=1), 16 bytes.
func Twox128(input []byte) [16]byte {
	var out [16]byte
	binary.LittleEndian.PutUint64(out[0:8], half(input, 0))
	binary.LittleEndian.PutUint64(out[8:16], half(input, 1))
	return out
}

// Twox256 extends the same pattern to 32 bytes (four 64-bit halves),
// used for some map-key hashers in the wider Substrate storage API.
func Twox256(input []byte) [32]byte {
	var out [32]byte
	for i := 0; i < 4; i++ {
		binary.LittleEndian.PutUint64(out[i*8:i*8+8], half(input, uint64(i)))
	}
	return out
}
