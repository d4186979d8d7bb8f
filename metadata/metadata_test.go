package metadata_test

import (
	"testing"

	"github.com/snowfork/substrate-go/metadata"
	"github.com/snowfork/substrate-go/scale"
	"github.com/stretchr/testify/require"
)

// buildCallsType encodes a Variant type whose arms are the given
// (name, index) pairs, each with no fields.
func buildCallsType(e *scale.Encoder, variants []struct {
	name  string
	index uint8
}) {
	e.VecLenPrefix(0) // path: empty Vec<String>
	e.VecLenPrefix(0) // type_params: empty
	e.Byte(1)         // TypeDef tag 1 = Variant
	e.VecLenPrefix(len(variants))
	for _, v := range variants {
		e.ByteVec([]byte(v.name))
		e.VecLenPrefix(0) // fields: none
		e.Byte(v.index)
		e.VecLenPrefix(0) // docs
	}
	e.VecLenPrefix(0) // docs
}

func buildPrimitiveU32Type(e *scale.Encoder) {
	e.VecLenPrefix(0) // path
	e.VecLenPrefix(0) // type_params
	e.Byte(5)         // TypeDef tag 5 = Primitive
	e.Byte(5)         // PrimitiveKind: U32
	e.VecLenPrefix(0) // docs
}

func buildTestBlob(t *testing.T) []byte {
	t.Helper()

	e := scale.NewEncoder()
	e.Append([]byte("meta"))
	e.Byte(14)

	// Type registry: id 0 = Balances.Call variant, id 1 = a u32 primitive.
	e.VecLenPrefix(2)
	e.CompactUint64(0)
	buildCallsType(e, []struct {
		name  string
		index uint8
	}{
		{"transfer_allow_death", 0},
		{"transfer_keep_alive", 3},
	})
	e.CompactUint64(1)
	buildPrimitiveU32Type(e)

	// Pallets: one pallet "Balances", index 5, with calls type 0 and one
	// constant "ExistentialDeposit" of type 1.
	e.VecLenPrefix(1)
	e.ByteVec([]byte("Balances"))
	e.OptionNone() // storage
	e.OptionSomePrefix()
	e.CompactUint64(0) // calls type id
	e.OptionNone()     // events
	e.VecLenPrefix(1)  // constants
	e.ByteVec([]byte("ExistentialDeposit"))
	e.CompactUint64(1)
	existentialDeposit := scale.EncodeU32(500)
	e.ByteVec(existentialDeposit)
	e.VecLenPrefix(0) // constant docs
	e.OptionNone()    // errors
	e.Byte(5)         // pallet index
	e.VecLenPrefix(0) // pallet docs

	// ExtrinsicMetadata{ty, version, signed_extensions}
	e.CompactUint64(1) // ty
	e.Byte(4)           // version
	e.VecLenPrefix(1)
	e.ByteVec([]byte("CheckNonce"))
	e.CompactUint64(1)
	e.CompactUint64(1)

	// trailing `ty: TypeId` field — unread by Parse, but present on the wire.
	e.CompactUint64(1)

	return e.Bytes()
}

func TestParseResolvesCallIndex(t *testing.T) {
	m, err := metadata.Parse(buildTestBlob(t))
	require.NoError(t, err)

	palletIdx, callIdx, err := m.CallIndex("Balances", "transfer_keep_alive")
	require.NoError(t, err)
	require.Equal(t, uint8(5), palletIdx)
	require.Equal(t, uint8(3), callIdx)
}

func TestParseRejectsUnknownCall(t *testing.T) {
	m, err := metadata.Parse(buildTestBlob(t))
	require.NoError(t, err)

	_, _, err = m.CallIndex("Balances", "does_not_exist")
	require.Error(t, err)
}

func TestParseRejectsUnknownPallet(t *testing.T) {
	m, err := metadata.Parse(buildTestBlob(t))
	require.NoError(t, err)

	_, _, err = m.CallIndex("NotAPallet", "transfer")
	require.Error(t, err)
}

func TestParseReadsConstant(t *testing.T) {
	m, err := metadata.Parse(buildTestBlob(t))
	require.NoError(t, err)

	value, err := m.Constant("Balances", "ExistentialDeposit")
	require.NoError(t, err)

	v, _, err := scale.DecodeU32(value)
	require.NoError(t, err)
	require.Equal(t, uint32(500), v)
}

func TestParseSignedExtensionOrder(t *testing.T) {
	m, err := metadata.Parse(buildTestBlob(t))
	require.NoError(t, err)
	require.Equal(t, []string{"CheckNonce"}, m.SignedExtensionOrder())
}

func TestParseRejectsBadMagic(t *testing.T) {
	blob := buildTestBlob(t)
	blob[0] = 'x'
	_, err := metadata.Parse(blob)
	require.Error(t, err)
}

func TestParseRejectsUnsupportedVersion(t *testing.T) {
	blob := buildTestBlob(t)
	blob[4] = 9
	_, err := metadata.Parse(blob)
	require.Error(t, err)
}
