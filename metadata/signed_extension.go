package metadata

import (
	"fmt"

	"github.com/snowfork/substrate-go/scale"
)

// SignedExtensionMeta names one signed extension in its runtime-declared
// order, together with the TypeIds of the bytes it contributes to the
// extrinsic's `extra` segment and to the signing payload's additional
// signed data.
type SignedExtensionMeta struct {
	Identifier     string
	IncludedType   TypeId
	AdditionalType TypeId
}

func decodeSignedExtensions(d *scale.Decoder) ([]SignedExtensionMeta, error) {
	n, err := d.VecLen()
	if err != nil {
		return nil, fmt.Errorf("signed extensions length: %w", err)
	}

	exts := make([]SignedExtensionMeta, n)
	for i := 0; i < n; i++ {
		identifier, err := d.ByteVec()
		if err != nil {
			return nil, fmt.Errorf("signed extension[%d] identifier: %w", i, err)
		}
		exts[i].Identifier = string(identifier)

		included, err := d.CompactUint64()
		if err != nil {
			return nil, fmt.Errorf("signed extension[%d] included type: %w", i, err)
		}
		exts[i].IncludedType = TypeId(included)

		additional, err := d.CompactUint64()
		if err != nil {
			return nil, fmt.Errorf("signed extension[%d] additional type: %w", i, err)
		}
		exts[i].AdditionalType = TypeId(additional)
	}
	return exts, nil
}
