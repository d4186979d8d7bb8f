package calls

import (
	"github.com/snowfork/substrate-go/metadata"
	"github.com/snowfork/substrate-go/scale"
	"github.com/snowfork/substrate-go/xcm"
)

const xcmPallet = "PolkadotXcm"

// XcmTransfer builds one of the PolkadotXcm transfer extrinsics. The call
// body itself is assembled here; pallet/call indices always come from
// metadata, never hard-coded.
func XcmTransfer(md *metadata.Metadata, variant xcm.TransferVariant, dest, beneficiary xcm.VersionedLocation, assets xcm.VersionedAssets, feeAssetItem uint32, weightLimit xcm.WeightLimit) ([]byte, error) {
	palletIndex, callIndex, err := md.CallIndex(xcmPallet, variant.CallName())
	if err != nil {
		return nil, err
	}

	e := scale.NewEncoder()
	callHeader(e, palletIndex, callIndex)
	e.Append(xcm.EncodeTransferArgs(dest, beneficiary, assets, feeAssetItem, weightLimit))
	return e.Bytes(), nil
}
