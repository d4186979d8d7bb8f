package xcm

import "github.com/snowfork/substrate-go/scale"

// TransferVariant selects which PolkadotXcm transfer extrinsic to target.
// All three share the same argument shape: dest, beneficiary, assets,
// fee_asset_item, weight_limit.
type TransferVariant int

const (
	LimitedTeleportAssets TransferVariant = iota
	LimitedReserveTransferAssets
	TransferAssets
)

// CallName returns the pallet call name for v, to be resolved against
// metadata by the caller.
func (v TransferVariant) CallName() string {
	switch v {
	case LimitedTeleportAssets:
		return "limited_teleport_assets"
	case LimitedReserveTransferAssets:
		return "limited_reserve_transfer_assets"
	case TransferAssets:
		return "transfer_assets"
	default:
		return ""
	}
}

// EncodeTransferArgs builds the SCALE-encoded argument tail shared by the
// three transfer variants: dest, beneficiary, assets, fee_asset_item,
// weight_limit. The pallet/call header bytes are prepended by the caller
// once indices are resolved through metadata.
func EncodeTransferArgs(dest, beneficiary VersionedLocation, assets VersionedAssets, feeAssetItem uint32, weightLimit WeightLimit) []byte {
	e := scale.NewEncoder()
	e.Append(dest.Encode())
	e.Append(beneficiary.Encode())
	e.Append(assets.Encode())
	e.U32(feeAssetItem)
	encodeWeightLimit(e, weightLimit)
	return e.Bytes()
}
