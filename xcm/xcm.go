// Package xcm encodes the V4 Cross-Consensus Messaging types this core
// needs to build teleport/reserve-transfer calls: Location, Junctions,
// Asset, Fungibility, WeightLimit, and their Versioned wrappers. Decoding
// additionally recognizes the V3 Location tag, since runtimes commonly
// still emit V3 events and storage values alongside a V4 extrinsic
// surface.
package xcm

import (
	"math/big"

	"github.com/snowfork/substrate-go/scale"
)

const (
	versionedTagV3 = 3
	versionedTagV4 = 4
)

// NetworkId selects the Option<NetworkId> carried by an AccountId32
// junction. A nil *NetworkId encodes as None.
type NetworkId struct {
	tag byte
}

var (
	NetworkPolkadot = &NetworkId{0x02}
	NetworkKusama   = &NetworkId{0x03}
)

// JunctionKind tags which case of Junction a value holds. Only the two
// cases this core's transfer helpers need are supported.
type JunctionKind int

const (
	JunctionParachain JunctionKind = iota
	JunctionAccountId32
)

// Junction is one hop of a Location's interior path.
type Junction struct {
	Kind      JunctionKind
	ParaId    uint32
	Network   *NetworkId
	AccountId [32]byte
}

func Parachain(id uint32) Junction {
	return Junction{Kind: JunctionParachain, ParaId: id}
}

func AccountId32(network *NetworkId, id [32]byte) Junction {
	return Junction{Kind: JunctionAccountId32, Network: network, AccountId: id}
}

func encodeJunction(e *scale.Encoder, j Junction) {
	switch j.Kind {
	case JunctionParachain:
		e.Byte(0x00)
		e.CompactUint64(uint64(j.ParaId))
	case JunctionAccountId32:
		e.Byte(0x01)
		if j.Network == nil {
			e.OptionNone()
		} else {
			e.OptionSomePrefix()
			e.Byte(j.Network.tag)
		}
		e.Append(j.AccountId[:])
	}
}

// Junctions is the `Here | X1(j) | ... | X8(j,...,j)` tagged variant: a
// path of 0-8 Junction hops.
type Junctions struct {
	hops []Junction
}

// Here is the empty Junctions value.
func Here() Junctions { return Junctions{} }

// X builds a Junctions value from 1-8 hops.
func X(hops ...Junction) Junctions {
	if len(hops) > 8 {
		panic("xcm: Junctions supports at most 8 hops")
	}
	return Junctions{hops: hops}
}

func encodeJunctions(e *scale.Encoder, j Junctions) {
	e.Byte(byte(len(j.hops)))
	for _, h := range j.hops {
		encodeJunction(e, h)
	}
}

// Location identifies a point in the consensus universe relative to the
// encoding context.
type Location struct {
	Parents  uint8
	Interior Junctions
}

func encodeLocation(e *scale.Encoder, l Location) {
	e.Byte(l.Parents)
	encodeJunctions(e, l.Interior)
}

// Fungibility is `Fungible(Compact<u128>) | NonFungible(...)`; this core
// only produces the Fungible arm.
type Fungibility struct {
	Amount *big.Int
}

func Fungible(amount *big.Int) Fungibility {
	return Fungibility{Amount: amount}
}

func encodeFungibility(e *scale.Encoder, f Fungibility) {
	e.Byte(0x00)
	e.Compact(f.Amount)
}

// Asset is `{id: Location, fun: Fungibility}`.
type Asset struct {
	Id  Location
	Fun Fungibility
}

func encodeAsset(e *scale.Encoder, a Asset) {
	encodeLocation(e, a.Id)
	encodeFungibility(e, a.Fun)
}

// WeightLimit is `Unlimited | Limited{ref_time, proof_size}`.
type WeightLimit struct {
	limited   bool
	refTime   uint64
	proofSize uint64
}

func Unlimited() WeightLimit { return WeightLimit{} }

func Limited(refTime, proofSize uint64) WeightLimit {
	return WeightLimit{limited: true, refTime: refTime, proofSize: proofSize}
}

func encodeWeightLimit(e *scale.Encoder, w WeightLimit) {
	if !w.limited {
		e.Byte(0x00)
		return
	}
	e.Byte(0x01)
	e.CompactUint64(w.refTime)
	e.CompactUint64(w.proofSize)
}

// VersionedLocation is Location wrapped in the VersionedLocation enum,
// tagged V4 on encode.
type VersionedLocation struct {
	Location Location
}

func (v VersionedLocation) Encode() []byte {
	e := scale.NewEncoder()
	e.Byte(versionedTagV4)
	encodeLocation(e, v.Location)
	return e.Bytes()
}

// DecodeVersionedLocation decodes a VersionedLocation, accepting both the
// V4 and the still-common V3 wire tag. V3's Location shape is structurally
// identical to V4's for the fields this core reads (parents + interior
// junction path), so both tags share one decode path.
func DecodeVersionedLocation(d *scale.Decoder) (VersionedLocation, error) {
	tag, err := d.Byte()
	if err != nil {
		return VersionedLocation{}, err
	}
	if tag != versionedTagV3 && tag != versionedTagV4 {
		return VersionedLocation{}, errUnsupportedVersion(tag)
	}

	parents, err := d.Byte()
	if err != nil {
		return VersionedLocation{}, err
	}
	nHops, err := d.Byte()
	if err != nil {
		return VersionedLocation{}, err
	}

	hops := make([]Junction, 0, nHops)
	for i := byte(0); i < nHops; i++ {
		j, err := decodeJunction(d)
		if err != nil {
			return VersionedLocation{}, err
		}
		hops = append(hops, j)
	}

	return VersionedLocation{Location: Location{Parents: parents, Interior: Junctions{hops: hops}}}, nil
}

func decodeJunction(d *scale.Decoder) (Junction, error) {
	tag, err := d.Byte()
	if err != nil {
		return Junction{}, err
	}
	switch tag {
	case 0x00:
		id, err := d.CompactUint64()
		if err != nil {
			return Junction{}, err
		}
		return Parachain(uint32(id)), nil
	case 0x01:
		present, err := d.OptionSome()
		if err != nil {
			return Junction{}, err
		}
		var network *NetworkId
		if present {
			tag, err := d.Byte()
			if err != nil {
				return Junction{}, err
			}
			network = &NetworkId{tag}
		}
		raw, err := d.Bytes(32)
		if err != nil {
			return Junction{}, err
		}
		var id [32]byte
		copy(id[:], raw)
		return AccountId32(network, id), nil
	default:
		return Junction{}, errUnsupportedJunction(tag)
	}
}

// VersionedAssets is `Vec<Asset>` wrapped in the VersionedAssets enum.
type VersionedAssets struct {
	Assets []Asset
}

func (v VersionedAssets) Encode() []byte {
	e := scale.NewEncoder()
	e.Byte(versionedTagV4)
	e.VecLenPrefix(len(v.Assets))
	for _, a := range v.Assets {
		encodeAsset(e, a)
	}
	return e.Bytes()
}
