// Package metadata decodes a V14/V15 runtime metadata blob into a
// queryable index: the type registry, the pallet list, and the ordered
// signed-extension list, together with the lookups the rest of this
// module needs (call indices, constant values, signed-extension order).
//
// Parsing is all-or-nothing: Parse either returns a fully populated
// Metadata or an error, never a partially built value.
package metadata

import (
	"bytes"
	"fmt"

	"github.com/snowfork/substrate-go/scale"
)

var magic = [4]byte{'m', 'e', 't', 'a'}

const (
	versionV14 = 14
	versionV15 = 15
)

// Metadata is the parsed, queryable form of a runtime metadata blob.
type Metadata struct {
	Version   byte
	Types     map[TypeId]Type
	Pallets   []PalletInfo
	Extension []SignedExtensionMeta

	palletByName map[string]*PalletInfo
}

// Parse decodes a runtime metadata blob, validating the "meta" magic
// prefix and a version byte of 14 or 15. Any other version, or a
// truncated/malformed blob, is rejected without returning a partial
// value.
func Parse(blob []byte) (*Metadata, error) {
	if len(blob) < 5 || !bytes.Equal(blob[:4], magic[:]) {
		return nil, errMagicMissing()
	}

	version := blob[4]
	if version != versionV14 && version != versionV15 {
		return nil, errUnsupportedVersion(version)
	}

	d := scale.NewDecoder(blob[5:])

	types, err := decodeTypeRegistry(d)
	if err != nil {
		return nil, fmt.Errorf("metadata: type registry: %w", err)
	}

	pallets, err := decodePalletList(d)
	if err != nil {
		return nil, fmt.Errorf("metadata: pallets: %w", err)
	}

	// ExtrinsicMetadata{ty: TypeId, version: u8, signed_extensions: Vec<...>}
	if _, err := d.CompactUint64(); err != nil {
		return nil, fmt.Errorf("metadata: extrinsic type: %w", err)
	}
	if _, err := d.Byte(); err != nil {
		return nil, fmt.Errorf("metadata: extrinsic version: %w", err)
	}
	extensions, err := decodeSignedExtensions(d)
	if err != nil {
		return nil, fmt.Errorf("metadata: signed extensions: %w", err)
	}

	m := &Metadata{
		Version:      version,
		Types:        types,
		Pallets:      pallets,
		Extension:    extensions,
		palletByName: make(map[string]*PalletInfo, len(pallets)),
	}
	for i := range m.Pallets {
		m.palletByName[m.Pallets[i].Name] = &m.Pallets[i]
	}

	return m, nil
}

// Pallet looks up a pallet by its declared (case-sensitive) name.
func (m *Metadata) Pallet(name string) (*PalletInfo, error) {
	p, ok := m.palletByName[name]
	if !ok {
		return nil, PalletNotFound(name)
	}
	return p, nil
}

// CallIndex resolves a (pallet, call) name pair to the pallet index and
// the call's declared variant index, which may be non-contiguous with
// its siblings. Names are matched case-sensitively, exactly as declared
// in the metadata.
func (m *Metadata) CallIndex(pallet, call string) (palletIndex, callIndex uint8, err error) {
	p, err := m.Pallet(pallet)
	if err != nil {
		return 0, 0, err
	}
	if !p.HasCalls {
		return 0, 0, CallNotFound(pallet, call)
	}

	callsType, ok := m.Types[p.CallsType]
	if !ok || callsType.Kind != KindVariant {
		return 0, 0, CallNotFound(pallet, call)
	}

	for _, v := range callsType.Variants {
		if v.Name == call {
			return p.Index, v.Index, nil
		}
	}
	return 0, 0, CallNotFound(pallet, call)
}

// SignedExtensionOrder reports the signed extensions in the exact order
// the runtime declares them, which is also the order their `extra` and
// `additional_signed` bytes must be concatenated in.
func (m *Metadata) SignedExtensionOrder() []string {
	order := make([]string, len(m.Extension))
	for i, e := range m.Extension {
		order[i] = e.Identifier
	}
	return order
}

// SignedExtension looks up one signed extension's metadata by identifier.
func (m *Metadata) SignedExtension(identifier string) (SignedExtensionMeta, error) {
	for _, e := range m.Extension {
		if e.Identifier == identifier {
			return e, nil
		}
	}
	return SignedExtensionMeta{}, UnsupportedSignedExtension(identifier)
}

// Constant returns the raw SCALE-encoded bytes of a pallet constant.
func (m *Metadata) Constant(pallet, name string) ([]byte, error) {
	p, err := m.Pallet(pallet)
	if err != nil {
		return nil, err
	}
	for _, c := range p.Constants {
		if c.Name == name {
			return c.Value, nil
		}
	}
	return nil, &Error{Kind: KindConstantNotFound, Message: fmt.Sprintf("constant %q not found in pallet %q", name, pallet)}
}

// Type looks up a registry entry by id.
func (m *Metadata) Type(id TypeId) (Type, error) {
	t, ok := m.Types[id]
	if !ok {
		return Type{}, &Error{Kind: KindTypeNotFound, Message: fmt.Sprintf("type id %d not found", id)}
	}
	return t, nil
}
