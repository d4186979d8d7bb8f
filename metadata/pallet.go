package metadata

import (
	"fmt"

	"github.com/snowfork/substrate-go/scale"
)

// StorageEntry describes one storage item declared by a pallet. Only its
// name, docs and key type are retained.
type StorageEntry struct {
	Name    string
	Docs    []string
	KeyType TypeId
}

// PalletConstant is a compile-time constant a pallet exposes, with its
// SCALE-encoded value already extracted from the metadata blob.
type PalletConstant struct {
	Name  string
	Type  TypeId
	Value []byte
	Docs  []string
}

// PalletInfo is one pallet's metadata entry, decoded in the exact V14
// field order: name, storage?, calls?, events?, constants, errors?,
// index, docs.
type PalletInfo struct {
	Name      string
	HasStorage bool
	CallsType  TypeId
	HasCalls   bool
	EventsType TypeId
	HasEvents  bool
	Constants  []PalletConstant
	ErrorsType TypeId
	HasErrors  bool
	Index      uint8
	Docs       []string
	Storage    []StorageEntry
}

func decodePalletList(d *scale.Decoder) ([]PalletInfo, error) {
	n, err := d.VecLen()
	if err != nil {
		return nil, fmt.Errorf("pallet list length: %w", err)
	}

	pallets := make([]PalletInfo, n)
	for i := 0; i < n; i++ {
		p, err := decodePallet(d)
		if err != nil {
			return nil, fmt.Errorf("pallet[%d]: %w", i, err)
		}
		pallets[i] = p
	}
	return pallets, nil
}

func decodePallet(d *scale.Decoder) (PalletInfo, error) {
	var p PalletInfo

	name, err := d.ByteVec()
	if err != nil {
		return p, fmt.Errorf("name: %w", err)
	}
	p.Name = string(name)

	storagePresent, err := d.OptionSome()
	if err != nil {
		return p, fmt.Errorf("storage option: %w", err)
	}
	if storagePresent {
		p.HasStorage = true
		// PalletStorageMetadata{prefix: string, entries: Vec<StorageEntryMetadata>}
		if _, err := d.ByteVec(); err != nil {
			return p, fmt.Errorf("storage prefix: %w", err)
		}
		entries, err := decodeStorageEntries(d)
		if err != nil {
			return p, fmt.Errorf("storage entries: %w", err)
		}
		p.Storage = entries
	}

	callsPresent, err := d.OptionSome()
	if err != nil {
		return p, fmt.Errorf("calls option: %w", err)
	}
	if callsPresent {
		p.HasCalls = true
		ty, err := d.CompactUint64()
		if err != nil {
			return p, fmt.Errorf("calls type: %w", err)
		}
		p.CallsType = TypeId(ty)
	}

	eventsPresent, err := d.OptionSome()
	if err != nil {
		return p, fmt.Errorf("events option: %w", err)
	}
	if eventsPresent {
		p.HasEvents = true
		ty, err := d.CompactUint64()
		if err != nil {
			return p, fmt.Errorf("events type: %w", err)
		}
		p.EventsType = TypeId(ty)
	}

	constants, err := decodeConstants(d)
	if err != nil {
		return p, fmt.Errorf("constants: %w", err)
	}
	p.Constants = constants

	errorsPresent, err := d.OptionSome()
	if err != nil {
		return p, fmt.Errorf("errors option: %w", err)
	}
	if errorsPresent {
		p.HasErrors = true
		ty, err := d.CompactUint64()
		if err != nil {
			return p, fmt.Errorf("errors type: %w", err)
		}
		p.ErrorsType = TypeId(ty)
	}

	index, err := d.U8()
	if err != nil {
		return p, fmt.Errorf("index: %w", err)
	}
	p.Index = index

	docs, err := decodeStringVec(d)
	if err != nil {
		return p, fmt.Errorf("docs: %w", err)
	}
	p.Docs = docs

	return p, nil
}

func decodeStorageEntries(d *scale.Decoder) ([]StorageEntry, error) {
	n, err := d.VecLen()
	if err != nil {
		return nil, err
	}
	entries := make([]StorageEntry, n)
	for i := 0; i < n; i++ {
		name, err := d.ByteVec()
		if err != nil {
			return nil, fmt.Errorf("entry[%d] name: %w", i, err)
		}
		entries[i].Name = string(name)

		// modifier: StorageEntryModifier (Optional=0, Default=1)
		if _, err := d.Byte(); err != nil {
			return nil, fmt.Errorf("entry[%d] modifier: %w", i, err)
		}

		// ty: StorageEntryType — Plain(TypeId) = 0, Map{hashers,key,value} = 1
		tag, err := d.Byte()
		if err != nil {
			return nil, fmt.Errorf("entry[%d] storage type tag: %w", i, err)
		}
		switch tag {
		case 0:
			keyType, err := d.CompactUint64()
			if err != nil {
				return nil, fmt.Errorf("entry[%d] plain type: %w", i, err)
			}
			entries[i].KeyType = TypeId(keyType)
		case 1:
			nHashers, err := d.VecLen()
			if err != nil {
				return nil, fmt.Errorf("entry[%d] hashers length: %w", i, err)
			}
			for h := 0; h < nHashers; h++ {
				if _, err := d.Byte(); err != nil {
					return nil, fmt.Errorf("entry[%d] hasher[%d]: %w", i, h, err)
				}
			}
			keyType, err := d.CompactUint64()
			if err != nil {
				return nil, fmt.Errorf("entry[%d] map key type: %w", i, err)
			}
			entries[i].KeyType = TypeId(keyType)
			if _, err := d.CompactUint64(); err != nil {
				return nil, fmt.Errorf("entry[%d] map value type: %w", i, err)
			}
		default:
			return nil, errBadVariant("StorageEntryType", tag)
		}

		// default: Vec<u8>, docs: Vec<string>
		if _, err := d.ByteVec(); err != nil {
			return nil, fmt.Errorf("entry[%d] default: %w", i, err)
		}
		docs, err := decodeStringVec(d)
		if err != nil {
			return nil, fmt.Errorf("entry[%d] docs: %w", i, err)
		}
		entries[i].Docs = docs
	}
	return entries, nil
}

func decodeConstants(d *scale.Decoder) ([]PalletConstant, error) {
	n, err := d.VecLen()
	if err != nil {
		return nil, err
	}
	constants := make([]PalletConstant, n)
	for i := 0; i < n; i++ {
		name, err := d.ByteVec()
		if err != nil {
			return nil, fmt.Errorf("constant[%d] name: %w", i, err)
		}
		constants[i].Name = string(name)

		ty, err := d.CompactUint64()
		if err != nil {
			return nil, fmt.Errorf("constant[%d] type: %w", i, err)
		}
		constants[i].Type = TypeId(ty)

		value, err := d.ByteVec()
		if err != nil {
			return nil, fmt.Errorf("constant[%d] value: %w", i, err)
		}
		constants[i].Value = value

		docs, err := decodeStringVec(d)
		if err != nil {
			return nil, fmt.Errorf("constant[%d] docs: %w", i, err)
		}
		constants[i].Docs = docs
	}
	return constants, nil
}
