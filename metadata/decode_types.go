package metadata

import (
	"fmt"

	"github.com/snowfork/substrate-go/scale"
)

// decodeTypeRegistry decodes the V14/V15 `Vec<PortableType>` type
// registry into a dense TypeId -> Type map. Type identifiers and all
// cross-references between types are Compact<u32>, as is every other
// length-prefixed sequence in the metadata blob.
func decodeTypeRegistry(d *scale.Decoder) (map[TypeId]Type, error) {
	n, err := d.VecLen()
	if err != nil {
		return nil, errTruncated("type registry length", err)
	}

	registry := make(map[TypeId]Type, n)
	for i := 0; i < n; i++ {
		id, err := d.CompactUint64()
		if err != nil {
			return nil, errTruncated(fmt.Sprintf("type %d id", i), err)
		}

		ty, err := decodeType(d)
		if err != nil {
			return nil, errTruncated(fmt.Sprintf("type %d body", i), err)
		}

		registry[TypeId(id)] = ty
	}

	return registry, nil
}

func decodeType(d *scale.Decoder) (Type, error) {
	var t Type

	path, err := decodeStringVec(d)
	if err != nil {
		return t, fmt.Errorf("path: %w", err)
	}
	t.Path = joinPath(path)

	// type_params: Vec<{name: string, ty: Option<Compact<u32>>}> — consumed
	// and discarded; this core resolves calls/constants/signed-extensions
	// by TypeId, never by generic type parameters.
	nParams, err := d.VecLen()
	if err != nil {
		return t, fmt.Errorf("type_params length: %w", err)
	}
	for i := 0; i < nParams; i++ {
		if _, err := d.ByteVec(); err != nil {
			return t, fmt.Errorf("type_params[%d] name: %w", i, err)
		}
		present, err := d.OptionSome()
		if err != nil {
			return t, fmt.Errorf("type_params[%d] ty option: %w", i, err)
		}
		if present {
			if _, err := d.CompactUint64(); err != nil {
				return t, fmt.Errorf("type_params[%d] ty: %w", i, err)
			}
		}
	}

	tag, err := d.Byte()
	if err != nil {
		return t, fmt.Errorf("type_def tag: %w", err)
	}

	switch tag {
	case 0: // Composite
		t.Kind = KindComposite
		t.Fields, err = decodeFields(d)

	case 1: // Variant
		t.Kind = KindVariant
		t.Variants, err = decodeVariants(d)

	case 2: // Sequence
		t.Kind = KindSequence
		var elem uint64
		elem, err = d.CompactUint64()
		t.Elem = TypeId(elem)

	case 3: // Array
		t.Kind = KindArray
		t.ArrayLen, err = d.U32()
		if err == nil {
			var elem uint64
			elem, err = d.CompactUint64()
			t.Elem = TypeId(elem)
		}

	case 4: // Tuple
		t.Kind = KindTuple
		var n int
		n, err = d.VecLen()
		if err == nil {
			t.TupleElems = make([]TypeId, n)
			for i := 0; i < n; i++ {
				var elem uint64
				elem, err = d.CompactUint64()
				if err != nil {
					break
				}
				t.TupleElems[i] = TypeId(elem)
			}
		}

	case 5: // Primitive
		t.Kind = KindPrimitive
		var p byte
		p, err = d.Byte()
		if err == nil {
			if int(p) > int(PrimitiveI256) {
				return t, errBadVariant("TypeDefPrimitive", p)
			}
			t.Primitive = PrimitiveKind(p)
		}

	case 6: // Compact
		t.Kind = KindCompact
		var elem uint64
		elem, err = d.CompactUint64()
		t.Elem = TypeId(elem)

	case 7: // BitSequence
		t.Kind = KindBitSequence
		var store, order uint64
		store, err = d.CompactUint64()
		if err == nil {
			order, err = d.CompactUint64()
		}
		t.BitStoreType = TypeId(store)
		t.BitOrderType = TypeId(order)

	default:
		return t, errBadVariant("TypeDef", tag)
	}
	if err != nil {
		return t, err
	}

	t.Docs, err = decodeStringVec(d)
	if err != nil {
		return t, fmt.Errorf("docs: %w", err)
	}

	return t, nil
}

func decodeFields(d *scale.Decoder) ([]Field, error) {
	n, err := d.VecLen()
	if err != nil {
		return nil, err
	}
	fields := make([]Field, n)
	for i := 0; i < n; i++ {
		namePresent, err := d.OptionSome()
		if err != nil {
			return nil, fmt.Errorf("field[%d] name option: %w", i, err)
		}
		if namePresent {
			name, err := d.ByteVec()
			if err != nil {
				return nil, fmt.Errorf("field[%d] name: %w", i, err)
			}
			fields[i].Name = string(name)
		}

		ty, err := d.CompactUint64()
		if err != nil {
			return nil, fmt.Errorf("field[%d] ty: %w", i, err)
		}
		fields[i].Type = TypeId(ty)

		typeNamePresent, err := d.OptionSome()
		if err != nil {
			return nil, fmt.Errorf("field[%d] type_name option: %w", i, err)
		}
		if typeNamePresent {
			typeName, err := d.ByteVec()
			if err != nil {
				return nil, fmt.Errorf("field[%d] type_name: %w", i, err)
			}
			fields[i].TypeName = string(typeName)
		}

		docs, err := decodeStringVec(d)
		if err != nil {
			return nil, fmt.Errorf("field[%d] docs: %w", i, err)
		}
		fields[i].Docs = docs
	}
	return fields, nil
}

func decodeVariants(d *scale.Decoder) ([]VariantEntry, error) {
	n, err := d.VecLen()
	if err != nil {
		return nil, err
	}
	variants := make([]VariantEntry, n)
	for i := 0; i < n; i++ {
		name, err := d.ByteVec()
		if err != nil {
			return nil, fmt.Errorf("variant[%d] name: %w", i, err)
		}
		variants[i].Name = string(name)

		fields, err := decodeFields(d)
		if err != nil {
			return nil, fmt.Errorf("variant[%d] fields: %w", i, err)
		}
		variants[i].Fields = fields

		index, err := d.U8()
		if err != nil {
			return nil, fmt.Errorf("variant[%d] index: %w", i, err)
		}
		variants[i].Index = index

		docs, err := decodeStringVec(d)
		if err != nil {
			return nil, fmt.Errorf("variant[%d] docs: %w", i, err)
		}
		variants[i].Docs = docs
	}
	return variants, nil
}

func decodeStringVec(d *scale.Decoder) ([]string, error) {
	n, err := d.VecLen()
	if err != nil {
		return nil, err
	}
	out := make([]string, n)
	for i := 0; i < n; i++ {
		b, err := d.ByteVec()
		if err != nil {
			return nil, err
		}
		out[i] = string(b)
	}
	return out, nil
}

func joinPath(segments []string) string {
	out := ""
	for i, s := range segments {
		if i > 0 {
			out += "::"
		}
		out += s
	}
	return out
}
