// Package render turns a parsed *metadata.Metadata into a human-readable
// text report — a pallet/call table useful for debugging and
// documentation, not a core decoding concern.
package render

import (
	"fmt"

	"github.com/cbroglie/mustache"
	"github.com/snowfork/substrate-go/metadata"
)

const reportTemplate = `Runtime metadata (v{{version}})
{{#pallets}}
Pallet {{Index}}: {{Name}}
{{#Calls}}
  [{{Index}}] {{Name}}
{{/Calls}}
{{^Calls}}
  (no calls)
{{/Calls}}
{{/pallets}}
`

type callRow struct {
	Index uint8
	Name  string
}

type palletRow struct {
	Index uint8
	Name  string
	Calls []callRow
}

// Report renders md as a pallet/call table via mustache.
func Report(md *metadata.Metadata) (string, error) {
	pallets := make([]palletRow, 0, len(md.Pallets))

	for _, p := range md.Pallets {
		row := palletRow{Index: p.Index, Name: p.Name}

		if p.HasCalls {
			callsType, err := md.Type(p.CallsType)
			if err != nil {
				return "", fmt.Errorf("render: pallet %q calls type: %w", p.Name, err)
			}
			for _, v := range callsType.Variants {
				row.Calls = append(row.Calls, callRow{Index: v.Index, Name: v.Name})
			}
		}

		pallets = append(pallets, row)
	}

	out, err := mustache.Render(reportTemplate, map[string]interface{}{
		"version": md.Version,
		"pallets": pallets,
	})
	if err != nil {
		return "", fmt.Errorf("render: %w", err)
	}
	return out, nil
}
