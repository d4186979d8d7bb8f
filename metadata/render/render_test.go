package render_test

import (
	"strings"
	"testing"

	"github.com/snowfork/substrate-go/metadata"
	"github.com/snowfork/substrate-go/metadata/render"
	"github.com/snowfork/substrate-go/scale"
	"github.com/stretchr/testify/require"
)

func buildMetadata(t *testing.T) *metadata.Metadata {
	t.Helper()

	e := scale.NewEncoder()
	e.Append([]byte("meta"))
	e.Byte(14)

	e.VecLenPrefix(1)
	e.CompactUint64(0)
	e.VecLenPrefix(0)
	e.VecLenPrefix(0)
	e.Byte(1) // Variant
	e.VecLenPrefix(1)
	e.ByteVec([]byte("remark"))
	e.VecLenPrefix(0)
	e.Byte(0)
	e.VecLenPrefix(0)
	e.VecLenPrefix(0)

	e.VecLenPrefix(1)
	e.ByteVec([]byte("System"))
	e.OptionNone()
	e.OptionSomePrefix()
	e.CompactUint64(0)
	e.OptionNone()
	e.VecLenPrefix(0)
	e.OptionNone()
	e.Byte(0)
	e.VecLenPrefix(0)

	e.CompactUint64(0)
	e.Byte(4)
	e.VecLenPrefix(0)

	m, err := metadata.Parse(e.Bytes())
	require.NoError(t, err)
	return m
}

func TestReportIncludesPalletAndCallNames(t *testing.T) {
	m := buildMetadata(t)

	out, err := render.Report(m)
	require.NoError(t, err)
	require.True(t, strings.Contains(out, "System"))
	require.True(t, strings.Contains(out, "remark"))
}
