package rpc_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/snowfork/substrate-go/rpc"
	"github.com/snowfork/substrate-go/scale"
	"github.com/stretchr/testify/require"
)

type fakeTransport struct {
	calls     int
	responses map[string]json.RawMessage
	errors    map[string]error
}

func (f *fakeTransport) Call(_ context.Context, method string, _ ...interface{}) (json.RawMessage, error) {
	f.calls++
	if err, ok := f.errors[method]; ok {
		return nil, err
	}
	raw, ok := f.responses[method]
	if !ok {
		return nil, fmt.Errorf("fakeTransport: no stubbed response for %s", method)
	}
	return raw, nil
}

func (f *fakeTransport) Subscribe(context.Context, string, string, string, ...interface{}) (rpc.Subscription, error) {
	return nil, fmt.Errorf("fakeTransport: Subscribe not stubbed")
}

func jsonRaw(t *testing.T, v interface{}) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func TestStateGetRuntimeVersionIsMemoized(t *testing.T) {
	transport := &fakeTransport{
		responses: map[string]json.RawMessage{
			"state_getRuntimeVersion": jsonRaw(t, map[string]interface{}{
				"specVersion":        100,
				"transactionVersion": 5,
			}),
		},
	}
	client := rpc.NewClient(transport)

	v1, err := client.StateGetRuntimeVersion(context.Background())
	require.NoError(t, err)
	require.Equal(t, uint32(100), v1.SpecVersion)

	v2, err := client.StateGetRuntimeVersion(context.Background())
	require.NoError(t, err)
	require.Equal(t, v1, v2)
	require.Equal(t, 1, transport.calls) // second call served from cache
}

func TestStateGetMetadataParsesHexBlob(t *testing.T) {
	e := scale.NewEncoder()
	e.Append([]byte("meta"))
	e.Byte(14)
	e.VecLenPrefix(0)
	e.VecLenPrefix(0)
	e.CompactUint64(0)
	e.Byte(4)
	e.VecLenPrefix(0)

	transport := &fakeTransport{
		responses: map[string]json.RawMessage{
			"state_getMetadata": jsonRaw(t, scale.HexEncode(e.Bytes())),
		},
	}
	client := rpc.NewClient(transport)

	m, err := client.StateGetMetadata(context.Background())
	require.NoError(t, err)
	require.Equal(t, byte(14), m.Version)
}

func TestChainGetBlockHashDecodesHash(t *testing.T) {
	hash := [32]byte{1, 2, 3}
	transport := &fakeTransport{
		responses: map[string]json.RawMessage{
			"chain_getBlockHash": jsonRaw(t, scale.HexEncode(hash[:])),
		},
	}
	client := rpc.NewClient(transport)

	got, err := client.ChainGetBlockHash(context.Background(), nil)
	require.NoError(t, err)
	require.Equal(t, hash, got)
}

func TestStateGetStorageAbsentKey(t *testing.T) {
	transport := &fakeTransport{
		responses: map[string]json.RawMessage{
			"state_getStorage": jsonRaw(t, nil),
		},
	}
	client := rpc.NewClient(transport)

	_, present, err := client.StateGetStorage(context.Background(), []byte("key"), nil)
	require.NoError(t, err)
	require.False(t, present)
}

func TestCallErrorSurfacesRpcCallKind(t *testing.T) {
	transport := &fakeTransport{
		errors: map[string]error{
			"system_dryRun": rpc.CallError(1010, "Invalid Transaction"),
		},
	}
	client := rpc.NewClient(transport)

	_, err := client.DryRun(context.Background(), []byte{1, 2, 3}, nil)
	require.Error(t, err)

	var rerr *rpc.Error
	require.ErrorAs(t, err, &rerr)
	require.Equal(t, rpc.KindCall, rerr.Kind)
}
