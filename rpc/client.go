// Package rpc is a thin typed adapter over an abstract JsonRpcTransport,
// exposing the chain/state/system/author methods this core needs, with
// metadata and runtime-version results memoized behind a single mutex
// until explicitly invalidated.
package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"sync"

	"github.com/snowfork/substrate-go/metadata"
	"github.com/snowfork/substrate-go/scale"
)

// RuntimeVersion is the subset of `state_getRuntimeVersion`'s JSON result
// this core's signed-extension engine needs.
type RuntimeVersion struct {
	SpecVersion        uint32 `json:"specVersion"`
	TransactionVersion uint32 `json:"transactionVersion"`
}

// ChainProperties is `system_properties`'s result; every field is
// optional since not every runtime declares it.
type ChainProperties struct {
	Ss58Prefix    *uint16 `json:"ss58Format"`
	TokenDecimals *uint32 `json:"tokenDecimals"`
	TokenSymbol   *string `json:"tokenSymbol"`
}

// Client is the RPC facade. It is safe for concurrent use; the cache
// lock serializes the rare write path (first access, explicit
// Invalidate) against readers.
type Client struct {
	transport JsonRpcTransport

	mu             sync.Mutex
	metadata       *metadata.Metadata
	runtimeVersion *RuntimeVersion
}

// NewClient wraps transport. transport.Call/Subscribe are the only
// points this facade may block.
func NewClient(transport JsonRpcTransport) *Client {
	return &Client{transport: transport}
}

func (c *Client) call(ctx context.Context, method string, params ...interface{}) (json.RawMessage, error) {
	raw, err := c.transport.Call(ctx, method, params...)
	if err != nil {
		var rerr *Error
		if errors.As(err, &rerr) {
			return nil, err
		}
		return nil, errTransport(method, err)
	}
	return raw, nil
}

func decodeHexResult(raw json.RawMessage) ([]byte, error) {
	var hexStr string
	if err := json.Unmarshal(raw, &hexStr); err != nil {
		return nil, errResponseMalformed("expected hex string result", err)
	}
	return scale.HexDecode(hexStr)
}

func decodeHash32Result(raw json.RawMessage) ([32]byte, error) {
	var out [32]byte
	b, err := decodeHexResult(raw)
	if err != nil {
		return out, err
	}
	if len(b) != 32 {
		return out, errResponseMalformed(fmt.Sprintf("expected 32 bytes, got %d", len(b)), nil)
	}
	copy(out[:], b)
	return out, nil
}

// ChainGetBlockHash resolves a block number to its hash; number == nil
// requests the hash of the best block.
func (c *Client) ChainGetBlockHash(ctx context.Context, number *uint64) ([32]byte, error) {
	var raw json.RawMessage
	var err error
	if number == nil {
		raw, err = c.call(ctx, "chain_getBlockHash")
	} else {
		raw, err = c.call(ctx, "chain_getBlockHash", *number)
	}
	if err != nil {
		return [32]byte{}, err
	}
	return decodeHash32Result(raw)
}

// ChainGetFinalizedHead returns the hash of the most recently finalized block.
func (c *Client) ChainGetFinalizedHead(ctx context.Context) ([32]byte, error) {
	raw, err := c.call(ctx, "chain_getFinalizedHead")
	if err != nil {
		return [32]byte{}, err
	}
	return decodeHash32Result(raw)
}

// StateGetRuntimeVersion returns the chain's runtime version, memoized
// after the first successful call.
func (c *Client) StateGetRuntimeVersion(ctx context.Context) (RuntimeVersion, error) {
	c.mu.Lock()
	if c.runtimeVersion != nil {
		v := *c.runtimeVersion
		c.mu.Unlock()
		return v, nil
	}
	c.mu.Unlock()

	raw, err := c.call(ctx, "state_getRuntimeVersion")
	if err != nil {
		return RuntimeVersion{}, err
	}

	var v RuntimeVersion
	if err := json.Unmarshal(raw, &v); err != nil {
		return RuntimeVersion{}, errResponseMalformed("malformed runtime version", err)
	}

	c.mu.Lock()
	c.runtimeVersion = &v
	c.mu.Unlock()

	return v, nil
}

// StateGetMetadata returns the chain's parsed runtime metadata, memoized
// after the first successful call.
func (c *Client) StateGetMetadata(ctx context.Context) (*metadata.Metadata, error) {
	c.mu.Lock()
	if c.metadata != nil {
		m := c.metadata
		c.mu.Unlock()
		return m, nil
	}
	c.mu.Unlock()

	raw, err := c.call(ctx, "state_getMetadata")
	if err != nil {
		return nil, err
	}

	blob, err := decodeHexResult(raw)
	if err != nil {
		return nil, err
	}

	m, err := metadata.Parse(blob)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.metadata = m
	c.mu.Unlock()

	return m, nil
}

// Invalidate clears the memoized metadata and runtime version, forcing
// the next call to each to refetch.
func (c *Client) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.metadata = nil
	c.runtimeVersion = nil
}

// StateGetStorage reads a raw storage value at key, optionally at a
// specific block hash. A false second result means the key is absent.
func (c *Client) StateGetStorage(ctx context.Context, key []byte, at *[32]byte) ([]byte, bool, error) {
	params := []interface{}{scale.HexEncode(key)}
	if at != nil {
		params = append(params, scale.HexEncode(at[:]))
	}

	raw, err := c.call(ctx, "state_getStorage", params...)
	if err != nil {
		return nil, false, err
	}

	var hexStr *string
	if err := json.Unmarshal(raw, &hexStr); err != nil {
		return nil, false, errResponseMalformed("malformed storage result", err)
	}
	if hexStr == nil {
		return nil, false, nil
	}

	b, err := scale.HexDecode(*hexStr)
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

// GetKeys enumerates storage keys sharing prefix, optionally at a
// specific block hash.
func (c *Client) GetKeys(ctx context.Context, prefix []byte, at *[32]byte) ([][]byte, error) {
	params := []interface{}{scale.HexEncode(prefix)}
	if at != nil {
		params = append(params, scale.HexEncode(at[:]))
	}

	raw, err := c.call(ctx, "state_getKeys", params...)
	if err != nil {
		return nil, err
	}

	var hexKeys []string
	if err := json.Unmarshal(raw, &hexKeys); err != nil {
		return nil, errResponseMalformed("malformed keys result", err)
	}

	keys := make([][]byte, len(hexKeys))
	for i, h := range hexKeys {
		b, err := scale.HexDecode(h)
		if err != nil {
			return nil, err
		}
		keys[i] = b
	}
	return keys, nil
}

// SystemProperties returns the chain's advertised SS58 prefix, token
// decimals, and token symbol.
func (c *Client) SystemProperties(ctx context.Context) (ChainProperties, error) {
	raw, err := c.call(ctx, "system_properties")
	if err != nil {
		return ChainProperties{}, err
	}

	var props ChainProperties
	if err := json.Unmarshal(raw, &props); err != nil {
		return ChainProperties{}, errResponseMalformed("malformed chain properties", err)
	}
	return props, nil
}

// NextIndex returns the next nonce the runtime considers valid for
// address, accounting for transactions still in the pool. This is the
// preferred pre-flight nonce source; SystemAccount's decoded
// AccountInfo.Nonce reflects only on-chain state.
func (c *Client) NextIndex(ctx context.Context, address string) (uint32, error) {
	raw, err := c.call(ctx, "system_accountNextIndex", address)
	if err != nil {
		return 0, err
	}

	var n uint32
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, errResponseMalformed("malformed account nonce", err)
	}
	return n, nil
}

// DryRunOutcome is the decoded result of system_dryRun: whether the
// runtime would have applied the extrinsic, and if not, why.
type DryRunOutcome struct {
	Ok       bool
	RawError []byte
}

// DryRun submits extrinsicBytes for dry-run application without
// broadcasting it, optionally against a specific block hash.
func (c *Client) DryRun(ctx context.Context, extrinsicBytes []byte, at *[32]byte) (DryRunOutcome, error) {
	params := []interface{}{scale.HexEncode(extrinsicBytes)}
	if at != nil {
		params = append(params, scale.HexEncode(at[:]))
	}

	raw, err := c.call(ctx, "system_dryRun", params...)
	if err != nil {
		return DryRunOutcome{}, err
	}

	b, err := decodeHexResult(raw)
	if err != nil {
		return DryRunOutcome{}, err
	}

	// ApplyExtrinsicResult = Result<DispatchOutcome, TransactionValidityError>;
	// Result tags Ok as 0x00 and Err as 0x01 (the reverse sense of Option's
	// None/Some), so this is read directly rather than via OptionSome.
	d := scale.NewDecoder(b)
	tag, err := d.Byte()
	if err != nil {
		return DryRunOutcome{}, err
	}
	if tag == 0x00 {
		return DryRunOutcome{Ok: true}, nil
	}
	return DryRunOutcome{Ok: false, RawError: b[d.Offset():]}, nil
}

// AuthorSubmitExtrinsic broadcasts a signed extrinsic and returns its hash.
func (c *Client) AuthorSubmitExtrinsic(ctx context.Context, extrinsicBytes []byte) ([32]byte, error) {
	raw, err := c.call(ctx, "author_submitExtrinsic", scale.HexEncode(extrinsicBytes))
	if err != nil {
		return [32]byte{}, err
	}
	return decodeHash32Result(raw)
}
