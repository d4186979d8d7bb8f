package cmd

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/snowfork/substrate-go/extrinsic"
	"github.com/snowfork/substrate-go/keyring"
	"github.com/snowfork/substrate-go/metadata"
	"github.com/snowfork/substrate-go/rpc"
	"github.com/snowfork/substrate-go/rpc/wstransport"
	"github.com/snowfork/substrate-go/scale"
	"github.com/snowfork/substrate-go/signedext"
)

func schemeFromConfig(name string) keyring.Scheme {
	if strings.EqualFold(name, "sr25519") {
		return keyring.Sr25519
	}
	return keyring.Ed25519
}

func resolveKeypair(cfg Config) (*keyring.Keypair, error) {
	scheme := schemeFromConfig(cfg.Scheme)
	if strings.HasPrefix(cfg.Seed, "//") {
		return keyring.FromURI(cfg.Seed, scheme)
	}
	if strings.HasPrefix(cfg.Seed, "0x") || len(cfg.Seed) == 64 {
		return keyring.FromHexSeed(cfg.Seed, scheme)
	}
	return keyring.FromMnemonic(cfg.Seed, scheme)
}

// buildAndSubmit connects to cfg.Endpoint, fetches the metadata needed to
// build the call (via buildCall) and to sign it, then broadcasts the
// resulting extrinsic and logs its hash.
func buildAndSubmit(ctx context.Context, cfg Config, buildCall func(*metadata.Metadata) ([]byte, error)) error {
	kp, err := resolveKeypair(cfg)
	if err != nil {
		return fmt.Errorf("cmd: resolve keypair: %w", err)
	}
	defer kp.Zeroize()

	transport, err := wstransport.Dial(ctx, cfg.Endpoint)
	if err != nil {
		return fmt.Errorf("cmd: dial %s: %w", cfg.Endpoint, err)
	}
	defer transport.Close()

	client := rpc.NewClient(transport)

	md, err := client.StateGetMetadata(ctx)
	if err != nil {
		return fmt.Errorf("cmd: fetch metadata: %w", err)
	}

	callBytes, err := buildCall(md)
	if err != nil {
		return fmt.Errorf("cmd: build call: %w", err)
	}

	rv, err := client.StateGetRuntimeVersion(ctx)
	if err != nil {
		return fmt.Errorf("cmd: fetch runtime version: %w", err)
	}

	genesisHash, err := client.ChainGetBlockHash(ctx, zeroBlockNumber())
	if err != nil {
		return fmt.Errorf("cmd: fetch genesis hash: %w", err)
	}

	address, err := kp.Address(cfg.Ss58Prefix)
	if err != nil {
		return fmt.Errorf("cmd: derive address: %w", err)
	}

	nonce, err := client.NextIndex(ctx, address)
	if err != nil {
		return fmt.Errorf("cmd: fetch nonce: %w", err)
	}

	signed, err := extrinsic.BuildSigned(callBytes, kp, md, signedext.Params{
		SpecVersion:        rv.SpecVersion,
		TransactionVersion: rv.TransactionVersion,
		GenesisHash:        genesisHash,
		CheckpointHash:     genesisHash,
		Nonce:              uint64(nonce),
		Era:                signedext.Immortal(),
	})
	if err != nil {
		return fmt.Errorf("cmd: build extrinsic: %w", err)
	}

	hash, err := client.AuthorSubmitExtrinsic(ctx, signed)
	if err != nil {
		return fmt.Errorf("cmd: submit extrinsic: %w", err)
	}

	log.WithFields(log.Fields{
		"address": address,
		"nonce":   nonce,
		"hash":    scale.HexEncode(hash[:]),
	}).Info("submitted extrinsic")

	return nil
}

func zeroBlockNumber() *uint64 {
	var n uint64
	return &n
}

func parseAccountId(hexAddr string) ([32]byte, error) {
	var out [32]byte
	b, err := scale.HexDecode(hexAddr)
	if err != nil {
		return out, fmt.Errorf("cmd: invalid account id %q: %w", hexAddr, err)
	}
	if len(b) != 32 {
		return out, fmt.Errorf("cmd: account id %q must decode to 32 bytes, got %d", hexAddr, len(b))
	}
	copy(out[:], b)
	return out, nil
}
