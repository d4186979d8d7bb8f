// Package keyring implements the Keypair lifecycle of spec.md §3: a
// signing identity created from a 32-byte seed, a hex seed, a BIP39
// mnemonic, or a well-known development URI, immutable once constructed
// and zeroized when no longer needed.
package keyring

import (
	"fmt"
	"strings"

	"github.com/cosmos/go-bip39"
	"github.com/snowfork/substrate-go/crypto"
)

// Scheme selects the signature algorithm a Keypair uses.
type Scheme = crypto.Scheme

const (
	Ed25519 = crypto.SchemeEd25519
	Sr25519 = crypto.SchemeSr25519
)

// Keypair is an immutable signing identity. The seed is held for the
// lifetime of the value; call Zeroize when the caller is done with it to
// wipe the seed from memory (Go cannot guarantee this survives a GC copy,
// but it removes the only long-lived reference this package holds).
type Keypair struct {
	scheme crypto.Scheme
	seed   [32]byte
	public [32]byte
	cap    crypto.Capability
}

var wellKnownSeeds = map[string][32]byte{
	"//Alice": {
		0xe5, 0xbe, 0x9a, 0x5d, 0x47, 0x91, 0x52, 0x94,
		0x65, 0xb5, 0x45, 0xf0, 0x90, 0x9b, 0x37, 0x3c,
		0xc0, 0xeb, 0x6a, 0xfa, 0x32, 0xf7, 0xcf, 0xa2,
		0x18, 0xf1, 0x9a, 0x9d, 0x60, 0x6b, 0x32, 0x6e,
	},
	"//Bob": {
		0x39, 0x8f, 0x0c, 0x28, 0xf9, 0x98, 0x08, 0x53,
		0xad, 0x30, 0x26, 0x03, 0xa8, 0x45, 0xa9, 0xc6,
		0x74, 0xee, 0x34, 0x3e, 0x9b, 0x5f, 0x08, 0xd5,
		0x4c, 0xab, 0x90, 0x70, 0xf1, 0x7e, 0xb5, 0x2c,
	},
}

// FromSeed constructs a Keypair directly from a 32-byte seed.
func FromSeed(seed [32]byte, scheme crypto.Scheme) (*Keypair, error) {
	return newKeypair(seed, scheme, crypto.New())
}

// FromHexSeed accepts a 0x-prefixed or bare hex-encoded 32-byte seed.
func FromHexSeed(hexSeed string, scheme crypto.Scheme) (*Keypair, error) {
	s := strings.TrimPrefix(hexSeed, "0x")
	if len(s) != 64 {
		return nil, fmt.Errorf("keyring: hex seed must decode to 32 bytes, got %d hex chars", len(s))
	}
	var seed [32]byte
	for i := 0; i < 32; i++ {
		var b byte
		if _, err := fmt.Sscanf(s[i*2:i*2+2], "%02x", &b); err != nil {
			return nil, fmt.Errorf("keyring: invalid hex seed: %w", err)
		}
		seed[i] = b
	}
	return newKeypair(seed, scheme, crypto.New())
}

// FromMnemonic derives a seed from a BIP39 mnemonic phrase (no passphrase).
func FromMnemonic(mnemonic string, scheme crypto.Scheme) (*Keypair, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, fmt.Errorf("keyring: invalid BIP39 mnemonic")
	}
	entropy, err := bip39.NewSeedWithErrorChecking(mnemonic, "")
	if err != nil {
		return nil, fmt.Errorf("keyring: %w", err)
	}
	var seed [32]byte
	copy(seed[:], entropy[:32])
	return newKeypair(seed, scheme, crypto.New())
}

// FromURI resolves a well-known development URI such as "//Alice" into
// its canonical seed. Arbitrary derivation paths are not supported by
// this core; callers needing them should derive the seed externally and
// use FromSeed/FromHexSeed.
func FromURI(uri string, scheme crypto.Scheme) (*Keypair, error) {
	seed, ok := wellKnownSeeds[uri]
	if !ok {
		return nil, fmt.Errorf("keyring: unrecognized well-known URI %q", uri)
	}
	return newKeypair(seed, scheme, crypto.New())
}

func newKeypair(seed [32]byte, scheme crypto.Scheme, cap crypto.Capability) (*Keypair, error) {
	var public [32]byte
	var err error
	switch scheme {
	case crypto.SchemeEd25519:
		public, err = cap.Ed25519KeypairFromSeed(seed)
	case crypto.SchemeSr25519:
		public, err = cap.Sr25519KeypairFromSeed(seed)
	default:
		return nil, fmt.Errorf("keyring: unsupported scheme %d", scheme)
	}
	if err != nil {
		return nil, err
	}
	return &Keypair{scheme: scheme, seed: seed, public: public, cap: cap}, nil
}

// Scheme reports which signature algorithm this keypair uses.
func (kp *Keypair) Scheme() crypto.Scheme { return kp.scheme }

// Public returns the 32-byte public key.
func (kp *Keypair) Public() [32]byte { return kp.public }

// Address renders the SS58 address for this keypair under the given
// network prefix.
func (kp *Keypair) Address(networkPrefix uint16) (string, error) {
	return kp.cap.Ss58Encode(kp.public, networkPrefix)
}

// Sign produces a signature over msg using this keypair's scheme.
func (kp *Keypair) Sign(msg []byte) ([64]byte, error) {
	switch kp.scheme {
	case crypto.SchemeEd25519:
		return kp.cap.Ed25519Sign(kp.seed, msg)
	case crypto.SchemeSr25519:
		return kp.cap.Sr25519Sign(kp.seed, msg)
	default:
		return [64]byte{}, fmt.Errorf("keyring: unsupported scheme %d", kp.scheme)
	}
}

// Zeroize overwrites the seed held by this keypair. After calling it, the
// Keypair must not be used for signing.
func (kp *Keypair) Zeroize() {
	for i := range kp.seed {
		kp.seed[i] = 0
	}
}
