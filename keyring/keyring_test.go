package keyring

import (
	"testing"

	"github.com/snowfork/substrate-go/crypto"
	"github.com/stretchr/testify/require"
)

func TestFromURIWellKnown(t *testing.T) {
	kp, err := FromURI("//Alice", Ed25519)
	require.NoError(t, err)

	addr, err := kp.Address(42)
	require.NoError(t, err)
	require.NotEmpty(t, addr)
}

func TestFromURIUnknown(t *testing.T) {
	_, err := FromURI("//NotARealAccount", Ed25519)
	require.Error(t, err)
}

func TestFromHexSeedRoundTrip(t *testing.T) {
	kp1, err := FromSeed([32]byte{1, 2, 3}, Ed25519)
	require.NoError(t, err)

	kp2, err := FromHexSeed("0x0102030000000000000000000000000000000000000000000000000000000000", Ed25519)
	require.NoError(t, err)
	require.Equal(t, kp1.Public(), kp2.Public())
}

func TestSignProducesVerifiableSignature(t *testing.T) {
	kp, err := FromSeed([32]byte{9, 9, 9}, Ed25519)
	require.NoError(t, err)

	msg := []byte("hello")
	sig, err := kp.Sign(msg)
	require.NoError(t, err)

	c := crypto.New()
	require.True(t, c.Ed25519Verify(kp.Public(), msg, sig))
}

func TestZeroizeClearsSeed(t *testing.T) {
	kp, err := FromSeed([32]byte{1, 1, 1}, Ed25519)
	require.NoError(t, err)
	kp.Zeroize()
	require.Equal(t, [32]byte{}, kp.seed)
}
