package kyber

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// zeroReader is an io.Reader that always yields 0x00 bytes. Used to pin
// down byte-for-byte reproducibility of keygen/encapsulate across runs.
type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	return len(p), nil
}

// cyclingReader is an io.Reader that yields 0x01, 0x02, 0x03, ... cycling
// back to 0x01 after 0xff. Used for a second, non-degenerate deterministic
// randomness source distinct from the all-zero one.
type cyclingReader struct {
	next byte
}

func newCyclingReader() *cyclingReader { return &cyclingReader{next: 1} }

func (r *cyclingReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = r.next
		if r.next == 0xff {
			r.next = 1
		} else {
			r.next++
		}
	}
	return len(p), nil
}

func TestKeypairDeterministicUnderFixedRandomness(t *testing.T) {
	p := Kyber512
	pub1, priv1, err := Keypair(zeroReader{}, p)
	require.NoError(t, err)
	pub2, priv2, err := Keypair(zeroReader{}, p)
	require.NoError(t, err)
	require.Equal(t, pub1, pub2)
	require.Equal(t, priv1, priv2)

	ct1, ss1, err := Encapsulate(zeroReader{}, p, pub1)
	require.NoError(t, err)
	ct2, ss2, err := Encapsulate(zeroReader{}, p, pub2)
	require.NoError(t, err)
	require.Equal(t, ct1, ct2)
	require.Equal(t, ss1, ss2)

	got, err := Decapsulate(p, priv1, ct1)
	require.NoError(t, err)
	require.Equal(t, ss1, got)
}

func TestKeypairDeterministicUnderCyclingRandomness(t *testing.T) {
	p := Kyber768
	pub, priv, err := Keypair(newCyclingReader(), p)
	require.NoError(t, err)

	ct, ss, err := Encapsulate(newCyclingReader(), p, pub)
	require.NoError(t, err)

	got, err := Decapsulate(p, priv, ct)
	require.NoError(t, err)
	require.Equal(t, ss, got)

	pub2, priv2, err := Keypair(newCyclingReader(), p)
	require.NoError(t, err)
	require.Equal(t, pub, pub2)
	require.Equal(t, priv, priv2)
}

func TestKEMRoundTripStress(t *testing.T) {
	p := Kyber1024
	for i := 0; i < 1000; i++ {
		pub, priv, err := Keypair(rand.Reader, p)
		require.NoError(t, err)

		ct, ss1, err := Encapsulate(rand.Reader, p, pub)
		require.NoError(t, err)

		ss2, err := Decapsulate(p, priv, ct)
		require.NoError(t, err)
		require.Equal(t, ss1, ss2)
	}
}

func TestImplicitRejectionOnFixedCiphertext(t *testing.T) {
	p := Kyber512
	pub, priv, err := Keypair(zeroReader{}, p)
	require.NoError(t, err)

	ct, ss, err := Encapsulate(zeroReader{}, p, pub)
	require.NoError(t, err)

	tampered := make([]byte, len(ct))
	copy(tampered, ct)
	tampered[0] ^= 1

	got, err := Decapsulate(p, priv, tampered)
	require.NoError(t, err)
	require.Len(t, got, SymBytes)
	require.False(t, bytes.Equal(ss, got))
}

func TestDecapsulateRejectsTrimmedCiphertext(t *testing.T) {
	p := Kyber512
	pub, priv, err := Keypair(zeroReader{}, p)
	require.NoError(t, err)

	ct, _, err := Encapsulate(zeroReader{}, p, pub)
	require.NoError(t, err)

	_, err = Decapsulate(p, priv, ct[:len(ct)-1])
	require.ErrorIs(t, err, ErrInvalidLength)
}
