package kyber

import "io"

// Kyber1024Scheme is a typed handle for the Kyber1024 parameter set.
type Kyber1024Scheme struct{}

// NewKyber1024 returns a handle bound to the Kyber1024 parameter set.
func NewKyber1024() Kyber1024Scheme { return Kyber1024Scheme{} }

// GenerateKey generates a fresh Kyber1024 keypair.
func (Kyber1024Scheme) GenerateKey(rnd io.Reader) (pub, priv []byte, err error) {
	return Keypair(rnd, Kyber1024)
}

// Encapsulate produces a ciphertext and shared secret under pub.
func (Kyber1024Scheme) Encapsulate(rnd io.Reader, pub []byte) (ct, ss []byte, err error) {
	return Encapsulate(rnd, Kyber1024, pub)
}

// Decapsulate recovers the shared secret for ct under priv.
func (Kyber1024Scheme) Decapsulate(priv, ct []byte) ([]byte, error) {
	return Decapsulate(Kyber1024, priv, ct)
}
