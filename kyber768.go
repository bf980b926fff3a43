package kyber

import "io"

// Kyber768Scheme is a typed handle for the Kyber768 parameter set.
type Kyber768Scheme struct{}

// NewKyber768 returns a handle bound to the Kyber768 parameter set.
func NewKyber768() Kyber768Scheme { return Kyber768Scheme{} }

// GenerateKey generates a fresh Kyber768 keypair.
func (Kyber768Scheme) GenerateKey(rnd io.Reader) (pub, priv []byte, err error) {
	return Keypair(rnd, Kyber768)
}

// Encapsulate produces a ciphertext and shared secret under pub.
func (Kyber768Scheme) Encapsulate(rnd io.Reader, pub []byte) (ct, ss []byte, err error) {
	return Encapsulate(rnd, Kyber768, pub)
}

// Decapsulate recovers the shared secret for ct under priv.
func (Kyber768Scheme) Decapsulate(priv, ct []byte) ([]byte, error) {
	return Decapsulate(Kyber768, priv, ct)
}
