package kyber

import "io"

// Kyber512Scheme is a typed handle for the Kyber512 parameter set, letting
// callers that only ever use one parameter set bind it once and call
// GenerateKey/Encapsulate/Decapsulate without passing Params at every call
// site.
type Kyber512Scheme struct{}

// NewKyber512 returns a handle bound to the Kyber512 parameter set.
func NewKyber512() Kyber512Scheme { return Kyber512Scheme{} }

// GenerateKey generates a fresh Kyber512 keypair.
func (Kyber512Scheme) GenerateKey(rnd io.Reader) (pub, priv []byte, err error) {
	return Keypair(rnd, Kyber512)
}

// Encapsulate produces a ciphertext and shared secret under pub.
func (Kyber512Scheme) Encapsulate(rnd io.Reader, pub []byte) (ct, ss []byte, err error) {
	return Encapsulate(rnd, Kyber512, pub)
}

// Decapsulate recovers the shared secret for ct under priv.
func (Kyber512Scheme) Decapsulate(priv, ct []byte) ([]byte, error) {
	return Decapsulate(Kyber512, priv, ct)
}
