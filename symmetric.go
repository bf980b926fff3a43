package kyber

import (
	"golang.org/x/crypto/sha3"
)

// xofRate is the SHAKE128 block size used by the uniform matrix sampler.
const xofRate = 168

// xof returns a SHAKE128 instance keyed on rho and the two index bytes i,
// j, used by sampleUniform to expand the public matrix A. Matches FIPS 203's
// XOF(rho, i, j) = SHAKE128(rho || i || j).
func xof(rho []byte, i, j byte) sha3.ShakeHash {
	h := sha3.NewShake128()
	h.Write(rho)
	h.Write([]byte{i, j})
	return h
}

// prf returns eta*n/4 bytes of SHAKE256(seed || nonce), used to sample a
// centered-binomial noise polynomial. Matches FIPS 203's
// PRF_eta(seed, nonce) = SHAKE256(seed || nonce).
func prf(seed []byte, nonce byte, outLen int) []byte {
	h := sha3.NewShake256()
	h.Write(seed)
	h.Write([]byte{nonce})
	out := make([]byte, outLen)
	h.Read(out)
	return out
}

// hashH returns SHA3-256(data), used to commit to a public key and to
// confirm a decapsulated ciphertext.
func hashH(data []byte) [32]byte {
	return sha3.Sum256(data)
}

// hashG returns SHA3-512(data) split into two 32-byte halves. CPA key
// generation uses it to derive the public seed and the noise seed from a
// 32-byte input; the KEM uses it to derive the pre-key and the encryption
// coins from m || H(pk).
func hashG(data []byte) (a, b [32]byte) {
	full := sha3.Sum512(data)
	copy(a[:], full[:32])
	copy(b[:], full[32:])
	return a, b
}

// kdf derives the final shared secret from the Fujisaki-Okamoto transform's
// pre-key and the ciphertext hash, via SHAKE256. Matches FIPS 203's
// KDF(x) = SHAKE256(x, 32).
func kdf(parts ...[]byte) [32]byte {
	h := sha3.NewShake256()
	for _, p := range parts {
		h.Write(p)
	}
	var out [32]byte
	h.Read(out[:])
	return out
}
