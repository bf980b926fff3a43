package kyber

import (
	"crypto/subtle"
	"io"
)

// Keypair implements component H's key generation: run the CPA key
// generation of component G, then extend the secret key with the encoded
// public key, a hash of the public key, and a 32-byte implicit-rejection
// seed z, per the Fujisaki-Okamoto transform.
func Keypair(rnd io.Reader, p Params) (pub, priv []byte, err error) {
	if !p.valid() {
		return nil, nil, ErrInvalidParam
	}

	cpk, csk, err := cpaKeyGen(rnd, p)
	if err != nil {
		return nil, nil, err
	}

	pub = encodePublicKey(cpk, p)

	var z [32]byte
	if _, err := io.ReadFull(rnd, z[:]); err != nil {
		return nil, nil, ErrEntropyFailure
	}
	pkHash := hashH(pub)

	priv = make([]byte, 0, p.PrivateKeySize())
	priv = append(priv, encodeSecretVec(csk.s)...)
	priv = append(priv, pub...)
	priv = append(priv, pkHash[:]...)
	priv = append(priv, z[:]...)

	return pub, priv, nil
}

// Encapsulate implements component H's encapsulation: derive a random
// 32-byte message m, hash it together with H(pk) to get the CPA
// randomness, encrypt m under pk, and derive the shared secret from m and
// H(ciphertext). This is the Fujisaki-Okamoto transform's "encrypt the
// implicit-rejection check material alongside the message" step, applied
// to component G's IND-CPA scheme to obtain an IND-CCA2 KEM.
func Encapsulate(rnd io.Reader, p Params, pub []byte) (ct, ss []byte, err error) {
	if !p.valid() {
		return nil, nil, ErrInvalidParam
	}
	if len(pub) != p.PublicKeySize() {
		return nil, nil, ErrInvalidLength
	}

	var m [32]byte
	if _, err := io.ReadFull(rnd, m[:]); err != nil {
		return nil, nil, ErrEntropyFailure
	}
	pkHash := hashH(pub)

	kBar, coins := hashG(append(append([]byte{}, m[:]...), pkHash[:]...))

	cpk, err := decodePublicKey(pub, p)
	if err != nil {
		return nil, nil, err
	}
	ct = cpaEncrypt(cpk, m, coins[:], p)

	ctHash := hashH(ct)
	secret := kdf(kBar[:], ctHash[:])
	return ct, secret[:], nil
}

// Decapsulate implements component H's decapsulation with implicit
// rejection: decrypt the ciphertext, re-derive what the matching
// ciphertext would have been, and compare in constant time. On a match the
// shared secret is derived from the recovered message; on a mismatch it is
// derived instead from the secret key's z seed, so an attacker who submits
// a malformed ciphertext learns nothing from the fact that decapsulation
// "failed" — there is no separate error path or early return to observe.
func Decapsulate(p Params, priv, ct []byte) ([]byte, error) {
	if !p.valid() {
		return nil, ErrInvalidParam
	}
	if len(priv) != p.PrivateKeySize() {
		return nil, ErrInvalidLength
	}
	if len(ct) != p.CiphertextSize() {
		return nil, ErrInvalidLength
	}

	sVecSize := p.K * n * 12 / 8
	pkSize := p.PublicKeySize()

	sBytes := priv[:sVecSize]
	pub := priv[sVecSize : sVecSize+pkSize]
	pkHash := priv[sVecSize+pkSize : sVecSize+pkSize+32]
	z := priv[sVecSize+pkSize+32 : sVecSize+pkSize+64]

	csk := decodeSecretVec(sBytes, p)
	m := cpaDecrypt(csk, ct, p)

	kBar, coins := hashG(append(append([]byte{}, m[:]...), pkHash...))

	cpk, err := decodePublicKey(pub, p)
	if err != nil {
		return nil, err
	}
	ctPrime := cpaEncrypt(cpk, m, coins[:], p)

	ctHash := hashH(ct)

	match := subtle.ConstantTimeCompare(ct, ctPrime)
	rejectKey := kdf(z, ctHash[:])
	acceptKey := kdf(kBar[:], ctHash[:])

	secret := make([]byte, 32)
	subtle.ConstantTimeCopy(match, secret, acceptKey[:])
	subtle.ConstantTimeCopy(1-match, secret, rejectKey[:])

	return secret, nil
}

// encodePublicKey serializes a CPA public key as packed12(t) || rho, with
// t left in the NTT domain it is always used in.
func encodePublicKey(pk cpaPublicKey, p Params) []byte {
	out := make([]byte, 0, p.PublicKeySize())
	for i := 0; i < p.K; i++ {
		out = append(out, polyNTTToBytes(pk.t[i])...)
	}
	out = append(out, pk.rho[:]...)
	return out
}

// decodePublicKey is the inverse of encodePublicKey.
func decodePublicKey(b []byte, p Params) (cpaPublicKey, error) {
	if len(b) != p.PublicKeySize() {
		return cpaPublicKey{}, ErrInvalidLength
	}
	tSize := n * 12 / 8
	t := make(ringVecNTT, p.K)
	for i := 0; i < p.K; i++ {
		t[i] = polyNTTFromBytes(b[i*tSize : (i+1)*tSize])
	}
	var rho [32]byte
	copy(rho[:], b[p.K*tSize:])
	return cpaPublicKey{t: t, rho: rho}, nil
}

// encodeSecretVec serializes the CPA secret vector as packed12(s), with s
// left in the NTT domain it is always used in.
func encodeSecretVec(s ringVecNTT) []byte {
	out := make([]byte, 0, len(s)*n*12/8)
	for _, f := range s {
		out = append(out, polyNTTToBytes(f)...)
	}
	return out
}

// decodeSecretVec is the inverse of encodeSecretVec.
func decodeSecretVec(b []byte, p Params) cpaSecretKey {
	size := n * 12 / 8
	s := make(ringVecNTT, p.K)
	for i := 0; i < p.K; i++ {
		s[i] = polyNTTFromBytes(b[i*size : (i+1)*size])
	}
	return cpaSecretKey{s: s}
}
