package kyber

import "io"

// cpaPublicKey is the public half of the IND-CPA Module-LWE encryption
// scheme underlying the KEM: the NTT-domain vector t = A*s + e, plus the
// 32-byte seed rho used to regenerate A.
type cpaPublicKey struct {
	t   ringVecNTT
	rho [32]byte
}

// cpaSecretKey is the NTT-domain secret vector s.
type cpaSecretKey struct {
	s ringVecNTT
}

// cpaKeyGen implements component G's key generation: sample a random seed,
// derive the public matrix seed rho and noise seed sigma from it, sample
// the secret and error vectors via CBD(eta1), and compute t = A*s + e.
func cpaKeyGen(rnd io.Reader, p Params) (cpaPublicKey, cpaSecretKey, error) {
	if !p.valid() {
		return cpaPublicKey{}, cpaSecretKey{}, ErrInvalidParam
	}

	var d [32]byte
	if _, err := io.ReadFull(rnd, d[:]); err != nil {
		return cpaPublicKey{}, cpaSecretKey{}, ErrEntropyFailure
	}
	rho, sigma := hashG(d[:])

	a := sampleMatrix(rho[:], p.K, false)

	s := newRingVec(p.K)
	e := newRingVec(p.K)
	nonce := byte(0)
	for i := range s {
		s[i] = sampleCBD(sigma[:], nonce, p.Eta1)
		nonce++
	}
	for i := range e {
		e[i] = sampleCBD(sigma[:], nonce, p.Eta1)
		nonce++
	}

	sHat := nttVec(s)
	eHat := nttVec(e)

	t := make(ringVecNTT, p.K)
	for i := 0; i < p.K; i++ {
		t[i] = polyAdd(dotNTT(a[i], sHat), eHat[i])
	}

	return cpaPublicKey{t: t, rho: rho}, cpaSecretKey{s: sHat}, nil
}

// cpaEncrypt implements component G's encryption: derive A^T from the
// public key's seed, sample fresh randomness vectors r, e1, e2 keyed on
// coins, and compute the ciphertext pair (u, v) = (A^T*r + e1, t^T*r + e2 +
// Encode(msg)), each compressed to the parameter set's Du/Dv widths.
func cpaEncrypt(pk cpaPublicKey, msg [32]byte, coins []byte, p Params) []byte {
	at := sampleMatrix(pk.rho[:], p.K, true)

	r := newRingVec(p.K)
	e1 := newRingVec(p.K)
	nonce := byte(0)
	for i := range r {
		r[i] = sampleCBD(coins, nonce, p.Eta1)
		nonce++
	}
	for i := range e1 {
		e1[i] = sampleCBD(coins, nonce, p.Eta2)
		nonce++
	}
	e2 := sampleCBD(coins, nonce, p.Eta2)

	rHat := nttVec(r)

	u := make(ringVec, p.K)
	for i := 0; i < p.K; i++ {
		u[i] = polyAdd(invNTT(dotNTT(at[i], rHat)), e1[i])
	}

	msgPoly := encodeMessage(msg)
	v := polyAdd(polyAdd(invNTT(dotNTT(pk.t, rHat)), e2), msgPoly)

	out := make([]byte, 0, p.CiphertextSize())
	for i := 0; i < p.K; i++ {
		out = append(out, compressPoly(u[i], p.Du)...)
	}
	out = append(out, compressPoly(v, p.Dv)...)
	return out
}

// cpaDecrypt implements component G's decryption: recompute m' = v -
// s^T*u and decode the centered result back to a 32-byte message.
func cpaDecrypt(sk cpaSecretKey, ct []byte, p Params) [32]byte {
	uBytes := p.K * n * p.Du / 8
	uCompressed := ct[:uBytes]
	vCompressed := ct[uBytes:]

	u := make(ringVec, p.K)
	uSize := n * p.Du / 8
	for i := 0; i < p.K; i++ {
		u[i] = decompressPoly(uCompressed[i*uSize:(i+1)*uSize], p.Du)
	}
	v := decompressPoly(vCompressed, p.Dv)

	uHat := nttVec(u)
	mPoly := polySub(v, invNTT(dotNTT(sk.s, uHat)))
	return decodeMessage(mPoly)
}
