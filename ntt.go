package kyber

// zetas contains the precomputed twiddle factors for the Kyber NTT, in
// plain (canonical, non-Montgomery) form.
// zetas[k] = 17^(bitrev7(k)) mod q for k = 0..127, where 17 is a primitive
// 256th root of unity mod q = 3329.
//
// q = 3329 is congruent to 1 mod 256 but not mod 512, so this ring only
// splits into 128 irreducible quadratic factors X^2 - zetas[64+i] and
// X^2 + zetas[64+i] for i = 0..63, not a complete set of 256 linear factors. The transform below therefore runs 7
// butterfly levels down to block length 2, not down to block length 1, and
// pointwise multiplication of two NTT-domain elements needs the degree-1
// basemul below rather than a plain per-coefficient product.
var zetas = [128]fieldElement{
	1, 1729, 2580, 3289, 2642, 630, 1897, 848,
	1062, 1919, 193, 797, 2786, 3260, 569, 1746,
	296, 2447, 1339, 1476, 3046, 56, 2240, 1333,
	1426, 2094, 535, 2882, 2393, 2879, 1974, 821,
	289, 331, 3253, 1756, 1197, 2304, 2277, 2055,
	650, 1977, 2513, 632, 2865, 33, 1320, 1915,
	2319, 1435, 807, 452, 1438, 2868, 1534, 2402,
	2647, 2617, 1481, 648, 2474, 3110, 1227, 910,
	17, 2761, 583, 2649, 1637, 723, 2288, 1100,
	1409, 2662, 3281, 233, 756, 2156, 3015, 3050,
	1703, 1651, 2789, 1789, 1847, 952, 1461, 2687,
	939, 2308, 2437, 2388, 733, 2337, 268, 641,
	1584, 2298, 2037, 3220, 375, 2549, 2090, 1645,
	1063, 319, 2773, 757, 2099, 561, 2466, 2594,
	2804, 1092, 403, 1026, 1143, 2150, 2775, 886,
	1722, 1212, 1874, 1029, 2110, 2935, 885, 2154,
}

// invNScale is 128^(-1) mod q, the scaling factor applied once at the end
// of invNTT. Since this package never leaves canonical domain, it is a plain
// modular inverse; because the transform below only runs 7 levels (to block
// length 2, not 1), it is the inverse of 128 rather than of n=256.
const invNScale = 3303

// ntt performs the (incomplete, Kyber-style) Number Theoretic Transform on
// a ring element. Input is in normal order; output is in bit-reversed
// order, as 128 pairs of coefficients: for i = 0..63, the pair at indices
// 4i, 4i+1 lives in Z_q[X]/(X^2 - zetas[64+i]) and the pair at 4i+2, 4i+3
// in Z_q[X]/(X^2 + zetas[64+i]).
func ntt(f ringElt) ringEltNTT {
	k := 1
	for length := 128; length >= 2; length /= 2 {
		for start := 0; start < n; start += 2 * length {
			zeta := zetas[k]
			k++
			fLo := f[start : start+length]
			fHi := f[start+length : start+2*length]
			for j := 0; j < length; j++ {
				t := fieldMul(zeta, fHi[j])
				fHi[j] = fieldSub(fLo[j], t)
				fLo[j] = fieldAdd(fLo[j], t)
			}
		}
	}
	return ringEltNTT(f)
}

// invNTT performs the inverse Number Theoretic Transform. Input is in
// bit-reversed order, output is in normal order.
func invNTT(f ringEltNTT) ringElt {
	k := 127
	for length := 2; length < n; length *= 2 {
		for start := 0; start < n; start += 2 * length {
			zeta := zetas[k]
			k--
			fLo := f[start : start+length]
			fHi := f[start+length : start+2*length]
			for j := 0; j < length; j++ {
				t := fLo[j]
				fLo[j] = fieldAdd(t, fHi[j])
				fHi[j] = fieldMul(zeta, fieldSub(fHi[j], t))
			}
		}
	}
	for i := range f {
		f[i] = fieldMul(f[i], invNScale)
	}
	return ringElt(f)
}

// basemul multiplies two degree-1 polynomials a0 + a1*X and b0 + b1*X
// modulo (X^2 - zeta), writing the degree-1 result to r0, r1.
func basemul(a0, a1, b0, b1, zeta fieldElement) (r0, r1 fieldElement) {
	r0 = fieldAdd(fieldMul(a0, b0), fieldMul(zeta, fieldMul(a1, b1)))
	r1 = fieldAdd(fieldMul(a0, b1), fieldMul(a1, b0))
	return r0, r1
}

// nttMul performs pointwise multiplication of two NTT-domain ring elements.
// Because this NTT is incomplete, this is not a single per-coefficient
// product but 128 independent degree-1 multiplications (two per block of 4
// coefficients, over 64 blocks), one per irreducible quadratic factor.
func nttMul(a, b ringEltNTT) ringEltNTT {
	var c ringEltNTT
	for i := 0; i < 64; i++ {
		zeta := zetas[64+i]
		c[4*i], c[4*i+1] = basemul(a[4*i], a[4*i+1], b[4*i], b[4*i+1], zeta)
		c[4*i+2], c[4*i+3] = basemul(a[4*i+2], a[4*i+3], b[4*i+2], b[4*i+3], fieldNeg(zeta))
	}
	return c
}
