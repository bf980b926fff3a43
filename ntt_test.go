package kyber

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func samplePoly(seed byte) ringElt {
	var f ringElt
	x := uint32(seed) + 1
	for i := range f {
		x = (x*1103515245 + 12345) & 0x7fffffff
		f[i] = fieldElement(x % q)
	}
	return f
}

func TestNTTRoundTrip(t *testing.T) {
	for seed := byte(0); seed < 8; seed++ {
		f := samplePoly(seed)
		got := invNTT(ntt(f))
		require.Equal(t, f, got)
	}
}

func TestNTTRoundTripFixedVector(t *testing.T) {
	var f ringElt
	f[0], f[1], f[2] = 1, 1, 1
	got := invNTT(ntt(f))
	require.Equal(t, f, got)
}

// schoolbookMul computes a*b mod (X^n+1) the slow way, as the semantic
// reference for nttMul.
func schoolbookMul(a, b ringElt) ringElt {
	var wide [2 * n]fieldElement
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			wide[i+j] = fieldAdd(wide[i+j], fieldMul(a[i], b[j]))
		}
	}
	var c ringElt
	for i := 0; i < n; i++ {
		c[i] = fieldSub(wide[i], wide[i+n])
	}
	return c
}

func TestNTTMulMatchesSchoolbook(t *testing.T) {
	for seed := byte(0); seed < 4; seed++ {
		a := samplePoly(seed)
		b := samplePoly(seed + 100)

		want := schoolbookMul(a, b)
		got := invNTT(nttMul(ntt(a), ntt(b)))
		require.Equal(t, want, got)
	}
}
