package hmatels_test

import (
	"math/bits"
	"math/rand"

	"example.com/goci/internal/det"
	"example.com/goci/internal/moints"
)

// randomIntegrals fills a packed integral set with reproducible values.
func randomIntegrals(norb int, seed int64) *moints.Integrals {
	rnd := rand.New(rand.NewSource(seed))
	ints := moints.New(norb)
	for n := range ints.One {
		ints.One[n] = rnd.Float64() - 0.5
	}
	for n := range ints.Two {
		ints.Two[n] = 0.2 * rnd.Float64()
	}
	return ints
}

// words lists every packed word with nelec bits in nact orbitals.
func words(nact, nelec int) []uint64 {
	var res []uint64
	for w := uint64(0); w < 1<<uint(nact); w++ {
		if bits.OnesCount64(w) == nelec {
			res = append(res, w)
		}
	}
	return res
}

// casSpace is the full CAS determinant space of nact orbitals.
func casSpace(nact, aelec, belec int) []det.Determinant {
	var res []det.Determinant
	for _, a := range words(nact, aelec) {
		for _, b := range words(nact, belec) {
			res = append(res, det.New(det.NewOccString(a), det.NewOccString(b)))
		}
	}
	return res
}

// bruteDiagonal evaluates <d|H|d> from explicit occupied lists.
func bruteDiagonal(ints *moints.Integrals, ea, eb []int) float64 {
	val := 0.0
	for _, eo := range [][]int{ea, eb} {
		for i := 0; i < len(eo); i++ {
			val += ints.H(eo[i], eo[i])
			for j := i + 1; j < len(eo); j++ {
				p, q := eo[i], eo[j]
				val += ints.ERI(p, p, q, q) - ints.ERI(p, q, p, q)
			}
		}
	}
	for _, p := range ea {
		for _, q := range eb {
			val += ints.ERI(p, p, q, q)
		}
	}
	return val
}
