package bitstr_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"example.com/goci/internal/bitstr"
)

func TestNonzeroBits(t *testing.T) {
	cases := []struct {
		name string
		word uint64
		want []int
	}{
		{"empty", 0, []int{}},
		{"first", 0b1, []int{1}},
		{"spread", 0b101001, []int{1, 4, 6}},
		{"top", 1 << 63, []int{64}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.want, bitstr.NonzeroBits(c.word))
			require.Equal(t, len(c.want), bitstr.Count(c.word))
		})
	}
}

func TestFillNonzeroBitsKeepsTail(t *testing.T) {
	dst := []int{0, 0, 0, 0}
	n := bitstr.FillNonzeroBits(0b110, dst)
	require.Equal(t, 2, n)
	require.Equal(t, []int{2, 3, 0, 0}, dst)
}

func TestSingleBit(t *testing.T) {
	require.Equal(t, 0, bitstr.SingleBit(0))
	require.Equal(t, 5, bitstr.SingleBit(0b10000))
}

func TestBinaryRoundTrip(t *testing.T) {
	digits := []int{1, 0, 1, 1, 0, 0}
	v := bitstr.Binary2Dec(digits)
	require.Equal(t, uint64(13), v)
	require.Equal(t, digits, bitstr.Dec2Binary(v, len(digits)))
}

func TestParseFormat(t *testing.T) {
	w, err := bitstr.Parse("1100")
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, bitstr.NonzeroBits(w))
	require.Equal(t, "1100", bitstr.Format(w, 4))

	_, err = bitstr.Parse("10x")
	require.ErrorIs(t, err, bitstr.ErrDigit)
}
