package det_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"example.com/goci/internal/det"
)

func TestOrbitals(t *testing.T) {
	cases := []struct {
		name  string
		occ   det.OccString
		nelec int
		want  []int
	}{
		{"cas", det.NewOccString(0b1011), 3, []int{1, 2, 4}},
		{"one virtual", det.NewOccString(0b0011, 7), 3, []int{1, 2, 7}},
		{"two virtuals", det.NewOccString(0b0001, 9, 6), 3, []int{1, 6, 9}},
		{"only virtual", det.NewOccString(0, 5), 1, []int{5}},
		{"empty", det.NewOccString(0), 0, []int{}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.want, c.occ.Orbitals(c.nelec))
			require.Equal(t, c.nelec, c.occ.NElec())
		})
	}
}

func TestNewSetsCASFlag(t *testing.T) {
	require.True(t, det.New(det.NewOccString(0b11), det.NewOccString(0b11)).CAS)
	require.False(t, det.New(det.NewOccString(0b01, 5), det.NewOccString(0b11)).CAS)
	require.False(t, det.New(det.NewOccString(0b11), det.NewOccString(0b01, 6)).CAS)
}

func TestCheck(t *testing.T) {
	d := det.New(det.NewOccString(0b01, 5), det.NewOccString(0b11))
	require.NoError(t, d.Check(2, 2))
	require.ErrorIs(t, d.Check(1, 2), det.ErrOccupancy)
}

func TestCompareCAS(t *testing.T) {
	i := det.New(det.NewOccString(0b0011), det.NewOccString(0b0011))
	j := det.New(det.NewOccString(0b0101), det.NewOccString(0b1001))
	d := det.CompareCAS(i, j)
	assert.Equal(t, 4, d.Raw)
	assert.Equal(t, 1, d.NumAlpha)
	assert.Equal(t, 1, d.NumBeta)
	assert.Equal(t, uint64(0b0010), d.AlphaInit)
	assert.Equal(t, uint64(0b0100), d.AlphaFinal)
	assert.Equal(t, uint64(0b0010), d.BetaInit)
	assert.Equal(t, uint64(0b1000), d.BetaFinal)

	require.Zero(t, det.CompareCAS(i, i).Raw)
}

func TestCompareNonCAS(t *testing.T) {
	base := det.New(det.NewOccString(0b011, 5), det.NewOccString(0b111))
	cases := []struct {
		name      string
		other     det.Determinant
		level     int
		alpha     [3]int // C, CV, V
		beta      [3]int
		virtInit  []int
		virtFinal []int
	}{
		{"same", base, 0, [3]int{}, [3]int{}, nil, nil},
		{"virtual internal", det.New(det.NewOccString(0b011, 6), det.NewOccString(0b111)),
			1, [3]int{0, 0, 1}, [3]int{}, []int{5}, []int{6}},
		{"cas internal", det.New(det.NewOccString(0b101, 5), det.NewOccString(0b111)),
			1, [3]int{1, 0, 0}, [3]int{}, nil, nil},
		{"cas to virtual", det.New(det.NewOccString(0b001, 5, 6), det.NewOccString(0b111)),
			1, [3]int{0, 1, 0}, [3]int{}, nil, []int{6}},
		{"virtual to cas", det.New(det.NewOccString(0b111), det.NewOccString(0b111)),
			1, [3]int{0, 1, 0}, [3]int{}, []int{5}, nil},
		{"mixed spin", det.New(det.NewOccString(0b011, 6), det.NewOccString(0b011, 4)),
			2, [3]int{0, 0, 1}, [3]int{0, 1, 0}, []int{5}, []int{6}},
		{"cas and virtual exchange", det.New(det.NewOccString(0b101, 6), det.NewOccString(0b111)),
			2, [3]int{0, 2, 0}, [3]int{}, []int{5}, []int{6}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d := det.CompareNonCAS(base, c.other)
			assert.Equal(t, c.level, d.Level)
			assert.Equal(t, c.alpha, [3]int{d.Alpha.C, d.Alpha.CV, d.Alpha.V})
			assert.Equal(t, c.beta, [3]int{d.Beta.C, d.Beta.CV, d.Beta.V})
			assert.Equal(t, c.virtInit, d.Alpha.VirtInit)
			assert.Equal(t, c.virtFinal, d.Alpha.VirtFinal)
		})
	}
}

func TestSummarize(t *testing.T) {
	dets := []det.Determinant{
		det.New(det.NewOccString(0b0011), det.NewOccString(0b0011)),
		det.New(det.NewOccString(0b0101), det.NewOccString(0b0011)),
		det.New(det.NewOccString(0b0101), det.NewOccString(0b0101)),
		det.New(det.NewOccString(0b1100), det.NewOccString(0b0101)),
		det.New(det.NewOccString(0b0001, 5), det.NewOccString(0b0011)),
	}
	require.Equal(t, 3, det.Level(dets[0], dets[3]))
	require.Equal(t, 1, det.Level(dets[0], dets[4]))

	s := det.Summarize(dets, 2)
	assert.Equal(t, 5, s.NDets)
	assert.Equal(t, 4, s.NCAS)
	assert.Equal(t, 4, s.NAlphaStr)
	assert.Equal(t, 2, s.NBetaStr)
	assert.Equal(t, 3, s.MaxLevel)
	assert.Equal(t, []int{3}, s.Beyond)

	require.Empty(t, det.Summarize(dets, 3).Beyond)
	require.Zero(t, det.Summarize(nil, 2).NDets)
}

const list = `# alpha beta a1 a2 b1 b2
1100 1100
1010 1100
1000 1100 5 0 0 0
`

func TestParseList(t *testing.T) {
	dets, err := det.ParseList(strings.NewReader(list), 4)
	require.NoError(t, err)
	require.Len(t, dets, 3)

	require.True(t, dets[0].CAS)
	require.Equal(t, []int{1, 2}, dets[0].Alpha.Orbitals(2))
	require.Equal(t, []int{1, 3}, dets[1].Alpha.Orbitals(2))
	require.False(t, dets[2].CAS)
	require.Equal(t, []int{1, 5}, dets[2].Alpha.Orbitals(2))

	require.Equal(t, "1100 1100", dets[0].Format(4))
	require.Equal(t, "1000 1100 5 0 0 0", dets[2].Format(4))
}

func TestParseListErrors(t *testing.T) {
	for name, in := range map[string]string{
		"fields":      "1100\n",
		"digit":       "1102 1100\n",
		"too long":    "11000 1100\n",
		"low virtual": "1000 1100 3 0 0 0\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := det.ParseList(strings.NewReader(in), 4)
			require.ErrorIs(t, err, det.ErrFormat)
		})
	}
}
