// cimat.go --  This file is part of goCI project.
// Copyright (C) the goCI authors
//
//	goCI is distributed in the hope that it will be useful,
//	but WITHOUT ANY WARRANTY; without even the implied warranty
//	of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
//	See the GNU General Public License for more details.
//
//	You should have received a copy of the GNU General Public License
//	along with this program.  If not, see http://www.gnu.org/licenses/
//
// ------------------------------------------------

// Package cimat assembles CI matrices and sigma vectors from matrix
// elements, splitting rows between goroutines.
package cimat

import (
	"context"
	"errors"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"example.com/goci/internal/det"
	"example.com/goci/internal/hmatels"
)

var (
	ErrEigen     = errors.New("cimat: eigendecomposition failed")
	ErrDimension = errors.New("cimat: vector length does not match determinant count")
)

// Split gives worker rank its contiguous share [lo, hi) of n items. All
// ranks get chunk items and the last one also takes the remainder.
func Split(n, nproc, rank int) (chunk, lo, hi int) {
	if nproc < 1 {
		nproc = 1
	}
	chunk = n / nproc
	lo = rank * chunk
	hi = lo + chunk
	if rank == nproc-1 {
		hi = n
	}
	return chunk, lo, hi
}

// Stats counts the upper-triangle pairs of a Hamiltonian build.
type Stats struct {
	Computed    int // evaluated by a formula, zeros included
	Orthogonal  int // more than a double replacement apart
	Unsupported int // left at zero for lack of a formula
}

func (s *Stats) add(o Stats) {
	s.Computed += o.Computed
	s.Orthogonal += o.Orthogonal
	s.Unsupported += o.Unsupported
}

func (s *Stats) count(r hmatels.Result) {
	switch {
	case !r.Supported():
		s.Unsupported++
	case r.Excitation.Kind == hmatels.BeyondDouble:
		s.Orthogonal++
	default:
		s.Computed++
	}
}

// Builder evaluates CI matrix rows in parallel.
type Builder struct {
	eval    *hmatels.Evaluator
	workers int
}

// NewBuilder returns a builder using workers goroutines, or GOMAXPROCS when
// workers is not positive.
func NewBuilder(eval *hmatels.Evaluator, workers int) *Builder {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(-1)
	}
	return &Builder{eval: eval, workers: workers}
}

func (b *Builder) Workers() int { return b.workers }

// rows runs fn over [0, n) split between the workers. fn gets its own
// Stats, summed into the returned total.
func (b *Builder) rows(ctx context.Context, n int, fn func(i int, st *Stats)) (Stats, error) {
	nproc := min(b.workers, max(n, 1))
	parts := make([]Stats, nproc)
	g, ctx := errgroup.WithContext(ctx)
	for rank := 0; rank < nproc; rank++ {
		rank := rank
		_, lo, hi := Split(n, nproc, rank)
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				fn(i, &parts[rank])
			}
			return nil
		})
	}
	err := g.Wait()
	var total Stats
	for _, p := range parts {
		total.add(p)
	}
	return total, err
}

// Hamiltonian builds the symmetric CI matrix of dets from its upper
// triangle.
func (b *Builder) Hamiltonian(ctx context.Context, dets []det.Determinant) (*mat.SymDense, Stats, error) {
	n := len(dets)
	if n == 0 {
		return nil, Stats{}, ErrDimension
	}
	h := mat.NewSymDense(n, nil)
	st, err := b.rows(ctx, n, func(i int, st *Stats) {
		for j := i; j < n; j++ {
			r := b.eval.Eval(dets[i], dets[j])
			st.count(r)
			h.SetSym(i, j, r.Value)
		}
	})
	if err != nil {
		return nil, st, err
	}
	return h, st, nil
}

// Full builds every element <i|H|j>, both triangles evaluated on their own.
func (b *Builder) Full(ctx context.Context, dets []det.Determinant) (*mat.Dense, error) {
	n := len(dets)
	if n == 0 {
		return nil, ErrDimension
	}
	h := mat.NewDense(n, n, nil)
	_, err := b.rows(ctx, n, func(i int, _ *Stats) {
		for j := 0; j < n; j++ {
			h.Set(i, j, b.eval.Value(dets[i], dets[j]))
		}
	})
	if err != nil {
		return nil, err
	}
	return h, nil
}

// Sigma returns c = Hv without storing H.
func (b *Builder) Sigma(ctx context.Context, dets []det.Determinant, v *mat.VecDense) (*mat.VecDense, error) {
	n := len(dets)
	if n == 0 || v.Len() != n {
		return nil, ErrDimension
	}
	vdata := make([]float64, n)
	for j := range vdata {
		vdata[j] = v.AtVec(j)
	}
	c := mat.NewVecDense(n, nil)
	_, err := b.rows(ctx, n, func(i int, _ *Stats) {
		row := make([]float64, n)
		for j := range row {
			row[j] = b.eval.Value(dets[i], dets[j])
		}
		c.SetVec(i, floats.Dot(row, vdata))
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Lowest returns the k lowest eigenvalues of h and their eigenvectors as
// columns.
func Lowest(h *mat.SymDense, k int) ([]float64, *mat.Dense, error) {
	n := h.SymmetricDim()
	if k < 1 || k > n {
		k = n
	}
	var eigsym mat.EigenSym
	if ok := eigsym.Factorize(h, true); !ok {
		return nil, nil, ErrEigen
	}
	vals := eigsym.Values(nil)
	var ev mat.Dense
	eigsym.VectorsTo(&ev)
	vecs := mat.DenseCopyOf(ev.Slice(0, n, 0, k))
	return vals[:k], vecs, nil
}

// AsymmetryRMS is the root mean square of H(i,j) - H(j,i) over all pairs.
func AsymmetryRMS(h *mat.Dense) float64 {
	r, c := h.Dims()
	if r != c || r == 0 {
		return math.NaN()
	}
	var diff mat.Dense
	diff.Sub(h, h.T())
	diff.MulElem(&diff, &diff)
	return math.Sqrt(stat.Mean(diff.RawMatrix().Data, nil))
}
