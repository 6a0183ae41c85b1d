// Package snf computes the Smith normal form of an integer matrix,
// the numeric primitive spec.md §6 lists as an external collaborator
// ("Integer matrix Smith normal form, for SFSpace homology... assumed
// available"). No example in the retrieved pack ships an exact-integer
// Smith normal form (gonum and lvlath/matrix/ops operate over
// float64), so this package is a from-scratch, standard-library-only
// implementation; see DESIGN.md for why no third-party candidate could
// serve this concern.
package snf

import "fmt"

// Matrix is a dense integer matrix in row-major form, Rows×Cols.
type Matrix struct {
	Rows, Cols int
	Data       []int64 // Data[r*Cols+c]
}

// NewMatrix allocates a zero Rows×Cols matrix.
func NewMatrix(rows, cols int) *Matrix {
	return &Matrix{Rows: rows, Cols: cols, Data: make([]int64, rows*cols)}
}

// At returns m[r][c].
func (m *Matrix) At(r, c int) int64 { return m.Data[r*m.Cols+c] }

// Set assigns m[r][c] = v.
func (m *Matrix) Set(r, c int, v int64) { m.Data[r*m.Cols+c] = v }

func (m *Matrix) swapRows(i, j int) {
	if i == j {
		return
	}
	for c := 0; c < m.Cols; c++ {
		m.Data[i*m.Cols+c], m.Data[j*m.Cols+c] = m.Data[j*m.Cols+c], m.Data[i*m.Cols+c]
	}
}

func (m *Matrix) swapCols(i, j int) {
	if i == j {
		return
	}
	for r := 0; r < m.Rows; r++ {
		idx1, idx2 := r*m.Cols+i, r*m.Cols+j
		m.Data[idx1], m.Data[idx2] = m.Data[idx2], m.Data[idx1]
	}
}

func (m *Matrix) addRow(dst, src int, k int64) {
	for c := 0; c < m.Cols; c++ {
		m.Data[dst*m.Cols+c] += k * m.Data[src*m.Cols+c]
	}
}

func (m *Matrix) addCol(dst, src int, k int64) {
	for r := 0; r < m.Rows; r++ {
		idx := r * m.Cols
		m.Data[idx+dst] += k * m.Data[idx+src]
	}
}

func (m *Matrix) negateRow(i int) {
	for c := 0; c < m.Cols; c++ {
		m.Data[i*m.Cols+c] = -m.Data[i*m.Cols+c]
	}
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

func gcd64(a, b int64) int64 {
	a, b = abs64(a), abs64(b)
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Diagonal computes the Smith normal form diagonal entries d_0 | d_1 |
// ... | d_{k-1} (k = min(Rows,Cols)) of m, mutating a working copy only
// — m itself is left untouched. Trailing zero entries are included, so
// len(result) == min(Rows, Cols) always.
//
// Algorithm: classic iterative pivot-reduction (Bradley's algorithm) —
// at each stage, find the minimal nonzero absolute entry in the
// untouched submatrix, move it to the pivot corner, then use row/column
// additions to zero out the rest of its row and column; repeat while
// any entry in the row/column doesn't divide evenly, since Bradley's
// algorithm does not in general finish in one pass per pivot.
func Diagonal(src *Matrix) []int64 {
	m := &Matrix{Rows: src.Rows, Cols: src.Cols, Data: append([]int64(nil), src.Data...)}
	n := m.Rows
	if m.Cols < n {
		n = m.Cols
	}
	diag := make([]int64, 0, n)

	size := m.Rows
	if m.Cols < size {
		size = m.Cols
	}
	for stage := 0; stage < size; stage++ {
		if !reduceStage(m, stage) {
			break
		}
		diag = append(diag, m.At(stage, stage))
	}
	for len(diag) < n {
		diag = append(diag, 0)
	}
	return diag
}

// reduceStage drives m into a form where row `stage` and column
// `stage` are zero except at (stage,stage), operating only on the
// submatrix m[stage:,stage:]. Returns false if the remaining submatrix
// is entirely zero (nothing left to do).
func reduceStage(m *Matrix, stage int) bool {
	for {
		pr, pc, found := findPivot(m, stage)
		if !found {
			return false
		}
		m.swapRows(stage, pr)
		m.swapCols(stage, pc)

		clean := true
		pivot := m.At(stage, stage)
		for r := stage + 1; r < m.Rows; r++ {
			v := m.At(r, stage)
			if v == 0 {
				continue
			}
			if v%pivot != 0 {
				clean = false
			}
			m.addRow(r, stage, -(v / pivot))
			if v%pivot != 0 {
				// Bring the smaller remainder to the pivot corner and retry.
				m.swapRows(stage, r)
				break
			}
		}
		if !clean {
			continue
		}
		for c := stage + 1; c < m.Cols; c++ {
			v := m.At(stage, c)
			if v == 0 {
				continue
			}
			if v%pivot != 0 {
				clean = false
			}
			m.addCol(c, stage, -(v / pivot))
			if v%pivot != 0 {
				m.swapCols(stage, c)
				break
			}
		}
		if !clean {
			continue
		}

		// Divisibility check: every remaining entry must be divisible by
		// the pivot; if not, fold it into the pivot row/col via an
		// elementary combination and retry the stage.
		allDivisible := true
		for r := stage + 1; r < m.Rows && allDivisible; r++ {
			for c := stage + 1; c < m.Cols; c++ {
				if m.At(r, c)%pivot != 0 {
					m.addRow(stage, r, 1)
					allDivisible = false
					break
				}
			}
		}
		if allDivisible {
			if m.At(stage, stage) < 0 {
				m.negateRow(stage)
			}
			return true
		}
	}
}

func findPivot(m *Matrix, stage int) (r, c int, ok bool) {
	best := int64(-1)
	for i := stage; i < m.Rows; i++ {
		for j := stage; j < m.Cols; j++ {
			v := abs64(m.At(i, j))
			if v == 0 {
				continue
			}
			if best == -1 || v < best {
				best, r, c, ok = v, i, j, true
			}
		}
	}
	return r, c, ok
}

// Invariants collapses a Smith-normal-form diagonal into the invariant
// factor list used to report H1 as Z^free ⊕ Z/t_0 ⊕ Z/t_1 ⊕ ...: drops
// every 1, keeps the rest (each > 1) in ascending order, and reports the
// free rank as the count of trailing zero diagonal entries.
func Invariants(diag []int64) (torsion []int64, freeRank int) {
	for _, d := range diag {
		switch {
		case d == 0:
			freeRank++
		case d == 1 || d == -1:
			// trivial factor, contributes nothing
		default:
			torsion = append(torsion, abs64(d))
		}
	}
	return torsion, freeRank
}

// String is a debug helper producing "RxC:" plus the matrix rows.
func (m *Matrix) String() string {
	s := fmt.Sprintf("%dx%d:", m.Rows, m.Cols)
	for r := 0; r < m.Rows; r++ {
		s += "\n"
		for c := 0; c < m.Cols; c++ {
			s += fmt.Sprintf("%6d", m.At(r, c))
		}
	}
	return s
}
