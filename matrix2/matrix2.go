// Package matrix2 provides Matrix2, a 2×2 integer matrix used to
// describe a matching between two saturated-torus boundaries (fibre and
// base-curve generators on one torus expressed in terms of the other)
// or a coordinate change within a single boundary torus.
//
// Matrix2 values are plain, comparable, trivially copyable data — no
// locking is required (spec §5).
package matrix2

import (
	"errors"
	"fmt"
)

// ErrSingular is returned by Inverse when the matrix has a determinant
// other than +1 or -1, so that it has no integer inverse.
var ErrSingular = errors.New("matrix2: matrix is singular")

// ErrBadDeterminant flags a contract violation: spec §7 requires that a
// matching matrix have determinant ±1 wherever one is demanded as a
// precondition (e.g. before Inverse is relied on as an exact integer
// inverse). Matrix2 never panics on its own; callers that need the
// precondition enforced should call RequireUnimodular.
var ErrBadDeterminant = errors.New("matrix2: determinant is neither +1 nor -1")

// Matrix2 is [[A,B],[C,D]] in row-major order.
type Matrix2 struct {
	A, B, C, D int64
}

// Identity is the 2×2 identity matrix.
var Identity = Matrix2{1, 0, 0, 1}

// New builds a Matrix2 from its four entries, row-major.
func New(a, b, c, d int64) Matrix2 {
	return Matrix2{A: a, B: b, C: c, D: d}
}

// At returns the (row, col) entry, row and col in {0,1}.
func (m Matrix2) At(row, col int) int64 {
	switch {
	case row == 0 && col == 0:
		return m.A
	case row == 0 && col == 1:
		return m.B
	case row == 1 && col == 0:
		return m.C
	default:
		return m.D
	}
}

// Det returns the determinant AD - BC.
func (m Matrix2) Det() int64 {
	return m.A*m.D - m.B*m.C
}

// RequireUnimodular enforces the spec §7 contract that a matching
// matrix have determinant ±1; it is a panic-worthy violation rather
// than ordinary Option-style failure because by the time a Matrix2 is
// handed to a graph-manifold combinator its determinant has already
// been constructed, not guessed.
func (m Matrix2) RequireUnimodular() {
	if d := m.Det(); d != 1 && d != -1 {
		panic(fmt.Errorf("%w: got %d", ErrBadDeterminant, d))
	}
}

// Mul returns m * other (this matrix applied after other, i.e. the
// composite coordinate change other-then-m).
func (m Matrix2) Mul(other Matrix2) Matrix2 {
	return Matrix2{
		A: m.A*other.A + m.B*other.C,
		B: m.A*other.B + m.B*other.D,
		C: m.C*other.A + m.D*other.C,
		D: m.C*other.B + m.D*other.D,
	}
}

// Negate returns -m.
func (m Matrix2) Negate() Matrix2 {
	return Matrix2{-m.A, -m.B, -m.C, -m.D}
}

// Inverse returns the exact integer inverse, valid only when Det is ±1.
// Any other determinant is reported via ErrSingular-wrapped error rather
// than a panic, since a malformed triangulation (not a programmer
// error) can legitimately produce a non-unimodular candidate during
// search before it is discarded.
func (m Matrix2) Inverse() (Matrix2, error) {
	d := m.Det()
	if d != 1 && d != -1 {
		return Matrix2{}, fmt.Errorf("matrix2.Inverse: det=%d: %w", d, ErrSingular)
	}
	// For det = ±1, adj(m)/det is exact in integers.
	return Matrix2{
		A: d * m.D,
		B: -d * m.B,
		C: -d * m.C,
		D: d * m.A,
	}, nil
}

// Row2Add returns m with row1 += k*row0 (0-indexed rows). This is the
// elementary "twist compensation" operation used throughout
// graphmanifold's reduce() passes.
func (m Matrix2) Row2Add(k int64) Matrix2 {
	return Matrix2{A: m.A, B: m.B, C: m.C + k*m.A, D: m.D + k*m.B}
}

// Col1SubCol2 returns m with col0 -= col1 (0-indexed columns), the
// column-space dual of Row2Add used when twisting the *other* side.
func (m Matrix2) Col1SubCol2() Matrix2 {
	return Matrix2{A: m.A - m.B, B: m.B, C: m.C - m.D, D: m.D}
}

// Equal reports exact entrywise equality.
func (m Matrix2) Equal(other Matrix2) bool {
	return m == other
}

// MaxAbs returns the maximum absolute value among the four entries,
// the primary key of the "simpler" ordering used by graphmanifold.
func (m Matrix2) MaxAbs() int64 {
	max := int64(0)
	for _, v := range [4]int64{m.A, m.B, m.C, m.D} {
		if v < 0 {
			v = -v
		}
		if v > max {
			max = v
		}
	}
	return max
}

// CountZeroes returns how many of the four entries are zero.
func (m Matrix2) CountZeroes() int {
	n := 0
	for _, v := range [4]int64{m.A, m.B, m.C, m.D} {
		if v == 0 {
			n++
		}
	}
	return n
}

// CountNegative returns how many of the four entries are strictly
// negative.
func (m Matrix2) CountNegative() int {
	n := 0
	for _, v := range [4]int64{m.A, m.B, m.C, m.D} {
		if v < 0 {
			n++
		}
	}
	return n
}

// Less provides the lexicographic tie-break over (A,B,C,D) used once
// MaxAbs/CountZeroes/CountNegative have all tied.
func (m Matrix2) Less(other Matrix2) bool {
	for _, pair := range [4][2]int64{{m.A, other.A}, {m.B, other.B}, {m.C, other.C}, {m.D, other.D}} {
		if pair[0] != pair[1] {
			return pair[0] < pair[1]
		}
	}
	return false
}

// String renders "[A,B;C,D]".
func (m Matrix2) String() string {
	return fmt.Sprintf("[%d,%d;%d,%d]", m.A, m.B, m.C, m.D)
}
