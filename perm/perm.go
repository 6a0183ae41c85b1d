// Package perm provides P4, the group of bijections on {0,1,2,3} used
// throughout the recognition core to describe how tetrahedron vertices
// line up across a gluing, an annulus boundary, or a subcomplex
// isomorphism.
//
// P4 is a plain value type: comparable, trivially copyable, and safe to
// share across goroutines without locking (spec §5 — matrices,
// permutations and SFSpace values are plain values).
package perm

import "fmt"

// P4 is a permutation of {0,1,2,3}, stored as the images of 0,1,2,3 in
// that order: P4{2,0,1,3} sends 0->2, 1->0, 2->1, 3->3.
type P4 [4]int

// Identity is the identity permutation.
var Identity = P4{0, 1, 2, 3}

// New builds a P4 from four images, validating that they form a
// bijection on {0,1,2,3}.
func New(a, b, c, d int) (P4, error) {
	p := P4{a, b, c, d}
	if !p.valid() {
		return P4{}, fmt.Errorf("perm: %v is not a permutation of {0,1,2,3}", p)
	}
	return p, nil
}

// MustNew is New but panics on an invalid permutation; intended for
// package-level literals (e.g. catalogue data) where the argument is a
// compile-time constant known to be valid.
func MustNew(a, b, c, d int) P4 {
	p, err := New(a, b, c, d)
	if err != nil {
		panic(err)
	}
	return p
}

// Transposition returns the permutation swapping i and j and fixing the
// other two points.
func Transposition(i, j int) P4 {
	p := Identity
	p[i], p[j] = p[j], p[i]
	return p
}

func (p P4) valid() bool {
	var seen [4]bool
	for _, v := range p {
		if v < 0 || v > 3 || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

// At returns the image of i under p.
func (p P4) At(i int) int { return p[i] }

// Compose returns p*q in the "apply q first" convention matching
// Regina's NPerm multiplication: (p*q)[i] == p[q[i]].
func (p P4) Compose(q P4) P4 {
	var r P4
	for i := range r {
		r[i] = p[q[i]]
	}
	return r
}

// Inverse returns the inverse permutation.
func (p P4) Inverse() P4 {
	var r P4
	for i, v := range p {
		r[v] = i
	}
	return r
}

// Sign returns +1 for an even permutation, -1 for an odd one.
func (p P4) Sign() int {
	visited := [4]bool{}
	sign := 1
	for i := 0; i < 4; i++ {
		if visited[i] {
			continue
		}
		cycleLen := 0
		for j := i; !visited[j]; j = p[j] {
			visited[j] = true
			cycleLen++
		}
		if cycleLen%2 == 0 {
			sign = -sign
		}
	}
	return sign
}

// String renders the one-line form used throughout the recognition
// core's diagnostics, e.g. "0123" for the identity.
func (p P4) String() string {
	return fmt.Sprintf("%d%d%d%d", p[0], p[1], p[2], p[3])
}
