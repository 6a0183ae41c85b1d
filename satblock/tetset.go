package satblock

import "github.com/gmanifold/satrec/tri"

// TetSet is a set of tetrahedra, used to mark which tetrahedra a block
// has already claimed so that region expansion never lets two blocks
// overlap (spec §4.3's "avoid" set). A map keyed by tetrahedron index is
// the natural fit here: the teacher's graph packages use slice/map
// adjacency lists rather than bitsets for sets over a dynamic domain,
// and the avoid set grows incrementally as blocks are identified rather
// than being known in size up front.
type TetSet struct {
	m map[int]bool
}

// NewTetSet returns an empty set.
func NewTetSet() *TetSet { return &TetSet{m: make(map[int]bool)} }

// Add marks t as claimed.
func (s *TetSet) Add(t *tri.Tetrahedron) {
	if s.m == nil {
		s.m = make(map[int]bool)
	}
	s.m[t.Index()] = true
}

// AddAll marks every tetrahedron in ts as claimed.
func (s *TetSet) AddAll(ts []*tri.Tetrahedron) {
	for _, t := range ts {
		s.Add(t)
	}
}

// Contains reports whether t has already been claimed.
func (s *TetSet) Contains(t *tri.Tetrahedron) bool {
	return s.m != nil && s.m[t.Index()]
}

// Clone returns an independent copy.
func (s *TetSet) Clone() *TetSet {
	out := NewTetSet()
	for k, v := range s.m {
		out.m[k] = v
	}
	return out
}

// Len returns the number of claimed tetrahedra.
func (s *TetSet) Len() int { return len(s.m) }
