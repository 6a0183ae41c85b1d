// Package tri provides the triangulation collaborator spec.md §6 treats
// as external: tetrahedra, face gluings, and the skeleton/connectivity
// queries the recognition core reads but never mutates beyond gluing at
// construction time (closedness, connectedness, component count,
// validity).
//
// Layout and option-construction follow the teacher's functional-option
// idiom (lvlath/core.GraphOption, lvlath/builder.BuilderOption):
// Triangulation is built via NewTriangulation(n, opts...) and mutated
// only through Glue before being handed to the recognition core, which
// treats it as read-only from then on (spec §5 — "Triangulations
// exclusively own their tetrahedra").
package tri

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/gmanifold/satrec/perm"
)

// Sentinel errors for triangulation construction and queries.
var (
	ErrFaceAlreadyGlued  = errors.New("tri: face is already glued")
	ErrIndexOutOfRange   = errors.New("tri: tetrahedron index out of range")
	ErrBadFaceIndex      = errors.New("tri: face index must be in {0,1,2,3}")
	ErrSelfGlueBadPerm   = errors.New("tri: gluing a tetrahedron face to itself requires a fixed-point-free restriction")
)

// Gluing records, for one face of a tetrahedron, the tetrahedron glued
// across that face and the permutation describing how the owning
// tetrahedron's vertices map onto the neighbour's.
type Gluing struct {
	Tet  *Tetrahedron
	Perm perm.P4
}

// Tetrahedron is one simplex of a Triangulation, identified by its
// index within the owning Triangulation. Tetrahedra are owned
// exclusively by their Triangulation (spec §5) — callers never
// construct one directly, only via Triangulation.Tetrahedron.
type Tetrahedron struct {
	index int
	owner *Triangulation
	adj   [4]*Gluing // nil entry => boundary face
}

// Index returns this tetrahedron's index within its triangulation.
func (t *Tetrahedron) Index() int { return t.index }

// Adjacent returns the gluing across face f, or nil if that face is a
// boundary face.
func (t *Tetrahedron) Adjacent(f int) *Gluing {
	return t.adj[f]
}

// IsBoundaryFace reports whether face f of t has no gluing.
func (t *Tetrahedron) IsBoundaryFace(f int) bool { return t.adj[f] == nil }

// Option configures a Triangulation at construction time.
type Option func(*Triangulation)

// WithLabel attaches a human-readable label to the triangulation
// (purely cosmetic; used by String()).
func WithLabel(label string) Option {
	return func(tr *Triangulation) { tr.label = label }
}

// Triangulation owns a fixed set of tetrahedra and the gluings between
// their faces. Construction proceeds by creating n unglued tetrahedra,
// then calling Glue repeatedly; once handed to the recognition core it
// is treated as immutable.
type Triangulation struct {
	tets  []*Tetrahedron
	label string
	// id is an opaque identifier an outer layer can use to track this
	// triangulation across repeated recognition attempts (e.g. a cache
	// key); the recognition core itself never reads it.
	id uuid.UUID
}

// NewTriangulation allocates n unglued tetrahedra.
func NewTriangulation(n int, opts ...Option) *Triangulation {
	tr := &Triangulation{tets: make([]*Tetrahedron, n), id: uuid.New()}
	for i := range tr.tets {
		tr.tets[i] = &Tetrahedron{index: i, owner: tr}
	}
	for _, opt := range opts {
		opt(tr)
	}
	return tr
}

// ID returns the opaque identifier assigned at construction.
func (tr *Triangulation) ID() uuid.UUID { return tr.id }

// NTetrahedra returns the number of tetrahedra.
func (tr *Triangulation) NTetrahedra() int { return len(tr.tets) }

// Tetrahedron returns the tetrahedron at index i.
func (tr *Triangulation) Tetrahedron(i int) (*Tetrahedron, error) {
	if i < 0 || i >= len(tr.tets) {
		return nil, fmt.Errorf("tri.Tetrahedron: %w: %d", ErrIndexOutOfRange, i)
	}
	return tr.tets[i], nil
}

// Tetrahedra returns the full ordered slice of tetrahedra (read-only
// view; callers must not mutate it).
func (tr *Triangulation) Tetrahedra() []*Tetrahedron { return tr.tets }

func validFace(f int) error {
	if f < 0 || f > 3 {
		return fmt.Errorf("%w: %d", ErrBadFaceIndex, f)
	}
	return nil
}

// Glue identifies face f1 of t1 with face f2 of t2 via gluing: gluing
// must send the three vertices of t1's face f1 (i.e. {0,1,2,3}\{f1})
// onto the three vertices of t2's face f2, and gluing[f1] must equal
// f2. Both faces must currently be unglued.
func (tr *Triangulation) Glue(t1 *Tetrahedron, f1 int, t2 *Tetrahedron, f2 int, gluing perm.P4) error {
	if err := validFace(f1); err != nil {
		return fmt.Errorf("tri.Glue: %w", err)
	}
	if err := validFace(f2); err != nil {
		return fmt.Errorf("tri.Glue: %w", err)
	}
	if gluing.At(f1) != f2 {
		return fmt.Errorf("tri.Glue: gluing must send face %d to face %d, got %d", f1, f2, gluing.At(f1))
	}
	if t1.adj[f1] != nil {
		return fmt.Errorf("tri.Glue: tet %d face %d: %w", t1.index, f1, ErrFaceAlreadyGlued)
	}
	if t2.adj[f2] != nil {
		return fmt.Errorf("tri.Glue: tet %d face %d: %w", t2.index, f2, ErrFaceAlreadyGlued)
	}
	if t1 == t2 && gluing.At(f2) == f1 && gluing == gluing.Inverse() {
		// A self-gluing whose restriction to {f1,f2} is itself fine; the
		// degenerate case we guard is a face glued to itself with a
		// permutation fixing it pointwise, which is not a valid 3-manifold
		// gluing.
		fixed := true
		for i := 0; i < 4; i++ {
			if i != f1 && gluing.At(i) != i {
				fixed = false
			}
		}
		if fixed {
			return fmt.Errorf("tri.Glue: %w", ErrSelfGlueBadPerm)
		}
	}

	inv := gluing.Inverse()
	t1.adj[f1] = &Gluing{Tet: t2, Perm: gluing}
	t2.adj[f2] = &Gluing{Tet: t1, Perm: inv}
	return nil
}

// IsClosed reports whether every face of every tetrahedron is glued.
func (tr *Triangulation) IsClosed() bool {
	for _, t := range tr.tets {
		for f := 0; f < 4; f++ {
			if t.adj[f] == nil {
				return false
			}
		}
	}
	return true
}

// NComponents returns the number of connected components of the dual
// graph (tetrahedra joined by a shared gluing).
func (tr *Triangulation) NComponents() int {
	n := len(tr.tets)
	seen := make([]bool, n)
	comps := 0
	for start := 0; start < n; start++ {
		if seen[start] {
			continue
		}
		comps++
		stack := []int{start}
		seen[start] = true
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			t := tr.tets[cur]
			for f := 0; f < 4; f++ {
				if g := t.adj[f]; g != nil && !seen[g.Tet.index] {
					seen[g.Tet.index] = true
					stack = append(stack, g.Tet.index)
				}
			}
		}
	}
	return comps
}

// IsConnected reports whether the triangulation has exactly one
// component (the empty triangulation is considered connected).
func (tr *Triangulation) IsConnected() bool {
	return len(tr.tets) == 0 || tr.NComponents() == 1
}

// IsValid performs the structural sanity checks the recognition core
// relies on before attempting recognition: every recorded gluing must
// be reciprocated correctly (t2's gluing must be the inverse of t1's).
// Self-gluings get no check beyond that reciprocity. Geometric validity (e.g. edge links) beyond the
// combinatorial gluing symmetry is out of scope (spec §1 Non-goals).
func (tr *Triangulation) IsValid() bool {
	for _, t := range tr.tets {
		for f := 0; f < 4; f++ {
			g := t.adj[f]
			if g == nil {
				continue
			}
			back := g.Tet.adj[g.Perm.At(f)]
			if back == nil || back.Tet != t {
				return false
			}
			if back.Perm != g.Perm.Inverse() {
				return false
			}
		}
	}
	return true
}

// String renders a short diagnostic summary.
func (tr *Triangulation) String() string {
	label := tr.label
	if label == "" {
		label = "triangulation"
	}
	return fmt.Sprintf("%s(%d tetrahedra, closed=%v, connected=%v)", label, len(tr.tets), tr.IsClosed(), tr.IsConnected())
}
