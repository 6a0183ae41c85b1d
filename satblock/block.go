package satblock

import (
	"fmt"

	"github.com/gmanifold/satrec/sfspace"
	"github.com/gmanifold/satrec/tri"
)

// Kind distinguishes the concrete saturated-block variants of spec §4.1.
type Kind int

const (
	KindLST Kind = iota
	KindTriPrism
	KindCube
	KindMobius
	KindReflectorStrip
	KindLayering
)

func (k Kind) String() string {
	switch k {
	case KindLST:
		return "LST"
	case KindTriPrism:
		return "TriPrism"
	case KindCube:
		return "Cube"
	case KindMobius:
		return "Mobius"
	case KindReflectorStrip:
		return "ReflectorStrip"
	case KindLayering:
		return "Layering"
	default:
		return "Unknown"
	}
}

// Adjacency records, for one boundary annulus of a block, the
// neighbouring block glued there and how the two annuli's (fibre,
// base-curve) bases relate (spec §4.1's block-adjacency record).
type Adjacency struct {
	Neighbour         *Block
	NeighbourAnnulus  int
	RefVert, RefHoriz bool
}

// LSTParams holds the meridinal-cut triple of a layered-solid-torus
// block's unique boundary annulus (spec §4.2, grounded on
// nsatblocktypes.cpp's NSatLST, whose three cut numbers index the three
// edge types of the boundary torus).
type LSTParams struct {
	CutsVert  int64
	CutsHoriz int64
	CutsDiag  int64
}

// TriPrismParams records which of the two triangular-prism orientations
// (major or minor) was identified (spec §4.2, grounded on
// nsatblocktypes.cpp's NSatTriPrism::insertBlock; both the "major" and
// the "minor" variant are built from three tetrahedra).
type TriPrismParams struct {
	Major bool
}

// MobiusParams records which of the three possible diagonal positions a
// one-tetrahedron Mobius-band block was built from.
type MobiusParams struct {
	Position int // 0, 1, or 2
}

// ReflectorStripParams records the length (number of tetrahedra/boundary
// annuli) of a reflector-strip chain and whether it carries a twist.
type ReflectorStripParams struct {
	Length  int
	Twisted bool
}

// LayeringParams records which pair of opposite edges the single
// layering tetrahedron layers across.
type LayeringParams struct {
	OverHorizontal bool
}

// Block is a saturated block: a small collection of tetrahedra, claimed
// from the ambient triangulation, whose interior has a product (or
// twisted-product) Seifert structure over an elementary base piece, and
// whose boundary consists of one or more saturated annuli available to
// glue to neighbouring blocks (spec §4.1-§4.2).
//
// This is modelled as a tagged union (Kind selects which of the
// following payload pointers is populated) rather than an interface
// with one implementing type per kind, because every operation on a
// block (NAnnuli, AdjustSFS, adjacency bookkeeping) is driven by a
// switch over Kind in the original and the payloads are small value
// structs, not behaviour-bearing types in their own right.
type Block struct {
	Kind   Kind
	Annuli []SatAnnulus
	Adj    []*Adjacency // parallel to Annuli; nil entry => unattached
	Claim  []*tri.Tetrahedron

	LST            *LSTParams
	TriPrism       *TriPrismParams
	Mobius         *MobiusParams
	ReflectorStrip *ReflectorStripParams
	Layering       *LayeringParams
}

// NAnnuli returns the number of boundary annuli len(b.Annuli) should
// have for b's kind.
func (b *Block) NAnnuli() int {
	switch b.Kind {
	case KindLST:
		return 1
	case KindTriPrism:
		return 3
	case KindCube:
		return 4
	case KindMobius:
		return 1
	case KindReflectorStrip:
		return b.ReflectorStrip.Length
	case KindLayering:
		return 2
	default:
		return 0
	}
}

// SetAdjacency records that annulus index i of b is glued to annulus
// index j of other, with the given basis-reflection flags.
func (b *Block) SetAdjacency(i int, other *Block, j int, refVert, refHoriz bool) {
	for len(b.Adj) <= i {
		b.Adj = append(b.Adj, nil)
	}
	b.Adj[i] = &Adjacency{Neighbour: other, NeighbourAnnulus: j, RefVert: refVert, RefHoriz: refHoriz}
}

// TwistedBoundary reports whether this block's own boundary identifies
// itself with a fibre-reversing twist: true for twisted reflector strips
// and for every Mobius block (spec §4.3's has_twist flag is seeded
// from this at the point a block with no external neighbour on some
// annulus is found).
func (b *Block) TwistedBoundary() bool {
	switch b.Kind {
	case KindReflectorStrip:
		return b.ReflectorStrip.Twisted
	case KindMobius:
		return true
	default:
		return false
	}
}

// AdjustSFS folds this block's contribution to the Seifert invariants
// of sfs being built up by region expansion (spec §4.2's adjust_sfs) and
// returns the updated value: LST and triangular-prism blocks each insert
// one exceptional fibre; Mobius blocks insert a multiplicity-2 fibre;
// cube, reflector-strip and layering blocks contribute no fibre of their
// own (their effect on the base orbifold and reflector count is folded
// in at the region level). sfspace.SFSpace is an immutable value type
// throughout this module, so callers must take the returned value
// rather than expect sfs itself to change.
func (b *Block) AdjustSFS(sfs sfspace.SFSpace, reflect bool) sfspace.SFSpace {
	switch b.Kind {
	case KindLST:
		beta := b.LST.CutsHoriz
		if reflect {
			beta = -beta
		}
		return sfs.InsertFibre(b.LST.CutsVert, beta)
	case KindTriPrism:
		alpha := int64(1)
		beta := int64(2)
		if b.TriPrism.Major {
			beta = 1
		}
		if reflect {
			beta = -beta
		}
		return sfs.InsertFibre(alpha, beta)
	case KindMobius:
		betaTable := [3]int64{1, -1, 1}
		beta := betaTable[b.Mobius.Position]
		if reflect {
			beta = -beta
		}
		return sfs.InsertFibre(2, beta)
	case KindCube, KindReflectorStrip, KindLayering:
		return sfs
	default:
		panic(fmt.Sprintf("satblock: AdjustSFS: unknown kind %v", b.Kind))
	}
}
