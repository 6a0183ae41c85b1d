// Package sfspace implements SFSpace, the canonical algebraic invariant
// of a Seifert fibred space: a base orbifold class, a genus, puncture
// and reflector counts, an ordered list of exceptional fibres, and an
// integer obstruction constant (spec.md §3, §4.1).
//
// SFSpace values are immutable from the caller's point of view: every
// mutating-looking method (InsertFibre, Reflect, AddReflector,
// InsertPuncture, Reduce) returns a new value, matching spec §9's
// design note that Reduce's contract is "purely functional" even though
// the original threaded a mutable receiver through many call sites.
package sfspace

import (
	"fmt"
	"sort"
)

// BaseClass enumerates the eleven base-orbifold classes of spec.md's
// glossary. The ordering below is also the lexicographic order used by
// Less (spec §4.1).
type BaseClass int

const (
	O1 BaseClass = iota
	O2
	N1
	N2
	N3
	N4
	BO1
	BO2
	BN1
	BN2
	BN3
)

func (c BaseClass) String() string {
	switch c {
	case O1:
		return "o1"
	case O2:
		return "o2"
	case N1:
		return "n1"
	case N2:
		return "n2"
	case N3:
		return "n3"
	case N4:
		return "n4"
	case BO1:
		return "bo1"
	case BO2:
		return "bo2"
	case BN1:
		return "bn1"
	case BN2:
		return "bn2"
	case BN3:
		return "bn3"
	default:
		return fmt.Sprintf("BaseClass(%d)", int(c))
	}
}

// Orientable reports whether the base orbifold (ignoring reflector
// boundary, which is itself orientation-reversing) is orientable.
func (c BaseClass) Orientable() bool {
	switch c {
	case O1, O2, BO1, BO2:
		return true
	default:
		return false
	}
}

// HasReflector reports whether this class carries reflector boundary.
func (c BaseClass) HasReflector() bool {
	switch c {
	case BO1, BO2, BN1, BN2, BN3:
		return true
	default:
		return false
	}
}

// FibreNegating reports whether a fibre in this base orbifold can have
// its direction reversed by a path in the base (i.e. (alpha,beta) and
// (alpha,-beta) describe the same piece). Grounded on
// ngraphpair.cpp's use of sfs->fibreNegating(): true exactly for the
// "2/3/4"-suffixed classes, which mark a fibre-reversing twist.
func (c BaseClass) FibreNegating() bool {
	switch c {
	case O2, N2, N3, N4, BO2, BN2, BN3:
		return true
	default:
		return false
	}
}

// reflected maps a class to the class obtained by globally reversing
// fibre direction (spec §4.1 Reflect: "flips base class between o1/o2
// where relevant"). Non o/bo classes have no distinct mirror class (the
// ambiguity is already absorbed into non-orientability), so they are
// fixed points.
func (c BaseClass) reflected() BaseClass {
	switch c {
	case O1:
		return O2
	case O2:
		return O1
	case BO1:
		return BO2
	case BO2:
		return BO1
	default:
		return c
	}
}

// Fibre is an exceptional fibre (alpha, beta) with alpha >= 2 and beta
// reduced into [0, alpha).
type Fibre struct {
	Alpha, Beta int64
}

func (f Fibre) less(other Fibre) bool {
	if f.Alpha != other.Alpha {
		return f.Alpha < other.Alpha
	}
	return f.Beta < other.Beta
}

// SFSpace is the canonical Seifert-fibred-space invariant of spec §3.
type SFSpace struct {
	BaseClass            BaseClass
	BaseGenus            uint32
	PuncturesUntwisted   uint32
	PuncturesTwisted     uint32
	ReflectorsUntwisted  uint32
	ReflectorsTwisted    uint32
	Fibres               []Fibre
	Obstruction          int64
}

// New creates an empty SFSpace of the given base class and genus, with
// no fibres, punctures or reflectors and obstruction 0.
func New(class BaseClass, genus uint32) SFSpace {
	return SFSpace{BaseClass: class, BaseGenus: genus}
}

func normalizeBeta(alpha, beta int64) (reducedBeta, quotient int64) {
	q := beta / alpha
	r := beta % alpha
	if r < 0 {
		r += alpha
		q--
	}
	return r, q
}

// InsertFibre adds an exceptional fibre (alpha, beta). If alpha == 1
// the fibre carries no topological information of its own and is
// absorbed directly into the obstruction constant (spec §4.1).
func (s SFSpace) InsertFibre(alpha, beta int64) SFSpace {
	if alpha == 1 {
		s.Obstruction += beta
		return s
	}
	reducedBeta, q := normalizeBeta(alpha, beta)
	s.Obstruction += q
	fibres := make([]Fibre, len(s.Fibres), len(s.Fibres)+1)
	copy(fibres, s.Fibres)
	s.Fibres = append(fibres, Fibre{Alpha: alpha, Beta: reducedBeta})
	return s
}

// AddReflector adds count reflector boundary components, twisted or
// untwisted.
func (s SFSpace) AddReflector(count uint32, twisted bool) SFSpace {
	if twisted {
		s.ReflectorsTwisted += count
	} else {
		s.ReflectorsUntwisted += count
	}
	return s
}

// InsertPuncture adds one puncture (ordinary torus boundary of the
// Seifert fibred space), twisted or untwisted.
func (s SFSpace) InsertPuncture(twisted bool) SFSpace {
	if twisted {
		s.PuncturesTwisted++
	} else {
		s.PuncturesUntwisted++
	}
	return s
}

// Reflect returns the SFSpace obtained by globally reversing the
// direction of every fibre: each (alpha,beta) becomes (alpha,-beta mod
// alpha), the obstruction negates, and the base class flips between
// o1/o2 (or bo1/bo2) where that distinction exists (spec §4.1).
func (s SFSpace) Reflect() SFSpace {
	out := s
	out.BaseClass = s.BaseClass.reflected()
	out.Obstruction = -s.Obstruction
	out.Fibres = make([]Fibre, len(s.Fibres))
	for i, f := range s.Fibres {
		nb := (-f.Beta) % f.Alpha
		if nb < 0 {
			nb += f.Alpha
		}
		out.Fibres[i] = Fibre{Alpha: f.Alpha, Beta: nb}
	}
	return out
}

// hasBoundary reports whether this space has any puncture or reflector
// boundary, i.e. whether the obstruction constant is gauge (can be
// normalised to zero by absorbing it into a boundary curve) rather than
// a genuine invariant of a closed base orbifold.
func (s SFSpace) hasBoundary() bool {
	return s.PuncturesUntwisted+s.PuncturesTwisted+s.ReflectorsUntwisted+s.ReflectorsTwisted > 0
}

// Reduce brings s into canonical form (spec §4.1):
//  1. sorts the fibre list by (alpha, beta);
//  2. for fibre-reversing bases, collapses each (alpha,beta) to the
//     canonical representative min(beta, alpha-beta) of its ambiguity
//     class;
//  3. normalises the obstruction to 0 when the base orbifold has
//     boundary (a puncture or reflector absorbs any integer shift),
//     otherwise leaves it
//     as the genuine invariant of a closed base orbifold;
//  4. if mayReflect, returns whichever of (s, s.Reflect()) is
//     lexicographically smaller under Less, both independently reduced
//     with mayReflect=false to avoid infinite recursion.
func (s SFSpace) Reduce(mayReflect bool) SFSpace {
	out := s
	out.Fibres = append([]Fibre(nil), s.Fibres...)
	sort.Slice(out.Fibres, func(i, j int) bool { return out.Fibres[i].less(out.Fibres[j]) })

	if out.BaseClass.FibreNegating() {
		for i, f := range out.Fibres {
			alt := f.Alpha - f.Beta
			if alt < f.Beta {
				out.Fibres[i].Beta = alt
			}
		}
		sort.Slice(out.Fibres, func(i, j int) bool { return out.Fibres[i].less(out.Fibres[j]) })
	}

	if out.hasBoundary() {
		out.Obstruction = 0
	}

	if !mayReflect {
		return out
	}

	reflected := s.Reflect().Reduce(false)
	plain := out
	plain.Fibres = append([]Fibre(nil), out.Fibres...)
	if reflected.Less(plain) {
		return reflected
	}
	return plain
}

// Less is the lexicographic ordering over
// (BaseClass, BaseGenus, PuncturesUntwisted, PuncturesTwisted,
// ReflectorsUntwisted, ReflectorsTwisted, Fibres, Obstruction)
// specified in spec §4.1/§9 (resolving the upstream tie-break ambiguity
// the source left undocumented).
func (s SFSpace) Less(other SFSpace) bool {
	if s.BaseClass != other.BaseClass {
		return s.BaseClass < other.BaseClass
	}
	if s.BaseGenus != other.BaseGenus {
		return s.BaseGenus < other.BaseGenus
	}
	if s.PuncturesUntwisted != other.PuncturesUntwisted {
		return s.PuncturesUntwisted < other.PuncturesUntwisted
	}
	if s.PuncturesTwisted != other.PuncturesTwisted {
		return s.PuncturesTwisted < other.PuncturesTwisted
	}
	if s.ReflectorsUntwisted != other.ReflectorsUntwisted {
		return s.ReflectorsUntwisted < other.ReflectorsUntwisted
	}
	if s.ReflectorsTwisted != other.ReflectorsTwisted {
		return s.ReflectorsTwisted < other.ReflectorsTwisted
	}
	for i := 0; i < len(s.Fibres) && i < len(other.Fibres); i++ {
		if s.Fibres[i] != other.Fibres[i] {
			return s.Fibres[i].less(other.Fibres[i])
		}
	}
	if len(s.Fibres) != len(other.Fibres) {
		return len(s.Fibres) < len(other.Fibres)
	}
	return s.Obstruction < other.Obstruction
}

// Equal reports whether s and other are identical presentations (not
// merely equivalent up to Reduce).
func (s SFSpace) Equal(other SFSpace) bool {
	return !s.Less(other) && !other.Less(s)
}

// FibreCount returns the number of exceptional fibres.
func (s SFSpace) FibreCount() int { return len(s.Fibres) }

// String renders a single-line human-readable name, the write_name
// contract of spec §6, e.g. "SFS [o1: g0] (1,1)".
func (s SFSpace) String() string {
	out := fmt.Sprintf("SFS [%s: g%d", s.BaseClass, s.BaseGenus)
	if s.PuncturesUntwisted > 0 {
		out += fmt.Sprintf(" +%d", s.PuncturesUntwisted)
	}
	if s.PuncturesTwisted > 0 {
		out += fmt.Sprintf(" +%d~", s.PuncturesTwisted)
	}
	if s.ReflectorsUntwisted > 0 {
		out += fmt.Sprintf(" r%d", s.ReflectorsUntwisted)
	}
	if s.ReflectorsTwisted > 0 {
		out += fmt.Sprintf(" r%d~", s.ReflectorsTwisted)
	}
	out += "]"
	for _, f := range s.Fibres {
		out += fmt.Sprintf(" (%d,%d)", f.Alpha, f.Beta)
	}
	if s.Obstruction != 0 {
		out += fmt.Sprintf(" b=%d", s.Obstruction)
	}
	return out
}
