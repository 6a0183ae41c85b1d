package sfspace

import "github.com/gmanifold/satrec/snf"

// Homology computes H1 of the Seifert fibred space as (torsion
// coefficients, free rank) via the integer presentation matrix of spec
// §4.1, handed to snf.Diagonal/Invariants for reduction.
//
// Column order: one fibre generator h; two base-curve generators per
// unit of BaseGenus; one generator per exceptional fibre; two
// generators per reflector (untwisted+twisted treated alike as
// "reflector" for this count, matching spec property 7's "two per
// reflector"). Total columns = 2*BaseGenus + FibreCount + 2*Reflectors
// + 1, matching spec §8 property 7 exactly.
//
// Row order: one relation per exceptional fibre (alpha_i*x_i +
// beta_i*h = 0); one obstruction relation (b*h + sum_i x_i = 0); one
// reflector relation per reflector (2*refGen_j - h = 0); and one
// base-orbifold relation (abelianised commutator-product relation,
// contributing -2*genus*h when the base is non-orientable and the zero
// row otherwise). Total rows = FibreCount + Reflectors + 2, matching
// property 7. When the base is fibre-reversing, a further row
// constrains h to be 2-torsion-compatible with the twisted fibration
// (beyond property 7's baseline count, as the property's text allows).
func (s SFSpace) Homology() (torsion []int64, freeRank int) {
	reflectors := int(s.ReflectorsUntwisted + s.ReflectorsTwisted)
	f := s.FibreCount()
	g := int(s.BaseGenus)

	cols := 1 + 2*g + f + 2*reflectors
	rows := f + reflectors + 2
	if s.BaseClass.FibreNegating() {
		rows++
	}

	m := snf.NewMatrix(rows, cols)
	const hCol = 0
	fibreCol := func(i int) int { return 1 + 2*g + i }
	reflectorCol := func(i int) int { return 1 + 2*g + f + 2*i }

	row := 0
	for i, fib := range s.Fibres {
		m.Set(row, fibreCol(i), fib.Alpha)
		m.Set(row, hCol, fib.Beta)
		row++
	}

	// Obstruction relation.
	m.Set(row, hCol, s.Obstruction)
	for i := range s.Fibres {
		m.Set(row, fibreCol(i), 1)
	}
	row++

	// Reflector relations.
	for i := 0; i < reflectors; i++ {
		m.Set(row, reflectorCol(i), 2)
		m.Set(row, hCol, -1)
		row++
	}

	// Base-orbifold commutator relation (abelianised).
	if !s.BaseClass.Orientable() {
		m.Set(row, hCol, -2*int64(g))
	}
	row++

	if s.BaseClass.FibreNegating() {
		// Fibre-constraint relation: reversing the fibre around a
		// cross-cap/handle identifies h with its own inverse up to the
		// obstruction, i.e. 2h = 0 in the presence of a fibre-reversing
		// loop with no compensating exceptional data.
		m.Set(row, hCol, 2)
	}

	diag := snf.Diagonal(m)
	torsion, freeRank = snf.Invariants(diag)
	// Columns beyond len(diag) (== min(rows,cols)) carry no relation at
	// all when cols > rows — e.g. the 2*BaseGenus base-curve generators
	// when there are few exceptional fibres/reflectors — and each
	// contributes one further free Z factor.
	if cols > len(diag) {
		freeRank += cols - len(diag)
	}
	return torsion, freeRank
}
