package satblock

import "github.com/gmanifold/satrec/perm"

// RolesForFace builds a role permutation whose fourth image is face and
// whose first three images are the tetrahedron's remaining vertices in
// increasing order, for use by identifiers that expose a fresh boundary
// annulus (layering, reflector-strip) where the exact fibre-direction
// convention is a modelling choice rather than one read off an upstream
// source. Exported because package recognise builds its candidate
// entry annuli with it.
func RolesForFace(face int) perm.P4 {
	var verts [3]int
	k := 0
	for v := 0; v < 4; v++ {
		if v != face {
			verts[k] = v
			k++
		}
	}
	return perm.MustNew(verts[0], verts[1], verts[2], face)
}
