// Package satrec recognises closed 3-manifolds triangulated as graphs of
// Seifert-fibred pieces glued along tori (graph manifolds).
//
// The pipeline runs in three stages:
//
//	satblock/satregion — identify saturated blocks around a starter
//	                      annulus and expand them into maximal connected
//	                      regions glued across matched tori (spec §4.2-§4.3)
//	layering/txicore    — walk layered boundary extensions and match
//	                      against the fixed T×I core catalogue (spec §4.4, §4.7)
//	graphmanifold/recognise — canonicalise the resulting block graph
//	                      (loop, pair, or triple of regions) into a
//	                      GraphLoop/GraphPair/GraphTriple manifold, or
//	                      report that the triangulation isn't one of these
//	                      decompositions (spec §4.5-§4.6, §6)
//
// recognise.RecogniseClosed3Manifold is the module's entry point: given a
// closed, connected triangulation it returns the recognised Manifold, or
// false if the triangulation isn't a graph manifold of a form this module
// covers.
package satrec
