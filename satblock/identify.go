package satblock

// TryIdentify attempts each known block type against annulus in turn,
// returning the first that matches (grounded on
// nsatblock.cpp::NSatBlock::isBlock, which tries NSatLST then
// NSatTriPrism in that order; the remaining four kinds are appended
// after them since no upstream order exists for variants the source
// itself left unimplemented).
func TryIdentify(annulus SatAnnulus, avoid *TetSet) (*Block, bool) {
	if b, ok := TryIdentifyLST(annulus, avoid); ok {
		return b, true
	}
	if b, ok := TryIdentifyTriPrism(annulus, avoid); ok {
		return b, true
	}
	if b, ok := TryIdentifyCube(annulus, avoid); ok {
		return b, true
	}
	if b, ok := TryIdentifyMobius(annulus, avoid); ok {
		return b, true
	}
	if b, ok := TryIdentifyReflectorStrip(annulus, avoid); ok {
		return b, true
	}
	if b, ok := TryIdentifyLayering(annulus, avoid); ok {
		return b, true
	}
	return nil, false
}
