package otshape

import "github.com/npillmayer/otshaper/ot"

// FeatureSet is the set of typographic features enabled for a shape call.
// Feature tags not present (or set to false) are not applied, even if the
// font defines them for the resolved script and language.
type FeatureSet map[ot.Tag]bool

// DefaultFeatures returns the conventionally expected feature set: standard
// and contextual ligatures, kerning, and mark positioning on; discretionary,
// stylistic and script-specific forms off.
func DefaultFeatures() FeatureSet {
	return FeatureSet{
		ot.T("liga"): true, // Standard Ligatures
		ot.T("clig"): true, // Contextual Ligatures
		ot.T("kern"): true, // Kerning
		ot.T("mark"): true, // Mark Positioning
		ot.T("mkmk"): true, // Mark to Mark Positioning
	}
}

// With returns a copy of the feature set with the given features enabled.
func (fs FeatureSet) With(tags ...ot.Tag) FeatureSet {
	out := fs.clone()
	for _, tag := range tags {
		out[tag] = true
	}
	return out
}

// Without returns a copy of the feature set with the given features disabled.
func (fs FeatureSet) Without(tags ...ot.Tag) FeatureSet {
	out := fs.clone()
	for _, tag := range tags {
		delete(out, tag)
	}
	return out
}

func (fs FeatureSet) clone() FeatureSet {
	out := make(FeatureSet, len(fs)+2)
	for tag, on := range fs {
		out[tag] = on
	}
	return out
}
