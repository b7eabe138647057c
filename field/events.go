package field

// ChangeEvent describes one effective content change, after max-length
// enforcement. Length is measured in grapheme clusters.
type ChangeEvent struct {
	Value  string
	Length int
}
