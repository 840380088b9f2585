package budoux

// Span is a contiguous byte range of a Segmenter's input. Offset and
// Offset+Length always fall on UTF-8 code-point boundaries of the input,
// and Length is always greater than zero for a Span returned from a
// successful Next call.
type Span struct {
	Offset int
	Length int
}
