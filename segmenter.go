package budoux

import "github.com/budoux-go/budoux/model"

// Segmenter walks a UTF-8 byte slice and emits phrase-boundary Spans one at
// a time. It is a pull-based iterator: each Next call decodes code points one
// at a time, with a constant number of table binary searches per code point,
// until it emits one span or reaches the end of input, and then returns. A
// Segmenter holds no resources beyond a
// borrow of its input and needs no Close/teardown.
//
// A Segmenter is not safe for concurrent use; the per-language score tables
// it reads are package-level immutable data and may be shared across any
// number of Segmenters running on separate goroutines.
type Segmenter struct {
	input  []byte
	cursor int // byte offset of the next undecoded character
	last   int // byte offset immediately after the previously emitted span
	window contextWindow
}

// New binds a Segmenter to input. The returned Segmenter borrows input;
// input must outlive the Segmenter and must not be mutated while in use.
func New(input []byte) *Segmenter {
	return &Segmenter{input: input}
}

// next advances the state machine for language model m until either a
// boundary is emitted or the input is exhausted.
func (s *Segmenter) next(m *model.Model) (Span, bool) {
	for {
		cp, size := decodeRune(s.input, s.cursor)
		charOffset := s.cursor
		s.cursor += size
		s.window.push(cp, charOffset)

		end, hasCurrent := s.window.current()
		start := s.last
		length := end - start

		if hasCurrent {
			score := computeScore(m, s.window.cp[0], s.window.cp[1], s.window.cp[2],
				s.window.cp[3], s.window.cp[4], s.window.cp[5])
			if score <= 0 || length <= 0 {
				continue
			}
			s.last = end
			return Span{Offset: start, Length: length}, true
		}

		// Slot 3 is the sentinel: either the stream hasn't produced three
		// code points yet, or it has been fully drained past the last one.
		if end >= len(s.input) {
			if length <= 0 || start >= len(s.input) {
				return Span{}, false
			}
			s.cursor = len(s.input)
			s.last = len(s.input)
			return Span{Offset: start, Length: length}, true
		}
	}
}
