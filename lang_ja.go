//go:build !nolang_ja

package budoux

import "github.com/budoux-go/budoux/model"

var modelJa = &model.Ja

// NextJa advances s using the Japanese score tables and returns the next
// emitted phrase span, or ok == false once the input is exhausted.
func (s *Segmenter) NextJa() (Span, bool) {
	return s.next(modelJa)
}
