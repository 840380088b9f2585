//go:build !nolang_th

package budoux

import "github.com/budoux-go/budoux/model"

var modelTh = &model.Th

// NextTh advances s using the Thai score tables and returns the next
// emitted phrase span, or ok == false once the input is exhausted.
func (s *Segmenter) NextTh() (Span, bool) {
	return s.next(modelTh)
}
