//go:build !nolang_ja_knbc

package budoux

import "github.com/budoux-go/budoux/model"

var modelJaKNBC = &model.JaKNBC

// NextJaKNBC advances s using the KNBC-trained Japanese score tables and
// returns the next emitted phrase span, or ok == false once exhausted.
func (s *Segmenter) NextJaKNBC() (Span, bool) {
	return s.next(modelJaKNBC)
}
