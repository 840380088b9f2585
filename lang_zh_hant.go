//go:build !nolang_zh_hant

package budoux

import "github.com/budoux-go/budoux/model"

var modelZhHant = &model.ZhHant

// NextZhHant advances s using the Traditional Chinese score tables and
// returns the next emitted phrase span, or ok == false once exhausted.
func (s *Segmenter) NextZhHant() (Span, bool) {
	return s.next(modelZhHant)
}
