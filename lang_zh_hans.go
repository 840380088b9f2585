//go:build !nolang_zh_hans

package budoux

import "github.com/budoux-go/budoux/model"

var modelZhHans = &model.ZhHans

// NextZhHans advances s using the Simplified Chinese score tables and
// returns the next emitted phrase span, or ok == false once exhausted.
func (s *Segmenter) NextZhHans() (Span, bool) {
	return s.next(modelZhHans)
}
