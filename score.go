package budoux

import "github.com/budoux-go/budoux/model"

// computeScore evaluates the additive scoring formula for one language
// model against the window [u0..u5]. A positive result predicts a boundary
// immediately before u3.
//
// One generic routine parameterized by a model.Model descriptor stands in
// for a set of per-language-specialized functions, as long as every table
// it reads stays a statically allocated package-level var in package model.
func computeScore(m *model.Model, u0, u1, u2, u3, u4, u5 uint32) int32 {
	sum := find1(m.UW1, u0) + find1(m.UW2, u1) + find1(m.UW3, u2) +
		find1(m.UW4, u3) + find1(m.UW5, u4) + find1(m.UW6, u5) +
		find2(m.BW1, u1, u2) + find2(m.BW2, u2, u3) + find2(m.BW3, u3, u4) +
		find3(m.TW1, u0, u1, u2) + find3(m.TW2, u1, u2, u3) +
		find3(m.TW3, u2, u3, u4) + find3(m.TW4, u3, u4, u5)
	return m.Base + 2*sum
}
