package budoux

import (
	"testing"

	"github.com/budoux-go/budoux/model"
)

// tinyModel is a minimal, fully hand-checkable model used to pin down the
// scoring formula's arithmetic independent of any shipped language table.
func tinyModel() *model.Model {
	return &model.Model{
		UW1: []model.Entry1{{Key: 1, Score: 1}},
		UW4: []model.Entry1{{Key: 4, Score: 2}},
		BW2: []model.Entry2{{Key: model.PackKey2(4, 5), Score: 3}},
		TW2: []model.Entry3{{Key: model.PackKey3(3, 4, 5), Score: 4}},
		Base: -20,
	}
}

func TestComputeScoreMatchesFormula(t *testing.T) {
	m := tinyModel()
	// u0=1 matches UW1 (+1), u3=4 matches UW4 (+2), (u2,u3)=(3,4) matches
	// nothing in BW2 (BW2 wants (u2,u3)... wait BW2 is keyed on (u2,u3)).
	got := computeScore(m, 1, 2, 3, 4, 5, 6)
	// sum = UW1(1)=1 + UW4(4)=2 + BW2(3,4)=0 (table keyed (4,5)) + TW2(2,3,4)=0
	// (table keyed (3,4,5)) => sum=3, score = base + 2*sum = -20+6 = -14.
	want := int32(-14)
	if got != want {
		t.Fatalf("computeScore = %d, want %d", got, want)
	}
}

func TestComputeScoreBigramHit(t *testing.T) {
	m := tinyModel()
	// (u2,u3) = (4,5) so BW2 hits; TW2 (keyed (3,4,5)) misses because u1 is 0.
	got := computeScore(m, 0, 0, 4, 5, 0, 0)
	// UW1(0)=0, UW4(5)=0, BW2(4,5)=3, TW2(0,4,5)=0 => sum=3, score=-20+6=-14.
	want := int32(-14)
	if got != want {
		t.Fatalf("computeScore = %d, want %d", got, want)
	}
}

func TestComputeScoreEmptyModelIsJustBase(t *testing.T) {
	m := &model.Model{Base: 5}
	if got := computeScore(m, 1, 2, 3, 4, 5, 6); got != 5 {
		t.Fatalf("computeScore(empty model) = %d, want 5", got)
	}
}
