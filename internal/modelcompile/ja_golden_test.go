package modelcompile

import (
	"testing"

	"github.com/davecgh/go-spew/spew"

	"github.com/budoux-go/budoux/model"
)

// TestCompileOneMatchesCheckedInJaModel recompiles models/ja.json in
// isolation and checks that every table it produces has the same sorted
// (key, score) pairs as the checked-in model.Ja (i.e. that model/ja.go holds
// exactly the tables and base this package computes from its JSON source).
//
// On mismatch, go-spew dumps both sides in full so a diff is readable
// without decoding packed hex keys by hand.
func TestCompileOneMatchesCheckedInJaModel(t *testing.T) {
	cm, err := compileOne("../../models", LangSpec{
		JSONFile: "ja.json", OutFile: "ja.go", VarName: "Ja", Comment: "Japanese",
	})
	if err != nil {
		t.Fatalf("compileOne(ja.json): %v", err)
	}

	want := map[string][]entry{
		"UW1": entries1(model.Ja.UW1),
		"UW2": entries1(model.Ja.UW2),
		"UW3": entries1(model.Ja.UW3),
		"UW4": entries1(model.Ja.UW4),
		"UW5": entries1(model.Ja.UW5),
		"UW6": entries1(model.Ja.UW6),
		"BW1": entries2(model.Ja.BW1),
		"BW2": entries2(model.Ja.BW2),
		"BW3": entries2(model.Ja.BW3),
		"TW1": entries3(model.Ja.TW1),
		"TW2": entries3(model.Ja.TW2),
		"TW3": entries3(model.Ja.TW3),
		"TW4": entries3(model.Ja.TW4),
	}

	for _, name := range tableNames {
		if !sameEntries(cm.tables[name], want[name]) {
			t.Fatalf("table %s mismatch.\ngot:\n%s\nwant:\n%s",
				name, spew.Sdump(cm.tables[name]), spew.Sdump(want[name]))
		}
	}

	if wantBase := -int(sumScores(model.Ja)); cm.base != wantBase {
		t.Fatalf("base mismatch.\ngot:\n%s\nwant:\n%s", spew.Sdump(cm.base), spew.Sdump(wantBase))
	}
}

func entries1(table []model.Entry1) []entry {
	out := make([]entry, len(table))
	for i, e := range table {
		out[i] = entry{Key: uint64(e.Key), Score: int(e.Score)}
	}
	return out
}

func entries2(table []model.Entry2) []entry {
	out := make([]entry, len(table))
	for i, e := range table {
		out[i] = entry{Key: e.Key, Score: int(e.Score)}
	}
	return out
}

func entries3(table []model.Entry3) []entry {
	out := make([]entry, len(table))
	for i, e := range table {
		out[i] = entry{Key: e.Key, Score: int(e.Score)}
	}
	return out
}

func sameEntries(a, b []entry) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[entry]int, len(a))
	for _, e := range a {
		seen[e]++
	}
	for _, e := range b {
		if seen[e] == 0 {
			return false
		}
		seen[e]--
	}
	return true
}

func sumScores(m model.Model) int32 {
	var sum int32
	for _, e := range m.UW1 {
		sum += e.Score
	}
	for _, e := range m.UW2 {
		sum += e.Score
	}
	for _, e := range m.UW3 {
		sum += e.Score
	}
	for _, e := range m.UW4 {
		sum += e.Score
	}
	for _, e := range m.UW5 {
		sum += e.Score
	}
	for _, e := range m.UW6 {
		sum += e.Score
	}
	for _, e := range m.BW1 {
		sum += e.Score
	}
	for _, e := range m.BW2 {
		sum += e.Score
	}
	for _, e := range m.BW3 {
		sum += e.Score
	}
	for _, e := range m.TW1 {
		sum += e.Score
	}
	for _, e := range m.TW2 {
		sum += e.Score
	}
	for _, e := range m.TW3 {
		sum += e.Score
	}
	for _, e := range m.TW4 {
		sum += e.Score
	}
	return sum
}
