package budoux

import "testing"

func TestParseLanguageRoundTrip(t *testing.T) {
	cases := map[string]Language{
		"ja":      LangJa,
		"ja-knbc": LangJaKNBC,
		"th":      LangTh,
		"zh-hans": LangZhHans,
		"zh-hant": LangZhHant,
	}
	for s, want := range cases {
		got, err := ParseLanguage(s)
		if err != nil {
			t.Fatalf("ParseLanguage(%q) error: %v", s, err)
		}
		if got != want {
			t.Fatalf("ParseLanguage(%q) = %v, want %v", s, got, want)
		}
		if got.String() != s {
			t.Fatalf("%v.String() = %q, want %q", got, got.String(), s)
		}
	}
}

func TestParseLanguageUnknown(t *testing.T) {
	if _, err := ParseLanguage("klingon"); err == nil {
		t.Fatalf("ParseLanguage(klingon) should return an error")
	}
}

func TestSegmentDrainsWholeInput(t *testing.T) {
	input := []byte("私の名前は中野です。")
	spans := Segment(LangJa, input)
	if len(spans) == 0 {
		t.Fatalf("Segment returned no spans for non-empty input")
	}
	var rebuilt string
	for _, s := range spans {
		rebuilt += s
	}
	if rebuilt != string(input) {
		t.Fatalf("Segment spans do not reconstruct input: got %q, want %q", rebuilt, string(input))
	}
}

func TestSegmentEmptyInput(t *testing.T) {
	if spans := Segment(LangTh, nil); len(spans) != 0 {
		t.Fatalf("Segment(nil) = %v, want empty", spans)
	}
}
