package budoux

import "fmt"

// Language selects which score model a Segmenter should consult. It is
// consumed by Segment and by cmd/budouxcat's -lang flag; the zero-allocation
// per-language methods (NextJa and its siblings) remain the primary API for
// callers on a hot path.
type Language int

const (
	LangJa Language = iota
	LangJaKNBC
	LangTh
	LangZhHans
	LangZhHant
)

func (l Language) String() string {
	switch l {
	case LangJa:
		return "ja"
	case LangJaKNBC:
		return "ja-knbc"
	case LangTh:
		return "th"
	case LangZhHans:
		return "zh-hans"
	case LangZhHant:
		return "zh-hant"
	default:
		return fmt.Sprintf("Language(%d)", int(l))
	}
}

// ParseLanguage maps the CLI-facing spellings used by cmd/budouxcat back to
// a Language value.
func ParseLanguage(s string) (Language, error) {
	switch s {
	case "ja":
		return LangJa, nil
	case "ja-knbc":
		return LangJaKNBC, nil
	case "th":
		return LangTh, nil
	case "zh-hans":
		return LangZhHans, nil
	case "zh-hant":
		return LangZhHant, nil
	default:
		return 0, fmt.Errorf("budoux: unknown language %q", s)
	}
}

// Segment drains a fresh Segmenter over input for lang into a slice of
// phrase strings. It allocates one string per emitted span and is meant for
// convenience call sites, not the hot path (prefer New plus the per-language
// Next method there).
//
// Segment assumes the default build (all five languages compiled in). It
// calls all five per-language Next methods, so building with any nolang_*
// tag makes this file fail to compile, whichever lang is passed.
func Segment(lang Language, input []byte) []string {
	s := New(input)
	var out []string
	for {
		var span Span
		var ok bool
		switch lang {
		case LangJa:
			span, ok = s.NextJa()
		case LangJaKNBC:
			span, ok = s.NextJaKNBC()
		case LangTh:
			span, ok = s.NextTh()
		case LangZhHans:
			span, ok = s.NextZhHans()
		case LangZhHant:
			span, ok = s.NextZhHant()
		default:
			return out
		}
		if !ok {
			return out
		}
		out = append(out, string(input[span.Offset:span.Offset+span.Length]))
	}
}
