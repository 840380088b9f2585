// Package model holds the generated, per-language constant score tables
// consumed by the budoux segmenter runtime.
//
// Every value in this package is produced offline by
// github.com/budoux-go/budoux/internal/modelcompile from a models/<lang>.json
// score file; nothing in this package is computed at runtime. Entry1/Entry2/
// Entry3 map a packed 1/2/3-code-point key (see PackKey1, PackKey2 and
// PackKey3 below for the packing rules) to a signed score, and each table is sorted
// strictly ascending by key so the runtime's find1/find2/find3 binary
// searches are well-defined.
package model

// Entry1 is one row of a unigram (UW1..UW6) table.
type Entry1 struct {
	Key   uint32
	Score int32
}

// Entry2 is one row of a bigram (BW1..BW3) table. Key packs two code points
// as (cpA<<21)|cpB, cpA being the earlier character.
type Entry2 struct {
	Key   uint64
	Score int32
}

// Entry3 is one row of a trigram (TW1..TW4) table. Key packs three code
// points as (cpA<<42)|(cpB<<21)|cpC, cpA being the earliest character.
type Entry3 struct {
	Key   uint64
	Score int32
}

// Model is one language's full set of 13 score tables plus the base score.
//
// Base equals the negation of the sum of every score across all 13 tables,
// so that an input matching every key exactly once nets to a score of 0
// before the doubling step the scoring formula applies.
type Model struct {
	UW1, UW2, UW3, UW4, UW5, UW6 []Entry1
	BW1, BW2, BW3               []Entry2
	TW1, TW2, TW3, TW4           []Entry3
	Base                         int32
}

// codePointBits is the width reserved per code point inside a packed key.
// Every Unicode scalar fits in 21 bits, which is what makes the 2-gram and
// 3-gram packings below lossless and injective.
const codePointBits = 21

// PackKey1 packs a single code point for a unigram table lookup. It is the
// identity function; it exists so callers never hand-roll the packing rule.
func PackKey1(cp uint32) uint32 {
	return cp
}

// PackKey2 packs two code points, earliest first, for a bigram table lookup.
func PackKey2(cpA, cpB uint32) uint64 {
	return (uint64(cpA) << codePointBits) | uint64(cpB)
}

// PackKey3 packs three code points, earliest first, for a trigram table
// lookup.
func PackKey3(cpA, cpB, cpC uint32) uint64 {
	return (uint64(cpA) << (2 * codePointBits)) | (uint64(cpB) << codePointBits) | uint64(cpC)
}
