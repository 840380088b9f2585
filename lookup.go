package budoux

import "github.com/budoux-go/budoux/model"

// find1 returns the score stored for cp in a sorted unigram table, or 0 if
// cp is not present. table must be sorted strictly ascending by Key.
func find1(table []model.Entry1, cp uint32) int32 {
	n := len(table)
	if n == 0 {
		return 0
	}
	lo, hi := 0, n
	for lo < hi {
		mid := (lo + hi) / 2
		if table[mid].Key < cp {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < n && table[lo].Key == cp {
		return table[lo].Score
	}
	return 0
}

// find2 returns the score stored for the bigram (cpA, cpB) in a sorted
// bigram table, or 0 if absent.
func find2(table []model.Entry2, cpA, cpB uint32) int32 {
	n := len(table)
	if n == 0 {
		return 0
	}
	key := model.PackKey2(cpA, cpB)
	lo, hi := 0, n
	for lo < hi {
		mid := (lo + hi) / 2
		if table[mid].Key < key {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < n && table[lo].Key == key {
		return table[lo].Score
	}
	return 0
}

// find3 returns the score stored for the trigram (cpA, cpB, cpC) in a sorted
// trigram table, or 0 if absent.
func find3(table []model.Entry3, cpA, cpB, cpC uint32) int32 {
	n := len(table)
	if n == 0 {
		return 0
	}
	key := model.PackKey3(cpA, cpB, cpC)
	lo, hi := 0, n
	for lo < hi {
		mid := (lo + hi) / 2
		if table[mid].Key < key {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < n && table[lo].Key == key {
		return table[lo].Score
	}
	return 0
}
