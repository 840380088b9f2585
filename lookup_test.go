package budoux

import (
	"testing"

	"github.com/budoux-go/budoux/model"
)

func TestFind1(t *testing.T) {
	table := []model.Entry1{
		{Key: 1, Score: 10},
		{Key: 5, Score: 20},
		{Key: 9, Score: 30},
	}
	cases := []struct {
		cp   uint32
		want int32
	}{
		{1, 10}, {5, 20}, {9, 30}, {0, 0}, {4, 0}, {100, 0},
	}
	for _, c := range cases {
		if got := find1(table, c.cp); got != c.want {
			t.Fatalf("find1(table, %d) = %d, want %d", c.cp, got, c.want)
		}
	}
}

func TestFind1EmptyTable(t *testing.T) {
	if got := find1(nil, 42); got != 0 {
		t.Fatalf("find1(nil, 42) = %d, want 0", got)
	}
}

func TestFind2(t *testing.T) {
	table := []model.Entry2{
		{Key: model.PackKey2(1, 2), Score: 7},
		{Key: model.PackKey2(3, 4), Score: 8},
	}
	if got := find2(table, 1, 2); got != 7 {
		t.Fatalf("find2(table, 1, 2) = %d, want 7", got)
	}
	if got := find2(table, 2, 1); got != 0 {
		t.Fatalf("find2(table, 2, 1) = %d, want 0 (order matters)", got)
	}
	if got := find2(table, 9, 9); got != 0 {
		t.Fatalf("find2(table, 9, 9) = %d, want 0", got)
	}
}

func TestFind3(t *testing.T) {
	table := []model.Entry3{
		{Key: model.PackKey3(1, 2, 3), Score: 11},
		{Key: model.PackKey3(4, 5, 6), Score: 12},
	}
	if got := find3(table, 1, 2, 3); got != 11 {
		t.Fatalf("find3(table, 1, 2, 3) = %d, want 11", got)
	}
	if got := find3(table, 4, 5, 6); got != 12 {
		t.Fatalf("find3(table, 4, 5, 6) = %d, want 12", got)
	}
	if got := find3(table, 1, 2, 4); got != 0 {
		t.Fatalf("find3(table, 1, 2, 4) = %d, want 0", got)
	}
}
