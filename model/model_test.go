package model

import "testing"

func TestPackKey1IsIdentity(t *testing.T) {
	for _, cp := range []uint32{0, 1, 0x3042, 0x1f600} {
		if got := PackKey1(cp); got != cp {
			t.Fatalf("PackKey1(%#x) = %#x, want %#x", cp, got, cp)
		}
	}
}

func TestPackKey2Injective(t *testing.T) {
	seen := map[uint64][2]uint32{}
	pairs := [][2]uint32{
		{0x3042, 0x3044}, {0x3044, 0x3042}, {0, 1}, {1, 0},
		{0x1f600, 0x1f601}, {0x10ffff, 0x10ffff},
	}
	for _, p := range pairs {
		key := PackKey2(p[0], p[1])
		if prior, ok := seen[key]; ok && prior != p {
			t.Fatalf("PackKey2%v and PackKey2%v collide at %#x", prior, p, key)
		}
		seen[key] = p
	}
}

func TestPackKey3Injective(t *testing.T) {
	seen := map[uint64][3]uint32{}
	triples := [][3]uint32{
		{0x3042, 0x3044, 0x3046}, {0x3046, 0x3044, 0x3042},
		{0, 0, 1}, {1, 0, 0}, {0x10ffff, 0x10ffff, 0x10ffff},
	}
	for _, tr := range triples {
		key := PackKey3(tr[0], tr[1], tr[2])
		if prior, ok := seen[key]; ok && prior != tr {
			t.Fatalf("PackKey3%v and PackKey3%v collide at %#x", prior, tr, key)
		}
		seen[key] = tr
	}
}

func TestPackKey2RoundTrip(t *testing.T) {
	const a, b = 0x4e2d, 0x6587
	key := PackKey2(a, b)
	gotA := uint32(key >> codePointBits)
	gotB := uint32(key & (1<<codePointBits - 1))
	if gotA != a || gotB != b {
		t.Fatalf("PackKey2(%#x,%#x) = %#x, unpacked to (%#x,%#x)", a, b, key, gotA, gotB)
	}
}
