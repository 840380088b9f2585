// Code generated by internal/modelcompile from models/ja.json; treat as
// generated data. Regenerate with `go run ./cmd/budouxgen`.

package model

// Ja is a small, hand-authored score model for Japanese.
// It is NOT the published BudouX model (see DESIGN.md); it exists to
// exercise every table role end-to-end with plausible, human-checkable data.
var Ja = Model{
	UW1: []Entry1{
		{Key: 0x4e2d, Score: 3}, // '中'
		{Key: 0x4eca, Score: 1}, // '今'
		{Key: 0x6b21, Score: 1}, // '次'
		{Key: 0x79c1, Score: 2}, // '私'
	},
	UW2: []Entry1{
		{Key: 0x306e, Score: 5}, // 'の'
		{Key: 0x6c17, Score: 1}, // '気'
		{Key: 0x6c7a, Score: 2}, // '決'
	},
	UW3: []Entry1{
		{Key: 0x540d, Score: 1}, // '名'
		{Key: 0x5929, Score: 2}, // '天'
		{Key: 0x95d8, Score: 2}, // '闘'
	},
	UW4: []Entry1{
		{Key: 0x304c, Score: -3}, // 'が'
		{Key: 0x3067, Score: 1}, // 'で'
		{Key: 0x4e2d, Score: 2}, // '中'
		{Key: 0x524d, Score: 4}, // '前'
	},
	UW5: []Entry1{
		{Key: 0x3059, Score: -1}, // 'す'
		{Key: 0x306f, Score: -2}, // 'は'
		{Key: 0x307e, Score: 1}, // 'ま'
	},
	UW6: []Entry1{
		{Key: 0x3002, Score: 3}, // '。'
		{Key: 0x3082, Score: 2}, // 'も'
		{Key: 0x4e2d, Score: 1}, // '中'
	},
	BW1: []Entry2{
		{Key: 0x60dc0540d, Score: 3}, // 'の名'
		{Key: 0xb25206c17, Score: 2}, // '天気'
		{Key: 0xd8f4095d8, Score: 4}, // '決闘'
	},
	BW2: []Entry2{
		{Key: 0xa81a0524d, Score: -5}, // '名前'
		{Key: 0xd82e03067, Score: -3}, // '気で'
		{Key: 0x12bb00304c, Score: -2}, // '闘が'
	},
	BW3: []Entry2{
		{Key: 0x60980307e, Score: 3}, // 'がま'
		{Key: 0x60ce03059, Score: 1}, // 'です'
		{Key: 0xa49a0306f, Score: 2}, // '前は'
	},
	TW1: []Entry3{
		{Key: 0x13b280cbca0306f, Score: 4}, // '今日は'
		{Key: 0x1e704060dc0540d, Score: 6}, // '私の名'
	},
	TW2: []Entry3{
		{Key: 0xc1b80a81a0524d, Score: -4}, // 'の名前'
		{Key: 0x19794060de05929, Score: 3}, // '日は天'
	},
	TW3: []Entry3{
		{Key: 0xc1bc0b25206c17, Score: 2}, // 'は天気'
		{Key: 0x150340a49a0306f, Score: 1}, // '名前は'
	},
	TW4: []Entry3{
		{Key: 0x14934060de04e2d, Score: 2}, // '前は中'
		{Key: 0x164a40d82e03067, Score: -2}, // '天気で'
	},
	Base: -45,
}
