// Code generated by internal/modelcompile from models/zh-hans.json; treat as
// generated data. Regenerate with `go run ./cmd/budouxgen`.

package model

// ZhHans is a small, hand-authored score model for Simplified Chinese.
// It is NOT the published BudouX model (see DESIGN.md); it exists to
// exercise every table role end-to-end with plausible, human-checkable data.
var ZhHans = Model{
	UW1: []Entry1{
		{Key: 0x4eec, Score: 1}, // '们'
		{Key: 0x6211, Score: 2}, // '我'
		{Key: 0x7684, Score: 3}, // '的'
	},
	UW2: []Entry1{
		{Key: 0x4f7f, Score: 1}, // '使'
		{Key: 0x547d, Score: 2}, // '命'
	},
	UW3: []Entry1{
		{Key: 0x6574, Score: 1}, // '整'
		{Key: 0x662f, Score: 2}, // '是'
	},
	UW4: []Entry1{
		{Key: 0x5168, Score: -2}, // '全'
		{Key: 0x5408, Score: 3}, // '合'
	},
	UW5: []Entry1{
		{Key: 0x4fe1, Score: 2}, // '信'
		{Key: 0x7403, Score: 1}, // '球'
	},
	UW6: []Entry1{
		{Key: 0x606f, Score: 1}, // '息'
		{Key: 0xff0c, Score: 3}, // '，'
	},
	BW1: []Entry2{
		{Key: 0x9efe0547d, Score: 3}, // '使命'
		{Key: 0xc42204eec, Score: 4}, // '我们'
	},
	BW2: []Entry2{
		{Key: 0xa8fa0662f, Score: -2}, // '命是'
		{Key: 0xcae805408, Score: 1}, // '整合'
	},
	BW3: []Entry2{
		{Key: 0xa81005168, Score: 2}, // '合全'
		{Key: 0xe80604fe1, Score: 1}, // '球信'
	},
	TW1: []Entry3{
		{Key: 0x1884409dd807684, Score: 5}, // '我们的'
	},
	TW2: []Entry3{
		{Key: 0x13bb00ed0804f7f, Score: -3}, // '们的使'
	},
	TW3: []Entry3{
		{Key: 0x1da1009efe0547d, Score: 2}, // '的使命'
	},
	TW4: []Entry3{
		{Key: 0x13dfc0a8fa0662f, Score: 1}, // '使命是'
	},
	Base: -34,
}
