// Code generated by internal/modelcompile from models/zh-hant.json; treat as
// generated data. Regenerate with `go run ./cmd/budouxgen`.

package model

// ZhHant is a small, hand-authored score model for Traditional Chinese.
// It is NOT the published BudouX model (see DESIGN.md); it exists to
// exercise every table role end-to-end with plausible, human-checkable data.
var ZhHant = Model{
	UW1: []Entry1{
		{Key: 0x5011, Score: 1}, // '們'
		{Key: 0x6211, Score: 2}, // '我'
		{Key: 0x7684, Score: 3}, // '的'
	},
	UW2: []Entry1{
		{Key: 0x4f7f, Score: 1}, // '使'
		{Key: 0x547d, Score: 2}, // '命'
	},
	UW3: []Entry1{
		{Key: 0x532f, Score: 1}, // '匯'
		{Key: 0x662f, Score: 2}, // '是'
	},
	UW4: []Entry1{
		{Key: 0x5168, Score: -2}, // '全'
		{Key: 0x6574, Score: 3}, // '整'
	},
	UW5: []Entry1{
		{Key: 0x7403, Score: 1}, // '球'
		{Key: 0x8cc7, Score: 2}, // '資'
	},
	UW6: []Entry1{
		{Key: 0x8a0a, Score: 1}, // '訊'
		{Key: 0xff0c, Score: 3}, // '，'
	},
	BW1: []Entry2{
		{Key: 0x9efe0547d, Score: 3}, // '使命'
		{Key: 0xc42205011, Score: 4}, // '我們'
	},
	BW2: []Entry2{
		{Key: 0xa65e06574, Score: 1}, // '匯整'
		{Key: 0xa8fa0662f, Score: -2}, // '命是'
	},
	BW3: []Entry2{
		{Key: 0xcae805168, Score: 2}, // '整全'
		{Key: 0xe80608cc7, Score: 1}, // '球資'
	},
	TW1: []Entry3{
		{Key: 0x188440a02207684, Score: 5}, // '我們的'
	},
	TW2: []Entry3{
		{Key: 0x140440ed0804f7f, Score: -3}, // '們的使'
	},
	TW3: []Entry3{
		{Key: 0x1da1009efe0547d, Score: 2}, // '的使命'
	},
	TW4: []Entry3{
		{Key: 0x13dfc0a8fa0662f, Score: 1}, // '使命是'
	},
	Base: -34,
}
