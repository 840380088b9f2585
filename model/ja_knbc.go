// Code generated by internal/modelcompile from models/ja_knbc.json; treat as
// generated data. Regenerate with `go run ./cmd/budouxgen`.

package model

// JaKNBC is a small, hand-authored score model for Japanese/KNBC.
// It is NOT the published BudouX model (see DESIGN.md); it exists to
// exercise every table role end-to-end with plausible, human-checkable data.
var JaKNBC = Model{
	UW1: []Entry1{
		{Key: 0x65e5, Score: 1}, // '日'
		{Key: 0x6674, Score: 3}, // '晴'
		{Key: 0x672c, Score: 2}, // '本'
	},
	UW2: []Entry1{
		{Key: 0x306f, Score: 4}, // 'は'
		{Key: 0x5929, Score: 2}, // '天'
	},
	UW3: []Entry1{
		{Key: 0x4eca, Score: 2}, // '今'
		{Key: 0x6674, Score: 1}, // '晴'
	},
	UW4: []Entry1{
		{Key: 0x5929, Score: 3}, // '天'
		{Key: 0x65e5, Score: -2}, // '日'
	},
	UW5: []Entry1{
		{Key: 0x3067, Score: -1}, // 'で'
		{Key: 0x306f, Score: 1}, // 'は'
	},
	UW6: []Entry1{
		{Key: 0x3059, Score: 1}, // 'す'
		{Key: 0x660e, Score: 2}, // '明'
	},
	BW1: []Entry2{
		{Key: 0x9d94065e5, Score: 2}, // '今日'
		{Key: 0xce58065e5, Score: 3}, // '本日'
	},
	BW2: []Entry2{
		{Key: 0xcbca0306f, Score: -4}, // '日は'
		{Key: 0xcbca03082, Score: -1}, // '日も'
	},
	BW3: []Entry2{
		{Key: 0x60de06674, Score: 2}, // 'は晴'
		{Key: 0x60de066c7, Score: 1}, // 'は曇'
	},
	TW1: []Entry3{
		{Key: 0x19cb00cbca0306f, Score: 5}, // '本日は'
	},
	TW2: []Entry3{
		{Key: 0x19794060de06674, Score: -3}, // '日は晴'
	},
	TW3: []Entry3{
		{Key: 0xc1bc0cce805929, Score: 1}, // 'は晴天'
	},
	TW4: []Entry3{
		{Key: 0x199d00b25203067, Score: 2}, // '晴天で'
	},
	Base: -27,
}
