// Code generated by internal/modelcompile from models/th.json; treat as
// generated data. Regenerate with `go run ./cmd/budouxgen`.

package model

// Th is a small, hand-authored score model for Thai.
// It is NOT the published BudouX model (see DESIGN.md); it exists to
// exercise every table role end-to-end with plausible, human-checkable data.
var Th = Model{
	UW1: []Entry1{
		{Key: 0xe14, Score: 3}, // 'ด'
		{Key: 0xe27, Score: 1}, // 'ว'
		{Key: 0xe2a, Score: 2}, // 'ส'
	},
	UW2: []Entry1{
		{Key: 0xe31, Score: 1}, // 'ั'
		{Key: 0xe35, Score: 2}, // 'ี'
	},
	UW3: []Entry1{
		{Key: 0xe04, Score: 2}, // 'ค'
		{Key: 0xe23, Score: 1}, // 'ร'
	},
	UW4: []Entry1{
		{Key: 0xe1a, Score: 3}, // 'บ'
		{Key: 0xe21, Score: -2}, // 'ม'
	},
	UW5: []Entry1{
		{Key: 0xe0a, Score: 2}, // 'ช'
		{Key: 0xe1c, Score: 1}, // 'ผ'
	},
	UW6: []Entry1{
		{Key: 0xe35, Score: 2}, // 'ี'
		{Key: 0xe37, Score: 1}, // 'ื'
	},
	BW1: []Entry2{
		{Key: 0x1c2800e35, Score: 3}, // 'ดี'
		{Key: 0x1c5400e27, Score: 2}, // 'สว'
	},
	BW2: []Entry2{
		{Key: 0x1c0800e23, Score: -2}, // 'คร'
		{Key: 0x1c4e00e31, Score: 1}, // 'วั'
	},
	BW3: []Entry2{
		{Key: 0x1c4200e0a, Score: 1}, // 'มช'
		{Key: 0x1c4600e1a, Score: 2}, // 'รบ'
	},
	TW1: []Entry3{
		{Key: 0x38a801c4e00e31, Score: 4}, // 'สวั'
	},
	TW2: []Entry3{
		{Key: 0x389c01c6200e2a, Score: -2}, // 'วัส'
	},
	TW3: []Entry3{
		{Key: 0x385001c6a00e04, Score: 1}, // 'ดีค'
	},
	TW4: []Entry3{
		{Key: 0x388c01c6200e1a, Score: 2}, // 'รับ'
	},
	Base: -31,
}
