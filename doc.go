/*
Package budoux is a streaming phrase-boundary segmenter for Japanese,
Japanese/KNBC, Simplified Chinese, Traditional Chinese and Thai.

It is a port of BudouX (https://github.com/google/budoux), itself inspired by
TinySegmenter, reworked into a pull-based, allocation-free state machine in
the style of "hcbudoux", a header-only C11 port of the same algorithm.

A Segmenter is bound to a UTF-8 byte slice once and then walked forward with
one of the per-language Next methods:

	seg := budoux.New(input)
	for {
		span, ok := seg.NextJa()
		if !ok {
			break
		}
		fmt.Println(string(input[span.Offset : span.Offset+span.Length]))
	}

Each emitted Span is a contiguous byte range of the input suitable as an
insertion point for a soft line break (equivalently, a zero-width space). The
decision is driven by pretrained additive score tables examined over a
six-character sliding window; see package model for the table format and
package internal/modelcompile for how the tables are produced from JSON.

A Segmenter holds no resources beyond a borrow of its input and needs no
teardown.

Further Reading

	https://github.com/google/budoux
	https://github.com/google/budoux/blob/main/docs/string_segmenter.md

----------------------------------------------------------------------

# BSD License

Copyright (c) budoux-go contributors.

All rights reserved.

License information is available in the LICENSE file.
*/
package budoux

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'budoux'. The segmenter's hot path never
// calls it.
func tracer() tracing.Trace {
	return tracing.Select("budoux")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
