package modelcompile

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/budoux-go/budoux/model"
)

// errKeyLengthOutOfRange signals that a JSON key decoded to a code point
// count outside {1, 2, 3} entirely: zero code points, or four or more. The
// model format discards such a key unconditionally rather than treating it
// as fatal, so compileOne recognizes this sentinel and skips the entry
// (after logging) instead of aborting the language's compilation. This is
// distinct from a key that decodes to 1, 2 or 3 code points but disagrees
// with its table's own fixed gram size, which encodeKey still reports as
// ErrBadTableShape.
var errKeyLengthOutOfRange = errors.New("modelcompile: key decodes to a length outside {1, 2, 3}")

// encodeKey decodes s (a JSON object key, e.g. "私" or "今日は") into its
// Unicode code points and packs them using the same 21-bit-per-code-point
// scheme the runtime's lookup tables use. table determines the expected
// gram size: 1 for UW*, 2 for BW*, 3 for TW*.
func encodeKey(table, s string) (uint64, error) {
	want := gramSize(table)

	var cps []uint32
	for _, r := range s {
		if r == utf8.RuneError {
			return 0, fmt.Errorf("%w: table %s key %q: invalid UTF-8", ErrBadTableShape, table, s)
		}
		cps = append(cps, uint32(r))
	}

	if len(cps) < 1 || len(cps) > 3 {
		return 0, fmt.Errorf("%w: table %s key %q: %d code point(s)", errKeyLengthOutOfRange, table, s, len(cps))
	}

	if len(cps) != want {
		return 0, fmt.Errorf("%w: table %s key %q: got %d code point(s), want %d",
			ErrBadTableShape, table, s, len(cps), want)
	}

	switch want {
	case 1:
		return uint64(model.PackKey1(cps[0])), nil
	case 2:
		return model.PackKey2(cps[0], cps[1]), nil
	case 3:
		return model.PackKey3(cps[0], cps[1], cps[2]), nil
	default:
		return 0, fmt.Errorf("%w: table %s: unreachable gram size %d", ErrBadTableShape, table, want)
	}
}
