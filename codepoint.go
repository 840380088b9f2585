package budoux

// decodeRune decodes one Unicode code point from input starting at offset.
// It returns the decoded scalar value and the number of bytes consumed.
//
// This is a deliberately tolerant decoder: it recognizes the four standard
// UTF-8 lead-byte patterns (0xxxxxxx, 110xxxxx, 1110xxxx, 11110xxx) and
// assembles a code point from the low bits of the bytes the lead byte
// announces, but it never checks that continuation bytes actually carry the
// 10xxxxxx prefix, and it never rejects overlong encodings or UTF-16
// surrogates. A truncated sequence or an unrecognized lead byte degrades to
// the sentinel code point 0 rather than surfacing an error (see DESIGN.md
// for why this leniency is preserved rather than tightened).
//
// When the lead byte promises more continuation bytes than remain in input,
// decodeRune consumes every remaining byte in one step (rather than
// advancing by zero, which would never make progress) so that a truncated
// sequence at the end of input is always folded into the final Span instead
// of stalling the segmenter.
func decodeRune(input []byte, offset int) (cp uint32, size int) {
	rest := len(input) - offset
	if rest <= 0 {
		return 0, 0
	}

	c0 := input[offset]
	var need int
	switch {
	case c0&0x80 == 0:
		need = 1
	case c0&0xe0 == 0xc0:
		need = 2
	case c0&0xf0 == 0xe0:
		need = 3
	case c0&0xf8 == 0xf0:
		need = 4
	default:
		// Not a recognized lead pattern. Treat as a one-byte sentinel step
		// so the cursor still advances.
		return 0, 1
	}

	if rest < need {
		// Truncated tail: fold every remaining byte into this step so the
		// caller can still emit it as part of the final span.
		return 0, rest
	}

	var b [4]byte
	copy(b[:need], input[offset:offset+need])

	switch need {
	case 1:
		cp = uint32(b[0] & 0x7f)
	case 2:
		cp = (uint32(b[0]&0x1f) << 6) | uint32(b[1]&0x3f)
	case 3:
		cp = (uint32(b[0]&0x0f) << 12) | (uint32(b[1]&0x3f) << 6) | uint32(b[2]&0x3f)
	case 4:
		cp = (uint32(b[0]&0x07) << 18) | (uint32(b[1]&0x3f) << 12) | (uint32(b[2]&0x3f) << 6) | uint32(b[3]&0x3f)
	}
	return cp, need
}
