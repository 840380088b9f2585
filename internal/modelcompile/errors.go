package modelcompile

import "errors"

// Sentinel errors returned by Compile and its helpers. Callers should use
// errors.Is against these rather than matching on message text.
var (
	// ErrMissingFile is returned when a requested models/<lang>.json file
	// does not exist.
	ErrMissingFile = errors.New("modelcompile: model file not found")

	// ErrMalformedJSON is returned when a model file is not valid JSON at
	// all (a syntax error at any depth).
	ErrMalformedJSON = errors.New("modelcompile: malformed model JSON")

	// ErrBadTableShape is returned for syntactically valid JSON that still
	// has the wrong shape: an unrecognized table name, a table value that
	// isn't a JSON object, a score that isn't a number, or a key whose
	// UTF-8 decoding produces 1, 2 or 3 code points but disagrees with its
	// table's fixed gram size. A key whose decoded length falls outside
	// {1, 2, 3} entirely is not an error at all; that entry is discarded
	// and logged instead.
	ErrBadTableShape = errors.New("modelcompile: bad table shape")

	// ErrWrite is returned when the compiled output could not be written
	// to outDir.
	ErrWrite = errors.New("modelcompile: write failed")
)
