package modelcompile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("modelcompile")
}

// tableNames lists the thirteen score tables in the order they are emitted.
// UW1..UW6 are unigram tables, BW1..BW3 bigram, TW1..TW4 trigram.
var tableNames = []string{
	"UW1", "UW2", "UW3", "UW4", "UW5", "UW6",
	"BW1", "BW2", "BW3",
	"TW1", "TW2", "TW3", "TW4",
}

// gramSize returns how many code points a key in table must decode to.
func gramSize(table string) int {
	switch table[0] {
	case 'U':
		return 1
	case 'B':
		return 2
	case 'T':
		return 3
	default:
		return 0
	}
}

// rawModel is the direct JSON decoding of a models/<lang>.json file: table
// name to {UTF-8 string key: integer score}.
type rawModel map[string]map[string]int

// loadJSON reads and parses one model file from dir/filename.
func loadJSON(dir, filename string) (rawModel, error) {
	path := filepath.Join(dir, filename)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrMissingFile, path)
		}
		return nil, fmt.Errorf("modelcompile: reading %s: %w", path, err)
	}

	warnDuplicateKeys(data)

	// Decode in two passes so a syntactically valid but wrongly-shaped
	// document (a table value that isn't a JSON object, or a leaf that isn't
	// a number) is reported as ErrBadTableShape rather than folded into
	// ErrMalformedJSON: the outer json.Unmarshal only needs to confirm the
	// top level parses and defers each table's own shape to a later pass.
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedJSON, path, err)
	}

	raw := make(rawModel, len(top))
	for table, rawTable := range top {
		if gramSize(table) == 0 {
			return nil, fmt.Errorf("%w: %s: unrecognized table %q", ErrBadTableShape, path, table)
		}

		var entries map[string]json.RawMessage
		if err := json.Unmarshal(rawTable, &entries); err != nil {
			return nil, fmt.Errorf("%w: %s: table %s is not a JSON object: %v", ErrBadTableShape, path, table, err)
		}

		scores := make(map[string]int, len(entries))
		for key, rawScore := range entries {
			var score int
			if err := json.Unmarshal(rawScore, &score); err != nil {
				return nil, fmt.Errorf("%w: %s: table %s key %q: value is not an integer: %v",
					ErrBadTableShape, path, table, key, err)
			}
			scores[key] = score
		}
		raw[table] = scores
	}

	tracer().Debugf("modelcompile: loaded %s (%d tables)", path, len(raw))
	return raw, nil
}
